package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// StarterCatalog is the catalog a new store opens with. It includes the
// document-verification service that drives the service order track.
func StarterCatalog() []product.Details {
	return []product.Details{
		{
			Name:        "Modern Wristwatch",
			Description: "A slim, stylish wristwatch for everyday wear.",
			Price:       1500000,
			ImageURL:    "https://picsum.photos/seed/watch/400/300",
		},
		{
			Name:        "Wireless Headphones",
			Description: "High quality wireless headphones with noise cancelling.",
			Price:       850000,
			ImageURL:    "https://picsum.photos/seed/headphones/400/300",
		},
		{
			Name:        "Leather Backpack",
			Description: "A durable, fashionable leather backpack for every need.",
			Price:       650000,
			ImageURL:    "https://picsum.photos/seed/backpack/400/300",
		},
		{
			Name: "Plagiarism Check",
			Description: "Professional plagiarism check for students, researchers and writers. " +
				"Upload your document (DOC, DOCX, PDF) and download the detailed report " +
				"once it is processed and your payment is confirmed.",
			Price:     75000,
			ImageURL:  "https://picsum.photos/seed/turnitin_service/400/300",
			IsService: true,
		},
		{
			Name:        "Mirrorless Camera Pro",
			Description: "Full-frame mirrorless camera for professional photos and video.",
			Price:       22500000,
			ImageURL:    "https://picsum.photos/seed/camera_pro/400/300",
		},
		{
			Name:        "Mini Smart Speaker",
			Description: "Smart speaker with a built-in voice assistant, clear sound and deep bass.",
			Price:       599000,
			ImageURL:    "https://picsum.photos/seed/speaker_mini/400/300",
		},
	}
}

// SeedCommandHandler creates whatever part of the initial data is missing.
// Each part is checked on its own, so a partially seeded database is completed.
type SeedCommandHandler struct {
	uowFactory SeedUoWFactory
	hasher     ports.PasswordHasher
	logger     *slog.Logger
}

func NewSeedCommandHandler(uowFactory SeedUoWFactory, hasher ports.PasswordHasher, logger *slog.Logger) SeedCommandHandler {
	return SeedCommandHandler{uowFactory: uowFactory, hasher: hasher, logger: logger}
}

func (h SeedCommandHandler) Handle(ctx context.Context, cmd SeedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.seedAdmin(ctx, uow.UserRepository(), cmd); err != nil {
		return err
	}
	if err := h.seedCatalog(ctx, uow.ProductRepository()); err != nil {
		return err
	}
	if err := h.seedSettings(ctx, uow.SettingsRepository(), cmd.DefaultQRImageURL()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h SeedCommandHandler) seedAdmin(ctx context.Context, repo ports.UserRepository, cmd SeedCommand) error {
	_, err := repo.GetByEmail(ctx, cmd.AdminEmail())
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	hash, err := h.hasher.Hash(cmd.AdminPassword())
	if err != nil {
		return err
	}
	admin, err := user.NewUser(kernel.NewUUID(), cmd.AdminEmail(), hash, kernel.RoleAdmin)
	if err != nil {
		return err
	}
	if err = repo.Add(ctx, admin); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "seeded admin account", slog.String("email", admin.Email()))
	return nil
}

func (h SeedCommandHandler) seedCatalog(ctx context.Context, repo ports.ProductRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := StarterCatalog()
	for _, details := range catalog {
		p, err := product.NewProduct(kernel.NewUUID(), details)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, p); err != nil {
			return err
		}
	}

	h.logger.InfoContext(ctx, "seeded catalog", slog.Int("products", len(catalog)))
	return nil
}

func (h SeedCommandHandler) seedSettings(ctx context.Context, repo ports.SettingsRepository, qrImageURL string) error {
	_, err := repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	s, err := settings.NewAdminSettings(qrImageURL)
	if err != nil {
		return err
	}
	return repo.Save(ctx, s)
}
