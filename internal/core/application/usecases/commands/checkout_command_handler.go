package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// CheckoutCommandHandler turns the buyer's cart into an order.
//
// The order insert and the cart clear share one transaction: if storing the
// order fails the cart is kept, so the buyer can simply retry.
type CheckoutCommandHandler struct {
	uowFactory        CheckoutUoWFactory
	defaultQRImageURL string
	now               func() time.Time
}

// NewCheckoutCommandHandler creates the handler. defaultQRImageURL is used when
// no admin settings were saved yet.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory, defaultQRImageURL string) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:        uowFactory,
		defaultQRImageURL: defaultQRImageURL,
		now:               time.Now,
	}
}

// Handle places the order and returns it.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.NewRoleGate().AuthorizeRole(cmd.Actor(), order.TriggerCheckout); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.UserRepository().Get(ctx, cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetForUpdate(ctx, buyer.ID())
	if err != nil {
		return nil, err
	}

	adminSettings, err := currentSettings(ctx, uow.SettingsRepository(), h.defaultQRImageURL)
	if err != nil {
		return nil, err
	}

	placed, err := services.NewCheckout().Place(cmd.OrderID(), buyer, c, adminSettings, h.now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

type settingsGetter interface {
	Get(ctx context.Context) (*settings.AdminSettings, error)
}

// currentSettings returns the saved admin settings, falling back to defaults.
func currentSettings(ctx context.Context, repo settingsGetter, defaultQRImageURL string) (*settings.AdminSettings, error) {
	s, err := repo.Get(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return settings.NewAdminSettings(defaultQRImageURL)
	}
	return s, err
}
