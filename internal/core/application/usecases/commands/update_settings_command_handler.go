package commands

import (
	"context"
)

// UpdateSettingsCommandHandler saves the admin settings. Orders placed earlier
// keep the QR URL they snapshotted.
type UpdateSettingsCommandHandler struct {
	uowFactory        SettingsUoWFactory
	defaultQRImageURL string
}

func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory, defaultQRImageURL string) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{uowFactory: uowFactory, defaultQRImageURL: defaultQRImageURL}
}

func (h UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireAdmin(cmd.Actor(), "update settings"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settingsRepo := uow.SettingsRepository()
	s, err := currentSettings(ctx, settingsRepo, h.defaultQRImageURL)
	if err != nil {
		return err
	}

	if err = s.ChangeQRISImageURL(cmd.QRISImageURL()); err != nil {
		return err
	}

	if err = settingsRepo.Save(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
