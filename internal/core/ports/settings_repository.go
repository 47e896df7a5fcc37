package ports

import (
	"context"

	"storefront/internal/core/domain/model/settings"
)

// SettingsRepository stores the single admin settings record.
type SettingsRepository interface {
	// Get returns the saved settings or *errs.ObjectNotFoundError when none was saved.
	Get(ctx context.Context) (*settings.AdminSettings, error)
	// Save inserts or replaces the record.
	Save(ctx context.Context, aggregate *settings.AdminSettings) error
}
