package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetSettingsQueryHandler struct {
	db                *gorm.DB
	defaultQRImageURL string
}

func NewGetSettingsQueryHandler(db *gorm.DB, defaultQRImageURL string) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db, defaultQRImageURL: defaultQRImageURL}
}

func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (SettingsView, error) {
	if err := query.Validate(); err != nil {
		return SettingsView{}, err
	}

	var urls []string
	err := h.db.WithContext(ctx).Raw(`SELECT qris_image_url FROM admin_settings WHERE id = 1`).Scan(&urls).Error
	if err != nil {
		return SettingsView{}, err
	}
	if len(urls) == 0 {
		return SettingsView{QRISImageURL: h.defaultQRImageURL, IsDefault: true}, nil
	}

	return SettingsView{QRISImageURL: urls[0]}, nil
}
