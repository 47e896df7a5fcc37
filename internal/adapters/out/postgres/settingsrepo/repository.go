// Package settingsrepo stores the single admin settings row.
package settingsrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const singletonID = 1

// AdminSettingsDTO represents the admin_settings row.
type AdminSettingsDTO struct {
	ID           int16  `gorm:"primaryKey;autoIncrement:false"`
	QRISImageURL string `gorm:"column:qris_image_url"`
	UpdatedAt    time.Time
}

// TableName specifies the database table name for admin settings.
func (AdminSettingsDTO) TableName() string {
	return "admin_settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.AdminSettings, error) {
	var dto AdminSettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("admin settings", singletonID)
		}
		return nil, err
	}
	return settings.NewAdminSettings(dto.QRISImageURL)
}

// Save inserts the row or overwrites the stored URL.
func (r *GormSettingsRepository) Save(ctx context.Context, aggregate *settings.AdminSettings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	dto := AdminSettingsDTO{
		ID:           singletonID,
		QRISImageURL: aggregate.QRISImageURL(),
		UpdatedAt:    time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"qris_image_url", "updated_at"}),
	}).Create(&dto).Error
}
