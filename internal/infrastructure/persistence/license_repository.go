package persistence

import (
	"context"

	"github.com/finstatements/backend/internal/domain/license"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLicenseRepository implements license.Repository using GORM
type GormLicenseRepository struct {
	db *gorm.DB
}

// NewGormLicenseRepository creates a new GormLicenseRepository
func NewGormLicenseRepository(db *gorm.DB) *GormLicenseRepository {
	return &GormLicenseRepository{db: db}
}

// Create creates a new license
func (r *GormLicenseRepository) Create(ctx context.Context, l *license.License) error {
	return translate(conn(ctx, r.db).Create(models.LicenseModelFromDomain(l)).Error)
}

// Update updates an existing license
func (r *GormLicenseRepository) Update(ctx context.Context, l *license.License) error {
	return affected(conn(ctx, r.db).Save(models.LicenseModelFromDomain(l)))
}

// FindByKey finds a license by its key
func (r *GormLicenseRepository) FindByKey(ctx context.Context, key string) (*license.License, error) {
	var model models.LicenseModel
	if err := conn(ctx, r.db).Where("license_key = ?", key).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// Ensure interface is implemented
var _ license.Repository = (*GormLicenseRepository)(nil)
