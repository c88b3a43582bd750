package persistence

import (
	"context"
	"strings"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create creates a new company
func (r *GormCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	return translate(conn(ctx, r.db).Create(models.CompanyModelFromDomain(c)).Error)
}

// Update updates an existing company
func (r *GormCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	return affected(conn(ctx, r.db).Save(models.CompanyModelFromDomain(c)))
}

// Delete deletes a company by ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(conn(ctx, r.db).Delete(&models.CompanyModel{}, "id = ?", id))
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	var model models.CompanyModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// FindByName finds a company by its unique name
func (r *GormCompanyRepository) FindByName(ctx context.Context, name string) (*company.Company, error) {
	var model models.CompanyModel
	if err := conn(ctx, r.db).Where("name = ?", strings.TrimSpace(name)).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// ListActiveByUser returns the active companies owned by userID ordered by name
func (r *GormCompanyRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]company.Company, error) {
	var rows []models.CompanyModel
	if err := conn(ctx, r.db).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]company.Company, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// ExistsByName checks if a company with the given name exists
func (r *GormCompanyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.CompanyModel{}).
		Where("name = ?", strings.TrimSpace(name)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormCommonControlRepository implements CommonControlRepository using GORM
type GormCommonControlRepository struct {
	db *gorm.DB
}

// NewGormCommonControlRepository creates a new GormCommonControlRepository
func NewGormCommonControlRepository(db *gorm.DB) *GormCommonControlRepository {
	return &GormCommonControlRepository{db: db}
}

// FindByCompany returns the settings of a company
func (r *GormCommonControlRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) (*company.CommonControl, error) {
	var model models.CommonControlModel
	if err := conn(ctx, r.db).Where("company_id = ?", companyID).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// Replace deletes the company's settings and inserts cc, atomically when not already in a transaction
func (r *GormCommonControlRepository) Replace(ctx context.Context, cc *company.CommonControl) error {
	return NewGormTxManager(r.db).InTx(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		if err := db.Where("company_id = ?", cc.CompanyID).Delete(&models.CommonControlModel{}).Error; err != nil {
			return err
		}
		return translate(db.Create(models.CommonControlModelFromDomain(cc)).Error)
	})
}

// Ensure interfaces are implemented
var (
	_ company.CompanyRepository       = (*GormCompanyRepository)(nil)
	_ company.CommonControlRepository = (*GormCommonControlRepository)(nil)
)
