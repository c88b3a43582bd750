package persistence

import (
	"context"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTrialBalanceRepository implements TrialBalanceRepository using GORM
type GormTrialBalanceRepository struct {
	db *gorm.DB
}

// NewGormTrialBalanceRepository creates a new GormTrialBalanceRepository
func NewGormTrialBalanceRepository(db *gorm.DB) *GormTrialBalanceRepository {
	return &GormTrialBalanceRepository{db: db}
}

// Create creates a new trial balance entry
func (r *GormTrialBalanceRepository) Create(ctx context.Context, entry *ledger.TrialBalanceEntry) error {
	return translate(conn(ctx, r.db).Create(models.TrialBalanceEntryModelFromDomain(entry)).Error)
}

// Update updates an existing trial balance entry
func (r *GormTrialBalanceRepository) Update(ctx context.Context, entry *ledger.TrialBalanceEntry) error {
	return affected(conn(ctx, r.db).Save(models.TrialBalanceEntryModelFromDomain(entry)))
}

// Delete deletes a trial balance entry by ID
func (r *GormTrialBalanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(conn(ctx, r.db).Delete(&models.TrialBalanceEntryModel{}, "id = ?", id))
}

// FindByID finds a trial balance entry by ID
func (r *GormTrialBalanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.TrialBalanceEntry, error) {
	var model models.TrialBalanceEntryModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

type trialBalanceRow struct {
	models.TrialBalanceEntryModel
	MajorHeadName string
	MajorCategory taxonomy.Category
	MinorHeadName string
	GroupingName  string
}

// ListLines returns the company's entries joined with their head names
func (r *GormTrialBalanceRepository) ListLines(ctx context.Context, companyID uuid.UUID) ([]ledger.TrialBalanceLine, error) {
	var rows []trialBalanceRow
	if err := conn(ctx, r.db).
		Table("trial_balance_entries").
		Select(`trial_balance_entries.*,
			COALESCE(major_heads.name, '') AS major_head_name,
			COALESCE(major_heads.category, '') AS major_category,
			COALESCE(minor_heads.name, '') AS minor_head_name,
			COALESCE(groupings.name, '') AS grouping_name`).
		Joins("LEFT JOIN major_heads ON major_heads.id = trial_balance_entries.major_head_id").
		Joins("LEFT JOIN minor_heads ON minor_heads.id = trial_balance_entries.minor_head_id").
		Joins("LEFT JOIN groupings ON groupings.id = trial_balance_entries.grouping_id").
		Where("trial_balance_entries.company_id = ?", companyID).
		Order("trial_balance_entries.ledger_name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	lines := make([]ledger.TrialBalanceLine, len(rows))
	for i := range rows {
		lines[i] = ledger.TrialBalanceLine{
			TrialBalanceEntry: *rows[i].ToDomain(),
			MajorHeadName:     rows[i].MajorHeadName,
			MajorCategory:     rows[i].MajorCategory,
			MinorHeadName:     rows[i].MinorHeadName,
			GroupingName:      rows[i].GroupingName,
		}
	}
	return lines, nil
}

// DeleteByCompany removes every entry of a company
func (r *GormTrialBalanceRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	result := conn(ctx, r.db).Where("company_id = ?", companyID).Delete(&models.TrialBalanceEntryModel{})
	return result.RowsAffected, result.Error
}

// CountByCompany counts the entries of a company
func (r *GormTrialBalanceRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.TrialBalanceEntryModel{}).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count, err
}

// Ensure interface is implemented
var _ ledger.TrialBalanceRepository = (*GormTrialBalanceRepository)(nil)
