package persistence

import (
	"context"
	"strings"

	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMajorHeadRepository implements MajorHeadRepository using GORM
type GormMajorHeadRepository struct {
	db *gorm.DB
}

// NewGormMajorHeadRepository creates a new GormMajorHeadRepository
func NewGormMajorHeadRepository(db *gorm.DB) *GormMajorHeadRepository {
	return &GormMajorHeadRepository{db: db}
}

// Create creates a new major head
func (r *GormMajorHeadRepository) Create(ctx context.Context, head *taxonomy.MajorHead) error {
	return translate(conn(ctx, r.db).Create(models.MajorHeadModelFromDomain(head)).Error)
}

// Update updates an existing major head
func (r *GormMajorHeadRepository) Update(ctx context.Context, head *taxonomy.MajorHead) error {
	return affected(conn(ctx, r.db).Save(models.MajorHeadModelFromDomain(head)))
}

// Delete removes the head, its minor heads and their groupings, and unlinks
// trial balance lines that referenced any of them
func (r *GormMajorHeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return NewGormTxManager(r.db).InTx(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		minorIDs := db.Model(&models.MinorHeadModel{}).Select("id").Where("major_head_id = ?", id)
		groupingIDs := db.Model(&models.GroupingModel{}).Select("id").Where("minor_head_id IN (?)", minorIDs)

		if err := db.Model(&models.TrialBalanceEntryModel{}).
			Where("major_head_id = ?", id).
			Updates(map[string]any{"major_head_id": nil, "minor_head_id": nil, "grouping_id": nil}).Error; err != nil {
			return err
		}
		if err := db.Where("id IN (?)", groupingIDs).Delete(&models.GroupingModel{}).Error; err != nil {
			return err
		}
		if err := db.Where("major_head_id = ?", id).Delete(&models.MinorHeadModel{}).Error; err != nil {
			return err
		}
		return affected(db.Delete(&models.MajorHeadModel{}, "id = ?", id))
	})
}

// FindByID finds a major head by ID
func (r *GormMajorHeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.MajorHead, error) {
	var model models.MajorHeadModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// FindByName finds a major head by its unique name
func (r *GormMajorHeadRepository) FindByName(ctx context.Context, name string) (*taxonomy.MajorHead, error) {
	var model models.MajorHeadModel
	if err := conn(ctx, r.db).Where("name = ?", strings.TrimSpace(name)).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

type majorHeadRow struct {
	models.MajorHeadModel
	MinorHeadCount    int64
	TrialBalanceCount int64
}

// List returns every major head with usage counts
func (r *GormMajorHeadRepository) List(ctx context.Context) ([]taxonomy.MajorHeadSummary, error) {
	var rows []majorHeadRow
	if err := conn(ctx, r.db).
		Table("major_heads").
		Select(`major_heads.*,
			(SELECT COUNT(*) FROM minor_heads WHERE minor_heads.major_head_id = major_heads.id) AS minor_head_count,
			(SELECT COUNT(*) FROM trial_balance_entries WHERE trial_balance_entries.major_head_id = major_heads.id) AS trial_balance_count`).
		Order("statement_type ASC, category ASC, name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]taxonomy.MajorHeadSummary, len(rows))
	for i := range rows {
		out[i] = taxonomy.MajorHeadSummary{
			MajorHead:         *rows[i].ToDomain(),
			MinorHeadCount:    rows[i].MinorHeadCount,
			TrialBalanceCount: rows[i].TrialBalanceCount,
		}
	}
	return out, nil
}

// Count returns the number of major heads
func (r *GormMajorHeadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.MajorHeadModel{}).Count(&count).Error
	return count, err
}

// GormMinorHeadRepository implements MinorHeadRepository using GORM
type GormMinorHeadRepository struct {
	db *gorm.DB
}

// NewGormMinorHeadRepository creates a new GormMinorHeadRepository
func NewGormMinorHeadRepository(db *gorm.DB) *GormMinorHeadRepository {
	return &GormMinorHeadRepository{db: db}
}

// Create creates a new minor head
func (r *GormMinorHeadRepository) Create(ctx context.Context, head *taxonomy.MinorHead) error {
	return translate(conn(ctx, r.db).Create(models.MinorHeadModelFromDomain(head)).Error)
}

// Update updates an existing minor head
func (r *GormMinorHeadRepository) Update(ctx context.Context, head *taxonomy.MinorHead) error {
	return affected(conn(ctx, r.db).Save(models.MinorHeadModelFromDomain(head)))
}

// Delete removes the head and its groupings
func (r *GormMinorHeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return NewGormTxManager(r.db).InTx(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		if err := db.Model(&models.TrialBalanceEntryModel{}).
			Where("minor_head_id = ?", id).
			Updates(map[string]any{"minor_head_id": nil, "grouping_id": nil}).Error; err != nil {
			return err
		}
		if err := db.Where("minor_head_id = ?", id).Delete(&models.GroupingModel{}).Error; err != nil {
			return err
		}
		return affected(db.Delete(&models.MinorHeadModel{}, "id = ?", id))
	})
}

// FindByID finds a minor head by ID
func (r *GormMinorHeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.MinorHead, error) {
	var model models.MinorHeadModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// FindByName finds a minor head by name, under majorHeadID when given
func (r *GormMinorHeadRepository) FindByName(ctx context.Context, name string, majorHeadID *uuid.UUID) (*taxonomy.MinorHead, error) {
	query := conn(ctx, r.db).Where("name = ?", strings.TrimSpace(name))
	if majorHeadID != nil {
		query = query.Where("major_head_id = ?", *majorHeadID)
	}
	var model models.MinorHeadModel
	if err := query.Order("created_at ASC").First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

type minorHeadRow struct {
	models.MinorHeadModel
	MajorHeadName     string
	GroupingCount     int64
	TrialBalanceCount int64
}

// List returns minor heads ordered by name with their parent and usage counts
func (r *GormMinorHeadRepository) List(ctx context.Context, majorHeadID *uuid.UUID) ([]taxonomy.MinorHeadSummary, error) {
	query := conn(ctx, r.db).
		Table("minor_heads").
		Select(`minor_heads.*, major_heads.name AS major_head_name,
			(SELECT COUNT(*) FROM groupings WHERE groupings.minor_head_id = minor_heads.id) AS grouping_count,
			(SELECT COUNT(*) FROM trial_balance_entries WHERE trial_balance_entries.minor_head_id = minor_heads.id) AS trial_balance_count`).
		Joins("LEFT JOIN major_heads ON major_heads.id = minor_heads.major_head_id")
	if majorHeadID != nil {
		query = query.Where("minor_heads.major_head_id = ?", *majorHeadID)
	}
	var rows []minorHeadRow
	if err := query.Order("minor_heads.name ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]taxonomy.MinorHeadSummary, len(rows))
	for i := range rows {
		out[i] = taxonomy.MinorHeadSummary{
			MinorHead:         *rows[i].ToDomain(),
			MajorHeadName:     rows[i].MajorHeadName,
			GroupingCount:     rows[i].GroupingCount,
			TrialBalanceCount: rows[i].TrialBalanceCount,
		}
	}
	return out, nil
}

// GormGroupingRepository implements GroupingRepository using GORM
type GormGroupingRepository struct {
	db *gorm.DB
}

// NewGormGroupingRepository creates a new GormGroupingRepository
func NewGormGroupingRepository(db *gorm.DB) *GormGroupingRepository {
	return &GormGroupingRepository{db: db}
}

// Create creates a new grouping
func (r *GormGroupingRepository) Create(ctx context.Context, grouping *taxonomy.Grouping) error {
	return translate(conn(ctx, r.db).Create(models.GroupingModelFromDomain(grouping)).Error)
}

// Update updates an existing grouping
func (r *GormGroupingRepository) Update(ctx context.Context, grouping *taxonomy.Grouping) error {
	return affected(conn(ctx, r.db).Save(models.GroupingModelFromDomain(grouping)))
}

// Delete removes a grouping and unlinks the trial balance lines using it
func (r *GormGroupingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return NewGormTxManager(r.db).InTx(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		if err := db.Model(&models.TrialBalanceEntryModel{}).
			Where("grouping_id = ?", id).
			Update("grouping_id", nil).Error; err != nil {
			return err
		}
		return affected(db.Delete(&models.GroupingModel{}, "id = ?", id))
	})
}

// FindByID finds a grouping by ID
func (r *GormGroupingRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.Grouping, error) {
	var model models.GroupingModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// FindByName finds a grouping by name, under minorHeadID when given
func (r *GormGroupingRepository) FindByName(ctx context.Context, name string, minorHeadID *uuid.UUID) (*taxonomy.Grouping, error) {
	query := conn(ctx, r.db).Where("name = ?", strings.TrimSpace(name))
	if minorHeadID != nil {
		query = query.Where("minor_head_id = ?", *minorHeadID)
	}
	var model models.GroupingModel
	if err := query.Order("created_at ASC").First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

type groupingRow struct {
	models.GroupingModel
	MinorHeadName     string
	TrialBalanceCount int64
}

// List returns groupings ordered by name with their parent and usage count
func (r *GormGroupingRepository) List(ctx context.Context, minorHeadID *uuid.UUID) ([]taxonomy.GroupingSummary, error) {
	query := conn(ctx, r.db).
		Table("groupings").
		Select(`groupings.*, minor_heads.name AS minor_head_name,
			(SELECT COUNT(*) FROM trial_balance_entries WHERE trial_balance_entries.grouping_id = groupings.id) AS trial_balance_count`).
		Joins("LEFT JOIN minor_heads ON minor_heads.id = groupings.minor_head_id")
	if minorHeadID != nil {
		query = query.Where("groupings.minor_head_id = ?", *minorHeadID)
	}
	var rows []groupingRow
	if err := query.Order("groupings.name ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]taxonomy.GroupingSummary, len(rows))
	for i := range rows {
		out[i] = taxonomy.GroupingSummary{
			Grouping:          *rows[i].ToDomain(),
			MinorHeadName:     rows[i].MinorHeadName,
			TrialBalanceCount: rows[i].TrialBalanceCount,
		}
	}
	return out, nil
}

// Ensure interfaces are implemented
var (
	_ taxonomy.MajorHeadRepository = (*GormMajorHeadRepository)(nil)
	_ taxonomy.MinorHeadRepository = (*GormMinorHeadRepository)(nil)
	_ taxonomy.GroupingRepository  = (*GormGroupingRepository)(nil)
)
