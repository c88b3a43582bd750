package persistence

import (
	"context"

	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormScheduleRepository implements schedule.Repository for any schedule
// entry type. Schedule entries carry their own column tags, so rows map
// straight onto the domain structs.
type GormScheduleRepository[T any, PT interface {
	*T
	schedule.Entry
}] struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GormScheduleRepository
func NewGormScheduleRepository[T any, PT interface {
	*T
	schedule.Entry
}](db *gorm.DB) *GormScheduleRepository[T, PT] {
	return &GormScheduleRepository[T, PT]{db: db}
}

func (r *GormScheduleRepository[T, PT]) table() string {
	return PT(new(T)).TableName()
}

// Create inserts a new entry
func (r *GormScheduleRepository[T, PT]) Create(ctx context.Context, entity *T) error {
	return translate(conn(ctx, r.db).Create(entity).Error)
}

// Update saves every column of an existing entry
func (r *GormScheduleRepository[T, PT]) Update(ctx context.Context, entity *T) error {
	return affected(conn(ctx, r.db).Save(entity))
}

// FindByID finds an entry by ID
func (r *GormScheduleRepository[T, PT]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	entity := new(T)
	if err := conn(ctx, r.db).First(entity, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

// ListByCompany returns the company's entries ordered by their natural key
func (r *GormScheduleRepository[T, PT]) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]T, error) {
	return r.ListSorted(ctx, companyID, PT(new(T)).SortColumn(), "ASC")
}

// ListSorted returns the company's entries ordered by a whitelisted column.
// Unknown columns fall back to the natural key.
func (r *GormScheduleRepository[T, PT]) ListSorted(ctx context.Context, companyID uuid.UUID, sortField, sortOrder string) ([]T, error) {
	natural := PT(new(T)).SortColumn()
	field := ValidateSortField(sortField, SortFieldsFor(r.table()), natural)
	order := ValidateSortOrder(sortOrder)

	var out []T
	if err := conn(ctx, r.db).
		Where("company_id = ?", companyID).
		Order(field + " " + order).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Delete deletes an entry by ID
func (r *GormScheduleRepository[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(conn(ctx, r.db).Delete(new(T), "id = ?", id))
}

// CountByCompany counts the company's entries
func (r *GormScheduleRepository[T, PT]) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(new(T)).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

// GormPolicyRepository stores accounting policy texts, company-specific and global
type GormPolicyRepository struct {
	*GormScheduleRepository[schedule.AccountingPolicy, *schedule.AccountingPolicy]
}

// NewGormPolicyRepository creates a new GormPolicyRepository
func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{
		GormScheduleRepository: NewGormScheduleRepository[schedule.AccountingPolicy](db),
	}
}

// ListGlobal returns the default policies that belong to no company
func (r *GormPolicyRepository) ListGlobal(ctx context.Context) ([]schedule.AccountingPolicy, error) {
	var out []schedule.AccountingPolicy
	if err := conn(ctx, r.db).
		Where("company_id IS NULL").
		Order("note_ref ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Ensure interfaces are implemented
var (
	_ schedule.Repository[schedule.PPEEntry] = (*GormScheduleRepository[schedule.PPEEntry, *schedule.PPEEntry])(nil)
	_ schedule.PolicyRepository              = (*GormPolicyRepository)(nil)
)
