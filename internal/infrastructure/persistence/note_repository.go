package persistence

import (
	"context"

	"github.com/finstatements/backend/internal/domain/note"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNoteRepository implements note.Repository using GORM
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a new GormNoteRepository
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	return &GormNoteRepository{db: db}
}

// Create inserts a note; a duplicate reference within the company is a conflict
func (r *GormNoteRepository) Create(ctx context.Context, n *note.NoteSelection) error {
	return translate(conn(ctx, r.db).Create(n).Error)
}

// Update saves an existing note
func (r *GormNoteRepository) Update(ctx context.Context, n *note.NoteSelection) error {
	return affected(conn(ctx, r.db).Save(n))
}

// Delete deletes a note by ID
func (r *GormNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(conn(ctx, r.db).Delete(&note.NoteSelection{}, "id = ?", id))
}

// FindByID finds a note by ID
func (r *GormNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*note.NoteSelection, error) {
	var n note.NoteSelection
	if err := conn(ctx, r.db).First(&n, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

// FindByRef finds the note of a company with the given reference
func (r *GormNoteRepository) FindByRef(ctx context.Context, companyID uuid.UUID, noteRef string) (*note.NoteSelection, error) {
	var n note.NoteSelection
	if err := conn(ctx, r.db).
		Where("company_id = ? AND note_ref = ?", companyID, noteRef).
		First(&n).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

// ListByCompany returns the company's notes ordered by reference
func (r *GormNoteRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]note.NoteSelection, error) {
	var out []note.NoteSelection
	if err := conn(ctx, r.db).
		Where("company_id = ?", companyID).
		Order("note_ref ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceAll deletes the company's notes and inserts notes in one transaction
func (r *GormNoteRepository) ReplaceAll(ctx context.Context, companyID uuid.UUID, notes []note.NoteSelection) error {
	return NewGormTxManager(r.db).InTx(ctx, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		if err := db.Where("company_id = ?", companyID).Delete(&note.NoteSelection{}).Error; err != nil {
			return err
		}
		if len(notes) == 0 {
			return nil
		}
		return translate(db.CreateInBatches(notes, 100).Error)
	})
}

// SetAutoNumber writes the auto number of one note
func (r *GormNoteRepository) SetAutoNumber(ctx context.Context, id uuid.UUID, autoNumber string) error {
	return affected(conn(ctx, r.db).
		Model(&note.NoteSelection{}).
		Where("id = ?", id).
		Update("auto_number", autoNumber))
}

// CountByCompany counts the company's notes
func (r *GormNoteRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&note.NoteSelection{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}

// Ensure interface is implemented
var _ note.Repository = (*GormNoteRepository)(nil)
