package note

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists note selections
type Repository interface {
	Create(ctx context.Context, n *NoteSelection) error
	Update(ctx context.Context, n *NoteSelection) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*NoteSelection, error)
	FindByRef(ctx context.Context, companyID uuid.UUID, noteRef string) (*NoteSelection, error)
	// ListByCompany returns the notes of a company ordered by note_ref
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]NoteSelection, error)
	// ReplaceAll deletes every note of the company and inserts notes
	ReplaceAll(ctx context.Context, companyID uuid.UUID, notes []NoteSelection) error
	// SetAutoNumber writes the number of a single note
	SetAutoNumber(ctx context.Context, id uuid.UUID, autoNumber string) error
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
}
