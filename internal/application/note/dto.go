package note

import (
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/google/uuid"
)

// CompanyInput identifies a company
type CompanyInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// NoteInput creates a user note
type NoteInput struct {
	CompanyID       uuid.UUID `json:"companyId" binding:"required"`
	NoteRef         string    `json:"noteRef" binding:"required,max=20"`
	Description     string    `json:"description" binding:"required,max=500"`
	LinkedMajorHead *string   `json:"linkedMajorHead" binding:"omitempty,max=200"`
}

// UpdateNoteInput revises a note. Empty fields keep their current value.
type UpdateNoteInput struct {
	ID              uuid.UUID `json:"id" binding:"required"`
	CompanyID       uuid.UUID `json:"companyId" binding:"required"`
	NoteRef         string    `json:"noteRef" binding:"omitempty,max=20"`
	Description     string    `json:"description" binding:"omitempty,max=500"`
	LinkedMajorHead *string   `json:"linkedMajorHead" binding:"omitempty,max=200"`
	UserSelected    *bool     `json:"userSelected"`
}

// NoteIDInput identifies a note of a company
type NoteIDInput struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// Selection is one entry of a bulk selection update
type Selection struct {
	NoteRef      string `json:"noteRef" binding:"required,max=20"`
	UserSelected bool   `json:"userSelected"`
}

// BulkSelectionInput sets the selection of many notes by reference
type BulkSelectionInput struct {
	CompanyID  uuid.UUID   `json:"companyId" binding:"required"`
	Selections []Selection `json:"selections" binding:"required,dive"`
}

// BulkSelectionResult reports a bulk selection update
type BulkSelectionResult struct {
	Success bool                 `json:"success"`
	Created int                  `json:"created"`
	Updated int                  `json:"updated"`
	Notes   []note.NoteSelection `json:"notes"`
}

// NumberingResult reports a renumbering run
type NumberingResult struct {
	Success      bool                 `json:"success"`
	UpdatedCount int                  `json:"updatedCount"`
	Notes        []note.NoteSelection `json:"notes"`
}
