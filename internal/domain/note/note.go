// Package note manages the statutory disclosure notes a company includes in
// its financial statements and their final numbering.
package note

import (
	"sort"
	"strconv"
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PolicyPrefix marks accounting policy notes, which keep their reference as number
const PolicyPrefix = "A."

// NoteSelection is one disclosure note of a company
type NoteSelection struct {
	shared.CompanyScoped
	NoteRef           string  `gorm:"type:varchar(20);not null" json:"noteRef"`
	Description       string  `gorm:"type:varchar(500);not null" json:"description"`
	LinkedMajorHead   *string `gorm:"type:varchar(200)" json:"linkedMajorHead"`
	SystemRecommended bool    `gorm:"not null;default:false" json:"systemRecommended"`
	UserSelected      bool    `gorm:"not null;default:false" json:"userSelected"`
	FinalSelected     bool    `gorm:"not null;default:false" json:"finalSelected"`
	AutoNumber        *string `gorm:"type:varchar(20)" json:"autoNumber"`
}

func (NoteSelection) TableName() string { return "note_selections" }

// NewNoteSelection creates a user-chosen note. User notes start selected.
func NewNoteSelection(companyID uuid.UUID, noteRef, description string, linkedMajorHead *string) (*NoteSelection, error) {
	n := &NoteSelection{
		CompanyScoped:   shared.NewCompanyScoped(companyID),
		NoteRef:         strings.TrimSpace(noteRef),
		Description:     strings.TrimSpace(description),
		LinkedMajorHead: linkedMajorHead,
		UserSelected:    true,
		FinalSelected:   true,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// Validate checks the company, reference and description
func (n *NoteSelection) Validate() error {
	if n.CompanyID == uuid.Nil {
		return shared.NewDomainError(shared.CodeValidation, "Company is required")
	}
	if n.NoteRef == "" {
		return shared.NewDomainError(shared.CodeValidation, "Note reference is required")
	}
	if n.Description == "" {
		return shared.NewDomainError(shared.CodeValidation, "Description is required")
	}
	return nil
}

// Revise replaces the reference, description and linked major head
func (n *NoteSelection) Revise(noteRef, description string, linkedMajorHead *string) error {
	noteRef, description = strings.TrimSpace(noteRef), strings.TrimSpace(description)
	if noteRef == "" {
		return shared.NewDomainError(shared.CodeValidation, "Note reference is required")
	}
	if description == "" {
		return shared.NewDomainError(shared.CodeValidation, "Description is required")
	}
	n.NoteRef = noteRef
	n.Description = description
	n.LinkedMajorHead = linkedMajorHead
	n.Touch()
	return nil
}

// Select sets the user choice, which also becomes the final selection
func (n *NoteSelection) Select(selected bool) {
	n.UserSelected = selected
	n.FinalSelected = selected
	n.Touch()
}

// CanDelete rejects removal of system recommended notes
func (n *NoteSelection) CanDelete() error {
	if n.SystemRecommended {
		return shared.NewDomainError(shared.CodeBadRequest, "Cannot delete system recommended notes")
	}
	return nil
}

// IsPolicy reports whether the note is an accounting policy note
func (n *NoteSelection) IsPolicy() bool {
	return strings.HasPrefix(n.NoteRef, PolicyPrefix)
}

// Number recomputes AutoNumber for every finally selected note. Notes are
// taken in reference order; policy notes keep their reference and every other
// note gets the next integer. It returns the notes whose number was assigned,
// in that order. Unselected notes are left untouched.
func Number(notes []NoteSelection) []*NoteSelection {
	selected := make([]*NoteSelection, 0, len(notes))
	for i := range notes {
		if notes[i].FinalSelected {
			selected = append(selected, &notes[i])
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].NoteRef < selected[j].NoteRef
	})

	next := 1
	for _, n := range selected {
		var num string
		if n.IsPolicy() {
			num = n.NoteRef
		} else {
			num = strconv.Itoa(next)
			next++
		}
		n.AutoNumber = &num
	}
	return selected
}
