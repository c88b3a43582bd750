// Package note implements the note selection workflow: seeding the standard
// note list, user choices and the final numbering.
package note

import (
	"context"
	"strings"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyFinder loads companies
type CompanyFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
}

var errNoteNotFound = shared.NewDomainError(shared.CodeNotFound, "Note selection not found")

// NoteService handles note selection operations
type NoteService struct {
	repo      note.Repository
	companies CompanyFinder
	txManager shared.TxManager
	logger    *zap.Logger
}

// NewNoteService creates a new NoteService
func NewNoteService(repo note.Repository, companies CompanyFinder, txManager shared.TxManager, logger *zap.Logger) *NoteService {
	return &NoteService{repo: repo, companies: companies, txManager: txManager, logger: logger}
}

// GetNoteSelections returns the company's notes ordered by reference
func (s *NoteService) GetNoteSelections(ctx context.Context, companyID uuid.UUID) ([]note.NoteSelection, error) {
	notes, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []note.NoteSelection{}
	}
	return notes, nil
}

// InitializeNoteSelections replaces the company's notes with the standard list
func (s *NoteService) InitializeNoteSelections(ctx context.Context, companyID uuid.UUID) ([]note.NoteSelection, error) {
	if err := s.requireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	notes := note.DefaultNotes(companyID)
	if err := s.repo.ReplaceAll(ctx, companyID, notes); err != nil {
		return nil, err
	}
	s.logger.Info("Note selections initialized",
		zap.String("company_id", companyID.String()),
		zap.Int("count", len(notes)))
	return s.GetNoteSelections(ctx, companyID)
}

// AddNoteSelection adds a user note. References are unique per company.
func (s *NoteService) AddNoteSelection(ctx context.Context, input NoteInput) (*note.NoteSelection, error) {
	if err := s.requireCompany(ctx, input.CompanyID); err != nil {
		return nil, err
	}
	n, err := note.NewNoteSelection(input.CompanyID, input.NoteRef, input.Description, trimmed(input.LinkedMajorHead))
	if err != nil {
		return nil, err
	}
	if err := s.ensureRefFree(ctx, input.CompanyID, n.NoteRef, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, n); err != nil {
		if shared.IsConflict(err) {
			return nil, refTaken(n.NoteRef)
		}
		return nil, err
	}
	return n, nil
}

// UpdateNoteSelection revises a note and, when given, its selection
func (s *NoteService) UpdateNoteSelection(ctx context.Context, input UpdateNoteInput) (*note.NoteSelection, error) {
	n, err := s.find(ctx, input.CompanyID, input.ID)
	if err != nil {
		return nil, err
	}

	ref, description, linked := n.NoteRef, n.Description, n.LinkedMajorHead
	if input.NoteRef != "" {
		ref = input.NoteRef
	}
	if input.Description != "" {
		description = input.Description
	}
	if input.LinkedMajorHead != nil {
		linked = trimmed(input.LinkedMajorHead)
	}
	if strings.TrimSpace(ref) != n.NoteRef {
		if err := s.ensureRefFree(ctx, n.CompanyID, strings.TrimSpace(ref), n.ID); err != nil {
			return nil, err
		}
	}
	if err := n.Revise(ref, description, linked); err != nil {
		return nil, err
	}
	if input.UserSelected != nil {
		n.Select(*input.UserSelected)
	}
	if err := s.repo.Update(ctx, n); err != nil {
		if shared.IsConflict(err) {
			return nil, refTaken(n.NoteRef)
		}
		return nil, err
	}
	return n, nil
}

// UpdateNoteSelections applies a batch of selections by reference. Unknown
// references are created as user notes.
func (s *NoteService) UpdateNoteSelections(ctx context.Context, input BulkSelectionInput) (*BulkSelectionResult, error) {
	if err := s.requireCompany(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	result := &BulkSelectionResult{Success: true}
	err := s.txManager.InTx(ctx, func(ctx context.Context) error {
		for _, sel := range input.Selections {
			ref := strings.TrimSpace(sel.NoteRef)
			existing, err := s.repo.FindByRef(ctx, input.CompanyID, ref)
			switch {
			case err == nil:
				existing.Select(sel.UserSelected)
				if err := s.repo.Update(ctx, existing); err != nil {
					return err
				}
				result.Updated++
			case shared.IsNotFound(err):
				n, err := note.NewNoteSelection(input.CompanyID, ref, "Note for "+ref, nil)
				if err != nil {
					return err
				}
				n.Select(sel.UserSelected)
				if err := s.repo.Create(ctx, n); err != nil {
					return err
				}
				result.Created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	notes, err := s.GetNoteSelections(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	result.Notes = notes
	return result, nil
}

// DeleteNoteSelection removes a user note
func (s *NoteService) DeleteNoteSelection(ctx context.Context, input NoteIDInput) error {
	n, err := s.find(ctx, input.CompanyID, input.ID)
	if err != nil {
		return err
	}
	if err := n.CanDelete(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, n.ID); err != nil {
		if shared.IsNotFound(err) {
			return errNoteNotFound
		}
		return err
	}
	return nil
}

// UpdateNoteNumbers renumbers the finally selected notes and returns them in
// numbering order
func (s *NoteService) UpdateNoteNumbers(ctx context.Context, companyID uuid.UUID) (*NumberingResult, error) {
	notes, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	numbered := note.Number(notes)
	out := make([]note.NoteSelection, 0, len(numbered))
	for _, n := range numbered {
		if err := s.repo.SetAutoNumber(ctx, n.ID, *n.AutoNumber); err != nil {
			return nil, err
		}
		out = append(out, *n)
	}

	s.logger.Info("Note numbers updated",
		zap.String("company_id", companyID.String()),
		zap.Int("count", len(out)))
	return &NumberingResult{Success: true, UpdatedCount: len(out), Notes: out}, nil
}

func (s *NoteService) find(ctx context.Context, companyID, id uuid.UUID) (*note.NoteSelection, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, errNoteNotFound
		}
		return nil, err
	}
	if n.CompanyID != companyID {
		return nil, errNoteNotFound
	}
	return n, nil
}

func (s *NoteService) requireCompany(ctx context.Context, companyID uuid.UUID) error {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if shared.IsNotFound(err) {
			return shared.NewDomainError(shared.CodeNotFound, "Company not found")
		}
		return err
	}
	return nil
}

// ensureRefFree rejects ref when another note of the company already uses it
func (s *NoteService) ensureRefFree(ctx context.Context, companyID uuid.UUID, ref string, self uuid.UUID) error {
	existing, err := s.repo.FindByRef(ctx, companyID, ref)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return refTaken(ref)
	}
	return nil
}

func refTaken(ref string) error {
	return shared.NewDomainError(shared.CodeConflict, "A note with reference "+ref+" already exists for this company")
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
