// Package taxonomy manages the global major head, minor head and grouping lists.
package taxonomy

import (
	"context"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaxonomyService handles the classification hierarchy
type TaxonomyService struct {
	majorRepo    taxonomy.MajorHeadRepository
	minorRepo    taxonomy.MinorHeadRepository
	groupingRepo taxonomy.GroupingRepository
	txManager    shared.TxManager
	logger       *zap.Logger
}

// NewTaxonomyService creates a new TaxonomyService
func NewTaxonomyService(
	majorRepo taxonomy.MajorHeadRepository,
	minorRepo taxonomy.MinorHeadRepository,
	groupingRepo taxonomy.GroupingRepository,
	txManager shared.TxManager,
	logger *zap.Logger,
) *TaxonomyService {
	return &TaxonomyService{
		majorRepo:    majorRepo,
		minorRepo:    minorRepo,
		groupingRepo: groupingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// =============================================================================
// Major heads
// =============================================================================

// GetMajorHeads lists major heads by statement type, category and name
func (s *TaxonomyService) GetMajorHeads(ctx context.Context) ([]MajorHeadResponse, error) {
	heads, err := s.majorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MajorHeadResponse, len(heads))
	for i := range heads {
		out[i] = toMajorHeadResponse(&heads[i].MajorHead, heads[i].MinorHeadCount, heads[i].TrialBalanceCount)
	}
	return out, nil
}

// AddMajorHead creates a major head
func (s *TaxonomyService) AddMajorHead(ctx context.Context, input MajorHeadInput) (*MajorHeadResponse, error) {
	head, err := taxonomy.NewMajorHead(input.Name, taxonomy.StatementType(input.StatementType), taxonomy.Category(input.Category))
	if err != nil {
		return nil, err
	}
	if err := s.majorRepo.Create(ctx, head); err != nil {
		return nil, conflictAs(err, "Major head '"+head.Name+"' already exists")
	}

	s.logger.Info("Major head added", zap.String("name", head.Name))
	resp := toMajorHeadResponse(head, 0, 0)
	return &resp, nil
}

// UpdateMajorHead renames or reclassifies a major head
func (s *TaxonomyService) UpdateMajorHead(ctx context.Context, input MajorHeadInput) (*MajorHeadResponse, error) {
	if input.ID == nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Major head id is required")
	}
	head, err := s.majorRepo.FindByID(ctx, *input.ID)
	if err != nil {
		return nil, notFoundAs(err, "Major head not found")
	}
	if err := head.Reclassify(input.Name, taxonomy.StatementType(input.StatementType), taxonomy.Category(input.Category)); err != nil {
		return nil, err
	}
	if err := s.majorRepo.Update(ctx, head); err != nil {
		return nil, conflictAs(err, "Major head '"+head.Name+"' already exists")
	}
	resp := toMajorHeadResponse(head, 0, 0)
	return &resp, nil
}

// DeleteMajorHead removes a major head with its minor heads and groupings
func (s *TaxonomyService) DeleteMajorHead(ctx context.Context, input IDInput) error {
	children, err := s.minorRepo.List(ctx, &input.ID)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return shared.NewDomainError(shared.CodeBadRequest, "Major head still has minor heads")
	}
	if err := s.majorRepo.Delete(ctx, input.ID); err != nil {
		return notFoundAs(err, "Major head not found")
	}
	s.logger.Info("Major head deleted", zap.String("id", input.ID.String()))
	return nil
}

// =============================================================================
// Minor heads
// =============================================================================

// GetMinorHeads lists minor heads by name, optionally under one major head
func (s *TaxonomyService) GetMinorHeads(ctx context.Context, filter MinorHeadFilter) ([]MinorHeadResponse, error) {
	heads, err := s.minorRepo.List(ctx, filter.MajorHeadID)
	if err != nil {
		return nil, err
	}
	out := make([]MinorHeadResponse, len(heads))
	for i, h := range heads {
		out[i] = MinorHeadResponse{
			ID:                h.ID,
			Name:              h.Name,
			MajorHeadID:       h.MajorHeadID,
			MajorHeadName:     h.MajorHeadName,
			GroupingCount:     h.GroupingCount,
			TrialBalanceCount: h.TrialBalanceCount,
		}
	}
	return out, nil
}

// AddMinorHead creates a minor head under an existing major head
func (s *TaxonomyService) AddMinorHead(ctx context.Context, input MinorHeadInput) (*MinorHeadResponse, error) {
	major, err := s.majorRepo.FindByID(ctx, input.MajorHeadID)
	if err != nil {
		return nil, notFoundAs(err, "Major head not found")
	}
	head, err := taxonomy.NewMinorHead(input.Name, major.ID)
	if err != nil {
		return nil, err
	}
	if err := s.minorRepo.Create(ctx, head); err != nil {
		return nil, conflictAs(err, "Minor head '"+head.Name+"' already exists under "+major.Name)
	}

	return &MinorHeadResponse{ID: head.ID, Name: head.Name, MajorHeadID: major.ID, MajorHeadName: major.Name}, nil
}

// UpdateMinorHead renames a minor head or moves it to another major head
func (s *TaxonomyService) UpdateMinorHead(ctx context.Context, input MinorHeadInput) (*MinorHeadResponse, error) {
	if input.ID == nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Minor head id is required")
	}
	head, err := s.minorRepo.FindByID(ctx, *input.ID)
	if err != nil {
		return nil, notFoundAs(err, "Minor head not found")
	}
	major, err := s.majorRepo.FindByID(ctx, input.MajorHeadID)
	if err != nil {
		return nil, notFoundAs(err, "Major head not found")
	}
	if err := head.Move(input.Name, major.ID); err != nil {
		return nil, err
	}
	if err := s.minorRepo.Update(ctx, head); err != nil {
		return nil, conflictAs(err, "Minor head '"+head.Name+"' already exists under "+major.Name)
	}
	return &MinorHeadResponse{ID: head.ID, Name: head.Name, MajorHeadID: major.ID, MajorHeadName: major.Name}, nil
}

// DeleteMinorHead removes a minor head with its groupings
func (s *TaxonomyService) DeleteMinorHead(ctx context.Context, input IDInput) error {
	children, err := s.groupingRepo.List(ctx, &input.ID)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return shared.NewDomainError(shared.CodeBadRequest, "Minor head still has groupings")
	}
	if err := s.minorRepo.Delete(ctx, input.ID); err != nil {
		return notFoundAs(err, "Minor head not found")
	}
	return nil
}

// =============================================================================
// Groupings
// =============================================================================

// GetGroupings lists groupings by name, optionally under one minor head
func (s *TaxonomyService) GetGroupings(ctx context.Context, filter GroupingFilter) ([]GroupingResponse, error) {
	groupings, err := s.groupingRepo.List(ctx, filter.MinorHeadID)
	if err != nil {
		return nil, err
	}
	out := make([]GroupingResponse, len(groupings))
	for i, g := range groupings {
		out[i] = GroupingResponse{
			ID:                g.ID,
			Name:              g.Name,
			MinorHeadID:       g.MinorHeadID,
			MinorHeadName:     g.MinorHeadName,
			TrialBalanceCount: g.TrialBalanceCount,
		}
	}
	return out, nil
}

// AddGrouping creates a grouping under an existing minor head
func (s *TaxonomyService) AddGrouping(ctx context.Context, input GroupingInput) (*GroupingResponse, error) {
	minor, err := s.minorRepo.FindByID(ctx, input.MinorHeadID)
	if err != nil {
		return nil, notFoundAs(err, "Minor head not found")
	}
	g, err := taxonomy.NewGrouping(input.Name, minor.ID)
	if err != nil {
		return nil, err
	}
	if err := s.groupingRepo.Create(ctx, g); err != nil {
		return nil, conflictAs(err, "Grouping '"+g.Name+"' already exists under "+minor.Name)
	}
	return &GroupingResponse{ID: g.ID, Name: g.Name, MinorHeadID: minor.ID, MinorHeadName: minor.Name}, nil
}

// UpdateGrouping renames a grouping or moves it to another minor head
func (s *TaxonomyService) UpdateGrouping(ctx context.Context, input GroupingInput) (*GroupingResponse, error) {
	if input.ID == nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Grouping id is required")
	}
	g, err := s.groupingRepo.FindByID(ctx, *input.ID)
	if err != nil {
		return nil, notFoundAs(err, "Grouping not found")
	}
	minor, err := s.minorRepo.FindByID(ctx, input.MinorHeadID)
	if err != nil {
		return nil, notFoundAs(err, "Minor head not found")
	}
	if err := g.Move(input.Name, minor.ID); err != nil {
		return nil, err
	}
	if err := s.groupingRepo.Update(ctx, g); err != nil {
		return nil, conflictAs(err, "Grouping '"+g.Name+"' already exists under "+minor.Name)
	}
	return &GroupingResponse{ID: g.ID, Name: g.Name, MinorHeadID: minor.ID, MinorHeadName: minor.Name}, nil
}

// DeleteGrouping removes a grouping
func (s *TaxonomyService) DeleteGrouping(ctx context.Context, input IDInput) error {
	if err := s.groupingRepo.Delete(ctx, input.ID); err != nil {
		return notFoundAs(err, "Grouping not found")
	}
	return nil
}

// =============================================================================
// Seeding
// =============================================================================

// SeedTaxonomy loads the standard Schedule III lists. Rows that already exist
// by name are kept, so running it again creates nothing.
func (s *TaxonomyService) SeedTaxonomy(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}
	err := s.txManager.InTx(ctx, func(ctx context.Context) error {
		for _, std := range taxonomy.StandardTaxonomy {
			major, created, err := s.findOrCreateMajor(ctx, std)
			if err != nil {
				return err
			}
			if created {
				result.MajorHeadsCreated++
			}
			for _, stdMinor := range std.MinorHeads {
				minor, created, err := s.findOrCreateMinor(ctx, stdMinor.Name, major.ID)
				if err != nil {
					return err
				}
				if created {
					result.MinorHeadsCreated++
				}
				for _, name := range stdMinor.Groupings {
					created, err := s.ensureGrouping(ctx, name, minor.ID)
					if err != nil {
						return err
					}
					if created {
						result.GroupingsCreated++
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Taxonomy seeding failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Taxonomy seeded",
		zap.Int("major_heads", result.MajorHeadsCreated),
		zap.Int("minor_heads", result.MinorHeadsCreated),
		zap.Int("groupings", result.GroupingsCreated))
	return result, nil
}

func (s *TaxonomyService) findOrCreateMajor(ctx context.Context, std taxonomy.StandardMajorHead) (*taxonomy.MajorHead, bool, error) {
	existing, err := s.majorRepo.FindByName(ctx, std.Name)
	if err == nil {
		return existing, false, nil
	}
	if !shared.IsNotFound(err) {
		return nil, false, err
	}
	head, err := taxonomy.NewMajorHead(std.Name, std.StatementType, std.Category)
	if err != nil {
		return nil, false, err
	}
	if err := s.majorRepo.Create(ctx, head); err != nil {
		return nil, false, err
	}
	return head, true, nil
}

func (s *TaxonomyService) findOrCreateMinor(ctx context.Context, name string, majorID uuid.UUID) (*taxonomy.MinorHead, bool, error) {
	existing, err := s.minorRepo.FindByName(ctx, name, &majorID)
	if err == nil {
		return existing, false, nil
	}
	if !shared.IsNotFound(err) {
		return nil, false, err
	}
	head, err := taxonomy.NewMinorHead(name, majorID)
	if err != nil {
		return nil, false, err
	}
	if err := s.minorRepo.Create(ctx, head); err != nil {
		return nil, false, err
	}
	return head, true, nil
}

func (s *TaxonomyService) ensureGrouping(ctx context.Context, name string, minorID uuid.UUID) (bool, error) {
	_, err := s.groupingRepo.FindByName(ctx, name, &minorID)
	if err == nil {
		return false, nil
	}
	if !shared.IsNotFound(err) {
		return false, err
	}
	g, err := taxonomy.NewGrouping(name, minorID)
	if err != nil {
		return false, err
	}
	if err := s.groupingRepo.Create(ctx, g); err != nil {
		return false, err
	}
	return true, nil
}

func notFoundAs(err error, message string) error {
	if shared.IsNotFound(err) {
		return shared.NewDomainError(shared.CodeNotFound, message)
	}
	return err
}

func conflictAs(err error, message string) error {
	if shared.IsConflict(err) {
		return shared.NewDomainError(shared.CodeConflict, message)
	}
	return err
}
