package ledger

import (
	"context"
	"strings"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
)

// headResolver finds taxonomy heads by name for one import, creating the
// missing ones. Lookups are cached for the lifetime of the resolver.
type headResolver struct {
	majorRepo    taxonomy.MajorHeadRepository
	minorRepo    taxonomy.MinorHeadRepository
	groupingRepo taxonomy.GroupingRepository

	majors    map[string]uuid.UUID
	minors    map[string]uuid.UUID
	groupings map[string]uuid.UUID
	created   int
}

func (s *TrialBalanceService) newHeadResolver() *headResolver {
	return &headResolver{
		majorRepo:    s.majorRepo,
		minorRepo:    s.minorRepo,
		groupingRepo: s.groupingRepo,
		majors:       make(map[string]uuid.UUID),
		minors:       make(map[string]uuid.UUID),
		groupings:    make(map[string]uuid.UUID),
	}
}

// classify links entry to the heads named in in
func (r *headResolver) classify(ctx context.Context, entry *ledger.TrialBalanceEntry, in *TrialBalanceEntryInput) error {
	majorName := strings.TrimSpace(in.MajorHead)
	minorName := strings.TrimSpace(in.MinorHead)
	groupingName := strings.TrimSpace(in.Grouping)

	if majorName == "" && (minorName != "" || groupingName != "") {
		return shared.NewDomainError(shared.CodeValidation,
			"Ledger '"+entry.LedgerName+"': a minor head or grouping needs a major head")
	}
	if minorName == "" && groupingName != "" {
		return shared.NewDomainError(shared.CodeValidation,
			"Ledger '"+entry.LedgerName+"': a grouping needs a minor head")
	}

	var majorID, minorID, groupingID *uuid.UUID
	if majorName != "" {
		id, err := r.major(ctx, majorName, entry)
		if err != nil {
			return err
		}
		majorID = &id
	}
	if minorName != "" {
		id, err := r.minor(ctx, minorName, *majorID)
		if err != nil {
			return err
		}
		minorID = &id
	}
	if groupingName != "" {
		id, err := r.grouping(ctx, groupingName, *minorID)
		if err != nil {
			return err
		}
		groupingID = &id
	}
	entry.Classify(majorID, minorID, groupingID)
	return nil
}

func (r *headResolver) major(ctx context.Context, name string, entry *ledger.TrialBalanceEntry) (uuid.UUID, error) {
	if id, ok := r.majors[name]; ok {
		return id, nil
	}
	head, err := r.majorRepo.FindByName(ctx, name)
	if err != nil && !shared.IsNotFound(err) {
		return uuid.Nil, err
	}
	if head == nil {
		head, err = taxonomy.NewMajorHead(name, entry.Type, ledger.DefaultCategory(entry.Type, entry.ClosingBalanceCY))
		if err != nil {
			return uuid.Nil, err
		}
		if err := r.majorRepo.Create(ctx, head); err != nil {
			return uuid.Nil, err
		}
		r.created++
	}
	r.majors[name] = head.ID
	return head.ID, nil
}

func (r *headResolver) minor(ctx context.Context, name string, majorID uuid.UUID) (uuid.UUID, error) {
	key := majorID.String() + "/" + name
	if id, ok := r.minors[key]; ok {
		return id, nil
	}
	head, err := r.minorRepo.FindByName(ctx, name, &majorID)
	if err != nil && !shared.IsNotFound(err) {
		return uuid.Nil, err
	}
	if head == nil {
		head, err = taxonomy.NewMinorHead(name, majorID)
		if err != nil {
			return uuid.Nil, err
		}
		if err := r.minorRepo.Create(ctx, head); err != nil {
			return uuid.Nil, err
		}
		r.created++
	}
	r.minors[key] = head.ID
	return head.ID, nil
}

func (r *headResolver) grouping(ctx context.Context, name string, minorID uuid.UUID) (uuid.UUID, error) {
	key := minorID.String() + "/" + name
	if id, ok := r.groupings[key]; ok {
		return id, nil
	}
	g, err := r.groupingRepo.FindByName(ctx, name, &minorID)
	if err != nil && !shared.IsNotFound(err) {
		return uuid.Nil, err
	}
	if g == nil {
		g, err = taxonomy.NewGrouping(name, minorID)
		if err != nil {
			return uuid.Nil, err
		}
		if err := r.groupingRepo.Create(ctx, g); err != nil {
			return uuid.Nil, err
		}
		r.created++
	}
	r.groupings[key] = g.ID
	return g.ID, nil
}
