// Package schedule implements the supporting schedules: generic create, list,
// merge and delete of every schedule entry type, the aging summaries of the
// receivable and payable ledgers, tax expense and accounting policies.
package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyFinder looks companies up so entries are never attached to a missing one
type CompanyFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
}

// Row is the constraint satisfied by pointers to schedule entry types
type Row[T any] interface {
	*T
	schedule.Entry
	Scope() *shared.CompanyScoped
}

// deriver is implemented by entries that compute fields the caller left out
type deriver interface{ Derive() }

// defaulter is implemented by entries with default values for empty fields
type defaulter interface{ ApplyDefaults() }

// identityFields are never taken from a merge payload
var identityFields = []string{"id", "companyId", "createdAt", "updatedAt"}

// EntryService provides create, list, merge and delete for one schedule type
type EntryService[T any, PT Row[T]] struct {
	label     string
	repo      schedule.Repository[T]
	companies CompanyFinder
	logger    *zap.Logger
}

// NewEntryService creates an EntryService. label names the entry in messages,
// for example "PPE entry".
func NewEntryService[T any, PT Row[T]](label string, repo schedule.Repository[T], companies CompanyFinder, logger *zap.Logger) *EntryService[T, PT] {
	return &EntryService[T, PT]{
		label:     label,
		repo:      repo,
		companies: companies,
		logger:    logger.With(zap.String("schedule", PT(new(T)).TableName())),
	}
}

// Label is the human readable entry name
func (s *EntryService[T, PT]) Label() string {
	return s.label
}

// List returns the company's entries. An empty sort keeps the natural key order.
func (s *EntryService[T, PT]) List(ctx context.Context, companyID uuid.UUID, sort SortInput) ([]T, error) {
	var (
		out []T
		err error
	)
	if sort.SortBy == "" {
		out, err = s.repo.ListByCompany(ctx, companyID)
	} else {
		out, err = s.repo.ListSorted(ctx, companyID, sort.SortBy, sort.SortOrder)
	}
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Add decodes payload into a new entry of companyID, fills derived fields,
// validates and stores it
func (s *EntryService[T, PT]) Add(ctx context.Context, companyID uuid.UUID, payload json.RawMessage) (*T, error) {
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Company not found")
		}
		return nil, err
	}

	entry := new(T)
	if err := decodeStrict(payload, entry); err != nil {
		return nil, err
	}
	*PT(entry).Scope() = shared.NewCompanyScoped(companyID)
	prepare(PT(entry))
	if err := PT(entry).Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Schedule entry added",
		zap.String("company_id", companyID.String()),
		zap.String("id", PT(entry).GetID().String()))
	return entry, nil
}

// Update merges the fields present in patch into the stored entry. Fields
// absent from patch keep their value; identity fields cannot be changed.
func (s *EntryService[T, PT]) Update(ctx context.Context, companyID, id uuid.UUID, patch json.RawMessage) (*T, error) {
	current, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	merged, err := mergeJSON(current, patch)
	if err != nil {
		return nil, err
	}
	entry := new(T)
	if err := decodeStrict(merged, entry); err != nil {
		return nil, err
	}
	*PT(entry).Scope() = *PT(current).Scope()
	PT(entry).Scope().Touch()
	prepare(PT(entry))
	if err := PT(entry).Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, s.notFoundAs(err)
	}
	return entry, nil
}

// Delete removes one entry of the company
func (s *EntryService[T, PT]) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if _, err := s.find(ctx, companyID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.notFoundAs(err)
	}
	s.logger.Info("Schedule entry deleted", zap.String("id", id.String()))
	return nil
}

func (s *EntryService[T, PT]) find(ctx context.Context, companyID, id uuid.UUID) (*T, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.notFoundAs(err)
	}
	if PT(entry).GetCompanyID() != companyID {
		return nil, shared.NewDomainError(shared.CodeNotFound, s.label+" not found")
	}
	return entry, nil
}

func (s *EntryService[T, PT]) notFoundAs(err error) error {
	if shared.IsNotFound(err) {
		return shared.NewDomainError(shared.CodeNotFound, s.label+" not found")
	}
	return err
}

func prepare(entry any) {
	if d, ok := entry.(defaulter); ok {
		d.ApplyDefaults()
	}
	if d, ok := entry.(deriver); ok {
		d.Derive()
	}
}

// decodeStrict rejects unknown fields so misspelled columns are reported
// instead of silently dropped
func decodeStrict(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return shared.WrapDomainError(shared.CodeValidation, "Invalid input: "+strings.TrimPrefix(err.Error(), "json: "), err)
	}
	return nil
}

// mergeJSON overlays the top-level fields of patch onto current
func mergeJSON(current any, patch json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}

	changes := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(patch)) > 0 {
		if err := json.Unmarshal(patch, &changes); err != nil {
			return nil, shared.WrapDomainError(shared.CodeValidation, "Invalid input: expected an object", err)
		}
	}
	for _, f := range identityFields {
		delete(changes, f)
	}
	for k, v := range changes {
		fields[k] = v
	}
	return json.Marshal(fields)
}
