// Package compliance runs the Schedule III readiness diagnostics and the
// weighted compliance validation for a company.
package compliance

import (
	"context"
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/compliance"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Diagnostics inspects the database for a debug run
type Diagnostics interface {
	Ping(ctx context.Context) error
	TableStatus(ctx context.Context, name string, companyID uuid.UUID) compliance.TableStatus
}

// HeadCounter counts the seeded major heads
type HeadCounter interface {
	Count(ctx context.Context) (int64, error)
}

// ControlFinder loads the common control settings of a company
type ControlFinder interface {
	FindByCompany(ctx context.Context, companyID uuid.UUID) (*company.CommonControl, error)
}

// SnapshotLoader reads the compliance view of a company
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, companyID uuid.UUID) (*compliance.Snapshot, error)
}

// ComplianceService handles compliance operations
type ComplianceService struct {
	diagnostics Diagnostics
	heads       HeadCounter
	controls    ControlFinder
	snapshots   SnapshotLoader
	logger      *zap.Logger
	now         func() time.Time
}

// NewComplianceService creates a new ComplianceService
func NewComplianceService(
	diagnostics Diagnostics,
	heads HeadCounter,
	controls ControlFinder,
	snapshots SnapshotLoader,
	logger *zap.Logger,
) *ComplianceService {
	return &ComplianceService{
		diagnostics: diagnostics,
		heads:       heads,
		controls:    controls,
		snapshots:   snapshots,
		logger:      logger,
		now:         time.Now,
	}
}

// DebugCompliance reports database connectivity, per-table row counts and
// the readiness checks for a company. It never writes.
func (s *ComplianceService) DebugCompliance(ctx context.Context, companyID uuid.UUID) (*compliance.Diagnostics, error) {
	if err := s.diagnostics.Ping(ctx); err != nil {
		s.logger.Error("Compliance debug database check failed", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeInternal, "Database connection failed: "+err.Error(), err)
	}

	out := &compliance.Diagnostics{
		DatabaseConnection: true,
		TablesStatus:       make(map[string]compliance.TableStatus, len(compliance.ScopedTables)),
		Timestamp:          s.now().UTC(),
	}
	for _, name := range compliance.ScopedTables {
		out.TablesStatus[name] = s.diagnostics.TableStatus(ctx, name, companyID)
	}

	counts := compliance.ReadinessCounts{
		NoteSelections: out.TablesStatus["noteSelection"].Count,
		CommonControls: out.TablesStatus["commonControl"].Count,
		TrialBalance:   out.TablesStatus["trialBalanceEntry"].Count,
	}
	heads, err := s.heads.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts.MajorHeads = heads

	cc, err := s.controls.FindByCompany(ctx, companyID)
	switch {
	case err == nil:
		counts.EntityName = cc.EntityName
	case !shared.IsNotFound(err):
		return nil, err
	}
	out.BasicChecks = compliance.BasicChecks(counts)
	return out, nil
}

// ValidateScheduleIIICompliance scores the company's data against every check
func (s *ComplianceService) ValidateScheduleIIICompliance(ctx context.Context, companyID uuid.UUID) (*compliance.Report, error) {
	snap, err := s.snapshots.LoadSnapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report := compliance.Validate(snap)
	s.logger.Info("Schedule III compliance validated",
		zap.String("company_id", companyID.String()),
		zap.Int("score", report.ComplianceScore),
		zap.String("status", string(report.OverallStatus)),
		zap.Int("issues", len(report.Issues)))
	return &report, nil
}

// ValidateNoteCompliance reports on a single note
func (s *ComplianceService) ValidateNoteCompliance(ctx context.Context, input NoteComplianceInput) (*compliance.NoteCheck, error) {
	snap, err := s.snapshots.LoadSnapshot(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	check := compliance.CheckNote(snap, input.NoteRef)
	return &check, nil
}

// ValidateFinancialStatementFormat checks that the trial balance carries the
// line items of a statement
func (s *ComplianceService) ValidateFinancialStatementFormat(ctx context.Context, input StatementFormatInput) (*compliance.FormatCheck, error) {
	snap, err := s.snapshots.LoadSnapshot(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	check, err := compliance.CheckStatementFormat(snap, input.StatementType)
	if err != nil {
		return nil, err
	}
	return &check, nil
}
