package compliance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/compliance"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockDiagnostics is a mock implementation of Diagnostics
type MockDiagnostics struct {
	mock.Mock
}

func (m *MockDiagnostics) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDiagnostics) TableStatus(ctx context.Context, name string, companyID uuid.UUID) compliance.TableStatus {
	return m.Called(ctx, name, companyID).Get(0).(compliance.TableStatus)
}

// MockHeadCounter is a mock implementation of HeadCounter
type MockHeadCounter struct {
	mock.Mock
}

func (m *MockHeadCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockControlFinder is a mock implementation of ControlFinder
type MockControlFinder struct {
	mock.Mock
}

func (m *MockControlFinder) FindByCompany(ctx context.Context, companyID uuid.UUID) (*company.CommonControl, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*company.CommonControl), args.Error(1)
}

// MockSnapshotLoader is a mock implementation of SnapshotLoader
type MockSnapshotLoader struct {
	mock.Mock
}

func (m *MockSnapshotLoader) LoadSnapshot(ctx context.Context, companyID uuid.UUID) (*compliance.Snapshot, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compliance.Snapshot), args.Error(1)
}

type fixture struct {
	diag      *MockDiagnostics
	heads     *MockHeadCounter
	controls  *MockControlFinder
	snapshots *MockSnapshotLoader
	svc       *ComplianceService
}

func newFixture() *fixture {
	f := &fixture{
		diag:      new(MockDiagnostics),
		heads:     new(MockHeadCounter),
		controls:  new(MockControlFinder),
		snapshots: new(MockSnapshotLoader),
	}
	f.svc = NewComplianceService(f.diag, f.heads, f.controls, f.snapshots, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC) }
	return f
}

func TestComplianceService_DebugCompliance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("reports tables and readiness", func(t *testing.T) {
		f := newFixture()
		f.diag.On("Ping", ctx).Return(nil)
		for _, name := range compliance.ScopedTables {
			status := compliance.TableStatus{Exists: true}
			switch name {
			case "noteSelection":
				status.Count = 60
			case "commonControl":
				status.Count = 1
			case "trialBalanceEntry":
				status.Count = 42
			}
			f.diag.On("TableStatus", ctx, name, companyID).Return(status)
		}
		f.heads.On("Count", ctx).Return(int64(31), nil)
		cc := company.NewCommonControl(companyID)
		cc.EntityName = "Acme Industries Ltd"
		f.controls.On("FindByCompany", ctx, companyID).Return(cc, nil)

		out, err := f.svc.DebugCompliance(ctx, companyID)
		require.NoError(t, err)
		assert.True(t, out.DatabaseConnection)
		assert.Len(t, out.TablesStatus, len(compliance.ScopedTables))
		assert.Equal(t, int64(42), out.TablesStatus["trialBalanceEntry"].Count)
		assert.Equal(t, compliance.StatusPass, out.BasicChecks["majorHeadsSeeded"].Status)
		assert.Equal(t, compliance.StatusPass, out.BasicChecks["systemReadiness"].Status)
		assert.Contains(t, out.BasicChecks["complianceQueryTest"].Message, "Acme Industries Ltd")
		assert.Equal(t, time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC), out.Timestamp)
		f.snapshots.AssertNotCalled(t, "LoadSnapshot", mock.Anything, mock.Anything)
	})

	t.Run("unconfigured company is not ready", func(t *testing.T) {
		f := newFixture()
		f.diag.On("Ping", ctx).Return(nil)
		f.diag.On("TableStatus", ctx, mock.Anything, companyID).Return(compliance.TableStatus{Exists: true})
		f.heads.On("Count", ctx).Return(int64(0), nil)
		f.controls.On("FindByCompany", ctx, companyID).Return(nil, shared.ErrNotFound)

		out, err := f.svc.DebugCompliance(ctx, companyID)
		require.NoError(t, err)
		ready := out.BasicChecks["systemReadiness"]
		assert.Equal(t, compliance.StatusFail, ready.Status)
		assert.Contains(t, ready.Message, "No common control data configured")
		assert.Contains(t, out.BasicChecks["complianceQueryTest"].Message, "Not configured")
	})

	t.Run("database unreachable", func(t *testing.T) {
		f := newFixture()
		f.diag.On("Ping", ctx).Return(errors.New("connection refused"))

		_, err := f.svc.DebugCompliance(ctx, companyID)
		require.Error(t, err)
		assert.Equal(t, shared.CodeInternal, shared.CodeOf(err))
		f.diag.AssertNotCalled(t, "TableStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestComplianceService_ValidateScheduleIIICompliance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newFixture()
	f.snapshots.On("LoadSnapshot", ctx, companyID).Return(&compliance.Snapshot{}, nil)

	report, err := f.svc.ValidateScheduleIIICompliance(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, compliance.OverallNonCompliant, report.OverallStatus)
	assert.NotEmpty(t, report.Issues)
	assert.Equal(t, compliance.StatusFail, report.Summary.EntityInformation)
}

func TestComplianceService_ValidateFinancialStatementFormat(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newFixture()
	f.snapshots.On("LoadSnapshot", ctx, companyID).Return(&compliance.Snapshot{}, nil)

	out, err := f.svc.ValidateFinancialStatementFormat(ctx, StatementFormatInput{CompanyID: companyID, StatementType: "profit_loss"})
	require.NoError(t, err)
	assert.False(t, out.Compliant)
	assert.Equal(t, 0, out.PassedChecks)

	_, err = f.svc.ValidateFinancialStatementFormat(ctx, StatementFormatInput{CompanyID: companyID, StatementType: "equity"})
	assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
}

func TestComplianceService_ValidateNoteCompliance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newFixture()
	f.snapshots.On("LoadSnapshot", ctx, companyID).Return(&compliance.Snapshot{}, nil)

	out, err := f.svc.ValidateNoteCompliance(ctx, NoteComplianceInput{CompanyID: companyID, NoteRef: "A.1"})
	require.NoError(t, err)
	assert.False(t, out.Exists)
	assert.Equal(t, []string{"Note A.1 does not exist"}, out.Issues)
}
