package ledger

import (
	"context"
	"strings"
	"testing"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/finstatements/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTrialBalanceRepository is a mock implementation of ledger.TrialBalanceRepository
type MockTrialBalanceRepository struct {
	mock.Mock
}

func (m *MockTrialBalanceRepository) Create(ctx context.Context, entry *ledger.TrialBalanceEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockTrialBalanceRepository) Update(ctx context.Context, entry *ledger.TrialBalanceEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockTrialBalanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTrialBalanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.TrialBalanceEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.TrialBalanceEntry), args.Error(1)
}

func (m *MockTrialBalanceRepository) ListLines(ctx context.Context, companyID uuid.UUID) ([]ledger.TrialBalanceLine, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.TrialBalanceLine), args.Error(1)
}

func (m *MockTrialBalanceRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrialBalanceRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMajorHeadRepository is a mock implementation of taxonomy.MajorHeadRepository
type MockMajorHeadRepository struct {
	mock.Mock
}

func (m *MockMajorHeadRepository) Create(ctx context.Context, head *taxonomy.MajorHead) error {
	return m.Called(ctx, head).Error(0)
}

func (m *MockMajorHeadRepository) Update(ctx context.Context, head *taxonomy.MajorHead) error {
	return m.Called(ctx, head).Error(0)
}

func (m *MockMajorHeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMajorHeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.MajorHead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.MajorHead), args.Error(1)
}

func (m *MockMajorHeadRepository) FindByName(ctx context.Context, name string) (*taxonomy.MajorHead, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.MajorHead), args.Error(1)
}

func (m *MockMajorHeadRepository) List(ctx context.Context) ([]taxonomy.MajorHeadSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]taxonomy.MajorHeadSummary), args.Error(1)
}

func (m *MockMajorHeadRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMinorHeadRepository is a mock implementation of taxonomy.MinorHeadRepository
type MockMinorHeadRepository struct {
	mock.Mock
}

func (m *MockMinorHeadRepository) Create(ctx context.Context, head *taxonomy.MinorHead) error {
	return m.Called(ctx, head).Error(0)
}

func (m *MockMinorHeadRepository) Update(ctx context.Context, head *taxonomy.MinorHead) error {
	return m.Called(ctx, head).Error(0)
}

func (m *MockMinorHeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMinorHeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.MinorHead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.MinorHead), args.Error(1)
}

func (m *MockMinorHeadRepository) FindByName(ctx context.Context, name string, majorHeadID *uuid.UUID) (*taxonomy.MinorHead, error) {
	args := m.Called(ctx, name, majorHeadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.MinorHead), args.Error(1)
}

func (m *MockMinorHeadRepository) List(ctx context.Context, majorHeadID *uuid.UUID) ([]taxonomy.MinorHeadSummary, error) {
	args := m.Called(ctx, majorHeadID)
	return args.Get(0).([]taxonomy.MinorHeadSummary), args.Error(1)
}

// MockGroupingRepository is a mock implementation of taxonomy.GroupingRepository
type MockGroupingRepository struct {
	mock.Mock
}

func (m *MockGroupingRepository) Create(ctx context.Context, g *taxonomy.Grouping) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGroupingRepository) Update(ctx context.Context, g *taxonomy.Grouping) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockGroupingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockGroupingRepository) FindByID(ctx context.Context, id uuid.UUID) (*taxonomy.Grouping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Grouping), args.Error(1)
}

func (m *MockGroupingRepository) FindByName(ctx context.Context, name string, minorHeadID *uuid.UUID) (*taxonomy.Grouping, error) {
	args := m.Called(ctx, name, minorHeadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Grouping), args.Error(1)
}

func (m *MockGroupingRepository) List(ctx context.Context, minorHeadID *uuid.UUID) ([]taxonomy.GroupingSummary, error) {
	args := m.Called(ctx, minorHeadID)
	return args.Get(0).([]taxonomy.GroupingSummary), args.Error(1)
}

// MockScheduleRepository is a mock implementation of schedule.Repository
type MockScheduleRepository[T any] struct {
	mock.Mock
}

func (m *MockScheduleRepository[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockScheduleRepository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockScheduleRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockScheduleRepository[T]) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]T, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockScheduleRepository[T]) ListSorted(ctx context.Context, companyID uuid.UUID, sortField, sortOrder string) ([]T, error) {
	args := m.Called(ctx, companyID, sortField, sortOrder)
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockScheduleRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockScheduleRepository[T]) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	tb          *MockTrialBalanceRepository
	majors      *MockMajorHeadRepository
	minors      *MockMinorHeadRepository
	groupings   *MockGroupingRepository
	receivables *MockScheduleRepository[schedule.ReceivableLedgerEntry]
	payables    *MockScheduleRepository[schedule.PayableLedgerEntry]
	files       *storage.MemoryObjectStorage
	service     *TrialBalanceService
}

func newFixture() *fixture {
	f := &fixture{
		tb:          new(MockTrialBalanceRepository),
		majors:      new(MockMajorHeadRepository),
		minors:      new(MockMinorHeadRepository),
		groupings:   new(MockGroupingRepository),
		receivables: new(MockScheduleRepository[schedule.ReceivableLedgerEntry]),
		payables:    new(MockScheduleRepository[schedule.PayableLedgerEntry]),
		files:       storage.NewMemoryObjectStorage(),
	}
	f.service = NewTrialBalanceService(TrialBalanceServiceDeps{
		TrialBalances: f.tb,
		MajorHeads:    f.majors,
		MinorHeads:    f.minors,
		Groupings:     f.groupings,
		Receivables:   f.receivables,
		Payables:      f.payables,
		TxManager:     passthroughTx{},
		Files:         f.files,
	}, zap.NewNop())
	return f
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var notFound = shared.NewDomainError(shared.CodeNotFound, "record not found")

func TestTrialBalanceService_UploadTrialBalance(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("replaces lines and creates missing heads", func(t *testing.T) {
		f := newFixture()
		cash, _ := taxonomy.NewMajorHead("Cash and Cash Equivalents", taxonomy.StatementBS, taxonomy.CategoryAsset)

		f.tb.On("DeleteByCompany", ctx, companyID).Return(int64(4), nil)
		f.majors.On("FindByName", ctx, "Cash and Cash Equivalents").Return(cash, nil).Once()
		f.majors.On("FindByName", ctx, "Revenue from Operations").Return(nil, notFound).Once()
		f.majors.On("Create", ctx, mock.MatchedBy(func(h *taxonomy.MajorHead) bool {
			return h.Name == "Revenue from Operations" && h.Category == taxonomy.CategoryIncome
		})).Return(nil).Once()
		f.minors.On("FindByName", ctx, "Balances with banks", &cash.ID).Return(nil, notFound).Once()
		f.minors.On("Create", ctx, mock.AnythingOfType("*taxonomy.MinorHead")).Return(nil).Once()
		f.tb.On("Create", ctx, mock.AnythingOfType("*ledger.TrialBalanceEntry")).Return(nil).Times(3)
		f.tb.On("ListLines", ctx, companyID).Return([]ledger.TrialBalanceLine{}, nil)

		_, err := f.service.UploadTrialBalance(ctx, UploadTrialBalanceInput{
			CompanyID: companyID,
			Entries: []TrialBalanceEntryInput{
				{LedgerName: "Cash", Type: "BS", ClosingBalanceCY: dec("100"), MajorHead: "Cash and Cash Equivalents"},
				{LedgerName: "HDFC Bank", Type: "bs", ClosingBalanceCY: dec("900"), MajorHead: "Cash and Cash Equivalents", MinorHead: "Balances with banks"},
				{LedgerName: "Sales", Type: "PL", ClosingBalanceCY: dec("-5000"), MajorHead: "Revenue from Operations"},
			},
		})

		require.NoError(t, err)
		f.tb.AssertExpectations(t)
		f.majors.AssertExpectations(t)
		f.minors.AssertExpectations(t)
		f.groupings.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("minor head without major head is rejected", func(t *testing.T) {
		f := newFixture()
		f.tb.On("DeleteByCompany", ctx, companyID).Return(int64(0), nil)

		_, err := f.service.UploadTrialBalance(ctx, UploadTrialBalanceInput{
			CompanyID: companyID,
			Entries:   []TrialBalanceEntryInput{{LedgerName: "Cash", Type: "BS", MinorHead: "Cash on hand"}},
		})

		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
		f.tb.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		f := newFixture()
		f.tb.On("DeleteByCompany", ctx, companyID).Return(int64(0), nil)

		_, err := f.service.UploadTrialBalance(ctx, UploadTrialBalanceInput{
			CompanyID: companyID,
			Entries:   []TrialBalanceEntryInput{{LedgerName: "Cash", Type: "XX"}},
		})

		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	})

	t.Run("empty upload is rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.UploadTrialBalance(ctx, UploadTrialBalanceInput{CompanyID: companyID})

		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
		f.tb.AssertNotCalled(t, "DeleteByCompany", mock.Anything, mock.Anything)
	})
}

func TestTrialBalanceService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	entry, err := ledger.NewTrialBalanceEntry(companyID, "Cash", taxonomy.StatementBS, ledger.Balances{})
	require.NoError(t, err)

	t.Run("update revises the line", func(t *testing.T) {
		f := newFixture()
		f.tb.On("FindByID", ctx, entry.ID).Return(entry, nil)
		f.tb.On("Update", ctx, entry).Return(nil)
		revised := *entry
		revised.LedgerName = "Cash in hand"
		revised.ClosingBalanceCY = dec("250")
		f.tb.On("ListLines", ctx, companyID).Return([]ledger.TrialBalanceLine{{TrialBalanceEntry: revised}}, nil)

		resp, err := f.service.UpdateTrialBalanceEntry(ctx, UpdateTrialBalanceEntryInput{
			ID:        entry.ID,
			CompanyID: companyID,
			TrialBalanceEntryInput: TrialBalanceEntryInput{
				LedgerName: "Cash in hand", Type: "BS", ClosingBalanceCY: dec("250"),
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "Cash in hand", resp.LedgerName)
		assert.True(t, dec("250").Equal(resp.ClosingBalanceCY))
		assert.Nil(t, resp.MajorHeadID)
		assert.Equal(t, "Cash in hand", entry.LedgerName)
	})

	t.Run("entry of another company is not found", func(t *testing.T) {
		f := newFixture()
		f.tb.On("FindByID", ctx, entry.ID).Return(entry, nil)

		err := f.service.DeleteTrialBalanceEntry(ctx, EntryIDInput{ID: entry.ID, CompanyID: uuid.New()})

		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
		f.tb.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture()
		f.tb.On("FindByID", ctx, entry.ID).Return(entry, nil)
		f.tb.On("Delete", ctx, entry.ID).Return(nil)

		require.NoError(t, f.service.DeleteTrialBalanceEntry(ctx, EntryIDInput{ID: entry.ID, CompanyID: companyID}))
		f.tb.AssertExpectations(t)
	})

	t.Run("missing entry", func(t *testing.T) {
		f := newFixture()
		id := uuid.New()
		f.tb.On("FindByID", ctx, id).Return(nil, notFound)

		err := f.service.DeleteTrialBalanceEntry(ctx, EntryIDInput{ID: id, CompanyID: companyID})
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
		assert.Equal(t, "Trial balance entry not found", err.Error())
	})
}

func TestTrialBalanceService_FileImport(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("upload URL is scoped to the company", func(t *testing.T) {
		f := newFixture()

		resp, err := f.service.GetTrialBalanceUploadURL(ctx, UploadURLInput{CompanyID: companyID, FileName: "tb march.csv"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.ObjectName, "companies/"+companyID.String()+"/trial-balance/"))
		assert.True(t, strings.HasSuffix(resp.ObjectName, "tb_march.csv"))
		assert.NotEmpty(t, resp.UploadURL)
	})

	t.Run("process imports the file and removes it", func(t *testing.T) {
		f := newFixture()
		key := storage.ObjectKey(companyID, storage.KindTrialBalance, "tb.csv")
		csv := "Ledger Name,Closing Balance,Type\nCash,100,BS\nSales,(500),PL\n"
		require.NoError(t, f.files.Upload(ctx, key, []byte(csv), "text/csv"))

		f.tb.On("DeleteByCompany", ctx, companyID).Return(int64(0), nil)
		f.tb.On("Create", ctx, mock.AnythingOfType("*ledger.TrialBalanceEntry")).Return(nil).Twice()
		f.tb.On("ListLines", ctx, companyID).Return([]ledger.TrialBalanceLine{{}, {}}, nil)

		result, err := f.service.ProcessTrialBalanceFile(ctx, ProcessFileInput{CompanyID: companyID, ObjectName: key})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2, result.EntriesProcessed)
		exists, err := f.files.ObjectExists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
		f.tb.AssertExpectations(t)
	})

	t.Run("foreign object is forbidden", func(t *testing.T) {
		f := newFixture()
		key := storage.ObjectKey(uuid.New(), storage.KindTrialBalance, "tb.csv")

		_, err := f.service.ProcessTrialBalanceFile(ctx, ProcessFileInput{CompanyID: companyID, ObjectName: key})

		assert.Equal(t, shared.CodeForbidden, shared.CodeOf(err))
	})

	t.Run("missing object", func(t *testing.T) {
		f := newFixture()
		key := storage.ObjectKey(companyID, storage.KindTrialBalance, "tb.csv")

		_, err := f.service.ProcessTrialBalanceFile(ctx, ProcessFileInput{CompanyID: companyID, ObjectName: key})

		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
	})

	t.Run("rows with errors keep the existing trial balance", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.ImportTrialBalanceCSV(ctx, ImportCSVInput{
			CompanyID: companyID,
			Content:   "ledger_name;closing;type\nCash;abc;BS\n",
			Delimiter: ";",
		})

		require.Error(t, err)
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
		assert.Contains(t, err.Error(), "line 2")
		f.tb.AssertNotCalled(t, "DeleteByCompany", mock.Anything, mock.Anything)
	})
}

func TestTrialBalanceService_CheckTrialBalanceReconciliation(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	f := newFixture()

	line := func(head, closing string) ledger.TrialBalanceLine {
		return ledger.TrialBalanceLine{
			TrialBalanceEntry: ledger.TrialBalanceEntry{ClosingBalanceCY: dec(closing)},
			MajorHeadName:     head,
		}
	}
	f.tb.On("ListLines", ctx, companyID).Return([]ledger.TrialBalanceLine{
		line("Trade Receivables", "1000.40"),
		line("Trade Payables", "700"),
		line("Cash and Cash Equivalents", "50"),
	}, nil)
	f.receivables.On("ListByCompany", ctx, companyID).Return([]schedule.ReceivableLedgerEntry{
		{OutstandingAmount: dec("600")},
		{OutstandingAmount: dec("400")},
	}, nil)
	f.payables.On("ListByCompany", ctx, companyID).Return([]schedule.PayableLedgerEntry{
		{OutstandingAmount: dec("500")},
	}, nil)

	report, err := f.service.CheckTrialBalanceReconciliation(ctx, companyID)

	require.NoError(t, err)
	assert.True(t, report.Receivables.Reconciled)
	assert.True(t, dec("0.40").Equal(report.Receivables.Variance))
	assert.False(t, report.Payables.Reconciled)
	assert.True(t, dec("200").Equal(report.Payables.Variance))
	assert.True(t, dec("500").Equal(report.Payables.LedgerTotal))
}
