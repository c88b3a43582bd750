package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/finstatements/backend/internal/infrastructure/persistence"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"github.com/finstatements/backend/internal/infrastructure/printing"
	"github.com/finstatements/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeRenderer struct {
	requests []*printing.RenderRequest
}

func (f *fakeRenderer) Render(_ context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	f.requests = append(f.requests, req)
	return &printing.RenderResult{PDFData: []byte("%PDF-1.4 fake"), PageCount: 1}, nil
}

func (f *fakeRenderer) Close() error { return nil }

type fixture struct {
	svc       *ReportService
	files     *storage.MemoryObjectStorage
	renderer  *fakeRenderer
	notes     *persistence.GormNoteRepository
	taxes     *persistence.GormScheduleRepository[schedule.TaxEntry, *schedule.TaxEntry]
	ratios    *persistence.GormScheduleRepository[schedule.RatioAnalysis, *schedule.RatioAnalysis]
	companyID uuid.UUID
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&models.CommonControlModel{},
		&models.MajorHeadModel{},
		&models.MinorHeadModel{},
		&models.GroupingModel{},
		&models.TrialBalanceEntryModel{},
		&note.NoteSelection{},
		&schedule.TaxEntry{},
		&schedule.RatioAnalysis{},
	))

	f := &fixture{
		files:     storage.NewMemoryObjectStorage(),
		renderer:  &fakeRenderer{},
		notes:     persistence.NewGormNoteRepository(db),
		taxes:     persistence.NewGormScheduleRepository[schedule.TaxEntry](db),
		ratios:    persistence.NewGormScheduleRepository[schedule.RatioAnalysis](db),
		companyID: uuid.New(),
	}
	f.svc = NewReportService(ReportServiceDeps{
		TrialBalances:  persistence.NewGormTrialBalanceRepository(db),
		Notes:          f.notes,
		Taxes:          f.taxes,
		Ratios:         f.ratios,
		CommonControls: persistence.NewGormCommonControlRepository(db),
		TxManager:      persistence.NewGormTxManager(db),
		Renderer:       f.renderer,
		Files:          f.files,
	}, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }

	seedTrialBalance(t, db, f.companyID)
	return f
}

func seedTrialBalance(t *testing.T, db *gorm.DB, companyID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	heads := persistence.NewGormMajorHeadRepository(db)
	tb := persistence.NewGormTrialBalanceRepository(db)

	lines := []struct {
		ledger   string
		head     string
		typ      taxonomy.StatementType
		category taxonomy.Category
		cy, py   string
	}{
		{"Debtors", "Trade Receivables", taxonomy.StatementBS, taxonomy.CategoryAsset, "600", "400"},
		{"Bank", "Cash and Cash Equivalents", taxonomy.StatementBS, taxonomy.CategoryAsset, "400", "300"},
		{"Equity shares", "Equity Share Capital", taxonomy.StatementBS, taxonomy.CategoryLiability, "-700", "-500"},
		{"Creditors", "Trade Payables", taxonomy.StatementBS, taxonomy.CategoryLiability, "-300", "-200"},
		{"Sales", "Revenue from Operations", taxonomy.StatementPL, taxonomy.CategoryIncome, "-1000", "-800"},
		{"Salaries", "Employee Benefits Expense", taxonomy.StatementPL, taxonomy.CategoryExpense, "600", "500"},
	}
	for _, l := range lines {
		head, err := taxonomy.NewMajorHead(l.head, l.typ, l.category)
		require.NoError(t, err)
		require.NoError(t, heads.Create(ctx, head))

		entry, err := ledger.NewTrialBalanceEntry(companyID, l.ledger, l.typ, ledger.Balances{
			ClosingBalanceCY: dec(l.cy),
			ClosingBalancePY: dec(l.py),
		})
		require.NoError(t, err)
		entry.Classify(&head.ID, nil, nil)
		require.NoError(t, tb.Create(ctx, entry))
	}
}

func TestReportService_GenerateBalanceSheet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	linked := "Trade Receivables"
	n, err := note.NewNoteSelection(f.companyID, "C.9", "Trade receivables", &linked)
	require.NoError(t, err)
	num := "4"
	n.AutoNumber = &num
	require.NoError(t, f.notes.Create(ctx, n))

	bs, err := f.svc.GenerateBalanceSheet(ctx, f.companyID)
	require.NoError(t, err)
	assert.True(t, bs.Assets.TotalCY.Equal(dec("1000")))
	assert.True(t, bs.TotalEquityAndLiabilitiesCY.Equal(dec("1000")))
	assert.True(t, bs.Balanced)

	var receivables *string
	for _, item := range bs.Assets.Items {
		if item.Head == "Trade Receivables" {
			receivables = &item.NoteNumber
		}
	}
	require.NotNil(t, receivables)
	assert.Equal(t, "4", *receivables)
}

func TestReportService_GenerateProfitAndLoss(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.taxes.Create(ctx, &schedule.TaxEntry{
		CompanyScoped: shared.NewCompanyScoped(f.companyID),
		Particulars:   "Current tax",
		CurrentYear:   dec("100"),
		PreviousYear:  dec("75"),
	}))

	pl, err := f.svc.GenerateProfitAndLoss(ctx, f.companyID)
	require.NoError(t, err)
	assert.True(t, pl.ProfitBeforeTaxCY.Equal(dec("400")), pl.ProfitBeforeTaxCY.String())
	assert.True(t, pl.TaxExpenseCY.Equal(dec("100")))
	assert.True(t, pl.ProfitAfterTaxCY.Equal(dec("300")))
	assert.True(t, pl.ProfitAfterTaxPY.Equal(dec("225")))
}

func TestReportService_GenerateRatioAnalysis(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	report, err := f.svc.GenerateRatioAnalysis(ctx, RatioInput{CompanyID: f.companyID})
	require.NoError(t, err)
	require.Len(t, report.Ratios, 5)
	stored, err := f.ratios.ListByCompany(ctx, f.companyID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	// saving twice replaces rather than appends
	for range 2 {
		_, err = f.svc.GenerateRatioAnalysis(ctx, RatioInput{CompanyID: f.companyID, Save: true})
		require.NoError(t, err)
	}
	stored, err = f.ratios.ListByCompany(ctx, f.companyID)
	require.NoError(t, err)
	assert.Len(t, stored, 5)
	assert.Equal(t, "Asset Turnover Ratio", stored[0].RatioName)
}

func TestReportService_ExportFinancialStatements(t *testing.T) {
	ctx := context.Background()

	t.Run("pdf", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.svc.ExportFinancialStatements(ctx, ExportInput{CompanyID: f.companyID, Statement: StatementBalanceSheet})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, 3600, out.ExpiresIn)
		assert.True(t, strings.HasPrefix(out.FileName, "balance-sheet-"))
		assert.True(t, strings.HasSuffix(out.FileName, ".pdf"))
		assert.Contains(t, out.DownloadURL, "/download/")

		require.Len(t, f.renderer.requests, 1)
		assert.Contains(t, f.renderer.requests[0].HTML, "Trade Receivables")
		assert.Equal(t, "Balance Sheet", f.renderer.requests[0].Title)
	})

	t.Run("csv stored under company exports", func(t *testing.T) {
		f := newFixture(t)
		out, err := f.svc.ExportFinancialStatements(ctx, ExportInput{
			CompanyID: f.companyID, Statement: StatementProfitAndLoss, Format: "csv",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.FileName, ".csv"))
		assert.Empty(t, f.renderer.requests)
		assert.Contains(t, out.DownloadURL, "companies%2F"+f.companyID.String()+"%2Fexports")
	})

	t.Run("pdf disabled", func(t *testing.T) {
		f := newFixture(t)
		f.svc.deps.Renderer = nil
		_, err := f.svc.ExportFinancialStatements(ctx, ExportInput{CompanyID: f.companyID, Statement: StatementCashFlow})
		assert.Equal(t, shared.CodeBadRequest, shared.CodeOf(err))
	})

	t.Run("unknown statement", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ExportFinancialStatements(ctx, ExportInput{CompanyID: f.companyID, Statement: "equity", Format: "csv"})
		assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
	})
}
