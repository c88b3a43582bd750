package report

import (
	"testing"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(head string, typ taxonomy.StatementType, cy, py string) ledger.TrialBalanceLine {
	return ledger.TrialBalanceLine{
		TrialBalanceEntry: ledger.TrialBalanceEntry{
			LedgerName:       head,
			ClosingBalanceCY: dec(cy),
			ClosingBalancePY: dec(py),
			Type:             typ,
		},
		MajorHeadName: head,
	}
}

func sampleTrialBalance() []ledger.TrialBalanceLine {
	return []ledger.TrialBalanceLine{
		line("Cash and Cash Equivalents", taxonomy.StatementBS, "500", "400"),
		line("Trade Receivables", taxonomy.StatementBS, "300", "200"),
		line("Inventories", taxonomy.StatementBS, "200", "100"),
		line("Equity Share Capital", taxonomy.StatementBS, "-600", "-500"),
		line("Trade Payables", taxonomy.StatementBS, "-400", "-200"),
		line("Revenue from Operations", taxonomy.StatementPL, "-2000", "-1800"),
		line("Cost of Materials Consumed", taxonomy.StatementPL, "1200", "1000"),
		line("Depreciation and Amortization Expense", taxonomy.StatementPL, "100", "90"),
	}
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestBuildBalanceSheet(t *testing.T) {
	head := "Trade Receivables"
	num := "3"
	notes := []note.NoteSelection{{NoteRef: "F.9", LinkedMajorHead: &head, FinalSelected: true, AutoNumber: &num}}

	bs := BuildBalanceSheet(sampleTrialBalance(), notes)

	require.Len(t, bs.Assets.Items, 3)
	assert.Equal(t, "Cash and Cash Equivalents", bs.Assets.Items[0].Head)
	assert.Equal(t, "Trade Receivables", bs.Assets.Items[2].Head)
	assert.Equal(t, "3", bs.Assets.Items[2].NoteNumber)
	assert.Empty(t, bs.Assets.Items[0].NoteNumber)

	assertDec(t, "1000", bs.Assets.TotalCY)
	assertDec(t, "700", bs.Assets.TotalPY)
	assertDec(t, "600", bs.Equity.TotalCY)
	assertDec(t, "400", bs.Liabilities.TotalCY)
	assertDec(t, "1000", bs.TotalEquityAndLiabilitiesCY)
	assertDec(t, "700", bs.TotalEquityAndLiabilitiesPY)
	assert.True(t, bs.Balanced)

	unbalanced := append(sampleTrialBalance(), line("Other Current Assets", taxonomy.StatementBS, "25", "0"))
	bs = BuildBalanceSheet(unbalanced, nil)
	assert.False(t, bs.Balanced)
	assertDec(t, "25", bs.Difference)
}

func TestBuildBalanceSheet_MergesLinesUnderOneHead(t *testing.T) {
	tb := []ledger.TrialBalanceLine{
		line("Cash and Cash Equivalents", taxonomy.StatementBS, "100", "50"),
		line("Cash and Cash Equivalents", taxonomy.StatementBS, "40", "10"),
	}
	bs := BuildBalanceSheet(tb, nil)
	require.Len(t, bs.Assets.Items, 1)
	assertDec(t, "140", bs.Assets.Items[0].CurrentYear)
	assertDec(t, "60", bs.Assets.Items[0].PreviousYear)
}

func TestBuildProfitAndLoss(t *testing.T) {
	tax := schedule.CalculateTaxExpense([]schedule.TaxEntry{
		{Particulars: "Current Tax", CurrentYear: dec("200"), PreviousYear: dec("150")},
	})

	pl := BuildProfitAndLoss(sampleTrialBalance(), nil, tax)

	assertDec(t, "2000", pl.Revenue.TotalCY)
	assertDec(t, "1300", pl.Expenses.TotalCY)
	assertDec(t, "1090", pl.Expenses.TotalPY)
	assertDec(t, "700", pl.ProfitBeforeTaxCY)
	assertDec(t, "710", pl.ProfitBeforeTaxPY)
	assertDec(t, "500", pl.ProfitAfterTaxCY)
	assertDec(t, "560", pl.ProfitAfterTaxPY)
}

func TestCategorize(t *testing.T) {
	withHeads := func(major, minor, grouping string) ledger.TrialBalanceLine {
		return ledger.TrialBalanceLine{MajorHeadName: major, MinorHeadName: minor, GroupingName: grouping}
	}
	tests := []struct {
		line ledger.TrialBalanceLine
		want string
	}{
		{withHeads("Revenue from Operations", "", ""), FlowRevenue},
		{withHeads("Other Income", "", ""), FlowRevenue},
		{withHeads("Employee Benefits Expense", "", ""), FlowExpense},
		{withHeads("Depreciation and Amortization", "", ""), FlowDepreciation},
		{withHeads("Trade Receivables", "", ""), FlowReceivables},
		{withHeads("Other Current Assets", "Non-current Receivables", ""), FlowOther},
		{withHeads("Trade Payables", "", ""), FlowPayables},
		{withHeads("Inventories", "", ""), FlowInventory},
		{withHeads("Property, Plant and Equipment", "", ""), FlowPPE},
		{withHeads("Investments", "Non-current Investments", ""), FlowInvestments},
		{withHeads("Investments", "Current Investments", ""), FlowOther},
		{withHeads("Capital Work-in-Progress", "", ""), FlowCWIP},
		{withHeads("Borrowings", "", "Long-term"), FlowLongTermBorrowings},
		{withHeads("Borrowings", "", ""), FlowShortTermBorrowings},
		{withHeads("Equity Share Capital", "", ""), FlowEquity},
		{withHeads("Cash and Cash Equivalents", "", ""), FlowCash},
		{withHeads("Other Current Assets", "Balances with Bank", ""), FlowCash},
	}
	for _, tt := range tests {
		t.Run(tt.line.MajorHeadName+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.line))
		})
	}
}

func TestBuildCashFlow(t *testing.T) {
	cf := BuildCashFlow(sampleTrialBalance())

	op := cf.OperatingActivities
	assertDec(t, "700", op.NetProfit.Current)
	assertDec(t, "710", op.NetProfit.Previous)
	assertDec(t, "-100", op.ReceivablesChange.Current)
	assertDec(t, "-200", op.PayablesChange.Current)
	assertDec(t, "-100", op.InventoryChange.Current)
	assertDec(t, "300", op.Total.Current)
	assert.True(t, op.ReceivablesChange.Previous.IsZero())

	assert.True(t, cf.InvestingActivities.Total.Current.IsZero())
	assertDec(t, "-100", cf.FinancingActivities.EquityChange.Current)
	assertDec(t, "-100", cf.FinancingActivities.Total.Current)
	assertDec(t, "200", cf.NetCashFlow.Current)

	assertDec(t, "400", cf.OpeningCash)
	assertDec(t, "500", cf.ClosingCash)
	assert.Equal(t, 8, cf.TotalEntries)
	assert.Equal(t, 2, cf.Categories[FlowExpense])
	assert.Equal(t, 1, cf.Categories[FlowCash])
	assert.Equal(t, 0, cf.Categories[FlowCWIP])
}

func TestBuildRatioReport(t *testing.T) {
	r := BuildRatioReport(sampleTrialBalance())

	require.Len(t, r.Ratios, 5)
	assert.Equal(t, 5, r.Summary.TotalRatios)

	current := r.Ratios[0]
	assert.Equal(t, "Current Ratio", current.Name)
	assertDec(t, "2.5", current.CurrentYear)
	assertDec(t, "3.5", current.PreviousYear)
	assert.True(t, current.RequiresExplanation)
	assert.Equal(t, "Decline of 28.6% requires management attention.", current.Explanation)

	debtEquity := r.Ratios[1]
	assert.True(t, debtEquity.CurrentYear.IsZero())
	assert.True(t, debtEquity.Variance.IsZero())
	assert.Equal(t, "Ratio remains relatively stable compared to previous year.", debtEquity.Explanation)

	turnover := r.Ratios[4]
	assertDec(t, "2", turnover.CurrentYear)

	assert.GreaterOrEqual(t, r.Summary.RatiosRequiringExplanation, 1)
	assert.True(t, r.Summary.AverageVariance.IsPositive())

	companyID := uuid.New()
	rows := r.ToAnalyses(companyID)
	require.Len(t, rows, 5)
	assert.Equal(t, companyID, rows[0].CompanyID)
	assert.NoError(t, rows[0].Validate())
}

func TestBuildRatioReport_EmptyTrialBalance(t *testing.T) {
	r := BuildRatioReport(nil)
	for _, ratio := range r.Ratios {
		assert.True(t, ratio.CurrentYear.IsZero(), ratio.Name)
		assert.False(t, ratio.RequiresExplanation, ratio.Name)
	}
	assert.True(t, r.Summary.AverageVariance.IsZero())
}
