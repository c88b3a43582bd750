package report

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/shopspring/decimal"
)

// Cash flow categories of a trial balance line
const (
	FlowRevenue             = "revenue"
	FlowExpense             = "expense"
	FlowDepreciation        = "depreciation"
	FlowReceivables         = "receivables"
	FlowPayables            = "payables"
	FlowInventory           = "inventory"
	FlowPPE                 = "ppe"
	FlowInvestments         = "investments"
	FlowCWIP                = "cwip"
	FlowLongTermBorrowings  = "longTermBorrowings"
	FlowShortTermBorrowings = "shortTermBorrowings"
	FlowEquity              = "equity"
	FlowCash                = "cash"
	FlowOther               = "other"
)

// Categorize assigns a line to a cash flow category by its head names. The
// first matching rule wins.
func Categorize(l ledger.TrialBalanceLine) string {
	major, minor, grouping := l.MajorHeadName, l.MinorHeadName, l.GroupingName
	has := strings.Contains

	switch {
	case has(major, "Revenue") || has(major, "Income"):
		return FlowRevenue
	case has(major, "Expense") || has(major, "Cost"):
		return FlowExpense
	case has(major, "Depreciation") || has(minor, "Depreciation"):
		return FlowDepreciation
	case has(major, "Trade Receivables") || (has(minor, "Receivables") && !has(minor, "Non-current")):
		return FlowReceivables
	case has(major, "Trade Payables") || (has(minor, "Payables") && !has(minor, "Non-current")):
		return FlowPayables
	case has(major, "Inventories") || has(minor, "Inventory"):
		return FlowInventory
	case has(major, "Property, Plant and Equipment") || has(minor, "PPE") || has(minor, "Fixed Assets"):
		return FlowPPE
	case has(major, "Investments") && (has(minor, "Non-current") || has(grouping, "Long-term")):
		return FlowInvestments
	case has(major, "Capital Work") || has(minor, "CWIP"):
		return FlowCWIP
	case has(major, "Borrowings") || has(minor, "Loans"):
		if has(grouping, "Long-term") || has(grouping, "Non-current") {
			return FlowLongTermBorrowings
		}
		return FlowShortTermBorrowings
	case has(major, "Share Capital") || has(major, "Equity"):
		return FlowEquity
	case has(major, "Cash") || has(minor, "Cash") || has(minor, "Bank"):
		return FlowCash
	default:
		return FlowOther
	}
}

// Movement is a current and previous year pair
type Movement struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
}

// OperatingActivities uses the indirect method
type OperatingActivities struct {
	NetProfit         Movement `json:"netProfit"`
	Depreciation      Movement `json:"depreciation"`
	ReceivablesChange Movement `json:"receivablesChange"` // increase is an outflow
	PayablesChange    Movement `json:"payablesChange"`
	InventoryChange   Movement `json:"inventoryChange"` // increase is an outflow
	Total             Movement `json:"total"`
}

type InvestingActivities struct {
	PPEAdditions     Movement `json:"ppeAdditions"`
	InvestmentChange Movement `json:"investmentChange"`
	CWIPChange       Movement `json:"cwipChange"`
	Total            Movement `json:"total"`
}

type FinancingActivities struct {
	LongTermBorrowingsChange  Movement `json:"longTermBorrowingsChange"`
	ShortTermBorrowingsChange Movement `json:"shortTermBorrowingsChange"`
	EquityChange              Movement `json:"equityChange"`
	Total                     Movement `json:"total"`
}

// CashFlow is the cash flow statement. Only the current year has balance
// sheet movements; previous-year changes are reported as zero because the
// year before the comparative is not available.
type CashFlow struct {
	OperatingActivities OperatingActivities `json:"operatingActivities"`
	InvestingActivities InvestingActivities `json:"investingActivities"`
	FinancingActivities FinancingActivities `json:"financingActivities"`
	NetCashFlow         Movement            `json:"netCashFlow"`
	OpeningCash         decimal.Decimal     `json:"openingCash"`
	ClosingCash         decimal.Decimal     `json:"closingCash"`
	TotalEntries        int                 `json:"totalEntries"`
	Categories          map[string]int      `json:"categories"`
}

type flowTotals struct {
	cy, py, change decimal.Decimal
}

// BuildCashFlow derives the cash flow statement from tb
func BuildCashFlow(tb []ledger.TrialBalanceLine) CashFlow {
	totals := make(map[string]*flowTotals)
	counts := map[string]int{
		FlowRevenue: 0, FlowExpense: 0, FlowDepreciation: 0, FlowReceivables: 0,
		FlowPayables: 0, FlowInventory: 0, FlowPPE: 0, FlowInvestments: 0, FlowCWIP: 0,
		FlowLongTermBorrowings: 0, FlowShortTermBorrowings: 0, FlowEquity: 0, FlowCash: 0, FlowOther: 0,
	}
	get := func(cat string) *flowTotals {
		t, ok := totals[cat]
		if !ok {
			t = &flowTotals{}
			totals[cat] = t
		}
		return t
	}

	revenueCY, revenuePY := decimal.Zero, decimal.Zero
	expenseCY, expensePY := decimal.Zero, decimal.Zero
	for _, l := range tb {
		cat := Categorize(l)
		counts[cat]++
		t := get(cat)
		t.cy = t.cy.Add(l.ClosingBalanceCY)
		t.py = t.py.Add(l.ClosingBalancePY)
		t.change = t.change.Add(l.ClosingBalanceCY.Sub(l.ClosingBalancePY))

		if l.Type != taxonomy.StatementPL {
			continue
		}
		switch cat {
		case FlowRevenue:
			revenueCY = revenueCY.Add(l.ClosingBalanceCY.Abs())
			revenuePY = revenuePY.Add(l.ClosingBalancePY.Abs())
		case FlowExpense:
			expenseCY = expenseCY.Add(l.ClosingBalanceCY)
			expensePY = expensePY.Add(l.ClosingBalancePY)
		}
	}

	current := func(v decimal.Decimal) Movement { return Movement{Current: v, Previous: decimal.Zero} }

	var cf CashFlow
	op := &cf.OperatingActivities
	op.NetProfit = Movement{Current: revenueCY.Sub(expenseCY), Previous: revenuePY.Sub(expensePY)}
	op.Depreciation = Movement{Current: get(FlowDepreciation).cy, Previous: get(FlowDepreciation).py}
	op.ReceivablesChange = current(get(FlowReceivables).change.Neg())
	op.PayablesChange = current(get(FlowPayables).change)
	op.InventoryChange = current(get(FlowInventory).change.Neg())
	op.Total = Movement{
		Current: op.NetProfit.Current.Add(op.Depreciation.Current).
			Add(op.ReceivablesChange.Current).Add(op.PayablesChange.Current).Add(op.InventoryChange.Current),
		Previous: op.NetProfit.Previous.Add(op.Depreciation.Previous),
	}

	inv := &cf.InvestingActivities
	inv.PPEAdditions = current(get(FlowPPE).change.Neg())
	inv.InvestmentChange = current(get(FlowInvestments).change.Neg())
	inv.CWIPChange = current(get(FlowCWIP).change.Neg())
	inv.Total = current(inv.PPEAdditions.Current.Add(inv.InvestmentChange.Current).Add(inv.CWIPChange.Current))

	fin := &cf.FinancingActivities
	fin.LongTermBorrowingsChange = current(get(FlowLongTermBorrowings).change)
	fin.ShortTermBorrowingsChange = current(get(FlowShortTermBorrowings).change)
	fin.EquityChange = current(get(FlowEquity).change)
	fin.Total = current(fin.LongTermBorrowingsChange.Current.Add(fin.ShortTermBorrowingsChange.Current).Add(fin.EquityChange.Current))

	cf.NetCashFlow = Movement{
		Current:  op.Total.Current.Add(inv.Total.Current).Add(fin.Total.Current),
		Previous: op.Total.Previous.Add(inv.Total.Previous).Add(fin.Total.Previous),
	}
	cf.OpeningCash = get(FlowCash).py
	cf.ClosingCash = get(FlowCash).cy
	cf.TotalEntries = len(tb)
	cf.Categories = counts
	return cf
}
