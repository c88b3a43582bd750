// Package report builds the Schedule III statements from a company's
// classified trial balance. Everything here is a read model computed on
// demand; nothing is persisted.
package report

import (
	"sort"
	"strings"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/shopspring/decimal"
)

// LineItem is one major head as presented on a statement
type LineItem struct {
	Head         string          `json:"head"`
	NoteNumber   string          `json:"noteNumber,omitempty"`
	CurrentYear  decimal.Decimal `json:"currentYear"`
	PreviousYear decimal.Decimal `json:"previousYear"`
}

// Section is a titled group of line items with its totals
type Section struct {
	Items   []LineItem      `json:"items"`
	TotalCY decimal.Decimal `json:"totalCY"`
	TotalPY decimal.Decimal `json:"totalPY"`
}

// BalanceSheet is the statement of financial position
type BalanceSheet struct {
	Assets      Section `json:"assets"`
	Equity      Section `json:"equity"`
	Liabilities Section `json:"liabilities"`
	// Equity plus liabilities
	TotalEquityAndLiabilitiesCY decimal.Decimal `json:"totalEquityAndLiabilitiesCY"`
	TotalEquityAndLiabilitiesPY decimal.Decimal `json:"totalEquityAndLiabilitiesPY"`
	Difference                  decimal.Decimal `json:"difference"` // Assets - (Equity + Liabilities), CY
	Balanced                    bool            `json:"balanced"`
}

// ProfitAndLoss is the statement of profit and loss
type ProfitAndLoss struct {
	Revenue           Section         `json:"revenue"`
	Expenses          Section         `json:"expenses"`
	ProfitBeforeTaxCY decimal.Decimal `json:"profitBeforeTaxCY"` // Revenue - Expenses
	ProfitBeforeTaxPY decimal.Decimal `json:"profitBeforeTaxPY"`
	TaxExpenseCY      decimal.Decimal `json:"taxExpenseCY"`
	TaxExpensePY      decimal.Decimal `json:"taxExpensePY"`
	ProfitAfterTaxCY  decimal.Decimal `json:"profitAfterTaxCY"`
	ProfitAfterTaxPY  decimal.Decimal `json:"profitAfterTaxPY"`
}

var (
	assetHeads     = []string{"Assets", "Receivables", "Cash", "Inventories", "Investments", "Loans and Advances"}
	equityHeads    = []string{"Equity", "Share Capital"}
	liabilityHeads = []string{"Liabilities", "Payables", "Borrowings", "Provisions"}
	revenueHeads   = []string{"Revenue", "Income"}
	expenseHeads   = []string{"Expense", "Cost", "Finance Costs", "Depreciation"}
)

func matches(head string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(head, f) {
			return true
		}
	}
	return false
}

// NoteNumbers maps each major head to the number of the selected note linked to it
func NoteNumbers(notes []note.NoteSelection) map[string]string {
	out := make(map[string]string)
	for _, n := range notes {
		if !n.FinalSelected || n.LinkedMajorHead == nil || n.AutoNumber == nil {
			continue
		}
		if _, ok := out[*n.LinkedMajorHead]; !ok {
			out[*n.LinkedMajorHead] = *n.AutoNumber
		}
	}
	return out
}

// sectionBuilder accumulates lines per major head, keeping first-seen order
type sectionBuilder struct {
	abs   bool
	index map[string]int
	sec   Section
}

func newSection(abs bool) *sectionBuilder {
	return &sectionBuilder{abs: abs, index: make(map[string]int), sec: Section{Items: []LineItem{}}}
}

func (b *sectionBuilder) add(l ledger.TrialBalanceLine) {
	cy, py := l.ClosingBalanceCY, l.ClosingBalancePY
	if b.abs {
		cy, py = cy.Abs(), py.Abs()
	}
	head := l.MajorHeadName
	if head == "" {
		head = l.LedgerName
	}
	i, ok := b.index[head]
	if !ok {
		i = len(b.sec.Items)
		b.index[head] = i
		b.sec.Items = append(b.sec.Items, LineItem{Head: head})
	}
	item := &b.sec.Items[i]
	item.CurrentYear = item.CurrentYear.Add(cy)
	item.PreviousYear = item.PreviousYear.Add(py)
	b.sec.TotalCY = b.sec.TotalCY.Add(cy)
	b.sec.TotalPY = b.sec.TotalPY.Add(py)
}

func (b *sectionBuilder) build(numbers map[string]string) Section {
	sort.SliceStable(b.sec.Items, func(i, j int) bool { return b.sec.Items[i].Head < b.sec.Items[j].Head })
	for i := range b.sec.Items {
		b.sec.Items[i].NoteNumber = numbers[b.sec.Items[i].Head]
	}
	return b.sec
}

// BuildBalanceSheet presents the balance sheet lines of tb. Assets keep their
// sign; equity and liabilities are shown as absolute amounts.
func BuildBalanceSheet(tb []ledger.TrialBalanceLine, notes []note.NoteSelection) BalanceSheet {
	assets, equity, liabilities := newSection(false), newSection(true), newSection(true)
	for _, l := range tb {
		if l.Type != taxonomy.StatementBS {
			continue
		}
		switch {
		case matches(l.MajorHeadName, assetHeads):
			assets.add(l)
		case matches(l.MajorHeadName, equityHeads):
			equity.add(l)
		case matches(l.MajorHeadName, liabilityHeads):
			liabilities.add(l)
		}
	}

	numbers := NoteNumbers(notes)
	bs := BalanceSheet{
		Assets:      assets.build(numbers),
		Equity:      equity.build(numbers),
		Liabilities: liabilities.build(numbers),
	}
	bs.TotalEquityAndLiabilitiesCY = bs.Equity.TotalCY.Add(bs.Liabilities.TotalCY)
	bs.TotalEquityAndLiabilitiesPY = bs.Equity.TotalPY.Add(bs.Liabilities.TotalPY)
	bs.Difference = bs.Assets.TotalCY.Sub(bs.TotalEquityAndLiabilitiesCY)
	bs.Balanced = bs.Difference.Abs().LessThan(ledger.ReconciliationTolerance)
	return bs
}

// BuildProfitAndLoss presents the profit and loss lines of tb. Revenue is
// shown as absolute amounts; tax is taken from the tax schedule.
func BuildProfitAndLoss(tb []ledger.TrialBalanceLine, notes []note.NoteSelection, tax schedule.TaxExpense) ProfitAndLoss {
	revenue, expenses := newSection(true), newSection(false)
	for _, l := range tb {
		if l.Type != taxonomy.StatementPL {
			continue
		}
		switch {
		case matches(l.MajorHeadName, revenueHeads):
			revenue.add(l)
		case matches(l.MajorHeadName, expenseHeads):
			expenses.add(l)
		}
	}

	numbers := NoteNumbers(notes)
	pl := ProfitAndLoss{
		Revenue:      revenue.build(numbers),
		Expenses:     expenses.build(numbers),
		TaxExpenseCY: tax.TotalCurrentYear,
		TaxExpensePY: tax.TotalPreviousYear,
	}
	pl.ProfitBeforeTaxCY = pl.Revenue.TotalCY.Sub(pl.Expenses.TotalCY)
	pl.ProfitBeforeTaxPY = pl.Revenue.TotalPY.Sub(pl.Expenses.TotalPY)
	pl.ProfitAfterTaxCY = pl.ProfitBeforeTaxCY.Sub(pl.TaxExpenseCY)
	pl.ProfitAfterTaxPY = pl.ProfitBeforeTaxPY.Sub(pl.TaxExpensePY)
	return pl
}
