package schedule

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxEntry is a line of the income tax expense note
type TaxEntry struct {
	shared.CompanyScoped
	Particulars  string           `gorm:"type:varchar(300);not null" json:"particulars"`
	CurrentYear  decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0" json:"currentYear"`
	PreviousYear decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:0" json:"previousYear"`
	TaxRate      *decimal.Decimal `gorm:"type:decimal(7,4)" json:"taxRate"`
}

func (TaxEntry) TableName() string  { return "tax_entries" }
func (TaxEntry) SortColumn() string { return "particulars" }

func (e *TaxEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Particulars", e.Particulars); err != nil {
		return err
	}
	if e.TaxRate != nil {
		return shared.NonNegative("Tax rate", *e.TaxRate)
	}
	return nil
}

// IsCurrentTax matches current tax and provision lines
func (e *TaxEntry) IsCurrentTax() bool {
	p := strings.ToLower(e.Particulars)
	return strings.Contains(p, "current") || strings.Contains(p, "provision")
}

// IsDeferredTax matches deferred tax lines
func (e *TaxEntry) IsDeferredTax() bool {
	return strings.Contains(strings.ToLower(e.Particulars), "deferred")
}

// YearAmounts is a current/previous year pair
type YearAmounts struct {
	CurrentYear  decimal.Decimal `json:"currentYear"`
	PreviousYear decimal.Decimal `json:"previousYear"`
}

func (y *YearAmounts) add(cy, py decimal.Decimal) {
	y.CurrentYear = y.CurrentYear.Add(cy)
	y.PreviousYear = y.PreviousYear.Add(py)
}

// TaxExpense is the total tax charge with its current/deferred split
type TaxExpense struct {
	TotalCurrentYear  decimal.Decimal `json:"totalCurrentYear"`
	TotalPreviousYear decimal.Decimal `json:"totalPreviousYear"`
	Breakdown         struct {
		CurrentTax  YearAmounts `json:"currentTax"`
		DeferredTax YearAmounts `json:"deferredTax"`
	} `json:"breakdown"`
	Entries []TaxEntry `json:"entries"`
}

// CalculateTaxExpense totals the tax entries for both years
func CalculateTaxExpense(entries []TaxEntry) TaxExpense {
	out := TaxExpense{Entries: entries}
	for i := range entries {
		e := &entries[i]
		out.TotalCurrentYear = out.TotalCurrentYear.Add(e.CurrentYear)
		out.TotalPreviousYear = out.TotalPreviousYear.Add(e.PreviousYear)
		if e.IsCurrentTax() {
			out.Breakdown.CurrentTax.add(e.CurrentYear, e.PreviousYear)
		}
		if e.IsDeferredTax() {
			out.Breakdown.DeferredTax.add(e.CurrentYear, e.PreviousYear)
		}
	}
	return out
}

// Deferred tax categories
const (
	DeferredTaxAsset     = "Asset"
	DeferredTaxLiability = "Liability"
	DeferredTaxIncome    = "Income"
	DeferredTaxExpense   = "Expense"
)

// DeferredTaxEntry is a temporary difference giving rise to a deferred tax balance
type DeferredTaxEntry struct {
	shared.CompanyScoped
	Particulars          string          `gorm:"type:varchar(300);not null" json:"particulars"`
	BookValue            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"bookValue"`
	TaxValue             decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"taxValue"`
	TemporaryDifference  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"temporaryDifference"`
	TaxRate              decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0" json:"taxRate"`
	DeferredTaxAsset     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"deferredTaxAsset"`
	DeferredTaxLiability decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"deferredTaxLiability"`
	Category             string          `gorm:"type:varchar(20);not null" json:"category"`
}

func (DeferredTaxEntry) TableName() string  { return "deferred_tax_entries" }
func (DeferredTaxEntry) SortColumn() string { return "particulars" }

// Derive fills the temporary difference and the resulting asset or liability
// when only book value, tax value and rate were given
func (e *DeferredTaxEntry) Derive() {
	if e.TemporaryDifference.IsZero() {
		e.TemporaryDifference = e.BookValue.Sub(e.TaxValue)
	}
	if e.DeferredTaxAsset.IsZero() && e.DeferredTaxLiability.IsZero() && !e.TaxRate.IsZero() {
		tax := e.TemporaryDifference.Abs().Mul(e.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
		if e.Category == DeferredTaxAsset {
			e.DeferredTaxAsset = tax
		} else if e.Category == DeferredTaxLiability {
			e.DeferredTaxLiability = tax
		}
	}
}

func (e *DeferredTaxEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Particulars", e.Particulars); err != nil {
		return err
	}
	if err := oneOf("Category", e.Category, DeferredTaxAsset, DeferredTaxLiability, DeferredTaxIncome, DeferredTaxExpense); err != nil {
		return err
	}
	return nonNegative(
		amount{"Tax rate", e.TaxRate},
		amount{"Deferred tax asset", e.DeferredTaxAsset},
		amount{"Deferred tax liability", e.DeferredTaxLiability},
	)
}

// NetDeferredTax is asset minus liability; positive means a net asset
func NetDeferredTax(entries []DeferredTaxEntry) decimal.Decimal {
	return shared.SumBy(entries, func(e DeferredTaxEntry) decimal.Decimal {
		return e.DeferredTaxAsset.Sub(e.DeferredTaxLiability)
	})
}
