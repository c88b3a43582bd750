package schedule

import (
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PPEEntry is one asset class of the property, plant and equipment schedule
type PPEEntry struct {
	shared.CompanyScoped
	AssetClass             string          `gorm:"type:varchar(200);not null" json:"assetClass"`
	OpeningGrossBlock      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"openingGrossBlock"`
	Additions              decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"additions"`
	DisposalsGross         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"disposalsGross"`
	OpeningAccDepreciation decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"openingAccDepreciation"`
	DepreciationForYear    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"depreciationForYear"`
	AccDeprOnDisposals     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"accDeprOnDisposals"`
}

func (PPEEntry) TableName() string  { return "ppe_schedule_entries" }
func (PPEEntry) SortColumn() string { return "asset_class" }

// Validate checks required fields and amount signs
func (e *PPEEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Asset class", e.AssetClass); err != nil {
		return err
	}
	return nonNegative(
		amount{"Opening gross block", e.OpeningGrossBlock},
		amount{"Additions", e.Additions},
		amount{"Disposals", e.DisposalsGross},
		amount{"Opening acc. depreciation", e.OpeningAccDepreciation},
		amount{"Depreciation for the year", e.DepreciationForYear},
		amount{"Acc. depreciation on disposals", e.AccDeprOnDisposals},
	)
}

// ClosingGrossBlock is opening + additions - disposals
func (e *PPEEntry) ClosingGrossBlock() decimal.Decimal {
	return e.OpeningGrossBlock.Add(e.Additions).Sub(e.DisposalsGross)
}

// ClosingAccDepreciation is opening + charge - written back on disposals
func (e *PPEEntry) ClosingAccDepreciation() decimal.Decimal {
	return e.OpeningAccDepreciation.Add(e.DepreciationForYear).Sub(e.AccDeprOnDisposals)
}

// NetBlockCY is the closing carrying amount
func (e *PPEEntry) NetBlockCY() decimal.Decimal {
	return e.ClosingGrossBlock().Sub(e.ClosingAccDepreciation())
}

// NetBlockPY is the opening carrying amount
func (e *PPEEntry) NetBlockPY() decimal.Decimal {
	return e.OpeningGrossBlock.Sub(e.OpeningAccDepreciation)
}

// CWIPEntry is a capital work-in-progress project
type CWIPEntry struct {
	shared.CompanyScoped
	Particulars string          `gorm:"type:varchar(300);not null" json:"particulars"`
	AmountCY    decimal.Decimal `gorm:"column:amount_cy;type:decimal(18,2);not null;default:0" json:"amountCY"`
	AmountPY    decimal.Decimal `gorm:"column:amount_py;type:decimal(18,2);not null;default:0" json:"amountPY"`
	AgingBucket string          `gorm:"type:varchar(50)" json:"agingBucket"`
}

func (CWIPEntry) TableName() string  { return "cwip_schedule_entries" }
func (CWIPEntry) SortColumn() string { return "particulars" }

// Validate checks required fields and the aging bucket
func (e *CWIPEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Particulars", e.Particulars); err != nil {
		return err
	}
	return validateBucket(e.AgingBucket, DevelopmentAgingBuckets)
}

// IntangibleEntry is one class of intangible assets, optionally still under development
type IntangibleEntry struct {
	shared.CompanyScoped
	AssetClass             string          `gorm:"type:varchar(200);not null" json:"assetClass"`
	OpeningGrossBlock      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"openingGrossBlock"`
	Additions              decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"additions"`
	DisposalsGross         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"disposalsGross"`
	OpeningAccAmortization decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"openingAccAmortization"`
	AmortizationForYear    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amortizationForYear"`
	AccAmortOnDisposals    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"accAmortOnDisposals"`
	// Set only for intangibles under development
	AgingBucket string `gorm:"type:varchar(50)" json:"agingBucket"`
}

func (IntangibleEntry) TableName() string  { return "intangible_schedule_entries" }
func (IntangibleEntry) SortColumn() string { return "asset_class" }

// Validate checks required fields, amount signs and the aging bucket
func (e *IntangibleEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Asset class", e.AssetClass); err != nil {
		return err
	}
	if err := nonNegative(
		amount{"Opening gross block", e.OpeningGrossBlock},
		amount{"Additions", e.Additions},
		amount{"Disposals", e.DisposalsGross},
		amount{"Opening acc. amortization", e.OpeningAccAmortization},
		amount{"Amortization for the year", e.AmortizationForYear},
		amount{"Acc. amortization on disposals", e.AccAmortOnDisposals},
	); err != nil {
		return err
	}
	return validateBucket(e.AgingBucket, DevelopmentAgingBuckets)
}

// UnderDevelopment reports whether the entry is an intangible asset under development
func (e *IntangibleEntry) UnderDevelopment() bool {
	return e.AgingBucket != ""
}

// NetBlockCY is the closing carrying amount
func (e *IntangibleEntry) NetBlockCY() decimal.Decimal {
	gross := e.OpeningGrossBlock.Add(e.Additions).Sub(e.DisposalsGross)
	amort := e.OpeningAccAmortization.Add(e.AmortizationForYear).Sub(e.AccAmortOnDisposals)
	return gross.Sub(amort)
}

// Investment classifications
const (
	InvestmentCurrent    = "Current"
	InvestmentNonCurrent = "Non-Current"
)

// InvestmentEntry is a holding in the investments schedule
type InvestmentEntry struct {
	shared.CompanyScoped
	Particulars    string          `gorm:"type:varchar(300);not null" json:"particulars"`
	Classification string          `gorm:"type:varchar(20);not null" json:"classification"`
	CostCY         decimal.Decimal `gorm:"column:cost_cy;type:decimal(18,2);not null;default:0" json:"costCY"`
	CostPY         decimal.Decimal `gorm:"column:cost_py;type:decimal(18,2);not null;default:0" json:"costPY"`
}

func (InvestmentEntry) TableName() string  { return "investment_entries" }
func (InvestmentEntry) SortColumn() string { return "particulars" }

// Validate checks required fields and the classification
func (e *InvestmentEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Particulars", e.Particulars); err != nil {
		return err
	}
	if err := oneOf("Classification", e.Classification, InvestmentCurrent, InvestmentNonCurrent); err != nil {
		return err
	}
	return nonNegative(amount{"Cost (CY)", e.CostCY}, amount{"Cost (PY)", e.CostPY})
}
