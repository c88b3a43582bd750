package schedule

import (
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Share capital defaults
const (
	DefaultClassOfShare = "Equity Shares"
)

// DefaultFaceValue is the face value used when none is given
var DefaultFaceValue = decimal.NewFromInt(10)

// ShareCapitalEntry is a class of shares or, when ShareholderName is set, a
// shareholder holding more than 5% of a class
type ShareCapitalEntry struct {
	shared.CompanyScoped
	ClassOfShare        string           `gorm:"type:varchar(100);not null" json:"classOfShare"`
	NumberOfShares      int64            `gorm:"not null;default:0" json:"numberOfShares"`
	FaceValue           decimal.Decimal  `gorm:"type:decimal(18,2);not null;default:10" json:"faceValue"`
	AmountCY            decimal.Decimal  `gorm:"column:amount_cy;type:decimal(18,2);not null;default:0" json:"amountCY"`
	AmountPY            decimal.Decimal  `gorm:"column:amount_py;type:decimal(18,2);not null;default:0" json:"amountPY"`
	ShareholderName     *string          `gorm:"type:varchar(200)" json:"shareholderName"`
	HoldingPercentageCY *decimal.Decimal `gorm:"column:holding_percentage_cy;type:decimal(7,4)" json:"holdingPercentageCY"`
	NumberOfSharesPY    *int64           `gorm:"column:number_of_shares_py" json:"numberOfSharesPY"`
}

func (ShareCapitalEntry) TableName() string  { return "share_capital_entries" }
func (ShareCapitalEntry) SortColumn() string { return "class_of_share" }

// ApplyDefaults fills the class of share and face value when left empty
func (e *ShareCapitalEntry) ApplyDefaults() {
	if e.ClassOfShare == "" {
		e.ClassOfShare = DefaultClassOfShare
	}
	if e.FaceValue.IsZero() {
		e.FaceValue = DefaultFaceValue
	}
}

// Validate checks counts, amounts and the holding percentage
func (e *ShareCapitalEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Class of share", e.ClassOfShare); err != nil {
		return err
	}
	if e.NumberOfShares < 0 || (e.NumberOfSharesPY != nil && *e.NumberOfSharesPY < 0) {
		return shared.NewDomainError(shared.CodeValidation, "Number of shares cannot be negative")
	}
	if !e.FaceValue.IsPositive() {
		return shared.NewDomainError(shared.CodeValidation, "Face value must be positive")
	}
	if err := nonNegative(amount{"Amount (CY)", e.AmountCY}, amount{"Amount (PY)", e.AmountPY}); err != nil {
		return err
	}
	if p := e.HoldingPercentageCY; p != nil && (p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100))) {
		return shared.NewDomainError(shared.CodeValidation, "Holding percentage must be between 0 and 100")
	}
	return nil
}

// IsShareholding reports whether the row records a shareholder rather than a class
func (e *ShareCapitalEntry) IsShareholding() bool {
	return e.ShareholderName != nil && *e.ShareholderName != ""
}

// PaidUpValue is number of shares times face value
func (e *ShareCapitalEntry) PaidUpValue() decimal.Decimal {
	return e.FaceValue.Mul(decimal.NewFromInt(e.NumberOfShares))
}
