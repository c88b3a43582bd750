package company

import (
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CommonControl is the entity-level presentation and identification data
// shared by every statement generated for a company. A company has at most one.
type CommonControl struct {
	shared.CompanyScoped
	EntityName         string
	Address            string
	CINNumber          *string
	FinancialYearStart time.Time
	FinancialYearEnd   time.Time
	Currency           string
	Units              string
	NumbersFormat      string
	NegativeColor      string
	DefaultFont        string
	DefaultFontSize    int

	ShowVarianceAnalysis bool
	ShowGrowthRates      bool
	ShowTrendIndicators  bool
	VarianceThreshold    int
	ComparisonLayout     string

	IncludeComplianceIndicators bool
	ShowNoteNumbers             bool
	IncludeSummaryStats         bool
	ReportHeaderStyle           string
	PageOrientation             string
	IncludeSignatureSection     bool

	RoundingPrecision          int
	ZeroDisplayMode            string
	IncludeComparativeAnalysis bool
	AutoGenerateExplanations   bool
}

// DefaultCommonControl returns the settings reported for a company that has
// never saved its own. The result is not persisted and carries no ID.
func DefaultCommonControl(companyID uuid.UUID) *CommonControl {
	return &CommonControl{
		CompanyScoped:      shared.CompanyScoped{CompanyID: companyID},
		FinancialYearStart: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		FinancialYearEnd:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		Currency:           "INR",
		Units:              "Millions",
		NumbersFormat:      "Accounting",
		NegativeColor:      "Brackets",
		DefaultFont:        "Bookman Old Style",
		DefaultFontSize:    11,

		ShowVarianceAnalysis: true,
		ShowGrowthRates:      true,
		ShowTrendIndicators:  true,
		VarianceThreshold:    25,
		ComparisonLayout:     "Detailed",

		IncludeComplianceIndicators: true,
		ShowNoteNumbers:             true,
		IncludeSummaryStats:         true,
		ReportHeaderStyle:           "Standard",
		PageOrientation:             "Portrait",
		IncludeSignatureSection:     true,

		RoundingPrecision:          2,
		ZeroDisplayMode:            "Dash",
		IncludeComparativeAnalysis: true,
		AutoGenerateExplanations:   true,
	}
}

// NewCommonControl starts from the defaults and assigns an identity
func NewCommonControl(companyID uuid.UUID) *CommonControl {
	cc := DefaultCommonControl(companyID)
	cc.CompanyScoped = shared.NewCompanyScoped(companyID)
	return cc
}

// IsPersisted reports whether the settings were loaded from storage
func (cc *CommonControl) IsPersisted() bool {
	return cc.ID != uuid.Nil
}

// Validate checks the settings are internally consistent
func (cc *CommonControl) Validate() error {
	if cc.CompanyID == uuid.Nil {
		return shared.NewDomainError(shared.CodeValidation, "Common control requires a company")
	}
	if !cc.FinancialYearStart.IsZero() && !cc.FinancialYearEnd.IsZero() &&
		!cc.FinancialYearEnd.After(cc.FinancialYearStart) {
		return shared.NewDomainError(shared.CodeValidation, "Financial year end must be after its start")
	}
	if cc.DefaultFontSize < 6 || cc.DefaultFontSize > 32 {
		return shared.NewDomainError(shared.CodeValidation, "Default font size must be between 6 and 32")
	}
	if cc.RoundingPrecision < 0 || cc.RoundingPrecision > 6 {
		return shared.NewDomainError(shared.CodeValidation, "Rounding precision must be between 0 and 6")
	}
	if cc.VarianceThreshold < 0 {
		return shared.NewDomainError(shared.CodeValidation, "Variance threshold cannot be negative")
	}
	return nil
}

// EntityInfoComplete reports whether the identification fields used by the
// statement header are filled in
func (cc *CommonControl) EntityInfoComplete() bool {
	return cc.EntityName != "" && cc.Address != "" && cc.CINNumber != nil && *cc.CINNumber != ""
}
