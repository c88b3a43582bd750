package company

import (
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/google/uuid"
)

// CreateCompanyInput represents a request to create a company
type CreateCompanyInput struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	DisplayName string `json:"displayName" binding:"max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CompanyIDInput identifies a company
type CompanyIDInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// UpdateCompanyInput represents a partial company update
type UpdateCompanyInput struct {
	CompanyID   uuid.UUID `json:"companyId" binding:"required"`
	Name        *string   `json:"name" binding:"omitempty,min=1,max=100"`
	DisplayName *string   `json:"displayName" binding:"omitempty,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool     `json:"isActive"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyStatsResponse reports how many rows a company owns per table
type CompanyStatsResponse struct {
	CompanyID uuid.UUID        `json:"companyId"`
	Counts    map[string]int64 `json:"counts"`
	Total     int64            `json:"total"`
}

// CommonControlInput replaces a company's common control settings. Dates
// accept YYYY-MM-DD or RFC 3339.
type CommonControlInput struct {
	CompanyID          uuid.UUID `json:"companyId" binding:"required"`
	EntityName         string    `json:"entityName" binding:"max=200"`
	Address            string    `json:"address" binding:"max=500"`
	CINNumber          *string   `json:"cinNumber" binding:"omitempty,max=21"`
	FinancialYearStart string    `json:"financialYearStart" binding:"required"`
	FinancialYearEnd   string    `json:"financialYearEnd" binding:"required"`
	Currency           string    `json:"currency" binding:"omitempty,len=3"`
	Units              string    `json:"units" binding:"omitempty,oneof=Actuals Thousands Lakhs Millions Crores"`
	NumbersFormat      string    `json:"numbersFormat" binding:"max=50"`
	NegativeColor      string    `json:"negativeColor" binding:"max=50"`
	DefaultFont        string    `json:"defaultFont" binding:"max=100"`
	DefaultFontSize    int       `json:"defaultFontSize"`

	ShowVarianceAnalysis *bool  `json:"showVarianceAnalysis"`
	ShowGrowthRates      *bool  `json:"showGrowthRates"`
	ShowTrendIndicators  *bool  `json:"showTrendIndicators"`
	VarianceThreshold    *int   `json:"varianceThreshold"`
	ComparisonLayout     string `json:"comparisonLayout" binding:"max=50"`

	IncludeComplianceIndicators *bool  `json:"includeComplianceIndicators"`
	ShowNoteNumbers             *bool  `json:"showNoteNumbers"`
	IncludeSummaryStats         *bool  `json:"includeSummaryStats"`
	ReportHeaderStyle           string `json:"reportHeaderStyle" binding:"max=50"`
	PageOrientation             string `json:"pageOrientation" binding:"omitempty,oneof=Portrait Landscape"`
	IncludeSignatureSection     *bool  `json:"includeSignatureSection"`

	RoundingPrecision          *int   `json:"roundingPrecision"`
	ZeroDisplayMode            string `json:"zeroDisplayMode" binding:"omitempty,oneof=Dash Zero Blank"`
	IncludeComparativeAnalysis *bool  `json:"includeComparativeAnalysis"`
	AutoGenerateExplanations   *bool  `json:"autoGenerateExplanations"`
}

// CommonControlResponse represents common control settings in API responses
type CommonControlResponse struct {
	ID                 *uuid.UUID `json:"id"`
	CompanyID          uuid.UUID  `json:"companyId"`
	EntityName         string     `json:"entityName"`
	Address            string     `json:"address"`
	CINNumber          *string    `json:"cinNumber"`
	FinancialYearStart time.Time  `json:"financialYearStart"`
	FinancialYearEnd   time.Time  `json:"financialYearEnd"`
	Currency           string     `json:"currency"`
	Units              string     `json:"units"`
	NumbersFormat      string     `json:"numbersFormat"`
	NegativeColor      string     `json:"negativeColor"`
	DefaultFont        string     `json:"defaultFont"`
	DefaultFontSize    int        `json:"defaultFontSize"`

	ShowVarianceAnalysis bool   `json:"showVarianceAnalysis"`
	ShowGrowthRates      bool   `json:"showGrowthRates"`
	ShowTrendIndicators  bool   `json:"showTrendIndicators"`
	VarianceThreshold    int    `json:"varianceThreshold"`
	ComparisonLayout     string `json:"comparisonLayout"`

	IncludeComplianceIndicators bool   `json:"includeComplianceIndicators"`
	ShowNoteNumbers             bool   `json:"showNoteNumbers"`
	IncludeSummaryStats         bool   `json:"includeSummaryStats"`
	ReportHeaderStyle           string `json:"reportHeaderStyle"`
	PageOrientation             string `json:"pageOrientation"`
	IncludeSignatureSection     bool   `json:"includeSignatureSection"`

	RoundingPrecision          int    `json:"roundingPrecision"`
	ZeroDisplayMode            string `json:"zeroDisplayMode"`
	IncludeComparativeAnalysis bool   `json:"includeComparativeAnalysis"`
	AutoGenerateExplanations   bool   `json:"autoGenerateExplanations"`
	// IsDefault is true when the company has not saved its own settings yet
	IsDefault bool `json:"isDefault"`
}

// ToCompanyResponse converts a domain company to its response form
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCommonControlResponse converts domain settings to their response form
func ToCommonControlResponse(cc *company.CommonControl) CommonControlResponse {
	resp := CommonControlResponse{
		CompanyID:                   cc.CompanyID,
		EntityName:                  cc.EntityName,
		Address:                     cc.Address,
		CINNumber:                   cc.CINNumber,
		FinancialYearStart:          cc.FinancialYearStart,
		FinancialYearEnd:            cc.FinancialYearEnd,
		Currency:                    cc.Currency,
		Units:                       cc.Units,
		NumbersFormat:               cc.NumbersFormat,
		NegativeColor:               cc.NegativeColor,
		DefaultFont:                 cc.DefaultFont,
		DefaultFontSize:             cc.DefaultFontSize,
		ShowVarianceAnalysis:        cc.ShowVarianceAnalysis,
		ShowGrowthRates:             cc.ShowGrowthRates,
		ShowTrendIndicators:         cc.ShowTrendIndicators,
		VarianceThreshold:           cc.VarianceThreshold,
		ComparisonLayout:            cc.ComparisonLayout,
		IncludeComplianceIndicators: cc.IncludeComplianceIndicators,
		ShowNoteNumbers:             cc.ShowNoteNumbers,
		IncludeSummaryStats:         cc.IncludeSummaryStats,
		ReportHeaderStyle:           cc.ReportHeaderStyle,
		PageOrientation:             cc.PageOrientation,
		IncludeSignatureSection:     cc.IncludeSignatureSection,
		RoundingPrecision:           cc.RoundingPrecision,
		ZeroDisplayMode:             cc.ZeroDisplayMode,
		IncludeComparativeAnalysis:  cc.IncludeComparativeAnalysis,
		AutoGenerateExplanations:    cc.AutoGenerateExplanations,
		IsDefault:                   !cc.IsPersisted(),
	}
	if cc.IsPersisted() {
		id := cc.ID
		resp.ID = &id
	}
	return resp
}
