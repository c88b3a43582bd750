package models

import (
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/google/uuid"
)

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *company.Company {
	return &company.Company{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{
		UserID:      c.UserID,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// CommonControlModel is the persistence model for a company's common control settings.
type CommonControlModel struct {
	CompanyScopedModel
	EntityName         string  `gorm:"type:varchar(300);not null"`
	Address            string  `gorm:"type:text;not null"`
	CINNumber          *string `gorm:"column:cin_number;type:varchar(50)"`
	FinancialYearStart time.Time
	FinancialYearEnd   time.Time
	Currency           string `gorm:"type:varchar(10);not null"`
	Units              string `gorm:"type:varchar(20);not null"`
	NumbersFormat      string `gorm:"type:varchar(20);not null"`
	NegativeColor      string `gorm:"type:varchar(20);not null"`
	DefaultFont        string `gorm:"type:varchar(100);not null"`
	DefaultFontSize    int    `gorm:"not null"`

	ShowVarianceAnalysis bool   `gorm:"not null"`
	ShowGrowthRates      bool   `gorm:"not null"`
	ShowTrendIndicators  bool   `gorm:"not null"`
	VarianceThreshold    int    `gorm:"not null"`
	ComparisonLayout     string `gorm:"type:varchar(20);not null"`

	IncludeComplianceIndicators bool   `gorm:"not null"`
	ShowNoteNumbers             bool   `gorm:"not null"`
	IncludeSummaryStats         bool   `gorm:"not null"`
	ReportHeaderStyle           string `gorm:"type:varchar(20);not null"`
	PageOrientation             string `gorm:"type:varchar(20);not null"`
	IncludeSignatureSection     bool   `gorm:"not null"`

	RoundingPrecision          int    `gorm:"not null"`
	ZeroDisplayMode            string `gorm:"type:varchar(20);not null"`
	IncludeComparativeAnalysis bool   `gorm:"not null"`
	AutoGenerateExplanations   bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CommonControlModel) TableName() string {
	return "common_controls"
}

// ToDomain converts the persistence model to domain CommonControl settings.
func (m *CommonControlModel) ToDomain() *company.CommonControl {
	return &company.CommonControl{
		CompanyScoped:               m.ToCompanyScoped(),
		EntityName:                  m.EntityName,
		Address:                     m.Address,
		CINNumber:                   m.CINNumber,
		FinancialYearStart:          m.FinancialYearStart,
		FinancialYearEnd:            m.FinancialYearEnd,
		Currency:                    m.Currency,
		Units:                       m.Units,
		NumbersFormat:               m.NumbersFormat,
		NegativeColor:               m.NegativeColor,
		DefaultFont:                 m.DefaultFont,
		DefaultFontSize:             m.DefaultFontSize,
		ShowVarianceAnalysis:        m.ShowVarianceAnalysis,
		ShowGrowthRates:             m.ShowGrowthRates,
		ShowTrendIndicators:         m.ShowTrendIndicators,
		VarianceThreshold:           m.VarianceThreshold,
		ComparisonLayout:            m.ComparisonLayout,
		IncludeComplianceIndicators: m.IncludeComplianceIndicators,
		ShowNoteNumbers:             m.ShowNoteNumbers,
		IncludeSummaryStats:         m.IncludeSummaryStats,
		ReportHeaderStyle:           m.ReportHeaderStyle,
		PageOrientation:             m.PageOrientation,
		IncludeSignatureSection:     m.IncludeSignatureSection,
		RoundingPrecision:           m.RoundingPrecision,
		ZeroDisplayMode:             m.ZeroDisplayMode,
		IncludeComparativeAnalysis:  m.IncludeComparativeAnalysis,
		AutoGenerateExplanations:    m.AutoGenerateExplanations,
	}
}

// CommonControlModelFromDomain creates a new persistence model from domain CommonControl settings.
func CommonControlModelFromDomain(cc *company.CommonControl) *CommonControlModel {
	m := &CommonControlModel{
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
	}
	m.FromDomainCompanyScoped(cc.CompanyScoped)
	return m
}
