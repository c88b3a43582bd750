package report

import "github.com/google/uuid"

// Statement kinds that can be exported
const (
	StatementBalanceSheet  = "balance_sheet"
	StatementProfitAndLoss = "profit_loss"
	StatementCashFlow      = "cash_flow"
	StatementRatios        = "ratio_analysis"
)

// Export formats
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// CompanyInput identifies the company a statement is generated for
type CompanyInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// RatioInput generates the ratio analysis and optionally stores it as the
// company's ratio schedule
type RatioInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	Save      bool      `json:"save"`
}

// ExportInput selects a statement and output format
type ExportInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	Statement string    `json:"statement" binding:"required,oneof=balance_sheet profit_loss cash_flow ratio_analysis"`
	Format    string    `json:"format" binding:"omitempty,oneof=pdf csv"`
}

// ExportResult points at the stored export
type ExportResult struct {
	Success     bool   `json:"success"`
	DownloadURL string `json:"downloadUrl"`
	FileName    string `json:"fileName"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}
