package compliance

import "github.com/google/uuid"

// CompanyInput identifies the company to check
type CompanyInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// NoteComplianceInput selects one note of a company
type NoteComplianceInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	NoteRef   string    `json:"noteRef" binding:"required,max=20"`
}

// StatementFormatInput selects the statement whose format is checked
type StatementFormatInput struct {
	CompanyID     uuid.UUID `json:"companyId" binding:"required"`
	StatementType string    `json:"statementType" binding:"required,oneof=balance_sheet profit_loss cash_flow"`
}
