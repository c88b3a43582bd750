package schedule

import (
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/google/uuid"
)

// SortInput optionally orders a listing. Unknown columns fall back to the natural key.
type SortInput struct {
	SortBy    string `json:"sortBy" binding:"omitempty,max=64"`
	SortOrder string `json:"sortOrder" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ListInput lists the entries of a company
type ListInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	SortInput
}

// EntryIDInput identifies one entry of a company
type EntryIDInput struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// CompanyInput names a company
type CompanyInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// AgingSchedules are the receivable and payable aging summaries of a company
type AgingSchedules struct {
	Receivables schedule.ReceivablesAging `json:"receivables"`
	Payables    schedule.PayablesAging    `json:"payables"`
}

// UpdatePolicyInput replaces the text of a company's policy note
type UpdatePolicyInput struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	Title     string    `json:"title" binding:"required,max=300"`
	Content   string    `json:"content" binding:"required"`
}

// InitializePoliciesResult reports the policies created for a company
type InitializePoliciesResult struct {
	Success  bool                        `json:"success"`
	Count    int                         `json:"count"`
	Policies []schedule.AccountingPolicy `json:"policies"`
}
