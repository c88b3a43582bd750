package ledger

import (
	"time"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrialBalanceEntryInput is one ledger line as entered or uploaded. Heads
// are given by name and created when unknown.
type TrialBalanceEntryInput struct {
	LedgerName       string          `json:"ledgerName" binding:"required,min=1,max=300"`
	OpeningBalanceCY decimal.Decimal `json:"openingBalanceCY"`
	DebitCY          decimal.Decimal `json:"debitCY"`
	CreditCY         decimal.Decimal `json:"creditCY"`
	ClosingBalanceCY decimal.Decimal `json:"closingBalanceCY"`
	ClosingBalancePY decimal.Decimal `json:"closingBalancePY"`
	Type             string          `json:"type" binding:"required,statement_type"`
	MajorHead        string          `json:"majorHead" binding:"max=200"`
	MinorHead        string          `json:"minorHead" binding:"max=200"`
	Grouping         string          `json:"grouping" binding:"max=200"`
}

// UploadTrialBalanceInput replaces a company's trial balance
type UploadTrialBalanceInput struct {
	CompanyID uuid.UUID                `json:"companyId" binding:"required"`
	Entries   []TrialBalanceEntryInput `json:"entries" binding:"required,min=1,dive"`
}

// UpdateTrialBalanceEntryInput replaces one line of a company's trial balance
type UpdateTrialBalanceEntryInput struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	TrialBalanceEntryInput
}

// EntryIDInput identifies one trial balance line of a company
type EntryIDInput struct {
	ID        uuid.UUID `json:"id" binding:"required"`
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// UploadURLInput asks for a presigned upload of a trial balance file
type UploadURLInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	FileName  string    `json:"fileName" binding:"required,max=255"`
	FileType  string    `json:"fileType" binding:"max=100"`
}

// UploadURLResponse carries the presigned URL and the key to process afterwards
type UploadURLResponse struct {
	UploadURL  string    `json:"uploadUrl"`
	ObjectName string    `json:"objectName"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// ProcessFileInput names an uploaded object to import
type ProcessFileInput struct {
	CompanyID  uuid.UUID `json:"companyId" binding:"required"`
	ObjectName string    `json:"objectName" binding:"required"`
}

// ImportCSVInput imports CSV text sent inline
type ImportCSVInput struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
	Content   string    `json:"content" binding:"required"`
	Delimiter string    `json:"delimiter" binding:"omitempty,len=1"`
}

// ImportResult reports the outcome of a file import
type ImportResult struct {
	Success          bool                   `json:"success"`
	EntriesProcessed int                    `json:"entriesProcessed"`
	Entries          []TrialBalanceResponse `json:"entries"`
}

// TrialBalanceResponse is a trial balance line with its head names
type TrialBalanceResponse struct {
	ID               uuid.UUID       `json:"id"`
	CompanyID        uuid.UUID       `json:"companyId"`
	LedgerName       string          `json:"ledgerName"`
	OpeningBalanceCY decimal.Decimal `json:"openingBalanceCY"`
	DebitCY          decimal.Decimal `json:"debitCY"`
	CreditCY         decimal.Decimal `json:"creditCY"`
	ClosingBalanceCY decimal.Decimal `json:"closingBalanceCY"`
	ClosingBalancePY decimal.Decimal `json:"closingBalancePY"`
	Type             string          `json:"type"`
	MajorHeadID      *uuid.UUID      `json:"majorHeadId"`
	MajorHead        string          `json:"majorHead,omitempty"`
	MinorHeadID      *uuid.UUID      `json:"minorHeadId"`
	MinorHead        string          `json:"minorHead,omitempty"`
	GroupingID       *uuid.UUID      `json:"groupingId"`
	Grouping         string          `json:"grouping,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ReconciliationResponse is the variance of one trial balance head
type ReconciliationResponse struct {
	TrialBalanceAmount decimal.Decimal `json:"trialBalanceAmount"`
	LedgerTotal        decimal.Decimal `json:"ledgerTotal"`
	Variance           decimal.Decimal `json:"variance"`
	Reconciled         bool            `json:"reconciled"`
}

// ReconciliationReport covers receivables and payables
type ReconciliationReport struct {
	Receivables ReconciliationResponse `json:"receivables"`
	Payables    ReconciliationResponse `json:"payables"`
}

func toTrialBalanceResponse(l *ledger.TrialBalanceLine) TrialBalanceResponse {
	return TrialBalanceResponse{
		ID:               l.ID,
		CompanyID:        l.CompanyID,
		LedgerName:       l.LedgerName,
		OpeningBalanceCY: l.OpeningBalanceCY,
		DebitCY:          l.DebitCY,
		CreditCY:         l.CreditCY,
		ClosingBalanceCY: l.ClosingBalanceCY,
		ClosingBalancePY: l.ClosingBalancePY,
		Type:             string(l.Type),
		MajorHeadID:      l.MajorHeadID,
		MajorHead:        l.MajorHeadName,
		MinorHeadID:      l.MinorHeadID,
		MinorHead:        l.MinorHeadName,
		GroupingID:       l.GroupingID,
		Grouping:         l.GroupingName,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toReconciliationResponse(r ledger.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		TrialBalanceAmount: r.TrialBalanceAmount,
		LedgerTotal:        r.LedgerTotal,
		Variance:           r.Variance,
		Reconciled:         r.Reconciled,
	}
}
