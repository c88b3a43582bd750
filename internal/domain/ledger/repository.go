package ledger

import (
	"context"

	"github.com/google/uuid"
)

// TrialBalanceRepository defines the interface for trial balance persistence
type TrialBalanceRepository interface {
	Create(ctx context.Context, entry *TrialBalanceEntry) error
	Update(ctx context.Context, entry *TrialBalanceEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*TrialBalanceEntry, error)
	// ListLines returns the company's lines with head names, ordered by ledger name
	ListLines(ctx context.Context, companyID uuid.UUID) ([]TrialBalanceLine, error)
	DeleteByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
}
