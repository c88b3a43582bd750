package shared

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository is the CRUD contract shared by company-scoped entities.
// Lists are ordered by the entity's natural key.
type CompanyRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
}

// TxManager runs fn inside a database transaction. Repositories called with
// the ctx passed to fn join that transaction.
type TxManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
