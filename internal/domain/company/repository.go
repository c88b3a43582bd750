package company

import (
	"context"

	"github.com/google/uuid"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByName(ctx context.Context, name string) (*Company, error)
	// ListActiveByUser returns the user's active companies ordered by name
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CommonControlRepository stores the single settings row per company
type CommonControlRepository interface {
	FindByCompany(ctx context.Context, companyID uuid.UUID) (*CommonControl, error)
	// Replace removes any existing settings for the company and stores cc
	Replace(ctx context.Context, cc *CommonControl) error
}
