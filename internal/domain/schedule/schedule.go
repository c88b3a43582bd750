// Package schedule holds the supporting schedules behind Schedule III line
// items. Every entry is a flat, company-scoped record of current and previous
// year figures, created, listed, merged and deleted independently.
package schedule

import (
	"context"
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is implemented by every schedule row
type Entry interface {
	TableName() string
	// SortColumn is the natural key lists are ordered by
	SortColumn() string
	Validate() error
	GetID() uuid.UUID
	GetCompanyID() uuid.UUID
}

// Repository is the persistence contract of one schedule
type Repository[T any] interface {
	shared.CompanyRepository[T]
	// ListSorted orders by sortField when it is a known column, else by the natural key
	ListSorted(ctx context.Context, companyID uuid.UUID, sortField, sortOrder string) ([]T, error)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return shared.NewDomainError(shared.CodeValidation, field+" is required")
	}
	return nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return shared.NewDomainError(shared.CodeValidation,
		field+" must be one of: "+strings.Join(allowed, ", "))
}

// amount is a named field checked by nonNegative
type amount struct {
	name  string
	value decimal.Decimal
}

// nonNegative reports the first negative amount in argument order
func nonNegative(fields ...amount) error {
	for _, f := range fields {
		if err := shared.NonNegative(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

func requireCompany(id uuid.UUID) error {
	if id == uuid.Nil {
		return shared.NewDomainError(shared.CodeValidation, "Company is required")
	}
	return nil
}
