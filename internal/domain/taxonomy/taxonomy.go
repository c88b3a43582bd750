// Package taxonomy holds the global Schedule III classification used to map
// trial balance lines: major heads, their minor heads and the groupings below them.
package taxonomy

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StatementType is the financial statement a head is presented on
type StatementType string

const (
	StatementBS StatementType = "BS"
	StatementPL StatementType = "PL"
)

// IsValid reports whether the statement type is known
func (s StatementType) IsValid() bool {
	return s == StatementBS || s == StatementPL
}

// Category classifies a major head within its statement
type Category string

const (
	CategoryAsset     Category = "Asset"
	CategoryLiability Category = "Liability"
	CategoryIncome    Category = "Income"
	CategoryExpense   Category = "Expense"
)

// AllowedOn reports whether the category may be used on statement s
func (c Category) AllowedOn(s StatementType) bool {
	switch s {
	case StatementBS:
		return c == CategoryAsset || c == CategoryLiability
	case StatementPL:
		return c == CategoryIncome || c == CategoryExpense
	default:
		return false
	}
}

// MajorHead is a top-level line item such as "Trade Receivables"
type MajorHead struct {
	shared.BaseEntity
	Name          string
	StatementType StatementType
	Category      Category
}

// NewMajorHead creates a major head after checking the category fits the statement
func NewMajorHead(name string, statementType StatementType, category Category) (*MajorHead, error) {
	h := &MajorHead{BaseEntity: shared.NewBaseEntity()}
	if err := h.Reclassify(name, statementType, category); err != nil {
		return nil, err
	}
	return h, nil
}

// Reclassify renames the head and changes its statement placement
func (h *MajorHead) Reclassify(name string, statementType StatementType, category Category) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.CodeValidation, "Major Head name is required")
	}
	if !statementType.IsValid() {
		return shared.NewDomainError(shared.CodeValidation,
			"Statement type must be 'BS' (Balance Sheet) or 'PL' (Profit & Loss)")
	}
	if !category.AllowedOn(statementType) {
		if statementType == StatementBS {
			return shared.NewDomainError(shared.CodeValidation,
				"For Balance Sheet (BS), category must be 'Asset' or 'Liability'")
		}
		return shared.NewDomainError(shared.CodeValidation,
			"For Profit & Loss (PL), category must be 'Income' or 'Expense'")
	}
	h.Name = name
	h.StatementType = statementType
	h.Category = category
	h.Touch()
	return nil
}

// MinorHead groups ledgers under a major head
type MinorHead struct {
	shared.BaseEntity
	Name        string
	MajorHeadID uuid.UUID
}

// NewMinorHead creates a minor head under majorHeadID
func NewMinorHead(name string, majorHeadID uuid.UUID) (*MinorHead, error) {
	h := &MinorHead{BaseEntity: shared.NewBaseEntity()}
	if err := h.Move(name, majorHeadID); err != nil {
		return nil, err
	}
	return h, nil
}

// Move renames the minor head and re-parents it
func (h *MinorHead) Move(name string, majorHeadID uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.CodeValidation, "Minor Head name is required")
	}
	if majorHeadID == uuid.Nil {
		return shared.NewDomainError(shared.CodeValidation,
			"Major Head selection is required - Minor Head must be mapped to a Major Head")
	}
	h.Name = name
	h.MajorHeadID = majorHeadID
	h.Touch()
	return nil
}

// Grouping is the finest classification level, under a minor head
type Grouping struct {
	shared.BaseEntity
	Name        string
	MinorHeadID uuid.UUID
}

// NewGrouping creates a grouping under minorHeadID
func NewGrouping(name string, minorHeadID uuid.UUID) (*Grouping, error) {
	g := &Grouping{BaseEntity: shared.NewBaseEntity()}
	if err := g.Move(name, minorHeadID); err != nil {
		return nil, err
	}
	return g, nil
}

// Move renames the grouping and re-parents it
func (g *Grouping) Move(name string, minorHeadID uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError(shared.CodeValidation, "Grouping name is required")
	}
	if minorHeadID == uuid.Nil {
		return shared.NewDomainError(shared.CodeValidation,
			"Minor Head selection is required - Grouping must be mapped to a Minor Head")
	}
	g.Name = name
	g.MinorHeadID = minorHeadID
	g.Touch()
	return nil
}
