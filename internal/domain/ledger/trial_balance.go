// Package ledger holds the trial balance: one row per ledger account per company.
package ledger

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciliationTolerance is the largest absolute difference treated as rounding
var ReconciliationTolerance = decimal.NewFromInt(1)

// TrialBalanceEntry is a ledger line with its current-year movement and both closing balances
type TrialBalanceEntry struct {
	shared.CompanyScoped
	LedgerName       string
	OpeningBalanceCY decimal.Decimal
	DebitCY          decimal.Decimal
	CreditCY         decimal.Decimal
	ClosingBalanceCY decimal.Decimal
	ClosingBalancePY decimal.Decimal
	Type             taxonomy.StatementType
	MajorHeadID      *uuid.UUID
	MinorHeadID      *uuid.UUID
	GroupingID       *uuid.UUID
}

// Balances are the amount fields of a trial balance line
type Balances struct {
	OpeningBalanceCY decimal.Decimal
	DebitCY          decimal.Decimal
	CreditCY         decimal.Decimal
	ClosingBalanceCY decimal.Decimal
	ClosingBalancePY decimal.Decimal
}

// NewTrialBalanceEntry creates a trial balance line for companyID
func NewTrialBalanceEntry(companyID uuid.UUID, ledgerName string, typ taxonomy.StatementType, b Balances) (*TrialBalanceEntry, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Company is required")
	}
	e := &TrialBalanceEntry{CompanyScoped: shared.NewCompanyScoped(companyID)}
	if err := e.Revise(ledgerName, typ, b); err != nil {
		return nil, err
	}
	return e, nil
}

// Revise replaces the ledger name, classification and balances
func (e *TrialBalanceEntry) Revise(ledgerName string, typ taxonomy.StatementType, b Balances) error {
	ledgerName = strings.TrimSpace(ledgerName)
	if ledgerName == "" {
		return shared.NewDomainError(shared.CodeValidation, "Ledger name is required")
	}
	if !typ.IsValid() {
		return shared.NewDomainError(shared.CodeValidation, "Type must be 'BS' or 'PL'")
	}
	if err := shared.NonNegative("Debit", b.DebitCY); err != nil {
		return err
	}
	if err := shared.NonNegative("Credit", b.CreditCY); err != nil {
		return err
	}
	e.LedgerName = ledgerName
	e.Type = typ
	e.OpeningBalanceCY = b.OpeningBalanceCY
	e.DebitCY = b.DebitCY
	e.CreditCY = b.CreditCY
	e.ClosingBalanceCY = b.ClosingBalanceCY
	e.ClosingBalancePY = b.ClosingBalancePY
	e.Touch()
	return nil
}

// Classify links the line to its heads. Any of the IDs may be nil.
func (e *TrialBalanceEntry) Classify(majorHeadID, minorHeadID, groupingID *uuid.UUID) {
	e.MajorHeadID = majorHeadID
	e.MinorHeadID = minorHeadID
	e.GroupingID = groupingID
	e.Touch()
}

// ComputedClosing is opening + debit - credit
func (e *TrialBalanceEntry) ComputedClosing() decimal.Decimal {
	return e.OpeningBalanceCY.Add(e.DebitCY).Sub(e.CreditCY)
}

// TrialBalanceLine is an entry joined with the names of its heads
type TrialBalanceLine struct {
	TrialBalanceEntry
	MajorHeadName string
	MajorCategory taxonomy.Category
	MinorHeadName string
	GroupingName  string
}

// HasPriorYear reports whether any line carries a previous-year closing balance
func HasPriorYear(lines []TrialBalanceLine) bool {
	for _, l := range lines {
		if !l.ClosingBalancePY.IsZero() {
			return true
		}
	}
	return false
}

// DefaultCategory picks the category for a major head first seen on an
// imported line: debit balances are assets or expenses, credit balances
// liabilities or income.
func DefaultCategory(typ taxonomy.StatementType, closing decimal.Decimal) taxonomy.Category {
	debit := !closing.IsNegative()
	switch {
	case typ == taxonomy.StatementPL && debit:
		return taxonomy.CategoryExpense
	case typ == taxonomy.StatementPL:
		return taxonomy.CategoryIncome
	case debit:
		return taxonomy.CategoryAsset
	default:
		return taxonomy.CategoryLiability
	}
}
