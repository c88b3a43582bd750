package models

import (
	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrialBalanceEntryModel is the persistence model for one trial balance ledger line.
type TrialBalanceEntryModel struct {
	CompanyScopedModel
	LedgerName       string                 `gorm:"type:varchar(300);not null"`
	OpeningBalanceCY decimal.Decimal        `gorm:"column:opening_balance_cy;type:decimal(18,2);not null;default:0"`
	DebitCY          decimal.Decimal        `gorm:"column:debit_cy;type:decimal(18,2);not null;default:0"`
	CreditCY         decimal.Decimal        `gorm:"column:credit_cy;type:decimal(18,2);not null;default:0"`
	ClosingBalanceCY decimal.Decimal        `gorm:"column:closing_balance_cy;type:decimal(18,2);not null;default:0"`
	ClosingBalancePY decimal.Decimal        `gorm:"column:closing_balance_py;type:decimal(18,2);not null;default:0"`
	Type             taxonomy.StatementType `gorm:"type:varchar(2);not null"`
	MajorHeadID      *uuid.UUID             `gorm:"type:uuid;index"`
	MinorHeadID      *uuid.UUID             `gorm:"type:uuid;index"`
	GroupingID       *uuid.UUID             `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (TrialBalanceEntryModel) TableName() string {
	return "trial_balance_entries"
}

// ToDomain converts the persistence model to a domain TrialBalanceEntry.
func (m *TrialBalanceEntryModel) ToDomain() *ledger.TrialBalanceEntry {
	return &ledger.TrialBalanceEntry{
		CompanyScoped:    m.ToCompanyScoped(),
		LedgerName:       m.LedgerName,
		OpeningBalanceCY: m.OpeningBalanceCY,
		DebitCY:          m.DebitCY,
		CreditCY:         m.CreditCY,
		ClosingBalanceCY: m.ClosingBalanceCY,
		ClosingBalancePY: m.ClosingBalancePY,
		Type:             m.Type,
		MajorHeadID:      m.MajorHeadID,
		MinorHeadID:      m.MinorHeadID,
		GroupingID:       m.GroupingID,
	}
}

// TrialBalanceEntryModelFromDomain creates a new persistence model from a domain TrialBalanceEntry.
func TrialBalanceEntryModelFromDomain(e *ledger.TrialBalanceEntry) *TrialBalanceEntryModel {
	m := &TrialBalanceEntryModel{
		LedgerName:       e.LedgerName,
		OpeningBalanceCY: e.OpeningBalanceCY,
		DebitCY:          e.DebitCY,
		CreditCY:         e.CreditCY,
		ClosingBalanceCY: e.ClosingBalanceCY,
		ClosingBalancePY: e.ClosingBalancePY,
		Type:             e.Type,
		MajorHeadID:      e.MajorHeadID,
		MinorHeadID:      e.MinorHeadID,
		GroupingID:       e.GroupingID,
	}
	m.FromDomainCompanyScoped(e.CompanyScoped)
	return m
}
