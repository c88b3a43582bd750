package schedule

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RelatedPartyTransaction is a transaction or balance with a related party
type RelatedPartyTransaction struct {
	shared.CompanyScoped
	RelatedPartyName     string          `gorm:"type:varchar(200);not null" json:"relatedPartyName"`
	Relationship         string          `gorm:"type:varchar(200);not null" json:"relationship"`
	TransactionType      string          `gorm:"type:varchar(200);not null" json:"transactionType"`
	AmountCY             decimal.Decimal `gorm:"column:amount_cy;type:decimal(18,2);not null;default:0" json:"amountCY"`
	AmountPY             decimal.Decimal `gorm:"column:amount_py;type:decimal(18,2);not null;default:0" json:"amountPY"`
	BalanceOutstandingCY decimal.Decimal `gorm:"column:balance_outstanding_cy;type:decimal(18,2);not null;default:0" json:"balanceOutstandingCY"`
	BalanceOutstandingPY decimal.Decimal `gorm:"column:balance_outstanding_py;type:decimal(18,2);not null;default:0" json:"balanceOutstandingPY"`
}

func (RelatedPartyTransaction) TableName() string  { return "related_party_transactions" }
func (RelatedPartyTransaction) SortColumn() string { return "related_party_name" }

func (e *RelatedPartyTransaction) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Related party name", e.RelatedPartyName); err != nil {
		return err
	}
	if err := required("Relationship", e.Relationship); err != nil {
		return err
	}
	return required("Transaction type", e.TransactionType)
}

// IsKMP reports whether the counterparty is key management personnel
func (e *RelatedPartyTransaction) IsKMP() bool {
	rel := strings.ToLower(e.Relationship)
	return strings.Contains(rel, "key management") || strings.Contains(rel, "director")
}

// Contingent liability types
const (
	ContingentLiabilityType = "Contingent Liability"
	CommitmentType          = "Commitment"
)

// ContingentLiability is a contingent liability or capital commitment
type ContingentLiability struct {
	shared.CompanyScoped
	Particulars string          `gorm:"type:varchar(300);not null" json:"particulars"`
	Type        string          `gorm:"type:varchar(30);not null" json:"type"`
	AmountCY    decimal.Decimal `gorm:"column:amount_cy;type:decimal(18,2);not null;default:0" json:"amountCY"`
	AmountPY    decimal.Decimal `gorm:"column:amount_py;type:decimal(18,2);not null;default:0" json:"amountPY"`
}

func (ContingentLiability) TableName() string  { return "contingent_liabilities" }
func (ContingentLiability) SortColumn() string { return "particulars" }

func (e *ContingentLiability) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Particulars", e.Particulars); err != nil {
		return err
	}
	return oneOf("Type", e.Type, ContingentLiabilityType, CommitmentType)
}

// Employee benefit plan categories
const (
	DefinedContribution = "Defined Contribution"
	DefinedBenefit      = "Defined Benefit"
)

// EmployeeBenefitEntry is an employee benefit expense or obligation line
type EmployeeBenefitEntry struct {
	shared.CompanyScoped
	Particulars  string          `gorm:"type:varchar(300);not null" json:"particulars"`
	CurrentYear  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"currentYear"`
	PreviousYear decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"previousYear"`
	Category     string          `gorm:"type:varchar(30);not null" json:"category"`
}

func (EmployeeBenefitEntry) TableName() string  { return "employee_benefit_entries" }
func (EmployeeBenefitEntry) SortColumn() string { return "particulars" }

func (e *EmployeeBenefitEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Particulars", e.Particulars); err != nil {
		return err
	}
	return oneOf("Category", e.Category, DefinedContribution, DefinedBenefit)
}
