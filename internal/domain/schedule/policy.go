package schedule

import (
	"context"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountingPolicy is the text of one significant accounting policy note.
// Rows without a company are global defaults.
type AccountingPolicy struct {
	shared.BaseEntity
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"companyId"`
	NoteRef   string     `gorm:"type:varchar(20);not null" json:"noteRef"`
	Title     string     `gorm:"type:varchar(300);not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	IsDefault bool       `gorm:"not null;default:false" json:"isDefault"`
}

func (AccountingPolicy) TableName() string  { return "accounting_policy_contents" }
func (AccountingPolicy) SortColumn() string { return "note_ref" }

// GetCompanyID returns uuid.Nil for global defaults
func (e *AccountingPolicy) GetCompanyID() uuid.UUID {
	if e.CompanyID == nil {
		return uuid.Nil
	}
	return *e.CompanyID
}

func (e *AccountingPolicy) Validate() error {
	if err := required("Note reference", e.NoteRef); err != nil {
		return err
	}
	if err := required("Title", e.Title); err != nil {
		return err
	}
	return required("Content", e.Content)
}

// Revise replaces the title and content. A revised policy is no longer a default.
func (e *AccountingPolicy) Revise(title, content string) error {
	if err := required("Title", title); err != nil {
		return err
	}
	if err := required("Content", content); err != nil {
		return err
	}
	e.Title = title
	e.Content = content
	e.IsDefault = false
	e.Touch()
	return nil
}

// PolicyRepository adds access to the global default policies
type PolicyRepository interface {
	Repository[AccountingPolicy]
	ListGlobal(ctx context.Context) ([]AccountingPolicy, error)
}

// DefaultPolicies returns fresh copies of the standard policy notes for companyID
func DefaultPolicies(companyID uuid.UUID) []AccountingPolicy {
	out := make([]AccountingPolicy, 0, len(defaultPolicyText))
	for _, p := range defaultPolicyText {
		id := companyID
		out = append(out, AccountingPolicy{
			BaseEntity: shared.NewBaseEntity(),
			CompanyID:  &id,
			NoteRef:    p.ref,
			Title:      p.title,
			Content:    p.content,
			IsDefault:  true,
		})
	}
	return out
}

var defaultPolicyText = []struct{ ref, title, content string }{
	{"A.2.1", "Revenue Recognition (AS 9)",
		"Revenue is recognised when it is probable that economic benefits will flow to the Company and the amount can be measured reliably. " +
			"Sale of goods is recognised when significant risks and rewards of ownership pass to the buyer, generally on dispatch. " +
			"Service income is recognised as the services are rendered. Interest income accrues on a time proportion basis at the applicable rate."},
	{"A.2.2", "Property, Plant and Equipment (AS 10)",
		"Property, plant and equipment are stated at cost less accumulated depreciation and impairment losses. " +
			"Cost includes purchase price, non-refundable taxes and directly attributable costs of bringing the asset to working condition. " +
			"Depreciation is provided on the straight-line method over the useful lives prescribed in Schedule II to the Companies Act, 2013."},
	{"A.2.3", "Intangible Assets (AS 26)",
		"Intangible assets are recognised at cost when future economic benefits are probable and cost can be measured reliably. " +
			"They are amortised on a straight-line basis over their estimated useful lives, reviewed at each reporting date."},
	{"A.2.4", "Impairment of Assets (AS 28)",
		"At each balance sheet date the Company assesses whether there is any indication of impairment. " +
			"Where the carrying amount exceeds the recoverable amount, being the higher of net selling price and value in use, an impairment loss is recognised in the statement of profit and loss."},
	{"A.2.5", "Inventories (AS 2)",
		"Inventories are valued at the lower of cost and net realisable value. " +
			"Cost is determined on a weighted average basis and comprises purchase cost, conversion cost and other costs incurred in bringing inventories to their present location and condition."},
	{"A.2.6", "Investments (AS 13)",
		"Current investments are carried at the lower of cost and fair value, determined category-wise. " +
			"Long-term investments are carried at cost, with provision made for any decline in value that is other than temporary."},
	{"A.2.7", "Foreign Currency Transactions (AS 11)",
		"Foreign currency transactions are recorded at the exchange rate on the transaction date. " +
			"Monetary items outstanding at the balance sheet date are translated at the closing rate, and resulting exchange differences are recognised in the statement of profit and loss."},
	{"A.2.8", "Employee Benefits (AS 15)",
		"Short-term employee benefits are expensed in the period the service is rendered. " +
			"Contributions to defined contribution plans such as provident fund are charged when due. " +
			"Gratuity and other defined benefit obligations are provided on the basis of an actuarial valuation using the projected unit credit method."},
	{"A.2.9", "Borrowing Costs (AS 16)",
		"Borrowing costs directly attributable to the acquisition or construction of qualifying assets are capitalised as part of the cost of those assets. " +
			"Other borrowing costs are expensed in the period in which they are incurred."},
	{"A.2.10", "Provisions, Contingent Liabilities and Contingent Assets (AS 29)",
		"A provision is recognised when the Company has a present obligation as a result of a past event and a reliable estimate can be made of a probable outflow. " +
			"Contingent liabilities are disclosed in the notes. Contingent assets are neither recognised nor disclosed."},
	{"A.2.11", "Income Taxes (AS 22)",
		"Tax expense comprises current tax and deferred tax. Current tax is measured at the amount expected to be paid under the Income Tax Act, 1961. " +
			"Deferred tax is recognised on timing differences using rates enacted or substantively enacted at the balance sheet date, and deferred tax assets are recognised only where realisation is reasonably certain."},
	{"A.2.12", "Government Grants (AS 12)",
		"Government grants are recognised when there is reasonable assurance that the conditions attached will be met and the grant will be received. " +
			"Grants related to expenses are recognised as income over the periods of the related costs; grants related to assets are released over the useful life of the asset."},
}
