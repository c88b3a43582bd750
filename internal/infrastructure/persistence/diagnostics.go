package persistence

import (
	"context"
	"fmt"

	"github.com/finstatements/backend/internal/domain/compliance"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scopedTableNames maps the diagnostic names of company-scoped tables to their SQL tables
var scopedTableNames = map[string]string{
	"commonControl":           "common_controls",
	"trialBalanceEntry":       "trial_balance_entries",
	"noteSelection":           "note_selections",
	"receivableLedgerEntry":   "receivable_ledger_entries",
	"payableLedgerEntry":      "payable_ledger_entries",
	"ratioAnalysis":           "ratio_analyses",
	"relatedPartyTransaction": "related_party_transactions",
	"contingentLiability":     "contingent_liabilities",
	"accountingPolicyContent": "accounting_policy_contents",
	"shareCapitalEntry":       "share_capital_entries",
	"taxEntry":                "tax_entries",
	"deferredTaxEntry":        "deferred_tax_entries",
}

// GormDiagnostics runs the read-only database checks of a compliance debug run
type GormDiagnostics struct {
	db *gorm.DB
}

// NewGormDiagnostics creates a new GormDiagnostics
func NewGormDiagnostics(db *gorm.DB) *GormDiagnostics {
	return &GormDiagnostics{db: db}
}

// Ping executes SELECT 1
func (d *GormDiagnostics) Ping(ctx context.Context) error {
	var one int
	return conn(ctx, d.db).Raw("SELECT 1").Scan(&one).Error
}

// TableStatus counts the rows of a company in the table known by name.
// Failures are reported in the status rather than returned.
func (d *GormDiagnostics) TableStatus(ctx context.Context, name string, companyID uuid.UUID) compliance.TableStatus {
	table, ok := scopedTableNames[name]
	if !ok {
		return compliance.TableStatus{Error: fmt.Sprintf("unknown table %q", name)}
	}
	db := conn(ctx, d.db)
	if !db.Migrator().HasTable(table) {
		return compliance.TableStatus{Error: fmt.Sprintf("table %s does not exist", table)}
	}
	var count int64
	if err := db.Table(table).Where("company_id = ?", companyID).Count(&count).Error; err != nil {
		return compliance.TableStatus{Exists: true, Error: err.Error()}
	}
	return compliance.TableStatus{Exists: true, Count: count}
}

// companyTables lists every table holding company-scoped rows
var companyTables = []string{
	"common_controls",
	"trial_balance_entries",
	"note_selections",
	"ppe_schedule_entries",
	"cwip_schedule_entries",
	"intangible_schedule_entries",
	"investment_entries",
	"share_capital_entries",
	"receivable_ledger_entries",
	"payable_ledger_entries",
	"related_party_transactions",
	"contingent_liabilities",
	"tax_entries",
	"deferred_tax_entries",
	"employee_benefit_entries",
	"ratio_analyses",
	"accounting_policy_contents",
}

// CompanyRowCounts returns the number of rows the company owns in each
// company-scoped table, keyed by table name. Missing tables count as zero.
func (d *GormDiagnostics) CompanyRowCounts(ctx context.Context, companyID uuid.UUID) (map[string]int64, error) {
	db := conn(ctx, d.db)
	counts := make(map[string]int64, len(companyTables))
	for _, table := range companyTables {
		if !db.Migrator().HasTable(table) {
			counts[table] = 0
			continue
		}
		var n int64
		if err := db.Table(table).Where("company_id = ?", companyID).Count(&n).Error; err != nil {
			return nil, translate(err)
		}
		counts[table] = n
	}
	return counts, nil
}
