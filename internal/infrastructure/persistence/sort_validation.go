package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields present on every schedule table
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ScheduleSortFields holds the extra sortable columns of each schedule table, keyed by table name
var ScheduleSortFields = map[string]map[string]bool{
	"receivable_ledger_entries": {
		"customer_name": true, "invoice_date": true, "days_outstanding": true,
		"invoice_amount": true, "outstanding_amount": true, "aging_bucket": true,
	},
	"payable_ledger_entries": {
		"vendor_name": true, "invoice_date": true,
		"invoice_amount": true, "outstanding_amount": true, "payable_type": true, "aging_bucket": true,
	},
	"ppe_schedule_entries":        {"asset_class": true, "opening_gross_block": true, "additions": true},
	"cwip_schedule_entries":       {"particulars": true, "amount_cy": true, "aging_bucket": true},
	"intangible_schedule_entries": {"asset_class": true, "opening_gross_block": true, "aging_bucket": true},
	"investment_entries":          {"particulars": true, "classification": true, "cost_cy": true},
	"share_capital_entries":       {"class_of_share": true, "amount_cy": true, "number_of_shares": true},
	"related_party_transactions":  {"related_party_name": true, "relationship": true, "transaction_type": true, "amount_cy": true},
	"contingent_liabilities":      {"particulars": true, "type": true, "amount_cy": true},
	"employee_benefit_entries":    {"particulars": true, "category": true, "current_year": true},
	"tax_entries":                 {"particulars": true, "current_year": true},
	"deferred_tax_entries":        {"particulars": true, "category": true, "temporary_difference": true},
	"ratio_analyses":              {"ratio_name": true, "variance_percentage": true},
	"accounting_policy_contents":  {"note_ref": true, "title": true},
}

// SortFieldsFor returns the whitelist of table: the common fields plus its own columns
func SortFieldsFor(table string) map[string]bool {
	allowed := make(map[string]bool, len(CommonSortFields)+len(ScheduleSortFields[table]))
	for f := range CommonSortFields {
		allowed[f] = true
	}
	for f := range ScheduleSortFields[table] {
		allowed[f] = true
	}
	return allowed
}
