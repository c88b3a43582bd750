package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSortOrder(t *testing.T) {
	for in, want := range map[string]string{
		"":             "ASC",
		"asc":          "ASC",
		"DESC":         "DESC",
		" desc ":       "DESC",
		"descending":   "ASC",
		"DESC; DELETE": "ASC",
	} {
		assert.Equal(t, want, ValidateSortOrder(in), "input %q", in)
	}
}

func TestValidateSortField(t *testing.T) {
	allowed := SortFieldsFor("receivable_ledger_entries")

	tests := []struct {
		in, want string
	}{
		{"", "customer_name"},
		{"outstanding_amount", "outstanding_amount"},
		{"  days_outstanding ", "days_outstanding"},
		{"created_at", "created_at"},
		{"CUSTOMER_NAME", "customer_name"},
		{"vendor_name", "customer_name"},
		{"customer_name; DROP TABLE companies", "customer_name"},
		{"(SELECT password_hash FROM users)", "customer_name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateSortField(tt.in, allowed, "customer_name"), "input %q", tt.in)
	}
}

func TestSortFieldsFor(t *testing.T) {
	t.Run("unknown tables only get the common fields", func(t *testing.T) {
		assert.Equal(t, CommonSortFields, SortFieldsFor("companies"))
	})

	t.Run("common whitelist is not mutated", func(t *testing.T) {
		_ = SortFieldsFor("tax_entries")
		assert.Len(t, CommonSortFields, 3)
	})
}

// Every whitelisted column must exist, otherwise a valid sort request fails in SQL
func TestScheduleSortFields_MatchSchema(t *testing.T) {
	db := setupTestDB(t)
	migrator := db.Migrator()

	for table := range ScheduleSortFields {
		require.True(t, migrator.HasTable(table), "table %s", table)
		for column := range SortFieldsFor(table) {
			assert.True(t, migrator.HasColumn(table, column), "%s.%s", table, column)
		}
	}
}
