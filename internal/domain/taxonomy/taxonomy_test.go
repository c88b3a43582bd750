package taxonomy

import (
	"testing"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMajorHead(t *testing.T) {
	tests := []struct {
		name      string
		statement StatementType
		category  Category
		wantErr   string
	}{
		{"BS asset", StatementBS, CategoryAsset, ""},
		{"BS liability", StatementBS, CategoryLiability, ""},
		{"PL income", StatementPL, CategoryIncome, ""},
		{"PL expense", StatementPL, CategoryExpense, ""},
		{"BS income", StatementBS, CategoryIncome, "For Balance Sheet (BS)"},
		{"PL asset", StatementPL, CategoryAsset, "For Profit & Loss (PL)"},
		{"unknown statement", StatementType("CF"), CategoryAsset, "Statement type must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewMajorHead(" Inventories ", tt.statement, tt.category)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Inventories", h.Name)
			assert.Equal(t, tt.category, h.Category)
		})
	}

	_, err := NewMajorHead("", StatementBS, CategoryAsset)
	assert.Error(t, err)
}

func TestNewMinorHeadAndGrouping(t *testing.T) {
	parent := uuid.New()

	minor, err := NewMinorHead("Tangible Assets", parent)
	require.NoError(t, err)
	assert.Equal(t, parent, minor.MajorHeadID)

	_, err = NewMinorHead("Tangible Assets", uuid.Nil)
	assert.Error(t, err)
	_, err = NewMinorHead(" ", parent)
	assert.Error(t, err)

	g, err := NewGrouping("Land", minor.ID)
	require.NoError(t, err)
	assert.Equal(t, minor.ID, g.MinorHeadID)

	_, err = NewGrouping("Land", uuid.Nil)
	assert.Error(t, err)
}

func TestStandardTaxonomy(t *testing.T) {
	names := make(map[string]bool)
	var minors, groupings int
	for _, major := range StandardTaxonomy {
		assert.False(t, names[major.Name], "duplicate major head %q", major.Name)
		names[major.Name] = true
		assert.True(t, major.Category.AllowedOn(major.StatementType), major.Name)

		seen := make(map[string]bool)
		for _, minor := range major.MinorHeads {
			assert.False(t, seen[minor.Name], "duplicate minor head %q under %q", minor.Name, major.Name)
			seen[minor.Name] = true
			minors++
			groupings += len(minor.Groupings)
		}
	}

	assert.Len(t, StandardTaxonomy, 34)
	assert.Equal(t, 28, minors)
	assert.Greater(t, groupings, 70)
}
