package company

import (
	"strings"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	owner := uuid.New()

	t.Run("creates active company", func(t *testing.T) {
		c, err := NewCompany(owner, " Acme ", "Acme Ltd", "  widgets ")

		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Name)
		assert.Equal(t, "Acme Ltd", c.DisplayName)
		assert.Equal(t, "widgets", c.Description)
		assert.True(t, c.IsActive)
		assert.True(t, c.OwnedBy(owner))
		assert.False(t, c.OwnedBy(uuid.New()))
	})

	t.Run("display name falls back to name", func(t *testing.T) {
		c, err := NewCompany(owner, "Acme", "", "")

		require.NoError(t, err)
		assert.Equal(t, "Acme", c.DisplayName)
	})

	tests := []struct {
		name    string
		owner   uuid.UUID
		company string
		msg     string
	}{
		{"missing owner", uuid.Nil, "Acme", "owner"},
		{"empty name", owner, "  ", "Company name is required"},
		{"long name", owner, strings.Repeat("a", 101), "too long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompany(tt.owner, tt.company, "", "")

			require.Error(t, err)
			assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCompany_Apply(t *testing.T) {
	c, err := NewCompany(uuid.New(), "Acme", "Acme Ltd", "")
	require.NoError(t, err)

	name := "Acme Two"
	inactive := false
	require.NoError(t, c.Apply(Update{Name: &name, IsActive: &inactive}))
	assert.Equal(t, "Acme Two", c.Name)
	assert.Equal(t, "Acme Ltd", c.DisplayName)
	assert.False(t, c.IsActive)

	empty := ""
	assert.Error(t, c.Apply(Update{Name: &empty}))
	assert.Equal(t, "Acme Two", c.Name)
}

func TestCompany_Archive(t *testing.T) {
	c, err := NewCompany(uuid.New(), "Acme", "", "")
	require.NoError(t, err)

	c.Archive()
	assert.False(t, c.IsActive)
}

func TestDefaultCommonControl(t *testing.T) {
	companyID := uuid.New()
	cc := DefaultCommonControl(companyID)

	assert.False(t, cc.IsPersisted())
	assert.Equal(t, companyID, cc.CompanyID)
	assert.Equal(t, "INR", cc.Currency)
	assert.Equal(t, "Millions", cc.Units)
	assert.Equal(t, "Bookman Old Style", cc.DefaultFont)
	assert.Equal(t, 11, cc.DefaultFontSize)
	assert.Equal(t, 25, cc.VarianceThreshold)
	assert.Equal(t, "Dash", cc.ZeroDisplayMode)
	assert.Nil(t, cc.CINNumber)
	assert.Equal(t, time.April, cc.FinancialYearStart.Month())
	assert.Equal(t, 2025, cc.FinancialYearEnd.Year())
	assert.NoError(t, cc.Validate())
	assert.False(t, cc.EntityInfoComplete())
}

func TestCommonControl_Validate(t *testing.T) {
	cc := NewCommonControl(uuid.New())
	assert.True(t, cc.IsPersisted())

	cc.FinancialYearEnd = cc.FinancialYearStart.AddDate(0, 0, -1)
	assert.Error(t, cc.Validate())

	cc = NewCommonControl(uuid.New())
	cc.DefaultFontSize = 2
	assert.Error(t, cc.Validate())

	cc = NewCommonControl(uuid.New())
	cc.RoundingPrecision = -1
	assert.Error(t, cc.Validate())
}

func TestCommonControl_EntityInfoComplete(t *testing.T) {
	cc := NewCommonControl(uuid.New())
	cin := "U12345MH2020PTC123456"
	cc.EntityName = "Acme Ltd"
	cc.Address = "Mumbai"
	assert.False(t, cc.EntityInfoComplete())

	cc.CINNumber = &cin
	assert.True(t, cc.EntityInfoComplete())
}
