package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVariancePercent(t *testing.T) {
	tests := []struct {
		name     string
		cy, py   string
		expected string
	}{
		{"increase", "150", "100", "50"},
		{"decrease", "50", "100", "-50"},
		{"negative base uses magnitude", "-50", "-100", "50"},
		{"zero base", "10", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VariancePercent(decimal.RequireFromString(tt.cy), decimal.RequireFromString(tt.py))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), got.String())
		})
	}
}

func TestSumByAndRatio(t *testing.T) {
	values := []int64{1, 2, 3}
	total := SumBy(values, func(v int64) decimal.Decimal { return decimal.NewFromInt(v) })
	assert.True(t, decimal.NewFromInt(6).Equal(total))

	assert.True(t, Ratio(decimal.NewFromInt(3), decimal.Zero).IsZero())
	assert.Equal(t, "1.5", Ratio(decimal.NewFromInt(3), decimal.NewFromInt(2)).String())

	assert.NoError(t, NonNegative("Amount", decimal.Zero))
	assert.Error(t, NonNegative("Amount", decimal.NewFromInt(-1)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(decimal.Zero))
	assert.Equal(t, "999", FormatAmount(decimal.NewFromInt(999)))
	assert.Contains(t, FormatAmount(decimal.RequireFromString("1234567.891")), "567.89")
	assert.Equal(t, "₹500", FormatRupees(decimal.NewFromInt(500)))
}
