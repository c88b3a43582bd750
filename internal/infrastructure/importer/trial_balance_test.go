package importer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"-", "0"},
		{"1,23,456.00", "123456"},
		{"(1,500)", "-1500"},
		{"2500 Dr", "2500"},
		{"2500 Cr", "-2500"},
		{"₹ 10.005", "10.01"},
		{"-42.5", "-42.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := ParseAmount("twelve")
	assert.Error(t, err)
}

func TestNormalizeStatementType(t *testing.T) {
	for _, in := range []string{"BS", "bs", "Balance Sheet"} {
		got, ok := NormalizeStatementType(in)
		assert.True(t, ok, in)
		assert.Equal(t, "BS", got)
	}
	for _, in := range []string{"PL", "P&L", "Profit and Loss"} {
		got, ok := NormalizeStatementType(in)
		assert.True(t, ok, in)
		assert.Equal(t, "PL", got)
	}
	_, ok := NormalizeStatementType("XX")
	assert.False(t, ok)
}

func TestParseTrialBalance(t *testing.T) {
	t.Run("Full export", func(t *testing.T) {
		csv := "Ledger Name,Opening Balance,Debit,Credit,Closing Balance,Closing Balance PY,Type,Major Head,Minor Head,Grouping\n" +
			"Cash in hand,100,50,30,120,90,BS,Cash and Cash Equivalents,Cash,Petty cash\n" +
			"Sales,0,0,\"1,00,000\",\"(1,00,000)\",,PL,Revenue from Operations,,\n" +
			",,,,,,,,,\n"

		f, err := ParseTrialBalance(strings.NewReader(csv))
		require.NoError(t, err)
		require.False(t, f.Errors.HasErrors(), f.Errors.String())
		require.Len(t, f.Rows, 2)

		cash := f.Rows[0]
		assert.Equal(t, "Cash in hand", cash.LedgerName)
		assert.Equal(t, "BS", cash.Type)
		assert.True(t, dec("120").Equal(cash.ClosingBalanceCY))
		assert.True(t, dec("90").Equal(cash.ClosingBalancePY))
		assert.Equal(t, "Cash and Cash Equivalents", cash.MajorHead)
		assert.Equal(t, "Petty cash", cash.Grouping)

		sales := f.Rows[1]
		assert.Equal(t, "PL", sales.Type)
		assert.True(t, dec("100000").Equal(sales.CreditCY))
		assert.True(t, dec("-100000").Equal(sales.ClosingBalanceCY))
		assert.Equal(t, "", sales.MinorHead)
	})

	t.Run("Closing derived from movements", func(t *testing.T) {
		csv := "ledger_name,opening_balance_cy,debit_cy,credit_cy,type\nBank,1000,500,200,BS\n"

		f, err := ParseTrialBalance(strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, f.Rows, 1)
		assert.True(t, dec("1300").Equal(f.Rows[0].ClosingBalanceCY))
	})

	t.Run("Row errors are collected", func(t *testing.T) {
		csv := "ledger_name,closing_balance_cy,type\n" +
			"Cash,abc,BS\n" +
			",10,BS\n" +
			"Bank,10,XX\n" +
			"Stock,10,BS\n" +
			"stock,20,BS\n"

		f, err := ParseTrialBalance(strings.NewReader(csv))
		require.NoError(t, err)

		require.Len(t, f.Rows, 1)
		assert.Equal(t, "Stock", f.Rows[0].LedgerName)

		codes := []string{}
		for _, e := range f.Errors.Errors() {
			codes = append(codes, e.Code)
		}
		assert.Equal(t, []string{CodeInvalidAmount, CodeRequired, CodeInvalidType, CodeDuplicate}, codes)
		assert.Equal(t, 6, f.Errors.Errors()[3].Line)
	})

	t.Run("Missing required columns", func(t *testing.T) {
		_, err := ParseTrialBalance(strings.NewReader("ledger_name,closing\nCash,10\n"))
		assert.ErrorContains(t, err, "type")

		_, err = ParseTrialBalance(strings.NewReader("ledger_name,type\nCash,BS\n"))
		assert.ErrorContains(t, err, "amount columns")
	})

	t.Run("Header only", func(t *testing.T) {
		_, err := ParseTrialBalance(strings.NewReader("ledger_name,closing,type\n"))
		assert.ErrorIs(t, err, ErrNoDataRows)
	})
}
