package importer

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	t.Run("UTF-8 BOM is stripped", func(t *testing.T) {
		p, err := NewParser(strings.NewReader("\xEF\xBB\xBFLedger Name,Type\nCash,BS"))
		require.NoError(t, err)
		require.NoError(t, p.ReadHeader())

		assert.Equal(t, "ledgername", p.Headers()[0])
	})

	t.Run("Empty file returns error", func(t *testing.T) {
		p, err := NewParser(strings.NewReader(""))

		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("Invalid UTF-8 is rejected", func(t *testing.T) {
		_, err := NewParser(strings.NewReader("ledger,type\n\xff\xfe,BS"))

		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("Custom delimiter", func(t *testing.T) {
		p, err := NewParser(strings.NewReader("ledger;type\nCash;BS"), WithDelimiter(';'))
		require.NoError(t, err)
		require.NoError(t, p.ReadHeader())

		assert.Equal(t, []string{"ledger", "type"}, p.Headers())
	})
}

func TestParser_ReadRow(t *testing.T) {
	p, err := NewParser(strings.NewReader("ledger,type\nCash,BS\n,\n"))
	require.NoError(t, err)
	require.NoError(t, p.ReadHeader())

	row, err := p.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, 2, row.Line)
	assert.Equal(t, "Cash", row.Get(0))
	assert.Equal(t, "", row.Get(5))
	assert.Equal(t, "", row.Get(-1))

	row, err = p.ReadRow()
	require.NoError(t, err)
	assert.True(t, row.IsEmpty())

	_, err = p.ReadRow()
	assert.ErrorIs(t, err, io.EOF)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "closingbalancecy", NormalizeHeader("Closing Balance (CY)"))
	assert.Equal(t, "closingbalancecy", NormalizeHeader("closing_balance_cy"))
	assert.Equal(t, "bspl", NormalizeHeader(" BS/PL "))
}

func TestErrorCollection(t *testing.T) {
	ec := NewErrorCollection(2)
	assert.False(t, ec.HasErrors())
	assert.Equal(t, "no errors", ec.String())

	ec.Add(RowError{Line: 2, Column: "type", Message: "bad"})
	ec.Add(RowError{Line: 3, Message: "worse"})
	ec.Add(RowError{Line: 4, Message: "dropped"})

	assert.Equal(t, 3, ec.Total())
	assert.Len(t, ec.Errors(), 2)
	assert.True(t, ec.IsTruncated())
	assert.Contains(t, ec.String(), "line 2, column 'type': bad")
	assert.Contains(t, ec.String(), "showing first 2")
}
