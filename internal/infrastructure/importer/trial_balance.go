package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Header aliases accepted for each trial balance column
var (
	ledgerHeaders    = []string{"ledger_name", "ledger", "ledger name", "account", "account name", "particulars"}
	openingHeaders   = []string{"opening_balance_cy", "opening balance", "opening"}
	debitHeaders     = []string{"debit_cy", "debit", "dr"}
	creditHeaders    = []string{"credit_cy", "credit", "cr"}
	closingHeaders   = []string{"closing_balance_cy", "closing balance", "closing", "closing_cy"}
	closingPYHeaders = []string{"closing_balance_py", "previous year", "closing_py", "py"}
	typeHeaders      = []string{"type", "statement type", "bs/pl"}
	majorHeaders     = []string{"major_head", "major head"}
	minorHeaders     = []string{"minor_head", "minor head"}
	groupingHeaders  = []string{"grouping", "group"}
)

// MaxTrialBalanceRows caps the number of data rows one file may carry
const MaxTrialBalanceRows = 20000

// TrialBalanceRow is one parsed ledger line. Type is "BS" or "PL".
type TrialBalanceRow struct {
	Line             int
	LedgerName       string
	OpeningBalanceCY decimal.Decimal
	DebitCY          decimal.Decimal
	CreditCY         decimal.Decimal
	ClosingBalanceCY decimal.Decimal
	ClosingBalancePY decimal.Decimal
	Type             string
	MajorHead        string
	MinorHead        string
	Grouping         string
}

// TrialBalanceFile is the outcome of parsing an upload
type TrialBalanceFile struct {
	Rows   []TrialBalanceRow
	Errors *ErrorCollection
}

type tbColumns struct {
	ledger, opening, debit, credit, closing, closingPY int
	typ, major, minor, grouping                        int
}

// ParseTrialBalance reads a trial balance export. A missing closing balance
// column is derived as opening + debit - credit. Rows with problems are
// collected in Errors and left out of Rows; blank rows are skipped.
func ParseTrialBalance(r io.Reader, opts ...ParserOption) (*TrialBalanceFile, error) {
	p, err := NewParser(r, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.ReadHeader(); err != nil {
		return nil, err
	}

	cols, err := resolveColumns(p)
	if err != nil {
		return nil, err
	}

	out := &TrialBalanceFile{Errors: NewErrorCollection(100)}
	seen := make(map[string]int)
	for {
		row, err := p.ReadRow()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			out.Errors.Add(RowError{Line: p.line, Code: CodeMalformedRow, Message: err.Error()})
			continue
		}
		if row.IsEmpty() {
			continue
		}
		if len(out.Rows)+out.Errors.Total() >= MaxTrialBalanceRows {
			return nil, fmt.Errorf("file exceeds %d rows", MaxTrialBalanceRows)
		}

		tbRow, ok := parseTrialBalanceRow(row, cols, out.Errors)
		if !ok {
			continue
		}
		key := strings.ToLower(tbRow.LedgerName)
		if first, dup := seen[key]; dup {
			out.Errors.Add(RowError{
				Line: row.Line, Column: "ledger_name", Code: CodeDuplicate, Value: tbRow.LedgerName,
				Message: fmt.Sprintf("ledger already listed on line %d", first),
			})
			continue
		}
		seen[key] = row.Line
		out.Rows = append(out.Rows, tbRow)
	}

	if len(out.Rows) == 0 && !out.Errors.HasErrors() {
		return nil, ErrNoDataRows
	}
	return out, nil
}

func resolveColumns(p *Parser) (tbColumns, error) {
	var c tbColumns
	var ok bool
	if c.ledger, ok = p.Lookup(ledgerHeaders...); !ok {
		return c, fmt.Errorf("missing required column: ledger_name")
	}
	if c.typ, ok = p.Lookup(typeHeaders...); !ok {
		return c, fmt.Errorf("missing required column: type")
	}
	c.opening, _ = p.Lookup(openingHeaders...)
	c.debit, _ = p.Lookup(debitHeaders...)
	c.credit, _ = p.Lookup(creditHeaders...)
	c.closing, _ = p.Lookup(closingHeaders...)
	c.closingPY, _ = p.Lookup(closingPYHeaders...)
	c.major, _ = p.Lookup(majorHeaders...)
	c.minor, _ = p.Lookup(minorHeaders...)
	c.grouping, _ = p.Lookup(groupingHeaders...)
	if c.closing < 0 && c.debit < 0 && c.credit < 0 {
		return c, fmt.Errorf("missing amount columns: closing_balance_cy or debit_cy/credit_cy")
	}
	return c, nil
}

func parseTrialBalanceRow(row *Row, c tbColumns, errs *ErrorCollection) (TrialBalanceRow, bool) {
	out := TrialBalanceRow{
		Line:       row.Line,
		LedgerName: row.Get(c.ledger),
		MajorHead:  row.Get(c.major),
		MinorHead:  row.Get(c.minor),
		Grouping:   row.Get(c.grouping),
	}
	ok := true
	if out.LedgerName == "" {
		errs.Add(RowError{Line: row.Line, Column: "ledger_name", Code: CodeRequired, Message: "ledger name is required"})
		ok = false
	}

	typ, valid := NormalizeStatementType(row.Get(c.typ))
	if !valid {
		errs.Add(RowError{
			Line: row.Line, Column: "type", Code: CodeInvalidType, Value: row.Get(c.typ),
			Message: "type must be BS or PL",
		})
		ok = false
	}
	out.Type = typ

	amount := func(col int, name string) decimal.Decimal {
		raw := row.Get(col)
		v, err := ParseAmount(raw)
		if err != nil {
			errs.Add(RowError{Line: row.Line, Column: name, Code: CodeInvalidAmount, Value: raw, Message: err.Error()})
			ok = false
		}
		return v
	}
	out.OpeningBalanceCY = amount(c.opening, "opening_balance_cy")
	out.DebitCY = amount(c.debit, "debit_cy").Abs()
	out.CreditCY = amount(c.credit, "credit_cy").Abs()
	out.ClosingBalancePY = amount(c.closingPY, "closing_balance_py")
	if c.closing >= 0 && row.Get(c.closing) != "" {
		out.ClosingBalanceCY = amount(c.closing, "closing_balance_cy")
	} else {
		out.ClosingBalanceCY = out.OpeningBalanceCY.Add(out.DebitCY).Sub(out.CreditCY)
	}
	return out, ok
}

// NormalizeStatementType maps the spellings accountants use to "BS" or "PL"
func NormalizeStatementType(s string) (string, bool) {
	switch NormalizeHeader(s) {
	case "bs", "balancesheet":
		return "BS", true
	case "pl", "pnl", "profitandloss", "profitloss", "statementofprofitandloss":
		return "PL", true
	}
	return "", false
}

// ParseAmount reads an amount as exported by accounting packages. Grouping
// commas, currency symbols, parentheses for negatives and a trailing Dr or Cr
// are accepted; Cr and parentheses make the amount negative. Blank and "-"
// read as zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}

	negative := false
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "cr"):
		negative = true
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(lower, "dr"):
		s = strings.TrimSpace(s[:len(s)-2])
	}
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = !negative
		s = s[1 : len(s)-1]
	}

	s = strings.NewReplacer(",", "", "₹", "", "Rs.", "", "INR", "", " ", "").Replace(s)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s'", raw)
	}
	if negative {
		v = v.Neg()
	}
	return v.Round(2), nil
}
