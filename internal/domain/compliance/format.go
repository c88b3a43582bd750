package compliance

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// NoteCheck is the compliance view of a single note
type NoteCheck struct {
	Exists            bool     `json:"exists"`
	Selected          bool     `json:"selected"`
	HasContent        bool     `json:"hasContent"`
	SystemRecommended bool     `json:"systemRecommended"`
	Issues            []string `json:"issues"`
}

// CheckNote reports on one note of s. Policy notes have content when a
// policy under the note exists; the disclosure notes backed by a schedule
// need rows in that schedule.
func CheckNote(s *Snapshot, noteRef string) NoteCheck {
	out := NoteCheck{Issues: []string{}}
	n := s.note(noteRef)
	if n == nil {
		out.Issues = append(out.Issues, "Note "+noteRef+" does not exist")
		return out
	}
	out.Exists = true
	out.Selected = n.FinalSelected
	out.SystemRecommended = n.SystemRecommended
	out.HasContent = true

	switch noteRef {
	case "A.1":
		if s.CommonControl == nil || s.CommonControl.EntityName == "" {
			out.HasContent = false
			out.Issues = append(out.Issues, "Corporate information requires entity details in Common Control")
		}
	case "A.2":
		policies := 0
		for _, p := range s.Policies {
			if strings.HasPrefix(p.NoteRef, "A.2") {
				policies++
			}
		}
		if policies == 0 {
			out.HasContent = false
			out.Issues = append(out.Issues, "No accounting policies defined")
		}
	case "E.3":
		if len(s.RelatedParties) == 0 {
			out.HasContent = false
			if out.Selected {
				out.Issues = append(out.Issues, "Note selected but no related party transactions recorded")
			}
		}
	case "F.8":
		if len(s.Ratios) == 0 {
			out.HasContent = false
			out.Issues = append(out.Issues, "Ratio analysis has not been generated")
		}
	case "F.9":
		if len(s.Receivables) == 0 {
			out.HasContent = false
			out.Issues = append(out.Issues, "No receivables recorded for the aging schedule")
		}
	}

	for _, ref := range mandatoryNotes {
		if ref == noteRef && !out.Selected {
			out.Issues = append(out.Issues, "Mandatory note is not selected")
		}
	}
	return out
}

// Statement kinds accepted by CheckStatementFormat
const (
	StatementBalanceSheet = "balance_sheet"
	StatementProfitLoss   = "profit_loss"
	StatementCashFlow     = "cash_flow"
)

// FormatCheck is the result of a statement format check
type FormatCheck struct {
	StatementType string   `json:"statementType"`
	Compliant     bool     `json:"compliant"`
	TotalChecks   int      `json:"totalChecks"`
	PassedChecks  int      `json:"passedChecks"`
	Issues        []string `json:"issues"`
}

var (
	balanceSheetHeads = []string{
		"Property, Plant and Equipment",
		"Intangible Assets",
		"Trade Receivables",
		"Cash and Cash Equivalents",
		"Equity Share Capital",
		"Trade Payables",
	}
	profitLossHeads = []string{
		"Revenue from Operations",
		"Other Income",
		"Employee Benefits Expense",
		"Finance Costs",
		"Depreciation and Amortization",
	}
)

// CheckStatementFormat verifies that the trial balance carries the line items
// a Schedule III statement of the given kind presents
func CheckStatementFormat(s *Snapshot, statementType string) (FormatCheck, error) {
	out := FormatCheck{StatementType: statementType, Issues: []string{}}
	has := func(head string) bool { return len(s.lines(head)) > 0 }

	switch statementType {
	case StatementBalanceSheet:
		out.TotalChecks = len(balanceSheetHeads) + 1
		for _, h := range balanceSheetHeads {
			if !has(h) {
				out.Issues = append(out.Issues, "Missing required line item: "+h)
			}
		}
		assets, liabilities := balanceSides(s.TrialBalance)
		if diff := assets.Sub(liabilities).Abs(); !diff.LessThan(decimal.NewFromInt(1)) {
			out.Issues = append(out.Issues, "Balance Sheet does not balance. Difference: "+shared.FormatAmount(diff))
		}
	case StatementProfitLoss:
		out.TotalChecks = len(profitLossHeads)
		for _, h := range profitLossHeads {
			if !has(h) {
				out.Issues = append(out.Issues, "Recommended line item missing: "+h)
			}
		}
	case StatementCashFlow:
		out.TotalChecks = 1
		if !has("Depreciation") {
			out.Issues = append(out.Issues, "Depreciation data required for the indirect method")
		}
	default:
		return out, shared.NewDomainError(shared.CodeValidation,
			"Statement type must be one of: balance_sheet, profit_loss, cash_flow")
	}
	out.PassedChecks = out.TotalChecks - len(out.Issues)
	out.Compliant = len(out.Issues) == 0
	return out, nil
}
