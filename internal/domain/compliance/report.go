// Package compliance scores a company's data against the Schedule III
// disclosure requirements. Checks are pure functions over a Snapshot loaded
// by the caller; nothing here touches storage.
package compliance

import (
	"math"
	"strings"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/shopspring/decimal"
)

// Severity of a compliance issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Status of a summary area
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusWarning Status = "warning"
)

// Overall compliance outcome
type Overall string

const (
	OverallCompliant    Overall = "compliant"
	OverallPartial      Overall = "partial"
	OverallNonCompliant Overall = "non-compliant"
)

// Issue is one finding with a suggested fix
type Issue struct {
	Severity       Severity `json:"severity"`
	Category       string   `json:"category"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
	NoteRef        string   `json:"noteRef,omitempty"`
}

// Summary is the per-area status shown on the dashboard
type Summary struct {
	EntityInformation    Status `json:"entityInformation"`
	MandatoryDisclosures Status `json:"mandatoryDisclosures"`
	NoteSelections       Status `json:"noteSelections"`
	FinancialStatements  Status `json:"financialStatements"`
	AgingSchedules       Status `json:"agingSchedules"`
	RatioAnalysis        Status `json:"ratioAnalysis"`
}

// Report is the result of Validate
type Report struct {
	OverallStatus   Overall `json:"overallStatus"`
	ComplianceScore int     `json:"complianceScore"`
	TotalChecks     int     `json:"totalChecks"`
	PassedChecks    int     `json:"passedChecks"`
	Issues          []Issue `json:"issues"`
	Summary         Summary `json:"summary"`
}

// Snapshot is everything the checks read for one company
type Snapshot struct {
	CommonControl    *company.CommonControl
	TrialBalance     []ledger.TrialBalanceLine
	Notes            []note.NoteSelection
	Receivables      []schedule.ReceivableLedgerEntry
	Payables         []schedule.PayableLedgerEntry
	Ratios           []schedule.RatioAnalysis
	RelatedParties   []schedule.RelatedPartyTransaction
	Contingencies    []schedule.ContingentLiability
	Policies         []schedule.AccountingPolicy
	ShareCapital     []schedule.ShareCapitalEntry
	Taxes            []schedule.TaxEntry
	DeferredTaxes    []schedule.DeferredTaxEntry
	CWIP             []schedule.CWIPEntry
	Intangibles      []schedule.IntangibleEntry
	PPE              []schedule.PPEEntry
	Investments      []schedule.InvestmentEntry
	EmployeeBenefits []schedule.EmployeeBenefitEntry
}

func (s *Snapshot) note(ref string) *note.NoteSelection {
	for i := range s.Notes {
		if s.Notes[i].NoteRef == ref {
			return &s.Notes[i]
		}
	}
	return nil
}

func (s *Snapshot) selected(ref string) bool {
	n := s.note(ref)
	return n != nil && n.FinalSelected
}

// lines returns trial balance lines whose major head name contains any fragment
func (s *Snapshot) lines(fragments ...string) []ledger.TrialBalanceLine {
	var out []ledger.TrialBalanceLine
	for _, l := range s.TrialBalance {
		for _, f := range fragments {
			if strings.Contains(l.MajorHeadName, f) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

func sumAbsCY(lines []ledger.TrialBalanceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.ClosingBalanceCY.Abs())
	}
	return total
}

func sumAbsPY(lines []ledger.TrialBalanceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.ClosingBalancePY.Abs())
	}
	return total
}

type tally struct {
	total  int
	passed int
	issues []Issue
}

func (t *tally) pass(n int) { t.passed += n }

func (t *tally) add(sev Severity, category, issue, recommendation, noteRef string) {
	t.issues = append(t.issues, Issue{
		Severity:       sev,
		Category:       category,
		Issue:          issue,
		Recommendation: recommendation,
		NoteRef:        noteRef,
	})
}

// check is one weighted group of checks
type check struct {
	weight int
	run    func(s *Snapshot, t *tally)
}

// Validate runs every check against s and scores the result
func Validate(s *Snapshot) Report {
	t := &tally{issues: []Issue{}}
	for _, c := range checks {
		t.total += c.weight
		c.run(s, t)
	}

	score := 0
	if t.total > 0 {
		score = int(math.Round(float64(t.passed) / float64(t.total) * 100))
	}
	overall := OverallNonCompliant
	switch {
	case score >= 90:
		overall = OverallCompliant
	case score >= 60:
		overall = OverallPartial
	}

	return Report{
		OverallStatus:   overall,
		ComplianceScore: score,
		TotalChecks:     t.total,
		PassedChecks:    t.passed,
		Issues:          t.issues,
		Summary:         summarise(s),
	}
}

func summarise(s *Snapshot) Summary {
	status := func(ok bool, otherwise Status) Status {
		if ok {
			return StatusPass
		}
		return otherwise
	}
	cc := s.CommonControl
	return Summary{
		EntityInformation: status(cc != nil && cc.EntityName != "" && cc.Address != "" &&
			!cc.FinancialYearStart.IsZero() && !cc.FinancialYearEnd.IsZero(), StatusFail),
		MandatoryDisclosures: status(s.selected("A.1") && s.selected("A.2"), StatusFail),
		NoteSelections:       status(len(s.Notes) > 0, StatusFail),
		FinancialStatements:  status(len(s.TrialBalance) > 0, StatusFail),
		AgingSchedules:       status(len(s.Receivables) > 0 || len(s.Payables) > 0, StatusWarning),
		RatioAnalysis:        status(len(s.Ratios) > 0, StatusWarning),
	}
}
