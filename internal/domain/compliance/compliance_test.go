package compliance

import (
	"testing"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(head, ledgerName string, typ taxonomy.StatementType, cy, py string) ledger.TrialBalanceLine {
	return ledger.TrialBalanceLine{
		TrialBalanceEntry: ledger.TrialBalanceEntry{
			LedgerName:       ledgerName,
			ClosingBalanceCY: dec(cy),
			ClosingBalancePY: dec(py),
			Type:             typ,
		},
		MajorHeadName: head,
	}
}

func selectedNotes(companyID uuid.UUID, refs ...string) []note.NoteSelection {
	notes := note.DefaultNotes(companyID)
	for i := range notes {
		for _, ref := range refs {
			if notes[i].NoteRef == ref {
				notes[i].Select(true)
			}
		}
	}
	return notes
}

// compliantSnapshot earns every available point
func compliantSnapshot() *Snapshot {
	companyID := uuid.New()
	scoped := shared.NewCompanyScoped(companyID)
	cin := "U12345MH2020PTC123456"
	cc := company.NewCommonControl(companyID)
	cc.EntityName = "Acme Private Limited"
	cc.Address = "1 Marine Drive, Mumbai"
	cc.CINNumber = &cin
	pct := dec("100")

	return &Snapshot{
		CommonControl: cc,
		TrialBalance: []ledger.TrialBalanceLine{
			line("Cash and Cash Equivalents", "Bank", taxonomy.StatementBS, "500", "400"),
			line("Trade Receivables", "Debtors", taxonomy.StatementBS, "300", "200"),
			line("Inventories", "Stock in trade", taxonomy.StatementBS, "200", "100"),
			line("Equity Share Capital", "Share capital", taxonomy.StatementBS, "-600", "-500"),
			line("Trade Payables", "Creditors", taxonomy.StatementBS, "-400", "-200"),
			line("Revenue from Operations", "Sales", taxonomy.StatementPL, "-2000", "-1800"),
			line("Cost of Materials Consumed", "Purchases", taxonomy.StatementPL, "1200", "1000"),
			line("Depreciation and Amortization Expense", "Depreciation", taxonomy.StatementPL, "100", "90"),
		},
		Notes: selectedNotes(companyID, "A.1", "A.2", "F.8", "F.9", "B.1", "C.1"),
		Receivables: []schedule.ReceivableLedgerEntry{
			{CompanyScoped: scoped, CustomerName: "Globex", OutstandingAmount: dec("300"), AgingBucket: schedule.BucketUnder6Months},
		},
		Payables: []schedule.PayableLedgerEntry{
			{CompanyScoped: scoped, VendorName: "Small Works", PayableType: schedule.PayableMSME, OutstandingAmount: dec("100"), AgingBucket: schedule.BucketUnder6Months},
			{CompanyScoped: scoped, VendorName: "Big Supplies", PayableType: schedule.PayableOther, OutstandingAmount: dec("300"), AgingBucket: schedule.BucketUnder6Months},
		},
		Ratios: []schedule.RatioAnalysis{
			{CompanyScoped: scoped, RatioName: "Current Ratio", CurrentYear: dec("1.5"), PreviousYear: dec("1.4"), VariancePercentage: dec("7.14")},
		},
		Policies: schedule.DefaultPolicies(companyID),
		ShareCapital: []schedule.ShareCapitalEntry{
			{CompanyScoped: scoped, ClassOfShare: "Equity Shares", NumberOfShares: 60, FaceValue: dec("10"), AmountCY: dec("600"), HoldingPercentageCY: &pct},
		},
		Taxes: []schedule.TaxEntry{
			{CompanyScoped: scoped, Particulars: "Current Tax", CurrentYear: dec("50"), PreviousYear: dec("40")},
		},
		PPE: []schedule.PPEEntry{
			{CompanyScoped: scoped, AssetClass: "Plant", OpeningGrossBlock: dec("1000"), DepreciationForYear: dec("100")},
		},
	}
}

func hasIssue(r Report, text string) bool {
	for _, i := range r.Issues {
		if i.Issue == text {
			return true
		}
	}
	return false
}

func TestValidate_CompliantSnapshot(t *testing.T) {
	r := Validate(compliantSnapshot())

	assert.Equal(t, 48, r.TotalChecks)
	assert.Equal(t, 48, r.PassedChecks)
	assert.Equal(t, 100, r.ComplianceScore)
	assert.Equal(t, OverallCompliant, r.OverallStatus)
	for _, i := range r.Issues {
		assert.NotEqual(t, SeverityError, i.Severity, i.Issue)
	}
	assert.True(t, hasIssue(r, "MSME payables represent 25.0% of total payables"))
	assert.Equal(t, StatusPass, r.Summary.EntityInformation)
	assert.Equal(t, StatusPass, r.Summary.MandatoryDisclosures)
}

func TestValidate_EmptySnapshot(t *testing.T) {
	r := Validate(&Snapshot{})

	assert.Equal(t, 48, r.TotalChecks)
	assert.Equal(t, OverallNonCompliant, r.OverallStatus)
	assert.True(t, hasIssue(r, "Common control data not configured"))
	assert.True(t, hasIssue(r, "No trial balance data available"))
	assert.True(t, hasIssue(r, "Mandatory note A.1 is not selected"))
	assert.True(t, hasIssue(r, "No cash and bank accounts found"))
	assert.Equal(t, StatusFail, r.Summary.EntityInformation)
	assert.Equal(t, StatusFail, r.Summary.FinancialStatements)
	assert.Equal(t, StatusWarning, r.Summary.AgingSchedules)
}

func TestValidate_Issues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Snapshot)
		issue  string
	}{
		{
			name: "unbalanced balance sheet",
			mutate: func(s *Snapshot) {
				s.TrialBalance = append(s.TrialBalance, line("Other Current Assets", "Deposits", taxonomy.StatementBS, "50", "50"))
			},
			issue: "Balance Sheet does not balance. Assets: 1050, Liabilities+Equity: 1000",
		},
		{
			name: "financial year not twelve months",
			mutate: func(s *Snapshot) {
				s.CommonControl.FinancialYearEnd = s.CommonControl.FinancialYearEnd.AddDate(0, 3, 0)
			},
			issue: "Financial year period is not 12 months",
		},
		{
			name: "ratio variance without explanation",
			mutate: func(s *Snapshot) {
				s.Ratios[0].VariancePercentage = dec("40")
			},
			issue: "1 ratios with >25% variance lack explanations",
		},
		{
			name: "ratio explanation too brief",
			mutate: func(s *Snapshot) {
				s.Ratios[0].VariancePercentage = dec("-40")
				s.Ratios[0].Explanation = "Lower sales"
			},
			issue: "1 ratio explanations are too brief",
		},
		{
			name: "shareholding does not add up",
			mutate: func(s *Snapshot) {
				p := dec("80")
				s.ShareCapital[0].HoldingPercentageCY = &p
			},
			issue: "Shareholding percentages total 80%, not 100%",
		},
		{
			name: "related party note missing",
			mutate: func(s *Snapshot) {
				s.RelatedParties = []schedule.RelatedPartyTransaction{
					{RelatedPartyName: "R Kumar", Relationship: "Director", TransactionType: "Remuneration", AmountCY: dec("120000")},
				}
			},
			issue: "Related party transactions exist but note E.3 is not selected",
		},
		{
			name: "invalid receivable bucket",
			mutate: func(s *Snapshot) {
				s.Receivables[0].AgingBucket = ""
			},
			issue: "1 receivable entries have invalid aging buckets",
		},
		{
			name: "missing policy areas",
			mutate: func(s *Snapshot) {
				s.Policies = s.Policies[:1]
			},
			issue: "Missing policies for: Property, Plant and Equipment, Depreciation, Inventories, Employee Benefits, Income Taxes",
		},
		{
			name: "depreciation mismatch",
			mutate: func(s *Snapshot) {
				s.PPE[0].DepreciationForYear = dec("60")
			},
			issue: "Depreciation expense (₹100) doesn't match PPE schedule (₹60)",
		},
		{
			name: "revenue swing",
			mutate: func(s *Snapshot) {
				s.TrialBalance[5].ClosingBalanceCY = dec("-3000")
			},
			issue: "Revenue growth/decline of 66.7% requires explanation",
		},
		{
			name: "old cwip",
			mutate: func(s *Snapshot) {
				s.CWIP = []schedule.CWIPEntry{{Particulars: "Plant expansion", AmountCY: dec("500"), AgingBucket: schedule.BucketOver3Years}}
			},
			issue: "CWIP of ₹500 is >2 years old",
		},
		{
			name: "forex without policy",
			mutate: func(s *Snapshot) {
				s.TrialBalance = append(s.TrialBalance, line("Other Expenses", "Foreign exchange loss", taxonomy.StatementPL, "5", "0"))
			},
			issue: "Foreign currency transactions detected but AS 11 policy not selected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := compliantSnapshot()
			tt.mutate(s)
			r := Validate(s)
			assert.True(t, hasIssue(r, tt.issue), "issues: %+v", r.Issues)
		})
	}
}

func TestValidate_ScoreThresholds(t *testing.T) {
	s := compliantSnapshot()
	s.CommonControl = nil
	r := Validate(s)
	// five entity points lost
	assert.Equal(t, 43, r.PassedChecks)
	assert.Equal(t, 90, r.ComplianceScore)
	assert.Equal(t, OverallCompliant, r.OverallStatus)

	s.Notes = nil
	r = Validate(s)
	assert.Equal(t, OverallPartial, r.OverallStatus)
}

func TestBasicChecks(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		checks := BasicChecks(ReadinessCounts{MajorHeads: 34, NoteSelections: 61, CommonControls: 1, TrialBalance: 8, EntityName: "Acme"})
		assert.Equal(t, StatusPass, checks["majorHeadsSeeded"].Status)
		assert.Equal(t, "34 major heads found (expected >20 for proper seeding)", checks["majorHeadsSeeded"].Message)
		assert.Equal(t, "Common control query successful for company. Entity: Acme", checks["complianceQueryTest"].Message)
		assert.Equal(t, StatusPass, checks["systemReadiness"].Status)
	})

	t.Run("not ready", func(t *testing.T) {
		checks := BasicChecks(ReadinessCounts{MajorHeads: 34})
		assert.Equal(t, StatusFail, checks["noteSelectionsSeeded"].Status)
		assert.Equal(t, StatusFail, checks["trialBalanceData"].Status)
		assert.Equal(t, "Common control query successful for company. Entity: Not configured", checks["complianceQueryTest"].Message)
		assert.Equal(t, StatusFail, checks["systemReadiness"].Status)
		assert.Equal(t,
			"System not ready for this company: No common control data configured for this company, "+
				"No trial balance data available for this company, No note selections configured for this company",
			checks["systemReadiness"].Message)
	})
}

func TestCheckNote(t *testing.T) {
	s := compliantSnapshot()

	got := CheckNote(s, "A.2")
	assert.True(t, got.Exists)
	assert.True(t, got.Selected)
	assert.True(t, got.HasContent)
	assert.Empty(t, got.Issues)

	got = CheckNote(s, "E.3")
	assert.False(t, got.Selected)
	assert.False(t, got.HasContent)
	assert.Empty(t, got.Issues)

	got = CheckNote(s, "Z.9")
	assert.False(t, got.Exists)
	assert.Len(t, got.Issues, 1)

	s.Notes = selectedNotes(uuid.New(), "A.2")
	got = CheckNote(s, "F.9")
	assert.Contains(t, got.Issues, "Mandatory note is not selected")
}

func TestCheckStatementFormat(t *testing.T) {
	s := compliantSnapshot()

	bs, err := CheckStatementFormat(s, StatementBalanceSheet)
	require.NoError(t, err)
	assert.Equal(t, 7, bs.TotalChecks)
	assert.Contains(t, bs.Issues, "Missing required line item: Property, Plant and Equipment")
	assert.Contains(t, bs.Issues, "Missing required line item: Intangible Assets")
	assert.Equal(t, bs.TotalChecks-len(bs.Issues), bs.PassedChecks)
	assert.False(t, bs.Compliant)

	cf, err := CheckStatementFormat(s, StatementCashFlow)
	require.NoError(t, err)
	assert.True(t, cf.Compliant)
	assert.Equal(t, 1, cf.PassedChecks)

	_, err = CheckStatementFormat(s, "equity")
	assert.Equal(t, shared.CodeValidation, shared.CodeOf(err))
}
