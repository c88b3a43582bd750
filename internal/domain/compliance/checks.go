package compliance

import (
	"fmt"
	"strings"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// SegmentRevenueThreshold is the revenue above which segment reporting is expected
	SegmentRevenueThreshold = decimal.NewFromInt(50_000_000)

	mandatoryNotes = []string{"A.1", "A.2", "F.8", "F.9"}

	keyPolicyAreas = []string{
		"Revenue Recognition",
		"Property, Plant and Equipment",
		"Depreciation",
		"Inventories",
		"Employee Benefits",
		"Income Taxes",
	}
)

var checks = []check{
	{5, checkEntityInformation},
	{3, checkTrialBalance},
	{2, checkNoteSelections},
	{4, checkAgingSchedules},
	{3, checkRatioAnalysis},
	{2, checkRelatedParties},
	{2, checkContingencies},
	{3, checkAccountingPolicies},
	{2, checkShareCapital},
	{2, checkTax},
	{3, checkDevelopmentAging},
	{2, checkRevenue},
	{2, checkBorrowings},
	{2, checkInventory},
	{2, checkDepreciation},
	{3, checkCashFlow},
	{1, checkSegmentReporting},
	{2, checkProvisions},
	{1, checkForeignCurrency},
	{2, checkEarningsPerShare},
}

func pct(d decimal.Decimal) string {
	return d.StringFixed(1)
}

func checkEntityInformation(s *Snapshot, t *tally) {
	const cat = "Entity Information"
	cc := s.CommonControl
	if cc == nil {
		t.add(SeverityError, cat, "Common control data not configured",
			"Configure entity details in Common Control settings", "")
		return
	}
	if cc.EntityName != "" {
		t.pass(1)
	} else {
		t.add(SeverityError, cat, "Entity name is missing", "Provide entity name in Common Control settings", "")
	}
	if cc.Address != "" {
		t.pass(1)
	} else {
		t.add(SeverityError, cat, "Entity address is missing", "Provide complete address in Common Control settings", "")
	}
	if cc.CINNumber != nil && *cc.CINNumber != "" {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, "CIN number is missing", "Provide Corporate Identification Number for compliance", "")
	}
	if !cc.FinancialYearStart.IsZero() && !cc.FinancialYearEnd.IsZero() {
		t.pass(1)
		// a twelve-month year ends the day before the same date a year later
		if !cc.FinancialYearStart.AddDate(1, 0, -1).Equal(cc.FinancialYearEnd) {
			t.add(SeverityWarning, cat, "Financial year period is not 12 months",
				"Ensure financial year is exactly 12 months for Schedule III compliance", "")
		}
	} else {
		t.add(SeverityError, cat, "Financial year dates are missing", "Set financial year start and end dates", "")
	}
	if cc.Currency != "" && cc.Units != "" {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, "Currency or reporting units not specified",
			"Specify currency and reporting units (Lakhs/Crores/Millions)", "")
	}
}

func checkTrialBalance(s *Snapshot, t *tally) {
	const cat = "Financial Statements"
	if len(s.TrialBalance) == 0 {
		t.add(SeverityError, cat, "No trial balance data available",
			"Upload trial balance data to generate financial statements", "")
		return
	}
	t.pass(1)

	assets, liabilities := balanceSides(s.TrialBalance)
	if assets.Sub(liabilities).Abs().LessThan(decimal.NewFromInt(1)) {
		t.pass(1)
	} else {
		t.add(SeverityError, cat,
			fmt.Sprintf("Balance Sheet does not balance. Assets: %s, Liabilities+Equity: %s", assets, liabilities),
			"Ensure Assets = Liabilities + Equity in trial balance data", "")
	}

	hasPY := false
	for _, l := range s.TrialBalance {
		if !l.ClosingBalancePY.IsZero() {
			hasPY = true
			break
		}
	}
	if hasPY {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, "No previous year data found in trial balance",
			"Provide previous year figures for comparative analysis", "")
	}
}

func checkNoteSelections(s *Snapshot, t *tally) {
	allSelected := true
	for _, ref := range mandatoryNotes {
		if !s.selected(ref) {
			t.add(SeverityError, "Mandatory Disclosures",
				fmt.Sprintf("Mandatory note %s is not selected", ref),
				fmt.Sprintf("Select note %s in Notes Selection", ref), ref)
			allSelected = false
		}
	}
	if allSelected {
		t.pass(1)
	}

	recommended := []struct {
		ref     string
		hasData bool
	}{
		{"B.1", len(s.ShareCapital) > 0},
		{"C.1", len(s.PPE) > 0},
		{"C.4", len(s.Investments) > 0},
		{"D.4", len(s.EmployeeBenefits) > 0},
		{"E.3", len(s.RelatedParties) > 0},
		{"E.5", len(s.Contingencies) > 0},
	}
	withData := 0
	for _, r := range recommended {
		if !r.hasData {
			continue
		}
		withData++
		if !s.selected(r.ref) {
			t.add(SeverityWarning, "Note Selection",
				fmt.Sprintf("Note %s should be selected as relevant data exists", r.ref),
				fmt.Sprintf("Consider selecting note %s based on available data", r.ref), r.ref)
		}
	}
	if withData > 0 {
		t.pass(1)
	}
}

func checkAgingSchedules(s *Snapshot, t *tally) {
	const cat = "Aging Schedules"
	if len(s.Receivables) > 0 {
		t.pass(1)

		invalid := 0
		disputed, total := decimal.Zero, decimal.Zero
		for _, r := range s.Receivables {
			if !schedule.IsTradeBucket(r.AgingBucket) {
				invalid++
			}
			if r.Disputed {
				disputed = disputed.Add(r.OutstandingAmount)
			}
			total = total.Add(r.OutstandingAmount)
		}
		if invalid == 0 {
			t.pass(1)
		} else {
			t.add(SeverityError, cat,
				fmt.Sprintf("%d receivable entries have invalid aging buckets", invalid),
				"Ensure all receivables are classified into proper Schedule III aging buckets", "F.9")
		}
		if !disputed.IsZero() && !total.IsZero() {
			share := disputed.Div(total).Mul(hundred)
			if share.GreaterThan(decimal.NewFromInt(5)) {
				t.add(SeverityInfo, cat, fmt.Sprintf("%s%% of receivables are disputed", pct(share)),
					"Consider additional disclosure for significant disputed receivables", "F.9")
			}
		}
	} else {
		t.add(SeverityWarning, cat, "No receivables data available for aging analysis",
			"Upload receivables data for Schedule III aging disclosure", "")
	}

	if len(s.Payables) == 0 {
		return
	}
	t.pass(1)
	msme, total := decimal.Zero, decimal.Zero
	msmeCount := 0
	for _, p := range s.Payables {
		if p.IsMSME() {
			msmeCount++
			msme = msme.Add(p.OutstandingAmount)
		}
		total = total.Add(p.OutstandingAmount)
	}
	if msmeCount == 0 {
		t.add(SeverityInfo, "MSME Compliance", "No MSME payables identified",
			"Review payables for MSME classification as required by Schedule III", "G.2")
		return
	}
	t.pass(1)
	if !total.IsZero() {
		share := msme.Div(total).Mul(hundred)
		if share.GreaterThan(decimal.NewFromInt(10)) {
			t.add(SeverityInfo, "MSME Compliance",
				fmt.Sprintf("MSME payables represent %s%% of total payables", pct(share)),
				"Ensure proper MSME disclosures are made as per Schedule III requirements", "G.2")
		}
	}
}

func checkRatioAnalysis(s *Snapshot, t *tally) {
	const cat = "Ratio Analysis"
	if len(s.Ratios) == 0 {
		t.add(SeverityWarning, cat, "No ratio analysis data available",
			"Generate ratio analysis to check for variances >25% requiring explanation", "")
		return
	}
	t.pass(1)

	missing, brief, requiring := 0, 0, 0
	for i := range s.Ratios {
		r := &s.Ratios[i]
		if !r.RequiresExplanation() {
			continue
		}
		requiring++
		explanation := strings.TrimSpace(r.Explanation)
		switch {
		case explanation == "":
			missing++
		case !r.HasAdequateExplanation():
			brief++
		}
	}
	if requiring == 0 {
		t.pass(2)
		return
	}
	if missing == 0 {
		t.pass(1)
	} else {
		t.add(SeverityError, cat, fmt.Sprintf("%d ratios with >25%% variance lack explanations", missing),
			"Provide explanations for all ratios with variance >25% as per Schedule III requirement", "F.8")
	}
	if brief == 0 {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, fmt.Sprintf("%d ratio explanations are too brief", brief),
			"Provide detailed explanations for ratio variances (minimum 50 characters)", "F.8")
	}
}

func checkRelatedParties(s *Snapshot, t *tally) {
	const cat = "Related Party Disclosures"
	if len(s.RelatedParties) == 0 {
		t.pass(2)
		return
	}
	if s.selected("E.3") {
		t.pass(1)
	} else {
		t.add(SeverityError, cat, "Related party transactions exist but note E.3 is not selected",
			"Select note E.3 (AS 18 Related party disclosures) when related party transactions exist", "E.3")
	}

	kmp, kmpTotal := 0, decimal.Zero
	for i := range s.RelatedParties {
		if s.RelatedParties[i].IsKMP() {
			kmp++
			kmpTotal = kmpTotal.Add(s.RelatedParties[i].AmountCY)
		}
	}
	switch {
	case kmp == 0:
		t.add(SeverityWarning, cat, "No Key Management Personnel transactions identified",
			"Review if KMP transactions need to be disclosed", "")
	case kmpTotal.IsPositive():
		t.pass(1)
		t.add(SeverityInfo, cat, "Key Management Personnel transactions: "+shared.FormatRupees(kmpTotal),
			"Ensure adequate disclosure of KMP remuneration and transactions", "E.3")
	}
}

func checkContingencies(s *Snapshot, t *tally) {
	const cat = "Contingent Liabilities"
	if len(s.Contingencies) == 0 {
		t.pass(2)
		return
	}
	if s.selected("E.5") {
		t.pass(1)
	} else {
		t.add(SeverityError, cat, "Contingent liabilities exist but note E.5 is not selected",
			"Select note E.5 (Contingent Liabilities and Commitments) when contingent liabilities exist", "E.5")
	}

	contingent, commitments := decimal.Zero, decimal.Zero
	for _, c := range s.Contingencies {
		switch c.Type {
		case schedule.ContingentLiabilityType:
			contingent = contingent.Add(c.AmountCY)
		case schedule.CommitmentType:
			commitments = commitments.Add(c.AmountCY)
		}
	}
	if contingent.IsPositive() || commitments.IsPositive() {
		t.pass(1)
		t.add(SeverityInfo, cat,
			fmt.Sprintf("Contingent Liabilities: %s, Commitments: %s", shared.FormatRupees(contingent), shared.FormatRupees(commitments)),
			"Ensure proper classification and disclosure of contingent liabilities vs commitments", "E.5")
	}
}

func checkAccountingPolicies(s *Snapshot, t *tally) {
	const cat = "Accounting Policies"
	if !s.selected("A.2") {
		t.add(SeverityError, cat, "Significant accounting policies note (A.2) is not selected",
			"Select and populate note A.2 (Significant accounting policies)", "A.2")
		return
	}
	t.pass(1)
	if len(s.Policies) == 0 {
		t.add(SeverityError, cat, "Accounting policies note is selected but has no content",
			"Add content to accounting policies or initialize default policies", "A.2")
		return
	}
	t.pass(1)

	var missing []string
	for _, area := range keyPolicyAreas {
		needle := strings.ToLower(area)
		found := false
		for _, p := range s.Policies {
			if strings.Contains(strings.ToLower(p.Title), needle) || strings.Contains(strings.ToLower(p.Content), needle) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, area)
		}
	}
	if len(missing) == 0 {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, "Missing policies for: "+strings.Join(missing, ", "),
			"Consider adding policies for all significant accounting areas", "A.2")
	}
}

func checkShareCapital(s *Snapshot, t *tally) {
	const cat = "Share Capital"
	if len(s.ShareCapital) == 0 {
		t.pass(2)
		return
	}
	if s.selected("B.1") {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, "Share capital data exists but note B.1 is not selected",
			"Select note B.1 for share capital disclosure", "B.1")
	}

	withPct, total := 0, decimal.Zero
	for _, e := range s.ShareCapital {
		if e.HoldingPercentageCY != nil && !e.HoldingPercentageCY.IsZero() {
			withPct++
			total = total.Add(*e.HoldingPercentageCY)
		}
	}
	switch {
	case withPct == 0:
		t.add(SeverityInfo, cat, "No shareholding percentage information provided",
			"Consider providing shareholding pattern for better disclosure", "")
	case total.Sub(hundred).Abs().LessThan(decimal.NewFromInt(1)):
		t.pass(1)
	default:
		t.add(SeverityWarning, cat, fmt.Sprintf("Shareholding percentages total %s%%, not 100%%", total),
			"Ensure shareholding percentages add up to 100%", "B.1")
	}
}

func checkTax(s *Snapshot, t *tally) {
	const cat = "Tax Compliance"
	if len(s.Taxes) == 0 {
		t.add(SeverityWarning, cat, "No tax entries found", "Add tax expense details for proper disclosure", "")
		return
	}
	t.pass(1)

	breakdown := len(s.DeferredTaxes) > 0
	for i := range s.Taxes {
		if s.Taxes[i].IsCurrentTax() || s.Taxes[i].IsDeferredTax() {
			breakdown = true
			break
		}
	}
	if !breakdown {
		t.add(SeverityWarning, cat, "No current or deferred tax breakdown provided",
			"Provide breakdown of current tax and deferred tax components", "")
		return
	}
	t.pass(1)

	dta, dtl := decimal.Zero, decimal.Zero
	for _, d := range s.DeferredTaxes {
		dta = dta.Add(d.DeferredTaxAsset)
		dtl = dtl.Add(d.DeferredTaxLiability)
	}
	if dta.IsPositive() || dtl.IsPositive() {
		t.add(SeverityInfo, cat,
			fmt.Sprintf("Deferred Tax Asset: %s, Liability: %s", shared.FormatRupees(dta), shared.FormatRupees(dtl)),
			"Ensure proper disclosure of deferred tax assets and liabilities", "D.11")
	}
}

func checkDevelopmentAging(s *Snapshot, t *tally) {
	if len(s.CWIP) == 0 {
		t.pass(2)
	} else {
		t.pass(1)
		unbucketed, old := 0, decimal.Zero
		oldCount := 0
		for _, c := range s.CWIP {
			if c.AgingBucket == "" {
				unbucketed++
			}
			if schedule.IsOldDevelopmentBucket(c.AgingBucket) {
				oldCount++
				old = old.Add(c.AmountCY)
			}
		}
		if unbucketed == 0 {
			t.pass(1)
		} else {
			t.add(SeverityError, "CWIP Aging", fmt.Sprintf("%d CWIP entries lack aging bucket classification", unbucketed),
				"Classify all CWIP into aging buckets: <1 Year, 1-2 Years, 2-3 Years, >3 Years", "C.2")
		}
		if oldCount > 0 {
			t.add(SeverityWarning, "CWIP Aging", fmt.Sprintf("CWIP of %s is >2 years old", shared.FormatRupees(old)),
				"Consider additional disclosure for projects delayed beyond expected completion", "C.2")
		}
	}

	underDevelopment := 0
	for i := range s.Intangibles {
		if s.Intangibles[i].UnderDevelopment() {
			underDevelopment++
		}
	}
	t.pass(1)
	if underDevelopment > 0 {
		t.add(SeverityInfo, "Intangible Assets", fmt.Sprintf("%d intangible assets under development found", underDevelopment),
			"Ensure proper aging disclosure for intangible assets under development", "C.3")
	}
}

func checkRevenue(s *Snapshot, t *tally) {
	const cat = "Revenue Recognition"
	revenue := s.lines("Revenue", "Sales")
	if len(revenue) == 0 {
		t.add(SeverityError, cat, "No revenue entries found in trial balance",
			"Ensure revenue accounts are properly classified in trial balance", "")
		return
	}
	t.pass(1)

	cy, py := sumAbsCY(revenue), sumAbsPY(revenue)
	if py.IsZero() {
		t.pass(1)
		return
	}
	growth := shared.VariancePercent(cy, py)
	if growth.Abs().GreaterThan(decimal.NewFromInt(50)) {
		t.add(SeverityWarning, cat, fmt.Sprintf("Revenue growth/decline of %s%% requires explanation", pct(growth)),
			"Provide detailed explanation for significant revenue changes", "D.1")
		return
	}
	t.pass(1)
}

func checkBorrowings(s *Snapshot, t *tally) {
	borrowings := s.lines("Borrowings", "Loans")
	if len(borrowings) == 0 {
		t.pass(2)
		return
	}
	t.pass(1)
	principal := sumAbsCY(borrowings)
	interest := sumAbsCY(s.lines("Finance Costs", "Interest"))
	if principal.IsPositive() && interest.IsZero() {
		t.add(SeverityWarning, "Borrowings",
			fmt.Sprintf("Borrowings of %s but no interest expense recorded", shared.FormatRupees(principal)),
			"Verify if interest expense should be recorded or if borrowings are interest-free", "B.3")
		return
	}
	t.pass(1)
}

func checkInventory(s *Snapshot, t *tally) {
	inventory := s.lines("Inventories", "Stock")
	if len(inventory) == 0 {
		t.pass(2)
		return
	}
	t.pass(1)
	stock := sumAbsCY(inventory)
	cogs := sumAbsCY(s.lines("Cost of Goods Sold", "Cost of Materials"))
	if stock.IsPositive() && cogs.IsZero() {
		t.add(SeverityWarning, "Inventory",
			fmt.Sprintf("Inventory of %s but no cost of goods sold", shared.FormatRupees(stock)),
			"Verify inventory movement and cost allocation", "C.5")
		return
	}
	t.pass(1)
}

func checkDepreciation(s *Snapshot, t *tally) {
	depreciation := s.lines("Depreciation", "Amortization")
	if len(depreciation) == 0 || len(s.PPE) == 0 {
		t.pass(2)
		return
	}
	t.pass(1)
	expense := sumAbsCY(depreciation)
	fromSchedule := shared.SumBy(s.PPE, func(e schedule.PPEEntry) decimal.Decimal { return e.DepreciationForYear })
	tolerance := expense.Mul(decimal.RequireFromString("0.05"))
	if expense.Sub(fromSchedule).Abs().LessThan(tolerance) {
		t.pass(1)
		return
	}
	t.add(SeverityError, "Depreciation",
		fmt.Sprintf("Depreciation expense (%s) doesn't match PPE schedule (%s)", shared.FormatRupees(expense), shared.FormatRupees(fromSchedule)),
		"Reconcile depreciation expense with PPE schedule calculations", "C.1")
}

func checkCashFlow(s *Snapshot, t *tally) {
	const cat = "Cash Flow"
	cash := s.lines("Cash", "Bank")
	if len(cash) == 0 {
		t.add(SeverityError, cat, "No cash and bank accounts found", "Add cash and bank balances to trial balance", "")
		return
	}
	t.pass(1)

	openingCash := decimal.Zero
	for _, l := range cash {
		openingCash = openingCash.Add(l.ClosingBalancePY)
	}
	if openingCash.IsZero() {
		t.add(SeverityWarning, cat, "No previous year cash balance for cash flow statement preparation",
			"Provide opening cash balance for cash flow statement", "")
		return
	}
	t.pass(1)

	operating := false
	for _, l := range s.TrialBalance {
		if l.Type == taxonomy.StatementPL {
			operating = true
			break
		}
	}
	investing := len(s.lines("Depreciation", "Amortization")) > 0 || len(s.PPE) > 0
	financing := len(s.lines("Borrowings", "Loans")) > 0 || len(s.ShareCapital) > 0

	var missing []string
	if !operating {
		missing = append(missing, "operating activities")
	}
	if !investing {
		missing = append(missing, "investing activities")
	}
	if !financing {
		missing = append(missing, "financing activities")
	}
	if len(missing) == 0 {
		t.pass(1)
		return
	}
	t.add(SeverityWarning, cat, "Insufficient data for cash flow statement: missing "+strings.Join(missing, ", "),
		"Ensure all cash flow categories have supporting data", "E.1")
}

func checkSegmentReporting(s *Snapshot, t *tally) {
	const cat = "Segment Reporting"
	if !s.selected("A.2.15") {
		t.pass(1)
		return
	}
	if sumAbsCY(s.lines("Revenue", "Sales")).GreaterThan(SegmentRevenueThreshold) {
		t.pass(1)
		t.add(SeverityInfo, cat, "Segment reporting may be applicable based on revenue size",
			"Ensure proper segment disclosures if required by AS 17", "A.2.15")
		return
	}
	t.add(SeverityInfo, cat, "Segment reporting selected but revenue may not justify requirement",
		"Review if segment reporting is actually required", "")
}

func checkProvisions(s *Snapshot, t *tally) {
	provisionLines := s.lines("Provisions")
	if len(provisionLines) == 0 && len(s.Contingencies) == 0 {
		t.pass(2)
		return
	}
	t.pass(1)
	provisions := sumAbsCY(provisionLines)
	contingent := shared.SumBy(s.Contingencies, func(c schedule.ContingentLiability) decimal.Decimal { return c.AmountCY })
	if provisions.IsPositive() && contingent.IsPositive() &&
		contingent.Div(provisions).GreaterThan(decimal.NewFromInt(5)) {
		t.add(SeverityWarning, "Provisions",
			fmt.Sprintf("Contingent liabilities (%s) are significantly higher than provisions (%s)",
				shared.FormatRupees(contingent), shared.FormatRupees(provisions)),
			"Review if some contingent liabilities should be recognized as provisions", "E.5")
		return
	}
	t.pass(1)
}

func checkForeignCurrency(s *Snapshot, t *tally) {
	forex := false
	for _, l := range s.TrialBalance {
		if containsAny(strings.ToLower(l.LedgerName), "forex", "foreign", "exchange") {
			forex = true
			break
		}
	}
	if !forex || s.selected("A.2.7") {
		t.pass(1)
		return
	}
	t.add(SeverityWarning, "Foreign Currency", "Foreign currency transactions detected but AS 11 policy not selected",
		"Select note A.2.7 for foreign currency policy if applicable", "A.2.7")
}

func checkEarningsPerShare(s *Snapshot, t *tally) {
	const cat = "Earnings Per Share"
	profit := false
	for _, l := range s.TrialBalance {
		if strings.Contains(l.MajorHeadName, "Profit") || strings.Contains(strings.ToLower(l.LedgerName), "profit") {
			profit = true
			break
		}
	}
	if len(s.ShareCapital) == 0 || !profit {
		t.pass(2)
		return
	}
	if s.selected("D.10") {
		t.pass(1)
	} else {
		t.add(SeverityWarning, cat, "EPS calculation may be required but note D.10 not selected",
			"Consider selecting note D.10 for EPS disclosure as per AS 20", "D.10")
	}
	var shares int64
	for _, e := range s.ShareCapital {
		shares += e.NumberOfShares
	}
	if shares > 0 {
		t.pass(1)
		return
	}
	t.add(SeverityError, cat, "Cannot calculate EPS: number of shares not specified in share capital",
		"Provide number of shares in share capital schedule for EPS calculation", "")
}

// balanceSides splits balance sheet lines into the asset side (signed) and
// the liabilities plus equity side (absolute)
func balanceSides(lines []ledger.TrialBalanceLine) (assets, liabilities decimal.Decimal) {
	for _, l := range lines {
		if l.Type != taxonomy.StatementBS {
			continue
		}
		switch {
		case containsAny(l.MajorHeadName, "Assets", "Receivables", "Cash", "Inventories"):
			assets = assets.Add(l.ClosingBalanceCY)
		case containsAny(l.MajorHeadName, "Liabilities", "Payables", "Equity", "Share Capital"):
			liabilities = liabilities.Add(l.ClosingBalanceCY.Abs())
		}
	}
	return assets, liabilities
}

func containsAny(s string, fragments ...string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
