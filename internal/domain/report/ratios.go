package report

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ratio is one computed key ratio
type Ratio struct {
	Name                string          `json:"name"`
	Formula             string          `json:"formula"`
	CurrentYear         decimal.Decimal `json:"currentYear"`
	PreviousYear        decimal.Decimal `json:"previousYear"`
	Variance            decimal.Decimal `json:"variance"` // percent change over |previous|
	Explanation         string          `json:"explanation"`
	RequiresExplanation bool            `json:"requiresExplanation"`
}

// RatioSummary counts the ratios and flags those needing an explanation
type RatioSummary struct {
	TotalRatios                int             `json:"totalRatios"`
	RatiosRequiringExplanation int             `json:"ratiosRequiringExplanation"`
	AverageVariance            decimal.Decimal `json:"averageVariance"` // mean of |variance|
}

// RatioReport is the generated ratio analysis
type RatioReport struct {
	Ratios  []Ratio      `json:"ratios"`
	Summary RatioSummary `json:"summary"`
}

type yearPair struct{ cy, py decimal.Decimal }

// absTotal sums |closing| of the lines whose major head contains any fragment
func absTotal(tb []ledger.TrialBalanceLine, fragments ...string) yearPair {
	var out yearPair
	for _, l := range tb {
		for _, f := range fragments {
			if strings.Contains(l.MajorHeadName, f) {
				out.cy = out.cy.Add(l.ClosingBalanceCY.Abs())
				out.py = out.py.Add(l.ClosingBalancePY.Abs())
				break
			}
		}
	}
	return out
}

// BuildRatioReport computes the five key ratios from tb
func BuildRatioReport(tb []ledger.TrialBalanceLine) RatioReport {
	hundred := decimal.NewFromInt(100)

	totalAssets := absTotal(tb, "Assets", "Receivables", "Cash", "Inventories", "Investments")
	currentAssets := absTotal(tb, "Trade Receivables", "Cash", "Inventories")
	currentLiabilities := absTotal(tb, "Trade Payables", "Current Liabilities")
	equity := absTotal(tb, "Equity", "Share Capital")
	debt := absTotal(tb, "Borrowings", "Loans")
	revenue := absTotal(tb, "Revenue", "Income")
	costs := absTotal(tb, "Expense", "Cost", "Finance Costs")
	profit := yearPair{revenue.cy.Sub(costs.cy), revenue.py.Sub(costs.py)}

	ratio := func(name, formula string, num, den yearPair, scale decimal.Decimal) Ratio {
		return Ratio{
			Name:         name,
			Formula:      formula,
			CurrentYear:  shared.Ratio(num.cy, den.cy).Mul(scale),
			PreviousYear: shared.Ratio(num.py, den.py).Mul(scale),
		}
	}
	one := decimal.NewFromInt(1)
	ratios := []Ratio{
		ratio("Current Ratio", "Current Assets / Current Liabilities", currentAssets, currentLiabilities, one),
		ratio("Debt to Equity Ratio", "Total Debt / Total Equity", debt, equity, one),
		ratio("Return on Assets (%)", "(Net Profit / Total Assets) * 100", profit, totalAssets, hundred),
		ratio("Return on Equity (%)", "(Net Profit / Total Equity) * 100", profit, equity, hundred),
		ratio("Asset Turnover Ratio", "Revenue / Total Assets", revenue, totalAssets, one),
	}

	summary := RatioSummary{TotalRatios: len(ratios), AverageVariance: decimal.Zero}
	varianceSum := decimal.Zero
	for i := range ratios {
		r := &ratios[i]
		r.Variance = shared.VariancePercent(r.CurrentYear, r.PreviousYear)
		r.RequiresExplanation = r.Variance.Abs().GreaterThan(schedule.ExplanationThreshold)
		r.Explanation = explain(r.Variance, r.RequiresExplanation)
		if r.RequiresExplanation {
			summary.RatiosRequiringExplanation++
		}
		varianceSum = varianceSum.Add(r.Variance.Abs())
	}
	summary.AverageVariance = varianceSum.Div(decimal.NewFromInt(int64(len(ratios))))
	return RatioReport{Ratios: ratios, Summary: summary}
}

func explain(variance decimal.Decimal, significant bool) string {
	switch {
	case !significant:
		return "Ratio remains relatively stable compared to previous year."
	case variance.IsPositive():
		return "Improvement of " + variance.Abs().StringFixed(1) + "% due to better operational performance."
	default:
		return "Decline of " + variance.Abs().StringFixed(1) + "% requires management attention."
	}
}

// ToAnalyses converts the report into ratio schedule rows of companyID
func (r RatioReport) ToAnalyses(companyID uuid.UUID) []schedule.RatioAnalysis {
	out := make([]schedule.RatioAnalysis, 0, len(r.Ratios))
	for _, ratio := range r.Ratios {
		out = append(out, schedule.RatioAnalysis{
			CompanyScoped:      shared.NewCompanyScoped(companyID),
			RatioName:          ratio.Name,
			Formula:            ratio.Formula,
			CurrentYear:        ratio.CurrentYear.Round(4),
			PreviousYear:       ratio.PreviousYear.Round(4),
			VariancePercentage: ratio.Variance.Round(2),
			Explanation:        ratio.Explanation,
		})
	}
	return out
}
