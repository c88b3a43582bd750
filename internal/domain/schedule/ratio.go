package schedule

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExplanationThreshold is the absolute year-on-year variance, in percent,
// above which a ratio must be explained
var ExplanationThreshold = decimal.NewFromInt(25)

// MinExplanationLength is the shortest explanation considered adequate
const MinExplanationLength = 50

// RatioAnalysis is a key financial ratio with its year-on-year variance
type RatioAnalysis struct {
	shared.CompanyScoped
	RatioName          string          `gorm:"type:varchar(200);not null" json:"ratioName"`
	Formula            string          `gorm:"type:varchar(300)" json:"formula"`
	CurrentYear        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"currentYear"`
	PreviousYear       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"previousYear"`
	VariancePercentage decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"variancePercentage"`
	Explanation        string          `gorm:"type:text" json:"explanation"`
}

func (RatioAnalysis) TableName() string  { return "ratio_analyses" }
func (RatioAnalysis) SortColumn() string { return "ratio_name" }

// Derive computes the variance from the two years when it was not given
func (e *RatioAnalysis) Derive() {
	if e.VariancePercentage.IsZero() {
		e.VariancePercentage = shared.VariancePercent(e.CurrentYear, e.PreviousYear).Round(2)
	}
}

func (e *RatioAnalysis) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	return required("Ratio name", e.RatioName)
}

// RequiresExplanation reports whether the variance exceeds ExplanationThreshold
func (e *RatioAnalysis) RequiresExplanation() bool {
	return e.VariancePercentage.Abs().GreaterThan(ExplanationThreshold)
}

// HasAdequateExplanation reports whether the explanation is long enough to be meaningful
func (e *RatioAnalysis) HasAdequateExplanation() bool {
	return len(strings.TrimSpace(e.Explanation)) >= MinExplanationLength
}
