package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Reconciliation compares a trial balance head against the sub-ledger behind it
type Reconciliation struct {
	TrialBalanceAmount decimal.Decimal
	LedgerTotal        decimal.Decimal
	Variance           decimal.Decimal
	Reconciled         bool
}

// Reconcile computes the variance of the trial balance amount over the ledger total
func Reconcile(trialBalance, ledgerTotal decimal.Decimal) Reconciliation {
	variance := trialBalance.Sub(ledgerTotal)
	return Reconciliation{
		TrialBalanceAmount: trialBalance,
		LedgerTotal:        ledgerTotal,
		Variance:           variance,
		Reconciled:         variance.Abs().LessThan(ReconciliationTolerance),
	}
}

// ClosingUnder sums the current-year closing balance of every line whose
// major head name contains fragment
func ClosingUnder(lines []TrialBalanceLine, fragment string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if strings.Contains(l.MajorHeadName, fragment) {
			total = total.Add(l.ClosingBalanceCY)
		}
	}
	return total
}
