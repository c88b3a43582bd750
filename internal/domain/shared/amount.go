package shared

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SumBy adds up f over items
func SumBy[T any](items []T, f func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(f(item))
	}
	return total
}

// VariancePercent is the change from previous to current as a percentage of
// |previous|. It is zero when previous is zero.
func VariancePercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred)
}

// Ratio divides a by b, returning zero for a zero denominator
func Ratio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// NonNegative rejects negative amounts with a validation error naming field
func NonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return NewDomainError(CodeValidation, field+" cannot be negative")
	}
	return nil
}
