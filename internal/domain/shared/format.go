package shared

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatAmount renders d with Indian digit grouping (12,34,567.89)
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return indianPrinter.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(2)))
}

// FormatRupees prefixes FormatAmount with the rupee sign
func FormatRupees(d decimal.Decimal) string {
	return "₹" + FormatAmount(d)
}
