package report

import (
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	domain "github.com/finstatements/backend/internal/domain/report"
	"github.com/finstatements/backend/internal/infrastructure/printing"
	"github.com/shopspring/decimal"
)

// newDocument applies the company's presentation settings
func newDocument(title string, cc *company.CommonControl, now time.Time) *printing.Document {
	end := cc.FinancialYearEnd
	return &printing.Document{
		Title:              title,
		EntityName:         cc.EntityName,
		PeriodCY:           "As at " + end.Format("02 Jan 2006"),
		PeriodPY:           "As at " + end.AddDate(-1, 0, 0).Format("02 Jan 2006"),
		Units:              cc.Units,
		ZeroAsDash:         cc.ZeroDisplayMode == "Dash",
		NegativeInBrackets: cc.NegativeColor == "Brackets",
		GeneratedAt:        now,
	}
}

func sectionRows(heading string, s domain.Section, totalLabel string) []printing.Row {
	rows := []printing.Row{{Label: heading, Heading: true}}
	for _, item := range s.Items {
		rows = append(rows, printing.Row{
			Label:  item.Head,
			Note:   item.NoteNumber,
			Indent: 1,
			CY:     item.CurrentYear,
			PY:     item.PreviousYear,
		})
	}
	return append(rows, printing.Row{Label: totalLabel, Total: true, CY: s.TotalCY, PY: s.TotalPY})
}

func balanceSheetDocument(bs domain.BalanceSheet, cc *company.CommonControl, now time.Time) *printing.Document {
	doc := newDocument("Balance Sheet", cc, now)
	doc.Rows = append(doc.Rows, sectionRows("Equity", bs.Equity, "Total Equity")...)
	doc.Rows = append(doc.Rows, sectionRows("Liabilities", bs.Liabilities, "Total Liabilities")...)
	doc.Rows = append(doc.Rows, printing.Row{
		Label: "Total Equity and Liabilities", Total: true,
		CY: bs.TotalEquityAndLiabilitiesCY, PY: bs.TotalEquityAndLiabilitiesPY,
	})
	doc.Rows = append(doc.Rows, sectionRows("Assets", bs.Assets, "Total Assets")...)
	return doc
}

func profitAndLossDocument(pl domain.ProfitAndLoss, cc *company.CommonControl, now time.Time) *printing.Document {
	doc := newDocument("Statement of Profit and Loss", cc, now)
	doc.PeriodCY = "Year ended " + cc.FinancialYearEnd.Format("02 Jan 2006")
	doc.PeriodPY = "Year ended " + cc.FinancialYearEnd.AddDate(-1, 0, 0).Format("02 Jan 2006")
	doc.Rows = append(doc.Rows, sectionRows("Income", pl.Revenue, "Total Income")...)
	doc.Rows = append(doc.Rows, sectionRows("Expenses", pl.Expenses, "Total Expenses")...)
	doc.Rows = append(doc.Rows,
		printing.Row{Label: "Profit before tax", Total: true, CY: pl.ProfitBeforeTaxCY, PY: pl.ProfitBeforeTaxPY},
		printing.Row{Label: "Tax expense", Indent: 1, CY: pl.TaxExpenseCY, PY: pl.TaxExpensePY},
		printing.Row{Label: "Profit for the year", Total: true, CY: pl.ProfitAfterTaxCY, PY: pl.ProfitAfterTaxPY},
	)
	return doc
}

func movementRow(label string, m domain.Movement) printing.Row {
	return printing.Row{Label: label, Indent: 1, CY: m.Current, PY: m.Previous}
}

func cashFlowDocument(cf domain.CashFlow, cc *company.CommonControl, now time.Time) *printing.Document {
	doc := newDocument("Cash Flow Statement", cc, now)
	doc.PeriodCY = "Year ended " + cc.FinancialYearEnd.Format("02 Jan 2006")
	doc.PeriodPY = "Year ended " + cc.FinancialYearEnd.AddDate(-1, 0, 0).Format("02 Jan 2006")
	op, inv, fin := cf.OperatingActivities, cf.InvestingActivities, cf.FinancingActivities
	doc.Rows = []printing.Row{
		{Label: "A. Cash flow from operating activities", Heading: true},
		movementRow("Net profit", op.NetProfit),
		movementRow("Add: Depreciation and amortisation", op.Depreciation),
		movementRow("(Increase)/decrease in trade receivables", op.ReceivablesChange),
		movementRow("Increase/(decrease) in trade payables", op.PayablesChange),
		movementRow("(Increase)/decrease in inventories", op.InventoryChange),
		{Label: "Net cash from operating activities", Total: true, CY: op.Total.Current, PY: op.Total.Previous},
		{Label: "B. Cash flow from investing activities", Heading: true},
		movementRow("Purchase of property, plant and equipment", inv.PPEAdditions),
		movementRow("Investments", inv.InvestmentChange),
		movementRow("Capital work-in-progress", inv.CWIPChange),
		{Label: "Net cash used in investing activities", Total: true, CY: inv.Total.Current, PY: inv.Total.Previous},
		{Label: "C. Cash flow from financing activities", Heading: true},
		movementRow("Long-term borrowings", fin.LongTermBorrowingsChange),
		movementRow("Short-term borrowings", fin.ShortTermBorrowingsChange),
		movementRow("Share capital", fin.EquityChange),
		{Label: "Net cash from financing activities", Total: true, CY: fin.Total.Current, PY: fin.Total.Previous},
		{Label: "Net increase/(decrease) in cash (A+B+C)", Total: true, CY: cf.NetCashFlow.Current, PY: cf.NetCashFlow.Previous},
		{Label: "Cash and cash equivalents at the beginning of the year", CY: cf.OpeningCash, PY: decimal.Zero},
		{Label: "Cash and cash equivalents at the end of the year", Total: true, CY: cf.ClosingCash, PY: cf.OpeningCash},
	}
	return doc
}

func ratioDocument(r domain.RatioReport, cc *company.CommonControl, now time.Time) *printing.Document {
	doc := newDocument("Ratio Analysis", cc, now)
	doc.ZeroAsDash = false
	doc.Rows = append(doc.Rows, printing.Row{Label: "Key financial ratios", Heading: true})
	for _, ratio := range r.Ratios {
		doc.Rows = append(doc.Rows, printing.Row{
			Label:  ratio.Name + " (variance " + ratio.Variance.StringFixed(1) + "%)",
			Indent: 1,
			CY:     ratio.CurrentYear.Round(2),
			PY:     ratio.PreviousYear.Round(2),
		})
	}
	return doc
}
