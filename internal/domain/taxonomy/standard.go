package taxonomy

// StandardMinorHead is a seeded minor head with its groupings
type StandardMinorHead struct {
	Name      string
	Groupings []string
}

// StandardMajorHead is a seeded major head with its minor heads
type StandardMajorHead struct {
	Name          string
	StatementType StatementType
	Category      Category
	MinorHeads    []StandardMinorHead
}

// StandardTaxonomy is the Schedule III master list loaded by the seeder.
// Minor head names repeat across major heads, so groupings are listed under
// the exact parent they belong to.
var StandardTaxonomy = []StandardMajorHead{
	// Balance sheet: assets
	{Name: "Property, Plant and Equipment", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Tangible Assets", Groupings: []string{
			"Land", "Building", "Plant and Machinery", "Furniture and Fixtures",
			"Vehicles", "Office Equipment", "Capital Work-in-Progress",
		}},
	}},
	{Name: "Intangible Assets", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Intangible Assets", Groupings: []string{
			"Goodwill", "Patents, Copyrights, Trademarks", "Intangible assets under development",
		}},
	}},
	{Name: "Non-current Investments", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Financial Assets - Investments", Groupings: []string{
			"Financial Investments - Mutual funds",
			"Financial Investments - Equity instruments",
			"Financial Investments - Others",
		}},
	}},
	{Name: "Long-term Loans and Advances", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Financial Assets - Loans", Groupings: []string{"Loans to related parties", "Loans to others"}},
	}},
	{Name: "Other Non-current Assets", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Other Non-current Assets", Groupings: []string{"Other non-current assets"}},
	}},
	{Name: "Current Investments", StatementType: StatementBS, Category: CategoryAsset},
	{Name: "Inventories", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Inventories", Groupings: []string{
			"Raw materials", "Work-in-progress", "Finished goods",
			"Stock-in-trade", "Stores and spares", "Loose tools",
		}},
	}},
	{Name: "Trade Receivables", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Financial Assets - Trade Receivables", Groupings: []string{
			"Trade receivables outstanding > 6 months",
			"Trade receivables outstanding < 6 months",
		}},
	}},
	{Name: "Cash and Cash Equivalents", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Cash and Cash Equivalents", Groupings: []string{
			"Balances with banks", "Cheques, drafts on hand", "Cash on hand", "Other bank balances",
		}},
	}},
	{Name: "Short-term Loans and Advances", StatementType: StatementBS, Category: CategoryAsset, MinorHeads: []StandardMinorHead{
		{Name: "Financial Assets - Loans", Groupings: []string{"Security deposits"}},
		{Name: "Other financial assets", Groupings: []string{"Other current assets"}},
	}},
	{Name: "Other Current Assets", StatementType: StatementBS, Category: CategoryAsset},

	// Balance sheet: equity
	{Name: "Equity Share Capital", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Equity Share Capital"},
	}},
	{Name: "Other Equity", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Other Equity", Groupings: []string{"Retained Earnings", "General Reserve", "Securities Premium"}},
	}},

	// Balance sheet: liabilities
	{Name: "Long-term Borrowings", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Financial Liabilities - Borrowings", Groupings: []string{
			"Debentures/Bonds", "Term Loans from Banks", "Term Loans from others",
		}},
	}},
	{Name: "Deferred Tax Liabilities (Net)", StatementType: StatementBS, Category: CategoryLiability},
	{Name: "Other Long-term Liabilities", StatementType: StatementBS, Category: CategoryLiability},
	{Name: "Long-term Provisions", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Provisions", Groupings: []string{
			"Deferred tax liability", "Provision for employee benefits", "Other provisions",
		}},
		{Name: "Other financial liabilities"},
	}},
	{Name: "Short-term Borrowings", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Financial Liabilities - Borrowings", Groupings: []string{"Borrowings from Banks", "Borrowings from others"}},
	}},
	{Name: "Trade Payables", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Financial Liabilities - Trade Payables", Groupings: []string{"Trade Payables - MSMEs", "Trade Payables - Others"}},
	}},
	{Name: "Other Current Liabilities", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Other financial liabilities", Groupings: []string{
			"Current maturities of long-term debt", "Interest accrued", "Unpaid dividends", "Other payables",
		}},
	}},
	{Name: "Short-term Provisions", StatementType: StatementBS, Category: CategoryLiability, MinorHeads: []StandardMinorHead{
		{Name: "Provisions", Groupings: []string{"Provision for tax"}},
	}},

	// Profit and loss: income
	{Name: "Revenue from Operations", StatementType: StatementPL, Category: CategoryIncome, MinorHeads: []StandardMinorHead{
		{Name: "Revenue from Operations", Groupings: []string{
			"Sale of products", "Sale of services", "Other operating revenues",
		}},
	}},
	{Name: "Other Income", StatementType: StatementPL, Category: CategoryIncome, MinorHeads: []StandardMinorHead{
		{Name: "Other Income", Groupings: []string{
			"Interest Income", "Dividend Income",
			"Net gain/loss on sale of investments", "Other non-operating income",
		}},
	}},

	// Profit and loss: expenses
	{Name: "Cost of Materials Consumed", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Cost of Materials Consumed", Groupings: []string{"Raw material consumed"}},
	}},
	{Name: "Purchases of Stock-in-Trade", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Purchases of Stock-in-Trade", Groupings: []string{"Purchase of stock-in-trade"}},
	}},
	{Name: "Changes in Inventories", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Changes in inventories of finished goods, work-in-progress and Stock-in-Trade"},
	}},
	{Name: "Employee Benefits Expense", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Employee Benefit Expense", Groupings: []string{
			"Salaries and wages", "Contribution to provident and other funds", "Staff welfare expenses",
		}},
	}},
	{Name: "Finance Costs", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Finance Costs", Groupings: []string{"Interest expense", "Other borrowing costs"}},
	}},
	{Name: "Depreciation and Amortization", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Depreciation and Amortization Expense", Groupings: []string{
			"Depreciation on tangible assets", "Amortization on intangible assets",
		}},
	}},
	{Name: "Other Expenses", StatementType: StatementPL, Category: CategoryExpense, MinorHeads: []StandardMinorHead{
		{Name: "Other Expenses", Groupings: []string{
			"Rent", "Rates and taxes", "Power and fuel", "Repairs to buildings",
			"Repairs to machinery", "Insurance", "Auditor's remuneration",
			"Legal and professional fees", "Corporate Social Responsibility (CSR) expense",
			"Miscellaneous expenses",
		}},
	}},
	{Name: "Exceptional Items", StatementType: StatementPL, Category: CategoryExpense},
	{Name: "Extraordinary Items", StatementType: StatementPL, Category: CategoryExpense},
	{Name: "Taxes on Income", StatementType: StatementPL, Category: CategoryExpense},
	{Name: "Prior Period Items", StatementType: StatementPL, Category: CategoryExpense},
}
