package note

import (
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

type defaultNote struct {
	ref, description, linkedMajorHead string
}

// DefaultNotes returns the standard Schedule III note list for companyID,
// all system recommended and not yet selected
func DefaultNotes(companyID uuid.UUID) []NoteSelection {
	out := make([]NoteSelection, 0, len(defaultNotes))
	for _, d := range defaultNotes {
		n := NoteSelection{
			CompanyScoped:     shared.NewCompanyScoped(companyID),
			NoteRef:           d.ref,
			Description:       d.description,
			SystemRecommended: true,
		}
		if d.linkedMajorHead != "" {
			head := d.linkedMajorHead
			n.LinkedMajorHead = &head
		}
		out = append(out, n)
	}
	return out
}

var defaultNotes = []defaultNote{
	// A: general notes and policies
	{"A.1", "Corporate information and basis of preparation", ""},
	{"A.2", "Significant accounting policies", ""},
	{"A.2.1", "Revenue recognition (AS 9)", "Revenue from Operations"},
	{"A.2.2", "Property, Plant and Equipment (PPE) and depreciation (AS 10)", "Property, Plant and Equipment"},
	{"A.2.3", "Intangible assets and amortization (AS 26)", "Intangible Assets"},
	{"A.2.4", "Impairment of assets (AS 28)", ""},
	{"A.2.5", "Inventories valuation and cost formula (AS 2)", "Inventories"},
	{"A.2.6", "Investments classification and valuation (AS 13)", "Non-current Investments"},
	{"A.2.7", "Foreign currency transactions and translation (AS 11)", ""},
	{"A.2.8", "Employee benefits (AS 15)", "Employee Benefits Expense"},
	{"A.2.9", "Borrowing costs and capitalization policy (AS 16)", "Finance Costs"},
	{"A.2.10", "Provisions, contingent liabilities, contingent assets (AS 29)", "Long-term Provisions"},
	{"A.2.11", "Taxes on income (current/deferred; AS 22)", "Taxes on Income"},
	{"A.2.12", "Government grants (AS 12)", ""},
	{"A.2.13", "Construction contracts revenue (AS 7)", ""},
	{"A.2.14", "Leases classification (AS 19)", ""},
	{"A.2.15", "Segment reporting basis (AS 17)", ""},
	{"A.2.16", "Cash and cash equivalents definition (AS 3)", "Cash and Cash Equivalents"},

	// B: equity and liabilities
	{"B.1", "Share capital", "Equity Share Capital"},
	{"B.2", "Reserves and surplus / other equity", "Other Equity"},
	{"B.3", "Long-term and short-term borrowings", "Long-term Borrowings"},
	{"B.4", "Trade payables", "Trade Payables"},
	{"B.5", "Other financial liabilities and provisions", "Other Current Liabilities"},
	{"B.6", "Other non-financial liabilities", "Other Long-term Liabilities"},
	{"B.7", "Employee benefit obligations (AS 15)", "Long-term Provisions"},

	// C: assets
	{"C.1", "Property, plant and equipment (AS 10 + Schedule III)", "Property, Plant and Equipment"},
	{"C.2", "Capital work-in-progress (CWIP)", ""},
	{"C.3", "Intangible assets and Intangible assets under development", "Intangible Assets"},
	{"C.4", "Investments (AS 13)", "Non-current Investments"},
	{"C.5", "Inventories (AS 2)", "Inventories"},
	{"C.6", "Trade receivables", "Trade Receivables"},
	{"C.7", "Cash and cash equivalents", "Cash and Cash Equivalents"},
	{"C.8", "Loans, advances, and other assets", "Long-term Loans and Advances"},

	// D: profit and loss
	{"D.1", "Revenue from operations (AS 9)", "Revenue from Operations"},
	{"D.2", "Other income", "Other Income"},
	{"D.3", "Cost of materials consumed; Purchases; Changes in inventories", "Cost of Materials Consumed"},
	{"D.4", "Employee benefits expense (AS 15)", "Employee Benefits Expense"},
	{"D.5", "Finance costs (AS 16)", "Finance Costs"},
	{"D.6", "Depreciation and amortization expense", "Depreciation and Amortization"},
	{"D.7", "Other expenses (incl. CSR, Auditor Payments)", "Other Expenses"},
	{"D.8", "Exceptional items and extraordinary items (AS 5)", "Exceptional Items"},
	{"D.9", "Prior period items disclosure (AS 5)", "Prior Period Items"},
	{"D.10", "Earnings per share (AS 20)", ""},
	{"D.11", "Income taxes (AS 22)", "Taxes on Income"},

	// E: cross-cutting accounting standard disclosures
	{"E.1", "AS 3 Cash Flow Statement details", ""},
	{"E.2", "AS 4 Events occurring after the balance sheet date", ""},
	{"E.3", "AS 18 Related party disclosures", ""},
	{"E.4", "AS 19 Leases", ""},
	{"E.5", "Contingent Liabilities and Commitments (AS 29)", ""},

	// F: additional Schedule III (2021) disclosures
	{"F.1", "Utilization of borrowed funds and share premium", ""},
	{"F.2", "Title deeds of immovable properties not in company's name", ""},
	{"F.3", "Proceedings for Benami property", ""},
	{"F.4", "Wilful defaulter status", ""},
	{"F.5", "Relationship with struck-off companies", ""},
	{"F.6", "Crypto/virtual currency holdings", ""},
	{"F.7", "Undisclosed income surrendered in tax assessments", ""},
	{"F.8", "Ratios with variance >25% explanations", ""},
	{"F.9", "Aging schedules: Receivables, Payables, CWIP, Intangibles under dev.", ""},
	{"F.10", "Unspent CSR amounts", ""},

	// G: other statutory disclosures
	{"G.1", "Managerial remuneration (Section 197)", ""},
	{"G.2", "MSME Disclosures (Principal and Interest due)", ""},
}
