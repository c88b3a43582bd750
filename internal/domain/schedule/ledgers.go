package schedule

import (
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Payable types
const (
	PayableMSME  = "MSME"
	PayableOther = "Other"
)

// ReceivableLedgerEntry is one open customer invoice
type ReceivableLedgerEntry struct {
	shared.CompanyScoped
	CustomerName      string          `gorm:"type:varchar(200);not null" json:"customerName"`
	InvoiceNumber     *string         `gorm:"type:varchar(100)" json:"invoiceNumber"`
	InvoiceDate       *time.Time      `json:"invoiceDate"`
	InvoiceAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"invoiceAmount"`
	AmountSettled     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amountSettled"`
	OutstandingAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"outstandingAmount"`
	Disputed          bool            `gorm:"not null;default:false" json:"disputed"`
	DaysOutstanding   *int            `json:"daysOutstanding"`
	AgingBucket       string          `gorm:"type:varchar(50)" json:"agingBucket"`
}

func (ReceivableLedgerEntry) TableName() string  { return "receivable_ledger_entries" }
func (ReceivableLedgerEntry) SortColumn() string { return "customer_name" }

// Derive fills the outstanding amount and aging bucket when the caller left them out
func (e *ReceivableLedgerEntry) Derive() {
	if e.OutstandingAmount.IsZero() {
		e.OutstandingAmount = e.InvoiceAmount.Sub(e.AmountSettled)
	}
	if e.AgingBucket == "" && e.DaysOutstanding != nil {
		e.AgingBucket = TradeBucketForDays(*e.DaysOutstanding)
	}
}

// Validate checks the customer, amounts and aging bucket. Outstanding may be
// negative: that is an advance received from the customer.
func (e *ReceivableLedgerEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Customer name", e.CustomerName); err != nil {
		return err
	}
	if err := nonNegative(amount{"Invoice amount", e.InvoiceAmount}, amount{"Amount settled", e.AmountSettled}); err != nil {
		return err
	}
	if e.DaysOutstanding != nil && *e.DaysOutstanding < 0 {
		return shared.NewDomainError(shared.CodeValidation, "Days outstanding cannot be negative")
	}
	return validateBucket(e.AgingBucket, TradeAgingBuckets)
}

// PayableLedgerEntry is one open vendor invoice
type PayableLedgerEntry struct {
	shared.CompanyScoped
	VendorName        string          `gorm:"type:varchar(200);not null" json:"vendorName"`
	InvoiceNumber     *string         `gorm:"type:varchar(100)" json:"invoiceNumber"`
	InvoiceDate       *time.Time      `json:"invoiceDate"`
	InvoiceAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"invoiceAmount"`
	AmountSettled     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"amountSettled"`
	OutstandingAmount decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"outstandingAmount"`
	Disputed          bool            `gorm:"not null;default:false" json:"disputed"`
	PayableType       string          `gorm:"type:varchar(10);not null;default:'Other'" json:"payableType"`
	AgingBucket       string          `gorm:"type:varchar(50)" json:"agingBucket"`
}

func (PayableLedgerEntry) TableName() string  { return "payable_ledger_entries" }
func (PayableLedgerEntry) SortColumn() string { return "vendor_name" }

// Derive fills the outstanding amount and payable type when the caller left them out
func (e *PayableLedgerEntry) Derive() {
	if e.OutstandingAmount.IsZero() {
		e.OutstandingAmount = e.InvoiceAmount.Sub(e.AmountSettled)
	}
	if e.PayableType == "" {
		e.PayableType = PayableOther
	}
}

// Validate checks the vendor, amounts, payable type and aging bucket
func (e *PayableLedgerEntry) Validate() error {
	if err := requireCompany(e.CompanyID); err != nil {
		return err
	}
	if err := required("Vendor name", e.VendorName); err != nil {
		return err
	}
	if err := nonNegative(amount{"Invoice amount", e.InvoiceAmount}, amount{"Amount settled", e.AmountSettled}); err != nil {
		return err
	}
	if err := oneOf("Payable type", e.PayableType, PayableMSME, PayableOther); err != nil {
		return err
	}
	return validateBucket(e.AgingBucket, TradeAgingBuckets)
}

// IsMSME reports whether the vendor is a micro, small or medium enterprise
func (e *PayableLedgerEntry) IsMSME() bool {
	return e.PayableType == PayableMSME
}

// BucketTotals are the outstanding amounts of one aging bucket
type BucketTotals struct {
	MSME       *decimal.Decimal `json:"msme,omitempty"`
	Others     *decimal.Decimal `json:"others,omitempty"`
	Disputed   decimal.Decimal  `json:"disputed"`
	Undisputed decimal.Decimal  `json:"undisputed"`
	Total      decimal.Decimal  `json:"total"`
	Count      int              `json:"count"`
}

func (b *BucketTotals) add(amount decimal.Decimal, disputed bool) {
	b.Total = b.Total.Add(amount)
	b.Count++
	if disputed {
		b.Disputed = b.Disputed.Add(amount)
	} else {
		b.Undisputed = b.Undisputed.Add(amount)
	}
}

// ReceivablesAging summarises the receivable ledger by aging bucket
type ReceivablesAging struct {
	Entries              []ReceivableLedgerEntry  `json:"entries"`
	Aging                map[string]*BucketTotals `json:"aging"`
	TotalOutstanding     decimal.Decimal          `json:"totalOutstanding"`
	AdvanceFromCustomers decimal.Decimal          `json:"advanceFromCustomers"`
	TradeReceivables     decimal.Decimal          `json:"tradeReceivables"`
}

// PayablesAging summarises the payable ledger by aging bucket, splitting MSME dues
type PayablesAging struct {
	Entries            []PayableLedgerEntry     `json:"entries"`
	Aging              map[string]*BucketTotals `json:"aging"`
	TotalOutstanding   decimal.Decimal          `json:"totalOutstanding"`
	AdvanceToSuppliers decimal.Decimal          `json:"advanceToSuppliers"`
	TradePayables      decimal.Decimal          `json:"tradePayables"`
}

func bucketKey(b string) string {
	if b == "" {
		return BucketUnclassified
	}
	return b
}

// SummariseReceivables aggregates outstanding amounts per bucket. Negative
// balances are advances from customers.
func SummariseReceivables(entries []ReceivableLedgerEntry) ReceivablesAging {
	out := ReceivablesAging{Entries: entries, Aging: map[string]*BucketTotals{}}
	for _, e := range entries {
		key := bucketKey(e.AgingBucket)
		if out.Aging[key] == nil {
			out.Aging[key] = &BucketTotals{}
		}
		out.Aging[key].add(e.OutstandingAmount, e.Disputed)

		out.TotalOutstanding = out.TotalOutstanding.Add(e.OutstandingAmount)
		switch {
		case e.OutstandingAmount.IsNegative():
			out.AdvanceFromCustomers = out.AdvanceFromCustomers.Add(e.OutstandingAmount.Abs())
		case e.OutstandingAmount.IsPositive():
			out.TradeReceivables = out.TradeReceivables.Add(e.OutstandingAmount)
		}
	}
	return out
}

// SummarisePayables aggregates outstanding amounts per bucket with an MSME split
func SummarisePayables(entries []PayableLedgerEntry) PayablesAging {
	out := PayablesAging{Entries: entries, Aging: map[string]*BucketTotals{}}
	for _, e := range entries {
		key := bucketKey(e.AgingBucket)
		b := out.Aging[key]
		if b == nil {
			msme, others := decimal.Zero, decimal.Zero
			b = &BucketTotals{MSME: &msme, Others: &others}
			out.Aging[key] = b
		}
		b.add(e.OutstandingAmount, e.Disputed)
		if e.IsMSME() {
			*b.MSME = b.MSME.Add(e.OutstandingAmount)
		} else {
			*b.Others = b.Others.Add(e.OutstandingAmount)
		}

		out.TotalOutstanding = out.TotalOutstanding.Add(e.OutstandingAmount)
		switch {
		case e.OutstandingAmount.IsNegative():
			out.AdvanceToSuppliers = out.AdvanceToSuppliers.Add(e.OutstandingAmount.Abs())
		case e.OutstandingAmount.IsPositive():
			out.TradePayables = out.TradePayables.Add(e.OutstandingAmount)
		}
	}
	return out
}

// TotalOutstanding sums outstanding amounts of receivables
func TotalOutstanding(entries []ReceivableLedgerEntry) decimal.Decimal {
	return shared.SumBy(entries, func(e ReceivableLedgerEntry) decimal.Decimal { return e.OutstandingAmount })
}

// TotalPayable sums outstanding amounts of payables
func TotalPayable(entries []PayableLedgerEntry) decimal.Decimal {
	return shared.SumBy(entries, func(e PayableLedgerEntry) decimal.Decimal { return e.OutstandingAmount })
}
