package schedule

import (
	"context"
	"sort"

	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repositories holds one repository per schedule entry type
type Repositories struct {
	PPE              schedule.Repository[schedule.PPEEntry]
	CWIP             schedule.Repository[schedule.CWIPEntry]
	Intangibles      schedule.Repository[schedule.IntangibleEntry]
	Investments      schedule.Repository[schedule.InvestmentEntry]
	ShareCapital     schedule.Repository[schedule.ShareCapitalEntry]
	Receivables      schedule.Repository[schedule.ReceivableLedgerEntry]
	Payables         schedule.Repository[schedule.PayableLedgerEntry]
	RelatedParties   schedule.Repository[schedule.RelatedPartyTransaction]
	Contingencies    schedule.Repository[schedule.ContingentLiability]
	Taxes            schedule.Repository[schedule.TaxEntry]
	DeferredTaxes    schedule.Repository[schedule.DeferredTaxEntry]
	EmployeeBenefits schedule.Repository[schedule.EmployeeBenefitEntry]
	Ratios           schedule.Repository[schedule.RatioAnalysis]
	Policies         schedule.PolicyRepository
}

// ScheduleService groups the entry services of every schedule with the
// operations that span a whole schedule
type ScheduleService struct {
	PPE              *EntryService[schedule.PPEEntry, *schedule.PPEEntry]
	CWIP             *EntryService[schedule.CWIPEntry, *schedule.CWIPEntry]
	Intangibles      *EntryService[schedule.IntangibleEntry, *schedule.IntangibleEntry]
	Investments      *EntryService[schedule.InvestmentEntry, *schedule.InvestmentEntry]
	ShareCapital     *EntryService[schedule.ShareCapitalEntry, *schedule.ShareCapitalEntry]
	Receivables      *EntryService[schedule.ReceivableLedgerEntry, *schedule.ReceivableLedgerEntry]
	Payables         *EntryService[schedule.PayableLedgerEntry, *schedule.PayableLedgerEntry]
	RelatedParties   *EntryService[schedule.RelatedPartyTransaction, *schedule.RelatedPartyTransaction]
	Contingencies    *EntryService[schedule.ContingentLiability, *schedule.ContingentLiability]
	Taxes            *EntryService[schedule.TaxEntry, *schedule.TaxEntry]
	DeferredTaxes    *EntryService[schedule.DeferredTaxEntry, *schedule.DeferredTaxEntry]
	EmployeeBenefits *EntryService[schedule.EmployeeBenefitEntry, *schedule.EmployeeBenefitEntry]
	Ratios           *EntryService[schedule.RatioAnalysis, *schedule.RatioAnalysis]

	repos  Repositories
	logger *zap.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(repos Repositories, companies CompanyFinder, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		PPE:              NewEntryService[schedule.PPEEntry]("PPE entry", repos.PPE, companies, logger),
		CWIP:             NewEntryService[schedule.CWIPEntry]("CWIP entry", repos.CWIP, companies, logger),
		Intangibles:      NewEntryService[schedule.IntangibleEntry]("Intangible asset entry", repos.Intangibles, companies, logger),
		Investments:      NewEntryService[schedule.InvestmentEntry]("Investment entry", repos.Investments, companies, logger),
		ShareCapital:     NewEntryService[schedule.ShareCapitalEntry]("Share capital entry", repos.ShareCapital, companies, logger),
		Receivables:      NewEntryService[schedule.ReceivableLedgerEntry]("Receivable ledger entry", repos.Receivables, companies, logger),
		Payables:         NewEntryService[schedule.PayableLedgerEntry]("Payable ledger entry", repos.Payables, companies, logger),
		RelatedParties:   NewEntryService[schedule.RelatedPartyTransaction]("Related party transaction", repos.RelatedParties, companies, logger),
		Contingencies:    NewEntryService[schedule.ContingentLiability]("Contingent liability", repos.Contingencies, companies, logger),
		Taxes:            NewEntryService[schedule.TaxEntry]("Tax entry", repos.Taxes, companies, logger),
		DeferredTaxes:    NewEntryService[schedule.DeferredTaxEntry]("Deferred tax entry", repos.DeferredTaxes, companies, logger),
		EmployeeBenefits: NewEntryService[schedule.EmployeeBenefitEntry]("Employee benefit entry", repos.EmployeeBenefits, companies, logger),
		Ratios:           NewEntryService[schedule.RatioAnalysis]("Ratio analysis", repos.Ratios, companies, logger),
		repos:            repos,
		logger:           logger,
	}
}

// GetAgingSchedules summarises outstanding receivables and payables per
// aging bucket. Entries are ordered by bucket age, then by party name.
func (s *ScheduleService) GetAgingSchedules(ctx context.Context, companyID uuid.UUID) (*AgingSchedules, error) {
	receivables, err := s.repos.Receivables.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	payables, err := s.repos.Payables.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(receivables, func(i, j int) bool {
		return bucketBefore(receivables[i].AgingBucket, receivables[j].AgingBucket)
	})
	sort.SliceStable(payables, func(i, j int) bool {
		return bucketBefore(payables[i].AgingBucket, payables[j].AgingBucket)
	})

	return &AgingSchedules{
		Receivables: schedule.SummariseReceivables(receivables),
		Payables:    schedule.SummarisePayables(payables),
	}, nil
}

// CalculateTaxExpense totals the company's tax entries with the current/deferred split
func (s *ScheduleService) CalculateTaxExpense(ctx context.Context, companyID uuid.UUID) (*schedule.TaxExpense, error) {
	entries, err := s.repos.Taxes.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := schedule.CalculateTaxExpense(entries)
	return &out, nil
}

// bucketBefore orders buckets from youngest to oldest with unclassified entries last
func bucketBefore(a, b string) bool {
	return bucketRank(a) < bucketRank(b)
}

func bucketRank(b string) int {
	for i, known := range schedule.TradeAgingBuckets {
		if b == known {
			return i
		}
	}
	return len(schedule.TradeAgingBuckets)
}
