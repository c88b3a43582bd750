package compliance

import (
	"context"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/compliance"
	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Sources are the repositories a compliance snapshot is read from
type Sources struct {
	CommonControls   company.CommonControlRepository
	TrialBalances    ledger.TrialBalanceRepository
	Notes            note.Repository
	Policies         schedule.PolicyRepository
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
}

// LoadSnapshot reads everything the compliance checks look at for one company
func (s Sources) LoadSnapshot(ctx context.Context, companyID uuid.UUID) (*compliance.Snapshot, error) {
	snap := &compliance.Snapshot{}

	cc, err := s.CommonControls.FindByCompany(ctx, companyID)
	switch {
	case err == nil:
		snap.CommonControl = cc
	case !shared.IsNotFound(err):
		return nil, err
	}

	if snap.TrialBalance, err = s.TrialBalances.ListLines(ctx, companyID); err != nil {
		return nil, err
	}
	if snap.Notes, err = s.Notes.ListByCompany(ctx, companyID); err != nil {
		return nil, err
	}
	if snap.Policies, err = s.Policies.ListByCompany(ctx, companyID); err != nil {
		return nil, err
	}

	loaders := []func() error{
		listInto(ctx, s.PPE, companyID, &snap.PPE),
		listInto(ctx, s.CWIP, companyID, &snap.CWIP),
		listInto(ctx, s.Intangibles, companyID, &snap.Intangibles),
		listInto(ctx, s.Investments, companyID, &snap.Investments),
		listInto(ctx, s.ShareCapital, companyID, &snap.ShareCapital),
		listInto(ctx, s.Receivables, companyID, &snap.Receivables),
		listInto(ctx, s.Payables, companyID, &snap.Payables),
		listInto(ctx, s.RelatedParties, companyID, &snap.RelatedParties),
		listInto(ctx, s.Contingencies, companyID, &snap.Contingencies),
		listInto(ctx, s.Taxes, companyID, &snap.Taxes),
		listInto(ctx, s.DeferredTaxes, companyID, &snap.DeferredTaxes),
		listInto(ctx, s.EmployeeBenefits, companyID, &snap.EmployeeBenefits),
		listInto(ctx, s.Ratios, companyID, &snap.Ratios),
	}
	for _, load := range loaders {
		if err := load(); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func listInto[T any](ctx context.Context, repo schedule.Repository[T], companyID uuid.UUID, dst *[]T) func() error {
	return func() error {
		rows, err := repo.ListByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	}
}
