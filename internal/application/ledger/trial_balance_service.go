// Package ledger implements trial balance maintenance, file imports and the
// reconciliation of the trial balance against the receivable and payable ledgers.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/finstatements/backend/internal/infrastructure/importer"
	"github.com/finstatements/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadURLExpiry is how long a presigned trial balance upload stays valid
const UploadURLExpiry = 24 * time.Hour

// Trial balance major heads reconciled against the sub-ledgers
const (
	ReceivablesHead = "Trade Receivables"
	PayablesHead    = "Trade Payables"
)

// FileStore is the object storage used for uploaded trial balance files
type FileStore interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	Download(ctx context.Context, storageKey string) ([]byte, error)
	DeleteObject(ctx context.Context, storageKey string) error
}

// TrialBalanceService handles trial balance operations
type TrialBalanceService struct {
	tbRepo       ledger.TrialBalanceRepository
	majorRepo    taxonomy.MajorHeadRepository
	minorRepo    taxonomy.MinorHeadRepository
	groupingRepo taxonomy.GroupingRepository
	receivables  schedule.Repository[schedule.ReceivableLedgerEntry]
	payables     schedule.Repository[schedule.PayableLedgerEntry]
	txManager    shared.TxManager
	files        FileStore
	logger       *zap.Logger
}

// TrialBalanceServiceDeps groups the collaborators of TrialBalanceService
type TrialBalanceServiceDeps struct {
	TrialBalances ledger.TrialBalanceRepository
	MajorHeads    taxonomy.MajorHeadRepository
	MinorHeads    taxonomy.MinorHeadRepository
	Groupings     taxonomy.GroupingRepository
	Receivables   schedule.Repository[schedule.ReceivableLedgerEntry]
	Payables      schedule.Repository[schedule.PayableLedgerEntry]
	TxManager     shared.TxManager
	Files         FileStore
}

// NewTrialBalanceService creates a new TrialBalanceService
func NewTrialBalanceService(deps TrialBalanceServiceDeps, logger *zap.Logger) *TrialBalanceService {
	return &TrialBalanceService{
		tbRepo:       deps.TrialBalances,
		majorRepo:    deps.MajorHeads,
		minorRepo:    deps.MinorHeads,
		groupingRepo: deps.Groupings,
		receivables:  deps.Receivables,
		payables:     deps.Payables,
		txManager:    deps.TxManager,
		files:        deps.Files,
		logger:       logger,
	}
}

// GetTrialBalance lists the company's lines by ledger name
func (s *TrialBalanceService) GetTrialBalance(ctx context.Context, companyID uuid.UUID) ([]TrialBalanceResponse, error) {
	lines, err := s.tbRepo.ListLines(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]TrialBalanceResponse, len(lines))
	for i := range lines {
		out[i] = toTrialBalanceResponse(&lines[i])
	}
	return out, nil
}

// UploadTrialBalance replaces every line of the company in one transaction
func (s *TrialBalanceService) UploadTrialBalance(ctx context.Context, input UploadTrialBalanceInput) ([]TrialBalanceResponse, error) {
	if len(input.Entries) == 0 {
		return nil, shared.NewDomainError(shared.CodeValidation, "At least one trial balance entry is required")
	}
	if err := s.replace(ctx, input.CompanyID, input.Entries); err != nil {
		return nil, err
	}
	return s.GetTrialBalance(ctx, input.CompanyID)
}

func (s *TrialBalanceService) replace(ctx context.Context, companyID uuid.UUID, entries []TrialBalanceEntryInput) error {
	return s.txManager.InTx(ctx, func(ctx context.Context) error {
		removed, err := s.tbRepo.DeleteByCompany(ctx, companyID)
		if err != nil {
			return err
		}

		heads := s.newHeadResolver()
		for i := range entries {
			entry, err := newEntry(companyID, &entries[i])
			if err != nil {
				return err
			}
			if err := heads.classify(ctx, entry, &entries[i]); err != nil {
				return err
			}
			if err := s.tbRepo.Create(ctx, entry); err != nil {
				return err
			}
		}

		s.logger.Info("Trial balance replaced",
			zap.String("company_id", companyID.String()),
			zap.Int64("removed", removed),
			zap.Int("inserted", len(entries)),
			zap.Int("heads_created", heads.created))
		return nil
	})
}

// UpdateTrialBalanceEntry replaces one line of the company
func (s *TrialBalanceService) UpdateTrialBalanceEntry(ctx context.Context, input UpdateTrialBalanceEntryInput) (*TrialBalanceResponse, error) {
	err := s.txManager.InTx(ctx, func(ctx context.Context) error {
		entry, err := s.findEntry(ctx, input.CompanyID, input.ID)
		if err != nil {
			return err
		}
		if err := entry.Revise(input.LedgerName, statementType(input.Type), balancesOf(&input.TrialBalanceEntryInput)); err != nil {
			return err
		}
		if err := s.newHeadResolver().classify(ctx, entry, &input.TrialBalanceEntryInput); err != nil {
			return err
		}
		return s.tbRepo.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	lines, err := s.tbRepo.ListLines(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].ID == input.ID {
			resp := toTrialBalanceResponse(&lines[i])
			return &resp, nil
		}
	}
	return nil, shared.NewDomainError(shared.CodeNotFound, "Trial balance entry not found")
}

// DeleteTrialBalanceEntry removes one line of the company
func (s *TrialBalanceService) DeleteTrialBalanceEntry(ctx context.Context, input EntryIDInput) error {
	if _, err := s.findEntry(ctx, input.CompanyID, input.ID); err != nil {
		return err
	}
	if err := s.tbRepo.Delete(ctx, input.ID); err != nil {
		return notFoundAs(err, "Trial balance entry not found")
	}
	s.logger.Info("Trial balance entry deleted", zap.String("id", input.ID.String()))
	return nil
}

func (s *TrialBalanceService) findEntry(ctx context.Context, companyID, id uuid.UUID) (*ledger.TrialBalanceEntry, error) {
	entry, err := s.tbRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Trial balance entry not found")
	}
	if entry.CompanyID != companyID {
		return nil, shared.NewDomainError(shared.CodeNotFound, "Trial balance entry not found")
	}
	return entry, nil
}

// GetTrialBalanceUploadURL issues a presigned PUT for a trial balance file
func (s *TrialBalanceService) GetTrialBalanceUploadURL(ctx context.Context, input UploadURLInput) (*UploadURLResponse, error) {
	key := storage.ObjectKey(input.CompanyID, storage.KindTrialBalance, input.FileName)
	contentType := input.FileType
	if contentType == "" {
		contentType = "text/csv"
	}
	url, expiresAt, err := s.files.GenerateUploadURL(ctx, key, contentType, UploadURLExpiry)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeInternal, "Failed to create upload URL", err)
	}
	return &UploadURLResponse{UploadURL: url, ObjectName: key, ExpiresAt: expiresAt}, nil
}

// ProcessTrialBalanceFile imports an uploaded CSV and replaces the trial
// balance. The object is removed afterwards.
func (s *TrialBalanceService) ProcessTrialBalanceFile(ctx context.Context, input ProcessFileInput) (*ImportResult, error) {
	if !storage.BelongsTo(input.ObjectName, input.CompanyID) {
		return nil, shared.NewDomainError(shared.CodeForbidden, "File does not belong to this company")
	}
	data, err := s.files.Download(ctx, input.ObjectName)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrObjectNotFound):
			return nil, shared.NewDomainError(shared.CodeNotFound, "Uploaded file not found")
		case errors.Is(err, storage.ErrObjectTooLarge):
			return nil, shared.NewDomainError(shared.CodeBadRequest, "Uploaded file is too large")
		}
		return nil, shared.WrapDomainError(shared.CodeInternal, "Failed to read uploaded file", err)
	}

	result, err := s.importCSV(ctx, input.CompanyID, data)
	if err != nil {
		return nil, err
	}

	if err := s.files.DeleteObject(ctx, input.ObjectName); err != nil {
		s.logger.Warn("Failed to clean up uploaded file",
			zap.String("object", input.ObjectName), zap.Error(err))
	}
	return result, nil
}

// ImportTrialBalanceCSV imports CSV content sent with the request
func (s *TrialBalanceService) ImportTrialBalanceCSV(ctx context.Context, input ImportCSVInput) (*ImportResult, error) {
	var opts []importer.ParserOption
	if input.Delimiter != "" {
		opts = append(opts, importer.WithDelimiter([]rune(input.Delimiter)[0]))
	}
	return s.importCSV(ctx, input.CompanyID, []byte(input.Content), opts...)
}

func (s *TrialBalanceService) importCSV(ctx context.Context, companyID uuid.UUID, data []byte, opts ...importer.ParserOption) (*ImportResult, error) {
	file, err := importer.ParseTrialBalance(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, shared.WrapDomainError(shared.CodeValidation, "Invalid trial balance file: "+err.Error(), err)
	}
	if file.Errors.HasErrors() {
		return nil, shared.NewDomainError(shared.CodeValidation, "Invalid trial balance file: "+file.Errors.String())
	}

	entries := make([]TrialBalanceEntryInput, len(file.Rows))
	for i, r := range file.Rows {
		entries[i] = TrialBalanceEntryInput{
			LedgerName:       r.LedgerName,
			OpeningBalanceCY: r.OpeningBalanceCY,
			DebitCY:          r.DebitCY,
			CreditCY:         r.CreditCY,
			ClosingBalanceCY: r.ClosingBalanceCY,
			ClosingBalancePY: r.ClosingBalancePY,
			Type:             r.Type,
			MajorHead:        r.MajorHead,
			MinorHead:        r.MinorHead,
			Grouping:         r.Grouping,
		}
	}
	if err := s.replace(ctx, companyID, entries); err != nil {
		return nil, err
	}

	lines, err := s.GetTrialBalance(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &ImportResult{Success: true, EntriesProcessed: len(entries), Entries: lines}, nil
}

// CheckTrialBalanceReconciliation compares the trade receivable and payable
// heads of the trial balance with the outstanding totals of their ledgers
func (s *TrialBalanceService) CheckTrialBalanceReconciliation(ctx context.Context, companyID uuid.UUID) (*ReconciliationReport, error) {
	lines, err := s.tbRepo.ListLines(ctx, companyID)
	if err != nil {
		return nil, err
	}
	receivables, err := s.receivables.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	payables, err := s.payables.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rec := ledger.Reconcile(ledger.ClosingUnder(lines, ReceivablesHead), schedule.TotalOutstanding(receivables))
	pay := ledger.Reconcile(ledger.ClosingUnder(lines, PayablesHead), schedule.TotalPayable(payables))
	if !rec.Reconciled || !pay.Reconciled {
		s.logger.Info("Trial balance does not reconcile",
			zap.String("company_id", companyID.String()),
			zap.String("receivables_variance", rec.Variance.String()),
			zap.String("payables_variance", pay.Variance.String()))
	}
	return &ReconciliationReport{
		Receivables: toReconciliationResponse(rec),
		Payables:    toReconciliationResponse(pay),
	}, nil
}

func newEntry(companyID uuid.UUID, in *TrialBalanceEntryInput) (*ledger.TrialBalanceEntry, error) {
	return ledger.NewTrialBalanceEntry(companyID, in.LedgerName, statementType(in.Type), balancesOf(in))
}

func statementType(s string) taxonomy.StatementType {
	return taxonomy.StatementType(strings.ToUpper(strings.TrimSpace(s)))
}

func balancesOf(in *TrialBalanceEntryInput) ledger.Balances {
	return ledger.Balances{
		OpeningBalanceCY: in.OpeningBalanceCY,
		DebitCY:          in.DebitCY,
		CreditCY:         in.CreditCY,
		ClosingBalanceCY: in.ClosingBalanceCY,
		ClosingBalancePY: in.ClosingBalancePY,
	}
}

func notFoundAs(err error, message string) error {
	if shared.IsNotFound(err) {
		return shared.NewDomainError(shared.CodeNotFound, message)
	}
	return err
}
