// Package report generates the Schedule III statements of a company and
// exports them as PDF or CSV files.
package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/ledger"
	"github.com/finstatements/backend/internal/domain/note"
	domain "github.com/finstatements/backend/internal/domain/report"
	"github.com/finstatements/backend/internal/domain/schedule"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/printing"
	"github.com/finstatements/backend/internal/infrastructure/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DownloadExpiry is how long an export download link stays valid
const DownloadExpiry = time.Hour

// ExportStore keeps exported files
type ExportStore interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}

// ReportServiceDeps are the collaborators of ReportService. Renderer may be
// nil when PDF rendering is disabled.
type ReportServiceDeps struct {
	TrialBalances  ledger.TrialBalanceRepository
	Notes          note.Repository
	Taxes          schedule.Repository[schedule.TaxEntry]
	Ratios         schedule.Repository[schedule.RatioAnalysis]
	CommonControls company.CommonControlRepository
	TxManager      shared.TxManager
	Renderer       printing.PDFRenderer
	Files          ExportStore
}

// ReportService builds financial statements from the classified trial balance
type ReportService struct {
	deps   ReportServiceDeps
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(deps ReportServiceDeps, logger *zap.Logger) *ReportService {
	return &ReportService{deps: deps, logger: logger, now: time.Now}
}

// GenerateBalanceSheet presents the company's balance sheet with note numbers
func (s *ReportService) GenerateBalanceSheet(ctx context.Context, companyID uuid.UUID) (*domain.BalanceSheet, error) {
	tb, notes, err := s.linesAndNotes(ctx, companyID)
	if err != nil {
		return nil, err
	}
	bs := domain.BuildBalanceSheet(tb, notes)
	return &bs, nil
}

// GenerateProfitAndLoss presents the company's statement of profit and loss
func (s *ReportService) GenerateProfitAndLoss(ctx context.Context, companyID uuid.UUID) (*domain.ProfitAndLoss, error) {
	tb, notes, err := s.linesAndNotes(ctx, companyID)
	if err != nil {
		return nil, err
	}
	taxes, err := s.deps.Taxes.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	pl := domain.BuildProfitAndLoss(tb, notes, schedule.CalculateTaxExpense(taxes))
	return &pl, nil
}

// GenerateCashFlow derives the cash flow statement by the indirect method
func (s *ReportService) GenerateCashFlow(ctx context.Context, companyID uuid.UUID) (*domain.CashFlow, error) {
	tb, err := s.deps.TrialBalances.ListLines(ctx, companyID)
	if err != nil {
		return nil, err
	}
	cf := domain.BuildCashFlow(tb)
	return &cf, nil
}

// GenerateRatioAnalysis computes the key ratios. With Save the company's
// ratio schedule is replaced by the result.
func (s *ReportService) GenerateRatioAnalysis(ctx context.Context, input RatioInput) (*domain.RatioReport, error) {
	tb, err := s.deps.TrialBalances.ListLines(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	report := domain.BuildRatioReport(tb)
	if !input.Save {
		return &report, nil
	}

	err = s.deps.TxManager.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.deps.Ratios.ListByCompany(ctx, input.CompanyID)
		if err != nil {
			return err
		}
		for _, r := range existing {
			if err := s.deps.Ratios.Delete(ctx, r.ID); err != nil {
				return err
			}
		}
		rows := report.ToAnalyses(input.CompanyID)
		for i := range rows {
			if err := s.deps.Ratios.Create(ctx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Ratio analysis saved",
		zap.String("company_id", input.CompanyID.String()),
		zap.Int("ratios", len(report.Ratios)))
	return &report, nil
}

// ExportFinancialStatements renders a statement, stores it and returns a
// time-limited download link
func (s *ReportService) ExportFinancialStatements(ctx context.Context, input ExportInput) (*ExportResult, error) {
	format := strings.ToLower(input.Format)
	if format == "" {
		format = FormatPDF
	}
	if format == FormatPDF && s.deps.Renderer == nil {
		return nil, shared.NewDomainError(shared.CodeBadRequest, "PDF export is not enabled on this server")
	}

	doc, err := s.document(ctx, input.CompanyID, input.Statement)
	if err != nil {
		return nil, err
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case FormatPDF:
		html, err := printing.RenderHTML(doc)
		if err != nil {
			return nil, err
		}
		result, err := s.deps.Renderer.Render(ctx, &printing.RenderRequest{
			HTML:       html,
			Title:      doc.Title,
			FooterHTML: printing.FooterTemplate,
		})
		if err != nil {
			return nil, shared.WrapDomainError(shared.CodeInternal, "Failed to export "+exportLabel(input.Statement)+": "+err.Error(), err)
		}
		data, contentType = result.PDFData, "application/pdf"
	case FormatCSV:
		var buf bytes.Buffer
		if err := printing.WriteCSV(&buf, doc); err != nil {
			return nil, err
		}
		data, contentType = buf.Bytes(), "text/csv"
	default:
		return nil, shared.NewDomainError(shared.CodeValidation, "Format must be one of: pdf, csv")
	}

	fileName := fmt.Sprintf("%s-%d.%s", strings.ReplaceAll(input.Statement, "_", "-"), s.now().UnixMilli(), format)
	key := storage.ObjectKey(input.CompanyID, storage.KindExport, fileName)
	if err := s.deps.Files.Upload(ctx, key, data, contentType); err != nil {
		return nil, shared.WrapDomainError(shared.CodeInternal, "Failed to export "+exportLabel(input.Statement)+": "+err.Error(), err)
	}
	url, _, err := s.deps.Files.GenerateDownloadURL(ctx, key, DownloadExpiry)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Financial statement exported",
		zap.String("company_id", input.CompanyID.String()),
		zap.String("statement", input.Statement),
		zap.String("format", format),
		zap.Int("bytes", len(data)))
	return &ExportResult{
		Success:     true,
		DownloadURL: url,
		FileName:    fileName,
		ExpiresIn:   int(DownloadExpiry.Seconds()),
	}, nil
}

func (s *ReportService) document(ctx context.Context, companyID uuid.UUID, statement string) (*printing.Document, error) {
	cc, err := s.deps.CommonControls.FindByCompany(ctx, companyID)
	if err != nil {
		if !shared.IsNotFound(err) {
			return nil, err
		}
		cc = company.DefaultCommonControl(companyID)
	}
	now := s.now()

	switch statement {
	case StatementBalanceSheet:
		bs, err := s.GenerateBalanceSheet(ctx, companyID)
		if err != nil {
			return nil, err
		}
		return balanceSheetDocument(*bs, cc, now), nil
	case StatementProfitAndLoss:
		pl, err := s.GenerateProfitAndLoss(ctx, companyID)
		if err != nil {
			return nil, err
		}
		return profitAndLossDocument(*pl, cc, now), nil
	case StatementCashFlow:
		cf, err := s.GenerateCashFlow(ctx, companyID)
		if err != nil {
			return nil, err
		}
		return cashFlowDocument(*cf, cc, now), nil
	case StatementRatios:
		r, err := s.GenerateRatioAnalysis(ctx, RatioInput{CompanyID: companyID})
		if err != nil {
			return nil, err
		}
		return ratioDocument(*r, cc, now), nil
	default:
		return nil, shared.NewDomainError(shared.CodeValidation,
			"Statement must be one of: balance_sheet, profit_loss, cash_flow, ratio_analysis")
	}
}

func (s *ReportService) linesAndNotes(ctx context.Context, companyID uuid.UUID) ([]ledger.TrialBalanceLine, []note.NoteSelection, error) {
	tb, err := s.deps.TrialBalances.ListLines(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	notes, err := s.deps.Notes.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	return tb, notes, nil
}

func exportLabel(statement string) string {
	return strings.ReplaceAll(statement, "_", " ")
}
