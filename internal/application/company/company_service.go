// Package company implements company management and common control settings.
package company

import (
	"context"
	"strings"
	"time"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RowCounter reports how many rows a company owns per table
type RowCounter interface {
	CompanyRowCounts(ctx context.Context, companyID uuid.UUID) (map[string]int64, error)
}

var errCompanyNotFound = shared.NewDomainError(shared.CodeNotFound, "Company not found")

// CompanyService handles company operations
type CompanyService struct {
	companyRepo company.CompanyRepository
	controlRepo company.CommonControlRepository
	counter     RowCounter
	logger      *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyRepo company.CompanyRepository,
	controlRepo company.CommonControlRepository,
	counter RowCounter,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		controlRepo: controlRepo,
		counter:     counter,
		logger:      logger,
	}
}

// Authorize loads a company the user owns. Companies owned by someone else
// are reported as missing.
func (s *CompanyService) Authorize(ctx context.Context, userID, companyID uuid.UUID) (*company.Company, error) {
	c, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, errCompanyNotFound
		}
		return nil, err
	}
	if !c.OwnedBy(userID) {
		s.logger.Warn("Company access denied",
			zap.String("company_id", companyID.String()),
			zap.String("user_id", userID.String()))
		return nil, errCompanyNotFound
	}
	return c, nil
}

// GetCompanies lists the user's active companies by name
func (s *CompanyService) GetCompanies(ctx context.Context, userID uuid.UUID) ([]CompanyResponse, error) {
	companies, err := s.companyRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out, nil
}

// GetCompany returns one company of the user
func (s *CompanyService) GetCompany(ctx context.Context, userID uuid.UUID, input CompanyIDInput) (*CompanyResponse, error) {
	c, err := s.Authorize(ctx, userID, input.CompanyID)
	if err != nil {
		return nil, err
	}
	resp := ToCompanyResponse(c)
	return &resp, nil
}

// CreateCompany creates a company owned by the user. Names are unique across all users.
func (s *CompanyService) CreateCompany(ctx context.Context, userID uuid.UUID, input CreateCompanyInput) (*CompanyResponse, error) {
	c, err := company.NewCompany(userID, input.Name, input.DisplayName, input.Description)
	if err != nil {
		return nil, err
	}

	exists, err := s.companyRepo.ExistsByName(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateName(c.Name)
	}
	if err := s.companyRepo.Create(ctx, c); err != nil {
		if shared.IsConflict(err) {
			return nil, duplicateName(c.Name)
		}
		return nil, err
	}

	s.logger.Info("Company created",
		zap.String("company_id", c.ID.String()),
		zap.String("name", c.Name),
		zap.String("user_id", userID.String()))
	resp := ToCompanyResponse(c)
	return &resp, nil
}

// UpdateCompany merges the given fields into the company
func (s *CompanyService) UpdateCompany(ctx context.Context, userID uuid.UUID, input UpdateCompanyInput) (*CompanyResponse, error) {
	c, err := s.Authorize(ctx, userID, input.CompanyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != c.Name {
		exists, err := s.companyRepo.ExistsByName(ctx, strings.TrimSpace(*input.Name))
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, duplicateName(*input.Name)
		}
	}

	if err := c.Apply(company.Update{
		Name:        input.Name,
		DisplayName: input.DisplayName,
		Description: input.Description,
		IsActive:    input.IsActive,
	}); err != nil {
		return nil, err
	}
	if err := s.companyRepo.Update(ctx, c); err != nil {
		if shared.IsConflict(err) {
			return nil, duplicateName(c.Name)
		}
		return nil, err
	}

	resp := ToCompanyResponse(c)
	return &resp, nil
}

// ArchiveCompany hides the company from listings and keeps its data
func (s *CompanyService) ArchiveCompany(ctx context.Context, userID uuid.UUID, input CompanyIDInput) (*CompanyResponse, error) {
	c, err := s.Authorize(ctx, userID, input.CompanyID)
	if err != nil {
		return nil, err
	}
	c.Archive()
	if err := s.companyRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Company archived", zap.String("company_id", c.ID.String()))
	resp := ToCompanyResponse(c)
	return &resp, nil
}

// DeleteCompany removes a company that owns no data
func (s *CompanyService) DeleteCompany(ctx context.Context, userID uuid.UUID, input CompanyIDInput) error {
	c, err := s.Authorize(ctx, userID, input.CompanyID)
	if err != nil {
		return err
	}

	counts, err := s.counter.CompanyRowCounts(ctx, c.ID)
	if err != nil {
		return err
	}
	if total := sumCounts(counts); total > 0 {
		return shared.NewDomainError(shared.CodeBadRequest,
			"Company still has data; archive it or remove its data before deleting")
	}
	if err := s.companyRepo.Delete(ctx, c.ID); err != nil {
		return err
	}

	s.logger.Info("Company deleted", zap.String("company_id", c.ID.String()))
	return nil
}

// GetCompanyStats returns the row count of every company-scoped table
func (s *CompanyService) GetCompanyStats(ctx context.Context, userID uuid.UUID, input CompanyIDInput) (*CompanyStatsResponse, error) {
	c, err := s.Authorize(ctx, userID, input.CompanyID)
	if err != nil {
		return nil, err
	}
	counts, err := s.counter.CompanyRowCounts(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &CompanyStatsResponse{CompanyID: c.ID, Counts: counts, Total: sumCounts(counts)}, nil
}

// GetCommonControl returns the saved settings, or the defaults when none were saved
func (s *CompanyService) GetCommonControl(ctx context.Context, userID uuid.UUID, input CompanyIDInput) (*CommonControlResponse, error) {
	if _, err := s.Authorize(ctx, userID, input.CompanyID); err != nil {
		return nil, err
	}
	cc, err := s.loadCommonControl(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	resp := ToCommonControlResponse(cc)
	return &resp, nil
}

// UpdateCommonControl replaces the company's settings. Omitted options take their defaults.
func (s *CompanyService) UpdateCommonControl(ctx context.Context, userID uuid.UUID, input CommonControlInput) (*CommonControlResponse, error) {
	if _, err := s.Authorize(ctx, userID, input.CompanyID); err != nil {
		return nil, err
	}

	cc, err := commonControlFromInput(input)
	if err != nil {
		return nil, err
	}
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	if err := s.controlRepo.Replace(ctx, cc); err != nil {
		return nil, err
	}

	s.logger.Info("Common control updated", zap.String("company_id", input.CompanyID.String()))
	resp := ToCommonControlResponse(cc)
	return &resp, nil
}

func (s *CompanyService) loadCommonControl(ctx context.Context, companyID uuid.UUID) (*company.CommonControl, error) {
	cc, err := s.controlRepo.FindByCompany(ctx, companyID)
	if err != nil {
		if shared.IsNotFound(err) {
			return company.DefaultCommonControl(companyID), nil
		}
		return nil, err
	}
	return cc, nil
}

func commonControlFromInput(in CommonControlInput) (*company.CommonControl, error) {
	start, err := ParseDate("Financial year start", in.FinancialYearStart)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate("Financial year end", in.FinancialYearEnd)
	if err != nil {
		return nil, err
	}

	cc := company.NewCommonControl(in.CompanyID)
	cc.EntityName = strings.TrimSpace(in.EntityName)
	cc.Address = strings.TrimSpace(in.Address)
	cc.CINNumber = in.CINNumber
	cc.FinancialYearStart = start
	cc.FinancialYearEnd = end
	setString(&cc.Currency, in.Currency)
	setString(&cc.Units, in.Units)
	setString(&cc.NumbersFormat, in.NumbersFormat)
	setString(&cc.NegativeColor, in.NegativeColor)
	setString(&cc.DefaultFont, in.DefaultFont)
	if in.DefaultFontSize != 0 {
		cc.DefaultFontSize = in.DefaultFontSize
	}

	setBool(&cc.ShowVarianceAnalysis, in.ShowVarianceAnalysis)
	setBool(&cc.ShowGrowthRates, in.ShowGrowthRates)
	setBool(&cc.ShowTrendIndicators, in.ShowTrendIndicators)
	setInt(&cc.VarianceThreshold, in.VarianceThreshold)
	setString(&cc.ComparisonLayout, in.ComparisonLayout)

	setBool(&cc.IncludeComplianceIndicators, in.IncludeComplianceIndicators)
	setBool(&cc.ShowNoteNumbers, in.ShowNoteNumbers)
	setBool(&cc.IncludeSummaryStats, in.IncludeSummaryStats)
	setString(&cc.ReportHeaderStyle, in.ReportHeaderStyle)
	setString(&cc.PageOrientation, in.PageOrientation)
	setBool(&cc.IncludeSignatureSection, in.IncludeSignatureSection)

	setInt(&cc.RoundingPrecision, in.RoundingPrecision)
	setString(&cc.ZeroDisplayMode, in.ZeroDisplayMode)
	setBool(&cc.IncludeComparativeAnalysis, in.IncludeComparativeAnalysis)
	setBool(&cc.AutoGenerateExplanations, in.AutoGenerateExplanations)
	return cc, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp
func ParseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, shared.NewDomainError(shared.CodeValidation, field+" must be a date (YYYY-MM-DD)")
}

func duplicateName(name string) error {
	return shared.NewDomainError(shared.CodeConflict, "Company with name '"+strings.TrimSpace(name)+"' already exists")
}

func sumCounts(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
