package handler

import (
	"github.com/finstatements/backend/internal/application/report"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler serves the generated statements and their export
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(companies CompanyAuthorizer, reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   BaseHandler{companies: companies},
		reportService: reportService,
	}
}

// Procedures implements router.Registrar
func (h *ReportHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "generateBalanceSheet", Kind: router.Query, Handler: h.GenerateBalanceSheet},
		{Name: "generateProfitAndLoss", Kind: router.Query, Handler: h.GenerateProfitAndLoss},
		{Name: "generateCashFlow", Kind: router.Query, Handler: h.GenerateCashFlow},
		{Name: "generateRatioAnalysis", Kind: router.Mutation, Handler: h.GenerateRatioAnalysis},
		{Name: "exportFinancialStatements", Kind: router.Mutation, Handler: h.ExportFinancialStatements},
	}
}

func companyOfReport(in *report.CompanyInput) uuid.UUID { return in.CompanyID }

// GenerateBalanceSheet builds the balance sheet from the trial balance
//
// @ID           generateBalanceSheet
// @Summary      Builds the balance sheet from the trial balance
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      report.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /generateBalanceSheet [post]
func (h *ReportHandler) GenerateBalanceSheet(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, companyOfReport)
	if !ok {
		return
	}
	sheet, err := h.reportService.GenerateBalanceSheet(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sheet)
}

// GenerateProfitAndLoss builds the statement of profit and loss
//
// @ID           generateProfitAndLoss
// @Summary      Builds the statement of profit and loss
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      report.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /generateProfitAndLoss [post]
func (h *ReportHandler) GenerateProfitAndLoss(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, companyOfReport)
	if !ok {
		return
	}
	pl, err := h.reportService.GenerateProfitAndLoss(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pl)
}

// GenerateCashFlow builds the indirect method cash flow statement
//
// @ID           generateCashFlow
// @Summary      Builds the indirect method cash flow statement
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      report.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /generateCashFlow [post]
func (h *ReportHandler) GenerateCashFlow(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, companyOfReport)
	if !ok {
		return
	}
	cf, err := h.reportService.GenerateCashFlow(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cf)
}

// GenerateRatioAnalysis computes the key ratios, optionally saving them
//
// @ID           generateRatioAnalysis
// @Summary      Computes the key ratios, optionally saving them
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      report.RatioInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /generateRatioAnalysis [post]
func (h *ReportHandler) GenerateRatioAnalysis(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *report.RatioInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	ratios, err := h.reportService.GenerateRatioAnalysis(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ratios)
}

// ExportFinancialStatements renders a statement and returns a download link
//
// @ID           exportFinancialStatements
// @Summary      Renders a statement and returns a download link
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      report.ExportInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /exportFinancialStatements [post]
func (h *ReportHandler) ExportFinancialStatements(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *report.ExportInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.reportService.ExportFinancialStatements(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
