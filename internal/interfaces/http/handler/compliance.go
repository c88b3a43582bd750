package handler

import (
	"github.com/finstatements/backend/internal/application/compliance"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplianceHandler serves the read-only compliance checks
type ComplianceHandler struct {
	BaseHandler
	complianceService *compliance.ComplianceService
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(companies CompanyAuthorizer, complianceService *compliance.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{
		BaseHandler:       BaseHandler{companies: companies},
		complianceService: complianceService,
	}
}

// Procedures implements router.Registrar
func (h *ComplianceHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "debugCompliance", Kind: router.Query, Handler: h.DebugCompliance},
		{Name: "validateScheduleIIICompliance", Kind: router.Query, Handler: h.ValidateScheduleIIICompliance},
		{Name: "validateNoteCompliance", Kind: router.Query, Handler: h.ValidateNoteCompliance},
		{Name: "validateFinancialStatementFormat", Kind: router.Query, Handler: h.ValidateFinancialStatementFormat},
	}
}

// DebugCompliance runs the diagnostic battery for a company
//
// @ID           debugCompliance
// @Summary      Runs the diagnostic battery for a company
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      compliance.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /debugCompliance [post]
func (h *ComplianceHandler) DebugCompliance(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *compliance.CompanyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.complianceService.DebugCompliance(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ValidateScheduleIIICompliance scores the company's statements
//
// @ID           validateScheduleIIICompliance
// @Summary      Scores the company's statements
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      compliance.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /validateScheduleIIICompliance [post]
func (h *ComplianceHandler) ValidateScheduleIIICompliance(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *compliance.CompanyInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	report, err := h.complianceService.ValidateScheduleIIICompliance(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// ValidateNoteCompliance checks the disclosures behind one note
//
// @ID           validateNoteCompliance
// @Summary      Checks the disclosures behind one note
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      compliance.NoteComplianceInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /validateNoteCompliance [post]
func (h *ComplianceHandler) ValidateNoteCompliance(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *compliance.NoteComplianceInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.complianceService.ValidateNoteCompliance(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ValidateFinancialStatementFormat checks the line items of one statement
//
// @ID           validateFinancialStatementFormat
// @Summary      Checks the line items of one statement
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      compliance.StatementFormatInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /validateFinancialStatementFormat [post]
func (h *ComplianceHandler) ValidateFinancialStatementFormat(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *compliance.StatementFormatInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.complianceService.ValidateFinancialStatementFormat(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
