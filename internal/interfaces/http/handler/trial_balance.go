package handler

import (
	"github.com/finstatements/backend/internal/application/ledger"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TrialBalanceHandler serves the trial balance of a company
type TrialBalanceHandler struct {
	BaseHandler
	trialBalanceService *ledger.TrialBalanceService
}

// NewTrialBalanceHandler creates a new trial balance handler
func NewTrialBalanceHandler(companies CompanyAuthorizer, trialBalanceService *ledger.TrialBalanceService) *TrialBalanceHandler {
	return &TrialBalanceHandler{
		BaseHandler:         BaseHandler{companies: companies},
		trialBalanceService: trialBalanceService,
	}
}

// Procedures implements router.Registrar
func (h *TrialBalanceHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "getTrialBalance", Kind: router.Query, Handler: h.GetTrialBalance},
		{Name: "uploadTrialBalance", Kind: router.Mutation, Handler: h.UploadTrialBalance},
		{Name: "updateTrialBalanceEntry", Kind: router.Mutation, Handler: h.UpdateTrialBalanceEntry},
		{Name: "deleteTrialBalanceEntry", Kind: router.Mutation, Handler: h.DeleteTrialBalanceEntry},
		{Name: "getTrialBalanceUploadUrl", Kind: router.Mutation, Handler: h.GetTrialBalanceUploadURL},
		{Name: "processTrialBalanceFile", Kind: router.Mutation, Handler: h.ProcessTrialBalanceFile},
		{Name: "importTrialBalanceCsv", Kind: router.Mutation, Handler: h.ImportTrialBalanceCSV},
		{Name: "checkTrialBalanceReconciliation", Kind: router.Query, Handler: h.CheckTrialBalanceReconciliation},
	}
}

// GetTrialBalance lists the company's trial balance lines
//
// @ID           getTrialBalance
// @Summary      Lists the company's trial balance lines
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      companyScope  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getTrialBalance [post]
func (h *TrialBalanceHandler) GetTrialBalance(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *companyScope) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	lines, err := h.trialBalanceService.GetTrialBalance(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// UploadTrialBalance replaces every line of the company's trial balance
//
// @ID           uploadTrialBalance
// @Summary      Replaces every line of the company's trial balance
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      ledger.UploadTrialBalanceInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /uploadTrialBalance [post]
func (h *TrialBalanceHandler) UploadTrialBalance(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *ledger.UploadTrialBalanceInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	lines, err := h.trialBalanceService.UploadTrialBalance(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lines)
}

// UpdateTrialBalanceEntry replaces one line
//
// @ID           updateTrialBalanceEntry
// @Summary      Replaces one line
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      ledger.UpdateTrialBalanceEntryInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateTrialBalanceEntry [post]
func (h *TrialBalanceHandler) UpdateTrialBalanceEntry(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *ledger.UpdateTrialBalanceEntryInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	line, err := h.trialBalanceService.UpdateTrialBalanceEntry(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, line)
}

// DeleteTrialBalanceEntry removes one line
//
// @ID           deleteTrialBalanceEntry
// @Summary      Removes one line
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      ledger.EntryIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /deleteTrialBalanceEntry [post]
func (h *TrialBalanceHandler) DeleteTrialBalanceEntry(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *ledger.EntryIDInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	if err := h.trialBalanceService.DeleteTrialBalanceEntry(c.Request.Context(), *in); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// GetTrialBalanceUploadURL presigns an upload of a trial balance file
//
// @ID           getTrialBalanceUploadUrl
// @Summary      Presigns an upload of a trial balance file
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      ledger.UploadURLInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getTrialBalanceUploadUrl [post]
func (h *TrialBalanceHandler) GetTrialBalanceUploadURL(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *ledger.UploadURLInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.trialBalanceService.GetTrialBalanceUploadURL(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ProcessTrialBalanceFile imports a previously uploaded CSV file
//
// @ID           processTrialBalanceFile
// @Summary      Imports a previously uploaded CSV file
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      ledger.ProcessFileInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /processTrialBalanceFile [post]
func (h *TrialBalanceHandler) ProcessTrialBalanceFile(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *ledger.ProcessFileInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.trialBalanceService.ProcessTrialBalanceFile(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ImportTrialBalanceCSV imports CSV text sent with the call
//
// @ID           importTrialBalanceCsv
// @Summary      Imports CSV text sent with the call
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      ledger.ImportCSVInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /importTrialBalanceCsv [post]
func (h *TrialBalanceHandler) ImportTrialBalanceCSV(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *ledger.ImportCSVInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.trialBalanceService.ImportTrialBalanceCSV(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CheckTrialBalanceReconciliation compares the trial balance with the party ledgers
//
// @ID           checkTrialBalanceReconciliation
// @Summary      Compares the trial balance with the party ledgers
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         trial-balance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      companyScope  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /checkTrialBalanceReconciliation [post]
func (h *TrialBalanceHandler) CheckTrialBalanceReconciliation(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *companyScope) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	report, err := h.trialBalanceService.CheckTrialBalanceReconciliation(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}
