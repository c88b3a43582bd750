package handler

import (
	"github.com/finstatements/backend/internal/application/company"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// CompanyHandler serves company and common control procedures
type CompanyHandler struct {
	BaseHandler
	companyService *company.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *company.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    BaseHandler{companies: companyService},
		companyService: companyService,
	}
}

// Procedures implements router.Registrar
func (h *CompanyHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "getCompanies", Kind: router.Query, Handler: h.GetCompanies},
		{Name: "getCompany", Kind: router.Query, Handler: h.GetCompany},
		{Name: "createCompany", Kind: router.Mutation, Handler: h.CreateCompany},
		{Name: "updateCompany", Kind: router.Mutation, Handler: h.UpdateCompany},
		{Name: "archiveCompany", Kind: router.Mutation, Handler: h.ArchiveCompany},
		{Name: "deleteCompany", Kind: router.Mutation, Handler: h.DeleteCompany},
		{Name: "getCompanyStats", Kind: router.Query, Handler: h.GetCompanyStats},
		{Name: "getCommonControl", Kind: router.Query, Handler: h.GetCommonControl},
		{Name: "updateCommonControl", Kind: router.Mutation, Handler: h.UpdateCommonControl},
	}
}

// GetCompanies lists the caller's active companies
//
// @ID           getCompanies
// @Summary      Lists the caller's active companies
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getCompanies [post]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	companies, err := h.companyService.GetCompanies(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companies)
}

// GetCompany returns one company of the caller
//
// @ID           getCompany
// @Summary      Returns one company of the caller
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CompanyIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getCompany [post]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CompanyIDInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.GetCompany(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// CreateCompany creates a company owned by the caller
//
// @ID           createCompany
// @Summary      Creates a company owned by the caller
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CreateCompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /createCompany [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CreateCompanyInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.CreateCompany(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateCompany merges the given fields into a company
//
// @ID           updateCompany
// @Summary      Merges the given fields into a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.UpdateCompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateCompany [post]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.UpdateCompanyInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.UpdateCompany(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ArchiveCompany hides a company from the list without deleting its data
//
// @ID           archiveCompany
// @Summary      Hides a company from the list without deleting its data
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CompanyIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /archiveCompany [post]
func (h *CompanyHandler) ArchiveCompany(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CompanyIDInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.ArchiveCompany(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteCompany removes a company and everything scoped to it
//
// @ID           deleteCompany
// @Summary      Removes a company and everything scoped to it
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CompanyIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /deleteCompany [post]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CompanyIDInput
	if !h.bindInput(c, &input) {
		return
	}
	if err := h.companyService.DeleteCompany(c.Request.Context(), userID, input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// GetCompanyStats counts the rows of every scoped table
//
// @ID           getCompanyStats
// @Summary      Counts the rows of every scoped table
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CompanyIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getCompanyStats [post]
func (h *CompanyHandler) GetCompanyStats(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CompanyIDInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.GetCompanyStats(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetCommonControl returns the entity settings, or defaults when unset
//
// @ID           getCommonControl
// @Summary      Returns the entity settings, or defaults when unset
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CompanyIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getCommonControl [post]
func (h *CompanyHandler) GetCommonControl(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CompanyIDInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.GetCommonControl(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateCommonControl replaces the entity settings
//
// @ID           updateCommonControl
// @Summary      Replaces the entity settings
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      company.CommonControlInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateCommonControl [post]
func (h *CompanyHandler) UpdateCommonControl(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input company.CommonControlInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.companyService.UpdateCommonControl(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
