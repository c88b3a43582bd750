package handler

import (
	"github.com/finstatements/backend/internal/application/license"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// LicenseHandler serves license checks. Its procedures are public.
type LicenseHandler struct {
	BaseHandler
	licenseService *license.LicenseService
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(licenseService *license.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService}
}

// Procedures implements router.Registrar
func (h *LicenseHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "validateLicense", Kind: router.Mutation, Handler: h.ValidateLicense},
		{Name: "getLicenseInfo", Kind: router.Query, Handler: h.GetLicenseInfo},
		{Name: "updateLicenseUsage", Kind: router.Mutation, Handler: h.UpdateLicenseUsage},
	}
}

// ValidateLicense checks a key, taking the caller's address when none is given
//
// @ID           validateLicense
// @Summary      Checks a key, taking the caller's address when none is given
// @Tags         license
// @Accept       json
// @Produce      json
// @Param        input  body      license.ValidateInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /validateLicense [post]
func (h *LicenseHandler) ValidateLicense(c *gin.Context) {
	var input license.ValidateInput
	if !h.bindInput(c, &input) {
		return
	}
	if input.ClientIP == "" {
		input.ClientIP = c.ClientIP()
	}
	result, err := h.licenseService.ValidateLicense(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetLicenseInfo describes a license
//
// @ID           getLicenseInfo
// @Summary      Describes a license
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         license
// @Accept       json
// @Produce      json
// @Param        input  body      license.KeyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /getLicenseInfo [post]
func (h *LicenseHandler) GetLicenseInfo(c *gin.Context) {
	var input license.KeyInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.licenseService.GetLicenseInfo(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateLicenseUsage records the current user and company counts
//
// @ID           updateLicenseUsage
// @Summary      Records the current user and company counts
// @Tags         license
// @Accept       json
// @Produce      json
// @Param        input  body      license.UsageInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /updateLicenseUsage [post]
func (h *LicenseHandler) UpdateLicenseUsage(c *gin.Context) {
	var input license.UsageInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.licenseService.UpdateLicenseUsage(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
