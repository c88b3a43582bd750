package handler

import (
	"github.com/finstatements/backend/internal/application/taxonomy"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves the global major head, minor head and grouping lists
type TaxonomyHandler struct {
	BaseHandler
	taxonomyService *taxonomy.TaxonomyService
}

// NewTaxonomyHandler creates a new taxonomy handler
func NewTaxonomyHandler(taxonomyService *taxonomy.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

// Procedures implements router.Registrar
func (h *TaxonomyHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "getMajorHeads", Kind: router.Query, Handler: h.GetMajorHeads},
		{Name: "addMajorHead", Kind: router.Mutation, Handler: h.AddMajorHead},
		{Name: "updateMajorHead", Kind: router.Mutation, Handler: h.UpdateMajorHead},
		{Name: "deleteMajorHead", Kind: router.Mutation, Handler: h.DeleteMajorHead},
		{Name: "getMinorHeads", Kind: router.Query, Handler: h.GetMinorHeads},
		{Name: "addMinorHead", Kind: router.Mutation, Handler: h.AddMinorHead},
		{Name: "updateMinorHead", Kind: router.Mutation, Handler: h.UpdateMinorHead},
		{Name: "deleteMinorHead", Kind: router.Mutation, Handler: h.DeleteMinorHead},
		{Name: "getGroupings", Kind: router.Query, Handler: h.GetGroupings},
		{Name: "addGrouping", Kind: router.Mutation, Handler: h.AddGrouping},
		{Name: "updateGrouping", Kind: router.Mutation, Handler: h.UpdateGrouping},
		{Name: "deleteGrouping", Kind: router.Mutation, Handler: h.DeleteGrouping},
		{Name: "seedTaxonomy", Kind: router.Mutation, Handler: h.SeedTaxonomy},
	}
}

// GetMajorHeads lists major heads with their minor head and line counts
//
// @ID           getMajorHeads
// @Summary      Lists major heads with their minor head and line counts
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getMajorHeads [post]
func (h *TaxonomyHandler) GetMajorHeads(c *gin.Context) {
	heads, err := h.taxonomyService.GetMajorHeads(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, heads)
}

// AddMajorHead creates a major head
//
// @ID           addMajorHead
// @Summary      Creates a major head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.MajorHeadInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /addMajorHead [post]
func (h *TaxonomyHandler) AddMajorHead(c *gin.Context) {
	var input taxonomy.MajorHeadInput
	if !h.bindInput(c, &input) {
		return
	}
	head, err := h.taxonomyService.AddMajorHead(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, head)
}

// UpdateMajorHead renames or reclassifies a major head
//
// @ID           updateMajorHead
// @Summary      Renames or reclassifies a major head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.MajorHeadInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateMajorHead [post]
func (h *TaxonomyHandler) UpdateMajorHead(c *gin.Context) {
	var input taxonomy.MajorHeadInput
	if !h.bindInput(c, &input) {
		return
	}
	head, err := h.taxonomyService.UpdateMajorHead(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, head)
}

// DeleteMajorHead removes an unused major head
//
// @ID           deleteMajorHead
// @Summary      Removes an unused major head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.IDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /deleteMajorHead [post]
func (h *TaxonomyHandler) DeleteMajorHead(c *gin.Context) {
	var input taxonomy.IDInput
	if !h.bindInput(c, &input) {
		return
	}
	if err := h.taxonomyService.DeleteMajorHead(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// GetMinorHeads lists minor heads, optionally of one major head
//
// @ID           getMinorHeads
// @Summary      Lists minor heads, optionally of one major head
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.MinorHeadFilter  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getMinorHeads [post]
func (h *TaxonomyHandler) GetMinorHeads(c *gin.Context) {
	var filter taxonomy.MinorHeadFilter
	if !h.bindInput(c, &filter) {
		return
	}
	heads, err := h.taxonomyService.GetMinorHeads(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, heads)
}

// AddMinorHead creates a minor head under an existing major head
//
// @ID           addMinorHead
// @Summary      Creates a minor head under an existing major head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.MinorHeadInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /addMinorHead [post]
func (h *TaxonomyHandler) AddMinorHead(c *gin.Context) {
	var input taxonomy.MinorHeadInput
	if !h.bindInput(c, &input) {
		return
	}
	head, err := h.taxonomyService.AddMinorHead(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, head)
}

// UpdateMinorHead renames or moves a minor head
//
// @ID           updateMinorHead
// @Summary      Renames or moves a minor head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.MinorHeadInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateMinorHead [post]
func (h *TaxonomyHandler) UpdateMinorHead(c *gin.Context) {
	var input taxonomy.MinorHeadInput
	if !h.bindInput(c, &input) {
		return
	}
	head, err := h.taxonomyService.UpdateMinorHead(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, head)
}

// DeleteMinorHead removes an unused minor head
//
// @ID           deleteMinorHead
// @Summary      Removes an unused minor head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.IDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /deleteMinorHead [post]
func (h *TaxonomyHandler) DeleteMinorHead(c *gin.Context) {
	var input taxonomy.IDInput
	if !h.bindInput(c, &input) {
		return
	}
	if err := h.taxonomyService.DeleteMinorHead(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// GetGroupings lists groupings, optionally of one minor head
//
// @ID           getGroupings
// @Summary      Lists groupings, optionally of one minor head
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.GroupingFilter  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getGroupings [post]
func (h *TaxonomyHandler) GetGroupings(c *gin.Context) {
	var filter taxonomy.GroupingFilter
	if !h.bindInput(c, &filter) {
		return
	}
	groupings, err := h.taxonomyService.GetGroupings(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, groupings)
}

// AddGrouping creates a grouping under an existing minor head
//
// @ID           addGrouping
// @Summary      Creates a grouping under an existing minor head
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.GroupingInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /addGrouping [post]
func (h *TaxonomyHandler) AddGrouping(c *gin.Context) {
	var input taxonomy.GroupingInput
	if !h.bindInput(c, &input) {
		return
	}
	grouping, err := h.taxonomyService.AddGrouping(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grouping)
}

// UpdateGrouping renames or moves a grouping
//
// @ID           updateGrouping
// @Summary      Renames or moves a grouping
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.GroupingInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateGrouping [post]
func (h *TaxonomyHandler) UpdateGrouping(c *gin.Context) {
	var input taxonomy.GroupingInput
	if !h.bindInput(c, &input) {
		return
	}
	grouping, err := h.taxonomyService.UpdateGrouping(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grouping)
}

// DeleteGrouping removes an unused grouping
//
// @ID           deleteGrouping
// @Summary      Removes an unused grouping
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      taxonomy.IDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /deleteGrouping [post]
func (h *TaxonomyHandler) DeleteGrouping(c *gin.Context) {
	var input taxonomy.IDInput
	if !h.bindInput(c, &input) {
		return
	}
	if err := h.taxonomyService.DeleteGrouping(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// SeedTaxonomy loads the standard Schedule III heads; running it again adds nothing
//
// @ID           seedTaxonomy
// @Summary      Loads the standard Schedule III heads; running it again adds nothing
// @Tags         taxonomy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /seedTaxonomy [post]
func (h *TaxonomyHandler) SeedTaxonomy(c *gin.Context) {
	result, err := h.taxonomyService.SeedTaxonomy(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
