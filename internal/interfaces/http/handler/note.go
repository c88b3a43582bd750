package handler

import (
	"github.com/finstatements/backend/internal/application/note"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler serves note selection and numbering
type NoteHandler struct {
	BaseHandler
	noteService *note.NoteService
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(companies CompanyAuthorizer, noteService *note.NoteService) *NoteHandler {
	return &NoteHandler{
		BaseHandler: BaseHandler{companies: companies},
		noteService: noteService,
	}
}

// Procedures implements router.Registrar
func (h *NoteHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "getNoteSelections", Kind: router.Query, Handler: h.GetNoteSelections},
		{Name: "initializeNoteSelections", Kind: router.Mutation, Handler: h.InitializeNoteSelections},
		{Name: "addNoteSelection", Kind: router.Mutation, Handler: h.AddNoteSelection},
		{Name: "updateNoteSelection", Kind: router.Mutation, Handler: h.UpdateNoteSelection},
		{Name: "updateNoteSelections", Kind: router.Mutation, Handler: h.UpdateNoteSelections},
		{Name: "deleteNoteSelection", Kind: router.Mutation, Handler: h.DeleteNoteSelection},
		{Name: "updateNoteNumbers", Kind: router.Mutation, Handler: h.UpdateNoteNumbers},
	}
}

func companyOfNote(in *note.CompanyInput) uuid.UUID { return in.CompanyID }

// GetNoteSelections lists the company's notes by reference
//
// @ID           getNoteSelections
// @Summary      Lists the company's notes by reference
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /getNoteSelections [post]
func (h *NoteHandler) GetNoteSelections(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, companyOfNote)
	if !ok {
		return
	}
	notes, err := h.noteService.GetNoteSelections(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notes)
}

// InitializeNoteSelections replaces the company's notes with the standard list
//
// @ID           initializeNoteSelections
// @Summary      Replaces the company's notes with the standard list
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /initializeNoteSelections [post]
func (h *NoteHandler) InitializeNoteSelections(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, companyOfNote)
	if !ok {
		return
	}
	notes, err := h.noteService.InitializeNoteSelections(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notes)
}

// AddNoteSelection adds a user note
//
// @ID           addNoteSelection
// @Summary      Adds a user note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.NoteInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /addNoteSelection [post]
func (h *NoteHandler) AddNoteSelection(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *note.NoteInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	n, err := h.noteService.AddNoteSelection(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// UpdateNoteSelection revises one note
//
// @ID           updateNoteSelection
// @Summary      Revises one note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.UpdateNoteInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateNoteSelection [post]
func (h *NoteHandler) UpdateNoteSelection(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *note.UpdateNoteInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	n, err := h.noteService.UpdateNoteSelection(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, n)
}

// UpdateNoteSelections applies user selections by note reference
//
// @ID           updateNoteSelections
// @Summary      Applies user selections by note reference
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.BulkSelectionInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateNoteSelections [post]
func (h *NoteHandler) UpdateNoteSelections(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *note.BulkSelectionInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	result, err := h.noteService.UpdateNoteSelections(c.Request.Context(), *in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteNoteSelection removes a user note
//
// @ID           deleteNoteSelection
// @Summary      Removes a user note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.NoteIDInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /deleteNoteSelection [post]
func (h *NoteHandler) DeleteNoteSelection(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, func(in *note.NoteIDInput) uuid.UUID { return in.CompanyID })
	if !ok {
		return
	}
	if err := h.noteService.DeleteNoteSelection(c.Request.Context(), *in); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// UpdateNoteNumbers renumbers the finally selected notes
//
// @ID           updateNoteNumbers
// @Summary      Renumbers the finally selected notes
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      note.CompanyInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /updateNoteNumbers [post]
func (h *NoteHandler) UpdateNoteNumbers(c *gin.Context) {
	in, ok := bindScoped(&h.BaseHandler, c, companyOfNote)
	if !ok {
		return
	}
	result, err := h.noteService.UpdateNoteNumbers(c.Request.Context(), in.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
