package handler

import (
	"github.com/finstatements/backend/internal/application/identity"
	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/finstatements/backend/internal/interfaces/http/middleware"
	"github.com/finstatements/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and session procedures
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	userService *identity.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, userService *identity.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Procedures implements router.Registrar
func (h *AuthHandler) Procedures() []router.Procedure {
	return []router.Procedure{
		{Name: "register", Kind: router.Mutation, Handler: h.Register},
		{Name: "login", Kind: router.Mutation, Handler: h.Login},
		{Name: "logout", Kind: router.Mutation, Handler: h.Logout},
		{Name: "getCurrentUser", Kind: router.Query, Handler: h.GetCurrentUser},
		{Name: "changePassword", Kind: router.Mutation, Handler: h.ChangePassword},
		{Name: "setUserActive", Kind: router.Mutation, Handler: h.SetUserActive},
	}
}

// Register creates an account and signs it in
//
// @ID           register
// @Summary      Creates an account and signs it in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      identity.RegisterInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input identity.RegisterInput
	if !h.bindInput(c, &input) {
		return
	}
	result, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Login opens a new session
//
// @ID           login
// @Summary      Opens a new session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      identity.LoginInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input identity.LoginInput
	if !h.bindInput(c, &input) {
		return
	}
	input.IP = c.ClientIP()
	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Logout closes the session of the input token or, failing that, the bearer token
//
// @ID           logout
// @Summary      Closes the session of the input token or, failing that, the bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      identity.TokenInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	input, ok := h.bindToken(c)
	if !ok {
		return
	}
	result, err := h.authService.Logout(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetCurrentUser returns the user of a session token
//
// @ID           getCurrentUser
// @Summary      Returns the user of a session token
// @Description  Also callable with GET and a JSON encoded input query parameter.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      identity.TokenInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Router       /getCurrentUser [post]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	input, ok := h.bindToken(c)
	if !ok {
		return
	}
	user, err := h.authService.GetCurrentUser(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// ChangePassword replaces the caller's password
//
// @ID           changePassword
// @Summary      Replaces the caller's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      identity.ChangePasswordInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /changePassword [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input identity.ChangePasswordInput
	if !h.bindInput(c, &input) {
		return
	}
	if err := h.userService.ChangePassword(c.Request.Context(), userID, input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"success": true})
}

// SetUserActive enables or disables an account; administrators only
//
// @ID           setUserActive
// @Summary      Enables or disables an account; administrators only
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input  body      identity.SetUserActiveInput  true  "Procedure input"
// @Success      200    {object}  dto.Response
// @Failure      400    {object}  dto.Response
// @Failure      401    {object}  dto.Response
// @Router       /setUserActive [post]
func (h *AuthHandler) SetUserActive(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var input identity.SetUserActiveInput
	if !h.bindInput(c, &input) {
		return
	}
	user, err := h.userService.SetUserActive(c.Request.Context(), userID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

func (h *AuthHandler) bindToken(c *gin.Context) (identity.TokenInput, bool) {
	var input identity.TokenInput
	if !h.bindInput(c, &input) {
		return input, false
	}
	if input.Token == "" {
		input.Token = middleware.GetAuthToken(c)
	}
	if input.Token == "" {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
		return input, false
	}
	return input, true
}
