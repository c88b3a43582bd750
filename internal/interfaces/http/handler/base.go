package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/finstatements/backend/internal/domain/company"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/logger"
	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/finstatements/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InputParam is the query parameter carrying the JSON input of GET queries
const InputParam = "input"

// CompanyAuthorizer checks that a user owns a company
type CompanyAuthorizer interface {
	Authorize(ctx context.Context, userID, companyID uuid.UUID) (*company.Company, error)
}

// BaseHandler provides input binding and the response envelope
type BaseHandler struct {
	companies CompanyAuthorizer
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response for code, deriving the status from it
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	middleware.AbortWithError(c, code, message)
}

// ValidationError sends a VALIDATION_ERROR response with field details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.Set(middleware.ErrorCodeKey, dto.ErrCodeValidation)
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		middleware.GetRequestID(c),
		details,
	))
}

// HandleError converts domain errors to responses. Anything else is logged
// and reported as an internal error with a generic message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == shared.CodeInternal {
			logger.GetGinLogger(c).Error("Procedure failed", zap.String("procedure", middleware.ProcedureName(c)), zap.Error(err))
		}
		h.Error(c, domainErr.Code, domainErr.Message)
		return
	}
	logger.GetGinLogger(c).Error("Procedure failed", zap.String("procedure", middleware.ProcedureName(c)), zap.Error(err))
	h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred")
}

// rawInput returns the JSON input of the call: the input query parameter of
// a GET, otherwise the request body. A missing input reads as {}.
func (h *BaseHandler) rawInput(c *gin.Context) (json.RawMessage, bool) {
	var raw []byte
	if c.Request.Method == http.MethodGet {
		raw = []byte(c.Query(InputParam))
	} else if c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.Error(c, dto.ErrCodePayloadTooLarge, "Request body exceeds maximum allowed size")
				return nil, false
			}
			h.Error(c, dto.ErrCodeParse, "Failed to read request body")
			return nil, false
		}
		raw = body
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if !json.Valid(raw) {
		h.Error(c, dto.ErrCodeParse, "Input is not valid JSON")
		return nil, false
	}
	return raw, true
}

// bindInput decodes the call input into dst and validates its binding tags
func (h *BaseHandler) bindInput(c *gin.Context, dst any) bool {
	raw, ok := h.rawInput(c)
	if !ok {
		return false
	}
	return h.decode(c, raw, dst)
}

func (h *BaseHandler) decode(c *gin.Context, raw json.RawMessage, dst any) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			h.ValidationError(c, []dto.ValidationDetail{{Field: typeErr.Field, Message: "Invalid value type"}})
			return false
		}
		h.Error(c, dto.ErrCodeValidation, "Invalid input: "+err.Error())
		return false
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		if details := middleware.ValidationDetails(err); details != nil {
			h.ValidationError(c, details)
			return false
		}
		h.Error(c, dto.ErrCodeValidation, err.Error())
		return false
	}
	return true
}

// userID returns the authenticated caller. It answers UNAUTHORIZED when the
// procedure ran without a session.
func (h *BaseHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetAuthUserID(c)
	if !ok {
		h.Error(c, dto.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return id, true
}

// authorize checks the caller owns companyID and scopes the request logger to it
func (h *BaseHandler) authorize(c *gin.Context, companyID uuid.UUID) bool {
	userID, ok := h.userID(c)
	if !ok {
		return false
	}
	if _, err := h.companies.Authorize(c.Request.Context(), userID, companyID); err != nil {
		h.HandleError(c, err)
		return false
	}
	ctx := c.Request.Context()
	ctx, _ = logger.WithCompanyID(ctx, logger.FromContext(ctx), companyID.String())
	c.Request = c.Request.WithContext(ctx)
	return true
}

// companyScope is the part of every company-scoped input used for authorization
type companyScope struct {
	CompanyID uuid.UUID `json:"companyId" binding:"required"`
}

// bindScoped decodes a company-scoped input and authorizes the caller for it
func bindScoped[T any](h *BaseHandler, c *gin.Context, companyOf func(*T) uuid.UUID) (*T, bool) {
	in := new(T)
	if !h.bindInput(c, in) {
		return nil, false
	}
	if !h.authorize(c, companyOf(in)) {
		return nil, false
	}
	return in, true
}
