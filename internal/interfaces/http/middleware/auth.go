package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/finstatements/backend/internal/domain/identity"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/logger"
	"github.com/finstatements/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth context keys
const (
	AuthUserKey   = "auth_user"
	AuthUserIDKey = "auth_user_id"
	AuthTokenKey  = "auth_token"
	BearerPrefix  = "Bearer "
)

// Authenticator resolves a session token to its active user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*identity.User, error)
}

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	Authenticator Authenticator
	// PublicProcedures run without a session. They may still read the token.
	PublicProcedures []string
	Logger           *zap.Logger
}

// DefaultPublicProcedures are the procedures callable without a session:
// account entry points and the license checks made before login
var DefaultPublicProcedures = []string{
	"register",
	"login",
	"logout",
	"getCurrentUser",
	"validateLicense",
	"getLicenseInfo",
	"updateLicenseUsage",
}

// Auth requires a valid session for every procedure outside
// PublicProcedures. Non-RPC paths such as /health pass through.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	public := newProcedureSet(cfg.PublicProcedures)
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		token := BearerToken(c)
		if token != "" {
			c.Set(AuthTokenKey, token)
		}

		procedure := ProcedureName(c)
		if procedure == "" || public.has(procedure) {
			c.Next()
			return
		}

		if token == "" {
			AbortWithError(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		user, err := cfg.Authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) {
				log.Debug("Session rejected",
					zap.String("procedure", procedure),
					zap.String("reason", domainErr.Message))
				AbortWithError(c, domainErr.Code, domainErr.Message)
				return
			}
			log.Error("Session lookup failed", zap.String("procedure", procedure), zap.Error(err))
			AbortWithError(c, dto.ErrCodeInternal, "An unexpected error occurred")
			return
		}

		c.Set(AuthUserKey, user)
		c.Set(AuthUserIDKey, user.ID)

		ctx := c.Request.Context()
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), user.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// BearerToken extracts the token of an "Authorization: Bearer" header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, BearerPrefix)
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetAuthUser returns the authenticated user, or nil on public procedures
func GetAuthUser(c *gin.Context) *identity.User {
	if v, ok := c.Get(AuthUserKey); ok {
		if u, ok := v.(*identity.User); ok {
			return u
		}
	}
	return nil
}

// GetAuthUserID returns the authenticated user's ID
func GetAuthUserID(c *gin.Context) (uuid.UUID, bool) {
	if v, ok := c.Get(AuthUserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetAuthToken returns the bearer token of the request, if any
func GetAuthToken(c *gin.Context) string {
	return c.GetString(AuthTokenKey)
}
