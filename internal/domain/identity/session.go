package identity

import (
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long a session stays valid after login
const DefaultSessionTTL = 30 * 24 * time.Hour

// Session binds an issued token to a user until it expires or is logged out
type Session struct {
	shared.BaseEntity
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
}

// NewSession creates a session for token valid for ttl
func NewSession(userID uuid.UUID, token string, ttl time.Duration) (*Session, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Session requires a user")
	}
	if token == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Session requires a token")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	base := shared.NewBaseEntity()
	return &Session{
		BaseEntity: base,
		UserID:     userID,
		Token:      token,
		ExpiresAt:  base.CreatedAt.Add(ttl),
	}, nil
}

// IsExpired reports whether the session is past its expiry at now
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
