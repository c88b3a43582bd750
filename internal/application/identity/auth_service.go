// Package identity implements registration, login and session resolution.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/finstatements/backend/internal/domain/identity"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/finstatements/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errInvalidCredentials = shared.NewDomainError(shared.CodeUnauthorized, "Invalid email or password")
	errInvalidSession     = shared.NewDomainError(shared.CodeUnauthorized, "Invalid or expired session")
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    identity.UserRepository
	sessionRepo identity.SessionRepository
	txManager   shared.TxManager
	jwtService  *auth.JWTService
	cache       auth.SessionCache
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	sessionRepo identity.SessionRepository,
	txManager shared.TxManager,
	jwtService *auth.JWTService,
	cache auth.SessionCache,
	logger *zap.Logger,
) *AuthService {
	if cache == nil {
		cache = auth.NewInMemorySessionCache()
	}
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		jwtService:  jwtService,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// Register creates a user and an initial session
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	user, err := identity.NewUser(input.Email, input.Password, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeConflict, "User with this email already exists")
	}

	var result *AuthResult
	err = s.txManager.InTx(ctx, func(ctx context.Context) error {
		if err := s.userRepo.Create(ctx, user); err != nil {
			if shared.IsConflict(err) {
				return shared.NewDomainError(shared.CodeConflict, "User with this email already exists")
			}
			return err
		}
		result, err = s.openSession(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))
	return result, nil
}

// Login authenticates a user by email and password and issues a new session
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := identity.NormalizeEmail(input.Email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if shared.IsNotFound(err) {
			s.logger.Warn("Login for unknown email", zap.String("email", email), zap.String("ip", input.IP))
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		s.logger.Warn("Login for deactivated account", zap.String("user_id", user.ID.String()))
		return nil, errInvalidCredentials
	}
	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()), zap.String("ip", input.IP))
		return nil, errInvalidCredentials
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return result, nil
}

// Logout deletes every session carrying the token
func (s *AuthService) Logout(ctx context.Context, input TokenInput) (*LogoutResult, error) {
	if input.Token == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Token is required")
	}

	closed, err := s.sessionRepo.DeleteByToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Evict(ctx, input.Token); err != nil {
		s.logger.Warn("Failed to evict cached session", zap.Error(err))
	}

	s.logger.Debug("Sessions closed", zap.Int64("count", closed))
	return &LogoutResult{Success: true, Closed: closed}, nil
}

// GetCurrentUser resolves the user behind a session token
func (s *AuthService) GetCurrentUser(ctx context.Context, input TokenInput) (*UserInfo, error) {
	user, err := s.Authenticate(ctx, input.Token)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(user)
	return &info, nil
}

// Authenticate verifies the token signature and expiry, then requires an
// unexpired session row and an active user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*identity.User, error) {
	if token == "" {
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Authentication required")
	}

	claims, err := s.jwtService.Validate(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, shared.NewDomainError(shared.CodeUnauthorized, "Session has expired")
		}
		return nil, errInvalidSession
	}
	claimedID, err := claims.GetUserUUID()
	if err != nil {
		return nil, errInvalidSession
	}

	userID, err := s.resolveSession(ctx, token, claims)
	if err != nil {
		return nil, err
	}
	if userID != claimedID {
		s.logger.Warn("Session user does not match token claims", zap.String("claimed", claimedID.String()))
		return nil, errInvalidSession
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, errInvalidSession
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, shared.NewDomainError(shared.CodeUnauthorized, "Account has been deactivated")
	}
	return user, nil
}

// EnsureAdmin creates the administrator account when none exists yet
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if password == "" {
		return nil
	}

	exists, err := s.userRepo.ExistsByRole(ctx, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	admin, err := identity.NewAdmin(email, password)
	if err != nil {
		return err
	}
	taken, err := s.userRepo.ExistsByEmail(ctx, admin.Email)
	if err != nil {
		return err
	}
	if taken {
		s.logger.Warn("Admin email already belongs to a standard user", zap.String("email", admin.Email))
		return nil
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Administrator account created", zap.String("email", admin.Email))
	return nil
}

// PurgeExpiredSessions removes session rows past their expiry
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("Expired sessions purged", zap.Int64("count", n))
	}
	return n, nil
}

func (s *AuthService) openSession(ctx context.Context, user *identity.User) (*AuthResult, error) {
	issued, err := s.jwtService.Generate(user.ID)
	if err != nil {
		s.logger.Error("Failed to generate session token", zap.Error(err))
		return nil, shared.WrapDomainError(shared.CodeInternal, "Failed to generate session token", err)
	}

	session, err := identity.NewSession(user.ID, issued.Token, s.jwtService.Expiration())
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, session.Token, user.ID, session.ExpiresAt.Sub(s.now())); err != nil {
		s.logger.Warn("Failed to cache session", zap.Error(err))
	}

	return &AuthResult{
		User:      ToUserInfo(user),
		Token:     issued.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *AuthService) resolveSession(ctx context.Context, token string, claims *auth.Claims) (uuid.UUID, error) {
	if userID, ok, err := s.cache.Get(ctx, token); err == nil && ok {
		return userID, nil
	} else if err != nil {
		s.logger.Warn("Session cache lookup failed", zap.Error(err))
	}

	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if shared.IsNotFound(err) {
			return uuid.Nil, errInvalidSession
		}
		return uuid.Nil, err
	}
	if session.IsExpired(s.now()) {
		return uuid.Nil, shared.NewDomainError(shared.CodeUnauthorized, "Session has expired")
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if remaining := claims.GetRemainingTTL(); remaining < ttl {
		ttl = remaining
	}
	if err := s.cache.Put(ctx, token, session.UserID, ttl); err != nil {
		s.logger.Warn("Failed to cache session", zap.Error(err))
	}
	return session.UserID, nil
}
