package identity

import (
	"context"

	"github.com/finstatements/backend/internal/domain/identity"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService handles account management after registration
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ChangePassword replaces the caller's password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(input.CurrentPassword) {
		return shared.NewDomainError(shared.CodeUnauthorized, "Current password is incorrect")
	}
	if err := user.SetPassword(input.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("Password changed", zap.String("user_id", userID.String()))
	return nil
}

// SetUserActive enables or soft-disables an account. Only administrators may
// call it and they cannot disable themselves.
func (s *UserService) SetUserActive(ctx context.Context, actorID uuid.UUID, input SetUserActiveInput) (*UserInfo, error) {
	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, shared.NewDomainError(shared.CodeForbidden, "Only administrators can change account status")
	}
	if actorID == input.UserID && !input.IsActive {
		return nil, shared.NewDomainError(shared.CodeBadRequest, "Administrators cannot deactivate their own account")
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError(shared.CodeNotFound, "User not found")
		}
		return nil, err
	}
	if input.IsActive {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Account status changed",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_active", user.IsActive),
		zap.String("by", actorID.String()))
	info := ToUserInfo(user)
	return &info, nil
}
