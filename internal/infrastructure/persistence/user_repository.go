package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/finstatements/backend/internal/domain/identity"
	"github.com/finstatements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	return translate(conn(ctx, r.db).Create(models.UserModelFromDomain(user)).Error)
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	return affected(conn(ctx, r.db).Save(models.UserModelFromDomain(user)))
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).First(&model, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel
	if err := conn(ctx, r.db).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.UserModel{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByRole checks if any user holds role
func (r *GormUserRepository) ExistsByRole(ctx context.Context, role identity.Role) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&models.UserModel{}).
		Where("role = ?", role).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Create stores a new session
func (r *GormSessionRepository) Create(ctx context.Context, session *identity.Session) error {
	return translate(conn(ctx, r.db).Create(models.SessionModelFromDomain(session)).Error)
}

// FindByToken finds a session by its token, expired or not
func (r *GormSessionRepository) FindByToken(ctx context.Context, token string) (*identity.Session, error) {
	var model models.SessionModel
	if err := conn(ctx, r.db).Where("token = ?", token).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return model.ToDomain(), nil
}

// DeleteByToken removes the sessions carrying token
func (r *GormSessionRepository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	result := conn(ctx, r.db).Where("token = ?", token).Delete(&models.SessionModel{})
	return result.RowsAffected, result.Error
}

// DeleteExpired removes sessions that expired before the given time
func (r *GormSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := conn(ctx, r.db).Where("expires_at < ?", before).Delete(&models.SessionModel{})
	return result.RowsAffected, result.Error
}

// Ensure interfaces are implemented
var (
	_ identity.UserRepository    = (*GormUserRepository)(nil)
	_ identity.SessionRepository = (*GormSessionRepository)(nil)
)
