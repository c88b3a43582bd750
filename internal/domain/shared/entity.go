package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// Touch bumps the update timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CompanyScoped is embedded by every entity that belongs to a company
type CompanyScoped struct {
	BaseEntity
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
}

// NewCompanyScoped creates the base of a company-scoped entity
func NewCompanyScoped(companyID uuid.UUID) CompanyScoped {
	return CompanyScoped{
		BaseEntity: NewBaseEntity(),
		CompanyID:  companyID,
	}
}

// GetCompanyID returns the owning company
func (c *CompanyScoped) GetCompanyID() uuid.UUID {
	return c.CompanyID
}

// Scope exposes the embedded base so generic code can reset identity fields
func (c *CompanyScoped) Scope() *CompanyScoped {
	return c
}
