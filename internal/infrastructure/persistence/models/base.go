package models

import (
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// CompanyScopedModel provides the persistence fields of company-scoped rows
type CompanyScopedModel struct {
	BaseModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// FromDomainCompanyScoped populates CompanyScopedModel from domain CompanyScoped
func (m *CompanyScopedModel) FromDomainCompanyScoped(c shared.CompanyScoped) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.CompanyID = c.CompanyID
}

// ToCompanyScoped converts CompanyScopedModel to domain CompanyScoped
func (m *CompanyScopedModel) ToCompanyScoped() shared.CompanyScoped {
	return shared.CompanyScoped{BaseEntity: m.BaseModel.ToDomain(), CompanyID: m.CompanyID}
}
