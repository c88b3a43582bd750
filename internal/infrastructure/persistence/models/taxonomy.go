package models

import (
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
)

// MajorHeadModel is the persistence model for a Schedule III major head.
type MajorHeadModel struct {
	BaseModel
	Name          string                 `gorm:"type:varchar(200);not null;uniqueIndex"`
	StatementType taxonomy.StatementType `gorm:"type:varchar(2);not null"`
	Category      taxonomy.Category      `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (MajorHeadModel) TableName() string {
	return "major_heads"
}

// ToDomain converts the persistence model to a domain MajorHead.
func (m *MajorHeadModel) ToDomain() *taxonomy.MajorHead {
	return &taxonomy.MajorHead{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		StatementType: m.StatementType,
		Category:      m.Category,
	}
}

// MajorHeadModelFromDomain creates a new persistence model from a domain MajorHead.
func MajorHeadModelFromDomain(h *taxonomy.MajorHead) *MajorHeadModel {
	m := &MajorHeadModel{Name: h.Name, StatementType: h.StatementType, Category: h.Category}
	m.FromDomainBaseEntity(h.BaseEntity)
	return m
}

// MinorHeadModel is the persistence model for a minor head under a major head.
type MinorHeadModel struct {
	BaseModel
	Name        string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_minor_heads_name_major"`
	MajorHeadID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_minor_heads_name_major"`
}

// TableName returns the table name for GORM
func (MinorHeadModel) TableName() string {
	return "minor_heads"
}

// ToDomain converts the persistence model to a domain MinorHead.
func (m *MinorHeadModel) ToDomain() *taxonomy.MinorHead {
	return &taxonomy.MinorHead{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name, MajorHeadID: m.MajorHeadID}
}

// MinorHeadModelFromDomain creates a new persistence model from a domain MinorHead.
func MinorHeadModelFromDomain(h *taxonomy.MinorHead) *MinorHeadModel {
	m := &MinorHeadModel{Name: h.Name, MajorHeadID: h.MajorHeadID}
	m.FromDomainBaseEntity(h.BaseEntity)
	return m
}

// GroupingModel is the persistence model for a grouping under a minor head.
type GroupingModel struct {
	BaseModel
	Name        string    `gorm:"type:varchar(200);not null;uniqueIndex:idx_groupings_name_minor"`
	MinorHeadID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_groupings_name_minor"`
}

// TableName returns the table name for GORM
func (GroupingModel) TableName() string {
	return "groupings"
}

// ToDomain converts the persistence model to a domain Grouping.
func (m *GroupingModel) ToDomain() *taxonomy.Grouping {
	return &taxonomy.Grouping{BaseEntity: m.BaseModel.ToDomain(), Name: m.Name, MinorHeadID: m.MinorHeadID}
}

// GroupingModelFromDomain creates a new persistence model from a domain Grouping.
func GroupingModelFromDomain(g *taxonomy.Grouping) *GroupingModel {
	m := &GroupingModel{Name: g.Name, MinorHeadID: g.MinorHeadID}
	m.FromDomainBaseEntity(g.BaseEntity)
	return m
}
