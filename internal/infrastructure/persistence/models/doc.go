// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: Base persistence models (BaseModel, CompanyScopedModel)
// - identity.go: users and sessions
// - company.go: companies and their common control settings
// - taxonomy.go: major heads, minor heads, groupings
// - ledger.go: trial balance entries
// - license.go: installation licenses
//
// Schedule entries and note selections are flat records whose domain structs
// carry their own column tags; they have no separate model here.
package models
