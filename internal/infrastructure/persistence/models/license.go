package models

import (
	"encoding/json"
	"time"

	"github.com/finstatements/backend/internal/domain/license"
)

// LicenseModel is the persistence model for an installation license.
type LicenseModel struct {
	BaseModel
	LicenseKey      string `gorm:"type:varchar(100);not null;uniqueIndex"`
	CompanyName     string `gorm:"type:varchar(300);not null"`
	ContactEmail    string `gorm:"type:varchar(200)"`
	ContactName     string `gorm:"type:varchar(200)"`
	IssuedAt        time.Time
	ExpiresAt       *time.Time
	IsActive        bool    `gorm:"not null"`
	MaxUsers        int     `gorm:"not null"`
	MaxCompanies    int     `gorm:"not null"`
	ActiveUsers     int     `gorm:"not null"`
	ActiveCompanies int     `gorm:"not null"`
	AllowedIPs      string  `gorm:"column:allowed_ips;type:jsonb"`
	NetworkPath     *string `gorm:"type:varchar(500)"`
	Features        string  `gorm:"type:jsonb"`
	LastUsedAt      *time.Time
}

// TableName returns the table name for GORM
func (LicenseModel) TableName() string {
	return "licenses"
}

// ToDomain converts the persistence model to a domain License.
func (m *LicenseModel) ToDomain() *license.License {
	return &license.License{
		BaseEntity:      m.BaseModel.ToDomain(),
		LicenseKey:      m.LicenseKey,
		CompanyName:     m.CompanyName,
		ContactEmail:    m.ContactEmail,
		ContactName:     m.ContactName,
		IssuedAt:        m.IssuedAt,
		ExpiresAt:       m.ExpiresAt,
		IsActive:        m.IsActive,
		MaxUsers:        m.MaxUsers,
		MaxCompanies:    m.MaxCompanies,
		ActiveUsers:     m.ActiveUsers,
		ActiveCompanies: m.ActiveCompanies,
		AllowedIPs:      decodeStrings(m.AllowedIPs),
		NetworkPath:     m.NetworkPath,
		Features:        decodeStrings(m.Features),
		LastUsedAt:      m.LastUsedAt,
	}
}

// LicenseModelFromDomain creates a new persistence model from a domain License.
func LicenseModelFromDomain(l *license.License) *LicenseModel {
	m := &LicenseModel{
		LicenseKey:      l.LicenseKey,
		CompanyName:     l.CompanyName,
		ContactEmail:    l.ContactEmail,
		ContactName:     l.ContactName,
		IssuedAt:        l.IssuedAt,
		ExpiresAt:       l.ExpiresAt,
		IsActive:        l.IsActive,
		MaxUsers:        l.MaxUsers,
		MaxCompanies:    l.MaxCompanies,
		ActiveUsers:     l.ActiveUsers,
		ActiveCompanies: l.ActiveCompanies,
		AllowedIPs:      encodeStrings(l.AllowedIPs),
		NetworkPath:     l.NetworkPath,
		Features:        encodeStrings(l.Features),
		LastUsedAt:      l.LastUsedAt,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

func encodeStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(raw string) []string {
	var out []string
	if raw == "" {
		return out
	}
	_ = json.Unmarshal([]byte(raw), &out)
	return out
}
