// Package license validates installation licenses against stored records and
// tracks their usage counters. Keys are opaque; the stored row is the only
// source of truth.
package license

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
)

// License is an issued license key with its limits
type License struct {
	shared.BaseEntity
	LicenseKey      string
	CompanyName     string
	ContactEmail    string
	ContactName     string
	IssuedAt        time.Time
	ExpiresAt       *time.Time
	IsActive        bool
	MaxUsers        int
	MaxCompanies    int
	ActiveUsers     int
	ActiveCompanies int
	AllowedIPs      []string
	NetworkPath     *string
	Features        []string
	LastUsedAt      *time.Time
}

// NewLicense issues a license for companyName
func NewLicense(key, companyName, contactEmail string, maxUsers, maxCompanies int, expiresAt *time.Time) (*License, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "License key is required")
	}
	if strings.TrimSpace(companyName) == "" {
		return nil, shared.NewDomainError(shared.CodeValidation, "Company name is required")
	}
	if maxUsers < 1 || maxCompanies < 1 {
		return nil, shared.NewDomainError(shared.CodeValidation, "License limits must be at least 1")
	}
	l := &License{
		BaseEntity:   shared.NewBaseEntity(),
		LicenseKey:   key,
		CompanyName:  companyName,
		ContactEmail: contactEmail,
		IssuedAt:     time.Now(),
		ExpiresAt:    expiresAt,
		IsActive:     true,
		MaxUsers:     maxUsers,
		MaxCompanies: maxCompanies,
	}
	return l, nil
}

// Check rejects inactive and expired licenses, and client addresses missing
// from a non-empty allow-list. An empty clientIP skips the address check.
func (l *License) Check(now time.Time, clientIP string) error {
	if !l.IsActive {
		return shared.NewDomainError(shared.CodeForbidden, "License is inactive")
	}
	if l.ExpiresAt != nil && l.ExpiresAt.Before(now) {
		return shared.NewDomainError(shared.CodeForbidden, "License has expired")
	}
	if len(l.AllowedIPs) > 0 && clientIP != "" && !slices.Contains(l.AllowedIPs, clientIP) {
		return shared.NewDomainError(shared.CodeForbidden, "IP address not authorized for this license")
	}
	return nil
}

// MarkUsed records a successful use
func (l *License) MarkUsed(now time.Time) {
	l.LastUsedAt = &now
	l.Touch()
}

// RecordUsage updates the active counters. Nil leaves a counter unchanged.
func (l *License) RecordUsage(now time.Time, activeUsers, activeCompanies *int) error {
	if activeUsers != nil {
		if *activeUsers > l.MaxUsers {
			return shared.NewDomainError(shared.CodeForbidden,
				fmt.Sprintf("Maximum users exceeded. License allows %d users.", l.MaxUsers))
		}
		if *activeUsers < 0 {
			return shared.NewDomainError(shared.CodeValidation, "Active users cannot be negative")
		}
	}
	if activeCompanies != nil {
		if *activeCompanies > l.MaxCompanies {
			return shared.NewDomainError(shared.CodeForbidden,
				fmt.Sprintf("Maximum companies exceeded. License allows %d companies.", l.MaxCompanies))
		}
		if *activeCompanies < 0 {
			return shared.NewDomainError(shared.CodeValidation, "Active companies cannot be negative")
		}
	}
	if activeUsers != nil {
		l.ActiveUsers = *activeUsers
	}
	if activeCompanies != nil {
		l.ActiveCompanies = *activeCompanies
	}
	l.MarkUsed(now)
	return nil
}

// Repository persists licenses
type Repository interface {
	Create(ctx context.Context, l *License) error
	Update(ctx context.Context, l *License) error
	FindByKey(ctx context.Context, key string) (*License, error)
}
