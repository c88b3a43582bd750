// Package license serves the installation license checks used by desktop
// and network deployments.
package license

import (
	"context"
	"time"

	"github.com/finstatements/backend/internal/domain/license"
	"github.com/finstatements/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LicenseService handles license operations
type LicenseService struct {
	repo   license.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewLicenseService creates a new LicenseService
func NewLicenseService(repo license.Repository, logger *zap.Logger) *LicenseService {
	return &LicenseService{repo: repo, logger: logger, now: time.Now}
}

// ValidateLicense checks that a license is usable from clientIP and records the use
func (s *LicenseService) ValidateLicense(ctx context.Context, input ValidateInput) (*ValidationResult, error) {
	l, err := s.find(ctx, input.LicenseKey, "Invalid license key")
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := l.Check(now, input.ClientIP); err != nil {
		s.logger.Warn("License rejected",
			zap.String("company", l.CompanyName),
			zap.String("client_ip", input.ClientIP),
			zap.Error(err))
		return nil, err
	}

	l.MarkUsed(now)
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return &ValidationResult{
		IsValid:      true,
		CompanyName:  l.CompanyName,
		ExpiresAt:    l.ExpiresAt,
		MaxUsers:     l.MaxUsers,
		MaxCompanies: l.MaxCompanies,
		NetworkPath:  l.NetworkPath,
		Features:     features(l.Features),
	}, nil
}

// GetLicenseInfo returns the license record
func (s *LicenseService) GetLicenseInfo(ctx context.Context, input KeyInput) (*InfoResponse, error) {
	l, err := s.find(ctx, input.LicenseKey, "License not found")
	if err != nil {
		return nil, err
	}
	return &InfoResponse{
		CompanyName:     l.CompanyName,
		ContactEmail:    l.ContactEmail,
		IssuedAt:        l.IssuedAt,
		ExpiresAt:       l.ExpiresAt,
		IsActive:        l.IsActive,
		MaxUsers:        l.MaxUsers,
		MaxCompanies:    l.MaxCompanies,
		ActiveUsers:     l.ActiveUsers,
		ActiveCompanies: l.ActiveCompanies,
		LastUsedAt:      l.LastUsedAt,
		Features:        features(l.Features),
	}, nil
}

// UpdateLicenseUsage stores the active user and company counts within the license limits
func (s *LicenseService) UpdateLicenseUsage(ctx context.Context, input UsageInput) (*UsageResult, error) {
	l, err := s.find(ctx, input.LicenseKey, "License not found")
	if err != nil {
		return nil, err
	}
	if err := l.RecordUsage(s.now(), input.ActiveUsers, input.ActiveCompanies); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return &UsageResult{Success: true}, nil
}

func (s *LicenseService) find(ctx context.Context, key, missing string) (*license.License, error) {
	l, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError(shared.CodeNotFound, missing)
		}
		return nil, err
	}
	return l, nil
}
