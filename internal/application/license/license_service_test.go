package license

import (
	"context"
	"testing"
	"time"

	"github.com/finstatements/backend/internal/domain/license"
	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockLicenseRepository is a mock implementation of license.Repository
type MockLicenseRepository struct {
	mock.Mock
}

func (m *MockLicenseRepository) Create(ctx context.Context, l *license.License) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLicenseRepository) Update(ctx context.Context, l *license.License) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLicenseRepository) FindByKey(ctx context.Context, key string) (*license.License, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*license.License), args.Error(1)
}

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestService(repo *MockLicenseRepository) *LicenseService {
	svc := NewLicenseService(repo, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newTestLicense(t *testing.T) *license.License {
	t.Helper()
	expires := fixedNow.AddDate(1, 0, 0)
	l, err := license.NewLicense("FS-1234-5678", "Acme Industries", "it@acme.test", 5, 2, &expires)
	require.NoError(t, err)
	l.AllowedIPs = []string{"10.0.0.5"}
	l.Features = []string{"export"}
	return l
}

func TestLicenseService_ValidateLicense(t *testing.T) {
	ctx := context.Background()

	t.Run("valid license records use", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		l := newTestLicense(t)
		repo.On("FindByKey", ctx, "FS-1234-5678").Return(l, nil)
		repo.On("Update", ctx, l).Return(nil)

		out, err := newTestService(repo).ValidateLicense(ctx, ValidateInput{LicenseKey: "FS-1234-5678", ClientIP: "10.0.0.5"})
		require.NoError(t, err)
		assert.True(t, out.IsValid)
		assert.Equal(t, "Acme Industries", out.CompanyName)
		assert.Equal(t, []string{"export"}, out.Features)
		require.NotNil(t, l.LastUsedAt)
		assert.Equal(t, fixedNow, *l.LastUsedAt)
		repo.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		mutate   func(l *license.License)
		clientIP string
		message  string
	}{
		{"inactive", func(l *license.License) { l.IsActive = false }, "", "License is inactive"},
		{"expired", func(l *license.License) {
			past := fixedNow.Add(-time.Hour)
			l.ExpiresAt = &past
		}, "", "License has expired"},
		{"ip not allowed", func(*license.License) {}, "10.0.0.9", "IP address not authorized for this license"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLicenseRepository)
			l := newTestLicense(t)
			tt.mutate(l)
			repo.On("FindByKey", ctx, "FS-1234-5678").Return(l, nil)

			_, err := newTestService(repo).ValidateLicense(ctx, ValidateInput{LicenseKey: "FS-1234-5678", ClientIP: tt.clientIP})
			require.Error(t, err)
			assert.Equal(t, shared.CodeForbidden, shared.CodeOf(err))
			assert.Equal(t, tt.message, err.Error())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		repo.On("FindByKey", ctx, "nope").Return(nil, shared.ErrNotFound)

		_, err := newTestService(repo).ValidateLicense(ctx, ValidateInput{LicenseKey: "nope"})
		assert.Equal(t, shared.CodeNotFound, shared.CodeOf(err))
		assert.Equal(t, "Invalid license key", err.Error())
	})
}

func TestLicenseService_GetLicenseInfo(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLicenseRepository)
	l := newTestLicense(t)
	l.Features = nil
	repo.On("FindByKey", ctx, "FS-1234-5678").Return(l, nil)

	info, err := newTestService(repo).GetLicenseInfo(ctx, KeyInput{LicenseKey: "FS-1234-5678"})
	require.NoError(t, err)
	assert.Equal(t, 5, info.MaxUsers)
	assert.Equal(t, []string{}, info.Features)
	assert.True(t, info.IsActive)
}

func TestLicenseService_UpdateLicenseUsage(t *testing.T) {
	ctx := context.Background()
	users, companies := 4, 3

	t.Run("within limits", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		l := newTestLicense(t)
		repo.On("FindByKey", ctx, "FS-1234-5678").Return(l, nil)
		repo.On("Update", ctx, l).Return(nil)

		out, err := newTestService(repo).UpdateLicenseUsage(ctx, UsageInput{LicenseKey: "FS-1234-5678", ActiveUsers: &users})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, 4, l.ActiveUsers)
		assert.Equal(t, 0, l.ActiveCompanies)
	})

	t.Run("above company limit", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		l := newTestLicense(t)
		repo.On("FindByKey", ctx, "FS-1234-5678").Return(l, nil)

		_, err := newTestService(repo).UpdateLicenseUsage(ctx, UsageInput{LicenseKey: "FS-1234-5678", ActiveCompanies: &companies})
		require.Error(t, err)
		assert.Equal(t, shared.CodeForbidden, shared.CodeOf(err))
		assert.Equal(t, "Maximum companies exceeded. License allows 2 companies.", err.Error())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
