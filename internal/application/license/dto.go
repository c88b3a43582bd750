package license

import "time"

// ValidateInput is the input of a license check
type ValidateInput struct {
	LicenseKey string `json:"licenseKey" binding:"required"`
	ClientIP   string `json:"clientIp" binding:"omitempty,max=64"`
}

// KeyInput identifies a license
type KeyInput struct {
	LicenseKey string `json:"licenseKey" binding:"required"`
}

// UsageInput reports the current usage of a license
type UsageInput struct {
	LicenseKey      string `json:"licenseKey" binding:"required"`
	ActiveUsers     *int   `json:"activeUsers"`
	ActiveCompanies *int   `json:"activeCompanies"`
}

// ValidationResult describes a valid license
type ValidationResult struct {
	IsValid      bool       `json:"isValid"`
	CompanyName  string     `json:"companyName"`
	ExpiresAt    *time.Time `json:"expiresAt"`
	MaxUsers     int        `json:"maxUsers"`
	MaxCompanies int        `json:"maxCompanies"`
	NetworkPath  *string    `json:"networkPath"`
	Features     []string   `json:"features"`
}

// InfoResponse is the full license record shown to administrators
type InfoResponse struct {
	CompanyName     string     `json:"companyName"`
	ContactEmail    string     `json:"contactEmail"`
	IssuedAt        time.Time  `json:"issuedAt"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	IsActive        bool       `json:"isActive"`
	MaxUsers        int        `json:"maxUsers"`
	MaxCompanies    int        `json:"maxCompanies"`
	ActiveUsers     int        `json:"activeUsers"`
	ActiveCompanies int        `json:"activeCompanies"`
	LastUsedAt      *time.Time `json:"lastUsedAt"`
	Features        []string   `json:"features"`
}

// UsageResult acknowledges a usage update
type UsageResult struct {
	Success bool `json:"success"`
}

func features(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
