package company

import (
	"strings"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const maxNameLength = 100

// Company is the reporting entity every schedule, ledger and note row belongs to
type Company struct {
	shared.BaseEntity
	UserID      uuid.UUID // owner
	Name        string    // globally unique
	DisplayName string
	Description string
	IsActive    bool
}

// NewCompany creates an active company owned by userID
func NewCompany(userID uuid.UUID, name, displayName, description string) (*Company, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeValidation, "Company requires an owner")
	}
	c := &Company{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		Description: strings.TrimSpace(description),
		IsActive:    true,
	}
	if err := c.Rename(name, displayName); err != nil {
		return nil, err
	}
	return c, nil
}

// Rename sets name and display name. An empty display name falls back to the name.
func (c *Company) Rename(name, displayName string) error {
	name = strings.TrimSpace(name)
	displayName = strings.TrimSpace(displayName)
	if err := validateName("Company name", name); err != nil {
		return err
	}
	if displayName == "" {
		displayName = name
	}
	if err := validateName("Display name", displayName); err != nil {
		return err
	}
	c.Name = name
	c.DisplayName = displayName
	c.Touch()
	return nil
}

// Update is a partial change to a company; nil fields are left untouched
type Update struct {
	Name        *string
	DisplayName *string
	Description *string
	IsActive    *bool
}

// Apply merges u into the company
func (c *Company) Apply(u Update) error {
	name, display := c.Name, c.DisplayName
	if u.Name != nil {
		name = *u.Name
	}
	if u.DisplayName != nil {
		display = *u.DisplayName
	}
	if err := c.Rename(name, display); err != nil {
		return err
	}
	if u.Description != nil {
		c.Description = strings.TrimSpace(*u.Description)
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	return nil
}

// Archive hides the company from listings without deleting its data
func (c *Company) Archive() {
	c.IsActive = false
	c.Touch()
}

// OwnedBy reports whether userID owns the company
func (c *Company) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

func validateName(field, value string) error {
	if value == "" {
		return shared.NewDomainError(shared.CodeValidation, field+" is required")
	}
	if len(value) > maxNameLength {
		return shared.NewDomainError(shared.CodeValidation, field+" too long")
	}
	return nil
}
