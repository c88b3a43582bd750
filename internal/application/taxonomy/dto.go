package taxonomy

import (
	"github.com/finstatements/backend/internal/domain/taxonomy"
	"github.com/google/uuid"
)

// MajorHeadInput creates or replaces a major head
type MajorHeadInput struct {
	ID            *uuid.UUID `json:"id"`
	Name          string     `json:"name" binding:"required,min=1,max=200"`
	StatementType string     `json:"statementType" binding:"required,statement_type"`
	Category      string     `json:"category" binding:"required,head_category"`
}

// MinorHeadInput creates or replaces a minor head
type MinorHeadInput struct {
	ID          *uuid.UUID `json:"id"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	MajorHeadID uuid.UUID  `json:"majorHeadId" binding:"required"`
}

// GroupingInput creates or replaces a grouping
type GroupingInput struct {
	ID          *uuid.UUID `json:"id"`
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	MinorHeadID uuid.UUID  `json:"minorHeadId" binding:"required"`
}

// IDInput identifies a taxonomy row
type IDInput struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// MinorHeadFilter optionally restricts minor heads to one major head
type MinorHeadFilter struct {
	MajorHeadID *uuid.UUID `json:"majorHeadId"`
}

// GroupingFilter optionally restricts groupings to one minor head
type GroupingFilter struct {
	MinorHeadID *uuid.UUID `json:"minorHeadId"`
}

// MajorHeadResponse represents a major head with usage counts
type MajorHeadResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	StatementType     string    `json:"statementType"`
	Category          string    `json:"category"`
	MinorHeadCount    int64     `json:"minorHeadCount"`
	TrialBalanceCount int64     `json:"trialBalanceCount"`
}

// MinorHeadResponse represents a minor head with its parent and usage counts
type MinorHeadResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	MajorHeadID       uuid.UUID `json:"majorHeadId"`
	MajorHeadName     string    `json:"majorHeadName"`
	GroupingCount     int64     `json:"groupingCount"`
	TrialBalanceCount int64     `json:"trialBalanceCount"`
}

// GroupingResponse represents a grouping with its parent and usage count
type GroupingResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	MinorHeadID       uuid.UUID `json:"minorHeadId"`
	MinorHeadName     string    `json:"minorHeadName"`
	TrialBalanceCount int64     `json:"trialBalanceCount"`
}

// SeedResult reports how many rows a seeding run created
type SeedResult struct {
	MajorHeadsCreated int `json:"majorHeadsCreated"`
	MinorHeadsCreated int `json:"minorHeadsCreated"`
	GroupingsCreated  int `json:"groupingsCreated"`
}

func toMajorHeadResponse(h *taxonomy.MajorHead, minorCount, tbCount int64) MajorHeadResponse {
	return MajorHeadResponse{
		ID:                h.ID,
		Name:              h.Name,
		StatementType:     string(h.StatementType),
		Category:          string(h.Category),
		MinorHeadCount:    minorCount,
		TrialBalanceCount: tbCount,
	}
}
