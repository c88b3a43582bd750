package taxonomy

import (
	"context"

	"github.com/google/uuid"
)

// MajorHeadSummary is a major head with the number of rows referencing it
type MajorHeadSummary struct {
	MajorHead
	MinorHeadCount    int64
	TrialBalanceCount int64
}

// MinorHeadSummary is a minor head with its parent and usage counts
type MinorHeadSummary struct {
	MinorHead
	MajorHeadName     string
	GroupingCount     int64
	TrialBalanceCount int64
}

// GroupingSummary is a grouping with its parent and usage count
type GroupingSummary struct {
	Grouping
	MinorHeadName     string
	TrialBalanceCount int64
}

// MajorHeadRepository defines the interface for major head persistence
type MajorHeadRepository interface {
	Create(ctx context.Context, head *MajorHead) error
	Update(ctx context.Context, head *MajorHead) error
	// Delete removes the head together with its minor heads and groupings
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*MajorHead, error)
	FindByName(ctx context.Context, name string) (*MajorHead, error)
	// List is ordered by statement type, category, then name
	List(ctx context.Context) ([]MajorHeadSummary, error)
	Count(ctx context.Context) (int64, error)
}

// MinorHeadRepository defines the interface for minor head persistence
type MinorHeadRepository interface {
	Create(ctx context.Context, head *MinorHead) error
	Update(ctx context.Context, head *MinorHead) error
	// Delete removes the head together with its groupings
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*MinorHead, error)
	// FindByName looks a name up; a nil majorHeadID matches any parent
	FindByName(ctx context.Context, name string, majorHeadID *uuid.UUID) (*MinorHead, error)
	// List is ordered by name; a nil majorHeadID lists every minor head
	List(ctx context.Context, majorHeadID *uuid.UUID) ([]MinorHeadSummary, error)
}

// GroupingRepository defines the interface for grouping persistence
type GroupingRepository interface {
	Create(ctx context.Context, grouping *Grouping) error
	Update(ctx context.Context, grouping *Grouping) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Grouping, error)
	FindByName(ctx context.Context, name string, minorHeadID *uuid.UUID) (*Grouping, error)
	List(ctx context.Context, minorHeadID *uuid.UUID) ([]GroupingSummary, error)
}
