// Package store persists candidate profiles, generated resumes, and
// interview summaries. Two implementations are provided: an in-memory
// store for tests and single-run CLI use, and a PostgreSQL store.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/types"
)

// ResumeRecord is a stored resume payload with its identity.
type ResumeRecord struct {
	ID        uuid.UUID            `json:"id"`
	Owner     string               `json:"owner"`
	CreatedAt time.Time            `json:"created_at"`
	Payload   *types.ResumePayload `json:"payload"`
}

// InterviewRecord is a stored interview summary with its identity.
type InterviewRecord struct {
	ID        uuid.UUID               `json:"id"`
	Owner     string                  `json:"owner"`
	CreatedAt time.Time               `json:"created_at"`
	Summary   *types.InterviewSummary `json:"summary"`
}

// Store is the persistence interface. Lookups that find nothing return
// (nil, nil), not an error.
type Store interface {
	// SaveProfile stores or replaces the owner's profile.
	SaveProfile(ctx context.Context, owner string, profile *types.Profile) error
	// GetProfile retrieves the owner's profile.
	GetProfile(ctx context.Context, owner string) (*types.Profile, error)
	// DeleteProfile removes the owner's profile.
	DeleteProfile(ctx context.Context, owner string) error

	// SaveResume stores a generated resume for the owner and returns its ID.
	SaveResume(ctx context.Context, owner string, payload *types.ResumePayload) (uuid.UUID, error)
	// GetResume retrieves a stored resume by ID.
	GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error)
	// ListResumes retrieves the owner's resumes, newest first.
	ListResumes(ctx context.Context, owner string) ([]ResumeRecord, error)

	// SaveInterview stores a completed interview summary for the owner.
	SaveInterview(ctx context.Context, owner string, summary *types.InterviewSummary) (uuid.UUID, error)
	// ListInterviews retrieves the owner's interview summaries, newest first.
	ListInterviews(ctx context.Context, owner string) ([]InterviewRecord, error)

	// Close releases any resources held by the store.
	Close()
}
