package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-coach/internal/types"
)

// MemoryStore is an in-memory Store. Safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	profiles   map[string]*types.Profile
	resumes    map[uuid.UUID]ResumeRecord
	interviews map[uuid.UUID]InterviewRecord

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:   make(map[string]*types.Profile),
		resumes:    make(map[uuid.UUID]ResumeRecord),
		interviews: make(map[uuid.UUID]InterviewRecord),
		now:        time.Now,
	}
}

// SaveProfile stores or replaces the owner's profile.
func (s *MemoryStore) SaveProfile(_ context.Context, owner string, profile *types.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[owner] = profile
	return nil
}

// GetProfile retrieves the owner's profile.
func (s *MemoryStore) GetProfile(_ context.Context, owner string) (*types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[owner], nil
}

// DeleteProfile removes the owner's profile.
func (s *MemoryStore) DeleteProfile(_ context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, owner)
	return nil
}

// SaveResume stores a generated resume for the owner.
func (s *MemoryStore) SaveResume(_ context.Context, owner string, payload *types.ResumePayload) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.resumes[id] = ResumeRecord{
		ID:        id,
		Owner:     owner,
		CreatedAt: s.now(),
		Payload:   payload,
	}
	return id, nil
}

// GetResume retrieves a stored resume by ID.
func (s *MemoryStore) GetResume(_ context.Context, id uuid.UUID) (*ResumeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.resumes[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListResumes retrieves the owner's resumes, newest first.
func (s *MemoryStore) ListResumes(_ context.Context, owner string) ([]ResumeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []ResumeRecord
	for _, rec := range s.resumes {
		if rec.Owner == owner {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// SaveInterview stores a completed interview summary for the owner.
func (s *MemoryStore) SaveInterview(_ context.Context, owner string, summary *types.InterviewSummary) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.interviews[id] = InterviewRecord{
		ID:        id,
		Owner:     owner,
		CreatedAt: s.now(),
		Summary:   summary,
	}
	return id, nil
}

// ListInterviews retrieves the owner's interview summaries, newest first.
func (s *MemoryStore) ListInterviews(_ context.Context, owner string) ([]InterviewRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []InterviewRecord
	for _, rec := range s.interviews {
		if rec.Owner == owner {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}
