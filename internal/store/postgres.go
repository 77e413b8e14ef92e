package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-coach/internal/types"
)

// PostgresStore is a Store backed by PostgreSQL. Documents are stored as
// JSONB.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveProfile stores or replaces the owner's profile.
func (s *PostgresStore) SaveProfile(ctx context.Context, owner string, profile *types.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO profiles (owner, document)
		 VALUES ($1, $2)
		 ON CONFLICT (owner) DO UPDATE SET document = $2, updated_at = NOW()`,
		owner, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the owner's profile.
func (s *PostgresStore) GetProfile(ctx context.Context, owner string) (*types.Profile, error) {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM profiles WHERE owner = $1`,
		owner,
	).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile removes the owner's profile.
func (s *PostgresStore) DeleteProfile(ctx context.Context, owner string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE owner = $1`, owner)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// SaveResume stores a generated resume for the owner.
func (s *PostgresStore) SaveResume(ctx context.Context, owner string, payload *types.ResumePayload) (uuid.UUID, error) {
	doc, err := json.Marshal(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO resumes (owner, document)
		 VALUES ($1, $2)
		 RETURNING id`,
		owner, doc,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a stored resume by ID.
func (s *PostgresStore) GetResume(ctx context.Context, id uuid.UUID) (*ResumeRecord, error) {
	var rec ResumeRecord
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, owner, created_at, document FROM resumes WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Owner, &rec.CreatedAt, &doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(doc, &rec.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return &rec, nil
}

// ListResumes retrieves the owner's resumes, newest first.
func (s *PostgresStore) ListResumes(ctx context.Context, owner string) ([]ResumeRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner, created_at, document
		 FROM resumes WHERE owner = $1 ORDER BY created_at DESC`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var rec ResumeRecord
		var doc []byte
		if err := rows.Scan(&rec.ID, &rec.Owner, &rec.CreatedAt, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(doc, &rec.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveInterview stores a completed interview summary for the owner.
func (s *PostgresStore) SaveInterview(ctx context.Context, owner string, summary *types.InterviewSummary) (uuid.UUID, error) {
	doc, err := json.Marshal(summary)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal interview summary: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO interviews (owner, document)
		 VALUES ($1, $2)
		 RETURNING id`,
		owner, doc,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save interview summary: %w", err)
	}
	return id, nil
}

// ListInterviews retrieves the owner's interview summaries, newest first.
func (s *PostgresStore) ListInterviews(ctx context.Context, owner string) ([]InterviewRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, owner, created_at, document
		 FROM interviews WHERE owner = $1 ORDER BY created_at DESC`,
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview summaries: %w", err)
	}
	defer rows.Close()

	var records []InterviewRecord
	for rows.Next() {
		var rec InterviewRecord
		var doc []byte
		if err := rows.Scan(&rec.ID, &rec.Owner, &rec.CreatedAt, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan interview summary: %w", err)
		}
		if err := json.Unmarshal(doc, &rec.Summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interview summary: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
