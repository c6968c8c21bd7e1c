package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/match-engine/internal/types"
)

// -----------------------------------------------------------------------------
// Candidate Profile Methods
// -----------------------------------------------------------------------------

// UpsertCandidate stores a candidate profile, replacing any existing profile
// with the same id. The profile is validated before it is written.
func (db *DB) UpsertCandidate(ctx context.Context, candidate types.Candidate) error {
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("refusing to store invalid candidate: %w", err)
	}

	profile, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate %s: %w", candidate.ID, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, city, experience_years, education, profile)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		 	name = $2, city = $3, experience_years = $4, education = $5,
		 	profile = $6, updated_at = NOW()`,
		candidate.ID, candidate.Name, candidate.Location.City,
		candidate.ExperienceYears, string(candidate.Education), profile,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// GetCandidate retrieves a candidate profile by id. Returns nil when the
// candidate does not exist.
func (db *DB) GetCandidate(ctx context.Context, id string) (*StoredCandidate, error) {
	var profile []byte
	var stored StoredCandidate

	err := db.pool.QueryRow(ctx,
		`SELECT profile, created_at, updated_at FROM candidates WHERE id = $1`,
		id,
	).Scan(&profile, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	if err := json.Unmarshal(profile, &stored.Candidate); err != nil {
		return nil, fmt.Errorf("failed to decode candidate %s: %w", id, err)
	}
	return &stored, nil
}

// ListCandidates returns stored candidates matching the filter, ordered by
// id for determinism.
func (db *DB) ListCandidates(ctx context.Context, filter CandidateFilter) ([]StoredCandidate, error) {
	query := `SELECT profile, created_at, updated_at FROM candidates`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("LOWER(city) = LOWER($%d)", len(args)))
	}
	if filter.MinYears > 0 {
		args = append(args, filter.MinYears)
		conditions = append(conditions, fmt.Sprintf("experience_years >= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]StoredCandidate, 0)
	for rows.Next() {
		var profile []byte
		var stored StoredCandidate
		if err := rows.Scan(&profile, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if err := json.Unmarshal(profile, &stored.Candidate); err != nil {
			return nil, fmt.Errorf("failed to decode candidate: %w", err)
		}
		candidates = append(candidates, stored)
	}
	return candidates, rows.Err()
}

// DeleteCandidate removes a candidate profile. Reports whether a row was
// deleted.
func (db *DB) DeleteCandidate(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
