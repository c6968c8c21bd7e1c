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
// Position Profile Methods
// -----------------------------------------------------------------------------

// UpsertPosition stores a position profile, replacing any existing profile
// with the same id. The profile is validated before it is written.
func (db *DB) UpsertPosition(ctx context.Context, position types.Position) error {
	if err := position.Validate(); err != nil {
		return fmt.Errorf("refusing to store invalid position: %w", err)
	}

	profile, err := json.Marshal(position)
	if err != nil {
		return fmt.Errorf("failed to marshal position %s: %w", position.ID, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO positions (id, title, company, city, offers_remote, profile)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		 	title = $2, company = $3, city = $4, offers_remote = $5,
		 	profile = $6, updated_at = NOW()`,
		position.ID, position.Title, position.Company,
		position.Location.City, position.OffersRemote, profile,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert position %s: %w", position.ID, err)
	}
	return nil
}

// GetPosition retrieves a position profile by id. Returns nil when the
// position does not exist.
func (db *DB) GetPosition(ctx context.Context, id string) (*StoredPosition, error) {
	var profile []byte
	var stored StoredPosition

	err := db.pool.QueryRow(ctx,
		`SELECT profile, created_at, updated_at FROM positions WHERE id = $1`,
		id,
	).Scan(&profile, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get position %s: %w", id, err)
	}

	if err := json.Unmarshal(profile, &stored.Position); err != nil {
		return nil, fmt.Errorf("failed to decode position %s: %w", id, err)
	}
	return &stored, nil
}

// ListPositions returns stored positions matching the filter, ordered by id
// for determinism.
func (db *DB) ListPositions(ctx context.Context, filter PositionFilter) ([]StoredPosition, error) {
	query := `SELECT profile, created_at, updated_at FROM positions`
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if filter.Company != "" {
		args = append(args, filter.Company)
		conditions = append(conditions, fmt.Sprintf("LOWER(company) = LOWER($%d)", len(args)))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("LOWER(city) = LOWER($%d)", len(args)))
	}
	if filter.RemoteOnly {
		conditions = append(conditions, "offers_remote")
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
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	positions := make([]StoredPosition, 0)
	for rows.Next() {
		var profile []byte
		var stored StoredPosition
		if err := rows.Scan(&profile, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		if err := json.Unmarshal(profile, &stored.Position); err != nil {
			return nil, fmt.Errorf("failed to decode position: %w", err)
		}
		positions = append(positions, stored)
	}
	return positions, rows.Err()
}

// DeletePosition removes a position profile. Reports whether a row was
// deleted.
func (db *DB) DeletePosition(ctx context.Context, id string) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete position %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
