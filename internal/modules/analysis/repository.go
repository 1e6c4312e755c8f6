package analysis

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const timeLayout = "2006-01-02 15:04:05"

// Repository persists computation snapshots
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshot repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "snapshots").Logger(),
	}
}

// Save inserts a new snapshot. Snapshots are never updated in place;
// each computation writes a fresh row and GetLatest returns the newest.
func (r *Repository) Save(snap *Snapshot) error {
	query := `
		INSERT INTO snapshots (id, kind, payload, created_at)
		VALUES (?, ?, ?, ?)
	`

	createdAt := snap.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.Exec(query, snap.ID, snap.Kind, string(snap.Payload), createdAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent snapshot of a kind, or nil when no
// computation of that kind has run yet.
func (r *Repository) GetLatest(kind string) (*Snapshot, error) {
	query := `
		SELECT id, kind, payload, created_at
		FROM snapshots
		WHERE kind = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`

	var snap Snapshot
	var payload, createdAt string

	err := r.db.QueryRow(query, kind).Scan(&snap.ID, &snap.Kind, &payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	snap.Payload = []byte(payload)
	snap.CreatedAt, _ = time.Parse(timeLayout, createdAt)

	return &snap, nil
}

// Prune deletes snapshots older than the retention window, keeping the
// newest row per kind regardless of age so redisplay always works.
func (r *Repository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(timeLayout)

	query := `
		DELETE FROM snapshots
		WHERE created_at < ?
		AND id NOT IN (
			SELECT id FROM snapshots s2
			WHERE s2.kind = snapshots.kind
			ORDER BY s2.created_at DESC, s2.rowid DESC
			LIMIT 1
		)
	`

	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}

	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		r.log.Info().Int64("deleted", deleted).Msg("Pruned old snapshots")
	}

	return deleted, nil
}
