package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/okoshkina/fittrack/internal/models"
)

// PostgresSnapshotRepository stores per-user tracker snapshots and mirrors
// the append-only weight history into its own table.
type PostgresSnapshotRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresSnapshotRepository creates a new PostgresSnapshotRepository using the provided *sql.DB.
func NewPostgresSnapshotRepository(db *sql.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{DB: db}
}

// GetVersion retrieves the stored snapshot version for the given user.
// If no snapshot exists, it returns 0.
func (r *PostgresSnapshotRepository) GetVersion(ctx context.Context, login string) (int64, error) {
	var version int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(version), 0) FROM snapshots WHERE user_login = $1
	`, login).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("GetVersion failed: %w", err)
	}
	return version, nil
}

// GetSnapshot fetches the stored snapshot for the user, or nil if none exists.
func (r *PostgresSnapshotRepository) GetSnapshot(ctx context.Context, login string) (*models.Snapshot, error) {
	var raw []byte
	var version int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT state, version FROM snapshots WHERE user_login = $1
	`, login).Scan(&raw, &version)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetSnapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot state: %w", err)
	}
	snap.Version = version
	return &snap, nil
}

// UpsertSnapshot stores the snapshot for the user, replacing any previous one.
func (r *PostgresSnapshotRepository) UpsertSnapshot(ctx context.Context, login string, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot state: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO snapshots (user_login, state, version)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_login) DO UPDATE SET state = $2, version = $3
	`, login, raw, snap.Version)
	if err != nil {
		return fmt.Errorf("UpsertSnapshot: %w", err)
	}
	return nil
}

// AppendWeightEntries mirrors weight entries into the append-only table.
// Already-mirrored ids are skipped, so re-syncing the same snapshot is safe.
func (r *PostgresSnapshotRepository) AppendWeightEntries(ctx context.Context, login string, entries []models.WeightEntry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]string, len(entries))
	dates := make([]time.Time, len(entries))
	values := make([]float64, len(entries))
	for i, e := range entries {
		recorded, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			return fmt.Errorf("parse entry date %q: %w", e.Date, err)
		}
		ids[i] = e.ID
		dates[i] = recorded
		values[i] = e.Value
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO weight_entries (id, user_login, recorded_at, value)
		SELECT t.id, $1, t.recorded_at, t.value
		  FROM unnest($2::text[], $3::timestamptz[], $4::float8[]) AS t(id, recorded_at, value)
		ON CONFLICT (id) DO NOTHING
	`, login, pq.Array(ids), pq.Array(dates), pq.Array(values))
	if err != nil {
		return fmt.Errorf("AppendWeightEntries: %w", err)
	}
	return nil
}

// ListWeightEntries returns the most recent mirrored entries for the user,
// oldest first, up to limit.
func (r *PostgresSnapshotRepository) ListWeightEntries(ctx context.Context, login string, limit int) ([]models.WeightEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, recorded_at, value
		  FROM (
		    SELECT id, recorded_at, value FROM weight_entries
		     WHERE user_login = $1
		     ORDER BY recorded_at DESC
		     LIMIT $2
		  ) recent
		 ORDER BY recorded_at ASC
	`, login, limit)
	if err != nil {
		return nil, fmt.Errorf("ListWeightEntries: %w", err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var e models.WeightEntry
		var recorded time.Time
		if err := rows.Scan(&e.ID, &recorded, &e.Value); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		e.Date = recorded.Format(time.RFC3339)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
