// Package activity implements the activity log repository using PostgreSQL.
// It provides append-only operations for activity records.
package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ballotworks/advocacy-backend/internal/adapter/postgres"
	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const activityColumns = `id, actor_id, entity_type, entity_id, action, changes, created_at`

const createSQL = `
INSERT INTO activity_log (id, actor_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + activityColumns

const getByEntitySQL = `
SELECT ` + activityColumns + `
FROM activity_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new activity record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, record domain.ActivityRecord) (*domain.ActivityRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return nil, fmt.Errorf("activity_record marshal changes: %w", err)
	}

	row := querier.QueryRow(ctx, createSQL,
		record.ID,
		record.ActorID,
		string(record.EntityType),
		record.EntityID,
		string(record.Action),
		changesJSON,
		record.CreatedAt,
	)

	created, err := scanActivity(row)
	if err != nil {
		return nil, mapError(err, "activity_record", record.ID)
	}

	return created, nil
}

// Log creates an activity record without returning it (fire-and-forget).
// Satisfies vetting.activityLogger.
func (r *Repo) Log(ctx context.Context, record domain.ActivityRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.ActivityRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get activity_records by entity: %w", err)
	}
	defer rows.Close()

	var records []domain.ActivityRecord
	for rows.Next() {
		rec, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity_record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity_records: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanActivity scans a single activity row from pgx.Row.
func scanActivity(row pgx.Row) (*domain.ActivityRecord, error) {
	var (
		rec         domain.ActivityRecord
		entityType  string
		action      string
		changesJSON []byte
	)

	err := row.Scan(
		&rec.ID,
		&rec.ActorID,
		&entityType,
		&rec.EntityID,
		&action,
		&changesJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.ActivityAction(action)

	if len(changesJSON) > 0 {
		changes := make(map[string]any)
		if err := json.Unmarshal(changesJSON, &changes); err != nil {
			return nil, fmt.Errorf("activity_record %s: unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = changes
	}

	return &rec, nil
}
