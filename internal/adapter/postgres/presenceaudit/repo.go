// Package presenceaudit implements the PresenceAudit repository using
// PostgreSQL. Terminal statuses are protected at the SQL level: every status
// transition is conditioned on the record still being in the expected
// non-terminal state.
package presenceaudit

import (
	"context"
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

// Repo provides presence audit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new presence audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const auditColumns = `id, case_id, status, error_message, completed_at, triggered_by, created_at, updated_at`

const createSQL = `
INSERT INTO presence_audits (id, case_id, status, triggered_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + auditColumns

const getByIDSQL = `
SELECT ` + auditColumns + `
FROM presence_audits
WHERE id = $1`

const listByCaseSQL = `
SELECT ` + auditColumns + `
FROM presence_audits
WHERE case_id = $1
ORDER BY created_at DESC`

const markRunningSQL = `
UPDATE presence_audits
SET status = 'RUNNING', updated_at = now()
WHERE id = $1 AND status = 'PENDING'
RETURNING ` + auditColumns

const markCompletedSQL = `
UPDATE presence_audits
SET status = 'COMPLETED', completed_at = $2, updated_at = now()
WHERE id = $1 AND status IN ('PENDING', 'RUNNING')
RETURNING ` + auditColumns

const markFailedSQL = `
UPDATE presence_audits
SET status = 'FAILED', error_message = $2, completed_at = $3, updated_at = now()
WHERE id = $1 AND status IN ('PENDING', 'RUNNING')
RETURNING ` + auditColumns

const failStaleSQL = `
UPDATE presence_audits
SET status = 'FAILED', error_message = $2, completed_at = now(), updated_at = now()
WHERE status IN ('PENDING', 'RUNNING') AND created_at < $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a PENDING audit for the case. The partial unique index on
// (case_id) WHERE status IN ('PENDING','RUNNING') makes a second open audit
// fail with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, caseID, triggeredBy uuid.UUID) (*domain.PresenceAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL, id, caseID, string(domain.AuditStatusPending), triggeredBy, now)

	created, err := scanAudit(row)
	if err != nil {
		return nil, mapError(err, "presence_audit", id)
	}

	return created, nil
}

// MarkRunning moves a PENDING audit to RUNNING. A miss (already running,
// already terminal, or missing) is reported as domain.ErrConflict.
func (r *Repo) MarkRunning(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	audit, err := scanAudit(querier.QueryRow(ctx, markRunningSQL, auditID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("presence_audit %s: not pending: %w", auditID, domain.ErrConflict)
		}
		return nil, mapError(err, "presence_audit", auditID)
	}

	return audit, nil
}

// MarkCompleted moves a non-terminal audit to COMPLETED.
func (r *Repo) MarkCompleted(ctx context.Context, auditID uuid.UUID, completedAt time.Time) (*domain.PresenceAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	audit, err := scanAudit(querier.QueryRow(ctx, markCompletedSQL, auditID, completedAt.UTC().Truncate(time.Microsecond)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("presence_audit %s: already terminal: %w", auditID, domain.ErrConflict)
		}
		return nil, mapError(err, "presence_audit", auditID)
	}

	return audit, nil
}

// MarkFailed moves a non-terminal audit to FAILED with the captured message.
func (r *Repo) MarkFailed(ctx context.Context, auditID uuid.UUID, message string, completedAt time.Time) (*domain.PresenceAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	audit, err := scanAudit(querier.QueryRow(ctx, markFailedSQL, auditID, message, completedAt.UTC().Truncate(time.Microsecond)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("presence_audit %s: already terminal: %w", auditID, domain.ErrConflict)
		}
		return nil, mapError(err, "presence_audit", auditID)
	}

	return audit, nil
}

// FailStale marks all non-terminal audits created before cutoff as FAILED
// with the given operator message. Returns the number of records updated.
// Used by the reconcile tool for audits orphaned by a crashed runner.
func (r *Repo) FailStale(ctx context.Context, cutoff time.Time, message string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, failStaleSQL, cutoff.UTC(), message)
	if err != nil {
		return 0, fmt.Errorf("fail stale presence_audits: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an audit by primary key.
func (r *Repo) GetByID(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	audit, err := scanAudit(querier.QueryRow(ctx, getByIDSQL, auditID))
	if err != nil {
		return nil, mapError(err, "presence_audit", auditID)
	}

	return audit, nil
}

// ListByCase returns the audit history for a case, newest first.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.PresenceAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCaseSQL, caseID)
	if err != nil {
		return nil, fmt.Errorf("list presence_audits: %w", err)
	}
	defer rows.Close()

	var audits []domain.PresenceAudit
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan presence_audit: %w", err)
		}
		audits = append(audits, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presence_audits: %w", err)
	}

	return audits, nil
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
		case "23505": // unique_violation (one open audit per case)
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

// scanAudit scans a single audit row from pgx.Row.
func scanAudit(row pgx.Row) (*domain.PresenceAudit, error) {
	var (
		a      domain.PresenceAudit
		status string
	)

	err := row.Scan(
		&a.ID,
		&a.CaseID,
		&status,
		&a.ErrorMessage,
		&a.CompletedAt,
		&a.TriggeredBy,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Status = domain.AuditStatus(status)

	return &a, nil
}
