// Package section implements the ReportSection repository using PostgreSQL.
package section

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ballotworks/advocacy-backend/internal/adapter/postgres"
	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// UpdateParams holds the optional fields of a section update. Nil fields are
// left untouched.
type UpdateParams struct {
	Status     *domain.SectionStatus
	Payload    map[string]any
	AssignedTo *uuid.UUID
	// ClearAssignment removes the current assignee. Mutually exclusive with
	// AssignedTo.
	ClearAssignment bool
}

// Repo provides report section persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new section repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sectionColumns = `id, case_id, section_type, status, payload, assigned_to, created_at, updated_at`

const seedSQL = `
INSERT INTO report_sections (id, case_id, section_type, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + sectionColumns

const listByCaseSQL = `
SELECT ` + sectionColumns + `
FROM report_sections
WHERE case_id = $1
ORDER BY section_type ASC`

const statesByCaseSQL = `
SELECT section_type, status
FROM report_sections
WHERE case_id = $1`

const getSQL = `
SELECT ` + sectionColumns + `
FROM report_sections
WHERE case_id = $1 AND section_type = $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SeedForCase inserts one NOT_STARTED section per catalog entry for the case.
// Intended to run inside the case-creation transaction.
func (r *Repo) SeedForCase(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	catalog := domain.SectionCatalog()

	batch := &pgx.Batch{}
	for _, spec := range catalog {
		batch.Queue(seedSQL, uuid.New(), caseID, string(spec.Type), string(domain.SectionStatusNotStarted), now)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	sections := make([]domain.ReportSection, 0, len(catalog))
	for range catalog {
		s, err := scanSection(results.QueryRow())
		if err != nil {
			return nil, mapError(err, "report_section", caseID)
		}
		sections = append(sections, *s)
	}

	return sections, nil
}

// Update applies the non-nil fields of params to one section.
func (r *Repo) Update(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType, params UpdateParams) (*domain.ReportSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	update := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("report_sections").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"case_id": caseID, "section_type": string(sectionType)}).
		Suffix("RETURNING " + sectionColumns)

	if params.Status != nil {
		update = update.Set("status", string(*params.Status))
	}
	if params.Payload != nil {
		payloadJSON, err := json.Marshal(params.Payload)
		if err != nil {
			return nil, fmt.Errorf("report_section %s: marshal payload: %w", caseID, err)
		}
		update = update.Set("payload", payloadJSON)
	}
	if params.ClearAssignment {
		update = update.Set("assigned_to", nil)
	} else if params.AssignedTo != nil {
		update = update.Set("assigned_to", *params.AssignedTo)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build section update: %w", err)
	}

	s, err := scanSection(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "report_section", caseID)
	}

	return s, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByCase returns all sections of a case ordered by type.
func (r *Repo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCaseSQL, caseID)
	if err != nil {
		return nil, fmt.Errorf("list report_sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.ReportSection
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report_section: %w", err)
		}
		sections = append(sections, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report_sections: %w", err)
	}

	return sections, nil
}

// StatesByCase returns the minimal (type, status) view the stage gate needs.
func (r *Repo) StatesByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SectionState, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, statesByCaseSQL, caseID)
	if err != nil {
		return nil, fmt.Errorf("get section states: %w", err)
	}
	defer rows.Close()

	var states []domain.SectionState
	for rows.Next() {
		var sectionType, status string
		if err := rows.Scan(&sectionType, &status); err != nil {
			return nil, fmt.Errorf("scan section state: %w", err)
		}
		states = append(states, domain.SectionState{
			Type:   domain.SectionType(sectionType),
			Status: domain.SectionStatus(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate section states: %w", err)
	}

	return states, nil
}

// Get returns one section by case and type.
func (r *Repo) Get(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType) (*domain.ReportSection, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSection(querier.QueryRow(ctx, getSQL, caseID, string(sectionType)))
	if err != nil {
		return nil, mapError(err, "report_section", caseID)
	}

	return s, nil
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

// scanSection scans a single section row from pgx.Row.
func scanSection(row pgx.Row) (*domain.ReportSection, error) {
	var (
		s           domain.ReportSection
		sectionType string
		status      string
		payloadJSON []byte
	)

	err := row.Scan(
		&s.ID,
		&s.CaseID,
		&sectionType,
		&status,
		&payloadJSON,
		&s.AssignedTo,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Type = domain.SectionType(sectionType)
	s.Status = domain.SectionStatus(status)

	if len(payloadJSON) > 0 {
		payload := make(map[string]any)
		if err := json.Unmarshal(payloadJSON, &payload); err != nil {
			return nil, fmt.Errorf("report_section %s: unmarshal payload: %w", s.ID, err)
		}
		s.Payload = payload
	}

	return &s, nil
}
