// Package vettingcase implements the VettingCase repository using PostgreSQL.
// Fixed queries use raw SQL consts; the dynamic list query is built with squirrel.
package vettingcase

import (
	"context"
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

// Repo provides vetting case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vetting case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const caseColumns = `id, candidate_name, office, state, district, party, stage,
       recommendation, endorsement_result, interview_at, interview_notes,
       created_at, updated_at`

const createSQL = `
INSERT INTO vetting_cases (id, candidate_name, office, state, district, party, stage, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + caseColumns

const getByIDSQL = `
SELECT ` + caseColumns + `
FROM vetting_cases
WHERE id = $1`

const updateStageSQL = `
UPDATE vetting_cases
SET stage = $3, updated_at = now()
WHERE id = $1 AND stage = $2
RETURNING ` + caseColumns

const setRecommendationSQL = `
UPDATE vetting_cases
SET recommendation = $2, updated_at = now()
WHERE id = $1
RETURNING ` + caseColumns

const recordInterviewSQL = `
UPDATE vetting_cases
SET interview_at = $2, interview_notes = $3, updated_at = now()
WHERE id = $1
RETURNING ` + caseColumns

const setEndorsementResultSQL = `
UPDATE vetting_cases
SET endorsement_result = $2, updated_at = now()
WHERE id = $1
RETURNING ` + caseColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new case and returns the persisted row.
func (r *Repo) Create(ctx context.Context, c *domain.VettingCase) (*domain.VettingCase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		c.ID,
		c.CandidateName,
		c.Office,
		c.State,
		c.District,
		c.Party,
		string(c.Stage),
		now,
	)

	created, err := scanCase(row)
	if err != nil {
		return nil, mapError(err, "vetting_case", c.ID)
	}

	return created, nil
}

// UpdateStage moves a case from observedStage to targetStage with a
// compare-and-set on the stage column. A concurrent modification makes the
// conditional update match zero rows, which is reported as domain.ErrConflict —
// the caller must refetch and resubmit, never retry blindly.
func (r *Repo) UpdateStage(ctx context.Context, caseID uuid.UUID, observedStage, targetStage domain.Stage) (*domain.VettingCase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateStageSQL, caseID, string(observedStage), string(targetStage))

	updated, err := scanCase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("vetting_case %s: stage changed concurrently: %w", caseID, domain.ErrConflict)
		}
		return nil, mapError(err, "vetting_case", caseID)
	}

	return updated, nil
}

// SetRecommendation records the committee recommendation.
func (r *Repo) SetRecommendation(ctx context.Context, caseID uuid.UUID, rec domain.Recommendation) (*domain.VettingCase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, setRecommendationSQL, caseID, string(rec))

	updated, err := scanCase(row)
	if err != nil {
		return nil, mapError(err, "vetting_case", caseID)
	}

	return updated, nil
}

// RecordInterview stores the interview date and notes.
func (r *Repo) RecordInterview(ctx context.Context, caseID uuid.UUID, at time.Time, notes *string) (*domain.VettingCase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, recordInterviewSQL, caseID, at.UTC().Truncate(time.Microsecond), notes)

	updated, err := scanCase(row)
	if err != nil {
		return nil, mapError(err, "vetting_case", caseID)
	}

	return updated, nil
}

// SetEndorsementResult records the board vote outcome.
func (r *Repo) SetEndorsementResult(ctx context.Context, caseID uuid.UUID, result domain.EndorsementResult) (*domain.VettingCase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, setEndorsementResultSQL, caseID, string(result))

	updated, err := scanCase(row)
	if err != nil {
		return nil, mapError(err, "vetting_case", caseID)
	}

	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a case by primary key.
func (r *Repo) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.VettingCase, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, caseID)

	c, err := scanCase(row)
	if err != nil {
		return nil, mapError(err, "vetting_case", caseID)
	}

	return c, nil
}

// List returns cases matching the filter plus the total match count.
func (r *Repo) List(ctx context.Context, filter domain.CaseFilter) ([]domain.VettingCase, int, error) {
	filter = normalizeFilter(filter)
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	where := sq.And{}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, sq.ILike{"candidate_name": "%" + *filter.Search + "%"})
	}
	if filter.Stage != nil {
		where = append(where, sq.Eq{"stage": string(*filter.Stage)})
	}
	if filter.HasResult != nil {
		if *filter.HasResult {
			where = append(where, sq.NotEq{"endorsement_result": nil})
		} else {
			where = append(where, sq.Eq{"endorsement_result": nil})
		}
	}

	countSQL, countArgs, err := builder.
		Select("count(*)").
		From("vetting_cases").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vetting_cases: %w", err)
	}

	listSQL, listArgs, err := builder.
		Select(caseColumns).
		From("vetting_cases").
		Where(where).
		OrderBy(filter.SortBy + " " + filter.SortOrder).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vetting_cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.VettingCase
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan vetting_case: %w", err)
		}
		cases = append(cases, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate vetting_cases: %w", err)
	}

	return cases, total, nil
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

// scanCase scans a single case row from pgx.Row.
func scanCase(row pgx.Row) (*domain.VettingCase, error) {
	var (
		c              domain.VettingCase
		stage          string
		recommendation *string
		result         *string
	)

	err := row.Scan(
		&c.ID,
		&c.CandidateName,
		&c.Office,
		&c.State,
		&c.District,
		&c.Party,
		&stage,
		&recommendation,
		&result,
		&c.InterviewAt,
		&c.InterviewNotes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Stage = domain.Stage(stage)
	if recommendation != nil {
		rec := domain.Recommendation(*recommendation)
		c.Recommendation = &rec
	}
	if result != nil {
		res := domain.EndorsementResult(*result)
		c.EndorsementResult = &res
	}

	return &c, nil
}
