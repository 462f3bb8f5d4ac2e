package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCase inserts a vetting case at the given stage and returns it.
func SeedCase(t *testing.T, pool *pgxpool.Pool, stage domain.Stage) domain.VettingCase {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.VettingCase{
		ID:            uuid.New(),
		CandidateName: "Test Candidate " + suffix,
		Office:        "State Senate",
		State:         "TX",
		District:      "14",
		Party:         "Independent",
		Stage:         stage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vetting_cases (id, candidate_name, office, state, district, party, stage, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.CandidateName, c.Office, c.State, c.District, c.Party, string(c.Stage), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert: %v", err)
	}

	return c
}

// SeedSections inserts the full section catalog for the case with the given
// status on every section.
func SeedSections(t *testing.T, pool *pgxpool.Pool, caseID uuid.UUID, status domain.SectionStatus) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	for _, spec := range domain.SectionCatalog() {
		_, err := pool.Exec(ctx,
			`INSERT INTO report_sections (id, case_id, section_type, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), caseID, string(spec.Type), string(status), now, now,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSections insert %s: %v", spec.Type, err)
		}
	}
}
