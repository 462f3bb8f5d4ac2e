package vetting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// CreateCase opens a new vetting case at SURVEY_SUBMITTED and seeds the
// report section skeleton from the catalog.
func (s *Service) CreateCase(ctx context.Context, input CreateCaseInput) (*CaseDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var detail CaseDetail

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err := s.cases.Create(txCtx, &domain.VettingCase{
			ID:            uuid.New(),
			CandidateName: input.CandidateName,
			Office:        input.Office,
			State:         input.State,
			District:      input.District,
			Party:         input.Party,
			Stage:         domain.StageSurveySubmitted,
		})
		if err != nil {
			return fmt.Errorf("create case: %w", err)
		}

		sections, err := s.sections.SeedForCase(txCtx, created.ID)
		if err != nil {
			return fmt.Errorf("seed sections: %w", err)
		}

		logErr := s.activity.Log(txCtx, domain.ActivityRecord{
			ActorID:    userID,
			EntityType: domain.EntityTypeCase,
			EntityID:   &created.ID,
			Action:     domain.ActivityActionCreate,
			Changes: map[string]any{
				"candidate_name": created.CandidateName,
				"office":         created.Office,
				"state":          created.State,
				"stage":          string(created.Stage),
			},
		})
		if logErr != nil {
			return fmt.Errorf("activity log: %w", logErr)
		}

		detail = CaseDetail{Case: *created, Sections: sections}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vetting case created",
		slog.String("user_id", userID.String()),
		slog.String("case_id", detail.Case.ID.String()),
		slog.String("candidate", detail.Case.CandidateName),
	)

	return &detail, nil
}
