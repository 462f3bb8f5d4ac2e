package vetting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// RecordInterview stores the interview date and notes. The case must have
// reached the INTERVIEW stage.
func (s *Service) RecordInterview(ctx context.Context, input RecordInterviewInput) (*domain.VettingCase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	if c.Stage.Before(domain.StageInterview) {
		return nil, domain.NewValidationError("case_id",
			fmt.Sprintf("case is at %s; interviews begin at %s", c.Stage, domain.StageInterview))
	}

	updated, err := s.cases.RecordInterview(ctx, input.CaseID, input.At, input.Notes)
	if err != nil {
		return nil, fmt.Errorf("record interview: %w", err)
	}

	if logErr := s.activity.Log(ctx, domain.ActivityRecord{
		ActorID:    userID,
		EntityType: domain.EntityTypeCase,
		EntityID:   &updated.ID,
		Action:     domain.ActivityActionUpdate,
		Changes: map[string]any{
			"interview_at": map[string]any{"new": input.At},
		},
	}); logErr != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.String("case_id", updated.ID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "interview recorded",
		slog.String("user_id", userID.String()),
		slog.String("case_id", updated.ID.String()),
	)

	return updated, nil
}
