package vetting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// SetRecommendation records the committee's recommendation. The case must
// have reached COMMITTEE_REVIEW; the recommendation may be revised until
// the board vote is recorded.
func (s *Service) SetRecommendation(ctx context.Context, input SetRecommendationInput) (*domain.VettingCase, error) {
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

	if c.Stage.Before(domain.StageCommitteeReview) {
		return nil, domain.NewValidationError("case_id",
			fmt.Sprintf("case is at %s; a recommendation requires %s", c.Stage, domain.StageCommitteeReview))
	}
	if c.HasEndorsementResult() {
		return nil, domain.NewValidationError("case_id", "board vote already recorded")
	}

	updated, err := s.cases.SetRecommendation(ctx, input.CaseID, input.Recommendation)
	if err != nil {
		return nil, fmt.Errorf("set recommendation: %w", err)
	}

	if logErr := s.activity.Log(ctx, domain.ActivityRecord{
		ActorID:    userID,
		EntityType: domain.EntityTypeCase,
		EntityID:   &updated.ID,
		Action:     domain.ActivityActionUpdate,
		Changes: map[string]any{
			"recommendation": map[string]any{"new": string(input.Recommendation)},
		},
	}); logErr != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.String("case_id", updated.ID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "committee recommendation recorded",
		slog.String("user_id", userID.String()),
		slog.String("case_id", updated.ID.String()),
		slog.String("recommendation", string(input.Recommendation)),
	)

	return updated, nil
}
