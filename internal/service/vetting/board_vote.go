package vetting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// RecordBoardVote records the board's endorsement decision. The case must be
// at BOARD_VOTE and the outcome is written once.
func (s *Service) RecordBoardVote(ctx context.Context, input RecordBoardVoteInput) (*domain.VettingCase, error) {
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

	if c.Stage != domain.StageBoardVote {
		return nil, domain.NewValidationError("case_id",
			fmt.Sprintf("case is at %s; the board votes at %s", c.Stage, domain.StageBoardVote))
	}
	if c.HasEndorsementResult() {
		return nil, domain.NewValidationError("result", "board vote already recorded")
	}

	updated, err := s.cases.SetEndorsementResult(ctx, input.CaseID, input.Result)
	if err != nil {
		return nil, fmt.Errorf("set endorsement result: %w", err)
	}

	if logErr := s.activity.Log(ctx, domain.ActivityRecord{
		ActorID:    userID,
		EntityType: domain.EntityTypeCase,
		EntityID:   &updated.ID,
		Action:     domain.ActivityActionUpdate,
		Changes: map[string]any{
			"endorsement_result": map[string]any{"new": string(input.Result)},
		},
	}); logErr != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.String("case_id", updated.ID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "board vote recorded",
		slog.String("user_id", userID.String()),
		slog.String("case_id", updated.ID.String()),
		slog.String("result", string(input.Result)),
	)

	return updated, nil
}
