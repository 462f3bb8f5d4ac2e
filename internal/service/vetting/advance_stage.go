package vetting

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/internal/service/vetting/gate"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// AdvanceStage moves a case forward through the pipeline. The transition is
// checked by the stage gate, then applied with a compare-and-set on the
// stage column: a concurrent writer surfaces as domain.ErrConflict and the
// caller must refetch and resubmit.
//
// A transition that crosses AUTO_AUDIT also creates a presence audit. If
// that record cannot be created, the stage write is compensated (rolled
// back to the observed stage) and an AuditBootstrapError is returned.
func (s *Service) AdvanceStage(ctx context.Context, input AdvanceStageInput) (*domain.VettingCase, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	states, err := s.sections.StatesByCase(ctx, input.CaseID)
	if err != nil {
		return nil, fmt.Errorf("get section states: %w", err)
	}

	decision := gate.Evaluate(current.Stage, input.TargetStage, states, gate.Flags{
		HasRecommendation:    current.HasRecommendation(),
		HasEndorsementResult: current.HasEndorsementResult(),
	})
	if !decision.Allowed {
		return nil, &domain.StageRejectedError{
			From:   current.Stage,
			Target: input.TargetStage,
			Reason: decision.Reason,
		}
	}

	updated, err := s.cases.UpdateStage(ctx, input.CaseID, current.Stage, input.TargetStage)
	if err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}

	if crossesAutoAudit(current.Stage, input.TargetStage) {
		audit, auditErr := s.audits.Create(ctx, input.CaseID, userID)
		if auditErr != nil {
			s.rollbackStage(ctx, updated, current.Stage)
			return nil, &domain.AuditBootstrapError{CaseID: input.CaseID.String(), Err: auditErr}
		}
		s.scheduler.Schedule(*audit)

		s.log.InfoContext(ctx, "presence audit scheduled",
			slog.String("case_id", input.CaseID.String()),
			slog.String("audit_id", audit.ID.String()),
		)
	}

	if logErr := s.activity.Log(ctx, domain.ActivityRecord{
		ActorID:    userID,
		EntityType: domain.EntityTypeCase,
		EntityID:   &updated.ID,
		Action:     domain.ActivityActionUpdate,
		Changes: map[string]any{
			"stage": map[string]any{
				"old": string(current.Stage),
				"new": string(updated.Stage),
			},
		},
	}); logErr != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.String("case_id", updated.ID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "case stage advanced",
		slog.String("user_id", userID.String()),
		slog.String("case_id", updated.ID.String()),
		slog.String("old_stage", string(current.Stage)),
		slog.String("new_stage", string(updated.Stage)),
	)

	return updated, nil
}

// rollbackStage compensates a stage write whose audit bootstrap failed.
// A rollback miss means yet another writer touched the row in between;
// that is logged and left for the operator, never retried.
func (s *Service) rollbackStage(ctx context.Context, c *domain.VettingCase, observedStage domain.Stage) {
	if _, err := s.cases.UpdateStage(ctx, c.ID, c.Stage, observedStage); err != nil {
		s.log.ErrorContext(ctx, "stage rollback failed after audit bootstrap error",
			slog.String("case_id", c.ID.String()),
			slog.String("stuck_stage", string(c.Stage)),
			slog.String("wanted_stage", string(observedStage)),
			slog.String("error", err.Error()),
		)
	}
}

// crossesAutoAudit reports whether the transition enters or passes AUTO_AUDIT.
func crossesAutoAudit(from, to domain.Stage) bool {
	return slices.Contains(domain.StagesBetween(from, to), domain.StageAutoAudit)
}
