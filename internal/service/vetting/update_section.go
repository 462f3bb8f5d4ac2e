package vetting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/section"
	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/pkg/ctxutil"
)

// UpdateSection edits one report section: status, payload, or assignment.
// Status changes are checked against the section status machine.
func (s *Service) UpdateSection(ctx context.Context, input UpdateSectionInput) (*domain.ReportSection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.sections.Get(ctx, input.CaseID, input.SectionType)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}

	if input.Status != nil && !existing.Status.CanTransitionTo(*input.Status) {
		return nil, domain.NewValidationError("status",
			fmt.Sprintf("cannot move section from %s to %s", existing.Status, *input.Status))
	}

	updated, err := s.sections.Update(ctx, input.CaseID, input.SectionType, section.UpdateParams{
		Status:          input.Status,
		Payload:         input.Payload,
		AssignedTo:      input.AssignedTo,
		ClearAssignment: input.ClearAssignment,
	})
	if err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}

	changes := map[string]any{}
	if input.Status != nil {
		changes["status"] = map[string]any{
			"old": string(existing.Status),
			"new": string(updated.Status),
		}
	}
	if input.Payload != nil {
		changes["payload"] = map[string]any{"new": input.Payload}
	}
	if input.AssignedTo != nil || input.ClearAssignment {
		changes["assigned_to"] = map[string]any{"new": updated.AssignedTo}
	}

	if logErr := s.activity.Log(ctx, domain.ActivityRecord{
		ActorID:    userID,
		EntityType: domain.EntityTypeSection,
		EntityID:   &updated.ID,
		Action:     domain.ActivityActionUpdate,
		Changes:    changes,
	}); logErr != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.String("section_id", updated.ID.String()),
			slog.String("error", logErr.Error()),
		)
	}

	s.log.InfoContext(ctx, "report section updated",
		slog.String("user_id", userID.String()),
		slog.String("case_id", input.CaseID.String()),
		slog.String("section_type", string(input.SectionType)),
		slog.String("status", string(updated.Status)),
	)

	return updated, nil
}
