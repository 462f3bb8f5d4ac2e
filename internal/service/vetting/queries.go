package vetting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/internal/service/vetting/gate"
)

// GetCase returns one case with its sections and progress summary.
func (s *Service) GetCase(ctx context.Context, caseID uuid.UUID) (*CaseDetail, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	sections, err := s.sections.ListByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}

	states := make([]domain.SectionState, 0, len(sections))
	for _, sec := range sections {
		states = append(states, domain.SectionState{Type: sec.Type, Status: sec.Status})
	}

	return &CaseDetail{
		Case:     *c,
		Sections: sections,
		Progress: gate.CalculateProgress(states),
	}, nil
}

// ListCases returns one page of cases matching the filter.
func (s *Service) ListCases(ctx context.Context, input ListCasesInput) (*CaseList, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cases, total, err := s.cases.List(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	return &CaseList{Cases: cases, Total: total}, nil
}

// ListAudits returns the presence audit history for a case, newest first.
func (s *Service) ListAudits(ctx context.Context, caseID uuid.UUID) ([]domain.PresenceAudit, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	// Confirm the case exists so a bad ID reads as 404, not an empty list.
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}

	return s.audits.ListByCase(ctx, caseID)
}

// GetAudit returns one presence audit by ID.
func (s *Service) GetAudit(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error) {
	if auditID == uuid.Nil {
		return nil, domain.NewValidationError("audit_id", "required")
	}

	return s.audits.GetByID(ctx, auditID)
}
