package vetting

import (
	"time"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// CreateCaseInput holds the parameters for opening a new vetting case.
type CreateCaseInput struct {
	CandidateName string
	Office        string
	State         string
	District      string
	Party         string
}

// Validate checks all fields and collects all errors.
func (i *CreateCaseInput) Validate() error {
	var errs []domain.FieldError

	if i.CandidateName == "" {
		errs = append(errs, domain.FieldError{Field: "candidate_name", Message: "required"})
	}
	if len(i.CandidateName) > 200 {
		errs = append(errs, domain.FieldError{Field: "candidate_name", Message: "max 200 characters"})
	}
	if i.Office == "" {
		errs = append(errs, domain.FieldError{Field: "office", Message: "required"})
	}
	if i.State == "" {
		errs = append(errs, domain.FieldError{Field: "state", Message: "required"})
	}
	if len(i.State) != 2 {
		errs = append(errs, domain.FieldError{Field: "state", Message: "must be a 2-letter code"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdvanceStageInput holds the parameters for advancing a case through the pipeline.
type AdvanceStageInput struct {
	CaseID      uuid.UUID
	TargetStage domain.Stage
}

// Validate checks all fields and collects all errors.
func (i *AdvanceStageInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if !i.TargetStage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_stage", Message: "unknown stage"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSectionInput holds the parameters for updating a report section.
type UpdateSectionInput struct {
	CaseID      uuid.UUID
	SectionType domain.SectionType

	Status          *domain.SectionStatus
	Payload         map[string]any
	AssignedTo      *uuid.UUID
	ClearAssignment bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateSectionInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if !i.SectionType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "section_type", Message: "unknown section type"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.ClearAssignment && i.AssignedTo != nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "cannot assign and clear in one request"})
	}
	if i.Status == nil && i.Payload == nil && i.AssignedTo == nil && !i.ClearAssignment {
		errs = append(errs, domain.FieldError{Field: "status", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetRecommendationInput holds the parameters for recording the committee recommendation.
type SetRecommendationInput struct {
	CaseID         uuid.UUID
	Recommendation domain.Recommendation
}

// Validate checks all fields and collects all errors.
func (i *SetRecommendationInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if !i.Recommendation.IsValid() {
		errs = append(errs, domain.FieldError{Field: "recommendation", Message: "must be ENDORSE, DO_NOT_ENDORSE, or NO_POSITION"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordInterviewInput holds the parameters for recording a candidate interview.
type RecordInterviewInput struct {
	CaseID uuid.UUID
	At     time.Time
	Notes  *string
}

// Validate checks all fields and collects all errors.
func (i *RecordInterviewInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if i.At.IsZero() {
		errs = append(errs, domain.FieldError{Field: "at", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > 10_000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordBoardVoteInput holds the parameters for recording the board vote outcome.
type RecordBoardVoteInput struct {
	CaseID uuid.UUID
	Result domain.EndorsementResult
}

// Validate checks all fields and collects all errors.
func (i *RecordBoardVoteInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	if !i.Result.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "must be ENDORSED, NOT_ENDORSED, or DEFERRED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCasesInput holds the parameters for listing vetting cases.
type ListCasesInput struct {
	Filter domain.CaseFilter
}

// Validate checks all fields and collects all errors.
func (i *ListCasesInput) Validate() error {
	var errs []domain.FieldError

	if i.Filter.Limit < 0 || i.Filter.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if i.Filter.Stage != nil && !i.Filter.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "unknown stage"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
