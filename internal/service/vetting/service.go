package vetting

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/section"
	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type caseRepo interface {
	Create(ctx context.Context, c *domain.VettingCase) (*domain.VettingCase, error)
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.VettingCase, error)
	UpdateStage(ctx context.Context, caseID uuid.UUID, observedStage, targetStage domain.Stage) (*domain.VettingCase, error)
	SetRecommendation(ctx context.Context, caseID uuid.UUID, rec domain.Recommendation) (*domain.VettingCase, error)
	RecordInterview(ctx context.Context, caseID uuid.UUID, at time.Time, notes *string) (*domain.VettingCase, error)
	SetEndorsementResult(ctx context.Context, caseID uuid.UUID, result domain.EndorsementResult) (*domain.VettingCase, error)
	List(ctx context.Context, filter domain.CaseFilter) ([]domain.VettingCase, int, error)
}

type sectionRepo interface {
	SeedForCase(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error)
	Update(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType, params section.UpdateParams) (*domain.ReportSection, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error)
	StatesByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SectionState, error)
	Get(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType) (*domain.ReportSection, error)
}

type auditRepo interface {
	Create(ctx context.Context, caseID, triggeredBy uuid.UUID) (*domain.PresenceAudit, error)
	GetByID(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.PresenceAudit, error)
}

// auditScheduler hands a freshly created audit to the background runner.
// Scheduling must not block the request path.
type auditScheduler interface {
	Schedule(audit domain.PresenceAudit)
}

type activityLogger interface {
	Log(ctx context.Context, record domain.ActivityRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vetting pipeline business logic.
type Service struct {
	cases     caseRepo
	sections  sectionRepo
	audits    auditRepo
	scheduler auditScheduler
	activity  activityLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Vetting service.
func NewService(
	log *slog.Logger,
	cases caseRepo,
	sections sectionRepo,
	audits auditRepo,
	scheduler auditScheduler,
	activity activityLogger,
	tx txManager,
) *Service {
	return &Service{
		cases:     cases,
		sections:  sections,
		audits:    audits,
		scheduler: scheduler,
		activity:  activity,
		tx:        tx,
		log:       log.With("service", "vetting"),
	}
}
