// Package presence executes digital-presence audits in the background.
// Audits are created by the vetting service when a case crosses the
// AUTO_AUDIT stage; the runner claims them, calls the external screening
// provider, and records the terminal status.
package presence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/adapter/provider/presencescan"
	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/internal/provider"
)

const defaultScanTimeout = 2 * time.Minute

type auditRepo interface {
	MarkRunning(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error)
	MarkCompleted(ctx context.Context, auditID uuid.UUID, completedAt time.Time) (*domain.PresenceAudit, error)
	MarkFailed(ctx context.Context, auditID uuid.UUID, message string, completedAt time.Time) (*domain.PresenceAudit, error)
}

type caseRepo interface {
	GetByID(ctx context.Context, caseID uuid.UUID) (*domain.VettingCase, error)
}

type scanner interface {
	Scan(ctx context.Context, req presencescan.ScanRequest) (*provider.ScanResult, error)
}

type taskRunner interface {
	Go(name string, fn func(ctx context.Context))
}

// Runner processes presence audits asynchronously.
type Runner struct {
	log     *slog.Logger
	audits  auditRepo
	cases   caseRepo
	scanner scanner
	tasks   taskRunner
	timeout time.Duration
}

// NewRunner creates a Runner. timeout bounds a single provider scan;
// zero or negative means the default.
func NewRunner(log *slog.Logger, audits auditRepo, cases caseRepo, scanner scanner, tasks taskRunner, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = defaultScanTimeout
	}
	return &Runner{
		log:     log.With("service", "presence"),
		audits:  audits,
		cases:   cases,
		scanner: scanner,
		tasks:   tasks,
		timeout: timeout,
	}
}

// Schedule hands the audit to a background task and returns immediately.
func (r *Runner) Schedule(audit domain.PresenceAudit) {
	r.tasks.Go("presence-audit", func(ctx context.Context) {
		r.process(ctx, audit)
	})
}

func (r *Runner) process(ctx context.Context, audit domain.PresenceAudit) {
	claimed, err := r.audits.MarkRunning(ctx, audit.ID)
	if err != nil {
		// A conflict means another runner claimed it, or the audit is
		// already terminal. Either way there is nothing to do here.
		if errors.Is(err, domain.ErrConflict) {
			r.log.DebugContext(ctx, "audit already claimed",
				slog.String("audit_id", audit.ID.String()),
			)
			return
		}
		r.log.ErrorContext(ctx, "failed to claim audit",
			slog.String("audit_id", audit.ID.String()),
			slog.String("case_id", audit.CaseID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	// The audit is RUNNING from here on; every exit must leave it terminal.
	// A panicking workload is converted into a FAILED write rather than
	// escaping to the task registry, which knows nothing about the record.
	defer func() {
		if rec := recover(); rec != nil {
			r.fail(ctx, claimed, fmt.Errorf("audit workload panic: %v", rec))
		}
	}()

	c, err := r.cases.GetByID(ctx, claimed.CaseID)
	if err != nil {
		r.fail(ctx, claimed, fmt.Errorf("load case: %w", err))
		return
	}

	scanCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.scanner.Scan(scanCtx, presencescan.ScanRequest{
		CandidateName: c.CandidateName,
		State:         c.State,
		Office:        c.Office,
	})
	if err != nil {
		r.fail(ctx, claimed, fmt.Errorf("presence scan: %w", err))
		return
	}

	// Terminal status writes must survive a shutdown that cancels ctx.
	if _, err := r.audits.MarkCompleted(context.WithoutCancel(ctx), claimed.ID, time.Now().UTC()); err != nil {
		r.log.ErrorContext(ctx, "failed to record audit completion",
			slog.String("audit_id", claimed.ID.String()),
			slog.String("case_id", claimed.CaseID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	r.log.InfoContext(ctx, "presence audit completed",
		slog.String("audit_id", claimed.ID.String()),
		slog.String("case_id", claimed.CaseID.String()),
		slog.Int("findings", len(result.Findings)),
	)
}

// fail records the workload failure on the audit. If that write also
// fails, both errors are logged so an operator can reconcile the record.
func (r *Runner) fail(ctx context.Context, audit *domain.PresenceAudit, workErr error) {
	if _, err := r.audits.MarkFailed(context.WithoutCancel(ctx), audit.ID, workErr.Error(), time.Now().UTC()); err != nil {
		r.log.ErrorContext(ctx, "failed to record audit failure",
			slog.String("audit_id", audit.ID.String()),
			slog.String("case_id", audit.CaseID.String()),
			slog.String("workload_error", workErr.Error()),
			slog.String("error", err.Error()),
		)
		return
	}

	r.log.WarnContext(ctx, "presence audit failed",
		slog.String("audit_id", audit.ID.String()),
		slog.String("case_id", audit.CaseID.String()),
		slog.String("error", workErr.Error()),
	)
}
