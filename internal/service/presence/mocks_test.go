package presence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/adapter/provider/presencescan"
	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/internal/provider"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	MarkRunningFunc   func(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error)
	MarkCompletedFunc func(ctx context.Context, auditID uuid.UUID, completedAt time.Time) (*domain.PresenceAudit, error)
	MarkFailedFunc    func(ctx context.Context, auditID uuid.UUID, message string, completedAt time.Time) (*domain.PresenceAudit, error)

	calls struct {
		MarkRunning []struct {
			AuditID uuid.UUID
		}
		MarkCompleted []struct {
			AuditID     uuid.UUID
			CompletedAt time.Time
		}
		MarkFailed []struct {
			AuditID     uuid.UUID
			Message     string
			CompletedAt time.Time
		}
	}
	lockMarkRunning   sync.RWMutex
	lockMarkCompleted sync.RWMutex
	lockMarkFailed    sync.RWMutex
}

func (mock *auditRepoMock) MarkRunning(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error) {
	if mock.MarkRunningFunc == nil {
		panic("auditRepoMock.MarkRunningFunc: method is nil but auditRepo.MarkRunning was just called")
	}
	callInfo := struct {
		AuditID uuid.UUID
	}{AuditID: auditID}
	mock.lockMarkRunning.Lock()
	mock.calls.MarkRunning = append(mock.calls.MarkRunning, callInfo)
	mock.lockMarkRunning.Unlock()
	return mock.MarkRunningFunc(ctx, auditID)
}

func (mock *auditRepoMock) MarkRunningCalls() []struct {
	AuditID uuid.UUID
} {
	mock.lockMarkRunning.RLock()
	calls := mock.calls.MarkRunning
	mock.lockMarkRunning.RUnlock()
	return calls
}

func (mock *auditRepoMock) MarkCompleted(ctx context.Context, auditID uuid.UUID, completedAt time.Time) (*domain.PresenceAudit, error) {
	if mock.MarkCompletedFunc == nil {
		panic("auditRepoMock.MarkCompletedFunc: method is nil but auditRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		AuditID     uuid.UUID
		CompletedAt time.Time
	}{AuditID: auditID, CompletedAt: completedAt}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, auditID, completedAt)
}

func (mock *auditRepoMock) MarkCompletedCalls() []struct {
	AuditID     uuid.UUID
	CompletedAt time.Time
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

func (mock *auditRepoMock) MarkFailed(ctx context.Context, auditID uuid.UUID, message string, completedAt time.Time) (*domain.PresenceAudit, error) {
	if mock.MarkFailedFunc == nil {
		panic("auditRepoMock.MarkFailedFunc: method is nil but auditRepo.MarkFailed was just called")
	}
	callInfo := struct {
		AuditID     uuid.UUID
		Message     string
		CompletedAt time.Time
	}{AuditID: auditID, Message: message, CompletedAt: completedAt}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, auditID, message, completedAt)
}

func (mock *auditRepoMock) MarkFailedCalls() []struct {
	AuditID     uuid.UUID
	Message     string
	CompletedAt time.Time
} {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	GetByIDFunc func(ctx context.Context, caseID uuid.UUID) (*domain.VettingCase, error)

	calls struct {
		GetByID []struct {
			CaseID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *caseRepoMock) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.VettingCase, error) {
	if mock.GetByIDFunc == nil {
		panic("caseRepoMock.GetByIDFunc: method is nil but caseRepo.GetByID was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
	}{CaseID: caseID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, caseID)
}

func (mock *caseRepoMock) GetByIDCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ scanner = &scannerMock{}

type scannerMock struct {
	ScanFunc func(ctx context.Context, req presencescan.ScanRequest) (*provider.ScanResult, error)

	calls struct {
		Scan []struct {
			Req presencescan.ScanRequest
		}
	}
	lockScan sync.RWMutex
}

func (mock *scannerMock) Scan(ctx context.Context, req presencescan.ScanRequest) (*provider.ScanResult, error) {
	if mock.ScanFunc == nil {
		panic("scannerMock.ScanFunc: method is nil but scanner.Scan was just called")
	}
	callInfo := struct {
		Req presencescan.ScanRequest
	}{Req: req}
	mock.lockScan.Lock()
	mock.calls.Scan = append(mock.calls.Scan, callInfo)
	mock.lockScan.Unlock()
	return mock.ScanFunc(ctx, req)
}

func (mock *scannerMock) ScanCalls() []struct {
	Req presencescan.ScanRequest
} {
	mock.lockScan.RLock()
	calls := mock.calls.Scan
	mock.lockScan.RUnlock()
	return calls
}

var _ taskRunner = &taskRunnerMock{}

type taskRunnerMock struct {
	GoFunc func(name string, fn func(ctx context.Context))

	calls struct {
		Go []struct {
			Name string
		}
	}
	lockGo sync.RWMutex
}

func (mock *taskRunnerMock) Go(name string, fn func(ctx context.Context)) {
	if mock.GoFunc == nil {
		panic("taskRunnerMock.GoFunc: method is nil but taskRunner.Go was just called")
	}
	callInfo := struct {
		Name string
	}{Name: name}
	mock.lockGo.Lock()
	mock.calls.Go = append(mock.calls.Go, callInfo)
	mock.lockGo.Unlock()
	mock.GoFunc(name, fn)
}

func (mock *taskRunnerMock) GoCalls() []struct {
	Name string
} {
	mock.lockGo.RLock()
	calls := mock.calls.Go
	mock.lockGo.RUnlock()
	return calls
}
