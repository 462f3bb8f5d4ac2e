package vetting

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ballotworks/advocacy-backend/internal/adapter/postgres/section"
	"github.com/ballotworks/advocacy-backend/internal/domain"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	CreateFunc               func(ctx context.Context, c *domain.VettingCase) (*domain.VettingCase, error)
	GetByIDFunc              func(ctx context.Context, caseID uuid.UUID) (*domain.VettingCase, error)
	UpdateStageFunc          func(ctx context.Context, caseID uuid.UUID, observedStage, targetStage domain.Stage) (*domain.VettingCase, error)
	SetRecommendationFunc    func(ctx context.Context, caseID uuid.UUID, rec domain.Recommendation) (*domain.VettingCase, error)
	RecordInterviewFunc      func(ctx context.Context, caseID uuid.UUID, at time.Time, notes *string) (*domain.VettingCase, error)
	SetEndorsementResultFunc func(ctx context.Context, caseID uuid.UUID, result domain.EndorsementResult) (*domain.VettingCase, error)
	ListFunc                 func(ctx context.Context, filter domain.CaseFilter) ([]domain.VettingCase, int, error)

	calls struct {
		Create []struct {
			C *domain.VettingCase
		}
		GetByID []struct {
			CaseID uuid.UUID
		}
		UpdateStage []struct {
			CaseID        uuid.UUID
			ObservedStage domain.Stage
			TargetStage   domain.Stage
		}
		SetRecommendation []struct {
			CaseID uuid.UUID
			Rec    domain.Recommendation
		}
		RecordInterview []struct {
			CaseID uuid.UUID
			At     time.Time
			Notes  *string
		}
		SetEndorsementResult []struct {
			CaseID uuid.UUID
			Result domain.EndorsementResult
		}
		List []struct {
			Filter domain.CaseFilter
		}
	}
	lockCreate               sync.RWMutex
	lockGetByID              sync.RWMutex
	lockUpdateStage          sync.RWMutex
	lockSetRecommendation    sync.RWMutex
	lockRecordInterview      sync.RWMutex
	lockSetEndorsementResult sync.RWMutex
	lockList                 sync.RWMutex
}

func (mock *caseRepoMock) Create(ctx context.Context, c *domain.VettingCase) (*domain.VettingCase, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	callInfo := struct {
		C *domain.VettingCase
	}{C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	C *domain.VettingCase
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *caseRepoMock) UpdateStage(ctx context.Context, caseID uuid.UUID, observedStage, targetStage domain.Stage) (*domain.VettingCase, error) {
	if mock.UpdateStageFunc == nil {
		panic("caseRepoMock.UpdateStageFunc: method is nil but caseRepo.UpdateStage was just called")
	}
	callInfo := struct {
		CaseID        uuid.UUID
		ObservedStage domain.Stage
		TargetStage   domain.Stage
	}{CaseID: caseID, ObservedStage: observedStage, TargetStage: targetStage}
	mock.lockUpdateStage.Lock()
	mock.calls.UpdateStage = append(mock.calls.UpdateStage, callInfo)
	mock.lockUpdateStage.Unlock()
	return mock.UpdateStageFunc(ctx, caseID, observedStage, targetStage)
}

func (mock *caseRepoMock) UpdateStageCalls() []struct {
	CaseID        uuid.UUID
	ObservedStage domain.Stage
	TargetStage   domain.Stage
} {
	mock.lockUpdateStage.RLock()
	calls := mock.calls.UpdateStage
	mock.lockUpdateStage.RUnlock()
	return calls
}

func (mock *caseRepoMock) SetRecommendation(ctx context.Context, caseID uuid.UUID, rec domain.Recommendation) (*domain.VettingCase, error) {
	if mock.SetRecommendationFunc == nil {
		panic("caseRepoMock.SetRecommendationFunc: method is nil but caseRepo.SetRecommendation was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
		Rec    domain.Recommendation
	}{CaseID: caseID, Rec: rec}
	mock.lockSetRecommendation.Lock()
	mock.calls.SetRecommendation = append(mock.calls.SetRecommendation, callInfo)
	mock.lockSetRecommendation.Unlock()
	return mock.SetRecommendationFunc(ctx, caseID, rec)
}

func (mock *caseRepoMock) SetRecommendationCalls() []struct {
	CaseID uuid.UUID
	Rec    domain.Recommendation
} {
	mock.lockSetRecommendation.RLock()
	calls := mock.calls.SetRecommendation
	mock.lockSetRecommendation.RUnlock()
	return calls
}

func (mock *caseRepoMock) RecordInterview(ctx context.Context, caseID uuid.UUID, at time.Time, notes *string) (*domain.VettingCase, error) {
	if mock.RecordInterviewFunc == nil {
		panic("caseRepoMock.RecordInterviewFunc: method is nil but caseRepo.RecordInterview was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
		At     time.Time
		Notes  *string
	}{CaseID: caseID, At: at, Notes: notes}
	mock.lockRecordInterview.Lock()
	mock.calls.RecordInterview = append(mock.calls.RecordInterview, callInfo)
	mock.lockRecordInterview.Unlock()
	return mock.RecordInterviewFunc(ctx, caseID, at, notes)
}

func (mock *caseRepoMock) RecordInterviewCalls() []struct {
	CaseID uuid.UUID
	At     time.Time
	Notes  *string
} {
	mock.lockRecordInterview.RLock()
	calls := mock.calls.RecordInterview
	mock.lockRecordInterview.RUnlock()
	return calls
}

func (mock *caseRepoMock) SetEndorsementResult(ctx context.Context, caseID uuid.UUID, result domain.EndorsementResult) (*domain.VettingCase, error) {
	if mock.SetEndorsementResultFunc == nil {
		panic("caseRepoMock.SetEndorsementResultFunc: method is nil but caseRepo.SetEndorsementResult was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
		Result domain.EndorsementResult
	}{CaseID: caseID, Result: result}
	mock.lockSetEndorsementResult.Lock()
	mock.calls.SetEndorsementResult = append(mock.calls.SetEndorsementResult, callInfo)
	mock.lockSetEndorsementResult.Unlock()
	return mock.SetEndorsementResultFunc(ctx, caseID, result)
}

func (mock *caseRepoMock) SetEndorsementResultCalls() []struct {
	CaseID uuid.UUID
	Result domain.EndorsementResult
} {
	mock.lockSetEndorsementResult.RLock()
	calls := mock.calls.SetEndorsementResult
	mock.lockSetEndorsementResult.RUnlock()
	return calls
}

func (mock *caseRepoMock) List(ctx context.Context, filter domain.CaseFilter) ([]domain.VettingCase, int, error) {
	if mock.ListFunc == nil {
		panic("caseRepoMock.ListFunc: method is nil but caseRepo.List was just called")
	}
	callInfo := struct {
		Filter domain.CaseFilter
	}{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *caseRepoMock) ListCalls() []struct {
	Filter domain.CaseFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ sectionRepo = &sectionRepoMock{}

type sectionRepoMock struct {
	SeedForCaseFunc  func(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error)
	UpdateFunc       func(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType, params section.UpdateParams) (*domain.ReportSection, error)
	ListByCaseFunc   func(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error)
	StatesByCaseFunc func(ctx context.Context, caseID uuid.UUID) ([]domain.SectionState, error)
	GetFunc          func(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType) (*domain.ReportSection, error)

	calls struct {
		SeedForCase []struct {
			CaseID uuid.UUID
		}
		Update []struct {
			CaseID      uuid.UUID
			SectionType domain.SectionType
			Params      section.UpdateParams
		}
		ListByCase []struct {
			CaseID uuid.UUID
		}
		StatesByCase []struct {
			CaseID uuid.UUID
		}
		Get []struct {
			CaseID      uuid.UUID
			SectionType domain.SectionType
		}
	}
	lockSeedForCase  sync.RWMutex
	lockUpdate       sync.RWMutex
	lockListByCase   sync.RWMutex
	lockStatesByCase sync.RWMutex
	lockGet          sync.RWMutex
}

func (mock *sectionRepoMock) SeedForCase(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error) {
	if mock.SeedForCaseFunc == nil {
		panic("sectionRepoMock.SeedForCaseFunc: method is nil but sectionRepo.SeedForCase was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
	}{CaseID: caseID}
	mock.lockSeedForCase.Lock()
	mock.calls.SeedForCase = append(mock.calls.SeedForCase, callInfo)
	mock.lockSeedForCase.Unlock()
	return mock.SeedForCaseFunc(ctx, caseID)
}

func (mock *sectionRepoMock) SeedForCaseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockSeedForCase.RLock()
	calls := mock.calls.SeedForCase
	mock.lockSeedForCase.RUnlock()
	return calls
}

func (mock *sectionRepoMock) Update(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType, params section.UpdateParams) (*domain.ReportSection, error) {
	if mock.UpdateFunc == nil {
		panic("sectionRepoMock.UpdateFunc: method is nil but sectionRepo.Update was just called")
	}
	callInfo := struct {
		CaseID      uuid.UUID
		SectionType domain.SectionType
		Params      section.UpdateParams
	}{CaseID: caseID, SectionType: sectionType, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, caseID, sectionType, params)
}

func (mock *sectionRepoMock) UpdateCalls() []struct {
	CaseID      uuid.UUID
	SectionType domain.SectionType
	Params      section.UpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *sectionRepoMock) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ReportSection, error) {
	if mock.ListByCaseFunc == nil {
		panic("sectionRepoMock.ListByCaseFunc: method is nil but sectionRepo.ListByCase was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
	}{CaseID: caseID}
	mock.lockListByCase.Lock()
	mock.calls.ListByCase = append(mock.calls.ListByCase, callInfo)
	mock.lockListByCase.Unlock()
	return mock.ListByCaseFunc(ctx, caseID)
}

func (mock *sectionRepoMock) ListByCaseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockListByCase.RLock()
	calls := mock.calls.ListByCase
	mock.lockListByCase.RUnlock()
	return calls
}

func (mock *sectionRepoMock) StatesByCase(ctx context.Context, caseID uuid.UUID) ([]domain.SectionState, error) {
	if mock.StatesByCaseFunc == nil {
		panic("sectionRepoMock.StatesByCaseFunc: method is nil but sectionRepo.StatesByCase was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
	}{CaseID: caseID}
	mock.lockStatesByCase.Lock()
	mock.calls.StatesByCase = append(mock.calls.StatesByCase, callInfo)
	mock.lockStatesByCase.Unlock()
	return mock.StatesByCaseFunc(ctx, caseID)
}

func (mock *sectionRepoMock) StatesByCaseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockStatesByCase.RLock()
	calls := mock.calls.StatesByCase
	mock.lockStatesByCase.RUnlock()
	return calls
}

func (mock *sectionRepoMock) Get(ctx context.Context, caseID uuid.UUID, sectionType domain.SectionType) (*domain.ReportSection, error) {
	if mock.GetFunc == nil {
		panic("sectionRepoMock.GetFunc: method is nil but sectionRepo.Get was just called")
	}
	callInfo := struct {
		CaseID      uuid.UUID
		SectionType domain.SectionType
	}{CaseID: caseID, SectionType: sectionType}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, caseID, sectionType)
}

func (mock *sectionRepoMock) GetCalls() []struct {
	CaseID      uuid.UUID
	SectionType domain.SectionType
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc     func(ctx context.Context, caseID, triggeredBy uuid.UUID) (*domain.PresenceAudit, error)
	GetByIDFunc    func(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error)
	ListByCaseFunc func(ctx context.Context, caseID uuid.UUID) ([]domain.PresenceAudit, error)

	calls struct {
		Create []struct {
			CaseID      uuid.UUID
			TriggeredBy uuid.UUID
		}
		GetByID []struct {
			AuditID uuid.UUID
		}
		ListByCase []struct {
			CaseID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByCase sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, caseID, triggeredBy uuid.UUID) (*domain.PresenceAudit, error) {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	callInfo := struct {
		CaseID      uuid.UUID
		TriggeredBy uuid.UUID
	}{CaseID: caseID, TriggeredBy: triggeredBy}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, caseID, triggeredBy)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	CaseID      uuid.UUID
	TriggeredBy uuid.UUID
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *auditRepoMock) GetByID(ctx context.Context, auditID uuid.UUID) (*domain.PresenceAudit, error) {
	if mock.GetByIDFunc == nil {
		panic("auditRepoMock.GetByIDFunc: method is nil but auditRepo.GetByID was just called")
	}
	callInfo := struct {
		AuditID uuid.UUID
	}{AuditID: auditID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, auditID)
}

func (mock *auditRepoMock) GetByIDCalls() []struct {
	AuditID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.PresenceAudit, error) {
	if mock.ListByCaseFunc == nil {
		panic("auditRepoMock.ListByCaseFunc: method is nil but auditRepo.ListByCase was just called")
	}
	callInfo := struct {
		CaseID uuid.UUID
	}{CaseID: caseID}
	mock.lockListByCase.Lock()
	mock.calls.ListByCase = append(mock.calls.ListByCase, callInfo)
	mock.lockListByCase.Unlock()
	return mock.ListByCaseFunc(ctx, caseID)
}

func (mock *auditRepoMock) ListByCaseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockListByCase.RLock()
	calls := mock.calls.ListByCase
	mock.lockListByCase.RUnlock()
	return calls
}

var _ auditScheduler = &auditSchedulerMock{}

type auditSchedulerMock struct {
	ScheduleFunc func(audit domain.PresenceAudit)

	calls struct {
		Schedule []struct {
			Audit domain.PresenceAudit
		}
	}
	lockSchedule sync.RWMutex
}

func (mock *auditSchedulerMock) Schedule(audit domain.PresenceAudit) {
	if mock.ScheduleFunc == nil {
		panic("auditSchedulerMock.ScheduleFunc: method is nil but auditScheduler.Schedule was just called")
	}
	callInfo := struct {
		Audit domain.PresenceAudit
	}{Audit: audit}
	mock.lockSchedule.Lock()
	mock.calls.Schedule = append(mock.calls.Schedule, callInfo)
	mock.lockSchedule.Unlock()
	mock.ScheduleFunc(audit)
}

func (mock *auditSchedulerMock) ScheduleCalls() []struct {
	Audit domain.PresenceAudit
} {
	mock.lockSchedule.RLock()
	calls := mock.calls.Schedule
	mock.lockSchedule.RUnlock()
	return calls
}

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.ActivityRecord) error

	calls struct {
		Log []struct {
			Record domain.ActivityRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(ctx context.Context, record domain.ActivityRecord) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Record domain.ActivityRecord
	}{Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Record domain.ActivityRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
