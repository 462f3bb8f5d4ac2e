package vetting

import (
	"github.com/ballotworks/advocacy-backend/internal/domain"
	"github.com/ballotworks/advocacy-backend/internal/service/vetting/gate"
)

// CaseDetail is the full read model of one vetting case.
type CaseDetail struct {
	Case     domain.VettingCase
	Sections []domain.ReportSection
	Progress gate.Progress
}

// CaseList is one page of cases plus the total match count.
type CaseList struct {
	Cases []domain.VettingCase
	Total int
}
