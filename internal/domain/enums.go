package domain

// Stage represents a position in the candidate vetting pipeline.
// Stages form a fixed total order; a case only ever moves forward
// (the sole exception is the compensating rollback after a failed
// presence-audit bootstrap).
type Stage string

const (
	StageSurveySubmitted Stage = "SURVEY_SUBMITTED"
	StageAutoAudit       Stage = "AUTO_AUDIT"
	StageAssigned        Stage = "ASSIGNED"
	StageResearch        Stage = "RESEARCH"
	StageInterview       Stage = "INTERVIEW"
	StageCommitteeReview Stage = "COMMITTEE_REVIEW"
	StageBoardVote       Stage = "BOARD_VOTE"
)

// stageOrder defines the pipeline order. Index position is the ordinal.
var stageOrder = []Stage{
	StageSurveySubmitted,
	StageAutoAudit,
	StageAssigned,
	StageResearch,
	StageInterview,
	StageCommitteeReview,
	StageBoardVote,
}

// Stages returns all pipeline stages in order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

func (s Stage) String() string { return string(s) }

func (s Stage) IsValid() bool {
	return s.ordinal() >= 0
}

// ordinal returns the position of the stage in the pipeline, or -1 if unknown.
func (s Stage) ordinal() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Before reports whether s comes strictly before other in the pipeline.
// Unknown stages are never before anything.
func (s Stage) Before(other Stage) bool {
	a, b := s.ordinal(), other.ordinal()
	return a >= 0 && b >= 0 && a < b
}

// StagesBetween returns the stages strictly after from and up to and including to,
// in pipeline order. Returns nil if either stage is unknown or to <= from.
func StagesBetween(from, to Stage) []Stage {
	a, b := from.ordinal(), to.ordinal()
	if a < 0 || b < 0 || b <= a {
		return nil
	}
	out := make([]Stage, 0, b-a)
	for i := a + 1; i <= b; i++ {
		out = append(out, stageOrder[i])
	}
	return out
}

// SectionType identifies one unit of the vetting report.
type SectionType string

const (
	SectionCandidateBackground SectionType = "CANDIDATE_BACKGROUND"
	SectionPolicyAlignment     SectionType = "POLICY_ALIGNMENT"
	SectionOpponentResearch    SectionType = "OPPONENT_RESEARCH"
	SectionFinancialDisclosure SectionType = "FINANCIAL_DISCLOSURE"
	SectionInterviewSummary    SectionType = "INTERVIEW_SUMMARY"
	SectionCommunityReferences SectionType = "COMMUNITY_REFERENCES"
)

func (t SectionType) String() string { return string(t) }

func (t SectionType) IsValid() bool {
	switch t {
	case SectionCandidateBackground, SectionPolicyAlignment, SectionOpponentResearch,
		SectionFinancialDisclosure, SectionInterviewSummary, SectionCommunityReferences:
		return true
	}
	return false
}

// SectionStatus represents the review status of a report section.
type SectionStatus string

const (
	SectionStatusNotStarted    SectionStatus = "NOT_STARTED"
	SectionStatusAssigned      SectionStatus = "ASSIGNED"
	SectionStatusInProgress    SectionStatus = "IN_PROGRESS"
	SectionStatusCompleted     SectionStatus = "COMPLETED"
	SectionStatusNeedsRevision SectionStatus = "NEEDS_REVISION"
)

func (s SectionStatus) String() string { return string(s) }

func (s SectionStatus) IsValid() bool {
	switch s {
	case SectionStatusNotStarted, SectionStatusAssigned, SectionStatusInProgress,
		SectionStatusCompleted, SectionStatusNeedsRevision:
		return true
	}
	return false
}

// rank orders statuses within one revision cycle.
func (s SectionStatus) rank() int {
	switch s {
	case SectionStatusNotStarted:
		return 0
	case SectionStatusAssigned:
		return 1
	case SectionStatusInProgress:
		return 2
	case SectionStatusCompleted:
		return 3
	default:
		return -1
	}
}

// CanTransitionTo reports whether a section may move from s to target.
// Within a revision cycle statuses only move forward. NEEDS_REVISION
// reopens a COMPLETED section; a reopened section re-enters the cycle
// at IN_PROGRESS or goes straight back to COMPLETED.
func (s SectionStatus) CanTransitionTo(target SectionStatus) bool {
	if !target.IsValid() || s == target {
		return false
	}
	if target == SectionStatusNeedsRevision {
		return s == SectionStatusCompleted
	}
	if s == SectionStatusNeedsRevision {
		return target == SectionStatusInProgress || target == SectionStatusCompleted
	}
	return target.rank() > s.rank()
}

// AuditStatus represents the lifecycle state of a digital presence audit.
type AuditStatus string

const (
	AuditStatusPending   AuditStatus = "PENDING"
	AuditStatusRunning   AuditStatus = "RUNNING"
	AuditStatusCompleted AuditStatus = "COMPLETED"
	AuditStatusFailed    AuditStatus = "FAILED"
)

func (s AuditStatus) String() string { return string(s) }

func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPending, AuditStatusRunning, AuditStatusCompleted, AuditStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s AuditStatus) IsTerminal() bool {
	return s == AuditStatusCompleted || s == AuditStatusFailed
}

// Recommendation is the committee's recommendation for a case.
type Recommendation string

const (
	RecommendationEndorse      Recommendation = "ENDORSE"
	RecommendationDoNotEndorse Recommendation = "DO_NOT_ENDORSE"
	RecommendationNoPosition   Recommendation = "NO_POSITION"
)

func (r Recommendation) String() string { return string(r) }

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationEndorse, RecommendationDoNotEndorse, RecommendationNoPosition:
		return true
	}
	return false
}

// EndorsementResult is the outcome of the board vote.
type EndorsementResult string

const (
	EndorsementResultEndorsed    EndorsementResult = "ENDORSED"
	EndorsementResultNotEndorsed EndorsementResult = "NOT_ENDORSED"
	EndorsementResultDeferred    EndorsementResult = "DEFERRED"
)

func (r EndorsementResult) String() string { return string(r) }

func (r EndorsementResult) IsValid() bool {
	switch r {
	case EndorsementResultEndorsed, EndorsementResultNotEndorsed, EndorsementResultDeferred:
		return true
	}
	return false
}

// UserRole represents the authorization level carried in identity claims.
type UserRole string

const (
	UserRoleMember         UserRole = "member"
	UserRoleVettingManager UserRole = "vetting_manager"
	UserRoleAdmin          UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleVettingManager, UserRoleAdmin:
		return true
	}
	return false
}

// CanManageVetting reports whether the role carries the vetting capability.
func (r UserRole) CanManageVetting() bool {
	return r == UserRoleVettingManager || r == UserRoleAdmin
}

// EntityType identifies the kind of domain entity (used in the activity log).
type EntityType string

const (
	EntityTypeCase          EntityType = "VETTING_CASE"
	EntityTypeSection       EntityType = "REPORT_SECTION"
	EntityTypePresenceAudit EntityType = "PRESENCE_AUDIT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCase, EntityTypeSection, EntityTypePresenceAudit:
		return true
	}
	return false
}

// ActivityAction represents the kind of mutation recorded in the activity log.
type ActivityAction string

const (
	ActivityActionCreate ActivityAction = "CREATE"
	ActivityActionUpdate ActivityAction = "UPDATE"
	ActivityActionDelete ActivityAction = "DELETE"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionCreate, ActivityActionUpdate, ActivityActionDelete:
		return true
	}
	return false
}
