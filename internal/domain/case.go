package domain

import (
	"time"

	"github.com/google/uuid"
)

// VettingCase is one candidate's record moving through the endorsement
// review pipeline.
type VettingCase struct {
	ID                uuid.UUID
	CandidateName     string
	Office            string
	State             string
	District          string
	Party             string
	Stage             Stage
	Recommendation    *Recommendation
	EndorsementResult *EndorsementResult
	InterviewAt       *time.Time
	InterviewNotes    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasRecommendation reports whether a committee recommendation has been recorded.
func (c *VettingCase) HasRecommendation() bool {
	return c.Recommendation != nil
}

// HasEndorsementResult reports whether a board vote outcome has been recorded.
func (c *VettingCase) HasEndorsementResult() bool {
	return c.EndorsementResult != nil
}
