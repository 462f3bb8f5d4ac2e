package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportSection is one independently assignable unit of the vetting report.
type ReportSection struct {
	ID         uuid.UUID
	CaseID     uuid.UUID
	Type       SectionType
	Status     SectionStatus
	Payload    map[string]any
	AssignedTo *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SectionSpec describes one entry of the fixed report catalog.
type SectionSpec struct {
	Type SectionType
	// Required sections must be COMPLETED before the case may enter
	// COMMITTEE_REVIEW.
	Required bool
}

// sectionCatalog is the fixed set of report sections seeded at case creation.
var sectionCatalog = []SectionSpec{
	{Type: SectionCandidateBackground, Required: true},
	{Type: SectionPolicyAlignment, Required: true},
	{Type: SectionOpponentResearch, Required: true},
	{Type: SectionFinancialDisclosure, Required: true},
	{Type: SectionInterviewSummary, Required: true},
	{Type: SectionCommunityReferences, Required: false},
}

// SectionCatalog returns the fixed report section catalog.
func SectionCatalog() []SectionSpec {
	out := make([]SectionSpec, len(sectionCatalog))
	copy(out, sectionCatalog)
	return out
}

// IsRequiredSection reports whether the given type must be completed before
// committee review.
func IsRequiredSection(t SectionType) bool {
	for _, spec := range sectionCatalog {
		if spec.Type == t {
			return spec.Required
		}
	}
	return false
}

// SectionState is the minimal view of a section the stage gate evaluates.
type SectionState struct {
	Type   SectionType
	Status SectionStatus
}
