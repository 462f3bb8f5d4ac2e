// Package gate implements the stage transition gate and progress calculator
// for the vetting pipeline. Both are pure: they decide over supplied state
// and perform no I/O. Callers fetch current section and recommendation state
// before evaluating.
package gate

import (
	"fmt"

	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// Flags carries the case-level facts the gate consults besides sections.
type Flags struct {
	HasRecommendation    bool
	HasEndorsementResult bool
}

// Decision is the gate's verdict on a proposed transition. A rejection is
// business data, not an error.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func reject(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// entryRequirement checks whether a case may enter the given stage.
// Returns "" when satisfied, otherwise the rejection reason.
type entryRequirement func(sections []domain.SectionState, flags Flags) string

// entryRequirements is the per-stage precondition table. Stages absent from
// the table have no entry requirement beyond pipeline order. Keeping this a
// lookup keeps the policy auditable and testable per transition.
var entryRequirements = map[domain.Stage]entryRequirement{
	domain.StageCommitteeReview: requireSectionsCompleted,
	domain.StageBoardVote:       requireRecommendation,
}

// Evaluate decides whether a case may move from current to target.
// Every stage boundary crossed by the transition is checked, so skipping
// ahead cannot bypass an intermediate stage's entry requirement.
func Evaluate(current, target domain.Stage, sections []domain.SectionState, flags Flags) Decision {
	if !target.IsValid() {
		return reject(fmt.Sprintf("unknown stage %q", target))
	}
	if !current.IsValid() {
		return reject(fmt.Sprintf("case is in unknown stage %q", current))
	}
	if !current.Before(target) {
		return reject("cannot move backward or re-enter the current stage")
	}

	for _, stage := range domain.StagesBetween(current, target) {
		req, ok := entryRequirements[stage]
		if !ok {
			continue
		}
		if reason := req(sections, flags); reason != "" {
			return reject(reason)
		}
	}

	return allow()
}

func requireSectionsCompleted(sections []domain.SectionState, _ Flags) string {
	for _, s := range sections {
		if !domain.IsRequiredSection(s.Type) {
			continue
		}
		if s.Status != domain.SectionStatusCompleted {
			return fmt.Sprintf("required report section %s is %s, not %s",
				s.Type, s.Status, domain.SectionStatusCompleted)
		}
	}
	return ""
}

func requireRecommendation(_ []domain.SectionState, flags Flags) string {
	if !flags.HasRecommendation {
		return "a committee recommendation must be recorded before the board vote"
	}
	return ""
}
