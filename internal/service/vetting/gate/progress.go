package gate

import (
	"math"

	"github.com/ballotworks/advocacy-backend/internal/domain"
)

// Progress is the completion summary of a case's report sections.
type Progress struct {
	Completed  int
	Total      int
	Percentage int
}

// CalculateProgress derives the completion summary from section statuses.
// COMPLETED is the sole terminal-success status. An empty section list
// yields 0%, not a division fault. The result does not depend on input order.
func CalculateProgress(sections []domain.SectionState) Progress {
	p := Progress{Total: len(sections)}

	for _, s := range sections {
		if s.Status == domain.SectionStatusCompleted {
			p.Completed++
		}
	}

	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}

	return p
}
