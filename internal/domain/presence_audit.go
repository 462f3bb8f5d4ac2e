package domain

import (
	"time"

	"github.com/google/uuid"
)

// PresenceAudit is one asynchronous digital-presence background check tied
// to a vetting case. At most one non-terminal audit exists per case
// (enforced by a partial unique index).
type PresenceAudit struct {
	ID           uuid.UUID
	CaseID       uuid.UUID
	Status       AuditStatus
	ErrorMessage *string
	CompletedAt  *time.Time
	TriggeredBy  uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
