package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is one append-only entry in the activity log.
type ActivityRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     ActivityAction
	Changes    map[string]any
	CreatedAt  time.Time
}
