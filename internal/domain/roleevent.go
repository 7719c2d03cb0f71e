package domain

import (
	"time"

	"github.com/google/uuid"
)

// CollectionRoleEvent is an immutable audit record of a governance
// transition. Events are only ever appended, in the same transaction as the
// transition they describe.
type CollectionRoleEvent struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	Type         RoleEventType
	ActorID      int64
	TargetID     *int64
	FromID       *int64
	ToID         *int64
	Metadata     map[string]any
	CreatedAt    time.Time
}
