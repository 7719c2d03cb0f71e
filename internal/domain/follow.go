package domain

import (
	"time"

	"github.com/google/uuid"
)

// CollectionFollow marks a non-governance subscription of a user to a
// collection. Unique per (collection, user); not audited.
type CollectionFollow struct {
	ID           uuid.UUID
	CollectionID uuid.UUID
	UserID       int64
	CreatedAt    time.Time
}
