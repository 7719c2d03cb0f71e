package domain

import (
	"time"

	"github.com/google/uuid"
)

// CollectionMembership is a user's governance relationship to a collection.
// There is at most one record per (collection, user); status transitions
// update the record in place rather than inserting new rows.
type CollectionMembership struct {
	ID            uuid.UUID
	CollectionID  uuid.UUID
	UserID        int64
	Status        MembershipStatus
	Source        MembershipSource
	RequestedByID int64
	ActedByID     *int64
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsActive reports whether the membership currently grants maintainer rights.
func (m *CollectionMembership) IsActive() bool {
	return m.Status == MembershipActive
}

// IsPending reports whether the membership is an application awaiting review.
func (m *CollectionMembership) IsPending() bool {
	return m.Status == MembershipPending
}
