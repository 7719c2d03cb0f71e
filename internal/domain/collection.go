package domain

import (
	"time"

	"github.com/google/uuid"
)

// Title and description limits enforced at the validation boundary.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 2000
	MaxNoteLength        = 1000
)

// Collection is a named, ordered curation of forum topics and posts.
// The creator never changes; the owner is transferable.
type Collection struct {
	ID          uuid.UUID
	CreatorID   int64
	OwnerID     int64
	Title       string
	Description *string
	Recommended bool
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDeleted returns true if the collection has been soft-deleted.
func (c *Collection) IsDeleted() bool {
	return c.DeletedAt != nil
}

// IsOwner reports whether userID is the current owner.
func (c *Collection) IsOwner(userID int64) bool {
	return userID == c.OwnerID
}

// CanManage reports whether userID may edit metadata or invite maintainers.
// Only the owner and the creator hold this role.
func (c *Collection) CanManage(userID int64) bool {
	return userID == c.OwnerID || userID == c.CreatorID
}

// CollectionSummary is a listing row: the collection plus the aggregate
// counts listings sort and render by.
type CollectionSummary struct {
	Collection
	FollowersCount int
}
