package domain

import (
	"time"

	"github.com/google/uuid"
)

// TargetKind discriminates the two item target variants.
type TargetKind string

const (
	TargetTopic TargetKind = "topic"
	TargetPost  TargetKind = "post"
)

// ItemTarget is the tagged union identifying what a collection item points at:
// either a whole topic, or a specific non-first post within its topic.
// Construct values through NewTopicTarget / NewPostTarget only; the
// constructors guarantee the post/topic consistency rule so an ItemTarget
// in circulation is always well-formed.
type ItemTarget struct {
	kind    TargetKind
	topicID int64
	postID  int64
}

// NewTopicTarget builds a target for a whole topic.
func NewTopicTarget(topic TopicRef) (ItemTarget, error) {
	if topic.ID <= 0 {
		return ItemTarget{}, NewValidationError("topic_id", "required")
	}
	return ItemTarget{kind: TargetTopic, topicID: topic.ID}, nil
}

// NewPostTarget builds a target for a specific post. The topic id is taken
// from the resolved post, so a post target can never claim a foreign topic.
// The first post of a topic is represented by the topic target instead.
func NewPostTarget(post PostRef) (ItemTarget, error) {
	var errs []FieldError
	if post.ID <= 0 {
		errs = append(errs, FieldError{Field: "post_id", Message: "required"})
	}
	if post.TopicID <= 0 {
		errs = append(errs, FieldError{Field: "topic_id", Message: "required"})
	}
	if post.Number == 1 {
		errs = append(errs, FieldError{Field: "post_id", Message: "first post must be collected as its topic"})
	}
	if len(errs) > 0 {
		return ItemTarget{}, &ValidationError{Errors: errs}
	}
	return ItemTarget{kind: TargetPost, topicID: post.TopicID, postID: post.ID}, nil
}

// Kind returns the target variant.
func (t ItemTarget) Kind() TargetKind { return t.kind }

// TopicID returns the topic the target belongs to (set for both variants).
func (t ItemTarget) TopicID() int64 { return t.topicID }

// PostID returns the post id and true for post targets, 0 and false otherwise.
func (t ItemTarget) PostID() (int64, bool) {
	if t.kind != TargetPost {
		return 0, false
	}
	return t.postID, true
}

// IsZero reports whether the target was never constructed.
func (t ItemTarget) IsZero() bool { return t.kind == "" }

// CollectionItem is one curated reference inside a collection. Positions
// within a collection form a dense 0..n-1 sequence.
type CollectionItem struct {
	ID            uuid.UUID
	CollectionID  uuid.UUID
	TopicID       int64
	PostID        *int64
	Position      int
	Note          *string
	CollectedAt   time.Time
	CollectedByID int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Target reconstructs the item's target union from its stored columns.
func (i *CollectionItem) Target() ItemTarget {
	if i.PostID != nil {
		return ItemTarget{kind: TargetPost, topicID: i.TopicID, postID: *i.PostID}
	}
	return ItemTarget{kind: TargetTopic, topicID: i.TopicID}
}
