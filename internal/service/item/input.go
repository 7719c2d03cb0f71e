package item

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// AddInput holds the parameters for collecting a topic or post.
// PostID wins when both ids are set, mirroring how a post reference
// always carries its topic.
type AddInput struct {
	CollectionID uuid.UUID
	TopicID      int64
	PostID       int64
	Note         *string
}

// Validate checks all fields and collects all errors.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.TopicID <= 0 && i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "a topic or post is required"})
	}
	if i.Note != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Note)) > domain.MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveInput holds the parameters for removing an item.
type RemoveInput struct {
	CollectionID uuid.UUID
	ItemID       uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveInput) Validate() error {
	var errs []domain.FieldError
	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveInput holds the parameters for moving an item to a new position.
// Out-of-range positions are clamped, not rejected.
type MoveInput struct {
	CollectionID uuid.UUID
	ItemID       uuid.UUID
	Position     int
}

// Validate checks all fields and collects all errors.
func (i MoveInput) Validate() error {
	var errs []domain.FieldError
	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
