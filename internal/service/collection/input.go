package collection

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// CreateInput holds the parameters for creating a collection.
type CreateInput struct {
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > domain.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a collection's metadata.
type UpdateInput struct {
	CollectionID uuid.UUID
	Title        string
	Description  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > domain.MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRecommendedInput holds the parameters for toggling the recommended flag.
type SetRecommendedInput struct {
	CollectionID uuid.UUID
	Recommended  bool
}

// Validate checks all fields and collects all errors.
func (i SetRecommendedInput) Validate() error {
	if i.CollectionID == uuid.Nil {
		return domain.NewValidationError("collection_id", "required")
	}
	return nil
}

// ListPlazaInput holds the parameters for the public listing.
type ListPlazaInput struct {
	Filter string
	Search string
	Limit  int
}

// ListMineInput holds the parameters for listing the actor's manageable
// collections. The optional contains fields probe each returned collection
// for a target already being collected.
type ListMineInput struct {
	Search          string
	Limit           int
	ContainsTopicID int64
	ContainsPostID  int64
}

// ListByUserInput holds the parameters for listing a user's created collections.
type ListByUserInput struct {
	UserID int64
	Search string
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListByUserInput) Validate() error {
	if i.UserID <= 0 {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}
