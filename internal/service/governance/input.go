package governance

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// InviteInput holds the parameters for inviting a user as maintainer.
type InviteInput struct {
	CollectionID uuid.UUID
	UserID       int64
	Note         *string
}

// Validate checks all fields and collects all errors.
func (i InviteInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Note != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Note)) > domain.MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApplyInput holds the parameters for applying to become a maintainer.
type ApplyInput struct {
	CollectionID uuid.UUID
	Note         *string
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.Note != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Note)) > domain.MaxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DecisionInput identifies the applicant or maintainer an owner acts on. It
// is shared by Approve, Reject and RemoveMaintainer.
type DecisionInput struct {
	CollectionID uuid.UUID
	UserID       int64
}

// Validate checks all fields and collects all errors.
func (i DecisionInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransferInput holds the parameters for transferring collection ownership.
// The new owner is addressed by id or by username; id wins when both are set.
type TransferInput struct {
	CollectionID     uuid.UUID
	NewOwnerID       int64
	NewOwnerUsername string
}

// Validate checks all fields and collects all errors.
func (i TransferInput) Validate() error {
	var errs []domain.FieldError

	if i.CollectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "collection_id", Message: "required"})
	}
	if i.NewOwnerID <= 0 && strings.TrimSpace(i.NewOwnerUsername) == "" {
		errs = append(errs, domain.FieldError{Field: "new_owner", Message: "an id or username is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRoleEventsInput holds the parameters for reading the role event log.
type ListRoleEventsInput struct {
	CollectionID uuid.UUID
	Limit        int
}

// Validate checks all fields and collects all errors.
func (i ListRoleEventsInput) Validate() error {
	if i.CollectionID == uuid.Nil {
		return domain.NewValidationError("collection_id", "required")
	}
	return nil
}
