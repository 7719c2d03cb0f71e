package collection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
)

// Get returns a collection by id. Soft-deleted collections read as missing.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("collection_id", "required")
	}

	c, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsDeleted() {
		return nil, fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}

	return c, nil
}
