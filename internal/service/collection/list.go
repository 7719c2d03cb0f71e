package collection

import (
	"context"
	"fmt"
	"strings"

	"github.com/InternationalRiversiders/discourse-collections/internal/domain"
	"github.com/InternationalRiversiders/discourse-collections/pkg/ctxutil"
)

// ManageableCollection is a listing row for the actor's own collections.
// AlreadyContains is set only when the caller asked for a contains probe.
type ManageableCollection struct {
	domain.CollectionSummary
	AlreadyContains *bool
}

// ListPlaza returns the public listing. Unknown filters fall back to latest;
// the limit is clamped to [1, 100] with a default of 50.
func (s *Service) ListPlaza(ctx context.Context, input ListPlazaInput) ([]domain.CollectionSummary, error) {
	filter := domain.PlazaFilter(input.Filter)
	if !filter.IsValid() {
		filter = domain.PlazaLatest
	}

	return s.collections.ListPlaza(ctx, domain.ListQuery{
		Filter: filter,
		Search: strings.TrimSpace(input.Search),
		Limit:  domain.ClampLimit(input.Limit),
	})
}

// ListMine returns the collections the actor can curate: created, owned, or
// actively maintained. When a contains target is given, each row reports
// whether that target is already collected there.
func (s *Service) ListMine(ctx context.Context, input ListMineInput) ([]ManageableCollection, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	summaries, err := s.collections.ListManageableBy(ctx, actor.ID,
		strings.TrimSpace(input.Search), domain.ClampLimit(input.Limit))
	if err != nil {
		return nil, err
	}

	result := make([]ManageableCollection, 0, len(summaries))
	for _, summary := range summaries {
		row := ManageableCollection{CollectionSummary: summary}

		if input.ContainsPostID > 0 || input.ContainsTopicID > 0 {
			var (
				contains   bool
				containErr error
			)
			if input.ContainsPostID > 0 {
				contains, containErr = s.items.ExistsPost(ctx, summary.ID, input.ContainsPostID)
			} else {
				contains, containErr = s.items.ExistsTopic(ctx, summary.ID, input.ContainsTopicID)
			}
			if containErr != nil {
				return nil, fmt.Errorf("probe collection %s: %w", summary.ID, containErr)
			}
			row.AlreadyContains = &contains
		}

		result = append(result, row)
	}

	return result, nil
}

// ListByUser returns a user's created collections, latest first.
func (s *Service) ListByUser(ctx context.Context, input ListByUserInput) ([]domain.CollectionSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.collections.ListByCreator(ctx, input.UserID,
		strings.TrimSpace(input.Search), domain.ClampLimit(input.Limit))
}
