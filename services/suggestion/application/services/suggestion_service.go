package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/foodkeeper/pkg/logger"
	pantryrepos "github.com/ghuser/foodkeeper/services/pantry/domain/repositories"
	pantrysvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
	domainsvcs "github.com/ghuser/foodkeeper/services/suggestion/domain/services"
)

// minProductsForSuggestions is the threshold below which the generator is
// never invoked.
const minProductsForSuggestions = 2

// DefaultSuggestionLimit caps results when the caller supplies no limit.
const DefaultSuggestionLimit = 5

// SuggestionService answers "what should I cook now" from the current pantry.
type SuggestionService struct {
	products  pantryrepos.ProductRepository
	generator domainsvcs.SuggestionGenerator
	log       logger.Logger
}

// NewSuggestionService returns a SuggestionService wired with its ports.
func NewSuggestionService(products pantryrepos.ProductRepository, generator domainsvcs.SuggestionGenerator, log logger.Logger) *SuggestionService {
	return &SuggestionService{products: products, generator: generator, log: log}
}

// Get loads the active products, sorts them by urgency, and delegates to the
// generator capped to limit. Fewer than two active products yield an empty
// result without consulting the generator. Generator failures propagate.
func (s *SuggestionService) Get(ctx context.Context, limit int) ([]models.Suggestion, error) {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	active, err := s.products.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	if len(active) < minProductsForSuggestions {
		s.log.InfoContext(ctx, "skipping suggestion generation",
			"reason", "not enough products", "product_count", len(active))
		return []models.Suggestion{}, nil
	}

	sorted := pantrysvcs.SortByUrgency(active, time.Now().UTC())

	suggestions, err := s.generator.Generate(ctx, sorted, limit)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}
