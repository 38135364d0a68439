package services

import (
	"context"

	pantrymodels "github.com/ghuser/foodkeeper/services/pantry/domain/models"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
)

// SuggestionGenerator turns an urgency-sorted product list into recipe
// suggestions. Callers guarantee at least two products and a positive limit;
// implementations guarantee the result never exceeds limit. Failures surface
// as ErrGenerationFailed, never as a silently empty result.
type SuggestionGenerator interface {
	Generate(ctx context.Context, products []pantrymodels.Product, limit int) ([]models.Suggestion, error)
}
