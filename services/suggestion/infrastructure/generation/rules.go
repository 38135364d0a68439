// Package generation provides the SuggestionGenerator adapters: an offline
// rule-based matcher over a static recipe catalog and an OpenAI-backed one.
package generation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	pantrymodels "github.com/ghuser/foodkeeper/services/pantry/domain/models"
	pantrysvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
)

// RuleGenerator matches products against the static recipe catalog. It is
// deterministic and fully offline, and serves as the fallback when no
// text-generation backend is configured.
type RuleGenerator struct{}

// NewRuleGenerator returns the offline rule-based generator.
func NewRuleGenerator() *RuleGenerator {
	return &RuleGenerator{}
}

// Generate discards expired products, binds the catalog's templates against
// what remains, ranks matches by descending urgent-ingredient count (catalog
// order breaks ties), and truncates to limit.
func (g *RuleGenerator) Generate(_ context.Context, products []pantrymodels.Product, limit int) ([]models.Suggestion, error) {
	now := time.Now().UTC()

	var usable []pantrymodels.Product
	for _, p := range products {
		if !pantrysvcs.IsExpired(p, now) {
			usable = append(usable, p)
		}
	}
	if len(usable) == 0 {
		return []models.Suggestion{}, nil
	}

	type match struct {
		suggestion  models.Suggestion
		urgentCount int
	}
	var matches []match

	for _, template := range recipeCatalog {
		bound, ok := matchTemplate(template, usable)
		if !ok {
			continue
		}

		ingredients := make([]models.Ingredient, len(bound))
		names := make([]string, len(bound))
		urgentCount := 0
		for i, p := range bound {
			urgent := pantrysvcs.IsExpiringSoon(p, now)
			if urgent {
				urgentCount++
			}
			ingredients[i] = models.Ingredient{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    p.Quantity,
				IsUrgent:    urgent,
			}
			names[i] = p.Name
		}

		suggestion, err := models.NewSuggestion(models.SuggestionParams{
			Title:         template.name,
			Description:   fmt.Sprintf("Con %s", strings.Join(names, ", ")),
			EstimatedTime: template.timeRange,
			Ingredients:   ingredients,
			Steps:         template.steps,
		})
		if err != nil {
			return nil, fmt.Errorf("build suggestion %q: %w", template.name, err)
		}
		matches = append(matches, match{suggestion: *suggestion, urgentCount: urgentCount})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].urgentCount > matches[j].urgentCount
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	suggestions := make([]models.Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = m.suggestion
	}
	return suggestions, nil
}

// matchTemplate tries the template's patterns in order and binds the first
// one whose every keyword matches some product name.
func matchTemplate(template recipeTemplate, products []pantrymodels.Product) ([]pantrymodels.Product, bool) {
	for _, pattern := range template.patterns {
		if bound, ok := matchPattern(pattern, products); ok {
			return bound, true
		}
	}
	return nil, false
}

func matchPattern(pattern []string, products []pantrymodels.Product) ([]pantrymodels.Product, bool) {
	bound := make([]pantrymodels.Product, 0, len(pattern))
	for _, keyword := range pattern {
		kw := strings.ToLower(keyword)
		found := false
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), kw) {
				bound = append(bound, p)
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return bound, true
}
