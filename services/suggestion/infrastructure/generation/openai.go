package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/ghuser/foodkeeper/pkg/logger"
	pantrymodels "github.com/ghuser/foodkeeper/services/pantry/domain/models"
	pantrysvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
	suggestiondomain "github.com/ghuser/foodkeeper/services/suggestion/domain"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
)

const generatorSystemPrompt = `You are a helpful cooking assistant for a Spanish kitchen app.
Your goal: help tired users decide what to cook quickly, prioritizing ingredients that are expiring soon.

Core principles:
- Keep suggestions SIMPLE (max 30 min cooking time)
- Prioritize products expiring soon
- Use realistic ingredient combinations
- Be calm and clear - this is for people who are tired
- Focus on common Spanish/Mediterranean dishes when possible

Return ONLY valid JSON array, no additional text.`

// OpenAIGenerator asks a chat model for recipe suggestions. Unlike the
// expiry estimator there is no silent degradation: any transport or parse
// failure wraps ErrGenerationFailed and propagates to the caller.
type OpenAIGenerator struct {
	llm llms.Model
	log logger.Logger
}

// NewOpenAIGenerator returns a generator backed by the given chat model.
func NewOpenAIGenerator(llm llms.Model, log logger.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{llm: llm, log: log}
}

type wireSuggestion struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	EstimatedTime string `json:"estimatedTime"`
	Ingredients   []struct {
		ProductID   string `json:"productId"`
		ProductName string `json:"productName"`
		IsUrgent    bool   `json:"isUrgent"`
	} `json:"ingredients"`
	Steps []string `json:"steps,omitempty"`
}

// Generate sends the urgency-sorted product list to the model and parses the
// constrained JSON reply. Every element passes through the Suggestion
// factory, so one malformed element aborts the whole batch.
func (g *OpenAIGenerator) Generate(ctx context.Context, products []pantrymodels.Product, limit int) ([]models.Suggestion, error) {
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

	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, generatorSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, buildPrompt(usable, limit, now)),
	}, llms.WithTemperature(0.7), llms.WithMaxTokens(2000))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", suggestiondomain.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return nil, fmt.Errorf("%w: empty model response", suggestiondomain.ErrGenerationFailed)
	}

	suggestions, err := g.parseResponse(resp.Choices[0].Content, usable)
	if err != nil {
		g.log.ErrorContext(ctx, "failed to parse suggestion response", "error", err)
		return nil, err
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

func buildPrompt(products []pantrymodels.Product, limit int, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Given these products from the user's pantry, suggest %d simple recipes they can make TODAY.\n\n", limit)
	b.WriteString("PRODUCTS (sorted by urgency):\n")
	for _, p := range products {
		daysText := "no expiry date"
		if days, ok := pantrysvcs.DaysUntilExpiry(p, now); ok {
			daysText = fmt.Sprintf("expires in %d days", days)
		}
		fmt.Fprintf(&b, "- %s (id: %s, %s, %s)\n", p.Name, p.ID, pantrysvcs.UrgencyLevelFor(p, now), daysText)
	}
	fmt.Fprintf(&b, `
Requirements:
- Return %d suggestions maximum
- Prioritize recipes using products expiring soon (use_today, use_soon)
- Keep recipes SIMPLE and realistic
- Estimate time: "quick" (~10min), "medium" (~20min), "long" (~30min)
- Provide 3-4 brief steps per recipe
- Use products from the list above

Return JSON array with this EXACT structure:
[
  {
    "title": "Recipe name in Spanish",
    "description": "Brief description mentioning urgent ingredients if any",
    "estimatedTime": "quick" | "medium" | "long",
    "ingredients": [
      {
        "productId": "product-id-from-list",
        "productName": "Product name",
        "isUrgent": true | false
      }
    ],
    "steps": ["Step 1", "Step 2", "Step 3"]
  }
]`, limit)
	return b.String()
}

func (g *OpenAIGenerator) parseResponse(content string, products []pantrymodels.Product) ([]models.Suggestion, error) {
	jsonText := stripFences(content)

	var parsed []wireSuggestion
	if err := json.Unmarshal([]byte(jsonText), &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %w", suggestiondomain.ErrGenerationFailed, err)
	}

	byID := make(map[uuid.UUID]pantrymodels.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	suggestions := make([]models.Suggestion, 0, len(parsed))
	for i, item := range parsed {
		ingredients := make([]models.Ingredient, len(item.Ingredients))
		for j, ing := range item.Ingredients {
			id, _ := uuid.Parse(ing.ProductID)
			ingredient := models.Ingredient{
				ProductID:   id,
				ProductName: ing.ProductName,
				IsUrgent:    ing.IsUrgent,
			}
			if p, ok := byID[id]; ok {
				ingredient.Quantity = p.Quantity
			}
			ingredients[j] = ingredient
		}

		suggestion, err := models.NewSuggestion(models.SuggestionParams{
			Title:         item.Title,
			Description:   item.Description,
			EstimatedTime: models.TimeRange(item.EstimatedTime),
			Ingredients:   ingredients,
			Steps:         item.Steps,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", suggestiondomain.ErrGenerationFailed, i, err)
		}
		suggestions = append(suggestions, *suggestion)
	}
	return suggestions, nil
}

// stripFences removes markdown code fences the model sometimes wraps its
// JSON reply in.
func stripFences(content string) string {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```json") {
		s = strings.ReplaceAll(s, "```json", "")
		s = strings.ReplaceAll(s, "```", "")
	} else if strings.HasPrefix(s, "```") {
		s = strings.ReplaceAll(s, "```", "")
	}
	return strings.TrimSpace(s)
}
