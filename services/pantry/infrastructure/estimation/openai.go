package estimation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/ghuser/foodkeeper/pkg/logger"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
	"github.com/ghuser/foodkeeper/services/pantry/domain/services"
)

const estimatorSystemPrompt = `You are an expiry date estimator for a kitchen inventory app.
Given a product name, its current status, and storage location, estimate how long until it expires.

Rules:
1. Return ONLY a JSON object with these fields:
   - "daysUntilExpiry": number of days from TODAY until the product expires (integer)
   - "confidence": "high" (well-known products), "medium" (reasonable guess), "low" (uncertain), or "none" (cannot estimate)

2. Consider the product's current status:
   - "new": Unopened, sealed package
   - "opened": Package has been opened
   - "almost_empty": Nearly finished
   - "finished": Empty (should not be called, but treat as 0 days)

3. Consider storage location (affects shelf life):
   - "fridge": Refrigerated (extends perishables)
   - "freezer": Frozen (significantly extends shelf life)
   - "pantry": Room temperature (dry goods)
   - missing: Assume room temperature

4. Base estimates on food safety guidelines, not "best before" dates.

5. If you cannot estimate (e.g., too generic like "food"), return:
   {"daysUntilExpiry":null,"confidence":"none"}

Examples:
{"daysUntilExpiry":3,"confidence":"high"}
{"daysUntilExpiry":180,"confidence":"high"}
{"daysUntilExpiry":null,"confidence":"none"}`

// estimateTimeout caps every model call regardless of caller deadlines.
const estimateTimeout = 10 * time.Second

// OpenAIEstimator asks a chat model for shelf-life estimates. Results are
// memoized per (name, status, location) so repeated lookups for the same
// product state hit the API once. Any failure degrades to NoEstimation.
type OpenAIEstimator struct {
	llm llms.Model
	log logger.Logger

	mu    sync.Mutex
	cache map[string]services.Estimation
}

// NewOpenAIEstimator returns an estimator backed by the given chat model.
func NewOpenAIEstimator(llm llms.Model, log logger.Logger) *OpenAIEstimator {
	return &OpenAIEstimator{
		llm:   llm,
		log:   log,
		cache: make(map[string]services.Estimation),
	}
}

// EstimateExpiryDate never returns an error: timeouts, transport failures,
// and malformed replies all degrade to a {nil, none} estimation.
func (e *OpenAIEstimator) EstimateExpiryDate(ctx context.Context, name string, status models.Status, location *models.Location) services.Estimation {
	key := cacheKey(name, status, location)

	e.mu.Lock()
	cached, ok := e.cache[key]
	e.mu.Unlock()
	if ok {
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, estimateTimeout)
	defer cancel()

	estimation, err := e.call(ctx, name, status, location)
	if err != nil {
		e.log.WarnContext(ctx, "expiry estimation failed", "product", name, "error", err)
		return services.NoEstimation()
	}

	e.mu.Lock()
	e.cache[key] = estimation
	e.mu.Unlock()

	return estimation
}

func (e *OpenAIEstimator) call(ctx context.Context, name string, status models.Status, location *models.Location) (services.Estimation, error) {
	parts := []string{
		fmt.Sprintf("Product: %s", name),
		fmt.Sprintf("Status: %s", status),
	}
	if location != nil {
		parts = append(parts, fmt.Sprintf("Location: %s", *location))
	}
	parts = append(parts, "Estimate expiry date.")

	resp, err := e.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, estimatorSystemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, strings.Join(parts, "\n")),
	}, llms.WithTemperature(0.1))
	if err != nil {
		return services.Estimation{}, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return services.Estimation{}, fmt.Errorf("empty model response")
	}

	return parseEstimation(resp.Choices[0].Content)
}

// parseEstimation extracts the first JSON object from the reply and converts
// the day offset into a concrete date. An unrecognized confidence value is
// treated as none.
func parseEstimation(content string) (services.Estimation, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return services.Estimation{}, fmt.Errorf("no JSON object in model reply")
	}

	var parsed struct {
		DaysUntilExpiry *int   `json:"daysUntilExpiry"`
		Confidence      string `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return services.Estimation{}, fmt.Errorf("parse model reply: %w", err)
	}

	confidence := services.Confidence(parsed.Confidence)
	if !confidence.Valid() {
		confidence = services.ConfidenceNone
	}

	var date *time.Time
	if parsed.DaysUntilExpiry != nil {
		d := time.Now().UTC().AddDate(0, 0, *parsed.DaysUntilExpiry)
		date = &d
	}

	return services.Estimation{Date: date, Confidence: confidence}, nil
}

func cacheKey(name string, status models.Status, location *models.Location) string {
	loc := "none"
	if location != nil {
		loc = string(*location)
	}
	return strings.ToLower(name) + "|" + string(status) + "|" + loc
}
