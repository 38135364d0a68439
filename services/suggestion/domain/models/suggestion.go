package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	suggestiondomain "github.com/ghuser/foodkeeper/services/suggestion/domain"
)

// TimeRange buckets how long a recipe takes to prepare.
type TimeRange string

const (
	TimeQuick  TimeRange = "quick"
	TimeMedium TimeRange = "medium"
	TimeLong   TimeRange = "long"
)

// Valid reports whether t is one of the known time ranges.
func (t TimeRange) Valid() bool {
	return t == TimeQuick || t == TimeMedium || t == TimeLong
}

// Minutes returns the rough preparation time the range stands for.
func (t TimeRange) Minutes() int {
	switch t {
	case TimeQuick:
		return 10
	case TimeMedium:
		return 20
	default:
		return 30
	}
}

// Ingredient binds a suggestion to a concrete pantry product. IsUrgent marks
// products that are expiring soon.
type Ingredient struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    *string
	IsUrgent    bool
}

// Suggestion is a generated recipe recommendation built from pantry products.
type Suggestion struct {
	ID            string
	Title         string
	Description   string
	EstimatedTime TimeRange
	Ingredients   []Ingredient
	// UrgentIngredients lists the product ids of expiring ingredients.
	UrgentIngredients []uuid.UUID
	Steps             []string
	CreatedAt         time.Time
}

// SuggestionParams carries the inputs for NewSuggestion.
type SuggestionParams struct {
	ID            string
	Title         string
	Description   string
	EstimatedTime TimeRange
	Ingredients   []Ingredient
	Steps         []string
}

// NewSuggestion constructs a valid Suggestion. A blank title, no
// ingredients, or an unknown time range fail with ErrInvalidSuggestion.
// Every generator output passes through here, so one malformed element
// invalidates the batch it belongs to.
func NewSuggestion(params SuggestionParams) (*Suggestion, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", suggestiondomain.ErrInvalidSuggestion)
	}
	if len(params.Ingredients) == 0 {
		return nil, fmt.Errorf("%w: must have at least one ingredient", suggestiondomain.ErrInvalidSuggestion)
	}
	if !params.EstimatedTime.Valid() {
		return nil, fmt.Errorf("%w: unknown time range %q", suggestiondomain.ErrInvalidSuggestion, params.EstimatedTime)
	}

	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}

	var urgent []uuid.UUID
	for _, ing := range params.Ingredients {
		if ing.IsUrgent {
			urgent = append(urgent, ing.ProductID)
		}
	}

	return &Suggestion{
		ID:                id,
		Title:             title,
		Description:       strings.TrimSpace(params.Description),
		EstimatedTime:     params.EstimatedTime,
		Ingredients:       params.Ingredients,
		UrgentIngredients: urgent,
		Steps:             params.Steps,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// HasUrgentIngredients reports whether any bound product is expiring soon.
func (s Suggestion) HasUrgentIngredients() bool {
	return len(s.UrgentIngredients) > 0
}
