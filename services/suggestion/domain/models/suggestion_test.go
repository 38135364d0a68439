package models_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	suggestiondomain "github.com/ghuser/foodkeeper/services/suggestion/domain"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
)

func ingredient(name string, urgent bool) models.Ingredient {
	return models.Ingredient{ProductID: uuid.New(), ProductName: name, IsUrgent: urgent}
}

func TestNewSuggestion_Validation(t *testing.T) {
	valid := models.SuggestionParams{
		Title:         "Arroz con pollo",
		EstimatedTime: models.TimeMedium,
		Ingredients:   []models.Ingredient{ingredient("Pollo", true)},
	}

	tests := []struct {
		name   string
		mutate func(*models.SuggestionParams)
	}{
		{"empty title", func(p *models.SuggestionParams) { p.Title = "" }},
		{"whitespace title", func(p *models.SuggestionParams) { p.Title = "   " }},
		{"no ingredients", func(p *models.SuggestionParams) { p.Ingredients = nil }},
		{"unknown time range", func(p *models.SuggestionParams) { p.EstimatedTime = "instant" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)
			if _, err := models.NewSuggestion(params); !errors.Is(err, suggestiondomain.ErrInvalidSuggestion) {
				t.Fatalf("expected ErrInvalidSuggestion, got %v", err)
			}
		})
	}
}

func TestNewSuggestion_ExtractsUrgentIngredients(t *testing.T) {
	urgent := ingredient("Pollo", true)
	calm := ingredient("Arroz", false)

	suggestion, err := models.NewSuggestion(models.SuggestionParams{
		Title:         "  Arroz con pollo  ",
		EstimatedTime: models.TimeMedium,
		Ingredients:   []models.Ingredient{urgent, calm},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if suggestion.Title != "Arroz con pollo" {
		t.Errorf("title not trimmed: %q", suggestion.Title)
	}
	if suggestion.ID == "" {
		t.Error("expected generated id")
	}
	if len(suggestion.UrgentIngredients) != 1 || suggestion.UrgentIngredients[0] != urgent.ProductID {
		t.Errorf("urgent ingredients: got %v", suggestion.UrgentIngredients)
	}
	if !suggestion.HasUrgentIngredients() {
		t.Error("expected urgent ingredients")
	}
}

func TestTimeRange_Minutes(t *testing.T) {
	tests := []struct {
		tr   models.TimeRange
		want int
	}{
		{models.TimeQuick, 10},
		{models.TimeMedium, 20},
		{models.TimeLong, 30},
	}
	for _, tt := range tests {
		if got := tt.tr.Minutes(); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.tr, got, tt.want)
		}
	}
}
