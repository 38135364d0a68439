package generation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	pantrymodels "github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

func product(name string, expiry *time.Time) pantrymodels.Product {
	return pantrymodels.Product{
		ID:         uuid.New(),
		Name:       name,
		Status:     pantrymodels.StatusNew,
		ExpiryDate: expiry,
	}
}

func inDays(n int) *time.Time {
	d := time.Now().UTC().AddDate(0, 0, n)
	return &d
}

func TestRuleGenerator_MatchesSpanishKeywordPair(t *testing.T) {
	pollo := product("Pollo", nil)
	arroz := product("Arroz", nil)

	suggestions, err := NewRuleGenerator().Generate(context.Background(), []pantrymodels.Product{pollo, arroz}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, s := range suggestions {
		if s.Title != "Arroz con pollo" {
			continue
		}
		found = true
		if len(s.Ingredients) != 2 {
			t.Fatalf("ingredients: got %d, want 2", len(s.Ingredients))
		}
		ids := map[uuid.UUID]bool{s.Ingredients[0].ProductID: true, s.Ingredients[1].ProductID: true}
		if !ids[pollo.ID] || !ids[arroz.ID] {
			t.Error("both products must be bound as ingredients")
		}
	}
	if !found {
		t.Fatal("expected Arroz con pollo to match")
	}
}

func TestRuleGenerator_DiscardsExpiredProducts(t *testing.T) {
	expired := product("Pollo", inDays(-2))

	suggestions, err := NewRuleGenerator().Generate(context.Background(), []pantrymodels.Product{expired}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("expired products must not yield suggestions, got %d", len(suggestions))
	}
}

func TestRuleGenerator_RanksByUrgentCount(t *testing.T) {
	// Eggs expire soon, rice does not: Huevos revueltos must outrank Arroz blanco.
	eggs := product("Huevos", inDays(1))
	rice := product("Arroz", inDays(300))

	suggestions, err := NewRuleGenerator().Generate(context.Background(), []pantrymodels.Product{rice, eggs}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) < 2 {
		t.Fatalf("expected at least 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Title != "Huevos revueltos" {
		t.Errorf("most urgent first: got %q", suggestions[0].Title)
	}
}

func TestRuleGenerator_CatalogOrderBreaksTies(t *testing.T) {
	// Neither product is urgent; matching templates keep catalog order.
	eggs := product("Huevos", nil)
	rice := product("Arroz", nil)

	suggestions, err := NewRuleGenerator().Generate(context.Background(), []pantrymodels.Product{rice, eggs}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Title != "Huevos revueltos" || suggestions[1].Title != "Arroz blanco" {
		t.Errorf("catalog order broken: %q, %q", suggestions[0].Title, suggestions[1].Title)
	}
}

func TestRuleGenerator_TruncatesToLimit(t *testing.T) {
	products := []pantrymodels.Product{
		product("Pollo", nil),
		product("Arroz", nil),
		product("Huevos", nil),
		product("Pasta", nil),
		product("Tomate", nil),
	}

	suggestions, err := NewRuleGenerator().Generate(context.Background(), products, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Errorf("limit: got %d suggestions, want 2", len(suggestions))
	}
}

func TestRuleGenerator_FirstMatchingPatternWins(t *testing.T) {
	// "Pollo con arroz" satisfies the english pattern ("chicken","rice")? No:
	// the first pattern fails on "chicken", the second ("pollo","arroz")
	// matches; one suggestion per template either way.
	p := product("Pollo con arroz", nil)

	suggestions, err := NewRuleGenerator().Generate(context.Background(), []pantrymodels.Product{p}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for _, s := range suggestions {
		if s.Title == "Arroz con pollo" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("template matched %d times, want exactly once", count)
	}
}

func TestMatchPattern_CaseInsensitiveSubstring(t *testing.T) {
	products := []pantrymodels.Product{product("WHOLE MILK carton", nil)}

	bound, ok := matchPattern([]string{"milk"}, products)
	if !ok || len(bound) != 1 {
		t.Fatalf("expected match, got ok=%v bound=%d", ok, len(bound))
	}

	if _, ok := matchPattern([]string{"milk", "cereal"}, products); ok {
		t.Error("pattern must only match when every keyword binds")
	}
}
