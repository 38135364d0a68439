package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/config"
	"github.com/ghuser/foodkeeper/pkg/logger"
	pantrydomain "github.com/ghuser/foodkeeper/services/pantry/domain"
	pantrymodels "github.com/ghuser/foodkeeper/services/pantry/domain/models"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
)

// fakeProductRepo serves a fixed active-product list.
type fakeProductRepo struct {
	active []pantrymodels.Product
	err    error
}

func (r *fakeProductRepo) Save(context.Context, *pantrymodels.Product) error   { return nil }
func (r *fakeProductRepo) Update(context.Context, *pantrymodels.Product) error { return nil }
func (r *fakeProductRepo) GetByID(context.Context, uuid.UUID) (*pantrymodels.Product, error) {
	return nil, pantrydomain.ErrProductNotFound
}
func (r *fakeProductRepo) GetAll(context.Context) ([]pantrymodels.Product, error) {
	return r.active, r.err
}
func (r *fakeProductRepo) GetActive(context.Context) ([]pantrymodels.Product, error) {
	return r.active, r.err
}
func (r *fakeProductRepo) Count(context.Context) (int64, error) {
	return int64(len(r.active)), nil
}
func (r *fakeProductRepo) Delete(context.Context, uuid.UUID) error { return nil }

// fakeGenerator records the input it received.
type fakeGenerator struct {
	out   []models.Suggestion
	err   error
	calls int
	seen  []pantrymodels.Product
	limit int
}

func (g *fakeGenerator) Generate(_ context.Context, products []pantrymodels.Product, limit int) ([]models.Suggestion, error) {
	g.calls++
	g.seen = products
	g.limit = limit
	return g.out, g.err
}

func activeProduct(name string, expiry *time.Time) pantrymodels.Product {
	return pantrymodels.Product{
		ID:         uuid.New(),
		Name:       name,
		Status:     pantrymodels.StatusNew,
		ExpiryDate: expiry,
	}
}

func newTestService(repo *fakeProductRepo, gen *fakeGenerator) *SuggestionService {
	return NewSuggestionService(repo, gen, logger.New(&config.Config{LogLevel: "error"}))
}

func TestGet_TooFewProductsSkipsGenerator(t *testing.T) {
	repo := &fakeProductRepo{active: []pantrymodels.Product{activeProduct("Milk", nil)}}
	gen := &fakeGenerator{}
	svc := newTestService(repo, gen)

	suggestions, err := svc.Get(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(suggestions))
	}
	if gen.calls != 0 {
		t.Errorf("generator must never be called, got %d calls", gen.calls)
	}
}

func TestGet_PassesUrgencySortedProducts(t *testing.T) {
	now := time.Now().UTC()
	soon := now.AddDate(0, 0, 1)
	later := now.AddDate(0, 0, 30)
	calm := activeProduct("Arroz", &later)
	urgent := activeProduct("Pollo", &soon)

	repo := &fakeProductRepo{active: []pantrymodels.Product{calm, urgent}}
	gen := &fakeGenerator{}
	svc := newTestService(repo, gen)

	if _, err := svc.Get(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls: got %d, want 1", gen.calls)
	}
	if gen.limit != 3 {
		t.Errorf("limit: got %d, want 3", gen.limit)
	}
	if len(gen.seen) != 2 || gen.seen[0].ID != urgent.ID {
		t.Error("generator must receive the urgency-sorted list, most urgent first")
	}
}

func TestGet_DefaultLimit(t *testing.T) {
	repo := &fakeProductRepo{active: []pantrymodels.Product{
		activeProduct("Pollo", nil), activeProduct("Arroz", nil),
	}}
	gen := &fakeGenerator{}
	svc := newTestService(repo, gen)

	if _, err := svc.Get(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.limit != DefaultSuggestionLimit {
		t.Errorf("limit: got %d, want %d", gen.limit, DefaultSuggestionLimit)
	}
}

func TestGet_GeneratorFailurePropagates(t *testing.T) {
	repo := &fakeProductRepo{active: []pantrymodels.Product{
		activeProduct("Pollo", nil), activeProduct("Arroz", nil),
	}}
	genErr := errors.New("model unavailable")
	svc := newTestService(repo, &fakeGenerator{err: genErr})

	if _, err := svc.Get(context.Background(), 5); !errors.Is(err, genErr) {
		t.Fatalf("expected generator error to propagate, got %v", err)
	}
}

func TestGet_CapsOversizedGeneratorOutput(t *testing.T) {
	repo := &fakeProductRepo{active: []pantrymodels.Product{
		activeProduct("Pollo", nil), activeProduct("Arroz", nil),
	}}

	oversized := make([]models.Suggestion, 4)
	for i := range oversized {
		oversized[i] = models.Suggestion{Title: "x", EstimatedTime: models.TimeQuick}
	}
	svc := newTestService(repo, &fakeGenerator{out: oversized})

	suggestions, err := svc.Get(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Errorf("got %d suggestions, want 2", len(suggestions))
	}
}
