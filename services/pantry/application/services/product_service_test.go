package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/config"
	"github.com/ghuser/foodkeeper/pkg/logger"
	pantrydomain "github.com/ghuser/foodkeeper/services/pantry/domain"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
	domainsvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
)

// fakeRepo is an in-memory ProductRepository.
type fakeRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]models.Product

	saveErr   error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[uuid.UUID]models.Product)}
}

func (r *fakeRepo) Save(_ context.Context, p *models.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	return nil
}

func (r *fakeRepo) Update(_ context.Context, p *models.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return pantrydomain.ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, pantrydomain.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetActive(_ context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.products {
		if p.Status != models.StatusFinished {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return pantrydomain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// fakeEstimator records its calls and returns a fixed estimation.
type fakeEstimator struct {
	estimation domainsvcs.Estimation
	panics     bool

	calls []estimatorCall
}

type estimatorCall struct {
	name     string
	status   models.Status
	location *models.Location
}

func (e *fakeEstimator) EstimateExpiryDate(_ context.Context, name string, status models.Status, location *models.Location) domainsvcs.Estimation {
	e.calls = append(e.calls, estimatorCall{name: name, status: status, location: location})
	if e.panics {
		panic("estimator exploded")
	}
	return e.estimation
}

func newService(repo *fakeRepo, estimator *fakeEstimator) *ProductService {
	log := logger.New(&config.Config{LogLevel: "error"})
	return NewProductService(repo, estimator, nil, log)
}

func TestAdd_CreatesAndEstimatesOnce(t *testing.T) {
	repo := newFakeRepo()
	estimated := time.Now().UTC().AddDate(0, 0, 7)
	estimator := &fakeEstimator{estimation: domainsvcs.Estimation{Date: &estimated, Confidence: domainsvcs.ConfidenceHigh}}
	svc := newService(repo, estimator)

	product, err := svc.Add(context.Background(), "Milk", AddProductOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if product.Name != "Milk" || product.Status != models.StatusNew {
		t.Errorf("got {%q, %q}, want {Milk, new}", product.Name, product.Status)
	}
	if len(estimator.calls) != 1 {
		t.Fatalf("estimator calls: got %d, want 1", len(estimator.calls))
	}
	call := estimator.calls[0]
	if call.name != "Milk" || call.status != models.StatusNew || call.location != nil {
		t.Errorf("estimator called with (%q, %q, %v), want (Milk, new, nil)", call.name, call.status, call.location)
	}
	if product.EstimatedExpiryDate == nil || !product.EstimatedExpiryDate.Equal(estimated) {
		t.Error("estimated expiry date should be written back")
	}
}

func TestAdd_EstimationFailureDoesNotPropagate(t *testing.T) {
	repo := newFakeRepo()
	repo.updateErr = errors.New("db unavailable") // estimation persistence fails
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	product, err := svc.Add(context.Background(), "Milk", AddProductOptions{})
	if err != nil {
		t.Fatalf("add must succeed despite estimation failure: %v", err)
	}
	if product.Name != "Milk" {
		t.Errorf("got %q", product.Name)
	}
}

func TestAdd_PanickingEstimatorIsContained(t *testing.T) {
	repo := newFakeRepo()
	estimator := &fakeEstimator{panics: true}
	svc := newService(repo, estimator)

	product, err := svc.Add(context.Background(), "Milk", AddProductOptions{})
	if err != nil {
		t.Fatalf("add must survive a panicking estimator: %v", err)
	}
	if product.EstimatedExpiryDate != nil {
		t.Error("no estimate should be recorded after a panic")
	}
}

func TestEstimateExpiry_ManualDateUntouched(t *testing.T) {
	repo := newFakeRepo()
	manual := time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC)
	estimated := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	estimator := &fakeEstimator{estimation: domainsvcs.Estimation{Date: &estimated, Confidence: domainsvcs.ConfidenceHigh}}
	svc := newService(repo, estimator)

	product, err := models.NewProduct(models.ProductParams{Name: "Milk", ExpiryDate: &manual})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(context.Background(), product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.EstimateExpiry(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ExpiryDate == nil || !updated.ExpiryDate.Equal(manual) {
		t.Error("manual expiry date must stay untouched")
	}
	if updated.EstimatedExpiryDate == nil || !updated.EstimatedExpiryDate.Equal(estimated) {
		t.Error("estimated expiry date must be written")
	}
}

func TestEstimateExpiry_ClearsOnNoEstimate(t *testing.T) {
	repo := newFakeRepo()
	stale := time.Now().UTC().AddDate(0, 0, 3)
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	product, _ := models.NewProduct(models.ProductParams{Name: "Mystery", EstimatedExpiryDate: &stale})
	_ = repo.Save(context.Background(), product)

	updated, err := svc.EstimateExpiry(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EstimatedExpiryDate != nil {
		t.Error("a none verdict must clear the stale estimate")
	}
}

func TestEstimateExpiry_NotFound(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeEstimator{})
	if _, err := svc.EstimateExpiry(context.Background(), uuid.New()); !errors.Is(err, pantrydomain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdate_LocationChangeTriggersEstimation(t *testing.T) {
	repo := newFakeRepo()
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	product, _ := models.NewProduct(models.ProductParams{Name: "Milk"})
	_ = repo.Save(context.Background(), product)

	_, err := svc.Update(context.Background(), product.ID, models.ProductPatch{
		Location: models.Set(models.LocationFreezer),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estimator.calls) != 1 {
		t.Errorf("estimator calls: got %d, want 1", len(estimator.calls))
	}
}

func TestUpdate_UnchangedLocationSkipsEstimation(t *testing.T) {
	repo := newFakeRepo()
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	fridge := models.LocationFridge
	product, _ := models.NewProduct(models.ProductParams{Name: "Milk", Location: &fridge})
	_ = repo.Save(context.Background(), product)

	// The patch supplies the location, but its value matches the current one.
	_, err := svc.Update(context.Background(), product.ID, models.ProductPatch{
		Location: models.Set(models.LocationFridge),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estimator.calls) != 0 {
		t.Errorf("estimator calls: got %d, want 0", len(estimator.calls))
	}
}

func TestUpdate_ClearingLocationTriggersEstimation(t *testing.T) {
	repo := newFakeRepo()
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	fridge := models.LocationFridge
	product, _ := models.NewProduct(models.ProductParams{Name: "Milk", Location: &fridge})
	_ = repo.Save(context.Background(), product)

	_, err := svc.Update(context.Background(), product.ID, models.ProductPatch{
		Location: models.Clear[models.Location](),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estimator.calls) != 1 {
		t.Errorf("estimator calls: got %d, want 1", len(estimator.calls))
	}
}

func TestUpdate_LocationWithManualExpirySkipsEstimation(t *testing.T) {
	repo := newFakeRepo()
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	product, _ := models.NewProduct(models.ProductParams{Name: "Milk"})
	_ = repo.Save(context.Background(), product)

	expiry := time.Now().UTC().AddDate(0, 0, 5)
	_, err := svc.Update(context.Background(), product.ID, models.ProductPatch{
		Location:   models.Set(models.LocationFridge),
		ExpiryDate: models.Set(expiry),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estimator.calls) != 0 {
		t.Errorf("estimator calls: got %d, want 0", len(estimator.calls))
	}
}

func TestUpdateStatus_AlwaysEstimates(t *testing.T) {
	repo := newFakeRepo()
	estimator := &fakeEstimator{estimation: domainsvcs.NoEstimation()}
	svc := newService(repo, estimator)

	product, _ := models.NewProduct(models.ProductParams{Name: "Milk"})
	_ = repo.Save(context.Background(), product)

	updated, err := svc.UpdateStatus(context.Background(), product.ID, models.StatusOpened)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusOpened {
		t.Errorf("status: got %q", updated.Status)
	}
	if len(estimator.calls) != 1 {
		t.Errorf("estimator calls: got %d, want 1", len(estimator.calls))
	}
	if estimator.calls[0].status != models.StatusOpened {
		t.Errorf("estimator must see the new status, got %q", estimator.calls[0].status)
	}
}

func TestSetOutcome(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeEstimator{estimation: domainsvcs.NoEstimation()})

	product, _ := models.NewProduct(models.ProductParams{Name: "Milk", Status: models.StatusOpened})
	_ = repo.Save(context.Background(), product)

	used := models.OutcomeUsed
	if _, err := svc.SetOutcome(context.Background(), product.ID, &used); !errors.Is(err, pantrydomain.ErrOutcomeRequiresFinishedStatus) {
		t.Fatalf("expected ErrOutcomeRequiresFinishedStatus, got %v", err)
	}

	// Clearing succeeds on the same non-finished product.
	updated, err := svc.SetOutcome(context.Background(), product.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Outcome != nil {
		t.Error("outcome should be cleared")
	}
}

func TestGetAll_CombinesActiveAndTotal(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo, &fakeEstimator{estimation: domainsvcs.NoEstimation()})

	active, _ := models.NewProduct(models.ProductParams{Name: "Milk"})
	finished, _ := models.NewProduct(models.ProductParams{Name: "Old rice", Status: models.StatusFinished})
	_ = repo.Save(context.Background(), active)
	_ = repo.Save(context.Background(), finished)

	list, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Active) != 1 {
		t.Errorf("active: got %d, want 1", len(list.Active))
	}
	if list.TotalCount != 2 {
		t.Errorf("total: got %d, want 2", list.TotalCount)
	}
}
