package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	pkgcache "github.com/ghuser/foodkeeper/pkg/cache"
	"github.com/ghuser/foodkeeper/pkg/logger"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
	"github.com/ghuser/foodkeeper/services/pantry/domain/repositories"
	domainsvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
)

// ProductService orchestrates the pantry use cases. Event publishing is
// handled by the repository layer (outbox pattern); reads are served from
// Redis cache when available.
//
// Expiry estimation after add, status change, and location change is a
// best-effort side effect: its failure is logged and never surfaces to the
// triggering operation.
type ProductService struct {
	repo      repositories.ProductRepository
	estimator domainsvcs.ExpiryEstimator
	cache     *pkgcache.ProductCache
	log       logger.Logger
}

// NewProductService returns a ProductService wired with its ports.
func NewProductService(repo repositories.ProductRepository, estimator domainsvcs.ExpiryEstimator, productCache *pkgcache.ProductCache, log logger.Logger) *ProductService {
	return &ProductService{repo: repo, estimator: estimator, cache: productCache, log: log}
}

// AddProductOptions carries the optional attributes for Add.
type AddProductOptions struct {
	Location   *models.Location
	Quantity   *string
	ExpiryDate *time.Time
}

// ProductList is the result of GetAll: currently active products plus the
// total count including finished ones.
type ProductList struct {
	Active     []models.Product
	TotalCount int64
}

// Add validates and persists a new product with status new, then triggers a
// best-effort expiry estimation for it.
func (s *ProductService) Add(ctx context.Context, name string, opts AddProductOptions) (*models.Product, error) {
	product, err := models.NewProduct(models.ProductParams{
		Name:       name,
		Status:     models.StatusNew,
		Location:   opts.Location,
		Quantity:   opts.Quantity,
		ExpiryDate: opts.ExpiryDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	if updated := s.tryEstimate(ctx, product.ID); updated != nil {
		return updated, nil
	}
	return product, nil
}

// Update applies a partial update. When the patch moves the product to a new
// location without also supplying a manual expiry date, a best-effort
// re-estimation follows.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	updated, err := models.ApplyPatch(*product, patch)
	if err != nil {
		return nil, fmt.Errorf("apply update: %w", err)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(id)

	if patch.Location.Present() && !patch.ExpiryDate.Present() && !sameLocation(product.Location, updated.Location) {
		if refreshed := s.tryEstimate(ctx, id); refreshed != nil {
			return refreshed, nil
		}
	}
	return &updated, nil
}

func sameLocation(a, b *models.Location) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// UpdateStatus moves the product to a new lifecycle status and always
// triggers a best-effort re-estimation afterwards.
func (s *ProductService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	updated, err := models.ApplyPatch(*product, models.ProductPatch{Status: models.Set(status)})
	if err != nil {
		return nil, fmt.Errorf("apply status: %w", err)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(id)

	if refreshed := s.tryEstimate(ctx, id); refreshed != nil {
		return refreshed, nil
	}
	return &updated, nil
}

// SetOutcome records what happened to a product. A non-nil outcome requires
// status finished; a nil outcome clears it regardless of status.
func (s *ProductService) SetOutcome(ctx context.Context, id uuid.UUID, outcome *models.Outcome) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	patch := models.ProductPatch{Outcome: models.Clear[models.Outcome]()}
	if outcome != nil {
		patch.Outcome = models.Set(*outcome)
	}

	updated, err := models.ApplyPatch(*product, patch)
	if err != nil {
		return nil, fmt.Errorf("apply outcome: %w", err)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(id)

	return &updated, nil
}

// GetAll issues its two repository reads concurrently and combines the
// results once both complete.
func (s *ProductService) GetAll(ctx context.Context) (ProductList, error) {
	var (
		active []models.Product
		total  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.repo.GetActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ProductList{}, fmt.Errorf("list products: %w", err)
	}

	return ProductList{Active: active, TotalCount: total}, nil
}

// GetByID retrieves a product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToProduct(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), ProductToCached(product))
		}()
	}

	return product, nil
}

// EstimateExpiry re-estimates the product's expiry date and persists the
// result into EstimatedExpiryDate, clearing it when the estimator has no
// verdict. The manual expiry date is never touched. The estimator call is
// wrapped defensively: a panicking estimator degrades to no estimate.
func (s *ProductService) EstimateExpiry(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	estimation := s.safeEstimate(ctx, product)

	patch := models.ProductPatch{EstimatedExpiryDate: models.Clear[time.Time]()}
	if estimation.Date != nil {
		patch.EstimatedExpiryDate = models.Set(*estimation.Date)
	}

	updated, err := models.ApplyPatch(*product, patch)
	if err != nil {
		return nil, fmt.Errorf("apply estimation: %w", err)
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	s.invalidate(id)

	return &updated, nil
}

// Delete removes a product permanently.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.invalidate(id)
	return nil
}

// tryEstimate runs EstimateExpiry as a side effect. Failure is logged, never
// propagated; the caller falls back to its own snapshot on nil.
func (s *ProductService) tryEstimate(ctx context.Context, id uuid.UUID) *models.Product {
	updated, err := s.EstimateExpiry(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "expiry estimation side effect failed", "product_id", id, "error", err)
		return nil
	}
	return updated
}

// safeEstimate shields the orchestration from a misbehaving estimator. The
// port contract says implementations never fail, but a panic here must not
// take the primary operation down with it.
func (s *ProductService) safeEstimate(ctx context.Context, product *models.Product) (estimation domainsvcs.Estimation) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "estimator panicked", "product_id", product.ID, "panic", r)
			estimation = domainsvcs.NoEstimation()
		}
	}()
	return s.estimator.EstimateExpiryDate(ctx, product.Name, product.Status, product.Location)
}

func (s *ProductService) invalidate(id uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(context.Background(), id)
}

// ProductToCached converts a domain product to its Redis read model.
func ProductToCached(p *models.Product) *pkgcache.CachedProduct {
	cached := &pkgcache.CachedProduct{
		ID:                  p.ID,
		Name:                p.Name,
		Status:              string(p.Status),
		ExpiryDate:          p.ExpiryDate,
		EstimatedExpiryDate: p.EstimatedExpiryDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	if p.Location != nil {
		cached.Location = string(*p.Location)
	}
	if p.Quantity != nil {
		cached.Quantity = *p.Quantity
	}
	if p.Outcome != nil {
		cached.Outcome = string(*p.Outcome)
	}
	return cached
}

func cachedToProduct(c *pkgcache.CachedProduct) *models.Product {
	p := &models.Product{
		ID:                  c.ID,
		Name:                c.Name,
		Status:              models.Status(c.Status),
		ExpiryDate:          c.ExpiryDate,
		EstimatedExpiryDate: c.EstimatedExpiryDate,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
	if c.Location != "" {
		loc := models.Location(c.Location)
		p.Location = &loc
	}
	if c.Quantity != "" {
		p.Quantity = &c.Quantity
	}
	if c.Outcome != "" {
		o := models.Outcome(c.Outcome)
		p.Outcome = &o
	}
	return p
}
