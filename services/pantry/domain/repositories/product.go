package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// ProductRepository persists pantry products.
// Implementations must return domain.ErrProductNotFound when an id is absent.
type ProductRepository interface {
	// Save inserts a new product.
	Save(ctx context.Context, product *models.Product) error

	// Update overwrites an existing product.
	Update(ctx context.Context, product *models.Product) error

	// GetByID fetches a single product.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// GetAll returns every product, finished ones included.
	GetAll(ctx context.Context) ([]models.Product, error)

	// GetActive returns products whose status is not finished.
	GetActive(ctx context.Context) ([]models.Product, error)

	// Count returns the total number of products.
	Count(ctx context.Context) (int64, error)

	// Delete removes a product permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
