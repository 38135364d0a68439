package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/services/shopping/domain/models"
)

// ShoppingItemRepository persists shopping list entries. Implementations
// must return domain.ErrShoppingItemNotFound when an id is absent.
type ShoppingItemRepository interface {
	// Save inserts a new item.
	Save(ctx context.Context, item *models.ShoppingItem) error

	// Update overwrites an existing item.
	Update(ctx context.Context, item *models.ShoppingItem) error

	// GetByID fetches a single item.
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingItem, error)

	// GetAll returns the whole list, unbought entries first.
	GetAll(ctx context.Context) ([]models.ShoppingItem, error)

	// Delete removes an item permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearBought removes every bought item and reports how many went away.
	ClearBought(ctx context.Context) (int64, error)
}
