package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	shoppingdomain "github.com/ghuser/foodkeeper/services/shopping/domain"
)

// ShoppingItem is one entry on the shopping list. ProductID optionally links
// back to the pantry product the entry restocks.
type ShoppingItem struct {
	ID        uuid.UUID
	Name      string
	ProductID *uuid.UUID
	IsBought  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewShoppingItem constructs an unbought item. The name is trimmed and must
// be non-empty afterwards.
func NewShoppingItem(name string, productID *uuid.UUID) (*ShoppingItem, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, shoppingdomain.ErrShoppingItemNameEmpty
	}

	now := time.Now().UTC()
	return &ShoppingItem{
		ID:        uuid.New(),
		Name:      trimmed,
		ProductID: productID,
		IsBought:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetBought marks the item bought or unbought and advances UpdatedAt.
func (i *ShoppingItem) SetBought(bought bool) {
	i.IsBought = bought
	i.UpdatedAt = time.Now().UTC()
}
