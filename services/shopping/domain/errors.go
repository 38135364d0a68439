package domain

import "errors"

// Sentinel errors for the shopping domain. Use errors.Is() to check these.
var (
	// ErrShoppingItemNameEmpty indicates the item name is empty after trimming.
	ErrShoppingItemNameEmpty = errors.New("shopping item name cannot be empty")

	// ErrShoppingItemNotFound indicates the requested item does not exist.
	ErrShoppingItemNotFound = errors.New("shopping item not found")
)
