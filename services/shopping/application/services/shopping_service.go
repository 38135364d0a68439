package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/logger"
	"github.com/ghuser/foodkeeper/services/shopping/domain/models"
	"github.com/ghuser/foodkeeper/services/shopping/domain/repositories"
)

// ShoppingService manages the shopping list.
type ShoppingService struct {
	repo repositories.ShoppingItemRepository
	log  logger.Logger
}

// NewShoppingService returns a ShoppingService wired with its repository.
func NewShoppingService(repo repositories.ShoppingItemRepository, log logger.Logger) *ShoppingService {
	return &ShoppingService{repo: repo, log: log}
}

// Add validates and persists a new list entry, optionally linked to a pantry
// product.
func (s *ShoppingService) Add(ctx context.Context, name string, productID *uuid.UUID) (*models.ShoppingItem, error) {
	item, err := models.NewShoppingItem(name, productID)
	if err != nil {
		return nil, fmt.Errorf("create shopping item: %w", err)
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save shopping item: %w", err)
	}
	return item, nil
}

// GetAll returns the full shopping list.
func (s *ShoppingService) GetAll(ctx context.Context) ([]models.ShoppingItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	return items, nil
}

// Toggle marks an item bought or unbought.
func (s *ShoppingService) Toggle(ctx context.Context, id uuid.UUID, bought bool) (*models.ShoppingItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shopping item: %w", err)
	}

	item.SetBought(bought)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	return item, nil
}

// Delete removes a single item.
func (s *ShoppingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	return nil
}

// ClearBought removes every bought item and reports how many were cleared.
func (s *ShoppingService) ClearBought(ctx context.Context) (int64, error) {
	count, err := s.repo.ClearBought(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear bought items: %w", err)
	}
	s.log.InfoContext(ctx, "cleared bought shopping items", "count", count)
	return count, nil
}
