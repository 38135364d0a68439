package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/database"
	shoppingdomain "github.com/ghuser/foodkeeper/services/shopping/domain"
	"github.com/ghuser/foodkeeper/services/shopping/domain/models"
)

const shoppingItemColumns = `id, name, product_id, is_bought, created_at, updated_at`

// ShoppingItemRepository implements repositories.ShoppingItemRepository
// against PostgreSQL.
type ShoppingItemRepository struct {
	db *database.Database
}

// NewShoppingItemRepository returns a ShoppingItemRepository backed by the
// given connection pool.
func NewShoppingItemRepository(database *database.Database) *ShoppingItemRepository {
	return &ShoppingItemRepository{db: database}
}

// Save persists a new shopping item.
func (r *ShoppingItemRepository) Save(ctx context.Context, item *models.ShoppingItem) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO shopping.items (`+shoppingItemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Name, item.ProductID, item.IsBought, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shopping item: %w", err)
	}
	return nil
}

// Update overwrites an existing shopping item. Returns
// ErrShoppingItemNotFound when the id does not exist.
func (r *ShoppingItemRepository) Update(ctx context.Context, item *models.ShoppingItem) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE shopping.items
		SET name = $2, product_id = $3, is_bought = $4, updated_at = $5
		WHERE id = $1`,
		item.ID, item.Name, item.ProductID, item.IsBought, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shopping item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update shopping item rows affected: %w", err)
	}
	if affected == 0 {
		return shoppingdomain.ErrShoppingItemNotFound
	}
	return nil
}

// GetByID fetches one item. Returns ErrShoppingItemNotFound if absent.
func (r *ShoppingItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingItem, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+shoppingItemColumns+`
		FROM shopping.items
		WHERE id = $1`, id)

	item, err := scanShoppingItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shoppingdomain.ErrShoppingItemNotFound
		}
		return nil, fmt.Errorf("query shopping item: %w", err)
	}
	return item, nil
}

// GetAll returns the whole list, unbought entries first, newest first within
// each group.
func (r *ShoppingItemRepository) GetAll(ctx context.Context) ([]models.ShoppingItem, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+shoppingItemColumns+`
		FROM shopping.items
		ORDER BY is_bought ASC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query shopping items: %w", err)
	}
	defer rows.Close()

	var items []models.ShoppingItem
	for rows.Next() {
		item, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping items: %w", err)
	}
	return items, nil
}

// Delete removes an item by ID. Returns ErrShoppingItemNotFound when the id
// does not exist.
func (r *ShoppingItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM shopping.items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shopping item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete shopping item rows affected: %w", err)
	}
	if affected == 0 {
		return shoppingdomain.ErrShoppingItemNotFound
	}
	return nil
}

// ClearBought removes every bought item.
func (r *ShoppingItemRepository) ClearBought(ctx context.Context) (int64, error) {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM shopping.items WHERE is_bought`)
	if err != nil {
		return 0, fmt.Errorf("clear bought items: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear bought rows affected: %w", err)
	}
	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShoppingItem(row rowScanner) (*models.ShoppingItem, error) {
	var (
		item      models.ShoppingItem
		productID uuid.NullUUID
	)
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&productID,
		&item.IsBought,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if productID.Valid {
		id := productID.UUID
		item.ProductID = &id
	}
	return &item, nil
}
