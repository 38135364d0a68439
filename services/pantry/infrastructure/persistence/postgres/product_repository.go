package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/database"
	"github.com/ghuser/foodkeeper/pkg/events"
	pantrydomain "github.com/ghuser/foodkeeper/services/pantry/domain"
	domainevents "github.com/ghuser/foodkeeper/services/pantry/domain/events"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

const productColumns = `id, name, status, location, quantity, expiry_date, estimated_expiry_date, outcome, created_at, updated_at`

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given connection
// pool and event bus. The bus is used to publish ProductCreatedEvents after a
// successful save.
func NewProductRepository(database *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: database, bus: bus}
}

// Save persists a new Product and publishes a ProductCreatedEvent within the
// same transaction.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pantry.products (`+productColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			product.ID,
			product.Name,
			product.Status,
			locationValue(product.Location),
			product.Quantity,
			product.ExpiryDate,
			product.EstimatedExpiryDate,
			outcomeValue(product.Outcome),
			product.CreatedAt,
			product.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// Update overwrites an existing Product. Returns ErrProductNotFound when the
// id does not exist.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE pantry.products
		SET name = $2,
		    status = $3,
		    location = $4,
		    quantity = $5,
		    expiry_date = $6,
		    estimated_expiry_date = $7,
		    outcome = $8,
		    updated_at = $9
		WHERE id = $1`,
		product.ID,
		product.Name,
		product.Status,
		locationValue(product.Location),
		product.Quantity,
		product.ExpiryDate,
		product.EstimatedExpiryDate,
		outcomeValue(product.Outcome),
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product rows affected: %w", err)
	}
	if affected == 0 {
		return pantrydomain.ErrProductNotFound
	}
	return nil
}

// GetByID retrieves a Product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM pantry.products
		WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pantrydomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return product, nil
}

// GetAll returns every product, most recently created first.
func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM pantry.products
		ORDER BY created_at DESC`)
}

// GetActive returns products whose status is not finished, most recently
// created first.
func (r *ProductRepository) GetActive(ctx context.Context) ([]models.Product, error) {
	return r.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM pantry.products
		WHERE status <> 'finished'
		ORDER BY created_at DESC`)
}

// Count returns the total number of products, finished ones included.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM pantry.products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// Delete removes a product by ID. Returns ErrProductNotFound when the id does
// not exist.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM pantry.products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product rows affected: %w", err)
	}
	if affected == 0 {
		return pantrydomain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string) ([]models.Product, error) {
	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  product.ID,
		Name:       product.Name,
		Status:     product.Status,
		Location:   product.Location,
		OccurredAt: product.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicProductCreated, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p         models.Product
		location  sql.NullString
		quantity  sql.NullString
		expiry    sql.NullTime
		estimated sql.NullTime
		outcome   sql.NullString
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Status,
		&location,
		&quantity,
		&expiry,
		&estimated,
		&outcome,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if location.Valid {
		loc := models.Location(location.String)
		p.Location = &loc
	}
	if quantity.Valid {
		p.Quantity = &quantity.String
	}
	if expiry.Valid {
		t := expiry.Time.UTC()
		p.ExpiryDate = &t
	}
	if estimated.Valid {
		t := estimated.Time.UTC()
		p.EstimatedExpiryDate = &t
	}
	if outcome.Valid {
		o := models.Outcome(outcome.String)
		p.Outcome = &o
	}
	return &p, nil
}

func locationValue(l *models.Location) any {
	if l == nil {
		return nil
	}
	return string(*l)
}

func outcomeValue(o *models.Outcome) any {
	if o == nil {
		return nil
	}
	return string(*o)
}
