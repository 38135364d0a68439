package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash; optional fields are stored as empty
// strings so the hash shape stays fixed.
type CachedProduct struct {
	ID                  uuid.UUID
	Name                string
	Status              string
	Location            string // empty when unset
	Quantity            string // empty when unset
	ExpiryDate          *time.Time
	EstimatedExpiryDate *time.Time
	Outcome             string // empty when unset
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ProductCache provides structured read/write operations for product cache
// entries. Key format: "product:{productID}"
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a new ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID uuid.UUID) (*CachedProduct, error) {
	key := c.key(productID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, vals["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse updated_at: %w", err)
	}
	expiryDate, err := parseOptionalTime(vals["expiry_date"])
	if err != nil {
		return nil, fmt.Errorf("cache parse expiry_date: %w", err)
	}
	estimatedExpiryDate, err := parseOptionalTime(vals["estimated_expiry_date"])
	if err != nil {
		return nil, fmt.Errorf("cache parse estimated_expiry_date: %w", err)
	}

	return &CachedProduct{
		ID:                  id,
		Name:                vals["name"],
		Status:              vals["status"],
		Location:            vals["location"],
		Quantity:            vals["quantity"],
		ExpiryDate:          expiryDate,
		EstimatedExpiryDate: estimatedExpiryDate,
		Outcome:             vals["outcome"],
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, product *CachedProduct) error {
	key := c.key(product.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", product.ID.String(),
		"name", product.Name,
		"status", product.Status,
		"location", product.Location,
		"quantity", product.Quantity,
		"expiry_date", formatOptionalTime(product.ExpiryDate),
		"estimated_expiry_date", formatOptionalTime(product.EstimatedExpiryDate),
		"outcome", product.Outcome,
		"created_at", product.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", product.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product.
func (c *ProductCache) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "product:{productID}"
func (c *ProductCache) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
