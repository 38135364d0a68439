package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// TopicProductCreated is the Watermill topic published when a Product is created.
const TopicProductCreated = "product.created"

// ProductCreatedEvent is published after a new Product is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicProductCreated).
type ProductCreatedEvent struct {
	EventID    uuid.UUID        `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int              `json:"version"`  // Schema version; increment on breaking changes
	ProductID  uuid.UUID        `json:"product_id"`
	Name       string           `json:"name"`
	Status     models.Status    `json:"status"`
	Location   *models.Location `json:"location,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
