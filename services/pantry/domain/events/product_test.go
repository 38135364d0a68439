package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/services/pantry/domain/events"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

func TestProductCreatedEvent_JSONRoundTrip(t *testing.T) {
	fridge := models.LocationFridge
	original := events.ProductCreatedEvent{
		EventID:    uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version:    1,
		ProductID:  uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Name:       "Leche entera",
		Status:     models.StatusNew,
		Location:   &fridge,
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.ProductCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.Version != original.Version {
		t.Errorf("Version: got %d, want %d", decoded.Version, original.Version)
	}
	if decoded.ProductID != original.ProductID {
		t.Errorf("ProductID: got %v, want %v", decoded.ProductID, original.ProductID)
	}
	if decoded.Name != original.Name {
		t.Errorf("Name: got %q, want %q", decoded.Name, original.Name)
	}
	if decoded.Status != original.Status {
		t.Errorf("Status: got %q, want %q", decoded.Status, original.Status)
	}
	if decoded.Location == nil || *decoded.Location != *original.Location {
		t.Errorf("Location: got %v, want %v", decoded.Location, original.Location)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestProductCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  uuid.New(),
		Name:       "Pan",
		Status:     models.StatusNew,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "product_id", "name", "status", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if _, ok := raw["location"]; ok {
		t.Error("nil location must be omitted")
	}
}

func TestTopicProductCreated_Value(t *testing.T) {
	if events.TopicProductCreated != "product.created" {
		t.Errorf("expected %q, got %q", "product.created", events.TopicProductCreated)
	}
}
