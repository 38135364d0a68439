package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
	domainsvcs "github.com/ghuser/foodkeeper/services/pantry/domain/services"
)

// ProductResponse is the wire representation of a pantry product. Urgency
// fields are derived at render time from the product snapshot.
type ProductResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Status              string     `json:"status"`
	Location            *string    `json:"location,omitempty"`
	Quantity            *string    `json:"quantity,omitempty"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	EstimatedExpiryDate *time.Time `json:"estimated_expiry_date,omitempty"`
	Outcome             *string    `json:"outcome,omitempty"`
	UrgencyLevel        string     `json:"urgency_level"`
	DaysUntilExpiry     *int       `json:"days_until_expiry,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toProductResponse(p models.Product) ProductResponse {
	now := time.Now().UTC()
	resp := ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Status:              string(p.Status),
		Quantity:            p.Quantity,
		ExpiryDate:          p.ExpiryDate,
		EstimatedExpiryDate: p.EstimatedExpiryDate,
		UrgencyLevel:        string(domainsvcs.UrgencyLevelFor(p, now)),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
	if p.Location != nil {
		loc := string(*p.Location)
		resp.Location = &loc
	}
	if p.Outcome != nil {
		o := string(*p.Outcome)
		resp.Outcome = &o
	}
	if days, ok := domainsvcs.DaysUntilExpiry(p, now); ok {
		resp.DaysUntilExpiry = &days
	}
	return resp
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
