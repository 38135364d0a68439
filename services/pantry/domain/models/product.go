package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pantrydomain "github.com/ghuser/foodkeeper/services/pantry/domain"
)

// Product is the core aggregate for the pantry bounded context.
//
// ExpiryDate is entered manually by the user; EstimatedExpiryDate is derived
// by the expiry estimation service. The manual date always wins when both
// are present (see the urgency classifier).
type Product struct {
	ID                  uuid.UUID
	Name                string
	Status              Status
	Location            *Location
	Quantity            *string
	ExpiryDate          *time.Time
	EstimatedExpiryDate *time.Time
	Outcome             *Outcome
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ProductParams carries the inputs for NewProduct. Zero values fall back to
// defaults: a generated ID, status "new", and current UTC timestamps.
type ProductParams struct {
	ID                  uuid.UUID
	Name                string
	Status              Status
	Location            *Location
	Quantity            *string
	ExpiryDate          *time.Time
	EstimatedExpiryDate *time.Time
	Outcome             *Outcome
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewProduct constructs a valid Product aggregate.
//
// The name is trimmed and must be non-empty afterwards. An outcome may only
// be carried by a finished product.
func NewProduct(params ProductParams) (*Product, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, pantrydomain.ErrProductNameEmpty
	}

	status := params.Status
	if status == "" {
		status = StatusNew
	}
	if !status.Valid() {
		return nil, pantrydomain.ErrInvalidProductStatus
	}

	if params.Outcome != nil {
		if !params.Outcome.Valid() {
			return nil, pantrydomain.ErrInvalidOutcome
		}
		if status != StatusFinished {
			return nil, pantrydomain.ErrOutcomeRequiresFinishedStatus
		}
	}

	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	now := time.Now().UTC()
	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	updatedAt := params.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = now
	}

	return &Product{
		ID:                  id,
		Name:                name,
		Status:              status,
		Location:            params.Location,
		Quantity:            params.Quantity,
		ExpiryDate:          params.ExpiryDate,
		EstimatedExpiryDate: params.EstimatedExpiryDate,
		Outcome:             params.Outcome,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}

// IsActive reports whether the product is still in the pantry
// (i.e. not finished).
func (p Product) IsActive() bool {
	return p.Status != StatusFinished
}

// ProductPatch describes a partial update. Unsupplied fields are left
// untouched; Set and Clear fields are applied. Name and Status cannot be
// cleared, only replaced.
type ProductPatch struct {
	Name                Field[string]
	Status              Field[Status]
	Location            Field[Location]
	Quantity            Field[string]
	ExpiryDate          Field[time.Time]
	EstimatedExpiryDate Field[time.Time]
	Outcome             Field[Outcome]
}

// ApplyPatch returns a copy of p with the patch applied. Only explicitly
// supplied fields change. UpdatedAt strictly advances on every application,
// even when the wall clock has not moved.
func ApplyPatch(p Product, patch ProductPatch) (Product, error) {
	out := p

	if patch.Name.Present() {
		name, ok := patch.Name.Get()
		if !ok {
			return Product{}, pantrydomain.ErrProductNameEmpty
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return Product{}, pantrydomain.ErrProductNameEmpty
		}
		out.Name = name
	}

	if patch.Status.Present() {
		status, ok := patch.Status.Get()
		if !ok || !status.Valid() {
			return Product{}, pantrydomain.ErrInvalidProductStatus
		}
		out.Status = status
	}

	if patch.Location.Present() {
		if loc, ok := patch.Location.Get(); ok {
			out.Location = &loc
		} else {
			out.Location = nil
		}
	}

	if patch.Quantity.Present() {
		if q, ok := patch.Quantity.Get(); ok {
			out.Quantity = &q
		} else {
			out.Quantity = nil
		}
	}

	if patch.ExpiryDate.Present() {
		if d, ok := patch.ExpiryDate.Get(); ok {
			out.ExpiryDate = &d
		} else {
			out.ExpiryDate = nil
		}
	}

	if patch.EstimatedExpiryDate.Present() {
		if d, ok := patch.EstimatedExpiryDate.Get(); ok {
			out.EstimatedExpiryDate = &d
		} else {
			out.EstimatedExpiryDate = nil
		}
	}

	if patch.Outcome.Present() {
		if o, ok := patch.Outcome.Get(); ok {
			if !o.Valid() {
				return Product{}, pantrydomain.ErrInvalidOutcome
			}
			if out.Status != StatusFinished {
				return Product{}, pantrydomain.ErrOutcomeRequiresFinishedStatus
			}
			out.Outcome = &o
		} else {
			// Clearing the outcome is allowed at any status.
			out.Outcome = nil
		}
	}

	now := time.Now().UTC()
	if !now.After(p.UpdatedAt) {
		now = p.UpdatedAt.Add(time.Nanosecond)
	}
	out.UpdatedAt = now

	return out, nil
}
