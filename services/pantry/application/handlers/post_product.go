package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/foodkeeper/pkg/validator"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Name       string     `json:"name" validate:"required,max=255"`
	Location   *string    `json:"location,omitempty" validate:"omitempty,oneof=fridge pantry freezer"`
	Quantity   *string    `json:"quantity,omitempty" validate:"omitempty,max=64"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product with status new and schedules an expiry
// estimation for it.
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	opts := appsvcs.AddProductOptions{
		Quantity:   req.Quantity,
		ExpiryDate: req.ExpiryDate,
	}
	if req.Location != nil {
		loc := models.Location(*req.Location)
		opts.Location = &loc
	}

	product, err := h.svc.Product.Add(r.Context(), req.Name, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProductResponse(*product))
}
