package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// UpdateProductRequest is the request body for PATCH /products/{id}.
// Absent keys leave the field untouched; an explicit null clears it.
type UpdateProductRequest struct {
	Name                httpx.Optional[string]    `json:"name"`
	Status              httpx.Optional[string]    `json:"status"`
	Location            httpx.Optional[string]    `json:"location"`
	Quantity            httpx.Optional[string]    `json:"quantity"`
	ExpiryDate          httpx.Optional[time.Time] `json:"expiry_date"`
	EstimatedExpiryDate httpx.Optional[time.Time] `json:"estimated_expiry_date"`
	Outcome             httpx.Optional[string]    `json:"outcome"`
}

// PatchProductHandler handles PATCH /products/{id} requests.
type PatchProductHandler struct {
	svc *appsvcs.Services
}

// NewPatchProductHandler returns a PatchProductHandler backed by the given services.
func NewPatchProductHandler(svc *appsvcs.Services) *PatchProductHandler {
	return &PatchProductHandler{svc: svc}
}

// Execute applies a partial update to a product.
func (h *PatchProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	patch := models.ProductPatch{
		Name:                stringField[string](req.Name, func(s string) string { return s }),
		Status:              stringField(req.Status, func(s string) models.Status { return models.Status(s) }),
		Location:            stringField(req.Location, func(s string) models.Location { return models.Location(s) }),
		Quantity:            stringField[string](req.Quantity, func(s string) string { return s }),
		ExpiryDate:          timeField(req.ExpiryDate),
		EstimatedExpiryDate: timeField(req.EstimatedExpiryDate),
		Outcome:             stringField(req.Outcome, func(s string) models.Outcome { return models.Outcome(s) }),
	}

	product, err := h.svc.Product.Update(r.Context(), id, patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(*product))
}

func stringField[T any](opt httpx.Optional[string], conv func(string) T) models.Field[T] {
	if !opt.Present() {
		return models.Field[T]{}
	}
	if v, ok := opt.Get(); ok {
		return models.Set(conv(v))
	}
	return models.Clear[T]()
}

func timeField(opt httpx.Optional[time.Time]) models.Field[time.Time] {
	if !opt.Present() {
		return models.Field[time.Time]{}
	}
	if v, ok := opt.Get(); ok {
		return models.Set(v)
	}
	return models.Clear[time.Time]()
}
