package handlers

import (
	"net/http"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/foodkeeper/pkg/validator"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// UpdateStatusRequest is the request body for PUT /products/{id}/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new opened almost_empty finished"`
}

// PutStatusHandler handles PUT /products/{id}/status requests.
type PutStatusHandler struct {
	svc *appsvcs.Services
}

// NewPutStatusHandler returns a PutStatusHandler backed by the given services.
func NewPutStatusHandler(svc *appsvcs.Services) *PutStatusHandler {
	return &PutStatusHandler{svc: svc}
}

// Execute moves a product to a new lifecycle status and re-estimates its
// expiry afterwards.
func (h *PutStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateStatusRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.UpdateStatus(r.Context(), id, models.Status(req.Status))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(*product))
}
