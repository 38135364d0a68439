package handlers

import (
	"net/http"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
)

// PostEstimateHandler handles POST /products/{id}/estimate requests.
type PostEstimateHandler struct {
	svc *appsvcs.Services
}

// NewPostEstimateHandler returns a PostEstimateHandler backed by the given services.
func NewPostEstimateHandler(svc *appsvcs.Services) *PostEstimateHandler {
	return &PostEstimateHandler{svc: svc}
}

// Execute re-runs expiry estimation for a product. The manual expiry date is
// never touched; only the estimated date changes or clears.
func (h *PostEstimateHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.EstimateExpiry(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(*product))
}
