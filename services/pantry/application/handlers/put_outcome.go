package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
	"github.com/ghuser/foodkeeper/services/pantry/domain/models"
)

// SetOutcomeRequest is the request body for PUT /products/{id}/outcome.
// A null outcome clears it regardless of product status.
type SetOutcomeRequest struct {
	Outcome *string `json:"outcome"`
}

// PutOutcomeHandler handles PUT /products/{id}/outcome requests.
type PutOutcomeHandler struct {
	svc *appsvcs.Services
}

// NewPutOutcomeHandler returns a PutOutcomeHandler backed by the given services.
func NewPutOutcomeHandler(svc *appsvcs.Services) *PutOutcomeHandler {
	return &PutOutcomeHandler{svc: svc}
}

// Execute records or clears what happened to a product.
func (h *PutOutcomeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req SetOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var outcome *models.Outcome
	if req.Outcome != nil {
		o := models.Outcome(*req.Outcome)
		outcome = &o
	}

	product, err := h.svc.Product.SetOutcome(r.Context(), id, outcome)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(*product))
}
