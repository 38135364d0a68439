package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
)

// ListProductsResponse is returned by GET /products.
type ListProductsResponse struct {
	Active     []ProductResponse `json:"active"`
	TotalCount int64             `json:"total_count"`
}

// GetProductsHandler handles GET /products requests.
type GetProductsHandler struct {
	svc *appsvcs.Services
}

// NewGetProductsHandler returns a GetProductsHandler backed by the given services.
func NewGetProductsHandler(svc *appsvcs.Services) *GetProductsHandler {
	return &GetProductsHandler{svc: svc}
}

// Execute lists active products plus the total count including finished ones.
func (h *GetProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Product.GetAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ListProductsResponse{
		Active:     toProductResponses(list.Active),
		TotalCount: list.TotalCount,
	})
}

// GetProductHandler handles GET /products/{id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute fetches a single product by id.
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProductResponse(*product))
}

// productID parses the {id} route parameter, writing a 422 on malformed input.
func productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid product id")
		return uuid.Nil, false
	}
	return id, true
}
