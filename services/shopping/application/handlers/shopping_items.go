package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	pkgvalidator "github.com/ghuser/foodkeeper/pkg/validator"
	appsvcs "github.com/ghuser/foodkeeper/services/shopping/application/services"
	"github.com/ghuser/foodkeeper/services/shopping/domain/models"
)

// CreateShoppingItemRequest is the request body for POST /shopping-items.
type CreateShoppingItemRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
}

// ToggleShoppingItemRequest is the request body for POST /shopping-items/{id}/toggle.
type ToggleShoppingItemRequest struct {
	IsBought bool `json:"is_bought"`
}

// ShoppingItemResponse is the wire representation of a shopping list entry.
type ShoppingItemResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	IsBought  bool       `json:"is_bought"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ClearBoughtResponse is returned by DELETE /shopping-items/bought.
type ClearBoughtResponse struct {
	Cleared int64 `json:"cleared"`
}

// ShoppingHandler carries the handlers for the shopping list endpoints.
type ShoppingHandler struct {
	svc *appsvcs.Services
}

// NewShoppingHandler returns a ShoppingHandler backed by the given services.
func NewShoppingHandler(svc *appsvcs.Services) *ShoppingHandler {
	return &ShoppingHandler{svc: svc}
}

// Create adds a new entry to the shopping list.
func (h *ShoppingHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateShoppingItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Shopping.Add(r.Context(), req.Name, req.ProductID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toShoppingItemResponse(*item))
}

// List returns the whole shopping list, unbought entries first.
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Shopping.GetAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ShoppingItemResponse, len(items))
	for i, item := range items {
		out[i] = toShoppingItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Toggle marks an entry bought or unbought.
func (h *ShoppingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ToggleShoppingItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Shopping.Toggle(r.Context(), id, req.IsBought)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toShoppingItemResponse(*item))
}

// Delete removes a single entry.
func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Shopping.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearBought removes every bought entry.
func (h *ShoppingHandler) ClearBought(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Shopping.ClearBought(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ClearBoughtResponse{Cleared: count})
}

func itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid shopping item id")
		return uuid.Nil, false
	}
	return id, true
}

func toShoppingItemResponse(item models.ShoppingItem) ShoppingItemResponse {
	return ShoppingItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		ProductID: item.ProductID,
		IsBought:  item.IsBought,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
