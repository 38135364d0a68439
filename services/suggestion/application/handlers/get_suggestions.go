package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ghuser/foodkeeper/pkg/errhttp"
	"github.com/ghuser/foodkeeper/pkg/httpx"
	appsvcs "github.com/ghuser/foodkeeper/services/suggestion/application/services"
	"github.com/ghuser/foodkeeper/services/suggestion/domain/models"
)

// IngredientResponse is the wire representation of a bound ingredient.
type IngredientResponse struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    *string   `json:"quantity,omitempty"`
	IsUrgent    bool      `json:"is_urgent"`
}

// SuggestionResponse is the wire representation of one suggestion.
type SuggestionResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description,omitempty"`
	EstimatedTime string               `json:"estimated_time"`
	Minutes       int                  `json:"minutes"`
	Ingredients   []IngredientResponse `json:"ingredients"`
	Steps         []string             `json:"steps,omitempty"`
}

// GetSuggestionsHandler handles GET /suggestions requests.
type GetSuggestionsHandler struct {
	svc          *appsvcs.Services
	defaultLimit int
}

// NewGetSuggestionsHandler returns a GetSuggestionsHandler backed by the
// given services. defaultLimit applies when the request has no limit query
// parameter.
func NewGetSuggestionsHandler(svc *appsvcs.Services, defaultLimit int) *GetSuggestionsHandler {
	return &GetSuggestionsHandler{svc: svc, defaultLimit: defaultLimit}
}

// Execute returns recipe suggestions for the current pantry. ?limit=N caps
// the result size.
func (h *GetSuggestionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "limit must be a positive integer")
			return
		}
		limit = n
	}

	suggestions, err := h.svc.Suggestion.Get(r.Context(), limit)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = toSuggestionResponse(s)
	}
	httpx.JSON(w, http.StatusOK, out)
}

func toSuggestionResponse(s models.Suggestion) SuggestionResponse {
	ingredients := make([]IngredientResponse, len(s.Ingredients))
	for i, ing := range s.Ingredients {
		ingredients[i] = IngredientResponse{
			ProductID:   ing.ProductID,
			ProductName: ing.ProductName,
			Quantity:    ing.Quantity,
			IsUrgent:    ing.IsUrgent,
		}
	}
	return SuggestionResponse{
		ID:            s.ID,
		Title:         s.Title,
		Description:   s.Description,
		EstimatedTime: string(s.EstimatedTime),
		Minutes:       s.EstimatedTime.Minutes(),
		Ingredients:   ingredients,
		Steps:         s.Steps,
	}
}
