package errhttp

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	pantrydomain "github.com/ghuser/foodkeeper/services/pantry/domain"
	shoppingdomain "github.com/ghuser/foodkeeper/services/shopping/domain"
	suggestiondomain "github.com/ghuser/foodkeeper/services/suggestion/domain"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"product not found", pantrydomain.ErrProductNotFound, http.StatusNotFound},
		{"shopping item not found", shoppingdomain.ErrShoppingItemNotFound, http.StatusNotFound},
		{"outcome requires finished", pantrydomain.ErrOutcomeRequiresFinishedStatus, http.StatusConflict},
		{"product name empty", pantrydomain.ErrProductNameEmpty, http.StatusUnprocessableEntity},
		{"invalid product status", pantrydomain.ErrInvalidProductStatus, http.StatusUnprocessableEntity},
		{"invalid outcome", pantrydomain.ErrInvalidOutcome, http.StatusUnprocessableEntity},
		{"shopping item name empty", shoppingdomain.ErrShoppingItemNameEmpty, http.StatusUnprocessableEntity},
		{"not enough products", suggestiondomain.ErrNotEnoughProducts, http.StatusUnprocessableEntity},
		{"invalid suggestion", suggestiondomain.ErrInvalidSuggestion, http.StatusUnprocessableEntity},
		{"generation failed", suggestiondomain.ErrGenerationFailed, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)
			if w.Code != tt.want {
				t.Errorf("status: got %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestWriteError_MatchesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("get product: %w", pantrydomain.ErrProductNotFound)

	w := httptest.NewRecorder()
	WriteError(w, wrapped)
	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusNotFound)
	}
}
