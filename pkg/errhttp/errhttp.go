// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/foodkeeper/pkg/httpx"
	pantrydomain "github.com/ghuser/foodkeeper/services/pantry/domain"
	shoppingdomain "github.com/ghuser/foodkeeper/services/shopping/domain"
	suggestiondomain "github.com/ghuser/foodkeeper/services/suggestion/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, pantrydomain.ErrProductNotFound),
		errors.Is(err, shoppingdomain.ErrShoppingItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, pantrydomain.ErrOutcomeRequiresFinishedStatus):
		return http.StatusConflict // 409
	case errors.Is(err, pantrydomain.ErrProductNameEmpty),
		errors.Is(err, pantrydomain.ErrInvalidProductStatus),
		errors.Is(err, pantrydomain.ErrInvalidOutcome),
		errors.Is(err, shoppingdomain.ErrShoppingItemNameEmpty),
		errors.Is(err, suggestiondomain.ErrNotEnoughProducts),
		errors.Is(err, suggestiondomain.ErrInvalidSuggestion):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, suggestiondomain.ErrGenerationFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
