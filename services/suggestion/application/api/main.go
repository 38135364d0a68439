package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/foodkeeper/pkg/app"
	"github.com/ghuser/foodkeeper/services/suggestion/application/handlers"
	appsvcs "github.com/ghuser/foodkeeper/services/suggestion/application/services"
)

// SuggestionRoutes registers suggestion endpoints on the provided chi router.
func SuggestionRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	defaultLimit := 5
	if a.Config != nil && a.Config.SuggestionLimit > 0 {
		defaultLimit = a.Config.SuggestionLimit
	}
	r.Group(func(r chi.Router) {
		r.Get("/suggestions", handlers.NewGetSuggestionsHandler(svcs, defaultLimit).Execute)
	})
}
