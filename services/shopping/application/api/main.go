package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/foodkeeper/pkg/app"
	"github.com/ghuser/foodkeeper/services/shopping/application/handlers"
	appsvcs "github.com/ghuser/foodkeeper/services/shopping/application/services"
)

// ShoppingRoutes registers shopping list endpoints on the provided chi router.
func ShoppingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	h := handlers.NewShoppingHandler(svcs)
	r.Group(func(r chi.Router) {
		r.Route("/shopping-items", func(r chi.Router) {
			r.Post("/", h.Create)
			r.Get("/", h.List)
			// Registered before /{id} so "bought" is not parsed as an id.
			r.Delete("/bought", h.ClearBought)
			r.Route("/{id}", func(r chi.Router) {
				r.Post("/toggle", h.Toggle)
				r.Delete("/", h.Delete)
			})
		})
	})
}
