package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/foodkeeper/pkg/app"
	"github.com/ghuser/foodkeeper/services/pantry/application/handlers"
	appsvcs "github.com/ghuser/foodkeeper/services/pantry/application/services"
)

// ProductRoutes registers pantry endpoints on the provided chi router.
func ProductRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/", handlers.NewGetProductsHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetProductHandler(svcs).Execute)
				r.Patch("/", handlers.NewPatchProductHandler(svcs).Execute)
				r.Put("/status", handlers.NewPutStatusHandler(svcs).Execute)
				r.Put("/outcome", handlers.NewPutOutcomeHandler(svcs).Execute)
				r.Post("/estimate", handlers.NewPostEstimateHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteProductHandler(svcs).Execute)
			})
		})
	})
}
