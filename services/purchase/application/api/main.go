package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/services/purchase/application/handlers"
	appsvcs "github.com/ghuser/stockroom/services/purchase/application/services"
)

// PurchaseRoutes registers purchase endpoints on the provided chi router.
func PurchaseRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers purchase endpoints backed by svcs. Purchases are
// immutable, so there is no PUT or DELETE.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/purchases", func(r chi.Router) {
		r.Get("/", handlers.NewListPurchasesHandler(svcs).Execute)
		r.Post("/", handlers.NewPostPurchaseHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetPurchaseHandler(svcs).Execute)
	})
}
