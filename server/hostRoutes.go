package server

import (
	"github.com/go-chi/chi"

	"github.com/rentloop/rentloop-server/handlers"
	"github.com/rentloop/rentloop-server/middlewares"
)

func hostRoutes(r chi.Router) {
	r.Group(func(host chi.Router) {
		host.Use(middlewares.AuthMiddleware)
		host.Use(middlewares.HostPermission)

		// listings
		host.Route("/product", func(product chi.Router) {
			product.Post("/", handlers.CreateProduct)
			product.Get("/", handlers.GetHostProducts)
			product.Put("/{productId}", handlers.ModifyProduct)
			product.Delete("/{productId}", handlers.ArchiveProduct)
			product.Post("/image", handlers.UploadProductImage)
			product.Post("/{productId}/image", handlers.AddImageForExistingProduct)
		})

		// rentals on the host's listings
		host.Route("/rental", func(rental chi.Router) {
			rental.Get("/", handlers.GetHostRentals)
			rental.Get("/stats", handlers.GetHostStats)
		})

		// verification
		host.Route("/kyc", func(kyc chi.Router) {
			kyc.Post("/", handlers.SubmitKYC)
			kyc.Get("/", handlers.GetKYCStatus)
			kyc.Post("/document", handlers.UploadKYCDocument)
		})
	})
}
