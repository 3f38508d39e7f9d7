package server

import (
	"github.com/go-chi/chi"

	"github.com/rentloop/rentloop-server/handlers"
	"github.com/rentloop/rentloop-server/middlewares"
)

func adminRoutes(r chi.Router) {
	r.Group(func(admin chi.Router) {
		admin.Use(middlewares.AuthMiddlewareForAdmin)

		admin.Get("/stats", handlers.GetDashboardStats)
		admin.Get("/user", handlers.GetAllUsersForAdmin)
		admin.Get("/product", handlers.GetAllProductsForAdmin)

		admin.Route("/kyc", func(kyc chi.Router) {
			kyc.Get("/", handlers.GetKYCSubmissions)
			kyc.Put("/{submissionId}/approve", handlers.ApproveKYC)
			kyc.Put("/{submissionId}/reject", handlers.RejectKYC)
		})
	})
}
