package server

import (
	"github.com/go-chi/chi"

	"github.com/rentloop/rentloop-server/handlers"
	"github.com/rentloop/rentloop-server/middlewares"
)

func userRoutes(r chi.Router) {
	r.Group(func(user chi.Router) {
		user.Use(middlewares.AuthMiddleware)

		// user info
		user.Get("/", handlers.GetUserInfo)
		user.Put("/", handlers.UpdateUserInfo)

		// rentals
		user.Route("/rental", func(rental chi.Router) {
			rental.Post("/", handlers.CreateRental)
			rental.Get("/", handlers.GetRentals)
			rental.Get("/{rentalId}", handlers.GetRentalInfo)
			rental.Delete("/{rentalId}", handlers.CancelRental)
		})

		// payments
		user.Route("/payment", func(payment chi.Router) {
			payment.Post("/order", handlers.CreatePaymentOrder)
			payment.Post("/verify", handlers.VerifyPayment)
		})

		// favorites
		user.Route("/favorite", func(favorite chi.Router) {
			favorite.Get("/", handlers.GetFavoriteProducts)
			favorite.Get("/ids", handlers.GetFavoriteIds)
			favorite.Post("/{productId}", handlers.AddFavorite)
			favorite.Delete("/{productId}", handlers.RemoveFavorite)
		})

		// fcm
		user.Post("/fcm", handlers.UpdateFcmToken)

		// profile image
		user.Post("/profile", handlers.UploadProfileImage)
	})
}
