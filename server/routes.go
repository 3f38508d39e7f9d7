package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/rentloop/rentloop-server/handlers"
	"github.com/rentloop/rentloop-server/middlewares"
	"github.com/rentloop/rentloop-server/models"
	"github.com/rentloop/rentloop-server/utils"
)

type Server struct {
	chi.Router
}

// SetupRoutes provides all the routes that can be used
func SetupRoutes() *Server {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		r.Use(middlewares.CommonMiddlewares()...)

		// health endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
		})

		// public routes
		r.Post("/register", handlers.Register)
		r.Post("/admin-login", handlers.LoginAdmin)

		// public catalog
		r.Route("/products", func(products chi.Router) {
			products.Get("/", handlers.GetAllProducts)
			products.Get("/{productId}", handlers.GetProductInfo)
			products.Get("/{productId}/quote", handlers.GetRentalQuote)
		})
		r.Get("/category", handlers.GetAllCategories)

		// private routes- user only
		r.Route("/user", func(r chi.Router) {
			r.Group(userRoutes)
		})

		// private routes- host only
		r.Route("/host", func(r chi.Router) {
			r.Group(hostRoutes)
		})

		// private routes- admin only
		r.Route("/admin", func(r chi.Router) {
			r.Group(adminRoutes)
		})
	})
	return &Server{Router: router}
}

func (svc *Server) Run(port string) error {
	return http.ListenAndServe(port, svc)
}
