package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/auth"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, tokens *auth.TokenService, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.Register(pool))
		r.Post("/login", handlers.Login(pool, tokens))
	})

	// Protected routes
	r.With(middleware.JWTAuthMiddleware(tokens)).Group(func(r chi.Router) {
		r.Get("/transactions", handlers.GetTransactions(pool))
		r.Post("/transactions", handlers.CreateTransaction(pool))

		r.Get("/budget", handlers.GetBudget(pool))
		r.Post("/budget", handlers.SetBudget(pool))

		r.Get("/insights", handlers.GetInsights(pool))
	})

	return r
}
