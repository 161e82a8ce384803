/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Wires URLs to handlers. Chi for routing, the standard middleware stack
  (request ID, logging, panic recovery), CORS for the frontend dev server.

ROUTE GROUPS:
  /api/dashboard/*   summary cards, chart buckets, upcoming list
  /api/employees     read-only collection lists
  /api/adjustments
  /api/payments
  /api/debts
  /api/scenarios/*   demo dataset loading
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", h.GetSummary)
			r.Get("/chart", h.GetChart)
			r.Get("/upcoming", h.GetUpcoming)
		})

		r.Get("/employees", h.ListEmployees)
		r.Get("/adjustments", h.ListAdjustments)
		r.Get("/payments", h.ListPayments)
		r.Get("/debts", h.ListDebts)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})
	})

	return r
}
