// Package handler implements the HTTP handlers for the TripAI API.
// All handlers are methods on Server; methods are split into
// endpoint-specific files (health.go, estimate.go, plan.go, export.go) but
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rebooterz/tripai/internal/domain"
)

// PlanServicer defines the business operations the plan handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or the LLM.
type PlanServicer interface {
	Generate(ctx context.Context, trip domain.TripRequest, budget *domain.Budget) (domain.TripPlan, error)
}

// EstimateServicer defines the budget-estimation operation.
type EstimateServicer interface {
	Estimate(trip domain.TripRequest, currencyCode string) (domain.BudgetEstimate, error)
}

// ExportServicer defines the PDF-export operation. The returned path points
// at a temp file the handler must remove after streaming.
type ExportServicer interface {
	Export(planText, startLocation, destination string, startDate, endDate time.Time) (string, error)
}

// Server implements all API endpoints. Wire it in main.go via Routes().
type Server struct {
	plans     PlanServicer
	estimates EstimateServicer
	exports   ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(plans PlanServicer, estimates EstimateServicer, exports ExportServicer) *Server {
	return &Server{plans: plans, estimates: estimates, exports: exports}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/estimates", s.CreateEstimate)
		r.Post("/plans", s.CreatePlan)
		r.Post("/plans/export", s.ExportPlan)
	})
	return r
}
