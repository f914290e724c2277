package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/rebooterz/tripai/internal/domain"
)

// PlanRequest is the POST /api/plans body. Budget is optional; when absent
// the generated prompt carries no budget constraints.
type PlanRequest struct {
	StartLocation string             `json:"start_location"`
	Destination   string             `json:"destination"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
	Budget        *domain.Budget     `json:"budget,omitempty"`
}

// CreatePlan handles POST /api/plans.
// A generation-service failure still yields 201: the plan text carries the
// error message and Degraded is true, so clients can show it and offer the
// PDF export either way.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	trip := domain.TripRequest{
		StartLocation: req.StartLocation,
		Destination:   req.Destination,
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.Time,
	}

	plan, err := s.plans.Generate(r.Context(), trip, req.Budget)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}
