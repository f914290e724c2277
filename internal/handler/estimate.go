package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/rebooterz/tripai/internal/domain"
)

// EstimateRequest is the POST /api/estimates body. Dates travel as
// "2006-01-02" strings.
type EstimateRequest struct {
	StartLocation string             `json:"start_location"`
	Destination   string             `json:"destination"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
	Currency      string             `json:"currency"`
}

// CreateEstimate handles POST /api/estimates.
// It returns the minimum recommended budget for the trip, converted into
// the requested currency, plus a suggested figure 20% above it.
func (s *Server) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
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

	estimate, err := s.estimates.Estimate(trip, req.Currency)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeValidationError(w, err)
		case errors.Is(err, domain.ErrUnsupportedCurrency):
			writeUnsupportedCurrency(w, err)
		default:
			writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}
