package service

import (
	"fmt"

	"github.com/rebooterz/tripai/internal/budget"
	"github.com/rebooterz/tripai/internal/domain"
)

// EstimateService computes the minimum recommended budget for a trip.
// It is stateless; every call recomputes from the static tables.
type EstimateService struct{}

// NewEstimateService constructs an EstimateService.
func NewEstimateService() *EstimateService {
	return &EstimateService{}
}

// suggestedMultiplier sets the default "comfortable" budget 20% above the
// computed minimum, matching what the planner pre-fills for the user.
const suggestedMultiplier = 1.2

// Estimate validates the trip, classifies the destination, and returns the
// minimum budget in INR plus its conversion into currencyCode.
// Unsupported codes return domain.ErrUnsupportedCurrency.
func (s *EstimateService) Estimate(trip domain.TripRequest, currencyCode string) (domain.BudgetEstimate, error) {
	if err := validateTrip(trip); err != nil {
		return domain.BudgetEstimate{}, fmt.Errorf("service.EstimateService.Estimate: %w", err)
	}

	numDays := trip.NumDays()
	minINR := budget.EstimateMinimum(trip.Destination, numDays)

	converted, err := budget.Convert(float64(minINR), currencyCode)
	if err != nil {
		return domain.BudgetEstimate{}, fmt.Errorf("service.EstimateService.Estimate: %w", err)
	}

	return domain.BudgetEstimate{
		Tier:       budget.Classify(trip.Destination),
		NumDays:    numDays,
		MinimumINR: minINR,
		Minimum:    converted,
		Suggested:  converted * suggestedMultiplier,
		Currency:   currencyCode,
		Symbol:     budget.Symbol(currencyCode),
	}, nil
}
