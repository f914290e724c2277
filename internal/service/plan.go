// Package service contains the business logic for the TripAI planner.
// Services validate inputs, enforce business rules, and orchestrate the
// pure core (budget, prompt, textutil) and external collaborators (LLM,
// PDF). No HTTP lives here — services depend on narrow interfaces, not
// transport details.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rebooterz/tripai/internal/domain"
	"github.com/rebooterz/tripai/internal/prompt"
	"github.com/rebooterz/tripai/internal/textutil"
)

// Generator is the generation-service collaborator: it turns a prompt into
// itinerary text. Satisfied by *llm.Client.
type Generator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// PlanService orchestrates prompt composition and plan generation.
type PlanService struct {
	gen Generator
}

// NewPlanService constructs a PlanService backed by the provided Generator.
func NewPlanService(gen Generator) *PlanService {
	return &PlanService{gen: gen}
}

// Generate validates the trip, composes the prompt, and calls the
// generation service. A generation failure does not fail the request: the
// error text becomes the plan text (Degraded=true) so the user still sees —
// and can export — something.
func (s *PlanService) Generate(ctx context.Context, trip domain.TripRequest, budget *domain.Budget) (domain.TripPlan, error) {
	if err := validateTrip(trip); err != nil {
		return domain.TripPlan{}, fmt.Errorf("service.PlanService.Generate: %w", err)
	}

	promptText := prompt.Compose(trip, budget)

	text, err := s.gen.Generate(ctx, promptText)
	degraded := false
	if err != nil {
		text = fmt.Sprintf("Error generating trip plan: %v or No network!", err)
		degraded = true
	}

	return domain.TripPlan{
		ID:        uuid.New(),
		Text:      text,
		Sections:  textutil.SplitSections(text),
		Degraded:  degraded,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// validateTrip enforces the host-side input contract: both locations
// present, end date not before start date.
func validateTrip(t domain.TripRequest) error {
	if strings.TrimSpace(t.StartLocation) == "" {
		return fmt.Errorf("%w: starting location is required", domain.ErrValidation)
	}
	if strings.TrimSpace(t.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if t.EndDate.Before(t.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	return nil
}
