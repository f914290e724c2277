// Package domain contains the core data types for the TripAI planner.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (budget, prompt, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripRequest carries the raw trip parameters collected from the user.
// The service layer validates presence and date ordering before the core
// packages see it; the core treats it as immutable input.
type TripRequest struct {
	StartLocation string    `json:"start_location"`
	Destination   string    `json:"destination"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}

// NumDays returns the trip length in calendar days, inclusive of both
// endpoints: a trip starting and ending on the same date is 1 day.
// Callers must ensure EndDate >= StartDate (service validation does).
func (t TripRequest) NumDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// TripPlan is the generated itinerary for one request.
// Text holds the raw generation-service output, or the degraded error text
// when generation failed; Sections holds the cleaned day-section groups.
type TripPlan struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"plan_text"`
	Sections  []string  `json:"sections"`
	Degraded  bool      `json:"degraded"` // true when Text is an error message instead of an itinerary
	CreatedAt time.Time `json:"created_at"`
}
