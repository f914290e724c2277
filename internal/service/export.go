package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rebooterz/tripai/internal/domain"
)

// Renderer is the PDF collaborator. Satisfied by *pdf.Renderer.
// It returns the path of a temp file the caller must remove after use.
type Renderer interface {
	RenderTripPDF(planText, startLocation, destination string, startDate, endDate time.Time) (string, error)
}

// ExportService turns a generated plan back into a downloadable PDF.
type ExportService struct {
	renderer Renderer
}

// NewExportService constructs an ExportService backed by the provided Renderer.
func NewExportService(r Renderer) *ExportService {
	return &ExportService{renderer: r}
}

// Export renders the plan to a temp PDF and returns its path. The plan text
// must be non-empty; trip fields follow the same rules as plan generation.
// Degraded plans (generation error text) export the same way as real ones.
func (s *ExportService) Export(planText, startLocation, destination string, startDate, endDate time.Time) (string, error) {
	if strings.TrimSpace(planText) == "" {
		return "", fmt.Errorf("service.ExportService.Export: %w: plan text is required", domain.ErrValidation)
	}
	trip := domain.TripRequest{
		StartLocation: startLocation,
		Destination:   destination,
		StartDate:     startDate,
		EndDate:       endDate,
	}
	if err := validateTrip(trip); err != nil {
		return "", fmt.Errorf("service.ExportService.Export: %w", err)
	}

	path, err := s.renderer.RenderTripPDF(planText, startLocation, destination, startDate, endDate)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return path, nil
}
