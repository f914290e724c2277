package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/rebooterz/tripai/internal/domain"
)

// ExportRequest is the POST /api/plans/export body: the plan text to render
// plus the trip metadata shown in the PDF header and download filename.
type ExportRequest struct {
	PlanText      string             `json:"plan_text"`
	StartLocation string             `json:"start_location"`
	Destination   string             `json:"destination"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
}

// ExportPlan handles POST /api/plans/export.
// It streams the rendered PDF as an attachment and removes the temp file
// once the response is written.
func (s *Server) ExportPlan(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	path, err := s.exports.Export(req.PlanText, req.StartLocation, req.Destination,
		req.StartDate.Time, req.EndDate.Time)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeValidationError(w, err)
			return
		}
		writeInternalError(w, err)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			slog.Warn("remove exported pdf", "path", path, "error", err)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		writeInternalError(w, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("trip_plan_%sto%s_%s.pdf",
		req.StartLocation, req.Destination, req.StartDate.Time.Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+sanitizeFilename(filename)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		slog.Warn("stream exported pdf", "error", err)
	}
}

// sanitizeFilename keeps the download name header-safe: anything outside
// letters, digits, dot, dash, and underscore becomes an underscore.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
