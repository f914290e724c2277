// Package pdf renders a generated trip plan into a downloadable PDF.
// The renderer writes to a temp file; the handler streams it to the client
// and removes it afterwards, so no artifact outlives the request.
package pdf

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rebooterz/tripai/internal/textutil"
)

// Renderer produces trip-plan PDFs.
type Renderer struct{}

// NewRenderer constructs a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderTripPDF writes the plan to a temporary PDF file and returns its
// path. The caller owns the file and must remove it after streaming.
// Plan text is cleaned and regrouped into sections before layout, so stray
// markup from the generation service never reaches the document.
func (r *Renderer) RenderTripPDF(planText, startLocation, destination string, startDate, endDate time.Time) (string, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate so symbols like ₹ degrade gracefully
	// instead of corrupting the output stream.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle("Trip Plan", true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 12, tr("Trip Plan"), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 7, tr(fmt.Sprintf("%s to %s", startLocation, destination)), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 7, tr(fmt.Sprintf("%s - %s",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))), "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "", 10)
	for _, section := range textutil.SplitSections(planText) {
		doc.MultiCell(0, 5, tr(section), "", "L", false)
		doc.Ln(3)
	}

	f, err := os.CreateTemp("", "trip_plan_*.pdf")
	if err != nil {
		return "", fmt.Errorf("pdf.Renderer.RenderTripPDF: create temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("pdf.Renderer.RenderTripPDF: close temp file: %w", err)
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("pdf.Renderer.RenderTripPDF: write: %w", err)
	}
	return path, nil
}
