package pdf_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebooterz/tripai/internal/pdf"
)

// TestRenderTripPDF_writesValidFile verifies a temp PDF is produced with the
// PDF magic bytes and non-trivial content.
func TestRenderTripPDF_writesValidFile(t *testing.T) {
	r := pdf.NewRenderer()

	plan := "Day 1\nArrive in Paris and check in.\n\nDay 2\nLouvre in the morning."
	path, err := r.RenderTripPDF(plan, "Chennai, India", "Paris, France",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 500)
	assert.Equal(t, "%PDF", string(data[:4]))
}

// TestRenderTripPDF_handlesNonLatinSymbols verifies symbols outside the core
// font's codepage (e.g. ₹) do not fail the render.
func TestRenderTripPDF_handlesNonLatinSymbols(t *testing.T) {
	r := pdf.NewRenderer()

	path, err := r.RenderTripPDF("Budget: ₹15,000 per person", "Chennai", "Goa",
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
