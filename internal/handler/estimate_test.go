package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebooterz/tripai/internal/domain"
	"github.com/rebooterz/tripai/internal/handler"
)

func estimateRequestBody(t *testing.T, currency string) *http.Request {
	t.Helper()
	body := jsonBody(t, map[string]any{
		"start_location": "Chennai, India",
		"destination":    "Paris, France",
		"start_date":     "2025-06-01",
		"end_date":       "2025-06-04",
		"currency":       currency,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/estimates", body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ---- POST /api/estimates ---------------------------------------------------

func TestCreateEstimate_200(t *testing.T) {
	estimates := &mockEstimateServicer{
		estimate: func(trip domain.TripRequest, currencyCode string) (domain.BudgetEstimate, error) {
			assert.Equal(t, "Paris, France", trip.Destination)
			assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), trip.EndDate)
			assert.Equal(t, "USD", currencyCode)
			return domain.BudgetEstimate{
				Tier:       domain.TierFar,
				NumDays:    4,
				MinimumINR: 108000,
				Minimum:    1296,
				Suggested:  1555.2,
				Currency:   "USD",
				Symbol:     "$",
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(nil, estimates, nil).ServeHTTP(rec, estimateRequestBody(t, "USD"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.BudgetEstimate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.TierFar, resp.Tier)
	assert.Equal(t, 108000, resp.MinimumINR)
	assert.InDelta(t, 1296, resp.Minimum, 1e-9)
	assert.Equal(t, "$", resp.Symbol)
}

func TestCreateEstimate_422_UnsupportedCurrency(t *testing.T) {
	estimates := &mockEstimateServicer{
		estimate: func(_ domain.TripRequest, _ string) (domain.BudgetEstimate, error) {
			return domain.BudgetEstimate{}, fmt.Errorf("%w: XYZ", domain.ErrUnsupportedCurrency)
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(nil, estimates, nil).ServeHTTP(rec, estimateRequestBody(t, "XYZ"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "unsupported_currency", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "XYZ")
}

func TestCreateEstimate_422_ValidationError(t *testing.T) {
	estimates := &mockEstimateServicer{
		estimate: func(_ domain.TripRequest, _ string) (domain.BudgetEstimate, error) {
			return domain.BudgetEstimate{}, fmt.Errorf("%w: destination is required", domain.ErrValidation)
		},
	}

	rec := httptest.NewRecorder()
	newHTTPHandler(nil, estimates, nil).ServeHTTP(rec, estimateRequestBody(t, "USD"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "destination is required", resp.Error.Message)
}
