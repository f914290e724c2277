package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebooterz/tripai/internal/domain"
)

// decodeAmount unmarshals raw JSON into a BudgetAmount and returns the
// coerced value. Decoding must never fail, whatever the shape.
func decodeAmount(t *testing.T, raw string) float64 {
	t.Helper()
	var a domain.BudgetAmount
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	return a.Value()
}

// TestBudgetAmount_coercionShapes covers the accepted tagged-union shapes:
// number, numeric string, {"value": ...}, and everything-else → 0.
func TestBudgetAmount_coercionShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `5000`, 5000},
		{"float", `1234.56`, 1234.56},
		{"numeric string", `"5000"`, 5000},
		{"numeric string with spaces", `" 250.5 "`, 250.5},
		{"record with numeric value", `{"value": 5000}`, 5000},
		{"record with string value", `{"value": "750"}`, 750},
		{"non-numeric string", `"not-a-number"`, 0},
		{"record without value", `{"amount": 10}`, 0},
		{"record with nested record value", `{"value": {"value": 5}}`, 0},
		{"array", `[1, 2, 3]`, 0},
		{"null", `null`, 0},
		{"boolean", `true`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeAmount(t, tt.raw))
		})
	}
}

// TestBudgetAmount_roundTrip verifies the coerced value marshals back as a
// plain number.
func TestBudgetAmount_roundTrip(t *testing.T) {
	b, err := json.Marshal(domain.NewBudgetAmount(42.5))
	require.NoError(t, err)
	assert.Equal(t, "42.5", string(b))
}

// TestBudget_decodeWholeRecord verifies a full budget payload decodes with
// the defensive amount handling applied.
func TestBudget_decodeWholeRecord(t *testing.T) {
	var budget domain.Budget
	raw := `{"amount": {"value": "900"}, "currency": "EUR", "symbol": "€"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &budget))

	assert.Equal(t, 900.0, budget.Amount.Value())
	assert.Equal(t, "EUR", budget.Currency)
	assert.Equal(t, "€", budget.Symbol)
}

// TestTripRequest_NumDays verifies the inclusive day count, including the
// same-day boundary.
func TestTripRequest_NumDays(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	sameDay := domain.TripRequest{StartDate: start, EndDate: start}
	assert.Equal(t, 1, sameDay.NumDays())

	fourDays := domain.TripRequest{StartDate: start, EndDate: start.AddDate(0, 0, 3)}
	assert.Equal(t, 4, fourDays.NumDays())
}
