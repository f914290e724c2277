package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Tier is a destination's distance/domesticity classification, used to pick
// a daily-cost baseline when estimating a minimum trip budget.
type Tier string

const (
	TierDomestic Tier = "domestic"
	TierNearby   Tier = "international-nearby"
	TierMedium   Tier = "international-medium"
	TierFar      Tier = "international-far"
)

// Budget is the optional per-person spending limit attached to a plan request.
// Symbol is caller-supplied display text and is not cross-checked against
// Currency; the prompt composer resolves its own symbol from the currency code.
type Budget struct {
	Amount   BudgetAmount `json:"amount"`
	Currency string       `json:"currency"`
	Symbol   string       `json:"symbol"`
}

// BudgetAmount is a defensively-coerced monetary amount. Upstream callers
// have been observed sending a plain number, a numeric string, or a record
// shaped like {"value": ...}; anything else coerces to zero. Decoding never
// fails, so a malformed budget degrades instead of rejecting the request.
type BudgetAmount struct {
	value float64
}

// NewBudgetAmount wraps a known-good numeric amount.
func NewBudgetAmount(v float64) BudgetAmount {
	return BudgetAmount{value: v}
}

// Value returns the coerced numeric amount. Zero for unrecognized shapes.
func (a BudgetAmount) Value() float64 {
	return a.value
}

// UnmarshalJSON accepts number | numeric string | {"value": number|string}.
// Unrecognized shapes (arrays, null, non-numeric strings, nested records)
// decode as 0 and never return an error.
func (a *BudgetAmount) UnmarshalJSON(data []byte) error {
	a.value = 0

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		a.value = n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.value = parseNumeric(s)
		return nil
	}

	// One level of {"value": ...} unwrapping only; a record nested inside
	// value is not an amount and stays 0.
	var rec struct {
		Value any `json:"value"`
	}
	if err := json.Unmarshal(data, &rec); err == nil {
		switch v := rec.Value.(type) {
		case float64:
			a.value = v
		case string:
			a.value = parseNumeric(v)
		}
	}
	return nil
}

// MarshalJSON emits the coerced amount as a plain JSON number.
func (a BudgetAmount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// parseNumeric parses s as a float, returning 0 when it is not numeric.
func parseNumeric(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// BudgetEstimate is the minimum-budget recommendation shown to the user
// before they commit to a budget figure.
type BudgetEstimate struct {
	Tier       Tier    `json:"tier"`
	NumDays    int     `json:"num_days"`
	MinimumINR int     `json:"minimum_inr"` // base-currency minimum
	Minimum    float64 `json:"minimum"`     // minimum converted to Currency
	Suggested  float64 `json:"suggested"`   // 20% above the converted minimum
	Currency   string  `json:"currency"`
	Symbol     string  `json:"symbol"`
}
