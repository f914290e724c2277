// Package budget implements the minimum-budget estimator: a keyword-based
// destination classifier, a per-tier daily-rate table, and static currency
// conversion. Everything here is a pure function over fixed tables — no I/O,
// no retained state, safe to call concurrently.
package budget

import (
	"fmt"
	"strings"

	"github.com/rebooterz/tripai/internal/domain"
)

// Keyword lists for classifying a destination by distance from the home
// country (India). Checked in priority order: nearby, then medium, then far.
// Matching is plain substring containment on the lowercased destination —
// a city name that happens to embed a country keyword will misclassify.
// That is a known limitation of the heuristic, kept deliberately.
var (
	nearbyCountries = []string{"nepal", "bangladesh", "sri lanka", "bhutan", "myanmar"}
	mediumDistance  = []string{"thailand", "malaysia", "singapore", "uae", "dubai", "vietnam", "cambodia", "indonesia"}
	farCountries    = []string{"usa", "uk", "france", "germany", "italy", "spain", "australia", "japan", "canada"}
)

// Daily budget-level cost per person in INR, by tier.
var dailyRates = map[domain.Tier]int{
	domain.TierDomestic: 2000,
	domain.TierNearby:   5000,
	domain.TierMedium:   8000,
	domain.TierFar:      12000,
}

// One-time transport surcharge in INR, by tier.
var transportSurcharges = map[domain.Tier]int{
	domain.TierDomestic: 5000,
	domain.TierNearby:   15000,
	domain.TierMedium:   30000,
	domain.TierFar:      60000,
}

// conversionRates maps a currency code to the INR→code multiplier.
// Illustrative static rates, not live data.
var conversionRates = map[string]float64{
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
	"JPY": 1.35,
	"AUD": 0.018,
	"CAD": 0.016,
	"INR": 1.0,
	"CNY": 0.086,
}

// currencySymbols maps a currency code to its display symbol.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"INR": "₹",
	"CNY": "¥",
}

// Classify returns the distance tier for a destination string.
// The first list containing any matching keyword wins; destinations matching
// no list are domestic.
func Classify(destination string) domain.Tier {
	dest := strings.ToLower(destination)

	if containsAny(dest, nearbyCountries) {
		return domain.TierNearby
	}
	if containsAny(dest, mediumDistance) {
		return domain.TierMedium
	}
	if containsAny(dest, farCountries) {
		return domain.TierFar
	}
	return domain.TierDomestic
}

// EstimateMinimum computes the minimum recommended per-person budget in INR
// for numDays days at the destination: daily rate × days + transport
// surcharge, both chosen by tier. numDays must be >= 1; the caller derives
// it from validated dates.
func EstimateMinimum(destination string, numDays int) int {
	tier := Classify(destination)
	return dailyRates[tier]*numDays + transportSurcharges[tier]
}

// Convert converts an INR amount into the target currency using the static
// rate table. Unknown codes return domain.ErrUnsupportedCurrency.
func Convert(amountINR float64, currencyCode string) (float64, error) {
	rate, ok := conversionRates[currencyCode]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, currencyCode)
	}
	return amountINR * rate, nil
}

// Symbol returns the display symbol for a currency code, or "$" for codes
// outside the table.
func Symbol(currencyCode string) string {
	if s, ok := currencySymbols[currencyCode]; ok {
		return s
	}
	return "$"
}

// containsAny reports whether s contains any of the keywords as a substring.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
