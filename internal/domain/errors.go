package domain

import "errors"

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing location, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedCurrency is returned by the budget estimator when asked to
// convert into a currency code outside the fixed rate table.
// Handlers should map this to HTTP 422.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrGeneration wraps any transport or API failure from the generation
// service. The plan service does not propagate it: per product behavior the
// error text is shown in place of the itinerary and the flow continues.
var ErrGeneration = errors.New("generation failed")
