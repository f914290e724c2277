package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeValidationError responds 422 with the message extracted from a
// wrapped domain.ErrValidation error.
func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)},
	})
}

// writeRequestError responds 422 for a bad request rejected before reaching
// the service layer (e.g. missing or malformed body).
func writeRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// writeUnsupportedCurrency responds 422 for a currency code outside the
// fixed rate table.
func writeUnsupportedCurrency(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "unsupported_currency", Message: unwrapMessage(err)},
	})
}

// writeInternalError responds 500 without leaking internals to the client.
func writeInternalError(w http.ResponseWriter, err error) {
	slog.Error("internal error", "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.PlanService.Generate: validation error: destination is required"
// → "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.PlanService.Generate: ",
		"service.EstimateService.Estimate: ",
		"service.ExportService.Export: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	// "unsupported currency: XYZ" reads fine as-is; only the validation
	// sentinel prefix is noise for end users.
	return strings.TrimPrefix(msg, "validation error: ")
}
