package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

func init() {
	// The original consumers expect bare JSON numbers for prices and
	// balances, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// WriteJSON writes a JSON response with the given status code and data.
// Sets Content-Type to application/json before writing the status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // Write error intentionally ignored in response helper
}

// WriteText writes a plain-text response. Buy/sell confirmations are
// plain strings on the wire, a quirk the existing UI depends on.
func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// errorResponse is the standard error response format.
type errorResponse struct {
	Message string `json:"message"`
}

// WriteError writes a standard error response with the given status
// code and human-readable message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorResponse{Message: message})
}

// ParseJSON decodes the request body as JSON into v. Unknown fields
// are tolerated, matching the original backend's lenient parsing.
func ParseJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
