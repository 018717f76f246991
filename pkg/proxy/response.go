package proxy

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteRawJSON writes body unchanged with a JSON content type.
func WriteRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

// WriteErrorResponse writes an error envelope.
func WriteErrorResponse(w http.ResponseWriter, status int, envelope *ErrorEnvelope) {
	WriteJSON(w, status, envelope)
}

// WriteError converts err with HandleError and writes the result. It
// returns the status written.
func WriteError(w http.ResponseWriter, err error) int {
	status, envelope := HandleError(err)
	WriteErrorResponse(w, status, envelope)
	return status
}
