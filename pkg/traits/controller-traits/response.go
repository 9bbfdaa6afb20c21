package controllertraits

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as JSON with the given status
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorf("Failed to encode response: %v", err)
	}
}

// WriteResponse writes v as a 200 JSON response
func WriteResponse(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

// WriteErrorResponse writes {"error": message} with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteHTMLResponse writes an HTML response
func WriteHTMLResponse(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(content))
}
