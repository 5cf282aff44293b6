package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the uniform error envelope returned by every
// endpoint. ValidationErrors is present only for field-validation
// failures, one "<field>: <message>" entry per offending field.
type ErrorResponse struct {
	Status           int       `json:"status"`
	Message          string    `json:"message"`
	Details          string    `json:"details"`
	Timestamp        time.Time `json:"timestamp"`
	Path             string    `json:"path"`
	ValidationErrors []string  `json:"validationErrors,omitempty"`
}

// JSON writes v as a JSON body with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes the error envelope with the given status, message, and
// details.
func Error(w http.ResponseWriter, r *http.Request, statusCode int, message, details string) {
	JSON(w, statusCode, ErrorResponse{
		Status:    statusCode,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
		Path:      r.URL.Path,
	})
}

// ValidationFailed writes the 400 envelope for field-validation
// failures.
func ValidationFailed(w http.ResponseWriter, r *http.Request, validationErrors []string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Status:           http.StatusBadRequest,
		Message:          "Validation Failed",
		Details:          "Request validation failed",
		Timestamp:        time.Now(),
		Path:             r.URL.Path,
		ValidationErrors: validationErrors,
	})
}

// InternalError writes the catch-all 500 envelope. No internal detail
// is exposed to the caller.
func InternalError(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
}
