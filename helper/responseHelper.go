package helper

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

// APIError is a failure the handler could classify. It carries the HTTP
// status and message to send back.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// RespondJSON writes v as a JSON response body with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Error().Err(err).Msg("encoding response body")
		}
	}
}

// RespondError maps err to an HTTP response. Classified errors carry their
// own status and message; anything else is an unexpected store failure and is
// surfaced as a generic 500.
func RespondError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		RespondJSON(w, apiErr.Status, map[string]string{"message": apiErr.Message})
		return
	}

	log.Error().Err(err).Msg("unexpected store error")
	RespondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
}
