package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"partyrent-backend/internal/domain"
	"partyrent-backend/internal/logger"
)

// APIError is the standardized error body returned to clients.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response body", "error", err)
	}
}

// writeError maps domain sentinel errors onto HTTP statuses. Unrecognized
// errors become opaque 500s so internals don't leak.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, APIError{Code: "NotFound", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, APIError{Code: "InvalidInput", Message: err.Error()})
	case errors.Is(err, domain.ErrSKUConflict):
		writeJSON(w, http.StatusConflict, APIError{Code: "SKUConflict", Message: err.Error()})
	case errors.Is(err, domain.ErrNoAvailability):
		writeJSON(w, http.StatusConflict, APIError{Code: "NoAvailability", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, APIError{Code: "Unauthorized", Message: "unauthorized"})
	default:
		logger.Error("Unhandled error in request", "error", err)
		writeJSON(w, http.StatusInternalServerError, APIError{Code: "InternalError", Message: "internal error"})
	}
}
