package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/logger"
)

type errorResponse struct {
	Error         string `json:"error"`
	CurrentStatus string `json:"current_status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the error taxonomy onto HTTP status codes: validation 400,
// state conflicts 409 (with the actual status so the UI can resynchronize),
// unknown ids 404, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var stateErr *domain.InvalidStateError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.As(err, &stateErr):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:         stateErr.Error(),
			CurrentStatus: string(stateErr.Current),
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
