package http

import (
	"encoding/json"
	"net/http"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the classified service errors onto HTTP statuses.
// Storage and unclassified errors become a generic 500; the underlying
// error is logged, not leaked.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperr.Is(err, apperr.KindNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case apperr.Is(err, apperr.KindUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case apperr.Is(err, apperr.KindValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case apperr.Is(err, apperr.KindInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case apperr.Is(err, apperr.KindUnavailable):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
