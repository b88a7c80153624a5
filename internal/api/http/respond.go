package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/logger"
	"jobportal-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors service.ValidationErrors `json:"errors"`
}

// writeError maps service and domain errors onto HTTP statuses. Validation
// failures carry the complete ordered error list in one response.
func writeError(w http.ResponseWriter, err error) {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verrs})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, service.ErrPartialSubmission):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: service.ErrPartialSubmission.Error()})
	case errors.Is(err, service.ErrJobNotOpen):
		writeJSON(w, http.StatusConflict, errorResponse{Error: service.ErrJobNotOpen.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrJobNotArchived):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: service.ErrInvalidCredentials.Error()})
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
