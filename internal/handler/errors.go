package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/extracker/extracker/internal/service"
)

// handleServiceError maps service errors to HTTP responses. Unmapped errors
// are logged and answered with fallback, which never carries internal detail.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUsernameRequired):
		writeError(w, http.StatusBadRequest, "USERNAME_REQUIRED", "username required")
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusBadRequest, "USER_EXISTS", "user already exists")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	case errors.Is(err, service.ErrDescriptionRequired):
		writeError(w, http.StatusBadRequest, "DESCRIPTION_REQUIRED", "description required")
	case errors.Is(err, service.ErrDurationRequired):
		writeError(w, http.StatusBadRequest, "DURATION_REQUIRED", "duration required")
	case errors.Is(err, service.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "INVALID_DATE", "invalid date")
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
