package handler

import (
	"log/slog"
	"net/http"

	"github.com/extracker/extracker/internal/handler/dto"
	"github.com/extracker/extracker/internal/service"
)

const internalErrorMessage = "an internal error occurred"

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.TrackerService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.TrackerService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	values, err := readValues(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), values.Get("username"))
	if err != nil {
		handleServiceError(w, h.logger, err, internalErrorMessage)
		return
	}

	h.logger.Info("user_created", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, internalErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}
