package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/extracker/extracker/internal/handler/dto"
	"github.com/extracker/extracker/internal/model"
	"github.com/extracker/extracker/internal/service"
)

const logsErrorMessage = "failed to retrieve logs"

// ExerciseHandler handles HTTP requests for exercise operations.
type ExerciseHandler struct {
	svc    *service.TrackerService
	logger *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(svc *service.TrackerService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		svc:    svc,
		logger: logger,
	}
}

// Add handles POST /api/users/{id}/exercises.
func (h *ExerciseHandler) Add(w http.ResponseWriter, r *http.Request) {
	values, err := readValues(r)
	if err != nil {
		writeBodyError(w, err)
		return
	}

	user, exercise, err := h.svc.AddExercise(r.Context(), service.AddExerciseInput{
		UserID:      chi.URLParam(r, "id"),
		Description: values.Get("description"),
		Duration:    values.Get("duration"),
		Date:        values.Get("date"),
	})
	if err != nil {
		handleServiceError(w, h.logger, err, internalErrorMessage)
		return
	}

	h.logger.Info("exercise_added",
		"user_id", user.ID,
		"exercise_id", exercise.ID,
		"has_duration", exercise.Duration != nil,
	)

	writeJSON(w, http.StatusOK, dto.ToExerciseResponse(user, exercise))
}

// Logs handles GET /api/users/{id}/logs.
//
// from and to are inclusive yyyy-mm-dd bounds and are ignored when they do
// not parse. limit must be a positive integer; anything else means no limit.
func (h *ExerciseHandler) Logs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userLog, err := h.svc.GetLog(r.Context(), service.LogQuery{
		UserID: chi.URLParam(r, "id"),
		From:   parseDateParam(query, "from"),
		To:     parseDateParam(query, "to"),
		Limit:  parseLimitParam(query),
	})
	if err != nil {
		handleServiceError(w, h.logger, err, logsErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLogResponse(userLog.User.Username, userLog.Exercises))
}

func parseDateParam(query url.Values, key string) *time.Time {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil
	}
	date, err := model.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &date
}

func parseLimitParam(query url.Values) int {
	limit, err := strconv.Atoi(strings.TrimSpace(query.Get("limit")))
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}
