// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/extracker/extracker/internal/model"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// ExerciseResponse is returned after logging an exercise.
// ID is the owning user's id.
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is one exercise in a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    *int   `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents a user's filtered exercise log.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		Username: user.Username,
		ID:       user.ID,
	}
}

// ToUserListResponse converts users to a response slice.
// The result is never nil so an empty list encodes as [].
func ToUserListResponse(users []*model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// ToExerciseResponse combines the owning user and the new exercise.
func ToExerciseResponse(user *model.User, exercise *model.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.FormattedDate(),
	}
}

// ToLogResponse converts a log to its wire form.
func ToLogResponse(username string, exercises []*model.Exercise) LogResponse {
	entries := make([]LogEntry, 0, len(exercises))
	for _, e := range exercises {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.FormattedDate(),
		})
	}
	return LogResponse{
		Username: username,
		Count:    len(entries),
		Log:      entries,
	}
}
