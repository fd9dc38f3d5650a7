// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/extracker/extracker/internal/metrics"
	"github.com/extracker/extracker/internal/model"
	"github.com/extracker/extracker/internal/repository"
)

// Service errors.
var (
	ErrUsernameRequired    = errors.New("username required")
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrDescriptionRequired = errors.New("description required")
	ErrDurationRequired    = errors.New("duration required")
	ErrInvalidDate         = errors.New("invalid date")
)

// UserStore persists users and owns username uniqueness.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// ExerciseStore persists exercises.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]*model.Exercise, error)
}

// TrackerService composes the user and exercise stores.
// It holds no state of its own between calls.
type TrackerService struct {
	users     UserStore
	exercises ExerciseStore
	metrics   metrics.Recorder
	now       func() time.Time
}

// Option configures a TrackerService.
type Option func(*TrackerService)

// WithClock overrides the time source used for default exercise dates.
func WithClock(now func() time.Time) Option {
	return func(s *TrackerService) {
		s.now = now
	}
}

// NewTrackerService creates a new TrackerService.
func NewTrackerService(users UserStore, exercises ExerciseStore, recorder metrics.Recorder, opts ...Option) *TrackerService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	s := &TrackerService{
		users:     users,
		exercises: exercises,
		metrics:   recorder,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUser creates a user with a fresh id.
//
// The lookup before the insert only avoids most duplicate writes; the store
// rejects the losers of a concurrent race with repository.ErrUsernameExists.
func (s *TrackerService) CreateUser(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	_, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		s.metrics.IncUserConflict()
		return nil, ErrUserExists
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	user := &model.User{
		ID:        model.NewID(),
		Username:  username,
		CreatedAt: s.now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			s.metrics.IncUserConflict()
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()

	return user, nil
}

// ListUsers returns every user.
func (s *TrackerService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AddExerciseInput defines input for logging an exercise.
// Values are passed as received; Date may be empty.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExercise logs an exercise against the user with the given id.
//
// A Duration that is not a number is stored as nil rather than rejected.
func (s *TrackerService) AddExercise(ctx context.Context, input AddExerciseInput) (*model.User, *model.Exercise, error) {
	user, err := s.getUser(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(input.Description) == "" {
		return nil, nil, ErrDescriptionRequired
	}
	if strings.TrimSpace(input.Duration) == "" {
		return nil, nil, ErrDurationRequired
	}

	now := s.now()
	date := model.DateOf(now)
	if input.Date != "" {
		date, err = model.ParseDate(input.Date)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}

	exercise := &model.Exercise{
		ID:          model.NewID(),
		Username:    user.Username,
		Description: input.Description,
		Duration:    model.ParseMinutes(input.Duration),
		Date:        date,
		CreatedAt:   now.UTC(),
	}

	if err := s.exercises.CreateExercise(ctx, exercise); err != nil {
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.metrics.IncExerciseAdded()

	return user, exercise, nil
}

// LogQuery defines input for reading a user's exercise log.
// Limit <= 0 means no limit.
type LogQuery struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Log is a user's filtered exercise log.
type Log struct {
	User      *model.User
	Exercises []*model.Exercise
}

// GetLog returns the user's exercises dated within [From, To], in insertion
// order, truncated to Limit entries.
func (s *TrackerService) GetLog(ctx context.Context, query LogQuery) (*Log, error) {
	start := s.now()

	user, err := s.getUser(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit < 0 {
		limit = 0
	}

	exercises, err := s.exercises.ListExercises(ctx, repository.ExerciseFilter{
		Username: user.Username,
		From:     query.From,
		To:       query.To,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	s.metrics.ObserveLogQuery(s.now().Sub(start), len(exercises))

	return &Log{User: user, Exercises: exercises}, nil
}

func (s *TrackerService) getUser(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrUserNotFound
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
