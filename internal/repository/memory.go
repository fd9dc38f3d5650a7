package repository

import (
	"context"
	"sync"

	"github.com/extracker/extracker/internal/model"
)

// Memory is an in-process store with the same contract as Repository.
// Records are kept in insertion order and lost on restart.
type Memory struct {
	mu         sync.RWMutex
	users      []*model.User
	byID       map[string]*model.User
	byUsername map[string]*model.User
	exercises  []*model.Exercise
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		byID:       make(map[string]*model.User),
		byUsername: make(map[string]*model.User),
	}
}

// Ping succeeds unless ctx is done.
func (m *Memory) Ping(ctx context.Context) error {
	return ctx.Err()
}

// CreateUser stores a copy of user. The username check and the insert happen
// under one lock, so at most one of several concurrent identical creates wins.
func (m *Memory) CreateUser(ctx context.Context, user *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byUsername[user.Username]; ok {
		return ErrUsernameExists
	}

	stored := *user
	m.users = append(m.users, &stored)
	m.byID[stored.ID] = &stored
	m.byUsername[stored.Username] = &stored

	return nil
}

// GetUserByID retrieves a user by their ID.
func (m *Memory) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// GetUserByUsername retrieves a user by exact username.
func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	out := *user
	return &out, nil
}

// ListUsers returns every user in insertion order.
func (m *Memory) ListUsers(ctx context.Context) ([]*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		out := *u
		users = append(users, &out)
	}
	return users, nil
}

// CreateExercise stores a copy of exercise.
func (m *Memory) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := *exercise
	stored.Date = model.DateOf(exercise.Date)
	if exercise.Duration != nil {
		d := *exercise.Duration
		stored.Duration = &d
	}

	m.mu.Lock()
	m.exercises = append(m.exercises, &stored)
	m.mu.Unlock()

	return nil
}

// ListExercises returns the exercises matching filter in insertion order.
func (m *Memory) ListExercises(ctx context.Context, filter ExerciseFilter) ([]*model.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	exercises := make([]*model.Exercise, 0)
	for _, e := range m.exercises {
		if !filter.Matches(e) {
			continue
		}
		out := *e
		exercises = append(exercises, &out)
		if filter.Limit > 0 && len(exercises) == filter.Limit {
			break
		}
	}
	return exercises, nil
}
