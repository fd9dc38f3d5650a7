package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/extracker/extracker/internal/model"
)

// ExerciseFilter selects a user's exercises.
// From and To are inclusive calendar dates; Limit <= 0 means no limit.
type ExerciseFilter struct {
	Username string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// Matches reports whether e passes the filter.
func (f ExerciseFilter) Matches(e *model.Exercise) bool {
	if e.Username != f.Username {
		return false
	}
	date := model.DateOf(e.Date)
	if f.From != nil && date.Before(model.DateOf(*f.From)) {
		return false
	}
	if f.To != nil && date.After(model.DateOf(*f.To)) {
		return false
	}
	return true
}

// CreateExercise inserts a new exercise. A nil Duration is stored as NULL.
func (r *Repository) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	query := `
		INSERT INTO exercises (id, username, description, duration, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		exercise.ID,
		exercise.Username,
		exercise.Description,
		exercise.Duration,
		model.DateOf(exercise.Date),
		exercise.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil
}

// ListExercises returns the exercises matching filter in insertion order.
func (r *Repository) ListExercises(ctx context.Context, filter ExerciseFilter) ([]*model.Exercise, error) {
	// Build query with filters
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, username, description, duration, date, created_at
		FROM exercises
		WHERE username = $1
	`)
	args := []any{filter.Username}

	if filter.From != nil {
		args = append(args, model.DateOf(*filter.From))
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, model.DateOf(*filter.To))
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}

	sb.WriteString(" ORDER BY seq")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]*model.Exercise, 0)
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}

// scanExercise scans a row into an Exercise model.
func scanExercise(row pgx.Row) (*model.Exercise, error) {
	var e model.Exercise
	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.Description,
		&e.Duration,
		&e.Date,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Date = model.DateOf(e.Date)
	return &e, nil
}
