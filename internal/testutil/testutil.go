// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/extracker/extracker/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, username string) *model.User {
	t.Helper()
	return &model.User{
		ID:        model.NewID(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestExercise creates a test exercise for username on date.
func NewTestExercise(t testing.TB, username, description string, minutes int, date time.Time) *model.Exercise {
	t.Helper()
	return &model.Exercise{
		ID:          model.NewID(),
		Username:    username,
		Description: description,
		Duration:    &minutes,
		Date:        model.DateOf(date),
		CreatedAt:   time.Now().UTC(),
	}
}

// Day returns midnight UTC on the given date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
