package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extracker/extracker/internal/model"
	"github.com/extracker/extracker/internal/testutil"
)

// store is the behaviour shared by Repository and Memory.
type store interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	CreateExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercises(ctx context.Context, filter ExerciseFilter) ([]*model.Exercise, error)
}

var (
	_ store = (*Repository)(nil)
	_ store = (*Memory)(nil)
)

// runStoreContract exercises a fresh, empty store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) store) {
	t.Run("create and find user", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		user := testutil.NewTestUser(t, "alice")
		require.NoError(t, s.CreateUser(ctx, user))

		byID, err := s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, byID.Username)

		byName, err := s.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)
	})

	t.Run("username lookup is case sensitive", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.CreateUser(ctx, testutil.NewTestUser(t, "Bob")))

		_, err := s.GetUserByUsername(ctx, "bob")
		assert.ErrorIs(t, err, ErrUserNotFound)

		require.NoError(t, s.CreateUser(ctx, testutil.NewTestUser(t, "bob")))
	})

	t.Run("missing user", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		_, err := s.GetUserByID(ctx, model.NewID())
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.CreateUser(ctx, testutil.NewTestUser(t, "carol")))
		err := s.CreateUser(ctx, testutil.NewTestUser(t, "carol"))
		assert.ErrorIs(t, err, ErrUsernameExists)

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("concurrent identical creates", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		const attempts = 16
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.CreateUser(ctx, testutil.NewTestUser(t, "dave"))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case assert.ErrorIs(t, err, ErrUsernameExists):
					conflicts++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, attempts-1, conflicts)
	})

	t.Run("list users in insertion order", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		names := []string{"u1", "u2", "u3"}
		for _, name := range names {
			require.NoError(t, s.CreateUser(ctx, testutil.NewTestUser(t, name)))
		}

		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, len(names))
		for i, u := range users {
			assert.Equal(t, names[i], u.Username)
		}
	})

	t.Run("list users empty", func(t *testing.T) {
		s := newStore(t)

		users, err := s.ListUsers(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("exercise round trip keeps nil duration", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		withDuration := testutil.NewTestExercise(t, "erin", "running", 30, testutil.Day(2024, 1, 10))
		noDuration := testutil.NewTestExercise(t, "erin", "yoga", 30, testutil.Day(2024, 1, 11))
		noDuration.Duration = nil

		require.NoError(t, s.CreateExercise(ctx, withDuration))
		require.NoError(t, s.CreateExercise(ctx, noDuration))

		got, err := s.ListExercises(ctx, ExerciseFilter{Username: "erin"})
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "running", got[0].Description)
		require.NotNil(t, got[0].Duration)
		assert.Equal(t, 30, *got[0].Duration)
		assert.True(t, got[0].Date.Equal(testutil.Day(2024, 1, 10)))

		assert.Equal(t, "yoga", got[1].Description)
		assert.Nil(t, got[1].Duration)
	})

	t.Run("duration beyond int32 round trips", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		minutes := model.ParseMinutes("3000000000")
		require.NotNil(t, minutes)

		exercise := testutil.NewTestExercise(t, "hank", "ultra", 0, testutil.Day(2024, 1, 12))
		exercise.Duration = minutes
		require.NoError(t, s.CreateExercise(ctx, exercise))

		got, err := s.ListExercises(ctx, ExerciseFilter{Username: "hank"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Duration)
		assert.Equal(t, *minutes, *got[0].Duration)
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		dates := []time.Time{
			testutil.Day(2023, 12, 31),
			testutil.Day(2024, 1, 1),
			testutil.Day(2024, 1, 15),
			testutil.Day(2024, 1, 31),
			testutil.Day(2024, 2, 1),
		}
		for i, d := range dates {
			require.NoError(t, s.CreateExercise(ctx, testutil.NewTestExercise(t, "frank", fmt.Sprintf("e%d", i), 30, d)))
		}
		require.NoError(t, s.CreateExercise(ctx, testutil.NewTestExercise(t, "someone-else", "other", 30, testutil.Day(2024, 1, 2))))

		from := testutil.Day(2024, 1, 1)
		to := testutil.Day(2024, 1, 31)
		got, err := s.ListExercises(ctx, ExerciseFilter{Username: "frank", From: &from, To: &to})
		require.NoError(t, err)

		require.Len(t, got, 3)
		assert.Equal(t, "e1", got[0].Description)
		assert.Equal(t, "e2", got[1].Description)
		assert.Equal(t, "e3", got[2].Description)

		onlyFrom, err := s.ListExercises(ctx, ExerciseFilter{Username: "frank", From: &to})
		require.NoError(t, err)
		assert.Len(t, onlyFrom, 2)

		onlyTo, err := s.ListExercises(ctx, ExerciseFilter{Username: "frank", To: &from})
		require.NoError(t, err)
		assert.Len(t, onlyTo, 2)
	})

	t.Run("limit keeps insertion order", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for i := 0; i < 5; i++ {
			require.NoError(t, s.CreateExercise(ctx, testutil.NewTestExercise(t, "gina", fmt.Sprintf("e%d", i), 30, testutil.Day(2024, 3, 5-i))))
		}

		got, err := s.ListExercises(ctx, ExerciseFilter{Username: "gina", Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "e0", got[0].Description)
		assert.Equal(t, "e1", got[1].Description)

		all, err := s.ListExercises(ctx, ExerciseFilter{Username: "gina", Limit: 0})
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})
}
