package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extracker/extracker/internal/testutil"
)

func TestMemory_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) store {
		return NewMemory()
	})
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	user := testutil.NewTestUser(t, "henry")
	require.NoError(t, m.CreateUser(ctx, user))
	user.Username = "mutated"

	got, err := m.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "henry", got.Username)

	got.Username = "also-mutated"
	again, err := m.GetUserByUsername(ctx, "henry")
	require.NoError(t, err)
	assert.Equal(t, "henry", again.Username)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory()
	assert.ErrorIs(t, m.CreateUser(ctx, testutil.NewTestUser(t, "ivy")), context.Canceled)
	assert.ErrorIs(t, m.Ping(ctx), context.Canceled)

	_, err := m.ListUsers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
