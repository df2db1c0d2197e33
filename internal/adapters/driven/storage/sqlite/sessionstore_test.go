package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

func setupTestStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSessionStore_AppendAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: "user", Content: "who ran the mill?"}))
	require.NoError(t, store.Append(ctx, "s1", domain.Turn{Role: "assistant", Content: "see doc 3, pages 4-6"}))

	turns, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "who ran the mill?", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.False(t, turns[0].CreatedAt.IsZero())
}

func TestSessionStore_Get_UnknownSession(t *testing.T) {
	store := setupTestStore(t)

	turns, err := store.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestSessionStore_TrimsToMaxTurns(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < domain.MaxSessionTurns+4; i++ {
		turn := domain.Turn{Role: "user", Content: fmt.Sprintf("turn %d", i)}
		require.NoError(t, store.Append(ctx, "s1", turn))
	}

	turns, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, turns, domain.MaxSessionTurns)

	// The oldest turns were dropped; the newest survive in order.
	assert.Equal(t, "turn 4", turns[0].Content)
	assert.Equal(t, fmt.Sprintf("turn %d", domain.MaxSessionTurns+3), turns[len(turns)-1].Content)
}

func TestSessionStore_SessionsAreIndependent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "a", domain.Turn{Role: "user", Content: "a1"}))
	require.NoError(t, store.Append(ctx, "b", domain.Turn{Role: "user", Content: "b1"}))

	turnsA, err := store.Get(ctx, "a")
	require.NoError(t, err)
	turnsB, err := store.Get(ctx, "b")
	require.NoError(t, err)

	require.Len(t, turnsA, 1)
	require.Len(t, turnsB, 1)
	assert.Equal(t, "a1", turnsA[0].Content)
	assert.Equal(t, "b1", turnsB[0].Content)
}

func TestSessionStore_Append_EmptySessionID(t *testing.T) {
	store := setupTestStore(t)

	err := store.Append(context.Background(), "", domain.Turn{Role: "user", Content: "x"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
