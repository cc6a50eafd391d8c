package storage

import (
	"context"
	"testing"

	"github.com/divineverse/divineverse-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{ID: "u1", Name: "Arjuna", Email: "arjuna@kurukshetra.in", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, user))

	byEmail, err := store.GetUserByEmail(ctx, "arjuna@kurukshetra.in")
	require.NoError(t, err)
	assert.Equal(t, user, byEmail)

	byID, err := store.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, byID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{ID: "u1", Name: "Arjuna", Email: "arjuna@kurukshetra.in", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, user))

	dup := models.User{ID: "u2", Name: "Imposter", Email: "arjuna@kurukshetra.in", PasswordHash: "hash2"}
	err := store.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetUserByEmail(ctx, "nobody@nowhere.in")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetUserByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistoryAppendOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.User{ID: "u1", Name: "Arjuna", Email: "arjuna@kurukshetra.in", PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, user))

	require.NoError(t, store.AppendTurns(ctx, "u1",
		models.ChatTurn{Role: models.RoleUser, Content: "first question"},
		models.ChatTurn{Role: models.RoleAssistant, Content: "first answer"},
	))
	require.NoError(t, store.AppendTurns(ctx, "u1",
		models.ChatTurn{Role: models.RoleUser, Content: "second question"},
		models.ChatTurn{Role: models.RoleAssistant, Content: "second answer"},
	))

	turns, err := store.GetHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, turns, 4)

	contents := []string{turns[0].Content, turns[1].Content, turns[2].Content, turns[3].Content}
	assert.Equal(t, []string{"first question", "first answer", "second question", "second answer"}, contents)
	assert.Equal(t, models.RoleUser, turns[0].Role)
	assert.Equal(t, models.RoleAssistant, turns[1].Role)
}

func TestHistoryEmptyForNewUser(t *testing.T) {
	store := newTestStore(t)

	turns, err := store.GetHistory(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestHistoryIsolatedPerUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendTurns(ctx, "u1", models.ChatTurn{Role: models.RoleUser, Content: "mine"}))
	require.NoError(t, store.AppendTurns(ctx, "u2", models.ChatTurn{Role: models.RoleUser, Content: "yours"}))

	turns, err := store.GetHistory(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "mine", turns[0].Content)
}
