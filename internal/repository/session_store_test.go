package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenangan-bot/internal/domain"
)

func TestMemorySessionStore_UnknownUser(t *testing.T) {
	store := NewMemorySessionStore()

	session, err := store.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, &domain.Session{}, session)
}

func TestMemorySessionStore_SaveAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := &domain.Session{OwnerID: "U1", Post: domain.PostAwaitTitle}
	session.Scratch.StoragePath = "memories/U1/x.jpg"
	require.NoError(t, store.Save(ctx, 42, session))

	loaded, err := store.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "U1", loaded.OwnerID)
	assert.Equal(t, domain.PostAwaitTitle, loaded.Post)
	assert.Equal(t, "memories/U1/x.jpg", loaded.Scratch.StoragePath)
}

func TestMemorySessionStore_IsolatesUsers(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 1, &domain.Session{OwnerID: "U1"}))
	require.NoError(t, store.Save(ctx, 2, &domain.Session{OwnerID: "U2"}))

	first, err := store.Get(ctx, 1)
	require.NoError(t, err)
	second, err := store.Get(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, "U1", first.OwnerID)
	assert.Equal(t, "U2", second.OwnerID)
}

func TestMemorySessionStore_GetReturnsCopy(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, 1, &domain.Session{OwnerID: "U1"}))

	loaded, err := store.Get(ctx, 1)
	require.NoError(t, err)
	loaded.OwnerID = "tampered"

	again, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "U1", again.OwnerID)
}
