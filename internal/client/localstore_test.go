package client_test

import (
	"path/filepath"
	"testing"

	"grostory/internal/client"
	"grostory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *client.LocalStore {
	t.Helper()
	return client.NewLocalStore(filepath.Join(t.TempDir(), "store.json"))
}

func TestLocalStore_SetGet(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set(client.KeyAuthToken, "token-abc"))

	var token string
	ok, err := store.Get(client.KeyAuthToken, &token)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-abc", token)
}

func TestLocalStore_GetMissingKey(t *testing.T) {
	store := newStore(t)

	var token string
	ok, err := store.Get(client.KeyAuthToken, &token)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := client.NewLocalStore(path)
	user := models.User{ID: "user-123", Email: "shopper@example.com"}
	require.NoError(t, first.Set(client.KeyUser, &user))
	require.NoError(t, first.Set(client.KeyCart, []models.CartItem{
		{ProductID: 1, Name: "Apple", Price: 1.5, Image: "a.png", Quantity: 1},
	}))

	second := client.NewLocalStore(path)
	var restored models.User
	ok, err := second.Get(client.KeyUser, &restored)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, user, restored)

	var items []models.CartItem
	ok, err = second.Get(client.KeyCart, &items)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, items, 1)
}

func TestLocalStore_Remove(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set(client.KeyAuthToken, "token-abc"))
	require.NoError(t, store.Set(client.KeyUser, map[string]string{"uid": "user-123"}))
	require.NoError(t, store.Set(client.KeyCart, []int{}))

	require.NoError(t, store.Remove(client.KeyAuthToken, client.KeyUser, client.KeyCart))

	for _, key := range []string{client.KeyAuthToken, client.KeyUser, client.KeyCart} {
		var out interface{}
		ok, err := store.Get(key, &out)
		assert.NoError(t, err)
		assert.False(t, ok, key)
	}

	// Removing absent keys is a no-op.
	assert.NoError(t, store.Remove(client.KeyAuthToken))
}
