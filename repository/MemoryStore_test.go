package repository

import (
	"testing"

	"github.com/Aditya231356/Carpenter-Website/entities"
	"github.com/Aditya231356/Carpenter-Website/models"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	in := []entities.CartLine{{Id: 1, Name: "Teak Wood Bed", Price: 45000, Quantity: 2}}

	err := store.Save(CartKey, in)
	require.NoError(t, err)

	var out []entities.CartLine
	found, err := store.Load(CartKey, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestMemoryStore_LoadMissingKey(t *testing.T) {
	store := NewMemoryStore()

	var out []entities.CartLine
	found, err := store.Load(CartKey, &out)
	require.NoError(t, err)
	require.False(t, found)
	require.Empty(t, out)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	err := store.Save(CartKey, []entities.CartLine{{Id: 1, Quantity: 1}})
	require.NoError(t, err)

	err = store.Delete(CartKey)
	require.NoError(t, err)

	var out []entities.CartLine
	found, err := store.Load(CartKey, &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStore_DeleteMissingKey(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Delete("nothing"))
}

func TestMemoryStore_CorruptValue(t *testing.T) {
	store := NewMemoryStore()
	store.Put(CartKey, []byte("{not json"))

	var out []entities.CartLine
	found, err := store.Load(CartKey, &out)
	require.ErrorIs(t, err, models.ErrServerError)
	require.False(t, found)
}
