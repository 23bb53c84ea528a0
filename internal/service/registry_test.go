package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompatulpan/Contact-Manager-sub002/models"
)

func TestConnectionRegistry(t *testing.T) {
	r := NewConnectionRegistry()

	conn := models.Connection{
		ID:           "b",
		ServerURL:    "https://dav.example.com",
		AddressBooks: []models.AddressBook{{Name: "contacts"}},
	}
	require.NoError(t, r.Add(conn))
	require.NoError(t, r.Add(models.Connection{ID: "a"}))
	assert.ErrorIs(t, r.Add(models.Connection{ID: "b"}), ErrConnectionExists)

	got, err := r.Get("b")
	require.NoError(t, err)
	assert.Equal(t, conn.ServerURL, got.ServerURL)

	// callers must not be able to mutate the registered connection
	got.AddressBooks[0].Name = "changed"
	again, _ := r.Get("b")
	assert.Equal(t, "contacts", again.AddressBooks[0].Name)

	conn.AddressBooks[0].Name = "changed"
	again, _ = r.Get("b")
	assert.Equal(t, "contacts", again.AddressBooks[0].Name)

	assert.Equal(t, []string{"a", "b"}, r.IDs())

	assert.True(t, r.Remove("a"))
	assert.False(t, r.Remove("a"))

	_, err = r.Get("a")
	assert.ErrorIs(t, err, ErrConnectionNotFound)
	assert.Equal(t, []string{"b"}, r.IDs())
}
