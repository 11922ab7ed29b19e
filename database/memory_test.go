package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "cartItems")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "cartItems", "[]"))
	v, err := s.Get(ctx, "cartItems")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	require.NoError(t, s.Set(ctx, "cartItems", `[{"name":"Lens"}]`))
	v, _ = s.Get(ctx, "cartItems")
	assert.Equal(t, `[{"name":"Lens"}]`, v)

	require.NoError(t, s.Delete(ctx, "cartItems"))
	_, err = s.Get(ctx, "cartItems")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, "cartItems"))
}
