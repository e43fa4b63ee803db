package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDAO_EmptyByDefault(t *testing.T) {
	store := openTestStore(t)

	d := NewSessionDAO(store)
	username, ok, err := d.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, username)
}

func TestSessionDAO_SetThenCurrent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d := NewSessionDAO(store)
	require.NoError(t, d.Set(ctx, "bob_brown"))

	username, ok, err := d.Current(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bob_brown", username)
}

func TestSessionDAO_Clear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d := NewSessionDAO(store)
	require.NoError(t, d.Set(ctx, "bob_brown"))
	require.NoError(t, d.Clear(ctx))

	_, ok, err := d.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// Clearing again is a no-op.
	require.NoError(t, d.Clear(ctx))
}
