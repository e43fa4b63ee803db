package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserDAO_SeedsSampleHandle(t *testing.T) {
	store := openTestStore(t)

	d, err := NewUserDAO(store)
	require.NoError(t, err)

	users := d.All(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "john_doe", users[0].User)
}

func TestUserDAO_InsertAndFindByName(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d, err := NewUserDAO(store)
	require.NoError(t, err)

	require.NoError(t, d.Insert(ctx, User{User: "bob_brown"}))

	found, err := d.FindByName(ctx, "bob_brown")
	require.NoError(t, err)
	assert.Equal(t, "bob_brown", found.User)

	_, err = d.FindByName(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserDAO_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d, err := NewUserDAO(store)
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, "john_doe"))
	_, err = d.FindByName(ctx, "john_doe")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, d.Delete(ctx, "john_doe"), ErrNotFound)
}

func TestUserDAO_DropsMalformedHandlesOnLoad(t *testing.T) {
	store := openTestStore(t)

	raw := `[{"User":"ok"},{"Name":"wrong_field"}]`
	require.NoError(t, store.Put("users", []byte(raw)))

	d, err := NewUserDAO(store)
	require.NoError(t, err)

	users := d.All(context.Background())
	require.Len(t, users, 1)
	assert.Equal(t, "ok", users[0].User)
}
