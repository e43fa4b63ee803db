package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountDAO_NeverSeeds(t *testing.T) {
	store := openTestStore(t)

	d := NewAccountDAO(store)
	assert.Empty(t, d.All(context.Background()))
}

func TestAccountDAO_FindByIdentity(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d := NewAccountDAO(store)
	require.NoError(t, d.Insert(ctx, Account{
		Username:     "bob_brown",
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$fake",
	}))

	byUsername, err := d.FindByIdentity(ctx, "bob_brown")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", byUsername.Email)

	byEmail, err := d.FindByIdentity(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob_brown", byEmail.Username)

	_, err = d.FindByIdentity(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountDAO_FindByIdentityIsCaseSensitive(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d := NewAccountDAO(store)
	require.NoError(t, d.Insert(ctx, Account{
		Username:     "bob_brown",
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$fake",
	}))

	_, err := d.FindByIdentity(ctx, "Bob_Brown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountDAO_Exists(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d := NewAccountDAO(store)
	require.NoError(t, d.Insert(ctx, Account{
		Username:     "bob_brown",
		Email:        "bob@example.com",
		PasswordHash: "$2a$10$fake",
	}))

	usernameTaken, emailTaken := d.Exists(ctx, "bob_brown", "other@example.com")
	assert.True(t, usernameTaken)
	assert.False(t, emailTaken)

	usernameTaken, emailTaken = d.Exists(ctx, "other", "bob@example.com")
	assert.False(t, usernameTaken)
	assert.True(t, emailTaken)
}

func TestAccountDAO_DropsRecordsMissingFieldsOnLoad(t *testing.T) {
	store := openTestStore(t)

	raw := `[
		{"username":"ok","email":"ok@example.com","passwordHash":"h"},
		{"username":"nohash","email":"nohash@example.com"}
	]`
	require.NoError(t, store.Put("authUsers", []byte(raw)))

	d := NewAccountDAO(store)
	accounts := d.All(context.Background())
	require.Len(t, accounts, 1)
	assert.Equal(t, "ok", accounts[0].Username)
}

func TestAccountDAO_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d := NewAccountDAO(store)
	require.NoError(t, d.Insert(ctx, Account{
		Username: "bob_brown", Email: "bob@example.com", PasswordHash: "h",
	}))
	require.NoError(t, d.Delete(ctx, "bob_brown"))

	_, err := d.FindByIdentity(ctx, "bob_brown")
	assert.ErrorIs(t, err, ErrNotFound)
}
