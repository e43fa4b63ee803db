package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "test.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestGet_AbsentSlotReturnsNil(t *testing.T) {
	store := openTestStore(t)

	data, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestPutGet_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("events", []byte(`[{"ID":1}]`)))

	data, err := store.Get("events")
	require.NoError(t, err)
	assert.Equal(t, `[{"ID":1}]`, string(data))
}

func TestDelete_RemovesSlot(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("events", []byte("[]")))
	require.NoError(t, store.Delete("events"))

	data, err := store.Get("events")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDelete_AbsentSlotIsNoop(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Delete("missing"))
}

func TestNextSequence_Monotonic(t *testing.T) {
	store := openTestStore(t)

	for want := uint64(1); want <= 5; want++ {
		got, err := store.NextSequence("events")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNextSequence_IndependentPerName(t *testing.T) {
	store := openTestStore(t)

	_, err := store.NextSequence("events")
	require.NoError(t, err)
	_, err = store.NextSequence("events")
	require.NoError(t, err)

	got, err := store.NextSequence("tickets")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestBump_RaisesFloor(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Bump("events", 10))

	got, err := store.NextSequence("events")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), got)
}

func TestBump_NeverLowers(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Bump("events", 10))
	require.NoError(t, store.Bump("events", 3))

	got, err := store.NextSequence("events")
	require.NoError(t, err)
	assert.Equal(t, uint64(11), got)
}

func TestSequences_SurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.NextSequence("events")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.NextSequence("events")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)
}
