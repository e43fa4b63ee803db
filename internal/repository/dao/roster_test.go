package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRosterDAO_SeedsEventOneRoster(t *testing.T) {
	store := openTestStore(t)

	d, err := NewRosterDAO(store)
	require.NoError(t, err)

	roster, err := d.FindByEventID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, roster.Participants, 1)
	assert.Equal(t, "Alice", roster.Participants[0].FirstName)
	assert.Equal(t, "Johnson", roster.Participants[0].LastName)
	assert.Equal(t, "confirmed", roster.Participants[0].Status)
	require.Len(t, roster.Organizers, 1)
	assert.Equal(t, "jane_smith", roster.Organizers[0].User)
	assert.Equal(t, []string{"manage_event", "invite_users"}, roster.Organizers[0].Permissions)
}

func TestRosterDAO_DefaultsOptionalFieldsOnLoad(t *testing.T) {
	store := openTestStore(t)

	raw := `[{
		"eventId": 3,
		"participants": [{"FirstName":"Bob","LastName":"Brown"}],
		"organizers": [{"User":"jane_smith"}]
	}]`
	require.NoError(t, store.Put("eventUserLists", []byte(raw)))

	d, err := NewRosterDAO(store)
	require.NoError(t, err)

	roster, err := d.FindByEventID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, roster.Participants, 1)
	assert.Equal(t, "attendee", roster.Participants[0].Role)
	assert.Equal(t, "pending", roster.Participants[0].Status)
	assert.Empty(t, roster.Participants[0].Email)
	require.Len(t, roster.Organizers, 1)
	assert.Equal(t, []string{"manage_event"}, roster.Organizers[0].Permissions)
}

func TestRosterDAO_DropsRecordsMissingEventID(t *testing.T) {
	store := openTestStore(t)

	raw := `[
		{"participants": [], "organizers": []},
		{"eventId": 2, "participants": [], "organizers": []}
	]`
	require.NoError(t, store.Put("eventUserLists", []byte(raw)))

	d, err := NewRosterDAO(store)
	require.NoError(t, err)

	rosters := d.All(context.Background())
	require.Len(t, rosters, 1)
	assert.Equal(t, 2, rosters[0].EventID)
}

func TestRosterDAO_UpsertInsertsThenUpdates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d, err := NewRosterDAO(store)
	require.NoError(t, err)

	roster := Roster{
		EventID:      2,
		Participants: []RosterParticipant{{FirstName: "Bob", LastName: "Brown", Role: "speaker", Status: "confirmed"}},
		Organizers:   []RosterOrganizer{},
	}
	require.NoError(t, d.Upsert(ctx, roster))

	found, err := d.FindByEventID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, found.Participants, 1)

	roster.Participants = append(roster.Participants, RosterParticipant{
		FirstName: "Carol", LastName: "White", Role: "attendee", Status: "pending",
	})
	require.NoError(t, d.Upsert(ctx, roster))

	found, err = d.FindByEventID(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, found.Participants, 2)

	rosters := d.All(ctx)
	assert.Len(t, rosters, 2) // seed plus event 2
}

func TestRosterDAO_Delete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	d, err := NewRosterDAO(store)
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, 1))
	_, err = d.FindByEventID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, d.Delete(ctx, 1), ErrNotFound)
}
