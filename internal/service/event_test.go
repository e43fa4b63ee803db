package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk/internal/domain"
)

func TestEventService_CreateAssignsSequentialIDs(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	svc := NewEventService(newTestEventRepo(t, store))

	first, err := svc.Create(ctx, domain.Event{Name: "First", Owner: domain.User{Name: "bob_brown"}})
	require.NoError(t, err)
	second, err := svc.Create(ctx, domain.Event{Name: "Second", Owner: domain.User{Name: "bob_brown"}})
	require.NoError(t, err)

	assert.Equal(t, 2, first.ID) // seed holds ID 1
	assert.Equal(t, 3, second.ID)
}

func TestEventService_CreateIgnoresIncomingID(t *testing.T) {
	store := openTestStore(t)

	svc := NewEventService(newTestEventRepo(t, store))

	created, err := svc.Create(context.Background(), domain.Event{ID: 42, Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
}

func TestEventService_CreateDefaultsNilLists(t *testing.T) {
	store := openTestStore(t)

	svc := NewEventService(newTestEventRepo(t, store))

	created, err := svc.Create(context.Background(), domain.Event{Name: "X"})
	require.NoError(t, err)
	assert.NotNil(t, created.Organizers)
	assert.NotNil(t, created.Participants)
	assert.Empty(t, created.Organizers)
	assert.Empty(t, created.Participants)
}

func TestEventService_IDNotReusedAfterDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	svc := NewEventService(newTestEventRepo(t, store))

	created, err := svc.Create(ctx, domain.Event{Name: "Doomed"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	next, err := svc.Create(ctx, domain.Event{Name: "Next"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, created.ID)
}

func TestEventService_GetMissingReturnsErrEventNotFound(t *testing.T) {
	store := openTestStore(t)

	svc := NewEventService(newTestEventRepo(t, store))

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_UpdateReplacesWholeRecord(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	svc := NewEventService(newTestEventRepo(t, store))

	event, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	event.City = "Munich"

	updated, err := svc.Update(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, "Munich", updated.City)

	found, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Munich", found.City)
}

func TestEventService_UpdateMissingReturnsErrEventNotFound(t *testing.T) {
	store := openTestStore(t)

	svc := NewEventService(newTestEventRepo(t, store))

	_, err := svc.Update(context.Background(), domain.Event{ID: 99, Name: "X"})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventService_DeleteMissingReturnsErrEventNotFound(t *testing.T) {
	store := openTestStore(t)

	svc := NewEventService(newTestEventRepo(t, store))

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrEventNotFound)
}

func TestEventService_ListIncludesSeed(t *testing.T) {
	store := openTestStore(t)

	svc := NewEventService(newTestEventRepo(t, store))

	events := svc.List(context.Background())
	require.Len(t, events, 1)
	assert.Equal(t, "Tech Conference 2025", events[0].Name)
	assert.Equal(t, []domain.User{{Name: "alice_johnson"}}, events[0].Participants)
}
