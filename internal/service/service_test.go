package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk/internal/repository"
	"github.com/eventdesk/eventdesk/internal/repository/dao"
	"github.com/eventdesk/eventdesk/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func newTestEventRepo(t *testing.T, store *storage.Store) *repository.EventRepository {
	t.Helper()

	eventDAO, err := dao.NewEventDAO(store)
	require.NoError(t, err)
	return repository.NewEventRepository(eventDAO)
}

func newTestTicketRepo(t *testing.T, store *storage.Store, now func() time.Time) *repository.TicketRepository {
	t.Helper()

	ticketDAO, err := dao.NewTicketDAO(store, now)
	require.NoError(t, err)
	return repository.NewTicketRepository(ticketDAO)
}

func newTestRosterRepo(t *testing.T, store *storage.Store) *repository.RosterRepository {
	t.Helper()

	rosterDAO, err := dao.NewRosterDAO(store)
	require.NoError(t, err)
	return repository.NewRosterRepository(rosterDAO)
}

func newTestUserRepo(t *testing.T, store *storage.Store) *repository.UserRepository {
	t.Helper()

	userDAO, err := dao.NewUserDAO(store)
	require.NoError(t, err)
	return repository.NewUserRepository(userDAO)
}

func newTestAuthRepo(t *testing.T, store *storage.Store) *repository.AuthRepository {
	t.Helper()

	return repository.NewAuthRepository(dao.NewAccountDAO(store), dao.NewSessionDAO(store))
}
