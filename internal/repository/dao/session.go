package dao

import (
	"context"

	"github.com/eventdesk/eventdesk/internal/storage"
)

// SessionDAO manages the scalar slot recording which username, if any, is
// currently signed in. Unlike the collections it holds no cache; the slot
// is read on demand.
type SessionDAO struct {
	store *storage.Store
}

func NewSessionDAO(store *storage.Store) *SessionDAO {
	return &SessionDAO{store: store}
}

// Current returns the signed-in username, or ok=false when no session is
// recorded.
func (d *SessionDAO) Current(ctx context.Context) (string, bool, error) {
	raw, err := d.store.Get(slotSession)
	if err != nil {
		return "", false, err
	}
	if len(raw) == 0 {
		return "", false, nil
	}
	return string(raw), true, nil
}

// Set records the signed-in username.
func (d *SessionDAO) Set(ctx context.Context, username string) error {
	return d.store.Put(slotSession, []byte(username))
}

// Clear removes the session record. Clearing an absent session is a no-op.
func (d *SessionDAO) Clear(ctx context.Context) error {
	return d.store.Delete(slotSession)
}
