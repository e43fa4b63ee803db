// Package dao implements the persistent collection pattern shared by every
// entity store: a named slot holds one JSON-serialized array, loaded once
// into memory with structural validation, and written back wholesale on
// every mutation. Stored field names match the application's historical
// persisted layout and must not change.
package dao

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/eventdesk/eventdesk/internal/storage"
)

// Slot names for each persisted collection.
const (
	slotEvents   = "events"
	slotUsers    = "users"
	slotTickets  = "tickets"
	slotRosters  = "eventUserLists"
	slotAccounts = "authUsers"
	slotSession  = "currentUser"
)

// ErrNotFound is returned when an update or delete matches no record.
var ErrNotFound = errors.New("record not found")

// collection caches one slot's records in memory. decode validates a single
// stored element and returns its record form; elements failing validation
// are dropped on load.
type collection[T any] struct {
	store  *storage.Store
	slot   string
	decode func(json.RawMessage) (T, error)

	mu    sync.Mutex
	items []T
}

func newCollection[T any](store *storage.Store, slot string, decode func(json.RawMessage) (T, error)) *collection[T] {
	c := &collection[T]{store: store, slot: slot, decode: decode}
	c.load()
	return c
}

// load replaces the cached list with the slot contents. Read failures and
// malformed slot payloads degrade to an empty collection; individually
// invalid elements are dropped and counted.
func (c *collection[T]) load() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil

	raw, err := c.store.Get(c.slot)
	if err != nil {
		zap.L().Error("failed to read slot", zap.String("slot", c.slot), zap.Error(err))
		return
	}
	if len(raw) == 0 {
		return
	}

	var elems []json.RawMessage
	if err = json.Unmarshal(raw, &elems); err != nil {
		zap.L().Error("malformed slot contents", zap.String("slot", c.slot), zap.Error(err))
		return
	}

	items := make([]T, 0, len(elems))
	dropped := 0
	for _, e := range elems {
		item, err := c.decode(e)
		if err != nil {
			dropped++
			continue
		}
		items = append(items, item)
	}
	if dropped > 0 {
		zap.L().Warn("dropped invalid records on load",
			zap.String("slot", c.slot),
			zap.Int("dropped", dropped),
			zap.Int("kept", len(items)))
	}
	c.items = items
}

// save serializes the full cached list back into the slot. The caller holds
// the lock.
func (c *collection[T]) save() error {
	items := c.items
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		zap.L().Error("failed to serialize slot", zap.String("slot", c.slot), zap.Error(err))
		return err
	}
	if err = c.store.Put(c.slot, data); err != nil {
		zap.L().Error("failed to write slot", zap.String("slot", c.slot), zap.Error(err))
		return err
	}
	return nil
}

func (c *collection[T]) add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, item)
	return c.save()
}

// update replaces the first record matched by match. Returns ErrNotFound
// when no record matches.
func (c *collection[T]) update(match func(T) bool, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			c.items[i] = item
			return c.save()
		}
	}
	return ErrNotFound
}

// remove filters out every record matched by match. Returns ErrNotFound
// when nothing was removed.
func (c *collection[T]) remove(match func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if match(item) {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == len(c.items) {
		return ErrNotFound
	}
	c.items = kept
	return c.save()
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// all returns a defensive copy of the cached list so callers cannot mutate
// store state without going through save.
func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}
