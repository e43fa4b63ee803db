// Package storage provides the embedded key-value store backing every
// collection. Each collection serializes into a single named slot; numeric
// identifiers are handed out by per-name monotonic sequences so that a
// deleted record's ID is never reissued.
package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var (
	slotsBucket     = []byte("slots")
	sequencesBucket = []byte("sequences")
)

// Store wraps a bbolt database holding one bucket of slots and one bucket
// of sequence counters.
type Store struct {
	db *bbolt.DB
}

// Open creates or opens the store file, creating parent directories and the
// required buckets as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create store dir -> %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open store -> %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(slotsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(sequencesBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create buckets -> %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw contents of a slot, or nil when the slot is absent.
func (s *Store) Get(slot string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(slotsBucket).Get([]byte(slot))
		if v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q -> %w", slot, err)
	}
	return out, nil
}

// Put replaces the contents of a slot.
func (s *Store) Put(slot string, data []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(slotsBucket).Put([]byte(slot), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write slot %q -> %w", slot, err)
	}
	return nil
}

// Delete removes a slot. Deleting an absent slot is a no-op.
func (s *Store) Delete(slot string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(slotsBucket).Delete([]byte(slot))
	})
	if err != nil {
		return fmt.Errorf("failed to delete slot %q -> %w", slot, err)
	}
	return nil
}

// NextSequence increments and returns the named counter. Counters only move
// forward, so identifiers assigned from them survive deletions without
// collisions.
func (s *Store) NextSequence(name string) (uint64, error) {
	var next uint64
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sequencesBucket)
		next = readSeq(b.Get([]byte(name))) + 1
		return b.Put([]byte(name), writeSeq(next))
	})
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence %q -> %w", name, err)
	}
	return next, nil
}

// Bump raises the named counter to at least floor. Used when a collection
// seeds records with fixed identifiers.
func (s *Store) Bump(name string, floor uint64) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(sequencesBucket)
		if readSeq(b.Get([]byte(name))) >= floor {
			return nil
		}
		return b.Put([]byte(name), writeSeq(floor))
	})
	if err != nil {
		return fmt.Errorf("failed to bump sequence %q -> %w", name, err)
	}
	return nil
}

func readSeq(v []byte) uint64 {
	if len(v) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

func writeSeq(n uint64) []byte {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, n)
	return v
}
