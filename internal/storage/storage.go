// Package storage is the persistence boundary for the application's
// collections. Collections are read and written as whole JSON snapshots
// under string keys: a missing or corrupt value never fails a read, it
// yields the caller's fallback instead.
package storage

import "encoding/json"

// Store persists raw collection snapshots. Load returns a nil slice with
// no error when the key has never been written.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// Get decodes the collection stored under key, returning fallback when
// the key is absent, unreadable, or holds a value that does not decode.
func Get[T any](s Store, key string, fallback T) T {
	raw, err := s.Load(key)
	if err != nil || raw == nil {
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// Set encodes value and persists it as the full replacement for key.
func Set[T any](s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Save(key, raw)
}
