// Package ephemeral tracks decrypted preview files with a bounded lifetime.
//
// Entries live in a process-local registry keyed by a random identifier and
// are removed when taken, or swept together with their files once their TTL
// expires. Sweeping runs on its own schedule so orphaned entries cannot
// accumulate behind idle callers.
package ephemeral

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"
)

type entry struct {
	path   string
	expiry time.Time
}

// Store is a bounded registry of temporary plaintext files.
// All methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry

	ttl time.Duration
	now func() time.Time
}

// New creates a store whose entries expire ttl after registration.
func New(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Put registers path and returns its identifier.
func (s *Store) Put(path string) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = entry{path: path, expiry: s.now().Add(s.ttl)}

	return id, nil
}

// Take returns the path for id and removes the entry, transferring file
// ownership to the caller. An expired entry is treated as absent and its file
// is deleted.
func (s *Store) Take(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return "", false
	}

	delete(s.entries, id)

	if s.now().After(e.expiry) {
		os.Remove(e.path) //nolint:errcheck // best-effort cleanup

		return "", false
	}

	return e.path, true
}

// Len reports the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Sweep removes expired entries and deletes their files, returning the number
// of entries evicted.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0

	for id, e := range s.entries {
		if now.After(e.expiry) {
			os.Remove(e.path) //nolint:errcheck // best-effort cleanup
			delete(s.entries, id)

			evicted++
		}
	}

	return evicted
}

// Run sweeps on a fixed interval until ctx is cancelled, then performs a
// final sweep of anything already expired.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Sweep()

			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// newID generates a random 32-character hex identifier.
func newID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating identifier: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
