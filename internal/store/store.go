// Package store implements the thread-safe in-memory repository the API
// serves from. Every read hands out deep copies, so callers can never
// mutate shared state, and every write goes through the store's single
// lock.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/teamflow/pms/internal/seed"
)

// ErrNotFound is returned when a record or keyed mapping entry does not
// exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// Store owns all collections. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	data   seed.Snapshot
	loader seed.Loader

	// Dedicated counters for the human-readable sequences. Derived
	// from collection length they would repeat after a delete, so
	// they only ever move forward.
	reqSeq     int
	backlogSeq int

	now func() time.Time
}

// New builds a store populated by the loader. The same loader is reused
// on Reset.
func New(loader seed.Loader) (*Store, error) {
	s := &Store{
		loader: loader,
		now:    time.Now,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards all state and reloads the loader's snapshot. The
// sequence counters are re-primed from the fresh collection sizes.
func (s *Store) Reset() error {
	snap, err := s.loader()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = snap
	s.reqSeq = len(snap.Requirements)
	s.backlogSeq = len(snap.BacklogItems)
	return nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}
