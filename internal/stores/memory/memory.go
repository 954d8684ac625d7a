// Package memory provides an in-memory runner type store. It backs local
// development and tests, and is the default store when no database is
// configured.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/runnerdeck/runnerdeck/pkg/errors"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Compile-time interface check to ensure proper implementation.
var _ runnertypes.Store = (*Store)(nil)

// Store holds runner type records in memory, keyed by name. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]*runnertypes.Record
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]*runnertypes.Record),
	}
}

// FindByName returns a copy of the record with the given name, or a
// NotFoundError when no record matches.
func (s *Store) FindByName(_ context.Context, name string) (*runnertypes.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[name]
	if !ok {
		return nil, errors.NewNotFoundError("runner type", name)
	}
	return record.Copy(), nil
}

// Upsert stores the record, assigning a fresh identity when the record
// carries none. The store keeps exactly one record per name.
func (s *Store) Upsert(_ context.Context, record *runnertypes.Record) (*runnertypes.Record, error) {
	if record == nil {
		return nil, errors.NewStoreError("upsert", "runner type", "", errors.New("record cannot be nil"))
	}
	if record.Name == "" {
		return nil, errors.NewStoreError("upsert", "runner type", "", errors.New("record name cannot be empty"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := record.Copy()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	s.records[stored.Name] = stored

	return stored.Copy(), nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
