package contacts

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and local runs.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]string
	lookupErr  error
	recordErr  error
	recordCalls int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// FailLookupWith makes every subsequent Lookup return err.
func (s *MemoryStore) FailLookupWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookupErr = err
}

// FailRecordWith makes every subsequent Record return err.
func (s *MemoryStore) FailRecordWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordErr = err
}

// RecordCalls returns how many times Record was invoked, including
// failed attempts.
func (s *MemoryStore) RecordCalls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordCalls
}

// Lookup reports whether the email was recorded before.
func (s *MemoryStore) Lookup(ctx context.Context, email string) (LookupResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lookupErr != nil {
		return LookupResult{}, s.lookupErr
	}
	ts, ok := s.entries[email]
	if !ok {
		return LookupResult{}, nil
	}
	return LookupResult{Found: true, FirstSeen: ts}, nil
}

// Record stores email → timestamp.
func (s *MemoryStore) Record(ctx context.Context, email, timestamp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordCalls++
	if s.recordErr != nil {
		return s.recordErr
	}
	s.entries[email] = timestamp
	return nil
}
