package session

import (
	"context"
	"sync"
	"time"
)

// sweepInterval bounds how often Save scans for expired sessions.
const sweepInterval = time.Minute

type entry struct {
	data      Data
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

type MemoryStore struct {
	mu        sync.RWMutex
	data      map[string]entry
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (Data, error) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return Data{}, ErrNotFound
	}
	if now := s.now(); e.expired(now) {
		s.mu.Lock()
		// a concurrent Save may have refreshed the id since the read
		if cur, ok := s.data[id]; ok && cur.expired(now) {
			delete(s.data, id)
		}
		s.mu.Unlock()
		return Data{}, ErrNotFound
	}
	return e.data, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweepLocked(now)
	}

	s.data[id] = entry{
		data:      data,
		expiresAt: now.Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// Len counts stored entries, expired ones included until they are swept.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for id, e := range s.data {
		if e.expired(now) {
			delete(s.data, id)
		}
	}
	s.lastSweep = now
}
