package cache

import (
	"sync"
	"time"

	"jeopardy-server/internal/model"
)

// GameStore keeps the single authoritative in-memory game per session key.
// Entries carry a sliding expiration: any access refreshes the window. Lock
// serializes all state-machine transitions for one key without blocking
// other keys.
type GameStore interface {
	Get(key string) (*model.Game, bool)
	Put(key string, game *model.Game)
	Delete(key string)
	Lock(key string) (unlock func())
	Close()
}

type gameEntry struct {
	game      *model.Game
	expiresAt time.Time
}

type gameStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*gameEntry
	locks   map[string]*sync.Mutex
	stop    chan struct{}
	once    sync.Once
}

// NewGameStore creates a store with the given sliding TTL and starts a
// janitor sweeping expired entries at the given interval.
func NewGameStore(ttl, sweepInterval time.Duration) GameStore {
	s := &gameStore{
		ttl:     ttl,
		entries: make(map[string]*gameEntry),
		locks:   make(map[string]*sync.Mutex),
		stop:    make(chan struct{}),
	}
	go s.janitor(sweepInterval)
	return s
}

// Get returns the game for a key and refreshes its expiration. An expired
// entry is treated as absent so the caller sees a clean miss.
func (s *gameStore) Get(key string) (*model.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	return e.game, true
}

func (s *gameStore) Put(key string, game *model.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &gameEntry{game: game, expiresAt: time.Now().Add(s.ttl)}
}

func (s *gameStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Lock acquires the per-key mutex and returns its unlock func. The mutex
// exists independently of the entry so duplicate requests for a not-yet
// created session still serialize.
func (s *gameStore) Lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *gameStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *gameStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
	// Drop lock objects for keys without a live entry, but only when
	// uncontended. A held mutex must never be replaced by a fresh one.
	for key, l := range s.locks {
		if _, ok := s.entries[key]; ok {
			continue
		}
		if l.TryLock() {
			l.Unlock()
			delete(s.locks, key)
		}
	}
}

func (s *gameStore) Close() {
	s.once.Do(func() { close(s.stop) })
}
