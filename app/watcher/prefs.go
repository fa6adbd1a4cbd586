package watcher

import (
	"fmt"
	"sync"

	"github.com/quitute/quitute/pkg/cache"
)

// RedisPrefStore persists the sound preference in Redis so it survives
// reloads, unlike the rest of the watcher state. Sound defaults to on.
type RedisPrefStore struct{}

func prefKey(supplierID uint) string {
	return fmt.Sprintf("quitute:watcher:sound:%d", supplierID)
}

func (RedisPrefStore) SoundEnabled(supplierID uint) bool {
	var enabled bool
	if cache.Get(prefKey(supplierID), &enabled) {
		return enabled
	}
	return true
}

func (RedisPrefStore) SetSoundEnabled(supplierID uint, enabled bool) error {
	return cache.Set(prefKey(supplierID), enabled, 0)
}

// MemoryPrefStore is an in-process PrefStore for tests and the watch CLI
// when Redis is unavailable.
type MemoryPrefStore struct {
	mu    sync.Mutex
	prefs map[uint]bool
}

func NewMemoryPrefStore() *MemoryPrefStore {
	return &MemoryPrefStore{prefs: make(map[uint]bool)}
}

func (s *MemoryPrefStore) SoundEnabled(supplierID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	enabled, ok := s.prefs[supplierID]
	if !ok {
		return true
	}
	return enabled
}

func (s *MemoryPrefStore) SetSoundEnabled(supplierID uint, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[supplierID] = enabled
	return nil
}
