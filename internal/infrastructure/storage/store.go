// Package storage persists the high score and player settings between runs
package storage

import (
	"sync"

	"github.com/younwookim/neondodge/internal/domain/entity"
)

// Store supplies persisted values at match start and receives new records.
// Load methods never fail: unreadable data yields the defaults.
type Store interface {
	LoadHighScore() int
	SaveHighScore(score int) error
	LoadSettings() entity.Settings
	SaveSettings(settings entity.Settings) error
}

// MemoryStore keeps values in memory only
type MemoryStore struct {
	mu        sync.Mutex
	highScore int
	settings  entity.Settings
}

// NewMemoryStore creates a store holding the defaults
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: entity.DefaultSettings()}
}

func (s *MemoryStore) LoadHighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

func (s *MemoryStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highScore = score
	return nil
}

func (s *MemoryStore) LoadSettings() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *MemoryStore) SaveSettings(settings entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}
