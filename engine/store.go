package engine

import "sync"

// ScoreStore reads and persists the single best-score value
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// MemoryStore keeps the best score in process memory
// Used by tests and as the fallback when the file store is unavailable
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore creates a store preloaded with score
func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
