package persistence

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/snake-arcade/constants"
)

// HighScoreStore persists the single best score as one named record
// Satisfies engine.ScoreStore
type HighScoreStore struct {
	mgr *Manager
	key string

	mu    sync.Mutex
	runID func() string
	now   func() time.Time
}

// NewHighScoreStore creates a store for the default record key
func NewHighScoreStore(mgr *Manager) *HighScoreStore {
	return &HighScoreStore{
		mgr: mgr,
		key: constants.HighScoreKey,
		now: time.Now,
	}
}

// SetRunSource sets where Save reads the current run id from
func (s *HighScoreStore) SetRunSource(fn func() string) {
	s.mu.Lock()
	s.runID = fn
	s.mu.Unlock()
}

// Load returns the stored best score; a missing record is 0 without error
func (s *HighScoreStore) Load() (int, error) {
	var dto HighScoreDTO
	if err := s.mgr.Load(s.key, &dto); err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if dto.Score < 0 {
		return 0, fmt.Errorf("high score: negative value %d", dto.Score)
	}
	return dto.Score, nil
}

// Record returns the full stored record
func (s *HighScoreStore) Record() (HighScoreDTO, error) {
	var dto HighScoreDTO
	err := s.mgr.Load(s.key, &dto)
	return dto, err
}

// Save writes score with the current run id and timestamp
func (s *HighScoreStore) Save(score int) error {
	s.mu.Lock()
	runID := ""
	if s.runID != nil {
		runID = s.runID()
	}
	dto := HighScoreDTO{Score: score, RunID: runID, UpdatedAt: s.now().UTC().Truncate(time.Second)}
	s.mu.Unlock()

	return s.mgr.Save(s.key, dto)
}
