package storage

import (
	"sync"

	"github.com/vovakirdan/flappy-coins/internal/games/flappy"
)

// Memory is a process-local store. It is used when persistence is disabled
// and shared by all sessions of one server.
type Memory struct {
	mu   sync.Mutex
	best map[string]int
	runs []flappy.Run
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{best: make(map[string]int)}
}

// BestScore implements flappy.ScoreStore.
func (m *Memory) BestScore(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.best[key]
	return v, ok, nil
}

// SetBestScore implements flappy.ScoreStore. Lower scores are ignored.
func (m *Memory) SetBestScore(key string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.best[key]; !ok || score > cur {
		m.best[key] = score
	}
	return nil
}

// RecordRun implements flappy.RunRecorder.
func (m *Memory) RecordRun(run flappy.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

var (
	_ flappy.ScoreStore  = (*Memory)(nil)
	_ flappy.RunRecorder = (*Memory)(nil)
)
