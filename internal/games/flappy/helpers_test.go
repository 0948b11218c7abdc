package flappy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-coins/internal/config"
)

// fixedRand always returns the same value.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// testField is the 800x600 field the reference scenarios use.
var testField = Field{W: 800, H: 600}

func newTestSession() *Session {
	return NewSession(config.DefaultFlappyConfig(), testField, fixedRand(0.5))
}

func newRunningSession() *Session {
	s := newTestSession()
	s.Begin()
	return s
}

// memStore is an in-memory ScoreStore and RunRecorder.
type memStore struct {
	best map[string]int
	runs []Run
	sets int
}

func newMemStore() *memStore {
	return &memStore{best: make(map[string]int)}
}

func (m *memStore) BestScore(key string) (int, bool, error) {
	v, ok := m.best[key]
	return v, ok, nil
}

func (m *memStore) SetBestScore(key string, score int) error {
	m.sets++
	if score > m.best[key] {
		m.best[key] = score
	}
	return nil
}

func (m *memStore) RecordRun(run Run) error {
	m.runs = append(m.runs, run)
	return nil
}

// brokenStore fails every call.
type brokenStore struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore) BestScore(string) (int, bool, error) { return 0, false, errBroken }
func (brokenStore) SetBestScore(string, int) error       { return errBroken }

// recordingSurface logs every draw call.
type recordingSurface struct {
	calls []string
	texts []string
}

func (r *recordingSurface) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recordingSurface) DrawImage(sprite Sprite, x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("%s %.0f,%.0f %.0fx%.0f", sprite, x, y, w, h))
}

func (r *recordingSurface) DrawText(text string, x, y float64, style TextStyle) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, text)
}

// recordingPresenter logs panel changes.
type recordingPresenter struct {
	events []string
}

func (p *recordingPresenter) ShowStart()    { p.events = append(p.events, "show-start") }
func (p *recordingPresenter) HideStart()    { p.events = append(p.events, "hide-start") }
func (p *recordingPresenter) HideGameOver() { p.events = append(p.events, "hide-over") }
func (p *recordingPresenter) ShowGameOver(score, best int) {
	p.events = append(p.events, fmt.Sprintf("show-over %d/%d", score, best))
}
