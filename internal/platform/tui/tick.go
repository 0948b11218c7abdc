// Package tui runs games in the terminal with Bubble Tea, locally or over
// SSH with Wish. The frame loop is driven by tick messages that the model
// reschedules only while the game is in play.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame. Loop identifies the model that
// scheduled it, so a tick left over from a closed game is dropped.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

// loopIDs hands out model loop identifiers.
var loopIDs atomic.Uint64

// tickCmd returns a Bubble Tea command that sends one tick after a frame interval.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
