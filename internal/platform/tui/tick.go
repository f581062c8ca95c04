// Package tui provides the Bubble Tea integration for blockflap.
// It handles the terminal UI loop, input mapping and projection of the game
// surface onto terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after a frame interval.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameScheduler adapts game.Scheduler to Bubble Tea. RequestFrame only
// marks a frame as pending; the model turns that mark into a single tick
// command after each message, so at most one tick is ever in flight.
type frameScheduler struct {
	pending bool
	rate    int
}

func newFrameScheduler(rate int) *frameScheduler {
	return &frameScheduler{rate: rate}
}

// RequestFrame implements game.Scheduler.
func (s *frameScheduler) RequestFrame() {
	s.pending = true
}

// next returns the tick command for a pending frame, or nil.
func (s *frameScheduler) next() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return tickCmd(s.rate)
}
