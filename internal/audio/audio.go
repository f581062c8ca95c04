// Package audio provides fire-and-forget sound triggers. A trigger never
// blocks, never queues and never reports failure; overlapping triggers of the
// same sound simply overlap.
package audio

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
)

// bel is the terminal bell control character.
const bel = "\a"

// Bell rings the terminal bell for enabled sounds by writing BEL to w.
type Bell struct {
	w       io.Writer
	enabled [2]bool // indexed by core.SoundID
}

// NewBell creates a bell sounder honoring the audio config.
func NewBell(w io.Writer, cfg config.Audio) *Bell {
	b := &Bell{w: w}
	if cfg.Enabled {
		b.enabled[core.SoundFlap] = cfg.Flap
		b.enabled[core.SoundHit] = cfg.Hit
	}
	return b
}

// Trigger rings the bell if the sound is enabled.
func (b *Bell) Trigger(id core.SoundID) {
	if int(id) < 0 || int(id) >= len(b.enabled) || !b.enabled[id] {
		return
	}
	//nolint:errcheck // Fire-and-forget
	io.WriteString(b.w, bel)
}

// Nop discards every trigger.
type Nop struct{}

// Trigger does nothing.
func (Nop) Trigger(core.SoundID) {}

// Sounder is anything that accepts sound triggers.
type Sounder interface {
	Trigger(id core.SoundID)
}

// Logged forwards triggers to another sounder and records them at debug level.
type Logged struct {
	next   Sounder
	logger *log.Logger
}

// WithLogging wraps next so every trigger is logged.
func WithLogging(next Sounder, logger *log.Logger) *Logged {
	return &Logged{next: next, logger: logger}
}

// Trigger logs and forwards the trigger.
func (l *Logged) Trigger(id core.SoundID) {
	l.logger.Debug("sound", "id", id)
	l.next.Trigger(id)
}
