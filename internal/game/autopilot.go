package game

import "github.com/vovakirdan/blockflap/internal/config"

// Autopilot flies the block for demos and headless runs. It aims the block's
// center at the front gap, and once that obstacle is behind the player it
// holds the middle of the spawn range until the next gap appears.
type Autopilot struct {
	holdY     float64
	pipeWidth float64
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.Config) *Autopilot {
	return &Autopilot{
		holdY:     cfg.Player.X + cfg.Obstacles.InitGapY/2,
		pipeWidth: cfg.Obstacles.PipeWidth,
	}
}

// Flap reports whether to flap this frame. Always false after game over, so
// the autopilot never restarts a session by itself.
func (a *Autopilot) Flap(s Snapshot) bool {
	if s.State != StateRunning || len(s.Obstacles) == 0 {
		return false
	}

	front := s.Obstacles[0]
	aim := front.GapY
	if front.X+a.pipeWidth <= s.Player.X {
		aim = a.holdY
	}
	return s.Player.Y > aim-s.Player.Size/2
}
