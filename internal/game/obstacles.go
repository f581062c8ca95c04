package game

import (
	"math/rand"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
)

// ObstacleManager handles scrolling, retiring and spawning of obstacles.
type ObstacleManager struct {
	rng *rand.Rand
	cfg config.Config
}

// NewObstacleManager creates an obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, cfg config.Config) *ObstacleManager {
	return &ObstacleManager{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Initial returns the first obstacle of a session: at the right edge with the
// gap centered on the player's start height.
func (om *ObstacleManager) Initial() Obstacle {
	return Obstacle{X: om.cfg.SpawnX(), GapY: om.cfg.Obstacles.InitGapY}
}

// Reset clears the queue and places the initial obstacle.
func (om *ObstacleManager) Reset(q *ObstacleQueue) {
	q.Reset()
	q.PushBack(om.Initial())
}

// Advance moves every obstacle left by the flight speed, then replaces the
// front obstacle with a fresh one once it has fully left the screen.
// Returns true when an obstacle was recycled this frame.
func (om *ObstacleManager) Advance(q *ObstacleQueue) bool {
	speed := om.cfg.Obstacles.FlightSpeed
	q.Each(func(o *Obstacle) {
		o.X -= speed
	})

	if q.Front().X >= -om.cfg.Obstacles.PipeWidth {
		return false
	}

	q.PopFront()
	q.PushBack(om.spawn())
	return true
}

// spawn creates an obstacle at the right edge with a gap center drawn
// uniformly from [player.x, player.x + init_gap_y).
func (om *ObstacleManager) spawn() Obstacle {
	gapY := om.cfg.Player.X + om.rng.Float64()*om.cfg.Obstacles.InitGapY
	return Obstacle{X: om.cfg.SpawnX(), GapY: gapY}
}

// TopRect returns the upper pipe: from the top of the screen down to the gap.
func (om *ObstacleManager) TopRect(o Obstacle) core.Rect {
	return core.NewRect(o.X, 0, om.cfg.Obstacles.PipeWidth, o.GapY-om.cfg.Obstacles.GapHalf)
}

// BottomRect returns the lower pipe: from below the gap to the bottom edge.
func (om *ObstacleManager) BottomRect(o Obstacle) core.Rect {
	top := o.GapY + om.cfg.Obstacles.GapHalf
	return core.NewRect(o.X, top, om.cfg.Obstacles.PipeWidth, float64(om.cfg.Screen.Height)-top)
}

// GapSpan returns the passable vertical opening.
func (om *ObstacleManager) GapSpan(o Obstacle) core.Span {
	half := om.cfg.Obstacles.GapHalf
	return core.Span{Min: o.GapY - half, Max: o.GapY + half}
}

// HSpan returns the horizontal extent of the obstacle.
func (om *ObstacleManager) HSpan(o Obstacle) core.Span {
	return core.NewSpan(o.X, om.cfg.Obstacles.PipeWidth)
}
