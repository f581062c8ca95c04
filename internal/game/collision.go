package game

import "github.com/vovakirdan/blockflap/internal/core"

// CollisionReport describes what the collision pass found in one frame.
type CollisionReport struct {
	HitObstacle bool // Player overlapped a pipe outside its gap
	OutOfBounds bool // Player left the screen vertically
	Scored      int  // Points gained this frame
}

// Hit reports whether anything ended the game this frame.
func (r CollisionReport) Hit() bool {
	return r.HitObstacle || r.OutOfBounds
}

// checkCollisions runs collision, boundary and scoring checks for the
// current frame and applies them to the session. Every obstacle is checked
// even if an earlier one already ended the game; the hit sound fires once
// per detected hit.
func (l *Loop) checkCollisions(s *Session) CollisionReport {
	var report CollisionReport

	p := s.Player
	playerV := core.NewSpan(p.Y, p.Size)
	playerH := core.Span{Min: p.X, Max: l.cfg.HitboxRight()}

	s.Obstacles.Each(func(o *Obstacle) {
		outsideGap := !l.obstacles.GapSpan(*o).Contains(playerV)
		if outsideGap && l.obstacles.HSpan(*o).Overlaps(playerH) {
			report.HitObstacle = true
			s.GameOver = true
			l.sound.Trigger(core.SoundHit)
		}

		// Exact equality: a pipe that steps over player.x never scores.
		if o.X == p.X {
			s.Score++
			report.Scored++
		}
	})

	if p.Y > float64(l.cfg.Screen.Height) || p.Y < 0 {
		report.OutOfBounds = true
		s.GameOver = true
		l.sound.Trigger(core.SoundHit)
	}

	return report
}
