package game

import (
	"testing"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
)

// countingScheduler records frame requests.
type countingScheduler struct {
	requests int
}

func (s *countingScheduler) RequestFrame() {
	s.requests++
}

// take returns and resets the request count.
func (s *countingScheduler) take() int {
	n := s.requests
	s.requests = 0
	return n
}

// soundRecorder records every trigger in order.
type soundRecorder struct {
	ids []core.SoundID
}

func (r *soundRecorder) Trigger(id core.SoundID) {
	r.ids = append(r.ids, id)
}

func (r *soundRecorder) count(id core.SoundID) int {
	n := 0
	for _, got := range r.ids {
		if got == id {
			n++
		}
	}
	return n
}

func newTestLoop(t *testing.T, seed int64) (*Loop, *countingScheduler, *soundRecorder) {
	t.Helper()
	sched := &countingScheduler{}
	sound := &soundRecorder{}
	rt := core.DefaultConfig()
	rt.Seed = seed
	l := NewLoop(config.Default(), rt, WithScheduler(sched), WithSound(sound))
	return l, sched, sound
}

// placeObstacle replaces the in-flight obstacle.
func placeObstacle(l *Loop, o Obstacle) {
	l.session.Obstacles.Reset()
	l.session.Obstacles.PushBack(o)
}
