package game

import (
	"testing"

	"github.com/vovakirdan/blockflap/internal/core"
)

func TestCollisionDetection(t *testing.T) {
	tests := []struct {
		name       string
		playerY    float64
		obstacle   Obstacle
		wantHit    bool
		wantBounds bool
		wantScored int
	}{
		{"inside gap while overlapping", 60, Obstacle{X: 40, GapY: 64}, false, false, 0},
		{"above gap while overlapping", 10, Obstacle{X: 40, GapY: 64}, true, false, 0},
		{"below gap while overlapping", 95, Obstacle{X: 40, GapY: 64}, true, false, 0},
		{"touching gap top edge", 24, Obstacle{X: 40, GapY: 64}, false, false, 0},
		{"touching gap bottom edge", 88, Obstacle{X: 40, GapY: 64}, false, false, 0},
		{"half a pixel past bottom edge", 88.5, Obstacle{X: 40, GapY: 64}, true, false, 0},
		{"outside gap, pipe right of player", 10, Obstacle{X: 48, GapY: 64}, false, false, 0},
		{"outside gap, pipe left of player", 10, Obstacle{X: 16, GapY: 64}, false, false, 0},
		{"above screen", -0.5, Obstacle{X: 100, GapY: 64}, false, true, 0},
		{"below screen", 128.5, Obstacle{X: 100, GapY: 64}, false, true, 0},
		{"at bottom limit", 128, Obstacle{X: 100, GapY: 64}, false, false, 0},
		{"at top limit", 0, Obstacle{X: 100, GapY: 64}, false, false, 0},
		{"aligned with player scores", 60, Obstacle{X: 32, GapY: 64}, false, false, 1},
		{"off by half a pixel does not score", 60, Obstacle{X: 32.5, GapY: 64}, false, false, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, _, sound := newTestLoop(t, 1)
			l.session.Player.Y = tc.playerY
			placeObstacle(l, tc.obstacle)

			report := l.checkCollisions(&l.session)

			if report.HitObstacle != tc.wantHit {
				t.Errorf("HitObstacle = %v, expected %v", report.HitObstacle, tc.wantHit)
			}
			if report.OutOfBounds != tc.wantBounds {
				t.Errorf("OutOfBounds = %v, expected %v", report.OutOfBounds, tc.wantBounds)
			}
			if report.Scored != tc.wantScored || l.session.Score != tc.wantScored {
				t.Errorf("scored %d (score %d), expected %d", report.Scored, l.session.Score, tc.wantScored)
			}
			if l.session.GameOver != report.Hit() {
				t.Errorf("GameOver = %v, expected %v", l.session.GameOver, report.Hit())
			}

			wantSounds := 0
			if tc.wantHit {
				wantSounds++
			}
			if tc.wantBounds {
				wantSounds++
			}
			if got := sound.count(core.SoundHit); got != wantSounds {
				t.Errorf("hit sounds = %d, expected %d", got, wantSounds)
			}
		})
	}
}

func TestCollisionPipeAndBoundsTogether(t *testing.T) {
	l, _, sound := newTestLoop(t, 1)
	l.session.Player.Y = -2
	placeObstacle(l, Obstacle{X: 40, GapY: 64})

	report := l.checkCollisions(&l.session)

	if !report.HitObstacle || !report.OutOfBounds {
		t.Fatalf("report = %+v, expected both causes", report)
	}
	if got := sound.count(core.SoundHit); got != 2 {
		t.Errorf("hit sounds = %d, expected one per detected hit", got)
	}
}

func TestScoringOncePerObstacle(t *testing.T) {
	l, _, _ := newTestLoop(t, 3)
	ap := NewAutopilot(l.cfg)

	// x = 128 - 2n equals player.x = 32 only at n = 48
	for frame := 1; frame <= 60; frame++ {
		if ap.Flap(l.Snapshot()) {
			l.Press()
		}
		l.Frame()

		want := 0
		if frame >= 48 {
			want = 1
		}
		if got := l.State().Score; got != want {
			t.Fatalf("frame %d: score = %d, expected %d", frame, got, want)
		}
	}
}

func TestOddSpeedNeverScores(t *testing.T) {
	l, _, _ := newTestLoop(t, 3)
	l.cfg.Obstacles.FlightSpeed = 5
	l.obstacles = NewObstacleManager(3, l.cfg)
	l.obstacles.Reset(&l.session.Obstacles)

	for frame := 0; frame < 200; frame++ {
		l.session.Player.Y = 60
		l.session.Player.Vel = 0
		l.obstacles.Advance(&l.session.Obstacles)
		l.session.Obstacles.Each(func(o *Obstacle) { o.GapY = 64 })
		l.checkCollisions(&l.session)
	}
	if l.session.Score != 0 {
		t.Errorf("score = %d, expected 0 when x never equals player.x", l.session.Score)
	}
}
