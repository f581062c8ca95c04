package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
)

// ID is the identifier used for score storage.
const ID = "blockflap"

// Title is the display name of the game.
const Title = "Block Flap"

// Scheduler is the platform's "run the next frame before the next refresh"
// primitive. The loop calls RequestFrame at most once per frame.
type Scheduler interface {
	RequestFrame()
}

// Sound accepts fire-and-forget sound triggers.
type Sound interface {
	Trigger(id core.SoundID)
}

// LoopState is the state of the game loop's state machine.
type LoopState int

const (
	StateRunning LoopState = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

type nopScheduler struct{}

func (nopScheduler) RequestFrame() {}

type nopSound struct{}

func (nopSound) Trigger(core.SoundID) {}

// Option configures a Loop.
type Option func(*Loop)

// WithScheduler sets the frame scheduler.
func WithScheduler(s Scheduler) Option {
	return func(l *Loop) {
		l.sched = s
	}
}

// WithSound sets the sound sink.
func WithSound(s Sound) Option {
	return func(l *Loop) {
		l.sound = s
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// Loop owns a Session and drives it one frame at a time.
//
// States: Running and GameOver. While Running, every Frame requests the next
// one from the Scheduler; the frame that ends the game renders the game over
// overlay instead and the loop stops requesting frames. Only Press (or
// Restart) leaves GameOver.
type Loop struct {
	cfg       config.Config
	seed      int64
	session   Session
	obstacles *ObstacleManager
	canvas    *core.Canvas
	state     LoopState
	flap      bool // Flap requested since the last frame
	runs      int  // Sessions started, including the first
	sched     Scheduler
	sound     Sound
	logger    *log.Logger
}

// NewLoop creates a loop with a fresh session in the Running state. No frame
// is scheduled until Start is called.
func NewLoop(cfg config.Config, rt core.RuntimeConfig, opts ...Option) *Loop {
	l := &Loop{
		cfg:       cfg,
		seed:      rt.Seed,
		obstacles: NewObstacleManager(rt.Seed, cfg),
		canvas:    core.NewCanvas(cfg.Screen.Width, cfg.Screen.Height),
		sched:     nopScheduler{},
		sound:     nopSound{},
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.reset(0)
	return l
}

// reset reinitializes the session with the given starting velocity.
func (l *Loop) reset(vel float64) {
	l.session = Session{
		Player: Player{
			X:    l.cfg.Player.X,
			Y:    l.cfg.Obstacles.InitGapY,
			Vel:  vel,
			Size: l.cfg.Player.Size,
		},
	}
	l.obstacles.Reset(&l.session.Obstacles)
	l.state = StateRunning
	l.flap = false
	l.runs++
}

// Start schedules the first frame.
func (l *Loop) Start() {
	l.logger.Info("session started", "seed", l.seed)
	l.sched.RequestFrame()
}

// Press handles the single game key: a flap while running, a restart after
// game over.
func (l *Loop) Press() {
	if l.state == StateGameOver {
		l.Restart()
		return
	}
	l.flap = true
	l.sound.Trigger(core.SoundFlap)
}

// Restart leaves GameOver with a fresh session and schedules a frame
// immediately. The player starts with the restart velocity rather than at
// rest.
func (l *Loop) Restart() {
	prev := l.session.Score
	l.reset(l.cfg.RestartVelocity())
	l.logger.Info("session restarted", "run", l.runs, "previous_score", prev)
	l.sched.RequestFrame()
}

// Frame runs one tick: clear, physics, obstacles, collisions, render, then
// either request the next frame or enter GameOver. A frame delivered after
// GameOver is ignored.
func (l *Loop) Frame() CollisionReport {
	if l.state == StateGameOver {
		return CollisionReport{}
	}

	s := &l.session
	s.Frames++

	l.canvas.Clear(core.ColorBackground)

	flap := l.flap
	l.flap = false
	stepPhysics(&s.Player, flap, l.cfg.Physics)

	if l.obstacles.Advance(&s.Obstacles) {
		l.logger.Debug("obstacle recycled", "frame", s.Frames, "gap_y", s.Obstacles.Front().GapY)
	}

	report := l.checkCollisions(s)
	l.render()
	l.assertInvariants()

	if s.GameOver {
		l.state = StateGameOver
		l.canvas.DrawText(l.cfg.Layout.GameOverX, l.cfg.Layout.GameOverY, "GAME OVER", core.ColorText)
		l.logger.Info("game over",
			"score", s.Score,
			"frames", s.Frames,
			"obstacle", report.HitObstacle,
			"out_of_bounds", report.OutOfBounds,
		)
		return report
	}

	l.sched.RequestFrame()
	return report
}

// assertInvariants panics on states the design rules out.
func (l *Loop) assertInvariants() {
	if n := l.session.Obstacles.Len(); n != queueCapacity {
		panic(fmt.Sprintf("game: %d obstacles in flight, want %d", n, queueCapacity))
	}
	if l.session.Player.Size <= 0 {
		panic("game: player size must be positive")
	}
}

// Phase returns the state machine state.
func (l *Loop) Phase() LoopState {
	return l.state
}

// State returns the platform-facing summary.
func (l *Loop) State() core.GameState {
	return core.GameState{
		Score:    l.session.Score,
		GameOver: l.state == StateGameOver,
		Frames:   l.session.Frames,
	}
}

// Seed returns the RNG seed the loop was created with.
func (l *Loop) Seed() int64 {
	return l.seed
}

// Runs returns how many sessions were started, including the current one.
func (l *Loop) Runs() int {
	return l.runs
}

// Canvas returns a copy of the last rendered frame.
func (l *Loop) Canvas() *core.Canvas {
	return l.canvas.Clone()
}

// Snapshot is a value copy of the session for inspection.
type Snapshot struct {
	State       LoopState
	Player      Player
	Obstacles   []Obstacle
	Score       int
	Frames      int
	FlapPending bool
}

// Snapshot returns a copy of the current session.
func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		State:       l.state,
		Player:      l.session.Player,
		Obstacles:   l.session.Obstacles.Slice(),
		Score:       l.session.Score,
		Frames:      l.session.Frames,
		FlapPending: l.flap,
	}
}
