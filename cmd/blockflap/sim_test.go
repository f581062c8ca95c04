package main

import (
	"testing"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
	"github.com/vovakirdan/blockflap/internal/game"
)

func newSimLoop(seed int64) *game.Loop {
	rt := core.DefaultConfig()
	rt.Seed = seed
	return game.NewLoop(config.Default(), rt)
}

func TestSimulateNoInputFallsOut(t *testing.T) {
	res := simulate(newSimLoop(1), nil, 0, 1000)

	if !res.GameOver {
		t.Fatal("expected game over without input")
	}
	// y = 64 + 0.05n(n+1) first exceeds 128 at n = 36
	if res.Frames != 36 {
		t.Errorf("frames = %d, expected 36", res.Frames)
	}
	if res.Score != 0 || res.Flaps != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestSimulateAutopilot(t *testing.T) {
	res := simulate(newSimLoop(9), game.NewAutopilot(config.Default()), 0, 2000)

	if res.GameOver {
		t.Fatalf("autopilot crashed: %+v", res)
	}
	if res.Frames != 2000 {
		t.Errorf("frames = %d, expected 2000", res.Frames)
	}
	if res.Score < 20 {
		t.Errorf("score = %d, expected at least 20", res.Score)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := simulate(newSimLoop(77), nil, 9, 3000)
	b := simulate(newSimLoop(77), nil, 9, 3000)

	if a != b {
		t.Errorf("same seed and input diverged: %+v vs %+v", a, b)
	}
}

func TestSimulateFrameLimit(t *testing.T) {
	res := simulate(newSimLoop(3), game.NewAutopilot(config.Default()), 0, 10)

	if res.Frames != 10 || res.GameOver {
		t.Errorf("unexpected result %+v", res)
	}
}
