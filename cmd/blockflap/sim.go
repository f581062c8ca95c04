package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockflap/internal/audio"
	"github.com/vovakirdan/blockflap/internal/game"
	"github.com/vovakirdan/blockflap/internal/storage"
)

var (
	flagSimFrames    int
	flagSimAutopilot bool
	flagSimFlapEvery int
	flagSimSave      bool
	flagSimDump      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and print the result.

The run stops at game over or after --frames frames. Input comes from the
autopilot and/or a fixed flap interval. The same --seed and input flags
always produce the same run.

Examples:
  blockflap sim --autopilot --frames 10000
  blockflap sim --seed 7 --flap-every 12
  blockflap sim --autopilot --save --dump`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Fly with the autopilot")
	simCmd.Flags().IntVar(&flagSimFlapEvery, "flap-every", 0, "Flap every N frames (0 = never)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().BoolVar(&flagSimDump, "dump", false, "Print the final frame as text")
}

// simResult summarizes a headless run.
type simResult struct {
	Frames   int
	Score    int
	GameOver bool
	Flaps    int
}

// simulate drives the loop synchronously: the frame scheduler is ignored and
// frames run back to back until game over or maxFrames.
func simulate(loop *game.Loop, pilot *game.Autopilot, flapEvery, maxFrames int) simResult {
	var res simResult
	loop.Start()

	for i := 1; i <= maxFrames; i++ {
		flap := flapEvery > 0 && i%flapEvery == 0
		if pilot != nil && pilot.Flap(loop.Snapshot()) {
			flap = true
		}
		if flap {
			loop.Press()
			res.Flaps++
		}

		loop.Frame()
		if loop.Phase() == game.StateGameOver {
			break
		}
	}

	st := loop.State()
	res.Frames = st.Frames
	res.Score = st.Score
	res.GameOver = st.GameOver
	return res
}

func runSim(_ *cobra.Command, _ []string) {
	out, closeLog := logOutput(os.Stderr)
	defer closeLog()
	logger := newLogger(out, "blockflap-sim")

	cfg := loadConfig(logger)
	rt := runtimeConfig(0, 0)

	loop := game.NewLoop(cfg, rt,
		game.WithLogger(logger),
		game.WithSound(audio.WithLogging(audio.Nop{}, logger)),
	)

	var pilot *game.Autopilot
	if flagSimAutopilot {
		pilot = game.NewAutopilot(cfg)
	}

	res := simulate(loop, pilot, flagSimFlapEvery, flagSimFrames)

	if flagSimDump {
		fmt.Println(loop.Canvas().String())
	}

	outcome := "survived"
	if res.GameOver {
		outcome = "game over"
	}
	fmt.Printf("seed=%d frames=%d score=%d flaps=%d result=%s\n",
		loop.Seed(), res.Frames, res.Score, res.Flaps, outcome)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	run, err := store.SaveRun(storage.Run{
		GameID: game.ID,
		Player: "sim",
		Score:  res.Score,
		Frames: res.Frames,
		Seed:   loop.Seed(),
	})
	if err != nil {
		fatalf("%v", err)
	}
	logger.Info("run saved", "run_id", run.RunID)
}
