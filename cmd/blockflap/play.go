package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockflap/internal/audio"
	"github.com/vovakirdan/blockflap/internal/platform/tui"
	"github.com/vovakirdan/blockflap/internal/storage"
)

var flagPlayAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space      - Flap (restart after game over)
  Ctrl+S     - Save a text screenshot to ~/.blockflap/screenshots
  Q/Ctrl+C   - Quit

Runs with a positive score are recorded in the scores database.

Examples:
  blockflap play
  blockflap play --seed 42
  blockflap play --autopilot
  blockflap play --config ./slow.toml --log-file play.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlayAutopilot, "autopilot", false, "Let the autopilot fly (space still restarts)")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal: log to a file or nowhere
	out, closeLog := logOutput(io.Discard)
	defer closeLog()
	logger := newLogger(out, "blockflap")

	cfg := loadConfig(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	player := os.Getenv("USER")
	sound := audio.WithLogging(audio.NewBell(os.Stderr, cfg.Audio), logger)

	runErr := tui.Run(tui.Options{
		Config:    cfg,
		Runtime:   rt,
		Store:     store,
		Player:    player,
		Autopilot: flagPlayAutopilot,
		Sound:     sound,
		Logger:    logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatalf("running game: %v", runErr)
	}
}
