// blockflap is a minimal side-scrolling arcade game for the terminal: keep
// a falling block airborne and steer it through the gaps.
//
// Usage:
//
//	blockflap play            - Play in this terminal
//	blockflap serve           - Start SSH server for remote play
//	blockflap scores          - Show high scores
//	blockflap sim             - Run a headless simulation
//	blockflap config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.blockflap/scores.db)
//	--config <path>       - Load a YAML or TOML game config
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file (play mode logs nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockflap/internal/config"
	"github.com/vovakirdan/blockflap/internal/core"
	"github.com/vovakirdan/blockflap/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockflap",
	Short: "Block Flap - steer a falling block through scrolling gaps",
	Long: `Block Flap is a minimal side-scrolling arcade game for the terminal.
Press space to flap; the block falls under gravity otherwise. Pass through
the gaps between pipes to score. Touching a pipe or leaving the screen ends
the run; press space again to restart.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless simulation
  config   - Print the default configuration

Examples:
  blockflap play
  blockflap play --seed 42 --autopilot
  blockflap serve --ssh :2222
  blockflap sim --frames 5000 --autopilot
  blockflap config > ~/.blockflap/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// logOutput returns the --log-file writer, or fallback when unset.
// The returned close function is always safe to call.
func logOutput(fallback io.Writer) (io.Writer, func()) {
	if flagLogFile == "" {
		return fallback, func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return fallback, func() {}
	}
	return f, func() { f.Close() }
}

// loadConfig loads the game config and warns about configurations that can
// never score.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if !cfg.CanScore() {
		logger.Warn("obstacles never line up with the player, score will stay 0",
			"spawn_x", cfg.SpawnX(),
			"player_x", cfg.Player.X,
			"flight_speed", cfg.Obstacles.FlightSpeed,
		)
	}
	return cfg
}

// runtimeConfig builds the runtime config from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
