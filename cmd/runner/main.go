// runner is a pseudo-3D three-lane endless runner for the terminal.
//
// Usage:
//
//	runner play              - Start a run directly
//	runner menu              - Start menu with missions and scores
//	runner serve             - Start SSH server for remote play
//	runner scores            - Show recorded runs
//	runner snapshot          - Render a frame headlessly to PNG
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--db <path>           - Set database path (default: ~/.runner/runner.db)
//	--config <path>       - Use a custom YAML or TOML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file while the TUI is active
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/missions"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - a pseudo-3D endless runner in your terminal",
	Long: `Lane Runner is a three-lane endless runner drawn in truecolor
half-block pixels. Switch lanes, jump and roll past trains and barriers
while collecting coins.

Available commands:
  play      - Start a run directly
  menu      - Interactive menu with missions and scores
  serve     - Start SSH server for remote play
  scores    - View recorded runs
  snapshot  - Render a frame to a PNG file

Examples:
  runner play
  runner play --difficulty hard
  runner menu
  runner serve --ssh :2222
  runner snapshot --frames 600 --autopilot --out frame.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger builds the process logger. A full-screen program owns the
// terminal, so without --log-file its output is discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "runner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// loadConfig loads the runner config and applies the difficulty flag.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newHost wires config, storage, missions and logging. A missing database
// is reported and the game continues without persistence.
func newHost(interactive bool) (tui.Host, func(), error) {
	logger, closeLog, err := newLogger(interactive)
	if err != nil {
		return tui.Host{}, nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		closeLog()
		return tui.Host{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("continuing without storage", "error", err)
		store = nil
	}

	host := tui.Host{
		Config: cfg,
		Store:  store,
		Missions: missions.NewHTTPProvider(
			cfg.Missions.Endpoint,
			cfg.Missions.APIKey,
			time.Duration(cfg.Missions.TimeoutSeconds)*time.Second,
		),
		Logger: logger,
	}
	cleanup := func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return host, cleanup, nil
}

// runtimeConfig sizes the viewport from the local terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
