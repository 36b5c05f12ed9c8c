package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start the runner directly, without the menu.

Controls:
  Left/Right, A/D   - Change lane
  Up, W, Space      - Jump
  Down, S           - Roll (fast-fall while airborne)
  R / Enter         - Restart (after game over)
  Ctrl+S            - Screenshot to ~/.runner/screenshots
  B/Esc, Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at the initial speed
  normal - Start with a 30% head start on speed
  hard   - Start with a 70% head start on speed
  fixed  - Speed never increases

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42
  runner play --config ./my-runner.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	host, cleanup, err := newHost(true)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.Run(host, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
