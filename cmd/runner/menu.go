package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the runner with a menu",
	Long: `Start in interactive menu mode.

The menu shows your best score, lifetime runs and the current missions.
After a run you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  Q            - Quit

Missions are fetched from the endpoint in the config (or the
RUNNER_MISSIONS_URL and RUNNER_MISSIONS_KEY environment variables).
Without one, a static list is shown.

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	host, cleanup, err := newHost(true)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.RunSession(host, runtimeConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
