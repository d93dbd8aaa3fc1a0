package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board and colour scheme interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a board, left/right to change colours
and Enter to play. Quitting a game returns you to the menu.

Controls:
  Up/Down/j/k     - Choose board
  Left/Right/h/l  - Change colour scheme
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  tui2048 menu
  tui2048 menu --scheme blackwhite`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	cfg := terminalConfig()
	scheme := flagScheme

	for {
		menuResult, err := tui.RunMenu(cfg, scheme)
		if err != nil {
			return err
		}

		// Keep size changes and the last colour choice
		cfg = menuResult.Config
		scheme = menuResult.Scheme

		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if g, ok := game.(*t2048.Game); ok {
			g.SetTheme(scheme)
		}

		// A fixed --seed replays the same game every round
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		state, err := tui.Run(game, cfg, tui.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if state.Quit {
			continue
		}
		// Interrupted with ctrl+c
		return nil
	}
}
