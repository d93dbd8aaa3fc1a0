package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given board variant (default: 2048).

Controls:
  Arrows/WASD/hjkl - Slide the board
  R                - Restart (asks first while playing)
  Q                - Quit (asks first while playing)
  Y/N              - Answer a prompt
  Ctrl+C           - Exit immediately

Examples:
  tui2048 play
  tui2048 play 2048_5x5
  tui2048 play --seed 42
  tui2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "2048"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'tui2048 list' to see available variants", gameID)
	}
	if err := checkConfig(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	state, err := tui.Run(game, terminalConfig(), tui.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printSummary(game, state)
	return nil
}

// printSummary reports how the game ended once the terminal is restored.
func printSummary(game registry.Game, state core.GameState) {
	g, ok := game.(*t2048.Game)
	if !ok {
		fmt.Printf("Score: %d  Best tile: %d\n", state.Score, state.MaxTile)
		return
	}
	snap := g.Snapshot()
	logger.Debug("game finished",
		"game", game.ID(),
		"state", snap.State,
		"score", snap.Score,
		"moves", snap.Moves,
		"ticks", snap.Tick,
	)
	fmt.Printf("Score: %d  Best tile: %d  Moves: %d\n", snap.Score, snap.MaxTile, snap.Moves)
}
