// tui2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	tui2048                  - Play the classic 4x4 board
//	tui2048 play [variant]   - Play a board variant
//	tui2048 menu             - Pick a variant and colour scheme interactively
//	tui2048 list             - List available variants
//	tui2048 serve            - Start SSH server for remote play
//	tui2048 config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible games
//	--config <path>    - Load settings from a YAML file
//	--size <n>         - Override the board size
//	--scheme <name>    - Override the colour scheme
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagSize    int
	flagScheme  string
	flagLogFile string
)

// logger receives session events. It discards everything unless --log-file is set.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `tui2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge
and their value is added to your score. The game ends when no move
can change the board.

Available commands:
  play     - Play a board variant directly
  menu     - Interactive variant and colour picker
  list     - Show all board variants
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  tui2048
  tui2048 play 2048_5x5
  tui2048 --size 6 --scheme bluered
  tui2048 serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, []string{"2048"})
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagScheme, "scheme", "",
		"Colour scheme: "+strings.Join(t2048.ThemeNames(), ", "))
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagSize != 0 && (flagSize < config.MinBoardSize || flagSize > config.MaxBoardSize) {
		return fmt.Errorf("--size must be between %d and %d, got %d",
			config.MinBoardSize, config.MaxBoardSize, flagSize)
	}
	if flagScheme != "" && !slices.Contains(t2048.ThemeNames(), flagScheme) {
		return fmt.Errorf("unknown --scheme %q (choose from %s)",
			flagScheme, strings.Join(t2048.ThemeNames(), ", "))
	}

	if err := openLog(flagLogFile); err != nil {
		return err
	}

	t2048.SetConfigPath(flagConfig)
	t2048.SetSize(flagSize)
	t2048.SetScheme(flagScheme)
	return nil
}

// openLog points the logger at path. An empty path keeps logging off.
func openLog(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return nil
}

// checkConfig loads the game config once so a broken --config file fails
// before the terminal switches to the alternate screen.
func checkConfig() error {
	cfg, source, err := config.LoadT2048WithSource(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"source", source,
		"size", cfg.Board.Size,
		"scheme", cfg.Theme.Scheme,
		"delay_ms", cfg.Spawn.DelayMS,
	)
	return nil
}
