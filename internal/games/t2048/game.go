package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// popDurationMS is how long a freshly spawned tile stays highlighted.
const popDurationMS = 150

// prompt is a yes/no question waiting for an answer.
type prompt int

const (
	promptNone prompt = iota
	promptQuit
	promptRestart
)

// Game implements the 2048 puzzle game.
type Game struct {
	fixedSize int    // Board size forced by the variant, 0 means take it from config
	scheme    string // Colour scheme chosen for this instance, overrides config
	rng       *rand.Rand
	tick      uint64

	cfg     config.T2048Config
	theme   Theme
	spawner *Spawner
	grid    *Grid
	score   uint64
	moves   int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	prompt     prompt
	spawnDelay int      // Ticks between a move and its spawn
	spawnIn    int      // Ticks until the pending spawn, 0 when none is pending
	popAt      Position // Most recently spawned tile
	popTicks   int      // Remaining highlight ticks for popAt
	popLength  int
	gameOver   bool
	quit       bool
}

// Package-level variables for config, set from the CLI.
var (
	configPath     string
	sizeOverride   int
	schemeOverride string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSize overrides the configured board size. 0 keeps the config value.
func SetSize(size int) {
	sizeOverride = size
}

// SetScheme overrides the configured colour scheme. "" keeps the config value.
func SetScheme(name string) {
	schemeOverride = name
}

// New creates a 2048 game whose board size comes from config.
func New() *Game {
	return &Game{}
}

// NewWithSize creates a 2048 game with a fixed board size.
func NewWithSize(size int) *Game {
	return &Game{fixedSize: size}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_5x5", func() registry.Game {
		return NewWithSize(5)
	})
}

// SetTheme picks the colour scheme for this game only. It takes effect on
// the next Reset.
func (g *Game) SetTheme(name string) {
	g.scheme = name
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.fixedSize > 0 {
		return fmt.Sprintf("2048_%dx%d", g.fixedSize, g.fixedSize)
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.fixedSize > 0 {
		return fmt.Sprintf("2048 (%dx%d)", g.fixedSize, g.fixedSize)
	}
	return "2048"
}

// Reset loads configuration and starts a new game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadT2048(configPath)
	if err != nil {
		gameCfg = config.DefaultT2048Config()
	}
	if sizeOverride >= MinSize {
		gameCfg.Board.Size = sizeOverride
	}
	if schemeOverride != "" {
		gameCfg.Theme.Scheme = schemeOverride
	}
	if g.scheme != "" {
		gameCfg.Theme.Scheme = g.scheme
	}
	if g.fixedSize > 0 {
		gameCfg.Board.Size = g.fixedSize
	}
	if gameCfg.Validate() != nil {
		gameCfg = config.DefaultT2048Config()
	}
	g.cfg = gameCfg
	g.theme = ThemeOrDefault(gameCfg.Theme.Scheme)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = NewSpawner(g.rng, spawnDistribution(gameCfg.Spawn.Weights), uint8(gameCfg.Spawn.StartExponent))

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.spawnDelay = msToTicks(gameCfg.Spawn.DelayMS, tickRate)
	g.popLength = max(1, msToTicks(popDurationMS, tickRate))

	g.tick = 0
	g.newRound()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// newRound clears the board and score and seeds two tiles.
// The random source carries over so restarts do not repeat the last game.
func (g *Game) newRound() {
	grid, err := NewGame(g.cfg.Board.Size, g.spawner)
	if err != nil {
		// Validate guarantees a usable size.
		panic(err)
	}
	g.grid = grid
	g.score = 0
	g.moves = 0
	g.prompt = promptNone
	g.spawnIn = 0
	g.popTicks = 0
	g.gameOver = false
	g.quit = false
}

func spawnDistribution(weights []config.SpawnWeight) SpawnDistribution {
	dist := make(SpawnDistribution, 0, len(weights))
	for _, w := range weights {
		dist = append(dist, SpawnWeight{Exponent: uint8(w.Exponent), Weight: w.Weight})
	}
	return dist
}

// msToTicks converts a duration to simulation ticks, rounding up.
func msToTicks(ms, tickRate int) int {
	if ms <= 0 {
		return 0
	}
	return (ms*tickRate + 999) / 1000
}

// Resize records the terminal size and checks that the board fits.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	w, h := g.layoutSize()
	g.tooSmall = width < w || height < h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.popTicks > 0 {
		g.popTicks--
	}

	if g.quit {
		return core.StepResult{State: g.State()}
	}

	// An open prompt takes the next key: yes confirms, anything else cancels.
	if g.prompt != promptNone {
		if in.Empty() {
			return core.StepResult{State: g.State()}
		}
		p := g.prompt
		g.prompt = promptNone
		if in.Has(core.ActionConfirm) {
			switch p {
			case promptQuit:
				g.quit = true
			case promptRestart:
				g.newRound()
				return core.StepResult{State: g.State(), Restarted: true}
			}
		}
		return core.StepResult{State: g.State()}
	}

	// Input is ignored between a move and its spawn.
	if g.spawnIn > 0 {
		g.spawnIn--
		if g.spawnIn == 0 {
			g.spawnAndCheck()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionQuit):
		if g.gameOver {
			g.quit = true
		} else {
			g.prompt = promptQuit
		}
		return core.StepResult{State: g.State()}
	case in.Has(core.ActionRestart):
		if g.gameOver {
			g.newRound()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		g.prompt = promptRestart
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	res := Move(g.grid, dir)
	if !res.Changed {
		// Board didn't change - don't spawn new tile
		return core.StepResult{State: g.State()}
	}

	g.score += res.ScoreGained
	g.moves++
	if g.spawnDelay > 0 {
		g.spawnIn = g.spawnDelay
	} else {
		g.spawnAndCheck()
	}

	return core.StepResult{State: g.State(), Moved: true}
}

// directionFor maps the first directional action in the frame to a Direction.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return DirUp, false
}

// spawnAndCheck adds the post-move tile and checks for game over.
func (g *Game) spawnAndCheck() {
	if pos, ok := g.spawner.Spawn(g.grid); ok {
		g.popAt = pos
		g.popTicks = g.popLength
	}
	if IsOver(g.grid) {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var maxTile uint64
	if g.grid != nil {
		maxTile = MaxTile(g.grid)
	}
	return core.GameState{
		Score:    g.score,
		MaxTile:  maxTile,
		GameOver: g.gameOver,
		Quit:     g.quit,
	}
}

// Grid returns the live board.
func (g *Game) Grid() *Grid {
	return g.grid
}
