package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying        GameStateType = "playing"
	StateSpawnPending   GameStateType = "spawn_pending"
	StateConfirmQuit    GameStateType = "confirm_quit"
	StateConfirmRestart GameStateType = "confirm_restart"
	StateGameOver       GameStateType = "game_over"
	StateQuit           GameStateType = "quit"
	StatePausedSmall    GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Size    int
	Score   uint64
	Moves   int
	Cells   [][]uint8 // Row-major exponents
	MaxTile uint64    // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.quit:
		state = StateQuit
	case g.prompt == promptQuit:
		state = StateConfirmQuit
	case g.prompt == promptRestart:
		state = StateConfirmRestart
	case g.gameOver:
		state = StateGameOver
	case g.spawnIn > 0:
		state = StateSpawnPending
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Tick:    g.tick,
		Size:    g.grid.Size(),
		Score:   g.score,
		Moves:   g.moves,
		Cells:   g.grid.Rows(),
		MaxTile: MaxTile(g.grid),
		State:   state,
	}
}
