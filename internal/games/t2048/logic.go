package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// turns returns how many clockwise rotations make d point up, or -1.
func (d Direction) turns() int {
	switch d {
	case DirUp:
		return 0
	case DirLeft:
		return 1
	case DirDown:
		return 2
	case DirRight:
		return 3
	default:
		return -1
	}
}

// MoveResult reports the outcome of one directional move.
type MoveResult struct {
	Changed     bool   // At least one tile moved or merged
	ScoreGained uint64 // Sum of the faces of all merged tiles
}

// Move slides the whole grid in the given direction.
// The grid always ends in its original orientation.
func Move(g *Grid, dir Direction) MoveResult {
	turns := dir.turns()
	if turns < 0 {
		return MoveResult{}
	}

	g.rotate(turns)
	var res MoveResult
	for _, line := range g.lines {
		moved, gained := slideLine(line)
		res.Changed = res.Changed || moved
		res.ScoreGained += gained
	}
	g.rotate(4 - turns)

	return res
}

// hasPair reports whether two neighbours along a line can merge.
func (g *Grid) hasPair() bool {
	for _, line := range g.lines {
		for j := 0; j < len(line)-1; j++ {
			if line[j] != 0 && line[j] == line[j+1] && line[j] < MaxExponent {
				return true
			}
		}
	}
	return false
}

// IsOver returns true if the board is full and no neighbours can merge.
// Checking the lines and then the lines of the rotated board covers both
// axes.
func IsOver(g *Grid) bool {
	if g.CountEmpty() > 0 {
		return false
	}
	if g.hasPair() {
		return false
	}

	g.RotateClockwise()
	defer g.rotate(3)
	return !g.hasPair()
}

// NewGame returns a fresh grid seeded with two starting tiles.
func NewGame(size int, sp *Spawner) (*Grid, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	sp.Seed(g)
	sp.Seed(g)
	return g, nil
}

// MaxTile returns the highest tile face on the board.
func MaxTile(g *Grid) uint64 {
	return TileValue(g.HighestExponent())
}
