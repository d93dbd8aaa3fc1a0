// Package t2048 implements the 2048 sliding-tile puzzle on an N×N board.
package t2048

import (
	"fmt"
	"strings"
)

const (
	// MinSize is the smallest playable board dimension.
	MinSize = 2

	// MaxExponent is the largest exponent a cell can hold. Tiles at this
	// exponent never merge, so the face value 2^MaxExponent and any score
	// stay within uint64.
	MaxExponent = 63
)

// Position addresses a cell by screen row and column.
type Position struct {
	Row, Col int
}

// Grid is an N×N board of exponents. A cell holding v shows the tile 2^v;
// 0 is an empty cell.
//
// Lines are stored column-major: lines[x] is column x read top to bottom.
// Sliding every line toward index 0 is therefore the "up" move, and
// RotateClockwise turns the board clockwise as seen on screen.
type Grid struct {
	size  int
	lines [][]uint8
}

// NewGrid returns an empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("t2048: invalid grid size %d (minimum %d)", size, MinSize)
	}
	g := &Grid{size: size, lines: make([][]uint8, size)}
	for x := range g.lines {
		g.lines[x] = make([]uint8, size)
	}
	return g, nil
}

// GridFromRows builds a grid from row-major exponents.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("t2048: row %d has %d cells, want %d", r, len(row), g.size)
		}
		for c, v := range row {
			if v > MaxExponent {
				return nil, fmt.Errorf("t2048: exponent %d at (%d,%d) exceeds %d", v, r, c, MaxExponent)
			}
			g.lines[c][r] = v
		}
	}
	return g, nil
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

// At returns the exponent at the given row and column.
func (g *Grid) At(row, col int) uint8 {
	return g.lines[col][row]
}

// Set stores an exponent. Exponents above MaxExponent are a logic error.
func (g *Grid) Set(row, col int, v uint8) {
	if v > MaxExponent {
		panic(fmt.Sprintf("t2048: exponent %d exceeds %d", v, MaxExponent))
	}
	g.lines[col][row] = v
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for _, line := range g.lines {
		clear(line)
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, lines: make([][]uint8, g.size)}
	for x, line := range g.lines {
		c.lines[x] = append([]uint8(nil), line...)
	}
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for x := range g.lines {
		for y := range g.lines[x] {
			if g.lines[x][y] != o.lines[x][y] {
				return false
			}
		}
	}
	return true
}

// Rows returns a row-major copy of the exponents.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.size)
	for r := range rows {
		rows[r] = make([]uint8, g.size)
		for c := range rows[r] {
			rows[r][c] = g.lines[c][r]
		}
	}
	return rows
}

// CountEmpty returns the number of empty cells.
func (g *Grid) CountEmpty() int {
	n := 0
	for _, line := range g.lines {
		for _, v := range line {
			if v == 0 {
				n++
			}
		}
	}
	return n
}

// EmptyCells returns the empty positions in row-major order.
func (g *Grid) EmptyCells() []Position {
	var cells []Position
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.lines[c][r] == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HighestExponent returns the largest exponent on the board.
func (g *Grid) HighestExponent() uint8 {
	var best uint8
	for _, line := range g.lines {
		for _, v := range line {
			best = max(best, v)
		}
	}
	return best
}

// RotateClockwise turns the grid 90° clockwise in place, one ring at a time.
func (g *Grid) RotateClockwise() {
	n := g.size
	a := g.lines
	for i := 0; i < n/2; i++ {
		for j := i; j < n-i-1; j++ {
			tmp := a[i][j]
			a[i][j] = a[j][n-i-1]
			a[j][n-i-1] = a[n-i-1][n-j-1]
			a[n-i-1][n-j-1] = a[n-j-1][i]
			a[n-j-1][i] = tmp
		}
	}
}

// rotate applies RotateClockwise the given number of times (mod 4).
func (g *Grid) rotate(times int) {
	for range times % 4 {
		g.RotateClockwise()
	}
}

// String renders the exponents row by row, for test failures and logs.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", g.lines[c][r])
		}
	}
	return sb.String()
}

// TileValue returns the face value of an exponent, 0 for an empty cell.
func TileValue(exp uint8) uint64 {
	if exp == 0 {
		return 0
	}
	return uint64(1) << exp
}
