package t2048

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	tileWidth  = 7 // Columns per tile
	tileHeight = 3 // Rows per tile
	headerRows = 2 // Title/score line and a spacer
	footerRows = 2 // Spacer and the hint/status line
)

// Status and hint lines shown under the board.
const (
	hintText          = "←,↑,→,↓ or q"
	gameOverText      = "GAME OVER"
	quitPromptText    = "QUIT? (y/n)"
	restartPromptText = "RESTART? (y/n)"
)

// layoutSize returns the screen area the game needs.
func (g *Game) layoutSize() (w, h int) {
	size := g.cfg.Board.Size
	return size * tileWidth, headerRows + size*tileHeight + footerRows
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, totalH := g.layoutSize()
	boardX := max(0, (g.screenW-boardW)/2)
	top := max(0, (g.screenH-totalH)/2)

	g.renderHeader(dst, boardX, top, boardW)
	g.renderBoard(dst, boardX, top+headerRows)
	g.renderStatus(dst, boardX, top+totalH-1, boardW)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHeader draws the title on the left and the score on the right.
func (g *Game) renderHeader(dst *core.Screen, x, y, width int) {
	title := "2048"
	dst.DrawText(x, y, title)

	scoreStr := fmt.Sprintf("%d score", g.score)
	scoreX := max(x+len(title)+1, x+width-len(scoreStr))
	dst.DrawText(scoreX, y, scoreStr)
}

// renderBoard draws every tile as a coloured block with its value centred.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.grid.Size()
	for row := range size {
		for col := range size {
			exp := g.grid.At(row, col)
			fg, bg := g.theme.TileColors(exp)
			if g.popTicks > 0 && g.popAt == (Position{Row: row, Col: col}) {
				fg, bg = bg, fg
			}

			x := boardX + col*tileWidth
			y := boardY + row*tileHeight
			dst.DrawRect(core.NewRect(x, y, tileWidth, tileHeight), core.Cell{Rune: ' ', Fg: fg, Bg: bg})

			label := tileLabel(exp)
			pad := tileWidth - utf8.RuneCountInString(label)
			dst.DrawStyledText(x+pad-pad/2, y+tileHeight/2, label, fg, bg)
		}
	}
}

// tileLabel returns the text shown on a tile. Faces too wide for a tile are
// written as powers of two.
func tileLabel(exp uint8) string {
	if exp == 0 {
		return "·"
	}
	s := strconv.FormatUint(TileValue(exp), 10)
	if len(s) > tileWidth {
		return fmt.Sprintf("2^%d", exp)
	}
	return s
}

// statusText returns the line shown under the board.
func (g *Game) statusText() string {
	switch {
	case g.prompt == promptQuit:
		return quitPromptText
	case g.prompt == promptRestart:
		return restartPromptText
	case g.gameOver:
		return gameOverText
	default:
		return hintText
	}
}

// renderStatus draws the hint or status line centred under the board.
func (g *Game) renderStatus(dst *core.Screen, x, y, width int) {
	text := g.statusText()
	offset := max(0, (width-utf8.RuneCountInString(text))/2)
	dst.DrawText(x+offset, y, text)
}
