package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorPair identifies the style of a run of cells.
type colorPair struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings.
// Styles are built once per colour pair and cached.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	styles map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to a lipgloss renderer.
// A nil renderer uses lipgloss.DefaultRenderer (the local terminal).
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// RenderScreen converts a Screen buffer to a styled string for the local terminal.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}

// style returns the cached style for a colour pair.
func (r *ScreenRenderer) style(p colorPair) lipgloss.Style {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.styles[p]; ok {
		return st
	}
	st := r.renderer.NewStyle()
	if !p.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(p.fg.String()))
	}
	if !p.bg.IsDefault() {
		st = st.Background(lipgloss.Color(p.bg.String()))
	}
	r.styles[p] = st
	return st
}

// Render converts a Screen buffer to a styled string.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != start.fg || cell.Bg != start.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg.IsDefault() && start.bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
