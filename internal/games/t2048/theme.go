package t2048

import (
	"slices"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// DefaultTheme is the scheme used when none or an unknown one is requested.
const DefaultTheme = "original"

// tileColor is a background/foreground pair from the 256-colour palette.
type tileColor struct {
	bg, fg uint8
}

// Theme maps tile exponents to colours. Exponents past the end of the table
// reuse its last entry.
type Theme struct {
	Name   string
	colors []tileColor
}

var themes = map[string]Theme{
	"original": {Name: "original", colors: []tileColor{
		{8, 255}, {1, 255}, {2, 255}, {3, 255}, {4, 255}, {5, 255}, {6, 255}, {7, 255},
		{9, 0}, {10, 0}, {11, 0}, {12, 0}, {13, 0}, {14, 0}, {255, 0}, {255, 0},
	}},
	"blackwhite": {Name: "blackwhite", colors: []tileColor{
		{232, 255}, {234, 255}, {236, 255}, {238, 255}, {240, 255}, {242, 255}, {244, 255}, {246, 0},
		{248, 0}, {249, 0}, {250, 0}, {251, 0}, {252, 0}, {253, 0}, {254, 0}, {255, 0},
	}},
	"bluered": {Name: "bluered", colors: []tileColor{
		{235, 255}, {63, 255}, {57, 255}, {93, 255}, {129, 255}, {165, 255}, {201, 255}, {200, 255},
		{199, 255}, {198, 255}, {197, 255}, {196, 255}, {196, 255}, {196, 255}, {196, 255}, {196, 255},
	}},
}

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeOrDefault returns the named theme, falling back to DefaultTheme.
func ThemeOrDefault(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames returns all scheme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TileColors returns the foreground and background for a cell exponent.
func (t Theme) TileColors(exp uint8) (fg, bg core.Color) {
	idx := min(int(exp), len(t.colors)-1)
	c := t.colors[idx]
	return core.ANSI(c.fg), core.ANSI(c.bg)
}
