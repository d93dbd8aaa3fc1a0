package core

import "strconv"

// Color is an ANSI 256-color code for a screen cell.
// ColorDefault leaves the terminal's own color in place.
type Color int16

// Named colors used by HUD text. Tile colors come from the game's theme.
const (
	ColorDefault      Color = -1
	ColorBlack        Color = 0
	ColorRed          Color = 1
	ColorBrightRed    Color = 9
	ColorBrightGreen  Color = 10
	ColorBrightYellow Color = 11
	ColorBrightWhite  Color = 15
	ColorGray         Color = 245
)

// ANSI returns the color for a 256-palette index.
func ANSI(code uint8) Color {
	return Color(code)
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c < 0
}

// String returns the palette index as a decimal string, or "" for the default color.
func (c Color) String() string {
	if c.IsDefault() {
		return ""
	}
	return strconv.Itoa(int(c))
}
