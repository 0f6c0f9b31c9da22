package core

// Color is a foreground color for a screen cell. The platform layer maps
// it to a terminal style.
type Color uint8

// Palette used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorGray
	ColorDarkGray
)
