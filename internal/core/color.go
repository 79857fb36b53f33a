package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette used by the runner renderer.
const (
	ColorRoad     = ColorGray
	ColorLane     = ColorGray
	ColorCoin     = ColorBrightYellow
	ColorObstacle = ColorRed
	ColorPlayer   = ColorCyan
	ColorHUD      = ColorBrightWhite
)
