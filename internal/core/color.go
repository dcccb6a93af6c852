package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
