package core

// Color represents a foreground color for a screen cell.
// Platforms map it to ANSI 256-color codes or RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorForestGreen
	ColorSky
	ColorGrass
	ColorOrange
	ColorGray
)

// ParseColor maps a color name used in YAML files to a Color.
// Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "black":
		return ColorBlack
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "white":
		return ColorWhite
	case "bright_red":
		return ColorBrightRed
	case "bright_green":
		return ColorBrightGreen
	case "bright_white":
		return ColorBrightWhite
	case "forest_green":
		return ColorForestGreen
	case "sky":
		return ColorSky
	case "grass":
		return ColorGrass
	case "orange":
		return ColorOrange
	case "gray":
		return ColorGray
	default:
		return ColorDefault
	}
}
