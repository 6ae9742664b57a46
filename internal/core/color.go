package core

// Color is a foreground colour for a screen cell.
// The platform maps it to ANSI 256-colour codes.
type Color uint8

// Palette used by the board renderer. Tile colours walk it from low to
// high numbers, so the order matters.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// ANSI returns the 256-colour code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if c == ColorDefault || c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Bright reports whether c is drawn bold.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}

var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}
