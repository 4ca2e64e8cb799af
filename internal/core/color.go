package core

// Color is a foreground color for a screen cell.
// The platform maps it to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightWhite
)

var ansiCodes = map[Color]string{
	ColorRed:         "196",
	ColorGreen:       "46",
	ColorYellow:      "226",
	ColorBlue:        "33",
	ColorMagenta:     "201",
	ColorCyan:        "51",
	ColorWhite:       "252",
	ColorOrange:      "208",
	ColorGray:        "244",
	ColorBrightWhite: "231",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	return ansiCodes[c]
}
