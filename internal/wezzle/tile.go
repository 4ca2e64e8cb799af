package wezzle

import "github.com/vovakirdan/tui-wezzle/internal/core"

// TileType distinguishes ordinary tiles from multipliers and items.
type TileType int

const (
	TileNormal TileType = iota
	TileX2
	TileX3
	TileX4
	TileRocket // clears its row
	TileBomb   // clears the surrounding 3x3 area
	TileStar   // clears every tile of its color
)

var tileTypeNames = [...]string{"normal", "x2", "x3", "x4", "rocket", "bomb", "star"}

func (t TileType) String() string {
	if t < 0 || int(t) >= len(tileTypeNames) {
		return "unknown"
	}
	return tileTypeNames[t]
}

// IsMultiplier reports whether clearing the tile multiplies line score.
func (t TileType) IsMultiplier() bool {
	return t >= TileX2 && t <= TileX4
}

// IsItem reports whether clearing the tile triggers an area effect.
func (t TileType) IsItem() bool {
	return t >= TileRocket && t <= TileStar
}

// Multiplier returns the score factor of the tile type.
func (t TileType) Multiplier() int {
	switch t {
	case TileX2:
		return 2
	case TileX3:
		return 3
	case TileX4:
		return 4
	default:
		return 1
	}
}

// TileColor is a palette entry. Only the first NumberOfColors are in play.
type TileColor int

const (
	ColorRed TileColor = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorCyan
	ColorOrange
)

const colorLetters = "RGYBPCO"

// Letter returns the single-letter code used in board dumps.
func (c TileColor) Letter() byte {
	if c < 0 || int(c) >= len(colorLetters) {
		return '?'
	}
	return colorLetters[c]
}

// Screen returns the terminal color of the tile color.
func (c TileColor) Screen() core.Color {
	switch c {
	case ColorRed:
		return core.ColorRed
	case ColorGreen:
		return core.ColorGreen
	case ColorYellow:
		return core.ColorYellow
	case ColorBlue:
		return core.ColorBlue
	case ColorPurple:
		return core.ColorMagenta
	case ColorCyan:
		return core.ColorCyan
	case ColorOrange:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// Tile is a single piece on the board. Tiles are owned by the board;
// an animation may hold a pointer after the tile was removed.
type Tile struct {
	id    uint64
	Type  TileType
	Color TileColor

	// Render-only state driven by animations.
	offsetX, offsetY int // thousandths of a cell
	scale            int // 0..1000
}

// ID returns the unique tile identifier within a board.
func (t *Tile) ID() uint64 {
	return t.id
}

// Offset returns the in-flight displacement in thousandths of a cell.
func (t *Tile) Offset() (dx, dy int) {
	return t.offsetX, t.offsetY
}

// Scale returns the zoom factor in thousandths.
func (t *Tile) Scale() int {
	return t.scale
}
