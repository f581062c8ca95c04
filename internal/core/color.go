package core

// ColorIndex selects an entry of the fixed 4-color palette.
type ColorIndex uint8

// Palette slots used by the game.
const (
	ColorBackground ColorIndex = iota
	ColorPlayer
	ColorText
	ColorObstacle

	PaletteSize = 4
)

// Palette maps color indices to hex colors ("#RRGGBB").
type Palette [PaletteSize]string

// DefaultPalette is the Pico-8 subset the game was designed around.
var DefaultPalette = Palette{"#000000", "#FFFFFF", "#FF77A8", "#29ADFF"}

// Hex returns the hex color for an index. Out-of-range indices fall back to
// the background color.
func (p Palette) Hex(c ColorIndex) string {
	if int(c) >= len(p) {
		return p[ColorBackground]
	}
	return p[c]
}
