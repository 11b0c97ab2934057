package lanes

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// defaultHex is the five-color lane palette.
var defaultHex = []string{
	"#0099CC", // blue
	"#9933CC", // purple
	"#669900", // green
	"#FF8800", // orange
	"#CC0000", // red
}

var defaultPalette = mustPalette(defaultHex...)

// Palette is a fixed, non-empty list of lane colors.
type Palette struct {
	colors []colorful.Color
}

// DefaultPalette returns the five-color default palette.
func DefaultPalette() Palette { return defaultPalette }

// NewPalette parses hex colors ("#rrggbb" or "#rgb") into a palette.
func NewPalette(hex ...string) (Palette, error) {
	if len(hex) == 0 {
		return Palette{}, fmt.Errorf("palette needs at least one color")
	}
	colors := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette color %d: %w", i, err)
		}
		colors[i] = c
	}
	return Palette{colors: colors}, nil
}

func mustPalette(hex ...string) Palette {
	p, err := NewPalette(hex...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of colors. The zero Palette behaves as the default.
func (p Palette) Len() int { return len(p.resolved().colors) }

// Color returns the color of lane: colors[lane mod Len()].
//
// Negative lanes are folded onto the non-negative residue, so lane -1 has
// the color of lane Len()-1. Documents reject negative lanes before they
// reach the renderer; the folding only keeps Color total.
func (p Palette) Color(lane int) colorful.Color {
	colors := p.resolved().colors
	n := len(colors)
	i := lane % n
	if i < 0 {
		i += n
	}
	return colors[i]
}

// Colors returns a copy of the palette colors.
func (p Palette) Colors() []colorful.Color {
	return append([]colorful.Color(nil), p.resolved().colors...)
}

// Hex returns the palette colors as lowercase "#rrggbb" strings.
func (p Palette) Hex() []string {
	colors := p.resolved().colors
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

func (p Palette) resolved() Palette {
	if len(p.colors) == 0 {
		return defaultPalette
	}
	return p
}
