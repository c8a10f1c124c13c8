package render

import (
	"math"
	"strings"

	"github.com/san-kum/asciiwave/internal/wave"
)

const (
	FillGlyph  = '#'
	BlankGlyph = ' '
)

// Palette lists glyphs from empty to full.
type Palette []rune

// DefaultPalette is the ten-step grey ramp used by the line renderer.
var DefaultPalette = Palette(" .:-=+*#%@")

// Quantize maps a height onto a palette slot, saturating at the last one.
func (p Palette) Quantize(h float64) int {
	n := len(p)
	if n == 0 || !(h > 0) {
		return 0
	}
	scaled := math.Floor(float64(n) * h)
	if scaled >= float64(n-1) {
		return n - 1
	}
	return int(scaled)
}

// Line renders the field as one row of graded glyphs.
func Line(field *wave.HeightField, p Palette) string {
	var b strings.Builder
	b.Grow(len(field))
	for _, h := range field {
		b.WriteRune(p[p.Quantize(h)])
	}
	return b.String()
}

// Grid renders the field as a bar profile with len(p) rows, top row first.
// A cell is filled when the column's quantized height reaches its row.
func Grid(field *wave.HeightField, p Palette) []string {
	rows := len(p)
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(string(BlankGlyph), len(field)))
	}

	for i := 0; i < rows; i++ {
		for j, h := range field {
			idx := p.Quantize(h)
			if idx < i {
				idx = 0
			}
			if idx != 0 {
				cells[rows-1-i][j] = FillGlyph
			}
		}
	}

	out := make([]string, rows)
	for i, row := range cells {
		out[i] = string(row)
	}
	return out
}
