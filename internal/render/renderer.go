package render

import (
	"fmt"
	"io"

	"github.com/san-kum/asciiwave/internal/wave"
)

const (
	ModeGrid = "2d"
	ModeLine = "line"
)

// Renderer draws one frame of the height field.
type Renderer interface {
	Render(field *wave.HeightField) error
	// Finish ends the animation with a newline and leaves the terminal usable.
	Finish() error
}

// CheckMode reports whether mode names a known renderer.
func CheckMode(mode string) error {
	switch mode {
	case ModeGrid, ModeLine, "":
		return nil
	}
	return fmt.Errorf("unknown render mode: %s (available: %s, %s)", mode, ModeGrid, ModeLine)
}

// New returns the renderer for mode writing to w. An empty mode selects
// the grid.
func New(mode string, w io.Writer, p Palette) (Renderer, error) {
	if err := CheckMode(mode); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		p = DefaultPalette
	}
	term := NewTerminal(w)
	if mode == ModeLine {
		return &LineRenderer{term: term, palette: p}, nil
	}
	return &GridRenderer{term: term, palette: p}, nil
}

// LineRenderer overwrites a single console line in place.
type LineRenderer struct {
	term    *Terminal
	palette Palette
}

func (r *LineRenderer) Render(field *wave.HeightField) error {
	r.term.Backspace(len(field))
	r.term.Write(Line(field, r.palette))
	return r.term.Flush()
}

func (r *LineRenderer) Finish() error {
	r.term.WriteLine("")
	return r.term.Flush()
}

// GridRenderer repaints the whole screen with a bar profile each frame.
type GridRenderer struct {
	term    *Terminal
	palette Palette
}

func (r *GridRenderer) Render(field *wave.HeightField) error {
	r.term.Clear()
	r.term.HideCursor()
	for _, row := range Grid(field, r.palette) {
		r.term.WriteLine(row)
	}
	return r.term.Flush()
}

func (r *GridRenderer) Finish() error {
	r.term.WriteLine("")
	r.term.ShowCursor()
	return r.term.Flush()
}
