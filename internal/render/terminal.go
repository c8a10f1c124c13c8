package render

import (
	"bufio"
	"io"
	"strings"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Terminal buffers escape sequences and text for one frame. Write errors
// are sticky and surface from Flush.
type Terminal struct {
	w *bufio.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: bufio.NewWriter(w)}
}

func (t *Terminal) Clear()      { t.w.WriteString(clearScreen) }
func (t *Terminal) HideCursor() { t.w.WriteString(hideCursor) }
func (t *Terminal) ShowCursor() { t.w.WriteString(showCursor) }

// Backspace moves the cursor n columns left.
func (t *Terminal) Backspace(n int) {
	if n > 0 {
		t.w.WriteString(strings.Repeat("\b", n))
	}
}

func (t *Terminal) Write(s string) { t.w.WriteString(s) }

func (t *Terminal) WriteLine(s string) {
	t.w.WriteString(s)
	t.w.WriteByte('\n')
}

func (t *Terminal) Flush() error { return t.w.Flush() }
