// Package viz provides a styled live view of the wave scene.
//
// The view runs as a Bubble Tea program ticking at the configured frame
// rate and shows:
//
//   - the bar profile and graded strip from package render
//   - an asciigraph trace of both oscillator positions
//   - a frame counter
//
// It reads no keyboard input. The program ends after the configured number
// of frames or when its context is cancelled.
package viz
