// Package render turns a height field into terminal text.
//
// [Line] and [Grid] are pure quantizers. [LineRenderer] and [GridRenderer]
// push their output through a [Terminal], which owns the escape codes and
// buffering so the quantizers can be tested against plain strings.
package render
