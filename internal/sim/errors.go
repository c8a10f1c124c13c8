package sim

import (
	"errors"
	"fmt"
)

// ErrConfig indicates frame rate or frame count outside the usable range.
var ErrConfig = errors.New("sim: invalid loop config")

// FrameError wraps a render failure with the frame it happened on.
type FrameError struct {
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
