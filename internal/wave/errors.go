package wave

import "errors"

// Validation errors for wave sources.
var (
	// ErrNonFinite indicates a NaN or infinite parameter.
	ErrNonFinite = errors.New("wave: value is NaN or Inf")

	// ErrWavelength indicates a wavelength that is zero or negative.
	ErrWavelength = errors.New("wave: wavelength must be positive")

	// ErrHeight indicates a negative peak height.
	ErrHeight = errors.New("wave: max height must not be negative")
)
