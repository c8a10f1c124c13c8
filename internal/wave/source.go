package wave

import (
	"fmt"
	"math"
)

// Source is an oscillator together with the shape of the wave it drags.
type Source struct {
	Oscillator
	Wavelength float64
	MaxHeight  float64
}

// Splat accumulates the source's wave at its current position.
func (s *Source) Splat(field *HeightField) {
	Accumulate(s.Position, s.Wavelength, s.MaxHeight, field)
}

// Validate rejects sources that would produce NaN or negative heights.
func (s Source) Validate() error {
	for name, v := range map[string]float64{
		"position":   s.Position,
		"speed":      s.Speed,
		"wavelength": s.Wavelength,
		"max height": s.MaxHeight,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %w", name, ErrNonFinite)
		}
	}
	if s.Wavelength <= 0 {
		return fmt.Errorf("%w, got %g", ErrWavelength, s.Wavelength)
	}
	if s.MaxHeight < 0 {
		return fmt.Errorf("%w, got %g", ErrHeight, s.MaxHeight)
	}
	return nil
}
