package wave

import "math"

// FieldSize is the number of horizontal samples in a HeightField.
const FieldSize = 80

// HeightField holds one frame of terrain heights, index 0 on the left.
type HeightField [FieldSize]float64

// Reset zeroes every sample.
func (f *HeightField) Reset() {
	for i := range f {
		f[i] = 0
	}
}

// Max returns the first index holding the largest height.
func (f *HeightField) Max() (int, float64) {
	idx, best := 0, f[0]
	for i := 1; i < len(f); i++ {
		if f[i] > best {
			idx, best = i, f[i]
		}
	}
	return idx, best
}

// ReflectIndex maps i onto [0, n) by mirroring it at both edges.
// Indices more than one reflection away are clamped to the nearest edge.
func ReflectIndex(i, n int) int {
	switch {
	case i < 0:
		i = -i + 1
	case i >= n:
		i = 2*n - i - 1
	}
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// Accumulate adds a raised-cosine bump of the given wavelength and peak
// height, centred on x, to field. The bump spans a quarter wavelength on
// each side of x and is zero beyond it.
func Accumulate(x, wavelength, maxHeight float64, field *HeightField) {
	n := len(field)
	quarter := 0.25 * wavelength
	if !(quarter > 0) || math.IsInf(quarter, 0) || math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	start := int(math.Floor((x - quarter) * float64(n)))
	end := int(math.Floor((x + quarter) * float64(n)))

	for i := start; i < end; i++ {
		distance := math.Abs((float64(i)+0.5)/float64(n) - x)
		height := maxHeight * 0.5 * (math.Cos(math.Min(distance*math.Pi/quarter, math.Pi)) + 1.0)
		field[ReflectIndex(i, n)] += height
	}
}
