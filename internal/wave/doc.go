// Package wave provides the physics behind the ASCII wave demo.
//
// Two pieces make up a frame:
//
//   - [Oscillator]: a point bouncing between 0 and 1 at constant speed
//   - [Accumulate]: splats a raised-cosine bump centred on a point into a
//     [HeightField], folding samples that fall off either edge back in
//
// # Boundaries
//
// [Advance] performs at most one reflection per step. When dt*|speed|
// exceeds 1 the position can still land outside [0, 1]; callers are
// expected to keep the step small.
//
// [ReflectIndex] mirrors indices at both ends of the field and clamps the
// result into range, so very wide waves pile up on the edge sample instead
// of writing out of bounds.
//
//	var field wave.HeightField
//	src := wave.Source{Oscillator: wave.Oscillator{Position: 0.5}, Wavelength: 0.8, MaxHeight: 0.5}
//	src.Splat(&field)
package wave
