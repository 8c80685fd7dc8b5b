// Package noise provides the coherent rotation field that makes the tree sway.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"

	"chosenoffset.com/fractals/internal/geom"
)

// Field maps a 2D direction vector to a small rotation in degrees.
// It is a pure function of its seed, parameters and input: sampling the same
// vector twice returns the same value.
type Field struct {
	noise     opensimplex.Noise
	frequency float64
	amplitude float64
}

// New creates a field seeded once. Frequency scales the input vector before
// sampling; amplitude is the largest rotation returned, in degrees.
func New(seed int64, frequency, amplitude float64) *Field {
	return &Field{
		noise:     opensimplex.New(seed),
		frequency: frequency,
		amplitude: math.Abs(amplitude),
	}
}

// Rotation samples the field at dir and returns a rotation in degrees within
// [-amplitude, amplitude].
func (f *Field) Rotation(dir geom.Point) float64 {
	v := f.noise.Eval2(dir.X*f.frequency, dir.Y*f.frequency)
	// OpenSimplex output is nominally [-1, 1] but can overshoot slightly.
	v = math.Max(-1, math.Min(1, v))
	return v * f.amplitude
}
