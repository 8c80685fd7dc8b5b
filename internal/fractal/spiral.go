package fractal

import "chosenoffset.com/fractals/internal/geom"

const (
	// SpiralShrink is the factor applied to the arm length after every step.
	SpiralShrink = 0.99
	// SpiralTurn is the angle added after every step, in radians.
	SpiralTurn = 0.25
	// SpiralMinLength stops the spiral once the arm is this short.
	SpiralMinLength = 1.0
)

// Spiral walks outward from origin, emitting one segment per step while the
// arm length stays above SpiralMinLength. An initial length in (0, 1] yields
// an empty spiral.
func Spiral(origin geom.Point, initialLength, initialAngle float64) ([]geom.Segment, error) {
	if !finite(origin.X, origin.Y, initialLength, initialAngle) {
		return nil, invalidf("spiral parameters must be finite")
	}
	if initialLength <= 0 {
		return nil, invalidf("spiral length %g must be positive", initialLength)
	}

	segs := []geom.Segment{}
	length, angle := initialLength, initialAngle
	for length > SpiralMinLength {
		next := origin.Add(geom.FromAngle(angle, length))
		segs = append(segs, geom.Segment{A: origin, B: next})

		origin = next
		length *= SpiralShrink
		angle += SpiralTurn
	}
	return segs, nil
}
