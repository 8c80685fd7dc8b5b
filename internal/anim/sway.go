package anim

import (
	"math"

	"chosenoffset.com/fractals/internal/fractal"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/noise"
)

// Sway perturbs a tree skeleton with a noise rotation field every tick.
//
// Branches are visited in generation order. Each branch is rotated by the
// field sampled at its current direction, and the movement of its end point
// is added to a running offset that shifts this branch and every branch after
// it when drawn. The offset runs over the flat list, so a branch also inherits
// the movement of earlier siblings and their subtrees, not only its ancestors.
type Sway struct {
	branches []fractal.Branch
	field    *noise.Field
	maxSway  float64 // radians, 0 means unbounded
	frame    []geom.Segment
}

// NewSway copies branches into a new sway state. A nil field leaves the
// skeleton still. maxSwayDeg caps how far a branch may turn away from the
// direction it was generated with; zero disables the cap.
func NewSway(branches []fractal.Branch, field *noise.Field, maxSwayDeg float64) *Sway {
	s := &Sway{
		branches: append([]fractal.Branch(nil), branches...),
		field:    field,
		maxSway:  geom.Radians(math.Abs(maxSwayDeg)),
	}
	s.frame = make([]geom.Segment, len(s.branches))
	for i, b := range s.branches {
		s.frame[i] = b.Segment()
	}
	return s
}

// Branches returns the current skeleton. Start points never change; end
// points follow the accumulated rotation of each branch.
func (s *Sway) Branches() []fractal.Branch {
	return s.branches
}

// Segments returns the segments computed by the last Tick, one per branch,
// with the running offset applied. Before the first Tick it is the skeleton.
func (s *Sway) Segments() []geom.Segment {
	return s.frame
}

// Tick advances the sway by one frame.
func (s *Sway) Tick(dt float64) {
	s.frame = s.Step(s.frame[:0])
}

// Step rotates every branch once and appends the offset frame segments to dst.
func (s *Sway) Step(dst []geom.Segment) []geom.Segment {
	var offset geom.Point
	for i := range s.branches {
		b := &s.branches[i]

		dir := b.End.Sub(b.Start)
		if s.field != nil {
			rotated := dir.Rotate(geom.Radians(s.field.Rotation(dir)))
			rotated = s.clamp(rotated, b.Direction)
			end := b.Start.Add(rotated)
			offset = offset.Add(end.Sub(b.End))
			b.End = end
		}

		dst = append(dst, geom.Segment{A: b.Start.Add(offset), B: b.End.Add(offset)})
	}
	return dst
}

func (s *Sway) clamp(dir, rest geom.Point) geom.Point {
	if s.maxSway == 0 {
		return dir
	}
	dev := math.Remainder(dir.Angle()-rest.Angle(), 2*math.Pi)
	if math.Abs(dev) <= s.maxSway {
		return dir
	}
	return rest.Normalize().Rotate(math.Copysign(s.maxSway, dev)).Mul(dir.Length())
}
