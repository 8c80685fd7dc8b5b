package fractal

import (
	"math"

	"chosenoffset.com/fractals/internal/geom"
)

// MaxKochDepth bounds GenerateKoch: 4^9 segments per edge.
const MaxKochDepth = 9

// Curve is one Koch edge as an ordered polyline of segments.
type Curve []geom.Segment

// Subdivide replaces every segment A→E with the four segments of the Koch
// bump A→B→C→D→E, where B and D split the segment in thirds and C is the apex
// of the equilateral triangle raised on B→D. The result is a new curve with
// exactly four times as many segments, in order.
func Subdivide(curve Curve) Curve {
	out := make(Curve, 0, len(curve)*4)
	for _, seg := range curve {
		a, e := seg.A, seg.B
		b := geom.Lerp(a, e, 1.0/3)
		d := geom.Lerp(a, e, 2.0/3)
		c := b.Add(b.Sub(a).Rotate(math.Pi / 3))

		out = append(out,
			geom.Segment{A: a, B: b},
			geom.Segment{A: b, B: c},
			geom.Segment{A: c, B: d},
			geom.Segment{A: d, B: e},
		)
	}
	return out
}

// GenerateKoch applies Subdivide depth times to the single-segment curve base.
func GenerateKoch(base geom.Segment, depth int) (Curve, error) {
	if err := checkDepth("koch", depth, MaxKochDepth); err != nil {
		return nil, err
	}
	if !finite(base.A.X, base.A.Y, base.B.X, base.B.Y) {
		return nil, invalidf("koch base edge must be finite")
	}

	curve := Curve{base}
	for i := 0; i < depth; i++ {
		curve = Subdivide(curve)
	}
	return curve, nil
}

// EdgePlacement positions the cached base curve as one side of the snowflake.
type EdgePlacement struct {
	Origin   geom.Point
	Rotation float64 // radians
}

// Transform returns the matrix that maps the base curve onto this edge.
func (e EdgePlacement) Transform() geom.Affine {
	return geom.Translate(e.Origin.X, e.Origin.Y).Multiply(geom.Rotate(e.Rotation))
}

// Snowflake is a Koch snowflake centered on the origin. It keeps a single
// curve for the base edge (0,0)→(size,0) and places it three times: bottom,
// right and left, rotated by 0, -120 and +120 degrees.
type Snowflake struct {
	size  float64
	depth int
	curve Curve
	edges [3]EdgePlacement
}

// NewSnowflake builds the snowflake geometry for the given side length and depth.
func NewSnowflake(size float64, depth int) (*Snowflake, error) {
	if !finite(size) || size <= 0 {
		return nil, invalidf("snowflake size %g must be positive", size)
	}
	curve, err := GenerateKoch(geom.Segment{B: geom.Pt(size, 0)}, depth)
	if err != nil {
		return nil, err
	}

	h := size * math.Sqrt(3) / 2
	left := geom.Pt(-size/2, h/3)
	right := geom.Pt(size/2, h/3)
	apex := geom.Pt(0, -2*h/3)

	return &Snowflake{
		size:  size,
		depth: depth,
		curve: curve,
		edges: [3]EdgePlacement{
			{Origin: left, Rotation: 0},
			{Origin: right, Rotation: geom.Radians(-120)},
			{Origin: apex, Rotation: geom.Radians(120)},
		},
	}, nil
}

// Size returns the side length of the base triangle.
func (s *Snowflake) Size() float64 { return s.size }

// Depth returns the current recursion depth.
func (s *Snowflake) Depth() int { return s.depth }

// SegmentsPerEdge returns 4^depth.
func (s *Snowflake) SegmentsPerEdge() int { return len(s.curve) }

// Edges returns the three edge placements in drawing order.
func (s *Snowflake) Edges() [3]EdgePlacement { return s.edges }

// Curve returns the base edge curve in edge-local coordinates.
func (s *Snowflake) Curve() Curve { return s.curve }

// Visible returns the first maxIndex segments of the base curve, clamped to
// [0, SegmentsPerEdge].
func (s *Snowflake) Visible(maxIndex int) Curve {
	maxIndex = max(0, min(maxIndex, len(s.curve)))
	return s.curve[:maxIndex]
}

// Grow subdivides the cached curve once more. The curve is replaced as a whole.
func (s *Snowflake) Grow() error {
	if err := checkDepth("koch", s.depth+1, MaxKochDepth); err != nil {
		return err
	}
	s.curve = Subdivide(s.curve)
	s.depth++
	return nil
}

// Segments returns the full outline in snowflake coordinates, edge by edge.
func (s *Snowflake) Segments() []geom.Segment {
	out := make([]geom.Segment, 0, 3*len(s.curve))
	for _, edge := range s.edges {
		xf := edge.Transform()
		for _, seg := range s.curve {
			out = append(out, geom.Segment{A: xf.Apply(seg.A), B: xf.Apply(seg.B)})
		}
	}
	return out
}
