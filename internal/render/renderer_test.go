package render

import (
	"image/color"
	"testing"

	"chosenoffset.com/fractals/internal/geom"
)

type recordingCanvas struct {
	segments []geom.Segment
	polygons [][]geom.Point
}

func (c *recordingCanvas) Size() (int, int)      { return 100, 100 }
func (c *recordingCanvas) Clear(clr color.Color) {}

func (c *recordingCanvas) DrawSegment(clr color.Color, thickness float64, from, to geom.Point, xf geom.Affine) {
	c.segments = append(c.segments, geom.Segment{A: xf.Apply(from), B: xf.Apply(to)})
}

func (c *recordingCanvas) DrawPolygon(clr color.Color, points []geom.Point, xf geom.Affine) {
	var out []geom.Point
	for _, p := range points {
		out = append(out, xf.Apply(p))
	}
	c.polygons = append(c.polygons, out)
}

func TestDrawComposesTransforms(t *testing.T) {
	prims := []Primitive{
		{
			Kind:      PrimitiveSegment,
			Segment:   geom.Segment{A: geom.Pt(0, 0), B: geom.Pt(1, 0)},
			Color:     color.Black,
			Thickness: 1,
			Transform: geom.Translate(5, 0),
		},
		{
			Kind:      PrimitivePolygon,
			Points:    []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)},
			Color:     color.Black,
			Transform: geom.Identity(),
		},
	}

	var c recordingCanvas
	Draw(&c, geom.Translate(50, 50), prims)

	if len(c.segments) != 1 || len(c.polygons) != 1 {
		t.Fatalf("Expected 1 segment and 1 polygon, got %d and %d", len(c.segments), len(c.polygons))
	}
	if got := c.segments[0]; got.A != geom.Pt(55, 50) || got.B != geom.Pt(56, 50) {
		t.Errorf("Expected segment (55,50)-(56,50), got %v", got)
	}
	if got := c.polygons[0][2]; got != geom.Pt(50, 51) {
		t.Errorf("Expected third polygon point (50,51), got %v", got)
	}
}
