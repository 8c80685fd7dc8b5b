package pattern

import (
	"image/color"

	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/fractal"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/render"
)

// Sierpinski draws the leaves of the Sierpinski triangle as filled polygons.
type Sierpinski struct {
	leaves []geom.Triangle
	color  color.Color
}

// NewSierpinski builds the triangle described by cfg.Sierpinski, centered on the origin.
func NewSierpinski(cfg *config.Config) (*Sierpinski, error) {
	base := fractal.EquilateralTriangle(geom.Pt(0, 0), cfg.Sierpinski.Size)
	leaves, err := fractal.Sierpinski(base, cfg.Sierpinski.Depth)
	if err != nil {
		return nil, err
	}
	return &Sierpinski{leaves: leaves, color: cfg.ForegroundColor()}, nil
}

func (s *Sierpinski) Kind() config.Kind { return config.KindSierpinski }

func (s *Sierpinski) Update(dt float64) {}

// Leaves returns the cached triangles.
func (s *Sierpinski) Leaves() []geom.Triangle { return s.leaves }

func (s *Sierpinski) Frame(dst []render.Primitive) []render.Primitive {
	for i := range s.leaves {
		dst = append(dst, render.Primitive{
			Kind:      render.PrimitivePolygon,
			Points:    s.leaves[i][:],
			Color:     s.color,
			Transform: geom.Identity(),
			Index:     i,
		})
	}
	return dst
}
