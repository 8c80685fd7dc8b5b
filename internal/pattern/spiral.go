package pattern

import (
	"image/color"

	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/fractal"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/render"
)

// Spiral draws the precomputed spiral. It has no animation.
type Spiral struct {
	segments  []geom.Segment
	color     color.Color
	thickness float64
}

// NewSpiral builds the spiral described by cfg.Spiral.
func NewSpiral(cfg *config.Config) (*Spiral, error) {
	segs, err := fractal.Spiral(offsetPoint(cfg.Spiral.Origin), cfg.Spiral.Length, cfg.Spiral.Angle)
	if err != nil {
		return nil, err
	}
	return &Spiral{
		segments:  segs,
		color:     cfg.ForegroundColor(),
		thickness: cfg.Spiral.Thickness,
	}, nil
}

func (s *Spiral) Kind() config.Kind { return config.KindSpiral }

func (s *Spiral) Update(dt float64) {}

// Segments returns the cached spiral.
func (s *Spiral) Segments() []geom.Segment { return s.segments }

func (s *Spiral) Frame(dst []render.Primitive) []render.Primitive {
	for i, seg := range s.segments {
		dst = append(dst, render.Primitive{
			Kind:      render.PrimitiveSegment,
			Segment:   seg,
			Color:     s.color,
			Thickness: s.thickness,
			Transform: geom.Identity(),
			Index:     i,
		})
	}
	return dst
}
