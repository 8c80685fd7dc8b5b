// Package pattern turns a configuration into a drawable, animated pattern.
//
// Each pattern builds its geometry once when it is created. Update advances
// its animation by one tick and Frame appends the primitives of the current
// frame in pattern coordinates, whose origin is the center of the viewport.
package pattern

import (
	"fmt"

	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/render"
)

// Pattern is one of Spiral, Koch, Sierpinski or Tree.
type Pattern interface {
	// Kind returns the configuration choice the pattern was built for.
	Kind() config.Kind

	// Update advances the animation by one tick of dt seconds.
	Update(dt float64)

	// Frame appends the primitives of the current frame to dst.
	Frame(dst []render.Primitive) []render.Primitive
}

// New builds the pattern selected by kind from cfg.
func New(cfg *config.Config, kind config.Kind) (Pattern, error) {
	var (
		p   Pattern
		err error
	)
	switch kind {
	case config.KindSpiral:
		p, err = NewSpiral(cfg)
	case config.KindKochStatic, config.KindKochAnimated:
		p, err = NewKoch(cfg, kind == config.KindKochAnimated)
	case config.KindSierpinski:
		p, err = NewSierpinski(cfg)
	case config.KindTreeStatic, config.KindTreeAnimated:
		p, err = NewTree(cfg, kind == config.KindTreeAnimated)
	default:
		return nil, fmt.Errorf("unknown pattern kind %v", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s: %w", kind, err)
	}
	return p, nil
}

func offsetPoint(o config.Offset) geom.Point {
	return geom.Pt(o.X, o.Y)
}
