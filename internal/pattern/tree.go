package pattern

import (
	"image/color"

	"chosenoffset.com/fractals/internal/anim"
	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/fractal"
	"chosenoffset.com/fractals/internal/geom"
	"chosenoffset.com/fractals/internal/noise"
	"chosenoffset.com/fractals/internal/render"
)

// Tree draws the branching tree. The animated variant sways in a noise field.
type Tree struct {
	branches []fractal.Branch
	sway     *anim.Sway // nil when static
	color    color.Color
}

// NewTree grows the tree described by cfg.Tree upward from its origin.
func NewTree(cfg *config.Config, animated bool) (*Tree, error) {
	branches, err := fractal.Tree(offsetPoint(cfg.Tree.Origin), geom.Pt(0, -1), cfg.Tree.Length, cfg.Tree.Thickness)
	if err != nil {
		return nil, err
	}

	t := &Tree{branches: branches, color: cfg.ForegroundColor()}
	if animated {
		var field *noise.Field
		if n := cfg.Tree.Noise; n.Enabled {
			field = noise.New(n.Seed, n.Frequency, n.Amplitude)
		}
		t.sway = anim.NewSway(branches, field, cfg.Tree.Noise.MaxSway)
	}
	return t, nil
}

func (t *Tree) Kind() config.Kind {
	if t.sway != nil {
		return config.KindTreeAnimated
	}
	return config.KindTreeStatic
}

// Branches returns the static skeleton.
func (t *Tree) Branches() []fractal.Branch { return t.branches }

func (t *Tree) Update(dt float64) {
	if t.sway != nil {
		t.sway.Tick(dt)
	}
}

func (t *Tree) Frame(dst []render.Primitive) []render.Primitive {
	if t.sway == nil {
		for i, b := range t.branches {
			dst = append(dst, t.primitive(i, b.Segment(), b.Thickness))
		}
		return dst
	}

	segs := t.sway.Segments()
	for i, b := range t.sway.Branches() {
		dst = append(dst, t.primitive(i, segs[i], b.Thickness))
	}
	return dst
}

func (t *Tree) primitive(i int, seg geom.Segment, thickness float64) render.Primitive {
	return render.Primitive{
		Kind:      render.PrimitiveSegment,
		Segment:   seg,
		Color:     t.color,
		Thickness: thickness,
		Transform: geom.Identity(),
		Index:     i,
	}
}
