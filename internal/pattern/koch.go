package pattern

import (
	"image/color"

	"chosenoffset.com/fractals/internal/anim"
	"chosenoffset.com/fractals/internal/config"
	"chosenoffset.com/fractals/internal/fractal"
	"chosenoffset.com/fractals/internal/render"
)

// Koch draws a snowflake. The animated variant reveals one more segment of
// every edge per tick and, when configured, grows one level deeper each time
// the reveal completes.
type Koch struct {
	flake     *fractal.Snowflake
	reveal    *anim.Reveal // nil when static
	growTo    int
	rainbow   bool
	hues      []color.Color
	color     color.Color
	thickness float64
}

// NewKoch builds the snowflake described by cfg.Koch.
func NewKoch(cfg *config.Config, animated bool) (*Koch, error) {
	flake, err := fractal.NewSnowflake(cfg.Koch.Size, cfg.Koch.Depth)
	if err != nil {
		return nil, err
	}

	k := &Koch{
		flake:     flake,
		rainbow:   cfg.Koch.Rainbow,
		color:     cfg.ForegroundColor(),
		thickness: cfg.Koch.Thickness,
	}
	if animated {
		k.reveal = anim.NewReveal(flake.SegmentsPerEdge())
		k.growTo = cfg.Koch.GrowTo
	}
	k.buildHues()
	return k, nil
}

func (k *Koch) Kind() config.Kind {
	if k.reveal != nil {
		return config.KindKochAnimated
	}
	return config.KindKochStatic
}

// Snowflake returns the cached geometry.
func (k *Koch) Snowflake() *fractal.Snowflake { return k.flake }

// Reveal returns the reveal state, or nil for the static snowflake.
func (k *Koch) Reveal() *anim.Reveal { return k.reveal }

func (k *Koch) Update(dt float64) {
	if k.reveal == nil {
		return
	}
	// A finished level stays on screen for one tick before the next one starts.
	if k.reveal.Done() && k.flake.Depth() < k.growTo {
		if err := k.flake.Grow(); err == nil {
			k.reveal.Reset(k.flake.SegmentsPerEdge())
			k.buildHues()
			return
		}
		k.growTo = k.flake.Depth()
	}
	k.reveal.Tick(dt)
}

// Visible returns how many segments of each edge are drawn this frame.
func (k *Koch) Visible() int {
	if k.reveal == nil {
		return k.flake.SegmentsPerEdge()
	}
	return k.reveal.Index
}

func (k *Koch) Frame(dst []render.Primitive) []render.Primitive {
	curve := k.flake.Visible(k.Visible())
	for _, edge := range k.flake.Edges() {
		xf := edge.Transform()
		for i, seg := range curve {
			clr := k.color
			if k.rainbow {
				clr = k.hues[i]
			}
			dst = append(dst, render.Primitive{
				Kind:      render.PrimitiveSegment,
				Segment:   seg,
				Color:     clr,
				Thickness: k.thickness,
				Transform: xf,
				Index:     i,
			})
		}
	}
	return dst
}

// buildHues caches one color per segment index, spread over the color wheel.
func (k *Koch) buildHues() {
	if !k.rainbow {
		return
	}
	total := k.flake.SegmentsPerEdge()
	k.hues = make([]color.Color, total)
	for i := range k.hues {
		k.hues[i] = config.Hue(float64(i) / float64(total))
	}
}
