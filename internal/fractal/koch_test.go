package fractal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/fractals/internal/geom"
)

func TestSubdivideBump(t *testing.T) {
	const l = 3.0
	out := Subdivide(Curve{{A: geom.Pt(0, 0), B: geom.Pt(l, 0)}})
	require.Len(t, out, 4)

	for i, seg := range out {
		assert.InDelta(t, l/3, seg.Length(), 1e-12, "segment %d", i)
	}

	a, b, c, d, e := out[0].A, out[1].A, out[2].A, out[3].A, out[3].B
	assert.Equal(t, geom.Pt(0, 0), a)
	assert.Equal(t, geom.Pt(l, 0), e)
	assert.Equal(t, out[0].B, b)
	assert.Equal(t, out[1].B, c)
	assert.Equal(t, out[2].B, d)

	assert.InDelta(t, l/3, geom.Distance(b, c), 1e-12)
	assert.InDelta(t, l/3, geom.Distance(c, d), 1e-12)

	bc := c.Sub(b)
	bd := d.Sub(b)
	angle := math.Acos(bc.Dot(bd) / (bc.Length() * bd.Length()))
	assert.InDelta(t, math.Pi/3, angle, 1e-12)
}

func TestGenerateKochCountAndLength(t *testing.T) {
	base := geom.Segment{A: geom.Pt(-50, 10), B: geom.Pt(250, 40)}
	for depth := 0; depth <= 6; depth++ {
		curve, err := GenerateKoch(base, depth)
		require.NoError(t, err)

		assert.Len(t, curve, int(math.Pow(4, float64(depth))), "depth %d", depth)
		want := base.Length() * math.Pow(4.0/3, float64(depth))
		assert.InEpsilon(t, want, curveLength(curve), 1e-9, "depth %d", depth)

		assert.Equal(t, base.A, curve[0].A)
		assert.InDelta(t, base.B.X, curve[len(curve)-1].B.X, 1e-9)
		assert.InDelta(t, base.B.Y, curve[len(curve)-1].B.Y, 1e-9)
	}
}

func TestGenerateKochDeterministic(t *testing.T) {
	base := geom.Segment{B: geom.Pt(300, 0)}
	a, err := GenerateKoch(base, 5)
	require.NoError(t, err)
	b, err := GenerateKoch(base, 5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateKochRejectsBadDepth(t *testing.T) {
	base := geom.Segment{B: geom.Pt(1, 0)}

	_, err := GenerateKoch(base, -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)

	_, err = GenerateKoch(base, MaxKochDepth+1)
	assert.True(t, errors.Is(err, ErrDepthTooLarge), "got %v", err)
}

func TestSnowflakeIsClosed(t *testing.T) {
	flake, err := NewSnowflake(300, 3)
	require.NoError(t, err)
	assert.Equal(t, 64, flake.SegmentsPerEdge())

	segs := flake.Segments()
	require.Len(t, segs, 3*64)
	for i := range segs {
		next := segs[(i+1)%len(segs)]
		assert.InDelta(t, segs[i].B.X, next.A.X, 1e-9, "segment %d", i)
		assert.InDelta(t, segs[i].B.Y, next.A.Y, 1e-9, "segment %d", i)
	}
}

func TestSnowflakeBumpsPointOutward(t *testing.T) {
	flake, err := NewSnowflake(300, 1)
	require.NoError(t, err)

	// Every bump apex lies outside the base triangle.
	tri := EquilateralTriangle(geom.Pt(0, 0), 300)
	segs := flake.Segments()
	for edge := 0; edge < 3; edge++ {
		apex := segs[edge*4+1].B
		assert.False(t, insideTriangle(tri, apex), "edge %d apex %v", edge, apex)
	}
}

func curveLength(curve Curve) float64 {
	total := 0.0
	for _, seg := range curve {
		total += seg.Length()
	}
	return total
}

// insideTriangle reports whether p lies strictly on the same side of all three edges.
func insideTriangle(t geom.Triangle, p geom.Point) bool {
	d0 := t[1].Sub(t[0]).Cross(p.Sub(t[0]))
	d1 := t[2].Sub(t[1]).Cross(p.Sub(t[1]))
	d2 := t[0].Sub(t[2]).Cross(p.Sub(t[2]))
	return (d0 > 0 && d1 > 0 && d2 > 0) || (d0 < 0 && d1 < 0 && d2 < 0)
}

func TestSnowflakeVisibleClamps(t *testing.T) {
	flake, err := NewSnowflake(100, 2)
	require.NoError(t, err)

	assert.Len(t, flake.Visible(-3), 0)
	assert.Len(t, flake.Visible(5), 5)
	assert.Len(t, flake.Visible(1000), 16)
	assert.Equal(t, flake.Curve()[:5], flake.Visible(5))
}

func TestSnowflakeGrow(t *testing.T) {
	flake, err := NewSnowflake(100, 2)
	require.NoError(t, err)

	want, err := GenerateKoch(geom.Segment{B: geom.Pt(100, 0)}, 3)
	require.NoError(t, err)

	require.NoError(t, flake.Grow())
	assert.Equal(t, 3, flake.Depth())
	assert.Equal(t, want, flake.Curve())
}

func TestSnowflakeRejectsBadSize(t *testing.T) {
	_, err := NewSnowflake(0, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
