package fractal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/fractals/internal/geom"
)

func TestSpiralShortArmIsEmpty(t *testing.T) {
	for _, length := range []float64{0.01, 0.5, 1.0} {
		segs, err := Spiral(geom.Pt(0, 0), length, 0)
		require.NoError(t, err)
		assert.Empty(t, segs, "length %g", length)
	}
}

func TestSpiralSegmentCount(t *testing.T) {
	segs, err := Spiral(geom.Pt(400, 300), 75.0, 0)
	require.NoError(t, err)

	// 75 * 0.99^k stays above 1 for k = 0..429.
	assert.Len(t, segs, 430)

	last := segs[len(segs)-1]
	assert.Greater(t, last.Length(), 1.0)
	assert.LessOrEqual(t, last.Length()*SpiralShrink, 1.0+1e-9)
}

func TestSpiralIsConnected(t *testing.T) {
	origin := geom.Pt(10, 20)
	segs, err := Spiral(origin, 40, 1.5)
	require.NoError(t, err)
	require.NotEmpty(t, segs)

	assert.Equal(t, origin, segs[0].A)
	assert.InDelta(t, 40.0, segs[0].Length(), 1e-9)
	assert.InDelta(t, 1.5, segs[0].Direction().Angle(), 1e-9)
	for i := 1; i < len(segs); i++ {
		if segs[i].A != segs[i-1].B {
			t.Fatalf("Segment %d does not start where segment %d ends", i, i-1)
		}
		assert.InDelta(t, segs[i-1].Length()*SpiralShrink, segs[i].Length(), 1e-9)
	}
}

func TestSpiralDeterministic(t *testing.T) {
	a, err := Spiral(geom.Pt(1, 2), 75, 0.3)
	require.NoError(t, err)
	b, err := Spiral(geom.Pt(1, 2), 75, 0.3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSpiralRejectsInvalidLength(t *testing.T) {
	for _, length := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		_, err := Spiral(geom.Pt(0, 0), length, 0)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Expected ErrInvalidArgument for length %g, got %v", length, err)
		}
	}
}
