package fractal

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/fractals/internal/geom"
)

func TestSierpinskiCountAndArea(t *testing.T) {
	base := EquilateralTriangle(geom.Pt(400, 300), 500)
	area := base.Area()

	for depth := 0; depth <= 8; depth++ {
		leaves, err := Sierpinski(base, depth)
		require.NoError(t, err)
		require.Len(t, leaves, int(math.Pow(3, float64(depth))), "depth %d", depth)

		// Each split keeps three of the four half-scale corners.
		leafArea := area / math.Pow(4, float64(depth))
		for i, leaf := range leaves {
			if math.Abs(leaf.Area()-leafArea) > 1e-6*area {
				t.Fatalf("depth %d leaf %d: expected area %g, got %g", depth, i, leafArea, leaf.Area())
			}
		}
	}
}

func TestSierpinskiDepthZeroIsInput(t *testing.T) {
	base := EquilateralTriangle(geom.Pt(0, 0), 10)
	leaves, err := Sierpinski(base, 0)
	require.NoError(t, err)
	assert.Equal(t, []geom.Triangle{base}, leaves)
}

func TestSierpinskiOrder(t *testing.T) {
	base := geom.Triangle{geom.Pt(0, 8), geom.Pt(8, 8), geom.Pt(4, 0)}
	leaves, err := Sierpinski(base, 1)
	require.NoError(t, err)
	require.Len(t, leaves, 3)

	assert.Equal(t, geom.Triangle{geom.Pt(0, 8), geom.Pt(4, 8), geom.Pt(2, 4)}, leaves[0])
	assert.Equal(t, geom.Triangle{geom.Pt(4, 8), geom.Pt(8, 8), geom.Pt(6, 4)}, leaves[1])
	assert.Equal(t, geom.Triangle{geom.Pt(2, 4), geom.Pt(6, 4), geom.Pt(4, 0)}, leaves[2])
}

func TestSierpinskiDeterministic(t *testing.T) {
	base := EquilateralTriangle(geom.Pt(3, 7), 123)
	a, err := Sierpinski(base, 6)
	require.NoError(t, err)
	b, err := Sierpinski(base, 6)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSierpinskiRejectsBadDepth(t *testing.T) {
	base := EquilateralTriangle(geom.Pt(0, 0), 10)

	if _, err := Sierpinski(base, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Sierpinski(base, MaxSierpinskiDepth+1); !errors.Is(err, ErrDepthTooLarge) {
		t.Errorf("Expected ErrDepthTooLarge, got %v", err)
	}
}
