package fractal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/fractals/internal/geom"
)

type refBranch struct {
	Branch
	parent int
}

// growReference is the recursive form of Tree, recording each branch's parent.
func growReference(out *[]refBranch, parent int, start, dir geom.Point, length, thickness float64) {
	end := start.Add(dir.Mul(length))
	*out = append(*out, refBranch{
		Branch: Branch{Start: start, End: end, Thickness: thickness, Direction: dir},
		parent: parent,
	})
	self := len(*out) - 1
	if length <= TreeMinLength {
		return
	}
	spread := geom.Radians(TreeSpread)
	growReference(out, self, end, dir.Rotate(-spread), length*TreeLengthShrink, thickness*TreeThicknessShrink)
	growReference(out, self, end, dir.Rotate(spread), length*TreeLengthShrink, thickness*TreeThicknessShrink)
}

func TestTreeBranchCount(t *testing.T) {
	branches, err := Tree(geom.Pt(400, 600), geom.Pt(0, -1), 200, 5)
	require.NoError(t, err)

	depth := TreeDepth(200)
	assert.Equal(t, 12, depth)
	assert.Len(t, branches, 1<<(depth+1)-1)
	assert.Len(t, branches, 8191)
}

func TestTreeDepthIsBounded(t *testing.T) {
	assert.Equal(t, 0, TreeDepth(TreeMinLength))
	assert.Equal(t, MaxTreeDepth+1, TreeDepth(math.Inf(1)))
	assert.Equal(t, MaxTreeDepth+1, TreeDepth(math.NaN()))
	assert.Equal(t, MaxTreeDepth+1, TreeDepth(math.MaxFloat64))

	_, err := Tree(geom.Pt(0, 0), geom.Pt(0, -1), 1e9, 1)
	assert.ErrorIs(t, err, ErrDepthTooLarge)
}

func TestTreeMatchesRecursiveOrder(t *testing.T) {
	start := geom.Pt(0, 0)
	dir := geom.Pt(0, -1)
	branches, err := Tree(start, dir, 60, 4)
	require.NoError(t, err)

	var ref []refBranch
	growReference(&ref, -1, start, dir, 60, 4)
	require.Len(t, branches, len(ref))

	for i, r := range ref {
		assert.Equal(t, r.Branch, branches[i], "branch %d", i)
		if r.parent < 0 {
			continue
		}
		if branches[i].Start != branches[r.parent].End {
			t.Fatalf("Branch %d starts at %v, parent %d ends at %v", i, branches[i].Start, r.parent, branches[r.parent].End)
		}
	}
}

func TestTreeChildrenFollowParent(t *testing.T) {
	branches, err := Tree(geom.Pt(0, 0), geom.Pt(0, -1), 20, 3)
	require.NoError(t, err)

	trunk := branches[0]
	left := branches[1]
	assert.Equal(t, trunk.End, left.Start)
	assert.InDelta(t, trunk.Thickness*TreeThicknessShrink, left.Thickness, 1e-12)
	assert.InDelta(t, 20*TreeLengthShrink, left.Segment().Length(), 1e-9)

	// The left child leans toward -x when growing up the screen.
	assert.Less(t, left.End.X, left.Start.X)
}

func TestTreeNormalizesDirection(t *testing.T) {
	branches, err := Tree(geom.Pt(0, 0), geom.Pt(0, -10), 1.5, 1)
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.InDelta(t, 1.5, branches[0].Segment().Length(), 1e-12)
	assert.InDelta(t, 1.0, branches[0].Direction.Length(), 1e-12)
}

func TestTreeDeterministic(t *testing.T) {
	a, err := Tree(geom.Pt(1, 1), geom.Pt(0.3, -1), 120, 4)
	require.NoError(t, err)
	b, err := Tree(geom.Pt(1, 1), geom.Pt(0.3, -1), 120, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTreeRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		dir       geom.Point
		length    float64
		thickness float64
	}{
		{"zero length", geom.Pt(0, -1), 0, 1},
		{"negative thickness", geom.Pt(0, -1), 10, -1},
		{"zero direction", geom.Pt(0, 0), 10, 1},
		{"nan length", geom.Pt(0, -1), math.NaN(), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tree(geom.Pt(0, 0), tc.dir, tc.length, tc.thickness)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	_, err := Tree(geom.Pt(0, 0), geom.Pt(0, -1), 1e9, 1)
	assert.ErrorIs(t, err, ErrDepthTooLarge)
}
