package fractal

import "chosenoffset.com/fractals/internal/geom"

const (
	// TreeSpread is the angle between a branch and each of its children, in degrees.
	TreeSpread = 30.0
	// TreeLengthShrink scales the length from parent to child.
	TreeLengthShrink = 0.66
	// TreeThicknessShrink scales the thickness from parent to child.
	TreeThicknessShrink = 0.8
	// TreeMinLength is the length a branch must exceed to have children.
	TreeMinLength = 2.0
	// MaxTreeDepth bounds the number of branching levels below the trunk.
	MaxTreeDepth = 16
)

// Branch is one limb of the tree. The tree structure is implicit in the
// order of the slice returned by Tree: children directly follow their parent.
type Branch struct {
	Start     geom.Point
	End       geom.Point
	Thickness float64
	// Direction is the unit direction the branch was generated with.
	Direction geom.Point
}

// Segment returns the branch as a drawable segment.
func (b Branch) Segment() geom.Segment {
	return geom.Segment{A: b.Start, B: b.End}
}

// TreeDepth returns how many levels of children a trunk of the given length
// grows. Lengths too large to count, including +Inf and NaN, report
// MaxTreeDepth+1.
func TreeDepth(length float64) int {
	if !finite(length) {
		return MaxTreeDepth + 1
	}
	n := 0
	for l := length; l > TreeMinLength; l *= TreeLengthShrink {
		n++
		if n > MaxTreeDepth {
			break
		}
	}
	return n
}

// Tree grows a binary tree from start along direction. Each branch longer than
// TreeMinLength spawns a left child (rotated -TreeSpread) and a right child
// (rotated +TreeSpread). Branches are returned depth-first, left before right.
func Tree(start, direction geom.Point, length, thickness float64) ([]Branch, error) {
	if !finite(start.X, start.Y, direction.X, direction.Y, length, thickness) {
		return nil, invalidf("tree parameters must be finite")
	}
	if length <= 0 || thickness <= 0 {
		return nil, invalidf("tree length %g and thickness %g must be positive", length, thickness)
	}
	if direction.Length() == 0 {
		return nil, invalidf("tree direction must be non-zero")
	}
	depth := TreeDepth(length)
	if err := checkDepth("tree", depth, MaxTreeDepth); err != nil {
		return nil, err
	}

	type item struct {
		start     geom.Point
		dir       geom.Point
		length    float64
		thickness float64
	}

	spread := geom.Radians(TreeSpread)
	branches := make([]Branch, 0, 1<<(depth+1)-1)
	stack := []item{{start: start, dir: direction.Normalize(), length: length, thickness: thickness}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		end := cur.start.Add(cur.dir.Mul(cur.length))
		branches = append(branches, Branch{
			Start:     cur.start,
			End:       end,
			Thickness: cur.thickness,
			Direction: cur.dir,
		})

		if cur.length <= TreeMinLength {
			continue
		}
		child := item{
			start:     end,
			length:    cur.length * TreeLengthShrink,
			thickness: cur.thickness * TreeThicknessShrink,
		}
		right, left := child, child
		right.dir = cur.dir.Rotate(spread)
		left.dir = cur.dir.Rotate(-spread)
		stack = append(stack, right, left)
	}
	return branches, nil
}
