package fractal

import (
	"math"

	"chosenoffset.com/fractals/internal/geom"
)

// MaxSierpinskiDepth bounds Sierpinski: 3^10 leaves.
const MaxSierpinskiDepth = 10

// Sierpinski splits t, read as (left, right, apex) with a horizontal base,
// into its bottom-left, bottom-right and top corner triangles, depth times.
// It returns the 3^depth leaves in depth-first order.
func Sierpinski(t geom.Triangle, depth int) ([]geom.Triangle, error) {
	if err := checkDepth("sierpinski", depth, MaxSierpinskiDepth); err != nil {
		return nil, err
	}
	for _, p := range t {
		if !finite(p.X, p.Y) {
			return nil, invalidf("sierpinski triangle must be finite")
		}
	}

	type item struct {
		tri   geom.Triangle
		level int
	}

	leaves := make([]geom.Triangle, 0, int(math.Pow(3, float64(depth))))
	stack := []item{{tri: t}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.level == depth {
			leaves = append(leaves, cur.tri)
			continue
		}

		bl, br, top := splitTriangle(cur.tri)
		// Pushed in reverse so bottom-left is expanded first.
		stack = append(stack,
			item{tri: top, level: cur.level + 1},
			item{tri: br, level: cur.level + 1},
			item{tri: bl, level: cur.level + 1},
		)
	}
	return leaves, nil
}

func splitTriangle(t geom.Triangle) (bottomLeft, bottomRight, top geom.Triangle) {
	p0, p1, p2 := t[0], t[1], t[2]
	baseMid := geom.Pt(p2.X, p0.Y)
	leftMid := geom.Midpoint(p0, p2)
	rightMid := geom.Midpoint(p1, p2)

	bottomLeft = geom.Triangle{p0, baseMid, leftMid}
	bottomRight = geom.Triangle{baseMid, p1, rightMid}
	top = geom.Triangle{leftMid, rightMid, p2}
	return
}

// EquilateralTriangle returns the (left, right, apex) triangle with the given
// side length whose centroid is center.
func EquilateralTriangle(center geom.Point, size float64) geom.Triangle {
	h := size * math.Sqrt(3) / 2
	return geom.Triangle{
		geom.Pt(center.X-size/2, center.Y+h/3),
		geom.Pt(center.X+size/2, center.Y+h/3),
		geom.Pt(center.X, center.Y-2*h/3),
	}
}
