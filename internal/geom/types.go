// Package geom provides the 2-D value types and vector math shared by the
// fractal generators and the render backends.
package geom

// Point represents a 2D point in space. It doubles as a 2D vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Segment represents one drawable straight line
type Segment struct {
	A, B Point
}

// Triangle is a fixed three-point polygon
type Triangle [3]Point
