package geom

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Direction returns the vector from A to B
func (s Segment) Direction() Point {
	return s.B.Sub(s.A)
}

// Area returns the unsigned area of the triangle
func (t Triangle) Area() float64 {
	return math.Abs(t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))) / 2
}
