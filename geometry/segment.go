package geometry

// Orientation returns the sign of the cross product (b-a)×(c-a):
// +1 for a counter-clockwise turn, -1 for clockwise, 0 for collinear.
func Orientation(a, b, c Point) int {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SegmentsCross reports whether segments p1p2 and q1q2 properly cross:
// each segment's endpoints lie strictly on opposite sides of the other.
// Touching at an endpoint, sharing an endpoint, or collinear overlap is not
// a crossing.
func SegmentsCross(p1, p2, q1, q2 Point) bool {
	o1 := Orientation(p1, p2, q1)
	o2 := Orientation(p1, p2, q2)
	o3 := Orientation(q1, q2, p1)
	o4 := Orientation(q1, q2, p2)

	return o1*o2 < 0 && o3*o4 < 0
}
