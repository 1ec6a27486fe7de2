package geomath

// CloseTo reports whether x and y are within epsilon of each other,
// that is |x-y| <= epsilon. The difference is taken larger-minus-smaller
// so the comparison is exact for unsigned types as well.
func CloseTo[T Number](x, y, epsilon T) bool {
	diff := x - y
	if y > x {
		diff = y - x
	}
	return diff <= epsilon
}

// CloseEnough reports whether x and y are within the machine epsilon
// of T of each other.
func CloseEnough[T Float](x, y T) bool {
	return CloseTo(x, y, Epsilon[T]())
}
