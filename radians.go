package geomath

// Radians converts an angle from degrees to radians.
func Radians[T Float](deg T) T {
	return (deg * Pi[T]()) / T(180)
}

// Degrees converts an angle from radians to degrees.
func Degrees[T Float](rad T) T {
	return (rad * T(180)) / Pi[T]()
}
