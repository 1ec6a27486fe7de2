package geomath

// GCD returns the greatest common divisor of u and v using the binary
// (Stein) algorithm. GCD(0, 0) is 0.
func GCD[T Unsigned](u, v T) T {
	if u == 0 {
		return v
	}
	if v == 0 {
		return u
	}

	// Strip the common factors of two; they multiply back in at the end.
	var k uint
	for u&1 == 0 && v&1 == 0 {
		u >>= 1
		v >>= 1
		k++
	}
	for u&1 == 0 {
		u >>= 1
	}
	for v&1 == 0 {
		v >>= 1
	}

	// Both odd from here on. Subtracting the smaller from the larger keeps
	// the result even, so each pass halves at least once.
	for u != v {
		if u > v {
			u, v = v, u
		}
		v -= u
		for v&1 == 0 {
			v >>= 1
		}
	}
	return u << k
}
