package geomath

// Per-precision constants, selected on the instantiated float width. A
// named type whose underlying type is float32 or float64 falls through to
// the computed variants, which agree with the listed constants after
// rounding.

// Pi returns the value of pi to the best accuracy representable at the
// precision of T.
func Pi[T Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(3.1415926)
	default:
		return T(3.1415926535897932)
	}
}

// Epsilon returns the machine epsilon of T: the difference between 1 and
// the least value greater than 1 representable in T.
func Epsilon[T Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(1.1920928955078125e-07) // 2^-23
	case float64:
		return T(2.220446049250313e-16) // 2^-52
	default:
		eps := T(1)
		for T(1)+eps/2 > 1 {
			eps /= 2
		}
		return eps
	}
}
