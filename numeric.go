package geomath

// Number is the constraint satisfied by every element type the numeric
// containers in this package accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Float is the constraint for floating-point element and result types.
type Float interface {
	~float32 | ~float64
}

// Unsigned is the constraint for the unsigned integer routines.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
