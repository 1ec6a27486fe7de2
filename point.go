package geomath

import "fmt"

// Point is a fixed-dimension coordinate tuple over an owned dense store.
// The element type is assumed to be numeric; computations on points are
// typically carried out in a higher-precision result type chosen at the
// call site.
//
// Like Dense, a copied Point shares its coordinate buffer; use Clone for
// an independent copy.
type Point[T Number] struct {
	coords Dense[T]
}

// NewPoint returns the all-zero point of the given dimension.
func NewPoint[T Number](dim int) Point[T] {
	return Point[T]{coords: NewDense[T](dim)}
}

// Origin returns the origin (0,0,...,0) of the given dimension. The result
// is freshly allocated, so callers cannot corrupt a shared constant.
func Origin[T Number](dim int) Point[T] {
	return NewPoint[T](dim)
}

// PointOf returns a point holding a copy of the given coordinates. The
// number of arguments fixes the dimension.
func PointOf[T Number](coords ...T) Point[T] {
	return Point[T]{coords: DenseOf(coords...)}
}

// PointFrom returns a point of the given dimension reading exactly dim
// values from buf. The buffer must be non-nil and hold at least dim values.
func PointFrom[T Number](buf []T, dim int) (Point[T], error) {
	if buf == nil {
		return Point[T]{}, fmt.Errorf("%w: nil coordinate buffer", ErrInvalidArgument)
	}
	coords, err := DenseFrom(buf, dim)
	if err != nil {
		return Point[T]{}, err
	}
	return Point[T]{coords: coords}, nil
}

// Dim returns the dimension of the point.
func (p Point[T]) Dim() int { return p.coords.Len() }

// At returns coordinate i. i must be in [0, Dim()).
func (p Point[T]) At(i int) T { return p.coords.At(i) }

// Set stores x as coordinate i.
func (p Point[T]) Set(i int, x T) { p.coords.Set(i, x) }

// Vector exposes the coordinates of p through the Vector interface.
// Mutations through the view are visible in the point.
func (p Point[T]) Vector() Vector[T] { return p.coords }

// Equal reports whether p and q have identical coordinates. Points of
// different dimensions are never equal.
func (p Point[T]) Equal(q Point[T]) bool {
	return Equal[T](p.coords, q.coords)
}

// Clone returns a point with its own copy of the coordinates.
func (p Point[T]) Clone() Point[T] {
	return Point[T]{coords: p.coords.Clone()}
}

// String renders the point as "(c0,c1,...,cN-1)".
func (p Point[T]) String() string { return p.coords.String() }

// Distance returns the Euclidean distance between a and b, computed as the
// norm of b-a in R. It is symmetric, non-negative, and zero exactly when
// the points are equal (subject to R's rounding). The dimensions must
// match.
func Distance[R Float, T Number](a, b Point[T]) R {
	return Norm[R, T](Sub[T](b.coords, a.coords))
}

// AreClose reports whether the distance between a and b, computed in R, is
// strictly less than epsilon.
func AreClose[R Float, T Number](a, b Point[T], epsilon R) bool {
	return Distance[R](a, b) < epsilon
}
