package geomath

import (
	"errors"
	"fmt"
)

// ErrNoIntersection is returned when two lines do not intersect. Parallel
// lines, coincident (overlapping) lines and a line intersected with itself
// all report this condition.
var ErrNoIntersection = errors.New("geomath: the lines do not intersect")

// Line is a line segment defined by two endpoints of equal dimension. Most
// computations treat it as the infinite line through the endpoints; the
// documentation of each operation says which. A zero-length line (both
// endpoints equal) is valid.
type Line[T Number] struct {
	a, b Point[T]
}

// NewLine returns the line from a to b. The endpoint dimensions must
// match.
func NewLine[T Number](a, b Point[T]) Line[T] {
	if a.Dim() != b.Dim() {
		panic(fmt.Sprintf("geomath: line endpoint dimension mismatch: %d != %d", a.Dim(), b.Dim()))
	}
	return Line[T]{a: a, b: b}
}

// ZeroLine returns the zero-length line at the origin of the given
// dimension.
func ZeroLine[T Number](dim int) Line[T] {
	return Line[T]{a: Origin[T](dim), b: Origin[T](dim)}
}

// A returns the first endpoint.
func (l Line[T]) A() Point[T] { return l.a }

// B returns the second endpoint.
func (l Line[T]) B() Point[T] { return l.b }

// SetA replaces the first endpoint. The dimension must match the line's.
func (l *Line[T]) SetA(p Point[T]) {
	if p.Dim() != l.b.Dim() {
		panic(fmt.Sprintf("geomath: line endpoint dimension mismatch: %d != %d", p.Dim(), l.b.Dim()))
	}
	l.a = p
}

// SetB replaces the second endpoint. The dimension must match the line's.
func (l *Line[T]) SetB(p Point[T]) {
	if p.Dim() != l.a.Dim() {
		panic(fmt.Sprintf("geomath: line endpoint dimension mismatch: %d != %d", p.Dim(), l.a.Dim()))
	}
	l.b = p
}

// Equal reports whether l and m have equal endpoints in order: (a,b) does
// not equal (b,a) unless a and b coincide.
func (l Line[T]) Equal(m Line[T]) bool {
	return l.a.Equal(m.a) && l.b.Equal(m.b)
}

// Length returns the distance between the endpoints, computed in R.
func Length[R Float, T Number](l Line[T]) R {
	return Distance[R](l.a, l.b)
}

// Midpoint returns the elementwise average of the endpoints, computed and
// returned at the precision of R regardless of the line's element type.
func Midpoint[R Number, T Number](l Line[T]) Point[R] {
	m := NewPoint[R](l.a.Dim())
	for i := 0; i < l.a.Dim(); i++ {
		m.Set(i, (R(l.a.At(i))+R(l.b.At(i)))/R(2))
	}
	return m
}

// DistanceToPoint returns the distance between p and the infinite line
// through l's endpoints, computed in R. The point is projected onto the
// line direction and the perpendicular remainder is measured.
//
// When the line is degenerate (both endpoints equal) the projection
// divisor vanishes; the distance from p to the endpoint is returned
// instead.
func DistanceToPoint[R Float, T Number](l Line[T], p Point[T]) R {
	if p.Dim() != l.a.Dim() {
		panic(fmt.Sprintf("geomath: point dimension %d does not match line dimension %d", p.Dim(), l.a.Dim()))
	}

	dim := l.a.Dim()
	pa := NewDense[R](dim) // p - a
	ba := NewDense[R](dim) // b - a
	for i := 0; i < dim; i++ {
		pa.Set(i, R(p.At(i))-R(l.a.At(i)))
		ba.Set(i, R(l.b.At(i))-R(l.a.At(i)))
	}

	denom := Dot[R, R](ba, ba)
	if denom == 0 {
		return Norm[R, R](pa)
	}

	t := Dot[R, R](pa, ba) / denom
	for i := 0; i < dim; i++ {
		pa.Set(i, pa.At(i)-t*ba.At(i))
	}
	return Norm[R, R](pa)
}

// Intersection returns the intersection point of the two infinite 2-D
// lines through l1 and l2, computed in R. Coincident and parallel lines,
// including a line intersected with itself, report ErrNoIntersection.
// Lines of any dimension other than two report ErrInvalidArgument.
//
// Based on the determinant formulation in O'Rourke, Computational
// Geometry in C.
func Intersection[R Float, T Number](l1, l2 Line[T]) (Point[R], error) {
	if l1.a.Dim() != 2 || l2.a.Dim() != 2 {
		return Point[R]{}, fmt.Errorf("%w: intersection requires 2-D lines", ErrInvalidArgument)
	}

	ax, ay := R(l1.a.At(0)), R(l1.a.At(1))
	bx, by := R(l1.b.At(0)), R(l1.b.At(1))
	cx, cy := R(l2.a.At(0)), R(l2.a.At(1))
	dx, dy := R(l2.b.At(0)), R(l2.b.At(1))

	denom := ax*(dy-cy) + bx*(cy-dy) + dx*(by-ay) + cx*(ay-by)
	if CloseTo(denom, 0, Epsilon[R]()) {
		return Point[R]{}, ErrNoIntersection
	}

	s := (ax*(dy-cy) + cx*(ay-dy) + dx*(cy-ay)) / denom
	return PointOf(ax+s*(bx-ax), ay+s*(by-ay)), nil
}
