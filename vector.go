package geomath

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument is returned when a constructor or operation is given
// an argument outside its domain, such as a backing buffer that is too
// small for the requested vector size.
var ErrInvalidArgument = errors.New("geomath: invalid argument")

// Vector is the capability a fixed-size numeric container must provide for
// the package-level vector operations. The size never changes after
// construction. Indexes must be in [0, Len()); the operations do not
// range-check them.
//
// Four implementations are provided: Dense (owned buffer), Slice (borrowed
// buffer), Buffer (externally owned resizable buffer) and Strided (a
// strided window into a larger buffer). The operations treat them all
// uniformly, so vectors of different kinds can be mixed freely.
type Vector[T Number] interface {
	// Len returns the fixed number of elements.
	Len() int
	// At returns element i.
	At(i int) T
	// Set stores x as element i.
	Set(i int, x T)
}

// Dense is a Vector that owns its storage.
//
// Dense values share their backing buffer when copied; use Clone for an
// independent copy.
type Dense[T Number] struct {
	data []T
}

// NewDense returns a zero-filled Dense vector of size n.
func NewDense[T Number](n int) Dense[T] {
	return Dense[T]{data: make([]T, n)}
}

// DenseOf returns a Dense vector holding a copy of the given elements.
func DenseOf[T Number](elems ...T) Dense[T] {
	data := make([]T, len(elems))
	copy(data, elems)
	return Dense[T]{data: data}
}

// DenseFrom returns a Dense vector of size n holding a copy of the first
// n values of buf. The buffer must contain at least n values.
func DenseFrom[T Number](buf []T, n int) (Dense[T], error) {
	if n < 0 || len(buf) < n {
		return Dense[T]{}, fmt.Errorf("%w: buffer of length %d cannot fill a vector of size %d",
			ErrInvalidArgument, len(buf), n)
	}
	data := make([]T, n)
	copy(data, buf[:n])
	return Dense[T]{data: data}, nil
}

func (v Dense[T]) Len() int      { return len(v.data) }
func (v Dense[T]) At(i int) T    { return v.data[i] }
func (v Dense[T]) Set(i int, x T) { v.data[i] = x }

// Clone returns a Dense vector with its own copy of the elements.
func (v Dense[T]) Clone() Dense[T] {
	return DenseOf(v.data...)
}

// String renders the vector as "(e0,e1,...,eN-1)".
func (v Dense[T]) String() string { return VectorString[T](v) }

// Slice is a Vector viewing the leading n elements of a caller-supplied
// buffer. It does not own the storage: mutations are visible both ways and
// the caller must keep the buffer alive while the view exists.
type Slice[T Number] struct {
	buf []T
}

// NewSlice returns a Slice vector of size n viewing buf. The buffer must
// contain at least n values; it is never truncated or grown.
func NewSlice[T Number](buf []T, n int) (Slice[T], error) {
	if n < 0 || len(buf) < n {
		return Slice[T]{}, fmt.Errorf("%w: buffer of length %d cannot back a vector of size %d",
			ErrInvalidArgument, len(buf), n)
	}
	return Slice[T]{buf: buf[:n]}, nil
}

func (v Slice[T]) Len() int       { return len(v.buf) }
func (v Slice[T]) At(i int) T     { return v.buf[i] }
func (v Slice[T]) Set(i int, x T) { v.buf[i] = x }

// String renders the vector as "(e0,e1,...,eN-1)".
func (v Slice[T]) String() string { return VectorString[T](v) }

// Buffer is a Vector viewing the leading n elements of an externally owned
// resizable buffer. Because it holds a pointer to the slice rather than the
// slice itself, the view follows the owner through reallocations (for
// example an append that moves the backing array). The owner must keep the
// buffer at least n elements long while the view exists.
type Buffer[T Number] struct {
	buf *[]T
	n   int
}

// NewBuffer returns a Buffer vector of size n viewing *buf.
func NewBuffer[T Number](buf *[]T, n int) (Buffer[T], error) {
	if buf == nil {
		return Buffer[T]{}, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	if n < 0 || len(*buf) < n {
		return Buffer[T]{}, fmt.Errorf("%w: buffer of length %d cannot back a vector of size %d",
			ErrInvalidArgument, len(*buf), n)
	}
	return Buffer[T]{buf: buf, n: n}, nil
}

func (v Buffer[T]) Len() int       { return v.n }
func (v Buffer[T]) At(i int) T     { return (*v.buf)[i] }
func (v Buffer[T]) Set(i int, x T) { (*v.buf)[i] = x }

// String renders the vector as "(e0,e1,...,eN-1)".
func (v Buffer[T]) String() string { return VectorString[T](v) }

// Strided is a Vector reading every stride-th element of a larger
// contiguous buffer, starting at offset. It does not own the storage.
type Strided[T Number] struct {
	buf            []T
	offset, stride int
	n              int
}

// NewStrided returns a Strided vector of size n over buf. The stride must
// be at least 1 and the last element, at offset+(n-1)*stride, must lie
// within the buffer.
func NewStrided[T Number](buf []T, offset, stride, n int) (Strided[T], error) {
	if n < 0 || offset < 0 || stride < 1 {
		return Strided[T]{}, fmt.Errorf("%w: invalid strided window (offset %d, stride %d, size %d)",
			ErrInvalidArgument, offset, stride, n)
	}
	if n > 0 && offset+(n-1)*stride >= len(buf) {
		return Strided[T]{}, fmt.Errorf("%w: strided window (offset %d, stride %d, size %d) exceeds buffer of length %d",
			ErrInvalidArgument, offset, stride, n, len(buf))
	}
	return Strided[T]{buf: buf, offset: offset, stride: stride, n: n}, nil
}

func (v Strided[T]) Len() int       { return v.n }
func (v Strided[T]) At(i int) T     { return v.buf[v.offset+i*v.stride] }
func (v Strided[T]) Set(i int, x T) { v.buf[v.offset+i*v.stride] = x }

// String renders the vector as "(e0,e1,...,eN-1)".
func (v Strided[T]) String() string { return VectorString[T](v) }

// sameSize panics when two vectors that must agree in size do not. Mixing
// sizes in an elementwise operation is a programming error, not a runtime
// condition.
func sameSize[T Number](a, b Vector[T]) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("geomath: vector size mismatch: %d != %d", a.Len(), b.Len()))
	}
}

// Equal reports whether a and b hold the same elements in the same order.
// The comparison is structural: vectors of different storage kinds compare
// equal whenever their contents do. Vectors of different sizes are never
// equal.
func Equal[T Number](a, b Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// AddScalar adds s to every element of v in place.
func AddScalar[T Number](v Vector[T], s T) {
	for i := 0; i < v.Len(); i++ {
		v.Set(i, v.At(i)+s)
	}
}

// SubScalar subtracts s from every element of v in place.
func SubScalar[T Number](v Vector[T], s T) {
	for i := 0; i < v.Len(); i++ {
		v.Set(i, v.At(i)-s)
	}
}

// MulScalar multiplies every element of v by s in place.
func MulScalar[T Number](v Vector[T], s T) {
	for i := 0; i < v.Len(); i++ {
		v.Set(i, v.At(i)*s)
	}
}

// DivScalar divides every element of v by s in place.
func DivScalar[T Number](v Vector[T], s T) {
	for i := 0; i < v.Len(); i++ {
		v.Set(i, v.At(i)/s)
	}
}

// AddVec adds src to dst elementwise in place. The sizes must match.
func AddVec[T Number](dst, src Vector[T]) {
	sameSize(dst, src)
	for i := 0; i < dst.Len(); i++ {
		dst.Set(i, dst.At(i)+src.At(i))
	}
}

// SubVec subtracts src from dst elementwise in place. The sizes must match.
func SubVec[T Number](dst, src Vector[T]) {
	sameSize(dst, src)
	for i := 0; i < dst.Len(); i++ {
		dst.Set(i, dst.At(i)-src.At(i))
	}
}

// MulVec multiplies dst by src elementwise in place. The sizes must match.
func MulVec[T Number](dst, src Vector[T]) {
	sameSize(dst, src)
	for i := 0; i < dst.Len(); i++ {
		dst.Set(i, dst.At(i)*src.At(i))
	}
}

// DivVec divides dst by src elementwise in place. The sizes must match.
func DivVec[T Number](dst, src Vector[T]) {
	sameSize(dst, src)
	for i := 0; i < dst.Len(); i++ {
		dst.Set(i, dst.At(i)/src.At(i))
	}
}

// Add returns the elementwise sum of a and b as a fresh Dense vector.
func Add[T Number](a, b Vector[T]) Dense[T] {
	sameSize(a, b)
	out := NewDense[T](a.Len())
	for i := 0; i < a.Len(); i++ {
		out.data[i] = a.At(i) + b.At(i)
	}
	return out
}

// Sub returns the elementwise difference a-b as a fresh Dense vector.
func Sub[T Number](a, b Vector[T]) Dense[T] {
	sameSize(a, b)
	out := NewDense[T](a.Len())
	for i := 0; i < a.Len(); i++ {
		out.data[i] = a.At(i) - b.At(i)
	}
	return out
}

// Mul returns the elementwise product of a and b as a fresh Dense vector.
func Mul[T Number](a, b Vector[T]) Dense[T] {
	sameSize(a, b)
	out := NewDense[T](a.Len())
	for i := 0; i < a.Len(); i++ {
		out.data[i] = a.At(i) * b.At(i)
	}
	return out
}

// Div returns the elementwise quotient a/b as a fresh Dense vector.
func Div[T Number](a, b Vector[T]) Dense[T] {
	sameSize(a, b)
	out := NewDense[T](a.Len())
	for i := 0; i < a.Len(); i++ {
		out.data[i] = a.At(i) / b.At(i)
	}
	return out
}

// Sum accumulates the elements of v into R, left to right, starting at
// R(0). R is typically a higher-precision type than the element type.
func Sum[R Number, T Number](v Vector[T]) R {
	var s R
	for i := 0; i < v.Len(); i++ {
		s += R(v.At(i))
	}
	return s
}

// Dot returns the dot product of a and b. Each elementwise product is
// computed in the element type and accumulated into R, which should have
// at least the precision and range of T.
func Dot[R Number, T Number](a, b Vector[T]) R {
	sameSize(a, b)
	var s R
	for i := 0; i < a.Len(); i++ {
		s += R(a.At(i) * b.At(i))
	}
	return s
}

// Norm returns the Euclidean length of v: the square root of the dot
// product of v with itself, computed in R.
func Norm[R Float, T Number](v Vector[T]) R {
	return R(math.Sqrt(float64(Dot[R, T](v, v))))
}

// VectorString renders any Vector as "(e0,e1,...,eN-1)".
func VectorString[T Number](v Vector[T]) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%v", v.At(i))
	}
	sb.WriteByte(')')
	return sb.String()
}
