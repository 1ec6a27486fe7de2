// Package geomath provides small numeric and geometry utilities for Go.
//
// # Overview
//
// geomath is a pure Go library covering approximate floating-point
// comparison, per-precision mathematical constants, an integer greatest
// common divisor, a generic fixed-dimension Vector/Point linear-algebra
// core, line-segment geometry, and a Brent 1-D minimizer. The geospatial
// layer (haversine distances, great-circle interpolation, path
// computations) lives in the geo subpackage.
//
// # Quick Start
//
//	import "github.com/gogeom/geomath"
//
//	a := geomath.PointOf(1.0, 2.0)
//	b := geomath.PointOf(4.0, 6.0)
//	d := geomath.Distance[float64](a, b) // 5
//
//	l := geomath.NewLine(a, b)
//	m := geomath.Midpoint[float64](l)
//
// # Vectors
//
// The Vector interface abstracts a fixed-size numeric container over four
// storage strategies: an owned buffer (Dense), a borrowed slice (Slice), an
// externally owned resizable buffer (Buffer), and a strided window into a
// larger buffer (Strided). All package-level vector operations work
// uniformly and interchangeably across the storage kinds.
//
// # Concurrency
//
// All operations are pure computations over value types and are safe to
// call concurrently on independent instances. The borrowing vector kinds
// (Slice, Buffer, Strided) do not own their storage; the caller keeps the
// backing buffer alive and serializes any concurrent mutation of it.
package geomath

// Version information
const (
	// Version is the current version of the library
	Version = "1.2.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
