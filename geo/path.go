package geo

import (
	"fmt"

	"github.com/gogeom/geomath"
)

// PathLength returns the length in metres of the path formed by the given
// ordered points: the sum of the great-circle distances between
// consecutive pairs. An empty or single-point path has length zero.
func PathLength(path []Point, diameterOfEarth float64) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		d, err := Distance(path[i-1], path[i], diameterOfEarth)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// PathIntermediatePoint returns the point at the given fraction of the
// path's cumulative length: fraction 0 is the first point of the path and
// fraction 1 the last, both returned exactly without touching the general
// interpolation (floating accumulation must not drift the endpoints).
//
// Fractions outside [0,1] and an empty path report parameter errors. A
// single-point path yields that point for any fraction.
func PathIntermediatePoint(path []Point, fraction, diameterOfEarth float64) (Point, error) {
	if fraction < 0 || fraction > 1 {
		return Point{}, fmt.Errorf("%w: fraction %v must be in the range [0,1]", geomath.ErrInvalidArgument, fraction)
	}
	if len(path) == 0 {
		return Point{}, fmt.Errorf("%w: cannot determine an intermediate point on an empty path", geomath.ErrInvalidArgument)
	}
	if len(path) == 1 {
		return path[0], nil
	}
	if fraction == 0 {
		return path[0], nil
	}
	if fraction == 1 {
		return path[len(path)-1], nil
	}

	total, err := PathLength(path, diameterOfEarth)
	if err != nil {
		return Point{}, err
	}

	// Walk the segments until the running remainder is used up, then
	// interpolate inside the bracketing segment with the local fraction.
	remaining := total * fraction
	for i := 1; i < len(path); i++ {
		d, err := Distance(path[i-1], path[i], diameterOfEarth)
		if err != nil {
			return Point{}, err
		}
		remaining -= d
		if remaining == 0 {
			return path[i], nil
		}
		if remaining < 0 {
			local := (remaining + d) / d
			return IntermediatePoint(path[i-1], path[i], local, diameterOfEarth)
		}
	}

	// The remainder is bounded by the total length, so the walk above must
	// resolve before running off the path.
	panic("geo: path walk exhausted without locating the intermediate point")
}
