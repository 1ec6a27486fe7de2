package geomath

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence is returned when an iterative seminumerical algorithm
// does not appear to be converging to a solution.
var ErrNoConvergence = errors.New("geomath: the algorithm does not appear to be converging")

// minimumMaxIterations bounds the Brent iteration. The algorithm converges
// well inside this for any reasonable bracket; exhausting it reports
// ErrNoConvergence rather than returning a best-effort guess.
const minimumMaxIterations = 100

// MinimumValue finds a local minimum of fn inside the bracketing triple
// ax < bx < cx using Brent's method, following the treatment in Numerical
// Recipes. It returns the minimum function value and the x at which it
// occurs. tol is the desired fixed tolerance on x; Epsilon[T]() is a
// reasonable choice.
//
// The bracket values must be strictly increasing, otherwise
// ErrInvalidArgument is returned.
func MinimumValue[T Float](ax, bx, cx T, fn func(T) T, tol T) (fmin, xmin T, err error) {
	if ax >= bx || bx >= cx {
		return 0, 0, fmt.Errorf("%w: bracket values must be in increasing order", ErrInvalidArgument)
	}

	// Complement of the golden ratio, the fallback step factor.
	cgold := T(1) - (T(math.Sqrt(5))-T(1))/T(2)

	a, b := ax, cx
	v, w, x := bx, bx, bx
	fx := fn(x)
	fv, fw := fx, fx
	var d, e T
	tol2 := 2 * tol

	for i := 0; i < minimumMaxIterations; i++ {
		xm := (a + b) / 2
		if absf(x-xm) <= tol2-(b-a)/2 {
			return fx, x, nil
		}

		if absf(e) > tol {
			// Parabolic fit through x, v, w.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = absf(q)
			if absf(p) >= absf(q*e/2) || p <= q*(a-x) || p >= q*(b-x) {
				// The fit is unusable; fall back to a golden section step.
				if x >= xm {
					e = a - x
				} else {
					e = b - x
				}
				d = cgold * e
			} else {
				e = d
				d = p / q
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = copysignf(tol, xm-x)
				}
			}
		} else {
			if x >= xm {
				e = a - x
			} else {
				e = b - x
			}
			d = cgold * e
		}

		var u T
		if absf(d) >= tol {
			u = x + d
		} else {
			u = x + copysignf(tol, d)
		}
		fu := fn(u)

		if fu <= fx {
			if u >= x {
				a = x
			} else {
				b = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return 0, 0, ErrNoConvergence
}

// MaximumValue finds a local maximum of fn inside the bracketing triple by
// minimizing its negation.
func MaximumValue[T Float](ax, bx, cx T, fn func(T) T, tol T) (fmax, xmax T, err error) {
	fmin, x, err := MinimumValue(ax, bx, cx, func(t T) T { return -fn(t) }, tol)
	if err != nil {
		return 0, 0, err
	}
	return -fmin, x, nil
}

func absf[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func copysignf[T Float](x, y T) T {
	return T(math.Copysign(float64(x), float64(y)))
}
