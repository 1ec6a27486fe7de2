package geomath

import (
	"errors"
	"math"
	"testing"
)

func TestNewPoint(t *testing.T) {
	p := NewPoint[float64](3)
	if p.Dim() != 3 {
		t.Fatalf("Dim() = %d, want 3", p.Dim())
	}
	for i := 0; i < 3; i++ {
		if p.At(i) != 0 {
			t.Errorf("At(%d) = %v, want 0", i, p.At(i))
		}
	}
	if !p.Equal(Origin[float64](3)) {
		t.Error("a new point should equal the origin")
	}
}

func TestPointOf(t *testing.T) {
	p := PointOf(1.5, -2.0)
	if p.Dim() != 2 || p.At(0) != 1.5 || p.At(1) != -2.0 {
		t.Errorf("PointOf(1.5, -2) = %v", p)
	}
	if got := p.String(); got != "(1.5,-2)" {
		t.Errorf("String() = %q, want %q", got, "(1.5,-2)")
	}
}

func TestPointFrom(t *testing.T) {
	p, err := PointFrom([]int{7, 8, 9, 10}, 3)
	if err != nil {
		t.Fatalf("PointFrom() error = %v", err)
	}
	if !p.Equal(PointOf(7, 8, 9)) {
		t.Errorf("PointFrom() = %v, want (7,8,9)", p)
	}

	// Exactly dim values are read; the rest of the buffer is ignored and
	// never shared.
	q, err := PointFrom([]int{1, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}
	buf := []int{1, 2, 3}
	r, err := PointFrom(buf, 3)
	if err != nil {
		t.Fatal(err)
	}
	buf[0] = 99
	if !q.Equal(r) {
		t.Error("PointFrom should copy the buffer")
	}

	if _, err := PointFrom[int](nil, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PointFrom(nil) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := PointFrom([]int{1}, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PointFrom(short buffer) error = %v, want ErrInvalidArgument", err)
	}
}

func TestPointEqual(t *testing.T) {
	p := PointOf(1, 2, 3)
	q := PointOf(1, 2, 3)
	if !p.Equal(q) {
		t.Error("identical points should be equal")
	}
	q.Set(2, 4)
	if p.Equal(q) {
		t.Error("points with a differing coordinate should not be equal")
	}
	if p.Equal(PointOf(1, 2)) {
		t.Error("points of different dimensions are never equal")
	}
}

func TestPointClone(t *testing.T) {
	p := PointOf(1, 2)
	c := p.Clone()
	c.Set(0, 9)
	if p.At(0) != 1 {
		t.Error("Clone should not share storage")
	}
}

func TestPointVector(t *testing.T) {
	p := PointOf(3.0, 4.0)
	if got := Norm[float64, float64](p.Vector()); got != 5 {
		t.Errorf("Norm(p.Vector()) = %v, want 5", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point[float64]
		expect float64
	}{
		{"same point", PointOf(1.0, 2.0), PointOf(1.0, 2.0), 0},
		{"3-4-5", PointOf(0.0, 0.0), PointOf(3.0, 4.0), 5},
		{"negative coords", PointOf(-1.0, -1.0), PointOf(2.0, 3.0), 5},
		{"3d", PointOf(0.0, 0.0, 0.0), PointOf(1.0, 2.0, 3.0), math.Sqrt(14)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance[float64](tt.a, tt.b)
			if math.Abs(got-tt.expect) > 1e-12 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
			// Distance is symmetric.
			if rev := Distance[float64](tt.b, tt.a); rev != got {
				t.Errorf("Distance(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, rev, got)
			}
		})
	}
}

func TestDistance_IntPoints(t *testing.T) {
	a := PointOf(0, 0)
	b := PointOf(3, 4)
	if got := Distance[float64](a, b); got != 5 {
		t.Errorf("Distance over int points = %v, want 5", got)
	}
}

func TestAreClose(t *testing.T) {
	p := PointOf(1.0, 1.0)
	q := PointOf(4.0, 5.0) // distance 5

	if !AreClose(p, p, 1e-300) {
		t.Error("AreClose(p, p, eps) should hold for any positive epsilon")
	}
	if !AreClose(p, q, 5.1) {
		t.Error("AreClose(p, q, 5.1) = false, want true")
	}
	// The comparison is strict: a distance exactly equal to epsilon is
	// not close.
	if AreClose(p, q, 5.0) {
		t.Error("AreClose(p, q, 5.0) = true, want false")
	}
}
