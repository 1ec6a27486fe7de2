package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/gogeom/geomath"
)

// a303 traces the A303 from Winchester to the M25, sampled from GPS data.
var a303 = []Point{
	MustNew(51.06707497, -1.32007599),
	MustNew(51.09430508, -1.31192207),
	MustNew(51.10206677, -1.30926132),
	MustNew(51.11133597, -1.30376816),
	MustNew(51.12981493, -1.29261017),
	MustNew(51.15906713, -1.27510071),
	MustNew(51.16440941, -1.27057314),
	MustNew(51.16897072, -1.26606703),
	MustNew(51.17439257, -1.26235485),
	MustNew(51.17875111, -1.26089573),
	MustNew(51.1833917, -1.26044512),
	MustNew(51.19727033, -1.25793457),
	MustNew(51.20141159, -1.25669003),
	MustNew(51.20630532, -1.25347137),
	MustNew(51.21110444, -1.24845028),
	MustNew(51.22457158, -1.23325825),
	MustNew(51.22821321, -1.2274003),
	MustNew(51.23103494, -1.22038364),
	MustNew(51.23596583, -1.20326042),
	MustNew(51.24346193, -1.1776185),
	MustNew(51.24968088, -1.16356373),
	MustNew(51.26363353, -1.13167763),
	MustNew(51.2659966, -1.12247229),
	MustNew(51.26682901, -1.11629248),
	MustNew(51.26728549, -1.10906124),
	MustNew(51.26823871, -1.09052181),
	MustNew(51.26885628, -1.08522177),
	MustNew(51.27070895, -1.07013702),
	MustNew(51.27350122, -1.03683472),
	MustNew(51.27572955, -1.00917578),
	MustNew(51.2779175, -0.98243952),
	MustNew(51.28095094, -0.9509182),
	MustNew(51.28305811, -0.9267354),
	MustNew(51.28511151, -0.90499878),
	MustNew(51.2883055, -0.86051702),
	MustNew(51.29023789, -0.83661318),
	MustNew(51.29708113, -0.7534647),
	MustNew(51.29795323, -0.74908733),
	MustNew(51.2988924, -0.7400322),
	MustNew(51.30125366, -0.71535587),
	MustNew(51.29863749, -0.68475723),
	MustNew(51.30220618, -0.65746307),
	MustNew(51.30380261, -0.63246489),
	MustNew(51.30645873, -0.60542822),
	MustNew(51.3103219, -0.58150291),
	MustNew(51.31150225, -0.57603121),
	MustNew(51.31317883, -0.57062387),
	MustNew(51.32475227, -0.54195642),
	MustNew(51.34771616, -0.4855442),
	MustNew(51.36283147, -0.4553318),
}

func TestPathLength(t *testing.T) {
	got, err := PathLength(a303, 6371000)
	if err != nil {
		t.Fatalf("PathLength() error = %v", err)
	}
	if math.Abs(got-76399) > 0.5 {
		t.Errorf("PathLength() = %v, want 76399 ± 0.5", got)
	}
}

func TestPathLength_Trivial(t *testing.T) {
	got, err := PathLength(nil, DefaultEarthDiameter)
	if err != nil {
		t.Fatalf("PathLength(nil) error = %v", err)
	}
	if got != 0 {
		t.Errorf("PathLength(nil) = %v, want 0", got)
	}

	got, err = PathLength([]Point{a303[0]}, DefaultEarthDiameter)
	if err != nil {
		t.Fatalf("PathLength(single) error = %v", err)
	}
	if got != 0 {
		t.Errorf("PathLength(single) = %v, want 0", got)
	}
}

func TestPathLength_BadDiameter(t *testing.T) {
	if _, err := PathLength(a303, 1000); !errors.Is(err, geomath.ErrInvalidArgument) {
		t.Errorf("PathLength(diameter=1000) error = %v, want ErrInvalidArgument", err)
	}
}

func TestPathIntermediatePoint(t *testing.T) {
	got, err := PathIntermediatePoint(a303, 0.25, DefaultEarthDiameter)
	if err != nil {
		t.Fatalf("PathIntermediatePoint() error = %v", err)
	}
	mustBeNear(t, got, MustNew(51.2267572, -1.2297426))
}

func TestPathIntermediatePoint_Endpoints(t *testing.T) {
	// The endpoints come back exactly, untouched by interpolation.
	got, err := PathIntermediatePoint(a303, 0, DefaultEarthDiameter)
	if err != nil {
		t.Fatalf("PathIntermediatePoint(0) error = %v", err)
	}
	if !got.Equal(a303[0]) {
		t.Errorf("PathIntermediatePoint(0) = %v, want %v exactly", got, a303[0])
	}

	got, err = PathIntermediatePoint(a303, 1, DefaultEarthDiameter)
	if err != nil {
		t.Fatalf("PathIntermediatePoint(1) error = %v", err)
	}
	if !got.Equal(a303[len(a303)-1]) {
		t.Errorf("PathIntermediatePoint(1) = %v, want %v exactly", got, a303[len(a303)-1])
	}
}

func TestPathIntermediatePoint_SinglePoint(t *testing.T) {
	single := []Point{a303[7]}
	for _, f := range []float64{0, 0.3, 1} {
		got, err := PathIntermediatePoint(single, f, DefaultEarthDiameter)
		if err != nil {
			t.Fatalf("PathIntermediatePoint(single, %v) error = %v", f, err)
		}
		if !got.Equal(single[0]) {
			t.Errorf("PathIntermediatePoint(single, %v) = %v, want %v", f, got, single[0])
		}
	}
}

func TestPathIntermediatePoint_BadArguments(t *testing.T) {
	if _, err := PathIntermediatePoint(nil, 0.5, DefaultEarthDiameter); !errors.Is(err, geomath.ErrInvalidArgument) {
		t.Errorf("PathIntermediatePoint(empty path) error = %v, want ErrInvalidArgument", err)
	}
	for _, f := range []float64{-0.5, 1.5} {
		if _, err := PathIntermediatePoint(a303, f, DefaultEarthDiameter); !errors.Is(err, geomath.ErrInvalidArgument) {
			t.Errorf("PathIntermediatePoint(fraction=%v) error = %v, want ErrInvalidArgument", f, err)
		}
	}
	if _, err := PathIntermediatePoint(a303, 0.5, 1000); !errors.Is(err, geomath.ErrInvalidArgument) {
		t.Errorf("PathIntermediatePoint(diameter=1000) error = %v, want ErrInvalidArgument", err)
	}
}

func TestPathIntermediatePoint_LandsBetweenNeighbours(t *testing.T) {
	// Every interpolated point must lie within the path's bounding box.
	minLat, maxLat := 90.0, -90.0
	minLng, maxLng := 180.0, -180.0
	for _, p := range a303 {
		minLat = math.Min(minLat, p.Latitude())
		maxLat = math.Max(maxLat, p.Latitude())
		minLng = math.Min(minLng, p.Longitude())
		maxLng = math.Max(maxLng, p.Longitude())
	}

	for _, f := range []float64{0.1, 0.5, 0.75, 0.9} {
		got, err := PathIntermediatePoint(a303, f, DefaultEarthDiameter)
		if err != nil {
			t.Fatalf("PathIntermediatePoint(%v) error = %v", f, err)
		}
		if got.Latitude() < minLat || got.Latitude() > maxLat ||
			got.Longitude() < minLng || got.Longitude() > maxLng {
			t.Errorf("PathIntermediatePoint(%v) = %v lies outside the path bounds", f, got)
		}
	}
}
