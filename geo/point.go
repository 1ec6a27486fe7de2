package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogeom/geomath"
)

var (
	// ErrOutOfRange is returned when a latitude or longitude lies outside
	// its valid range.
	ErrOutOfRange = errors.New("geo: coordinate out of range")

	// ErrUnparseable is returned when a textual point cannot be parsed.
	// It is distinct from ErrOutOfRange so callers can tell malformed text
	// from well-formed text carrying invalid coordinate values.
	ErrUnparseable = errors.New("geo: unparseable point")
)

// Point is a geospatial point: longitude first, latitude second. The zero
// value is the valid point (0,0). Point is a value type; copies are
// independent.
type Point struct {
	coords [2]float64
}

// New returns the point at the given latitude and longitude. The latitude
// must lie in [-90,90] and the longitude in [-180,180]; violations report
// ErrOutOfRange.
func New(lat, lng float64) (Point, error) {
	var p Point
	if err := p.SetLatitude(lat); err != nil {
		return Point{}, err
	}
	if err := p.SetLongitude(lng); err != nil {
		return Point{}, err
	}
	return p, nil
}

// MustNew is like New but panics on invalid coordinates. It simplifies
// initialization of fixed, known-valid points.
func MustNew(lat, lng float64) Point {
	p, err := New(lat, lng)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads a point from one of the two supported textual formats: the
// internal "(<lat>,<lng>)" form, or the GIS "POINT(<lng> <lat>)" form when
// the string carries the POINT( prefix. Malformed text reports
// ErrUnparseable; well-formed text with out-of-range coordinates reports
// ErrOutOfRange.
func Parse(s string) (Point, error) {
	if strings.HasPrefix(s, "POINT(") {
		return parseGIS(s)
	}
	return parseInternal(s)
}

func parseInternal(s string) (Point, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Point{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	latStr, lngStr, ok := strings.Cut(s[1:len(s)-1], ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return pointFromStrings(s, latStr, lngStr)
}

func parseGIS(s string) (Point, error) {
	const prefix = "POINT("
	if s[len(s)-1] != ')' {
		return Point{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	// Longitude first in the GIS form.
	lngStr, latStr, ok := strings.Cut(s[len(prefix):len(s)-1], " ")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return pointFromStrings(s, latStr, lngStr)
}

func pointFromStrings(s, latStr, lngStr string) (Point, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
	}
	return New(lat, lng)
}

// Latitude returns the latitude in degrees.
func (p Point) Latitude() float64 { return p.coords[1] }

// Longitude returns the longitude in degrees.
func (p Point) Longitude() float64 { return p.coords[0] }

// SetLatitude replaces the latitude. It must lie in [-90,90].
func (p *Point) SetLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v must be in the range [-90,90]", ErrOutOfRange, lat)
	}
	p.coords[1] = lat
	return nil
}

// SetLongitude replaces the longitude. It must lie in [-180,180].
func (p *Point) SetLongitude(lng float64) error {
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v must be in the range [-180,180]", ErrOutOfRange, lng)
	}
	p.coords[0] = lng
	return nil
}

// Equal reports whether p and q hold exactly the same coordinates.
func (p Point) Equal(q Point) bool { return p.coords == q.coords }

// Geom returns the point as a generic 2-D geometry point, longitude first.
func (p Point) Geom() geomath.Point[float64] {
	return geomath.PointOf(p.coords[0], p.coords[1])
}

// String renders the point in the internal "(<lat>,<lng>)" format using
// the shortest round-trippable decimal representation.
func (p Point) String() string {
	return "(" + formatCoord(p.Latitude()) + "," + formatCoord(p.Longitude()) + ")"
}

// GIS renders the point in the "POINT(<lng> <lat>)" format, suitable for
// PostGIS and similar GIS databases. Note the reversed coordinate order
// relative to String.
func (p Point) GIS() string {
	return "POINT(" + formatCoord(p.Longitude()) + " " + formatCoord(p.Latitude()) + ")"
}

// DMS renders the point in degrees-minutes-seconds notation: the latitude
// block with its N/S hemisphere letter, a comma, then the longitude block
// with E/W. Degrees and minutes truncate toward zero; the remainder goes
// into the seconds. The sign is carried solely by the hemisphere letter.
func (p Point) DMS() string {
	return dmsBlock(p.Latitude(), 'N', 'S') + ", " + dmsBlock(p.Longitude(), 'E', 'W')
}

func dmsBlock(val float64, positive, negative byte) string {
	dir := positive
	if val < 0 {
		dir = negative
	}
	val = math.Abs(val)
	degrees := uint(val)
	minutes := uint((val - float64(degrees)) * 60)
	seconds := (val - float64(degrees) - float64(minutes)/60) * 3600

	return fmt.Sprintf("%dº %d' %s\"%c", degrees, minutes, formatCoord(seconds), dir)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
