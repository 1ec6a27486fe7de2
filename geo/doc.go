// Package geo provides geospatial point operations over a spherical earth
// model: haversine great-circle distance, intermediate point interpolation
// along a great-circle arc, and length/interpolation over ordered point
// paths.
//
// A geo.Point is a two-dimensional double-precision coordinate holding the
// longitude as its first value (x axis) and the latitude as its second
// (y axis). Latitudes are restricted to [-90,90] and longitudes to
// [-180,180]; every construction and mutation path validates the ranges.
//
// Two textual formats are supported: the internal "(<lat>,<lng>)" form and
// the GIS "POINT(<lng> <lat>)" form used by PostGIS and similar systems
// (note the reversed coordinate order).
//
// All operations are pure computations over value types and are safe for
// concurrent use.
package geo
