// Command pathcalc computes the length of a geospatial path and the point
// at a fractional distance along it. The waypoints are read from an HJSON
// file of the form:
//
//	{
//	  // metres; optional, defaults to the PostGIS earth value
//	  diameter-of-earth: 6370986.0
//	  points: [
//	    [51.06707497, -1.32007599]
//	    [51.09430508, -1.31192207]
//	  ]
//	}
//
// Each entry is a [latitude, longitude] pair.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hjson/hjson-go"
	"github.com/pkg/profile"

	"github.com/gogeom/geomath"
	"github.com/gogeom/geomath/geo"
)

type pathFile struct {
	DiameterOfEarth float64      `json:"diameter-of-earth"`
	Points          [][2]float64 `json:"points"`
}

func loadPathFile(path string) (pf pathFile, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(bytes, &mdat); err != nil {
		return
	}
	if bytes, err = json.Marshal(mdat); err != nil {
		return
	}
	err = json.Unmarshal(bytes, &pf)
	return
}

func main() {
	var (
		pathArg  = flag.String("path", "./path.hjson", "HJSON waypoint file")
		fraction = flag.Float64("fraction", 0.5, "fractional distance along the path, in [0,1]")
		diameter = flag.Float64("diameter", 0, "earth diameter in metres (overrides the file)")
		doProf   = flag.Bool("prof", false, "write a CPU profile")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	geomath.SetLogger(logger)

	if *doProf {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	pf, err := loadPathFile(*pathArg)
	if err != nil {
		logger.Error("cannot load waypoints", "path", *pathArg, "err", err)
		os.Exit(1)
	}

	d := geo.DefaultEarthDiameter
	if pf.DiameterOfEarth > 0 {
		d = pf.DiameterOfEarth
	}
	if *diameter > 0 {
		d = *diameter
	}

	path := make([]geo.Point, 0, len(pf.Points))
	for i, pair := range pf.Points {
		p, err := geo.New(pair[0], pair[1])
		if err != nil {
			logger.Error("invalid waypoint", "index", i, "err", err)
			os.Exit(1)
		}
		path = append(path, p)
	}
	logger.Debug("loaded waypoints", "count", len(path), "diameter", d)

	length, err := geo.PathLength(path, d)
	if err != nil {
		logger.Error("cannot compute path length", "err", err)
		os.Exit(1)
	}

	p, err := geo.PathIntermediatePoint(path, *fraction, d)
	if err != nil {
		logger.Error("cannot compute intermediate point", "err", err)
		os.Exit(1)
	}

	fmt.Printf("path length: %.1f m\n", length)
	fmt.Printf("point at fraction %g:\n", *fraction)
	fmt.Printf("  internal: %s\n", p)
	fmt.Printf("  gis:      %s\n", p.GIS())
	fmt.Printf("  dms:      %s\n", p.DMS())
}
