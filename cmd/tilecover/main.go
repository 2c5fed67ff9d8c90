// Command tilecover reads a GeoJSON Feature, FeatureCollection, or bare
// geometry and prints the set of Web-Mercator tiles it covers at a given
// zoom level.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	tilecover "github.com/ingalls/tilecover-go"
	"github.com/ingalls/tilecover-go/internal/cover"
)

func main() {
	var (
		zoom        int
		geojsonPath string
		format      string
		verbose     bool
	)

	flag.IntVar(&zoom, "zoom", -1, "Zoom level to cover at (required, 0-30)")
	flag.StringVar(&geojsonPath, "geojson", "", "Path to a GeoJSON Feature, FeatureCollection, or bare geometry (\"-\" for stdin)")
	flag.StringVar(&format, "format", "text", "Output format: text (z/x/y per line) or json (array of {x,y,z})")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tilecover -zoom <z> -geojson <path|-> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compute the XYZ tiles a GeoJSON geometry covers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if zoom < 0 || zoom > 30 {
		log.Fatal("Missing or invalid -zoom (must be 0-30)")
	}
	if geojsonPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	if format != "text" && format != "json" {
		log.Fatalf("Unknown -format %q (supported: text, json)", format)
	}

	data, err := readInput(geojsonPath)
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}

	geometries, err := decodeGeometries(data)
	if err != nil {
		log.Fatalf("Decoding GeoJSON: %v", err)
	}
	if verbose {
		log.Printf("Decoded %d geometries", len(geometries))
	}

	acc := &cover.Accumulator{}
	for i, g := range geometries {
		tiles, err := tilecover.Tiles(g, uint8(zoom))
		if err != nil {
			log.Fatalf("Geometry %d: %v", i, err)
		}
		for _, t := range tiles {
			acc.Add(t)
		}
	}
	result := acc.Sorted()

	if verbose {
		log.Printf("Covered %d tile(s) at zoom %d", len(result), zoom)
	}

	if err := writeResult(os.Stdout, result, format); err != nil {
		log.Fatalf("Writing output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decodeGeometries accepts a FeatureCollection, a single Feature, or a
// bare geometry, in that order, matching what a GeoJSON-producing
// collaborator is most likely to hand us.
func decodeGeometries(data []byte) ([]orb.Geometry, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		geoms := make([]orb.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		return geoms, nil
	}

	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return []orb.Geometry{f.Geometry}, nil
	}

	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	return []orb.Geometry{g.Geometry()}, nil
}

func writeResult(f *os.File, tiles []tilecover.Tile, format string) error {
	if format == "json" {
		type jsonTile struct {
			X int32 `json:"x"`
			Y int32 `json:"y"`
			Z uint8 `json:"z"`
		}
		out := make([]jsonTile, len(tiles))
		for i, t := range tiles {
			out[i] = jsonTile{X: t.X, Y: t.Y, Z: t.Z}
		}
		enc := json.NewEncoder(f)
		return enc.Encode(out)
	}

	for _, t := range tiles {
		if _, err := fmt.Fprintf(f, "%d/%d/%d\n", t.Z, t.X, t.Y); err != nil {
			return err
		}
	}
	return nil
}
