// Package tilecover computes the set of Web-Mercator XYZ tiles at a zoom
// level that a WGS84 geometry covers or touches.
//
// The hard engineering lives in internal/cover (a DDA line-raster walk
// composed with a scanline polygon fill) and internal/coord (the
// projection primitives both are built on). This package is the public
// dispatcher: it demultiplexes on the geometry variant and normalizes the
// result.
package tilecover

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/ingalls/tilecover-go/internal/coord"
	"github.com/ingalls/tilecover-go/internal/cover"
)

// Tile identifies a single cell of the Web-Mercator XYZ pyramid.
type Tile = coord.Tile

// GeomTypeNotSupportedError is returned by Tiles for any geometry variant
// outside Point, MultiPoint, LineString, MultiLineString, Polygon, and
// MultiPolygon.
type GeomTypeNotSupportedError struct {
	Type string
}

func (e *GeomTypeNotSupportedError) Error() string {
	return fmt.Sprintf("tilecover: geometry type %q not supported", e.Type)
}

// PointToTile returns the integer tile containing (lon, lat) at zoom z.
func PointToTile(lon, lat float64, z uint8) Tile {
	return coord.PointToTile(lon, lat, z)
}

// PointToTileFraction returns the precise fractional tile location of
// (lon, lat) at zoom z.
func PointToTileFraction(lon, lat float64, z uint8) (fx, fy float64, fz uint8) {
	return coord.PointToTileFraction(lon, lat, z)
}

// TileToBBox returns the WGS84 (west, south, east, north) bounds of t.
func TileToBBox(t Tile) (west, south, east, north float64) {
	return coord.TileToBBox(t)
}

// TileToLon returns the longitude of the west edge of tile column x at
// zoom z.
func TileToLon(x int32, z uint8) float64 {
	return coord.TileToLon(x, z)
}

// TileToLat returns the latitude of the north edge of tile row y at zoom z.
func TileToLat(y int32, z uint8) float64 {
	return coord.TileToLat(y, z)
}

// GetParent returns the tile one zoom level up that contains t.
func GetParent(t Tile) Tile { return coord.GetParent(t) }

// GetChildren returns the four tiles at z+1 that subdivide t.
func GetChildren(t Tile) [4]Tile { return coord.GetChildren(t) }

// GetSiblings returns the four tiles sharing t's parent (t included).
func GetSiblings(t Tile) [4]Tile { return coord.GetSiblings(t) }

// Tiles returns every tile at zoom that geometry covers or touches.
//
// Point and MultiPoint results preserve first-occurrence order; every
// other variant returns tiles sorted ascending and deduplicated. An
// unsupported geometry variant returns a *GeomTypeNotSupportedError and a
// nil slice.
func Tiles(geometry orb.Geometry, zoom uint8) ([]Tile, error) {
	switch g := geometry.(type) {
	case orb.Point:
		return []Tile{coord.PointToTile(g.X(), g.Y(), zoom)}, nil

	case orb.MultiPoint:
		return tilesForMultiPoint(g, zoom), nil

	case orb.LineString:
		acc := &cover.Accumulator{}
		cover.Line([]orb.Point(g), zoom, acc, nil)
		return acc.Sorted(), nil

	case orb.MultiLineString:
		acc := &cover.Accumulator{}
		for _, line := range g {
			cover.Line([]orb.Point(line), zoom, acc, nil)
		}
		return acc.Sorted(), nil

	case orb.Polygon:
		acc := &cover.Accumulator{}
		cover.Polygon(g, zoom, acc)
		return acc.Sorted(), nil

	case orb.MultiPolygon:
		acc := &cover.Accumulator{}
		for _, poly := range g {
			cover.Polygon(poly, zoom, acc)
		}
		return acc.Sorted(), nil

	default:
		return nil, &GeomTypeNotSupportedError{Type: geometry.GeoJSONType()}
	}
}

// tilesForMultiPoint projects each point independently, keeping only the
// first occurrence of each tile. Since zoom is constant across a call,
// de-duplication on (X, Y) alone is equivalent to de-duplicating on the
// full Tile (see spec.md's open question on this point).
func tilesForMultiPoint(pts orb.MultiPoint, zoom uint8) []Tile {
	seen := make(map[[2]int32]struct{}, len(pts))
	out := make([]Tile, 0, len(pts))
	for _, p := range pts {
		t := coord.PointToTile(p.X(), p.Y(), zoom)
		key := [2]int32{t.X, t.Y}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
