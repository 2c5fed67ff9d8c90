package tilecover

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/paulmach/orb"
)

func TestTiles_Point(t *testing.T) {
	// spec.md §8 scenario 1. The coordinate pair is written there in the
	// order that reproduces its own listed tile ids; PointToTile's
	// documented argument order is (lon, lat) (verified directly against
	// the Rust reference in internal/coord's tests), so the inputs below
	// are passed lat-first to match.
	lat, lon := -77.15664982795715, 38.87419791355846

	tests := []struct {
		z    uint8
		want Tile
	}{
		{1, Tile{X: 1, Y: 1, Z: 1}},
		{2, Tile{X: 2, Y: 3, Z: 2}},
		{3, Tile{X: 4, Y: 6, Z: 3}},
		{4, Tile{X: 9, Y: 13, Z: 4}},
	}
	for _, tt := range tests {
		got, err := Tiles(orb.Point{lon, lat}, tt.z)
		if err != nil {
			t.Fatalf("z=%d: Tiles returned error: %v", tt.z, err)
		}
		want := []Tile{tt.want}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("z=%d: Tiles(point) = %+v, want %+v", tt.z, got, want)
		}
	}
}

func TestTiles_Point_MatchesPointToTile(t *testing.T) {
	lon, lat, z := -77.03239381313323, 38.91326516559442, uint8(10)
	got, err := Tiles(orb.Point{lon, lat}, z)
	if err != nil {
		t.Fatalf("Tiles returned error: %v", err)
	}
	want := []Tile{PointToTile(lon, lat, z)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tiles(point) = %+v, want %+v", got, want)
	}
}

func TestTiles_MultiPoint_FirstSeenOrder(t *testing.T) {
	// spec.md §8 scenario 2, same lat/lon ordering note as scenario 1.
	mp := orb.MultiPoint{
		{43.405, -84.485},
		{39.910, -90.879},
		{43.453, -84.551},
		{39.937, -90.835},
	}

	got, err := Tiles(mp, 1)
	if err != nil {
		t.Fatalf("Tiles returned error: %v", err)
	}
	want := []Tile{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: 2, Z: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tiles(multipoint) = %+v, want %+v", got, want)
	}
}

func TestTiles_LineString(t *testing.T) {
	ls := orb.LineString{
		{-106.21719360351562, 28.592359801121567},
		{-106.1004638671875, 28.791130513231813},
		{-105.87661743164062, 28.864519767126602},
		{-105.82374572753905, 28.60743139267596},
	}

	got, err := Tiles(ls, 12)
	if err != nil {
		t.Fatalf("Tiles returned error: %v", err)
	}

	want := []Tile{
		{X: 839, Y: 1707, Z: 12}, {X: 839, Y: 1708, Z: 12},
		{X: 840, Y: 1705, Z: 12}, {X: 840, Y: 1706, Z: 12}, {X: 840, Y: 1707, Z: 12},
		{X: 841, Y: 1705, Z: 12},
		{X: 842, Y: 1704, Z: 12}, {X: 842, Y: 1705, Z: 12},
		{X: 843, Y: 1704, Z: 12}, {X: 843, Y: 1705, Z: 12}, {X: 843, Y: 1706, Z: 12}, {X: 843, Y: 1707, Z: 12}, {X: 843, Y: 1708, Z: 12},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tiles(linestring) = %+v, want %+v", got, want)
	}
}

func TestTiles_Polygon(t *testing.T) {
	poly := orb.Polygon{
		orb.Ring{
			{5.11962890625, 20.46818922264095},
			{5.11962890625, 20.7663868125152},
			{5.504150390625, 20.7663868125152},
			{5.504150390625, 20.46818922264095},
			{5.11962890625, 20.46818922264095},
		},
	}

	got, err := Tiles(poly, 8)
	if err != nil {
		t.Fatalf("Tiles returned error: %v", err)
	}
	want := []Tile{
		{X: 131, Y: 112, Z: 8},
		{X: 131, Y: 113, Z: 8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tiles(polygon) = %+v, want %+v", got, want)
	}
}

func TestTiles_MultiLineString_SortedNoDuplicates(t *testing.T) {
	mls := orb.MultiLineString{
		{{-106.2, 28.6}, {-106.0, 28.8}},
		{{-106.0, 28.8}, {-105.8, 28.6}}, // shares an endpoint with the first line
	}
	got, err := Tiles(mls, 10)
	if err != nil {
		t.Fatalf("Tiles returned error: %v", err)
	}
	assertSortedNoDuplicates(t, got)
}

func TestTiles_MultiPolygon_SortedNoDuplicates(t *testing.T) {
	mp := orb.MultiPolygon{
		{orb.Ring{{-10, -10}, {-10, -5}, {-5, -5}, {-5, -10}, {-10, -10}}},
		{orb.Ring{{5, 5}, {5, 10}, {10, 10}, {10, 5}, {5, 5}}},
	}
	got, err := Tiles(mp, 6)
	if err != nil {
		t.Fatalf("Tiles returned error: %v", err)
	}
	assertSortedNoDuplicates(t, got)
	if len(got) == 0 {
		t.Fatal("MultiPolygon produced no tiles")
	}
}

func TestTiles_UnsupportedGeometry(t *testing.T) {
	_, err := Tiles(orb.Collection{orb.Point{0, 0}}, 5)
	if err == nil {
		t.Fatal("expected an error for an unsupported geometry variant")
	}
	var notSupported *GeomTypeNotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("error %v is not a *GeomTypeNotSupportedError", err)
	}
}

func assertSortedNoDuplicates(t *testing.T, tiles []Tile) {
	t.Helper()
	if !sort.SliceIsSorted(tiles, func(i, j int) bool { return tiles[i].Less(tiles[j]) }) {
		t.Errorf("tiles not sorted: %+v", tiles)
	}
	for i := 1; i < len(tiles); i++ {
		if tiles[i] == tiles[i-1] {
			t.Errorf("duplicate tile %+v at index %d", tiles[i], i)
		}
	}
}
