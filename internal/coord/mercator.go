// Package coord implements the Web-Mercator tile projection primitives:
// conversions between WGS84 longitude/latitude and fractional or integer
// XYZ tile coordinates, bounding-box recovery, and the tile hierarchy
// (parent, children, siblings).
package coord

import "math"

const (
	// D2R converts degrees to radians.
	D2R = math.Pi / 180.0
	// R2D converts radians to degrees.
	R2D = 180.0 / math.Pi
)

// Tile identifies a single cell of the Web-Mercator XYZ pyramid: column x,
// row y (origin at the NW corner, y increasing south), at zoom z.
type Tile struct {
	X, Y int32
	Z    uint8
}

// Less reports whether t sorts before o, lexicographically on (X, Y, Z).
func (t Tile) Less(o Tile) bool {
	if t.X != o.X {
		return t.X < o.X
	}
	if t.Y != o.Y {
		return t.Y < o.Y
	}
	return t.Z < o.Z
}

// PointToTileFraction returns the precise fractional tile coordinates of
// (lon, lat) at zoom z. x wraps across the antimeridian into [0, 2^z); y is
// left unwrapped so callers can detect latitudes beyond the Web-Mercator
// cutoff (~85.051 degrees).
func PointToTileFraction(lon, lat float64, z uint8) (fx, fy float64, fz uint8) {
	sin := math.Sin(lat * D2R)
	z2 := math.Pow(2, float64(z))

	fx = z2 * (lon/360.0 + 0.5)
	fy = z2 * (0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi)

	fx = math.Mod(fx, z2)
	if fx < 0 {
		fx += z2
	}
	return fx, fy, z
}

// PointToTile returns the integer tile containing (lon, lat) at zoom z.
func PointToTile(lon, lat float64, z uint8) Tile {
	fx, fy, _ := PointToTileFraction(lon, lat, z)
	return Tile{X: int32(math.Floor(fx)), Y: int32(math.Floor(fy)), Z: z}
}

// TileToLon returns the longitude of the west edge of tile column x at
// zoom z.
func TileToLon(x int32, z uint8) float64 {
	return float64(x)/math.Pow(2, float64(z))*360.0 - 180.0
}

// TileToLat returns the latitude of the north edge of tile row y at zoom z.
func TileToLat(y int32, z uint8) float64 {
	n := math.Pi - 2.0*math.Pi*float64(y)/math.Pow(2, float64(z))
	return R2D * math.Atan(0.5*(math.Exp(n)-math.Exp(-n)))
}

// TileToBBox returns the WGS84 (west, south, east, north) bounds of a tile.
func TileToBBox(t Tile) (west, south, east, north float64) {
	west = TileToLon(t.X, t.Z)
	south = TileToLat(t.Y+1, t.Z)
	east = TileToLon(t.X+1, t.Z)
	north = TileToLat(t.Y, t.Z)
	return west, south, east, north
}

// GetParent returns the tile one zoom level up that contains t. t.Z must be
// >= 1; the root tile at z=0 has no parent and is returned unchanged rather
// than underflowing Z.
func GetParent(t Tile) Tile {
	if t.Z == 0 {
		return t
	}
	return Tile{X: t.X >> 1, Y: t.Y >> 1, Z: t.Z - 1}
}

// GetChildren returns the four tiles at z+1 that subdivide t, in the fixed
// order (2x,2y), (2x+1,2y), (2x+1,2y+1), (2x,2y+1).
func GetChildren(t Tile) [4]Tile {
	z := t.Z + 1
	x2, y2 := t.X*2, t.Y*2
	return [4]Tile{
		{X: x2, Y: y2, Z: z},
		{X: x2 + 1, Y: y2, Z: z},
		{X: x2 + 1, Y: y2 + 1, Z: z},
		{X: x2, Y: y2 + 1, Z: z},
	}
}

// GetSiblings returns the four tiles sharing t's parent, in the same fixed
// order as GetChildren.
func GetSiblings(t Tile) [4]Tile {
	return GetChildren(GetParent(t))
}
