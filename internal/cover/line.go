package cover

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/ingalls/tilecover-go/internal/coord"
)

// ringPoint is a single sampled (x, y) tile coordinate on a rasterized ring.
type ringPoint struct {
	X, Y int32
}

// RingSample is a y-varying subsequence of a ring's rasterized boundary,
// fed to Polygon for its scanline fill. Line maintains two contracts on it:
// consecutive entries differ in y, and the final entry's y differs from
// the first entry's y.
type RingSample []ringPoint

// Line walks the ordered vertex sequence verts with a DDA raster at zoom,
// emitting every integer tile the polyline touches into acc. verts must
// have at least 2 points; shorter inputs are a no-op. When sample is
// non-nil, Line also appends the subsequence of the walk where the row
// changes (see RingSample) that Polygon's scanline fill needs.
func Line(verts []orb.Point, zoom uint8, acc *Accumulator, sample *RingSample) {
	if len(verts) < 2 {
		return
	}

	var prev ringPoint
	hasPrev := false

	emit := func(x, y int32) {
		if hasPrev && x == prev.X && y == prev.Y {
			return
		}
		acc.Add(coord.Tile{X: x, Y: y, Z: zoom})
		if sample != nil && (!hasPrev || y != prev.Y) {
			*sample = append(*sample, ringPoint{X: x, Y: y})
		}
		prev = ringPoint{X: x, Y: y}
		hasPrev = true
	}

	for i := 0; i < len(verts)-1; i++ {
		x0, y0, _ := coord.PointToTileFraction(verts[i].X(), verts[i].Y(), zoom)
		x1, y1, _ := coord.PointToTileFraction(verts[i+1].X(), verts[i+1].Y(), zoom)

		dx := x1 - x0
		dy := y1 - y0
		if dx == 0 && dy == 0 {
			continue
		}

		sx, sy := -1.0, -1.0
		if dx > 0 {
			sx = 1.0
		}
		if dy > 0 {
			sy = 1.0
		}

		x := int32(math.Floor(x0))
		y := int32(math.Floor(y0))

		tMaxX := math.Inf(1)
		if dx != 0 {
			next := 0.0
			if dx > 0 {
				next = 1.0
			}
			tMaxX = math.Abs((next + float64(x) - x0) / dx)
		}
		tMaxY := math.Inf(1)
		if dy != 0 {
			next := 0.0
			if dy > 0 {
				next = 1.0
			}
			tMaxY = math.Abs((next + float64(y) - y0) / dy)
		}

		tdx := math.Inf(1)
		if dx != 0 {
			tdx = math.Abs(sx / dx)
		}
		tdy := math.Inf(1)
		if dy != 0 {
			tdy = math.Abs(sy / dy)
		}

		emit(x, y)

		for tMaxX < 1 || tMaxY < 1 {
			if tMaxX < tMaxY {
				tMaxX += tdx
				x += int32(sx)
			} else {
				tMaxY += tdy
				y += int32(sy)
			}
			emit(x, y)
		}
	}

	if sample != nil && len(*sample) > 0 {
		s := *sample
		if s[len(s)-1].Y == s[0].Y {
			*sample = s[:len(s)-1]
		}
	}
}
