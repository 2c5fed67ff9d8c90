package cover

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/ingalls/tilecover-go/internal/coord"
)

// Polygon drives Line over poly's exterior ring and every interior (hole)
// ring, writing boundary tiles into acc, then fills every tile strictly
// between paired x-crossings on each row using the rings' rasterized
// samples.
func Polygon(poly orb.Polygon, zoom uint8, acc *Accumulator) {
	var intersections []ringPoint

	for _, ring := range poly {
		var sample RingSample
		Line([]orb.Point(ring), zoom, acc, &sample)
		intersections = append(intersections, extractIntersections(sample)...)
	}

	sort.Slice(intersections, func(i, j int) bool {
		if intersections[i].Y != intersections[j].Y {
			return intersections[i].Y < intersections[j].Y
		}
		return intersections[i].X < intersections[j].X
	})

	for i := 0; i+1 < len(intersections); i += 2 {
		a, b := intersections[i], intersections[i+1]
		for x := a.X + 1; x < b.X; x++ {
			acc.Add(coord.Tile{X: x, Y: a.Y, Z: zoom})
		}
	}
}

// extractIntersections harvests the ring points that are true edge
// crossings: not a local extremum of the rasterized ring, and not the
// first of a pair of same-row samples.
func extractIntersections(ring RingSample) []ringPoint {
	n := len(ring)
	if n == 0 {
		return nil
	}

	out := make([]ringPoint, 0, n)
	for j := 0; j < n; j++ {
		k := (j - 1 + n) % n
		m := (j + 1) % n
		y := ring[j].Y

		notLocalMin := y > ring[k].Y || y > ring[m].Y
		notLocalMax := y < ring[k].Y || y < ring[m].Y
		notFirstOfPair := y != ring[m].Y

		if notLocalMin && notLocalMax && notFirstOfPair {
			out = append(out, ring[j])
		}
	}
	return out
}
