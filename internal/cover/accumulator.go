// Package cover implements the DDA line-cover traversal and the scanline
// polygon fill that together turn a WGS84 polyline or ring sequence into
// the set of XYZ tiles it covers.
package cover

import (
	"sort"

	"github.com/ingalls/tilecover-go/internal/coord"
)

// Accumulator collects the tiles emitted by one or more cover walks.
type Accumulator struct {
	tiles []coord.Tile
}

// Add appends t to the accumulator. Duplicates are allowed; Sorted removes
// them.
func (a *Accumulator) Add(t coord.Tile) {
	a.tiles = append(a.tiles, t)
}

// Sorted returns the accumulated tiles in ascending lexicographic order on
// (X, Y, Z) with duplicates removed. The accumulator itself is left
// untouched.
func (a *Accumulator) Sorted() []coord.Tile {
	out := append([]coord.Tile(nil), a.tiles...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	if len(out) == 0 {
		return out
	}
	dedup := out[:1]
	for _, t := range out[1:] {
		if t != dedup[len(dedup)-1] {
			dedup = append(dedup, t)
		}
	}
	return dedup
}
