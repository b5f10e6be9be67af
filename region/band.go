package region

import "github.com/grailbio/region/internal/growable"

// Band is a horizontal strip [Y1, Y2) carrying one wall vector: an even
// length, strictly increasing sequence of x-coordinates such that pair
// (walls[2k], walls[2k+1]) is the half-open interval [walls[2k],
// walls[2k+1]) that lies inside the region on this strip.
//
// A Band's zero value is a valid, empty band with Y1 == Y2 == 0; it is
// never stored in a Region until it has at least one wall and Y1 < Y2.
// This is what lets growing a Region's band array (growable.Buffer[Band])
// expose freshly zeroed slots safely: the new Band's walls buffer is
// itself a zero-value growable.Buffer[int], ready for its first append.
type Band struct {
	Y1, Y2 int
	walls  growable.Buffer[int]
}

// Walls returns the band's wall vector. The returned slice is invalidated
// by any further mutation of the band.
func (b *Band) Walls() []int { return b.walls.Slice() }

// appendWall grows the wall vector by one coordinate.
func (b *Band) appendWall(x int) error { return b.walls.Append(x) }

// sameWalls reports whether two bands carry element-wise identical wall
// vectors, the per-band test Equal in region.go needs.
func sameWalls(a, b *Band) bool {
	return wallsEqual(a.Walls(), b.Walls())
}

// wallsEqual reports whether two wall vectors are element-wise identical.
func wallsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
