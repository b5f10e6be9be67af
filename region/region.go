package region

import (
	"fmt"
	"strings"

	"github.com/grailbio/region/internal/growable"
	"github.com/pkg/errors"
)

// Region is a y-sorted, y-disjoint sequence of Bands in canonical form: no
// band is empty, and no two vertically adjacent bands carry identical wall
// vectors (they would have been fused into one). Every set operation
// allocates a fresh Region; operands are never mutated.
type Region struct {
	bands growable.Buffer[Band]
}

// Len returns the number of bands in r.
func (r *Region) Len() int { return r.bands.Len() }

// IsNonempty reports whether r has any bands at all.
func (r *Region) IsNonempty() bool { return r.Len() > 0 }

// bandAt returns a pointer to the i'th band. The pointer is invalidated by
// any append that grows r's band array.
func (r *Region) bandAt(i int) *Band { return &r.bands.Slice()[i] }

// lastBand returns a pointer to the final band, or nil if r is empty.
func (r *Region) lastBand() *Band {
	n := r.Len()
	if n == 0 {
		return nil
	}
	return r.bandAt(n - 1)
}

// appendBand appends a new band [y1, y2) with the given walls. An empty
// wall vector is discarded outright; a band vertically adjacent to (and
// carrying identical walls to) the current last band is fused into it by
// extending that band's Y2 rather than appended as a new entry. This is
// the sole mechanism that keeps every Region canonical across every
// merge, applied incrementally as each band is produced rather than as a
// cleanup pass afterward.
func (r *Region) appendBand(y1, y2 int, walls []int) error {
	if len(walls) == 0 {
		return nil
	}
	if prev := r.lastBand(); prev != nil && prev.Y2 == y1 && wallsEqual(prev.Walls(), walls) {
		prev.Y2 = y2
		return nil
	}
	band := Band{Y1: y1, Y2: y2}
	for _, x := range walls {
		if err := band.appendWall(x); err != nil {
			return errors.Wrapf(err, "region: append wall %d to band [%d, %d)", x, y1, y2)
		}
	}
	if err := r.bands.Append(band); err != nil {
		return errors.Wrapf(err, "region: append band [%d, %d)", y1, y2)
	}
	return nil
}

// Equal reports whether a and b have identical band/wall representations.
// Because every region produced by this package is canonical, two regions
// denote the same set of points if and only if Equal returns true.
func Equal(a, b *Region) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ba, bb := a.bandAt(i), b.bandAt(i)
		if ba.Y1 != bb.Y1 || ba.Y2 != bb.Y2 || !sameWalls(ba, bb) {
			return false
		}
	}
	return true
}

// BoundingRect returns the smallest rectangle containing every band of r,
// and false if r is empty.
func (r *Region) BoundingRect() (Point, Size, bool) {
	if r.Len() == 0 {
		return Point{}, Size{}, false
	}
	first, last := r.bandAt(0), r.lastBand()
	minX, maxX := first.Walls()[0], first.Walls()[0]
	for i := 0; i < r.Len(); i++ {
		w := r.bandAt(i).Walls()
		if w[0] < minX {
			minX = w[0]
		}
		if w[len(w)-1] > maxX {
			maxX = w[len(w)-1]
		}
	}
	return Point{Y: first.Y1, X: minX}, Size{H: last.Y2 - first.Y1, W: maxX - minX}, true
}

// DebugString renders r for diagnostics only; its format is not a
// stability contract and may change between versions.
func (r *Region) DebugString() string {
	var sb strings.Builder
	for i := 0; i < r.Len(); i++ {
		b := r.bandAt(i)
		fmt.Fprintf(&sb, "Band(%d, %d, walls=%v)\n", b.Y1, b.Y2, b.Walls())
	}
	return sb.String()
}
