package region

// RectIter is a restartable, finite cursor over the rectangles that make
// up a region: one per wall pair per band, in band order then
// left-to-right, pairwise disjoint and exhaustive. It is a stateful
// cursor whose Next method is re-invoked in a loop; a fresh pass is
// obtained by calling Rects again rather than by resetting this one.
type RectIter struct {
	r       *Region
	bandIdx int
	wallIdx int
}

// Rects returns a fresh iterator positioned before the first rectangle.
func (r *Region) Rects() *RectIter {
	return &RectIter{r: r}
}

// Next advances the iterator, storing the next rectangle's position and
// size into *p and *s and returning true, or returning false once every
// rectangle has been visited.
func (it *RectIter) Next(p *Point, s *Size) bool {
	for it.bandIdx < it.r.Len() {
		b := it.r.bandAt(it.bandIdx)
		walls := b.Walls()
		if it.wallIdx >= len(walls) {
			it.bandIdx++
			it.wallIdx = 0
			continue
		}
		x0, x1 := walls[it.wallIdx], walls[it.wallIdx+1]
		*p = Point{Y: b.Y1, X: x0}
		*s = Size{H: b.Y2 - b.Y1, W: x1 - x0}
		it.wallIdx += 2
		return true
	}
	return false
}

// AllRects drains the iterator into a slice, for tests and callers that
// don't need the lazy form.
func (r *Region) AllRects() []Rect {
	var out []Rect
	it := r.Rects()
	var p Point
	var s Size
	for it.Next(&p, &s) {
		out = append(out, Rect{Pos: p, Size: s})
	}
	return out
}
