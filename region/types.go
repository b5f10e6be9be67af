package region

// Point is a single coordinate in the plane, row (Y) first, matching the
// [y][x] indexing convention of the terminal-graphics host this algebra
// serves.
type Point struct {
	Y, X int
}

// Size is a height/width pair.
type Size struct {
	H, W int
}

// Rect is a convenience pairing of a Point and a Size, used only at the
// RectIter boundary; regions do not store rectangles internally.
type Rect struct {
	Pos  Point
	Size Size
}
