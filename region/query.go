package region

import "sort"

// Contains reports whether (y, x) lies inside r. Returns false for empty
// regions or out-of-range y.
func Contains(r *Region, y, x int) bool {
	n := r.Len()
	if n == 0 {
		return false
	}
	// Largest i with bands[i].Y1 <= y.
	i := sort.Search(n, func(i int) bool { return r.bandAt(i).Y1 > y }) - 1
	if i < 0 {
		return false
	}
	b := r.bandAt(i)
	if y >= b.Y2 {
		return false
	}
	walls := b.Walls()
	// Count of walls <= x is the index of the first wall strictly greater
	// than x; inside iff that count is odd.
	count := sort.Search(len(walls), func(k int) bool { return walls[k] > x })
	return count%2 == 1
}
