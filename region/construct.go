package region

import "github.com/pkg/errors"

// Empty returns a region with zero bands.
func Empty() *Region {
	return &Region{}
}

// FromRect returns the region consisting of exactly one rectangle at pos
// with the given size. If h <= 0 or w <= 0 the result is empty.
func FromRect(pos Point, size Size) (*Region, error) {
	r := Empty()
	if size.H <= 0 || size.W <= 0 {
		return r, nil
	}
	if err := r.appendBand(pos.Y, pos.Y+size.H, []int{pos.X, pos.X + size.W}); err != nil {
		return nil, errors.Wrapf(err, "region: from rect at %+v size %+v", pos, size)
	}
	return r, nil
}
