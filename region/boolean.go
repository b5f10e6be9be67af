package region

import "github.com/pkg/errors"

// Union returns a ∪ b.
func Union(a, b *Region) (*Region, error) {
	r, err := mergeRegions(a, b, OR)
	return r, errors.Wrap(err, "region: union")
}

// Intersection returns a ∩ b.
func Intersection(a, b *Region) (*Region, error) {
	r, err := mergeRegions(a, b, AND)
	return r, errors.Wrap(err, "region: intersection")
}

// Difference returns a \ b.
func Difference(a, b *Region) (*Region, error) {
	r, err := mergeRegions(a, b, SUB)
	return r, errors.Wrap(err, "region: difference")
}

// SymmetricDifference returns a ⊕ b.
func SymmetricDifference(a, b *Region) (*Region, error) {
	r, err := mergeRegions(a, b, XOR)
	return r, errors.Wrap(err, "region: symmetric difference")
}
