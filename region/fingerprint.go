package region

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
)

// Fingerprint returns a fast content hash of r's canonical representation.
// Because every Region this package produces is canonical, Equal(a, b)
// implies Fingerprint(a) == Fingerprint(b), so callers can compare
// fingerprints first and run the O(bands+walls) Equal check only when
// they match.
func (r *Region) Fingerprint() uint64 {
	var buf []byte
	var scratch [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(scratch[:], uint64(v))
		buf = append(buf, scratch[:]...)
	}
	for i := 0; i < r.Len(); i++ {
		b := r.bandAt(i)
		put(b.Y1)
		put(b.Y2)
		for _, w := range b.Walls() {
			put(w)
		}
	}
	return farm.Hash64WithSeed(buf, uint64(r.Len()))
}
