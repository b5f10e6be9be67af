// Package growable implements the fixed growth discipline the region
// package's band and wall storage both rely on: start at MinCapacity,
// double on overflow.
package growable

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// MinCapacity is the initial capacity of a Buffer's backing array.
const MinCapacity = 8

// ErrAllocation is returned when a Buffer cannot grow any further. A real
// host out-of-memory condition cannot be intercepted in Go (the runtime
// throws a fatal, unrecoverable error for that); this models the one
// growth failure Go code can deterministically detect instead: capacity
// doubling about to overflow int.
var ErrAllocation = errors.New("growable: allocation failure")

// nextExp2 returns the next power of 2 strictly greater than x.
func nextExp2(x int) int {
	log2 := 63 - bits.LeadingZeros64(uint64(x))
	return 2 << uint32(log2)
}

// Buffer is a growable buffer of T, amortized O(1) append. The zero value
// is an empty, ready-to-use Buffer.
type Buffer[T any] struct {
	data []T
}

// Len returns the number of elements appended so far.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Slice returns the live elements. The returned slice is invalidated by
// the next Append that grows the backing array.
func (b *Buffer[T]) Slice() []T { return b.data }

// At returns the element at index i.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Set overwrites the element at index i.
func (b *Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Truncate drops the last n elements.
func (b *Buffer[T]) Truncate(n int) { b.data = b.data[:len(b.data)-n] }

// Append adds v, growing the backing array if it is at capacity.
func (b *Buffer[T]) Append(v T) error {
	if len(b.data) == cap(b.data) {
		newCap := MinCapacity
		if c := cap(b.data); c > 0 {
			if c > math.MaxInt/2 {
				return ErrAllocation
			}
			newCap = nextExp2(c)
		}
		grown := make([]T, len(b.data), newCap)
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, v)
	return nil
}
