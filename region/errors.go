package region

import "github.com/grailbio/region/internal/growable"

// ErrAllocation is returned by any region-building operation whose band or
// wall storage cannot grow any further. It is the only error kind this
// package raises by construction; degenerate inputs (non-positive rect
// sizes, empty operands, out-of-range query points) are never errors,
// only well-defined empty or false results.
var ErrAllocation = growable.ErrAllocation
