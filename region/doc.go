/*Package region implements a planar region algebra over axis-aligned
  integer rectangles: a region is an arbitrary orthogonally-bounded subset
  of the plane, represented canonically as a y-sorted sequence of bands,
  each carrying a wall vector of alternating enter/exit x-coordinates.
  Union, intersection, difference and symmetric difference are all
  implemented by a single scanline merge, parameterized on a 2-bit
  Boolean operator; see merge.go.
*/
package region
