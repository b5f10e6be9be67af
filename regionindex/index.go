package regionindex

import (
	"sort"
	"strings"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/base/log"
	"github.com/grailbio/region/region"
)

// nameKey is an llrb.Comparable key over a region's name.
type nameKey string

func (k nameKey) Compare(c llrb.Comparable) int {
	return strings.Compare(string(k), string(c.(nameKey)))
}

type entry struct {
	name  string
	topY1 int
	r     *region.Region
}

// Index indexes named regions for two query shapes: O(log n) lookup by
// name via an llrb.Tree, and a point query (At) returning the inserted
// region with the smallest topmost Y1 that contains the point.
type Index struct {
	byName  llrb.Tree
	regions map[string]*region.Region
	entries []entry // kept sorted by topY1 ascending
}

// New returns an empty Index.
func New() *Index {
	return &Index{regions: make(map[string]*region.Region)}
}

// Insert adds or replaces the region stored under name. An empty region
// is still reachable by Lookup but is excluded from At, since it covers
// no points.
func (ix *Index) Insert(name string, r *region.Region) {
	if _, exists := ix.regions[name]; !exists {
		ix.byName.Insert(nameKey(name))
	} else {
		log.Printf("regionindex: replacing existing region %q\n", name)
	}
	ix.regions[name] = r

	ix.removeFromSpatialIndex(name)
	pos, _, ok := r.BoundingRect()
	if !ok {
		return
	}
	e := entry{name: name, topY1: pos.Y, r: r}
	i := sort.Search(len(ix.entries), func(i int) bool { return ix.entries[i].topY1 >= e.topY1 })
	ix.entries = append(ix.entries, entry{})
	copy(ix.entries[i+1:], ix.entries[i:])
	ix.entries[i] = e
}

func (ix *Index) removeFromSpatialIndex(name string) {
	for i, e := range ix.entries {
		if e.name == name {
			ix.entries = append(ix.entries[:i], ix.entries[i+1:]...)
			return
		}
	}
}

// Lookup returns the region stored under name.
func (ix *Index) Lookup(name string) (*region.Region, bool) {
	if ix.byName.Get(nameKey(name)) == nil {
		return nil, false
	}
	r, ok := ix.regions[name]
	return r, ok
}

// At returns the name of the inserted region with the smallest topmost Y1
// whose containment test succeeds for p, or ("", false) if none does.
// Entries are scanned in ascending topY1 order and the scan stops as soon
// as a candidate's topY1 exceeds p.Y, since every band in such a region
// starts no earlier than its topY1.
func (ix *Index) At(p region.Point) (string, bool) {
	for _, e := range ix.entries {
		if e.topY1 > p.Y {
			break
		}
		if region.Contains(e.r, p.Y, p.X) {
			return e.name, true
		}
	}
	return "", false
}
