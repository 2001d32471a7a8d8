package puzzle

import (
	"sync"

	"github.com/dbrotsky/susen/internal/tablecache"
)

/*

Bit utilities

Every region rule and line rule needs two small, expensive-to-build
tables per grid size N: a population-count table over 0..2^N-1, and
the list of all non-empty subsets of {0..N-1}, grouped by
cardinality.  Both depend only on N, so they are built once per N and
cached for the life of the process, mirroring the original solver's
one-time static initialization.

*/

// subsetTable holds, for one grid size N, the population-count table
// and the ordered list of non-empty subsets of {0..N-1}.
//
// subsets is sorted by ascending popcount.  bounds[k] is the index,
// one past the last subset of cardinality k, in subsets — so
// subsets[bounds[k-1]:bounds[k]] is exactly the subsets of
// cardinality k, for k in 1..N.  bounds[0] == 1 always (it accounts
// for the empty subset, which subsets[0] holds but which is never
// iterated by a rule).
type subsetTable struct {
	n       int
	popcnt  []int
	subsets []uint32
	bounds  []int
}

var subsetTables sync.Map // map[int]*subsetTable

// TableCache, when non-nil, mirrors each freshly-built subsetTable to
// a shared Redis instance (see internal/tablecache) so a fleet of
// processes solving the same N pays the table-build cost once.  It is
// nil by default: subsetsForN works exactly as before, purely
// in-process, until a caller (e.g. cmd/susen-solve) opts in.
var TableCache *tablecache.Cache

// subsetsForN returns the cached subsetTable for grid size n,
// building it (or fetching it from TableCache) on first use.
func subsetsForN(n int) *subsetTable {
	if v, ok := subsetTables.Load(n); ok {
		return v.(*subsetTable)
	}
	t := loadOrBuildSubsetTable(n)
	actual, _ := subsetTables.LoadOrStore(n, t)
	return actual.(*subsetTable)
}

func loadOrBuildSubsetTable(n int) *subsetTable {
	if TableCache != nil {
		if popcnt, subsets, bounds, ok := TableCache.Get(n); ok {
			return &subsetTable{n: n, popcnt: popcnt, subsets: subsets, bounds: bounds}
		}
	}
	t := buildSubsetTable(n)
	if TableCache != nil {
		TableCache.Put(n, t.popcnt, t.subsets, t.bounds)
	}
	return t
}

func buildSubsetTable(n int) *subsetTable {
	size := 1 << uint(n)
	popcnt := make([]int, size)
	for m := 1; m < size; m++ {
		popcnt[m] = popcnt[m>>1] + (m & 1)
	}
	subsets := make([]uint32, size)
	bounds := make([]int, n+1)
	idx := 0
	for k := 0; k <= n; k++ {
		for m := 0; m < size; m++ {
			if popcnt[m] == k {
				subsets[idx] = uint32(m)
				idx++
			}
		}
		bounds[k] = idx
	}
	return &subsetTable{n: n, popcnt: popcnt, subsets: subsets, bounds: bounds}
}

// popcount returns the number of set bits in m, for a table built
// with n large enough to cover m.
func (t *subsetTable) popcount(m uint32) int {
	return t.popcnt[m]
}

// ofSize returns the subsets of cardinality k (1 <= k <= n).
func (t *subsetTable) ofSize(k int) []uint32 {
	return t.subsets[t.bounds[k-1]:t.bounds[k]]
}

// popcount32 is a standalone population count, used where no
// subsetTable is in scope (e.g. when checking a cell mask rather
// than an index bitmask).
func popcount32(m uint32) int {
	c := 0
	for m != 0 {
		m &= m - 1
		c++
	}
	return c
}

// lowestBit returns the value 1..32 of the lowest set bit of m, or 0
// if m is zero.
func lowestBit(m uint32) int {
	if m == 0 {
		return 0
	}
	v := 1
	for m&1 == 0 {
		m >>= 1
		v++
	}
	return v
}
