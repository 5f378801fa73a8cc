package voronoi

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/reikathr/fortunes-geokom/numeric"
)

// siteKeyComparator orders Points lexicographically by (x, y), tolerating
// epsilon within the closure below. It follows the comparator shape the
// teacher's sweepline event queue uses to key a redblacktree.Tree by
// point.
func siteKeyComparator(epsilon float64) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		p := a.(Point)
		q := b.(Point)
		if c := floatCompare(p.X, q.X, epsilon); c != 0 {
			return c
		}
		return floatCompare(p.Y, q.Y, epsilon)
	}
}

func floatCompare(a, b, epsilon float64) int {
	if numeric.FloatEquals(a, b, epsilon) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// detectDuplicates scans sites for exact (within epsilon) coincident
// entries before the sweep runs, using an ephemeral redblacktree keyed by
// site coordinate. It is purely diagnostic: the sweep receives sites
// unchanged, and any resulting numeric degeneracy still surfaces through
// the ordinary geometry error path. Returns the indices of sites found
// to duplicate an earlier one.
func detectDuplicates(sites []Point, epsilon float64) []int {
	tree := rbt.NewWith(siteKeyComparator(epsilon))
	var duplicates []int

	for i, p := range sites {
		if existing, found := tree.Get(p); found {
			logDebugf("site %d duplicates site %d at %s", i, existing.(int), p)
			duplicates = append(duplicates, i)
			continue
		}
		tree.Put(p, i)
	}

	return duplicates
}
