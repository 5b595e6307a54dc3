package merge

import "sort"

// DisjointSet is a union-find forest over the integers [0, n). Parents and
// ranks live in flat arenas indexed by element. Find compresses paths and
// Union links by rank, so both run in near-constant amortized time.
//
// A DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []int
	rank   []int
	count  int
}

// NewDisjointSet returns n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the representative of the set containing x.
func (d *DisjointSet) Find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing a and b. It reports whether the two
// were previously disjoint.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		ra, rb = rb, ra
	case d.rank[ra] == d.rank[rb]:
		d.rank[ra]++
	}
	d.parent[rb] = ra
	d.count--
	return true
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Groups returns the members of every set. Members are ascending within a
// group and groups are ordered by their smallest member, so the result does
// not depend on the order in which unions were applied.
func (d *DisjointSet) Groups() [][]int {
	byRoot := make(map[int][]int, d.count)
	for i := range d.parent {
		r := d.Find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	groups := make([][]int, 0, len(byRoot))
	for _, g := range byRoot {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i][0] < groups[j][0]
	})
	return groups
}
