package mst

// disjointSet is a union-find over dense indices 0..n-1.
// find(x) is idempotent and returns the canonical root of x's component.
type disjointSet struct {
	parent []int
	rank   []int
	count  int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find returns x's root and repoints every node on the way directly at it.
func (d *disjointSet) find(x int) int {
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

// union merges the components of x and y and reports whether they were
// distinct. The lower-rank root goes under the higher; on equal rank y's
// root goes under x's and x's root gains a rank.
func (d *disjointSet) union(x, y int) bool {
	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false
	}
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--

	return true
}
