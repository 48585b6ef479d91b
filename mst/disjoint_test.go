package mst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDisjointSet_FindIdempotent: find is stable and roots are fixed points.
func TestDisjointSet_FindIdempotent(t *testing.T) {
	d := newDisjointSet(6)
	require.True(t, d.union(0, 1))
	require.True(t, d.union(2, 3))
	require.True(t, d.union(1, 3))
	require.False(t, d.union(0, 2), "already joined")

	root := d.find(3)
	for _, x := range []int{0, 1, 2, 3} {
		assert.Equal(t, root, d.find(x))
		assert.Equal(t, root, d.find(d.find(x)))
	}
	assert.Equal(t, 4, d.find(4))
	assert.NotEqual(t, d.find(4), d.find(5))
	assert.Equal(t, 3, d.count, "{0,1,2,3} {4} {5}")
}

// TestDisjointSet_PathCompression: after find every visited node points at the root.
func TestDisjointSet_PathCompression(t *testing.T) {
	d := newDisjointSet(5)
	// Build the chain 4→3→2→1→0 by hand; union by rank would never do this.
	for i := 1; i < 5; i++ {
		d.parent[i] = i - 1
	}
	require.Equal(t, 0, d.find(4))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, d.parent[i], "node %d", i)
	}
}

// TestDisjointSet_UnionByRank: the shallower tree goes under the deeper one.
func TestDisjointSet_UnionByRank(t *testing.T) {
	d := newDisjointSet(4)
	d.union(0, 1) // equal ranks: 1 under 0, rank[0] = 1
	assert.Equal(t, 0, d.parent[1])
	assert.Equal(t, 1, d.rank[0])

	d.union(2, 0) // rank[2]=0 < rank[0]=1: 2 under 0
	assert.Equal(t, 0, d.parent[2])
	assert.Equal(t, 1, d.rank[0], "rank grows only on ties")
}
