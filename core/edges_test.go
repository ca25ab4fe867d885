// Package core_test verifies the arc-pair store: insertion, deletion,
// hide/uncover, slot reuse via reinsert, and the root-edge cache.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stpcore/core"
	"github.com/katalvlaran/stpcore/ilist"
)

// triangle builds a rooted triangle 0—1—2 with terminal root 0 and the given
// edge costs for 0—1, 0—2 and 1—2.
func triangle(t *testing.T, c01, c02, c12 float64) *core.Graph {
	t.Helper()

	g := core.New(3, 12, 1)
	g.AddNode(0) // root terminal
	g.AddNode(core.TermNone)
	g.AddNode(core.TermNone)
	g.Source = 0
	g.AddEdge(0, 1, c01, c01) // arcs 0,1
	g.AddEdge(0, 2, c02, c02) // arcs 2,3
	g.AddEdge(1, 2, c12, c12) // arcs 4,5
	require.NoError(t, g.Valid())

	return g
}

// TestAddEdge_PairLayout locks in the two-arcs-per-edge layout and the
// degree/adjacency bookkeeping of a fresh insertion.
func TestAddEdge_PairLayout(t *testing.T) {
	t.Parallel()

	g := triangle(t, 1, 2, 3)

	// Edge 0 occupies arcs 0 and 1, mirrored.
	require.Equal(t, 0, g.Tail[0])
	require.Equal(t, 1, g.Head[0])
	require.Equal(t, 1, g.Tail[1])
	require.Equal(t, 0, g.Head[1])
	require.Equal(t, 1, core.Anti(0))
	require.Equal(t, 0, core.Anti(1))

	require.Equal(t, 6, g.Edges)
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []int{2, 2, 2}, g.Grad[:3])

	// Head insertion: the outgoing list of node 0 starts at the newest arc.
	require.Equal(t, 2, g.Outbeg[0])
	require.Equal(t, 0, g.Oeat[2])
	require.Equal(t, core.EatLast, g.Oeat[0])
}

// TestAddEdge_CapacityPanics: slot exhaustion is a caller bug, not an error.
func TestAddEdge_CapacityPanics(t *testing.T) {
	t.Parallel()

	g := core.New(2, 2, 1)
	g.AddNode(core.TermNone)
	g.AddNode(core.TermNone)
	g.AddEdge(0, 1, 1, 1)
	require.Panics(t, func() { g.AddEdge(0, 1, 1, 1) })

	// After Resize the same insertion succeeds.
	g.Resize(2, 4, 0)
	require.NotPanics(t, func() { g.AddEdge(1, 0, 2, 2) })
}

// TestDelEdge_SpliceAndFree verifies the four-list splice, degree decrement
// and slot freeing of a deletion in the middle of adjacency lists.
func TestDelEdge_SpliceAndFree(t *testing.T) {
	t.Parallel()

	g := triangle(t, 1, 2, 3)

	g.DelEdge(4) // the 1—2 edge, arcs 4/5
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []int{2, 1, 1}, g.Grad[:3])
	require.Equal(t, core.EatFree, g.Oeat[4])
	require.Equal(t, core.EatFree, g.Ieat[5])
	require.Equal(t, core.UnknownEdge, g.EdgeBetween(1, 2))
	require.NoError(t, g.Valid())

	// Deleting by the odd arc of a pair hits the same edge.
	g.DelEdge(3)
	require.Equal(t, core.EatFree, g.Oeat[2])
	require.NoError(t, g.Valid())

	// Freed arcs must not be deleted twice.
	require.Panics(t, func() { g.DelEdge(4) })
}

// TestHideUncover: hiding is a reversible splice preserving slot identity.
func TestHideUncover(t *testing.T) {
	t.Parallel()

	g := triangle(t, 1, 2, 3)

	g.HideEdge(0)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, []int{1, 1, 2}, g.Grad[:3])
	require.Equal(t, core.EatHide, g.Oeat[0])
	require.Equal(t, core.UnknownEdge, g.EdgeBetween(0, 1))
	require.NoError(t, g.Valid(), "triangle stays connected while one edge is hidden")

	g.Uncover()
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []int{2, 2, 2}, g.Grad[:3])
	require.Equal(t, 0, g.EdgeBetween(0, 1))
	require.Equal(t, 1.0, g.Cost[0])
	require.NoError(t, g.Valid())
}

// TestReinsertEdge covers the three redirect outcomes: slot reuse, coalesce
// into a cheaper existing edge, and cost takeover of a dearer one.
func TestReinsertEdge(t *testing.T) {
	t.Parallel()

	g := triangle(t, 5, 2, 3)
	g.InitHistory()

	// Free the 0—1 slot, then revive it between 1 and 2: a parallel to the
	// existing 1—2 edge of cost 3.
	g.DelEdge(0)

	// Dearer than the existing parallel edge: nothing is inserted.
	n := g.ReinsertEdge(0, 1, 2, 7, ilist.New(0), ilist.New(2))
	require.Equal(t, core.UnknownEdge, n)
	require.Equal(t, core.EatFree, g.Oeat[0], "slot must stay free")
	require.Equal(t, 3.0, g.Cost[g.EdgeBetween(1, 2)])

	// Cheaper: the existing pair takes the new cost and provenance.
	n = g.ReinsertEdge(0, 1, 2, 1, ilist.New(0), ilist.New(2))
	require.Equal(t, g.EdgeBetween(1, 2), n)
	require.Equal(t, 1.0, g.Cost[n])
	require.Equal(t, ilist.List{0, 2}, g.Ancestors[n])
	require.Equal(t, ilist.List{0, 2}, g.Ancestors[core.Anti(n)])

	// No parallel edge at all: the freed slot itself is rewired.
	n = g.ReinsertEdge(0, 0, 1, 4, ilist.New(0), nil)
	require.Equal(t, 0, n)
	require.Equal(t, 4.0, g.Cost[0])
	require.Equal(t, ilist.List{0}, g.Ancestors[0])
	require.NoError(t, g.Valid())
}

// TestRootEdgeCache: root-incident deletions behave identically with the
// cache enabled, including interleaved insertions at the root.
func TestRootEdgeCache(t *testing.T) {
	t.Parallel()

	g := core.New(5, 20, 1)
	g.AddNode(0)
	for i := 0; i < 4; i++ {
		g.AddNode(core.TermNone)
	}
	g.Source = 0
	for i := 1; i <= 4; i++ {
		g.AddEdge(0, i, float64(i), float64(i))
	}
	require.NoError(t, g.Valid())

	g.EnableRootEdgeCache()
	require.Panics(t, func() { g.EnableRootEdgeCache() })

	g.DelEdge(g.EdgeBetween(0, 2))
	g.AddEdge(0, 2, 9, 9)
	g.DelEdge(g.EdgeBetween(0, 1))
	g.DelEdge(g.EdgeBetween(0, 4))
	require.NoError(t, g.Valid())
	require.Equal(t, 2, g.Grad[0])
	require.Equal(t, 9.0, g.Cost[g.EdgeBetween(0, 2)])

	g.DisableRootEdgeCache()
	require.Panics(t, func() { g.DisableRootEdgeCache() })
	require.NoError(t, g.Valid())
}

// TestRootEdgeCache_RejectsRootLoop: a self-loop at the root cannot be
// represented in the predecessor cache.
func TestRootEdgeCache_RejectsRootLoop(t *testing.T) {
	t.Parallel()

	g := core.New(2, 4, 1)
	g.AddNode(0)
	g.AddNode(core.TermNone)
	g.Source = 0
	g.AddEdge(0, 0, 1, 1)
	require.Panics(t, func() { g.EnableRootEdgeCache() })
}

// TestDegreeConsistency_RandomishMutation: Grad matches the live arcs after
// an arbitrary add/delete/hide sequence.
func TestDegreeConsistency_RandomishMutation(t *testing.T) {
	t.Parallel()

	g := core.New(6, 40, 1)
	g.AddNode(0)
	for i := 0; i < 5; i++ {
		g.AddNode(core.TermNone)
	}
	g.Source = 0
	edges := [][2]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 5}, {0, 5}}
	for i, p := range edges {
		g.AddEdge(p[0], p[1], float64(i+1), float64(i+1))
	}
	g.DelEdge(g.EdgeBetween(1, 2))
	g.HideEdge(g.EdgeBetween(2, 4))
	g.DelEdge(g.EdgeBetween(0, 5))
	g.Uncover()
	g.DelEdge(g.EdgeBetween(3, 4))

	require.NoError(t, g.Valid())
	for k := 0; k < g.Knots; k++ {
		live := 0
		for e := 0; e < g.Edges; e++ {
			if g.Oeat[e] != core.EatFree && g.Oeat[e] != core.EatHide && g.Tail[e] == k {
				live++
			}
		}
		require.Equal(t, live, g.Grad[k], "node %d", k)
	}
}
