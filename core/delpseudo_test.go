package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stpcore/core"
)

// fiveStar builds a star: center 5 joined to nodes 0..4 with edge costs
// 1..5, root 0 terminal, and arcCap slots in total.
func fiveStar(t *testing.T, arcCap int) *core.Graph {
	t.Helper()

	g := core.New(6, arcCap, 1)
	g.AddNode(0)
	for i := 0; i < 5; i++ {
		g.AddNode(core.TermNone)
	}
	g.Source = 0
	for i := 0; i < 5; i++ {
		g.AddEdge(5, i, float64(i+1), float64(i+1))
	}
	require.NoError(t, g.Valid())

	return g
}

// TestDelPseudo_FullClique: a degree-5 vertex with no cutoffs is replaced by
// all ten neighbor pairs, each costing the sum of the two removed edges.
func TestDelPseudo_FullClique(t *testing.T) {
	t.Parallel()

	g := fiveStar(t, 30)
	require.True(t, g.DelPseudo(5, nil, nil, nil))

	require.Equal(t, 0, g.Grad[5])
	require.Equal(t, 10, g.EdgeCount())
	for x := 0; x < 5; x++ {
		require.Equal(t, 4, g.Grad[x])
		for y := x + 1; y < 5; y++ {
			e := g.EdgeBetween(x, y)
			require.NotEqual(t, core.UnknownEdge, e)
			want := float64(x+1) + float64(y+1)
			require.Equal(t, want, g.Cost[e])
			require.Equal(t, want, g.Cost[core.Anti(e)])
		}
	}
	require.NoError(t, g.Valid())
}

// TestDelPseudo_AbortLeavesGraphUntouched: when the replacement edges cannot
// all be placed, nothing is placed and the graph is bit-for-bit unchanged.
func TestDelPseudo_AbortLeavesGraphUntouched(t *testing.T) {
	t.Parallel()

	// Exactly the star's own ten arc slots: five freed pairs cannot host ten
	// replacement edges and there is no tail capacity.
	g := fiveStar(t, 10)
	snap := g.Copy()

	require.False(t, g.DelPseudo(5, nil, nil, nil))
	require.Equal(t, snap, g)
	require.NoError(t, g.Valid())
}

// TestDelPseudo_ProvenanceUnion: each replacement edge inherits the combined
// ancestry of the two incident edges it stands in for.
func TestDelPseudo_ProvenanceUnion(t *testing.T) {
	t.Parallel()

	g := fiveStar(t, 30)
	g.InitHistory()
	require.True(t, g.DelPseudo(5, nil, nil, nil))

	for x := 0; x < 5; x++ {
		for y := x + 1; y < 5; y++ {
			e := g.EdgeBetween(x, y)
			anc := g.Ancestors[e]
			require.Len(t, anc, 2)
			// The star edge to neighbor i occupies the arc pair (2i, 2i+1);
			// either direction of each may justify the replacement.
			require.True(t, anc.Contains(2*x) || anc.Contains(2*x+1), "ancestry of %d—%d misses the edge to %d: %v", x, y, x, anc)
			require.True(t, anc.Contains(2*y) || anc.Contains(2*y+1), "ancestry of %d—%d misses the edge to %d: %v", x, y, y, anc)
		}
	}
}

// TestDelPseudo_CutoffPrunes: a candidate above its cutoff is skipped while
// the rest of the elimination proceeds. Cutoffs follow the flattened i<j
// order of the vertex's adjacency list, which holds the newest edge first.
func TestDelPseudo_CutoffPrunes(t *testing.T) {
	t.Parallel()

	g := core.New(5, 20, 1)
	g.AddNode(0)
	for i := 0; i < 4; i++ {
		g.AddNode(core.TermNone)
	}
	g.Source = 0
	g.AddEdge(0, 1, 1, 1)
	g.AddEdge(4, 1, 1, 1)
	g.AddEdge(4, 2, 1, 1)
	g.AddEdge(4, 3, 1, 1)

	// Adjacency of 4 reads [3, 2, 1]; pairs (3,2), (3,1), (2,1) in that
	// order. The last cutoff prunes the 2—1 candidate of cost 2.
	require.True(t, g.DelPseudo(4, nil, []float64{3, 3, 1.5}, nil))

	require.Equal(t, 0, g.Grad[4])
	require.Equal(t, 2.0, g.Cost[g.EdgeBetween(3, 2)])
	require.Equal(t, 2.0, g.Cost[g.EdgeBetween(3, 1)])
	require.Equal(t, core.UnknownEdge, g.EdgeBetween(2, 1))
	require.Equal(t, core.UnknownEdge, g.EdgeBetween(1, 2))
	require.NoError(t, g.Valid())
}

// TestDelPseudo_ReusesParallelEdge: an existing neighbor-to-neighbor edge is
// kept and only lowered to the replacement cost, consuming no slot.
func TestDelPseudo_ReusesParallelEdge(t *testing.T) {
	t.Parallel()

	g := core.New(4, 12, 1)
	g.AddNode(0)
	for i := 0; i < 3; i++ {
		g.AddNode(core.TermNone)
	}
	g.Source = 0
	g.AddEdge(0, 3, 1, 1)
	g.AddEdge(3, 1, 1, 1)
	g.AddEdge(3, 2, 1, 1)
	g.AddEdge(1, 2, 9, 9) // dearer than the 1—3—2 detour
	existing := g.EdgeBetween(1, 2)

	require.True(t, g.DelPseudo(3, nil, nil, nil))
	require.Equal(t, existing, g.EdgeBetween(1, 2), "same arc pair survives")
	require.Equal(t, 2.0, g.Cost[existing])
	require.Equal(t, 2.0, g.Cost[core.Anti(existing)])
	require.NoError(t, g.Valid())
}

// TestDelPseudo_ProfitableTerminal: eliminating a prize-collecting terminal
// in the extended view strips its dummy extension and discounts the prize
// from every replacement edge.
func TestDelPseudo_ProfitableTerminal(t *testing.T) {
	t.Parallel()

	g := core.New(3, 6, 1)
	g.AddNode(core.TermNone)
	g.AddNode(0)
	g.AddNode(core.TermNone)
	g.AddEdge(0, 1, 2, 2)
	g.AddEdge(1, 2, 3, 3)
	g.ToPcspg([]float64{0, 1, 0})

	require.True(t, g.DelPseudo(1, nil, nil, nil))

	require.Equal(t, 0, g.Grad[1])
	require.False(t, g.IsPseudoTerm(1))
	e := g.EdgeBetween(0, 2)
	require.NotEqual(t, core.UnknownEdge, e)
	require.Equal(t, 4.0, g.Cost[e], "2 + 3 minus the prize of 1")
	require.Equal(t, 1, g.Terms, "only the artificial root remains a terminal")
	require.Equal(t, 0, g.Grad[g.Source], "the extension and choice edges are gone")
}

// TestDelPseudo_CarriesExtensionProvenance: eliminating a profitable
// terminal with history enabled folds the stripped extension arcs into every
// replacement edge's ancestry, so the collect/forfeit/choice arcs stay
// traceable after the node is gone.
func TestDelPseudo_CarriesExtensionProvenance(t *testing.T) {
	t.Parallel()

	g := core.New(3, 6, 1)
	g.AddNode(core.TermNone)
	g.AddNode(0)
	g.AddNode(core.TermNone)
	g.AddEdge(0, 1, 2, 2) // arcs 0,1
	g.AddEdge(1, 2, 3, 3) // arcs 2,3
	g.ToPcspg([]float64{0, 1, 0})
	// Extension of terminal 1: collect 4,5 / forfeit 6,7 / choice 8,9.
	g.InitHistory()

	require.True(t, g.DelPseudo(1, nil, nil, nil))

	e := g.EdgeBetween(0, 2)
	require.NotEqual(t, core.UnknownEdge, e)
	want := []int{1, 2, 4, 6, 8}
	require.ElementsMatch(t, want, g.Ancestors[e])
	require.ElementsMatch(t, want, g.Ancestors[core.Anti(e)])
	require.Empty(t, g.PCAncestors[1], "the record moved onto the replacement edge")
}

// TestDelPseudo_Preconditions: the documented caller bugs panic.
func TestDelPseudo_Preconditions(t *testing.T) {
	t.Parallel()

	g := core.New(8, 20, 1)
	g.AddNode(0)
	for i := 0; i < 7; i++ {
		g.AddNode(core.TermNone)
	}
	g.Source = 0
	for i := 1; i <= 6; i++ {
		g.AddEdge(7, i, 1, 1)
	}
	g.AddEdge(0, 1, 1, 1)

	require.Panics(t, func() { g.DelPseudo(7, nil, nil, nil) }, "degree above bound")
	require.Panics(t, func() { g.DelPseudo(0, nil, nil, nil) }, "root")

	h := path3(t, 1, 2)
	require.Panics(t, func() { h.DelPseudo(2, nil, nil, nil) }, "terminal outside PC/MW")
}

// TestDelPseudo_PathSubstitution: eliminating a degree-2 interior node and
// packing yields the two-node instance with the summed edge cost.
func TestDelPseudo_PathSubstitution(t *testing.T) {
	t.Parallel()

	g := path3(t, 1, 2)
	require.True(t, g.DelPseudo(1, nil, nil, nil))

	p := core.Pack(g)
	require.Equal(t, 2, p.Knots)
	require.Equal(t, 1, p.EdgeCount())
	require.Equal(t, 0, p.Source)
	require.True(t, p.IsTerm(0))
	require.True(t, p.IsTerm(1))
	require.Equal(t, 3.0, p.Cost[p.EdgeBetween(0, 1)])
	require.NoError(t, p.Valid())
}
