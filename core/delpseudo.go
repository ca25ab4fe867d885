// File: delpseudo.go
// Role: Bounded-degree pseudo-elimination: replace a low-degree vertex by
//       direct edges between its neighbors, all-or-nothing.

package core

import "github.com/katalvlaran/stpcore/ilist"

// pseudoCand is one replacement-edge candidate between two neighbors of the
// vertex being eliminated.
type pseudoCand struct {
	i, j int     // indices into the gathered neighbor arrays
	cost float64 // replacement cost, prize already subtracted
}

// DelPseudo eliminates a vertex of degree at most PseudoDegMax by directly
// connecting each pair of its neighbors, and reports whether it committed.
//
// The replacement edge between neighbors i and j costs edgeCosts[i] +
// edgeCosts[j], minus the vertex's prize when a PC/MW terminal is eliminated
// (its dummy extension is stripped first). edgeCosts is indexed by arc id
// and defaults to the graph's own costs when nil. A candidate is pruned when
// its cost exceeds the caller's cutoff for that neighbor pair — and, when
// cutoffsRev is supplied, symmetrically for the reverse direction — with
// cutoffs indexed by the flattened i<j pair order of the gathered neighbors.
//
// Replacement edges reuse existing parallel edges (cost lowered to the
// minimum, provenance replaced) before consuming slots; fresh ones take the
// slots freed by the vertex's own incident edges, then unused tail capacity.
// If the non-pruned, non-preexisting candidates outnumber those spare slots
// the elimination aborts and the graph is left bit-for-bit unmodified; no
// partial elimination is ever committed. On success the vertex is fully
// removed: degree zero, non-terminal, ancestor lists freed. Node provenance
// recorded on the vertex (a stripped extension, earlier contractions) is
// appended to every replacement edge's ancestors so no original edge id is
// lost with the node.
//
// Preconditions (panic): degree within the bound, vertex is not the root,
// and a terminal vertex is only eliminated in an extended PC/MW graph.
func (g *Graph) DelPseudo(vertex int, edgeCosts, cutoffs, cutoffsRev []float64) bool {
	degree := g.Grad[vertex]
	if degree > PseudoDegMax {
		panic("core: DelPseudo degree above bound")
	}
	if vertex == g.Source {
		panic("core: DelPseudo on the root")
	}

	prize := 0.0
	isPcTerm := false
	dummy := UnknownNode
	if g.Term2Edge != nil && g.Term2Edge[vertex] != UnknownEdge {
		if !g.Extended {
			panic("core: DelPseudo on a PC/MW terminal in original view")
		}
		isPcTerm = true
		prize = g.Prize[vertex]
		dummy = g.TwinTerm(vertex)
	} else if g.IsTerm(vertex) {
		panic("core: DelPseudo on a terminal")
	}

	// Gather the real neighbors; the dummy and, in unrooted variants, the
	// artificial root belong to the extension and are stripped with it.
	adj := make([]int, 0, degree)
	inc := make([]int, 0, degree)
	ecost := make([]float64, 0, degree)
	for e := g.Outbeg[vertex]; e != EatLast; e = g.Oeat[e] {
		x := g.Head[e]
		if isPcTerm && (x == dummy || (!g.IsRootedPcMw() && x == g.Source)) {
			continue
		}
		adj = append(adj, x)
		inc = append(inc, e)
		if edgeCosts != nil {
			ecost = append(ecost, edgeCosts[e])
		} else {
			ecost = append(ecost, g.Cost[e])
		}
	}

	// Candidate pairs, pruned by the cutoff tests.
	n := len(adj)
	cands := make([]pseudoCand, 0, n*(n-1)/2)
	pair := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			k := pair
			pair++
			if adj[i] == adj[j] {
				continue
			}
			cost := ecost[i] + ecost[j] - prize
			if cutoffs != nil && g.tol.GT(cost, cutoffs[k]) {
				continue
			}
			if cutoffsRev != nil && g.tol.GT(cost, cutoffsRev[k]) {
				continue
			}
			cands = append(cands, pseudoCand{i: i, j: j, cost: cost})
		}
	}

	// Affordability: candidates without an existing parallel edge need a
	// slot pair, first from the vertex's own freed edges, then from unused
	// tail capacity. Abort before touching anything if that cannot cover.
	needed := 0
	for _, cd := range cands {
		if g.EdgeBetween(adj[cd.i], adj[cd.j]) == UnknownEdge {
			needed++
		}
	}
	if needed > len(inc)+(g.ESize-g.Edges)/2 {
		return false
	}

	// Commit. Clone the incident provenance before the deletions free it.
	var anc []ilist.List
	if g.Ancestors != nil {
		anc = make([]ilist.List, n)
		for i, e := range inc {
			anc[i] = g.Ancestors[e].Clone()
		}
	}

	// A PC terminal's extension arcs and any provenance already recorded on
	// the node must outlive the node itself: stripTermExtension folds the
	// extension into PCAncestors[vertex], and the whole record is carried by
	// every replacement edge below.
	if isPcTerm {
		g.stripTermExtension(vertex)
		g.ChangeTerm(vertex, TermNone)
	}
	var pcanc ilist.List
	if g.PCAncestors != nil {
		pcanc = g.PCAncestors[vertex]
		g.PCAncestors[vertex] = nil
	}

	slots := make([]int, 0, len(inc))
	for _, e := range inc {
		slots = append(slots, e-e%2)
		g.delEdge(e, true)
	}
	// Whatever still hangs off the vertex (extension leftovers in unrooted
	// variants) goes too.
	g.DelNode(vertex)

	for _, cd := range cands {
		ti, tj := adj[cd.i], adj[cd.j]
		var anc0, anc1 ilist.List
		if anc != nil {
			anc0, anc1 = anc[cd.i], anc[cd.j]
			if len(pcanc) > 0 {
				anc1 = anc1.Append(pcanc)
			}
		}

		if et := g.EdgeBetween(ti, tj); et != UnknownEdge {
			// Reuse the existing edge: minimum cost, provenance of the
			// cheaper connection.
			if g.tol.GT(g.Cost[et], cd.cost) {
				g.Cost[et] = cd.cost
				g.Cost[Anti(et)] = cd.cost
				if g.Ancestors != nil {
					g.Ancestors[et] = anc0.Append(anc1)
					g.Ancestors[Anti(et)] = anc0.Append(anc1)
				}
			}

			continue
		}

		if len(slots) > 0 {
			e := slots[len(slots)-1]
			slots = slots[:len(slots)-1]
			g.ReinsertEdge(e, ti, tj, cd.cost, anc0, anc1)

			continue
		}

		e := g.Edges
		g.AddEdge(ti, tj, cd.cost, cd.cost)
		if g.Ancestors != nil {
			g.Ancestors[e] = anc0.Append(anc1)
			g.Ancestors[e+1] = anc0.Append(anc1)
			g.OrgTail[e] = ti
			g.OrgHead[e] = tj
			g.OrgTail[e+1] = tj
			g.OrgHead[e+1] = ti
		}
	}

	return true
}
