// File: pack.go
// Role: Compaction: rebuild the graph densely, dropping every freed slot.

package core

import "github.com/katalvlaran/stpcore/ilist"

// Pack compacts g into a freshly allocated, minimally sized graph holding
// exactly the positive-degree nodes (renumbered densely, relative order
// preserved) and the live edges, and consumes g: its arrays are released and
// it must not be used afterwards.
//
// Arc ancestor lists are deep-copied; node provenance and the fixed-component
// record move to the new graph by ownership transfer. PC/MW prizes are
// copied and the terminal↔dummy pairing is rebuilt edge by edge. A graph
// whose nodes all have degree zero packs into a trivial single-node graph.
//
// Packing discards slot gaps permanently, so a packed graph cannot be packed
// again (panic) until new mutations reintroduce gaps and clear the flag via
// fresh construction.
// Complexity: O(Knots + Edges).
func Pack(g *Graph) *Graph {
	if g.Packed {
		panic("core: Pack on an already packed graph")
	}

	nnodes := 0
	for k := 0; k < g.Knots; k++ {
		if g.Grad[k] > 0 {
			nnodes++
		}
	}
	nedges := 2 * g.EdgeCount()

	if nnodes == 0 {
		// Fully reduced instance: a single root terminal, no edges.
		q := New(1, 2, g.Layers, WithTolerance(g.tol), WithType(g.Type))
		q.AddNode(0)
		q.Source = 0
		q.Packed = true
		q.FixedEdges = g.FixedEdges
		g.destroy()

		return q
	}

	q := New(nnodes, nedges, g.Layers, WithTolerance(g.tol), WithType(g.Type))
	q.Extended = g.Extended
	if g.Prize != nil {
		q.Prize = make([]float64, nnodes)
	}
	if g.Term2Edge != nil {
		q.Term2Edge = make([]int, nnodes)
		for k := range q.Term2Edge {
			q.Term2Edge[k] = UnknownEdge
		}
	}
	if g.PCAncestors != nil {
		q.PCAncestors = make([]ilist.List, nnodes)
	}
	if g.Ancestors != nil {
		q.Ancestors = make([]ilist.List, nedges)
		q.OrgTail = make([]int, nedges)
		q.OrgHead = make([]int, nedges)
	}

	// Renumber the surviving nodes.
	nodeMap := make([]int, g.Knots)
	for k := 0; k < g.Knots; k++ {
		if g.Grad[k] <= 0 {
			if g.IsTerm(k) {
				panic("core: Pack would drop an isolated terminal")
			}
			nodeMap[k] = UnknownNode

			continue
		}
		nodeMap[k] = q.AddNode(g.Term[k])
		q.Mark[nodeMap[k]] = g.Mark[k]
		if q.Prize != nil {
			q.Prize[nodeMap[k]] = g.Prize[k]
		}
		if q.PCAncestors != nil {
			// Ownership transfer, not a copy: the old graph dies here.
			q.PCAncestors[nodeMap[k]] = g.PCAncestors[k]
			g.PCAncestors[k] = nil
		}
	}
	if g.Source >= 0 && nodeMap[g.Source] != UnknownNode {
		q.Source = nodeMap[g.Source]
	}

	// Re-add the live edges in slot order.
	for e := 0; e < g.Edges; e += 2 {
		if g.Oeat[e] == EatFree {
			continue
		}
		if g.Oeat[e] == EatHide {
			panic("core: Pack with hidden edges, Uncover first")
		}
		tail := nodeMap[g.Tail[e]]
		head := nodeMap[g.Head[e]]

		ne := q.Edges
		if q.Term2Edge != nil {
			q.rebuildTerm2Edge(g, tail, head, g.Tail[e], g.Head[e], e)
		}
		q.AddEdge(tail, head, g.Cost[e], g.Cost[e+1])
		if q.Ancestors != nil {
			q.Ancestors[ne] = g.Ancestors[e].Clone()
			q.Ancestors[ne+1] = g.Ancestors[e+1].Clone()
			q.OrgTail[ne] = g.OrgTail[e]
			q.OrgHead[ne] = g.OrgHead[e]
			q.OrgTail[ne+1] = g.OrgTail[e+1]
			q.OrgHead[ne+1] = g.OrgHead[e+1]
		}
	}

	q.FixedEdges = g.FixedEdges
	q.Packed = true
	g.destroy()

	return q
}

// rebuildTerm2Edge re-establishes the terminal↔dummy pairing for the edge
// about to be copied: if the old edge is exactly the pairing edge of its
// endpoints, the fresh arc pair takes over that role.
func (q *Graph) rebuildTerm2Edge(g *Graph, newTail, newHead, oldTail, oldHead, oldEdge int) {
	if g.Term2Edge[oldTail] == oldEdge && g.Term2Edge[oldHead] == Anti(oldEdge) {
		q.Term2Edge[newTail] = q.Edges
		q.Term2Edge[newHead] = q.Edges + 1
	}
}

// destroy releases a consumed graph's arrays so accidental reuse fails fast.
func (g *Graph) destroy() {
	g.Knots = 0
	g.Edges = 0
	g.Terms = 0
	g.KSize = 0
	g.ESize = 0
	g.Source = UnknownNode
	g.Term = nil
	g.Mark = nil
	g.Grad = nil
	g.Inpbeg = nil
	g.Outbeg = nil
	g.Cost = nil
	g.Tail = nil
	g.Head = nil
	g.Ieat = nil
	g.Oeat = nil
	g.Prize = nil
	g.Term2Edge = nil
	g.PCAncestors = nil
	g.Ancestors = nil
	g.OrgTail = nil
	g.OrgHead = nil
	g.FixedEdges = nil
	g.rootEdgePrevs = nil
	g.Packed = true
}
