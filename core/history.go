// File: history.go
// Role: Provenance: per-arc ancestor lists, frozen original endpoints, and
//       the permanent fixed-component record.

package core

import "github.com/katalvlaran/stpcore/ilist"

// InitHistory freezes the current graph as the "original" one: every live
// arc becomes its own single ancestor and its endpoints are recorded in
// OrgTail/OrgHead. Reductions maintain the lists from here on, so a solution
// on any derived graph can be mapped back to original edges.
//
// For PC/MW graphs the per-node provenance array is allocated as well.
// Complexity: O(ESize).
func (g *Graph) InitHistory() {
	if g.Ancestors != nil {
		panic("core: history already initialized")
	}

	g.Ancestors = make([]ilist.List, g.ESize)
	g.OrgTail = make([]int, g.ESize)
	g.OrgHead = make([]int, g.ESize)
	for e := 0; e < g.ESize; e++ {
		g.OrgTail[e] = UnknownNode
		g.OrgHead[e] = UnknownNode
	}
	for e := 0; e < g.Edges; e++ {
		if g.Oeat[e] == EatFree {
			continue
		}
		g.Ancestors[e] = ilist.New(e)
		g.OrgTail[e] = g.Tail[e]
		g.OrgHead[e] = g.Head[e]
	}
	if g.IsPcMw() && g.PCAncestors == nil {
		g.PCAncestors = make([]ilist.List, g.KSize)
	}
}

// FixEdge appends the provenance of arc e to the permanent fixed-component
// record. Fixed components survive every later reduction and Pack.
// Complexity: O(len(ancestors of e)).
func (g *Graph) FixEdge(e int) {
	if g.Ancestors != nil {
		g.FixedEdges = g.FixedEdges.Append(g.Ancestors[e])

		return
	}
	g.FixedEdges = g.FixedEdges.Append(ilist.New(e))
}
