// File: contract.go
// Role: Node contraction: merge node s into node t, rewiring s's incident
//       arcs in place and resolving parallel edges by minimum cost.

package core

// contractLink records one neighbor of the vanishing node before rewiring.
type contractLink struct {
	edge    int     // arc s→x
	knot    int     // the neighbor x
	outcost float64 // cost of s→x
	incost  float64 // cost of x→s
}

// Contract merges node s into node t; t survives with the union of both
// adjacencies and s ends with degree zero (its slot is reclaimed by Pack).
//
// Semantics:
//   - s's terminal class transfers to t (unless t already is a terminal);
//     s becomes a non-terminal.
//   - s's node provenance, if any, is appended to t's: original edges that
//     justified s now justify the merged node.
//   - If s was the root, t becomes the root.
//   - For every neighbor x of s other than t: when a t—x edge already
//     exists, the cheaper cost wins per direction and the surviving arc
//     inherits the justifying ancestor list; otherwise the s—x arc pair is
//     spliced in place to become a t—x pair, keeping slot and provenance.
//   - Remaining s—t edges are deleted, their ancestors freed.
//
// The in-place splice makes contraction O(Grad[s] * Grad[t]) worst case with
// zero slot allocation, which packing relies on.
//
// Preconditions (panic): s != t, both degrees positive, a single terminal
// layer, and neither node carries a live dummy extension (strip it first for
// PC/MW graphs).
func (g *Graph) Contract(t, s int) {
	if t == s {
		panic("core: Contract of a node into itself")
	}
	if g.Grad[t] <= 0 || g.Grad[s] <= 0 {
		panic("core: Contract requires positive degrees")
	}
	if g.Layers != 1 {
		panic("core: Contract requires a single terminal layer")
	}
	if g.Term2Edge != nil && (g.Term2Edge[t] != UnknownEdge || g.Term2Edge[s] != UnknownEdge) {
		panic("core: Contract with a live dummy extension, strip it first")
	}

	// Record s's neighbors before any rewiring.
	slc := make([]contractLink, 0, g.Grad[s])
	for es := g.Outbeg[s]; es != EatLast; es = g.Oeat[es] {
		if g.Head[es] != t {
			slc = append(slc, contractLink{
				edge:    es,
				knot:    g.Head[es],
				outcost: g.Cost[es],
				incost:  g.Cost[Anti(es)],
			})
		}
	}

	if g.IsTerm(s) {
		if !g.IsTerm(t) {
			g.ChangeTerm(t, g.Term[s])
		}
		g.ChangeTerm(s, TermNone)
	}
	if g.PCAncestors != nil {
		g.PCAncestors[t] = g.PCAncestors[t].Append(g.PCAncestors[s])
		g.PCAncestors[s] = nil
	}
	if g.Source == s {
		g.Source = t
	}

	for i := range slc {
		lc := &slc[i]
		et := g.EdgeBetween(t, lc.knot)
		if et != UnknownEdge {
			// Parallel edge: keep the cheaper cost per direction, with the
			// cheaper side's provenance, then drop the s—x pair.
			if g.tol.GT(g.Cost[et], lc.outcost) {
				if g.Ancestors != nil {
					g.Ancestors[et] = g.Ancestors[lc.edge].Clone()
				}
				g.Cost[et] = lc.outcost
			}
			ea := Anti(et)
			if g.tol.GT(g.Cost[ea], lc.incost) {
				if g.Ancestors != nil {
					g.Ancestors[ea] = g.Ancestors[Anti(lc.edge)].Clone()
				}
				g.Cost[ea] = lc.incost
			}
			g.delEdge(lc.edge, true)

			continue
		}

		// No parallel edge: splice the s—x pair in place to become t—x.
		es := lc.edge
		ea := Anti(es)
		g.unlinkOut(es) // from s's outgoing list
		g.unlinkIn(ea)  // from s's incoming list
		g.Tail[es] = t
		g.Head[ea] = t
		g.linkOut(es) // into t's outgoing list
		g.linkIn(ea)  // into t's incoming list
		g.Grad[t]++
		g.Grad[s]--
	}

	// Only s—t edges remain in s's lists.
	for g.Outbeg[s] != EatLast {
		g.delEdge(g.Outbeg[s], true)
	}

	if g.Grad[s] != 0 {
		panic("core: Contract left the contracted node with edges")
	}
}

// ContractFixed contracts s into t after permanently recording the
// contracted edge in the fixed-component history: the edge is part of every
// solution from here on.
//
// In rooted PC/MW graphs a fixed terminal being swallowed must already carry
// the Faraway prize established when it was fixed; that is verified here
// with the graph's tolerance.
func (g *Graph) ContractFixed(t, s, edge int) {
	if edge >= 0 {
		g.FixEdge(edge)
	}
	if g.IsRootedPcMw() && g.Prize != nil && g.IsTerm(s) && g.IsFixedTerm(s) {
		if !g.tol.EQ(g.Prize[s], Faraway) {
			panic("core: fixed terminal contracted without Faraway prize")
		}
	}
	g.Contract(t, s)
}

// ContractLowdeg contracts the lower-degree endpoint into the higher-degree
// one, bounding the rewiring work by the smaller adjacency.
func (g *Graph) ContractLowdeg(a, b int) {
	if g.Grad[a] >= g.Grad[b] {
		g.Contract(a, b)

		return
	}
	g.Contract(b, a)
}
