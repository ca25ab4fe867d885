// File: edges.go
// Role: Arc-pair lifecycle: AddEdge / DelEdge / HideEdge / Uncover, the
//       redirect/reinsert slot-reuse path, adjacency lookups, and the
//       root-edge predecessor cache used by presolving passes.

package core

import "github.com/katalvlaran/stpcore/ilist"

// AddEdge inserts the undirected edge tail—head as the arc pair
// (Edges, Edges+1) with the given per-direction costs.
//
// Both arcs are pushed at the heads of their adjacency lists and both
// endpoint degrees grow by one. The next free pair is always at index Edges:
// freed interior slots are reused only by redirect/reinsert and reclaimed by
// Pack. Capacity exhaustion is a caller bug: grow with Resize first.
// Complexity: O(1).
func (g *Graph) AddEdge(tail, head int, cost, costRev float64) {
	if g.Edges+2 > g.ESize {
		panic("core: arc capacity exhausted, Resize before AddEdge")
	}
	if tail < 0 || tail >= g.Knots || head < 0 || head >= g.Knots {
		panic("core: AddEdge endpoint out of range")
	}

	e := g.Edges
	g.Grad[tail]++
	g.Grad[head]++

	g.Cost[e] = cost
	g.Tail[e] = tail
	g.Head[e] = head
	g.linkOut(e)
	g.linkIn(e)

	e++
	g.Cost[e] = costRev
	g.Tail[e] = head
	g.Head[e] = tail
	g.linkOut(e)
	g.linkIn(e)

	g.Edges += 2
}

// DelEdge removes the arc pair of the edge containing arc e, splicing both
// arcs out of all four adjacency lists, decrementing both endpoint degrees,
// marking the slots free and dropping their ancestor lists.
// Complexity: O(degree of the endpoints); O(1) at the root while the
// root-edge cache is enabled.
func (g *Graph) DelEdge(e int) {
	g.delEdge(e, true)
}

// delEdge is DelEdge with control over ancestor disposal; redirectEdge keeps
// the lists alive so ReinsertEdge can transfer them.
func (g *Graph) delEdge(e int, freeAncestors bool) {
	e -= e % 2
	if e < 0 || e+1 >= g.Edges {
		panic("core: DelEdge arc index out of range")
	}
	if g.Oeat[e] == EatFree || g.Oeat[e] == EatHide {
		panic("core: DelEdge on a non-live arc")
	}

	if freeAncestors && g.Ancestors != nil {
		g.Ancestors[e] = nil
		g.Ancestors[e+1] = nil
	}

	g.Grad[g.Tail[e]]--
	g.Grad[g.Head[e]]--

	g.unlinkOut(e)
	g.unlinkIn(e)
	g.unlinkOut(e + 1)
	g.unlinkIn(e + 1)

	g.Oeat[e] = EatFree
	g.Ieat[e] = EatFree
	g.Oeat[e+1] = EatFree
	g.Ieat[e+1] = EatFree
}

// HideEdge removes the edge containing arc e from all adjacency lists but
// marks its slots hidden instead of free, so a later Uncover can restore it.
// Degrees drop as for DelEdge; slot identity and costs are preserved.
// Complexity: O(degree of the endpoints).
func (g *Graph) HideEdge(e int) {
	e -= e % 2
	if g.Oeat[e] == EatFree || g.Oeat[e] == EatHide {
		panic("core: HideEdge on a non-live arc")
	}

	g.Grad[g.Tail[e]]--
	g.Grad[g.Head[e]]--

	g.unlinkOut(e)
	g.unlinkIn(e)
	g.unlinkOut(e + 1)
	g.unlinkIn(e + 1)

	g.Oeat[e] = EatHide
	g.Ieat[e] = EatHide
	g.Oeat[e+1] = EatHide
	g.Ieat[e+1] = EatHide
}

// Uncover restores every hidden arc, re-splicing it at the current heads of
// its adjacency lists and restoring endpoint degrees.
// Complexity: O(Edges).
func (g *Graph) Uncover() {
	for e := 0; e < g.Edges; e++ {
		if g.Ieat[e] != EatHide {
			continue
		}
		g.Grad[g.Tail[e]]++
		g.linkOut(e)
		g.linkIn(e)
	}
}

// redirectEdge rewires the (deleted or live) edge containing arc e to run
// between tail and head with the given symmetric cost.
//
// If a live parallel edge tail—head already exists, the cheaper cost wins:
// the existing arc pair is updated and returned when the new cost is lower,
// and UnknownEdge is returned when the existing edge is already cheaper or
// equal (the slot of e stays free either way). Otherwise the slot pair of e
// is reused in place and e is returned. Ancestor lists are left to the
// caller (see ReinsertEdge).
func (g *Graph) redirectEdge(e, tail, head int, cost float64) int {
	e -= e % 2
	if g.Oeat[e] != EatFree {
		g.delEdge(e, false)
	}

	for f := g.Outbeg[tail]; f != EatLast; f = g.Oeat[f] {
		if g.Head[f] == head {
			if !g.tol.GT(g.Cost[f], cost) {
				return UnknownEdge
			}
			g.Cost[f] = cost
			g.Cost[Anti(f)] = cost

			return f
		}
	}

	g.Grad[tail]++
	g.Grad[head]++

	g.Cost[e] = cost
	g.Tail[e] = tail
	g.Head[e] = head
	g.linkOut(e)
	g.linkIn(e)

	g.Cost[e+1] = cost
	g.Tail[e+1] = head
	g.Head[e+1] = tail
	g.linkOut(e + 1)
	g.linkIn(e + 1)

	return e
}

// ReinsertEdge revives the freed edge slot of arc e as a tail—head edge with
// the given symmetric cost and fresh provenance: the surviving arc pair
// (whether the reused slot or a cheaper-updated parallel edge) receives a
// copy of anc0 followed by anc1 on both directions.
//
// Returns the carrying arc, or UnknownEdge when an existing parallel edge of
// lower or equal cost made the insertion unnecessary; in that case the
// caller must not assume the slot was consumed.
func (g *Graph) ReinsertEdge(e, tail, head int, cost float64, anc0, anc1 ilist.List) int {
	n := g.redirectEdge(e, tail, head, cost)
	if n != UnknownEdge && g.Ancestors != nil {
		g.Ancestors[n] = anc0.Append(anc1)
		g.Ancestors[Anti(n)] = anc0.Append(anc1)
	}

	return n
}

// EdgeBetween returns the live arc running tail→head, or UnknownEdge.
// Complexity: O(Grad[tail]).
func (g *Graph) EdgeBetween(tail, head int) int {
	for e := g.Outbeg[tail]; e != EatLast; e = g.Oeat[e] {
		if g.Head[e] == head {
			return e
		}
	}

	return UnknownEdge
}

//–– Adjacency list splicing ––––––––––––––––––––––––––––––––––––––––––––––––

// linkOut pushes arc e onto the outgoing list of its tail.
func (g *Graph) linkOut(e int) {
	t := g.Tail[e]
	next := g.Outbeg[t]
	g.Oeat[e] = next
	g.Outbeg[t] = e
	if g.rootEdgePrevs != nil && t == g.Source {
		g.rootEdgePrevs[e] = EatLast
		if next != EatLast {
			g.rootEdgePrevs[next] = e
		}
	}
}

// linkIn pushes arc e onto the incoming list of its head.
func (g *Graph) linkIn(e int) {
	h := g.Head[e]
	next := g.Inpbeg[h]
	g.Ieat[e] = next
	g.Inpbeg[h] = e
	if g.rootEdgePrevs != nil && h == g.Source {
		g.rootEdgePrevs[e] = EatLast
		if next != EatLast {
			g.rootEdgePrevs[next] = e
		}
	}
}

// unlinkOut splices arc e out of the outgoing list of its tail: O(1) at a
// cached root, predecessor search otherwise.
func (g *Graph) unlinkOut(e int) {
	t := g.Tail[e]
	next := g.Oeat[e]
	if g.rootEdgePrevs != nil && t == g.Source {
		prev := g.rootEdgePrevs[e]
		if prev == EatLast {
			g.Outbeg[t] = next
		} else {
			g.Oeat[prev] = next
		}
		if next != EatLast {
			g.rootEdgePrevs[next] = prev
		}

		return
	}
	if g.Outbeg[t] == e {
		g.Outbeg[t] = next

		return
	}
	i := g.Outbeg[t]
	for g.Oeat[i] != e {
		i = g.Oeat[i]
	}
	g.Oeat[i] = next
}

// unlinkIn splices arc e out of the incoming list of its head.
func (g *Graph) unlinkIn(e int) {
	h := g.Head[e]
	next := g.Ieat[e]
	if g.rootEdgePrevs != nil && h == g.Source {
		prev := g.rootEdgePrevs[e]
		if prev == EatLast {
			g.Inpbeg[h] = next
		} else {
			g.Ieat[prev] = next
		}
		if next != EatLast {
			g.rootEdgePrevs[next] = prev
		}

		return
	}
	if g.Inpbeg[h] == e {
		g.Inpbeg[h] = next

		return
	}
	i := g.Inpbeg[h]
	for g.Ieat[i] != e {
		i = g.Ieat[i]
	}
	g.Ieat[i] = next
}

//–– Root-edge predecessor cache –––––––––––––––––––––––––––––––––––––––––––

// EnableRootEdgeCache builds the per-arc predecessor cache for the root's
// adjacency lists, turning root-incident deletions from O(degree) into O(1).
// Presolving passes that strip many root edges bracket their work with
// Enable/DisableRootEdgeCache. A self-loop at the root cannot be cached and
// is a caller bug.
// Complexity: O(Grad[Source]).
func (g *Graph) EnableRootEdgeCache() {
	if g.rootEdgePrevs != nil {
		panic("core: root edge cache already enabled")
	}
	if g.Source < 0 {
		panic("core: root edge cache requires a root")
	}

	prevs := make([]int, g.ESize)
	prev := EatLast
	for e := g.Outbeg[g.Source]; e != EatLast; e = g.Oeat[e] {
		if g.Head[e] == g.Source {
			panic("core: root edge cache with a self-loop at the root")
		}
		prevs[e] = prev
		prev = e
	}
	prev = EatLast
	for e := g.Inpbeg[g.Source]; e != EatLast; e = g.Ieat[e] {
		prevs[e] = prev
		prev = e
	}
	g.rootEdgePrevs = prevs
}

// DisableRootEdgeCache tears the cache down again.
func (g *Graph) DisableRootEdgeCache() {
	if g.rootEdgePrevs == nil {
		panic("core: root edge cache not enabled")
	}
	g.rootEdgePrevs = nil
}
