// File: pcmw.go
// Role: Prize-collecting / maximum-weight transform layer: one-shot
//       transforms into the extended (arborescence-shaped) representation,
//       the extended↔original view switch, and terminal/dummy navigation.
//
// Two views exist per PC/MW graph. In the ORIGINAL view (Extended == false)
// each profitable node is a terminal whose prize sits in the Prize array and
// whose dummy counterpart is parked as an unmarked pseudo-terminal. In the
// EXTENDED view (Extended == true) the roles are swapped: the dummy is the
// terminal that must be reached — either through the profitable node (cost
// 0, prize collected) or straight from the root (cost = prize, prize
// forfeited) — and the profitable node itself is optional, tagged as a
// pseudo-terminal. Term2Edge pairs the two in O(1) in both views.

package core

// ToPcspg converts a Steiner graph with the given per-node prizes into an
// unrooted prize-collecting instance in extended view.
//
// A fresh root is added along with one dummy terminal per profitable
// terminal t (prize > 0 within tolerance), wired as
//
//	root → t      cost 0        (unrooted tree-root choice)
//	root → dummy  cost prize(t) (forfeit t)
//	t    → dummy  cost 0        (collect t)
//
// with Faraway reverse costs so the arborescence can never run backwards.
// Terminals with a non-positive prize become plain nodes. Capacity is grown
// as needed; the graph ends as Type Pcspg, Extended, rooted at the new node.
// Complexity: O(Knots + Edges).
func (g *Graph) ToPcspg(prizes []float64) {
	g.transformPcMw(prizes, Pcspg, UnknownNode)
}

// ToRpcspg converts to a ROOTED prize-collecting instance: root is an
// existing terminal that every solution must contain. No root→terminal
// choice edges are added; the root keeps the Faraway prize of a fixed
// terminal, and any other terminal whose prize reaches Faraway is fixed too
// (kept without a dummy).
func (g *Graph) ToRpcspg(prizes []float64, root int) {
	if !g.IsTerm(root) {
		panic("core: ToRpcspg root must be a terminal")
	}
	g.transformPcMw(prizes, Rpcspg, root)
}

// ToMwcsp converts a graph with raw per-node weights into an unrooted
// maximum-weight connected subgraph instance in extended view: nodes with
// positive weight become terminals with that prize, every arc is charged the
// weight of the negative node it enters, and the prize-collecting dummy
// wiring is laid on top. Optimal values relate through the offset computed
// by GetSap.
func (g *Graph) ToMwcsp(weights []float64) {
	g.chargeMwCosts(weights)
	g.transformPcMw(weights, Mwcsp, UnknownNode)
}

// ToRmwcsp is the rooted variant of ToMwcsp; root must be a terminal after
// weight marking, i.e. carry positive weight or Faraway.
func (g *Graph) ToRmwcsp(weights []float64, root int) {
	g.chargeMwCosts(weights)
	if !g.IsTerm(root) {
		panic("core: ToRmwcsp root must carry positive weight")
	}
	g.transformPcMw(weights, Rmwcsp, root)
}

// chargeMwCosts marks positive-weight nodes as terminals and prices every
// arc with the weight of the negative node it enters.
func (g *Graph) chargeMwCosts(weights []float64) {
	if len(weights) < g.Knots {
		panic("core: weight slice shorter than node count")
	}
	for k := 0; k < g.Knots; k++ {
		if g.tol.Positive(weights[k]) || g.tol.GE(weights[k], Faraway) {
			g.ChangeTerm(k, 0)
		} else {
			g.ChangeTerm(k, TermNone)
		}
	}
	for e := 0; e < g.Edges; e++ {
		if g.Oeat[e] == EatFree {
			continue
		}
		if w := weights[g.Head[e]]; g.tol.Positive(-w) {
			g.Cost[e] = -w
		} else {
			g.Cost[e] = 0
		}
	}
}

// transformPcMw is the shared one-shot transform behind the four To*
// variants. root == UnknownNode selects the unrooted construction with a
// fresh artificial root.
func (g *Graph) transformPcMw(prizes []float64, typ StpType, root int) {
	if g.IsPcMw() {
		panic("core: graph already transformed to PC/MW")
	}
	if len(prizes) < g.Knots {
		panic("core: prize slice shorter than node count")
	}

	rooted := root != UnknownNode

	// Profitable terminals as of the untransformed graph.
	origTerms := make([]int, 0, g.Terms)
	for k := 0; k < g.Knots; k++ {
		if g.IsTerm(k) {
			origTerms = append(origTerms, k)
		}
	}

	// Worst case: one dummy node per terminal, plus the artificial root;
	// three new edges per terminal unrooted, two rooted.
	extraNodes := len(origTerms)
	extraArcs := 4 * len(origTerms)
	if !rooted {
		extraNodes++
		extraArcs += 2 * len(origTerms)
	}
	g.Resize(g.Knots+extraNodes, g.Edges+extraArcs, 0)

	g.Prize = make([]float64, g.KSize)
	g.Term2Edge = make([]int, g.KSize)
	for k := range g.Term2Edge {
		g.Term2Edge[k] = UnknownEdge
	}
	for k := 0; k < g.Knots; k++ {
		g.Prize[k] = prizes[k]
	}

	if !rooted {
		root = g.AddNode(0)
	}

	for _, t := range origTerms {
		if rooted && (t == root || g.tol.GE(prizes[t], Faraway)) {
			// Fixed terminal: required in every solution, no dummy.
			g.Prize[t] = Faraway

			continue
		}
		if !g.tol.Positive(prizes[t]) {
			// Nothing to collect: a plain node after all.
			g.ChangeTerm(t, TermNone)
			g.Prize[t] = 0

			continue
		}

		g.ChangeTerm(t, TermPseudo)
		d := g.AddNode(0)
		g.Term2Edge[t] = g.Edges
		g.Term2Edge[d] = g.Edges + 1
		g.AddEdge(t, d, 0, Faraway)
		g.AddEdge(root, d, prizes[t], Faraway)
		if !rooted {
			g.AddEdge(root, t, 0, Faraway)
		}
	}

	g.Source = root
	g.Type = typ
	g.Extended = true
	g.markExtended()
}

//–– View switching –––––––––––––––––––––––––––––––––––––––––––––––––––––––

// ToOriginal switches an extended PC/MW graph to the original-terminal view:
// profitable nodes become the terminals again, dummies are parked as
// unmarked pseudo-terminals. Panics when the graph is already original; use
// ToOriginalIfNeeded around code that may see either view.
// Complexity: O(Knots).
func (g *Graph) ToOriginal() {
	if !g.IsPcMw() {
		panic("core: view switch on a non-PC/MW graph")
	}
	if !g.Extended {
		panic("core: ToOriginal on a graph already in original view")
	}

	for k := 0; k < g.Knots; k++ {
		g.Mark[k] = g.Grad[k] > 0
		switch {
		case g.IsPseudoTerm(k):
			g.ChangeTerm(k, 0) // profitable node regains terminal role
		case g.IsTerm(k) && g.Term2Edge != nil && g.Term2Edge[k] != UnknownEdge:
			g.ChangeTerm(k, TermPseudo) // dummy parked
			g.Mark[k] = false
		}
	}
	if !g.IsRootedPcMw() {
		g.Mark[g.Source] = false // artificial root is not part of the original
	}
	g.Extended = false
}

// ToExtended switches back to the extended (arborescence-shaped) view; the
// exact inverse of ToOriginal. Panics when the graph is already extended.
// Complexity: O(Knots).
func (g *Graph) ToExtended() {
	if !g.IsPcMw() {
		panic("core: view switch on a non-PC/MW graph")
	}
	if g.Extended {
		panic("core: ToExtended on a graph already in extended view")
	}

	for k := 0; k < g.Knots; k++ {
		switch {
		case g.IsPseudoTerm(k):
			g.ChangeTerm(k, 0) // dummy regains terminal role
		case g.IsTerm(k) && g.Term2Edge != nil && g.Term2Edge[k] != UnknownEdge:
			g.ChangeTerm(k, TermPseudo) // profitable node becomes optional
		}
	}
	g.Extended = true
	g.markExtended()
}

// ToOriginalIfNeeded is the idempotent form of ToOriginal.
func (g *Graph) ToOriginalIfNeeded() {
	if g.Extended {
		g.ToOriginal()
	}
}

// ToExtendedIfNeeded is the idempotent form of ToExtended.
func (g *Graph) ToExtendedIfNeeded() {
	if !g.Extended {
		g.ToExtended()
	}
}

// markExtended sets the extended-view marks: every positive-degree node
// participates, dummies and root included.
func (g *Graph) markExtended() {
	for k := 0; k < g.Knots; k++ {
		g.Mark[k] = g.Grad[k] > 0
	}
}

//–– Terminal/dummy navigation –––––––––––––––––––––––––––––––––––––––––––––

// TwinTerm returns the dummy paired with terminal t (or, given a dummy, its
// profitable twin), or UnknownNode when t has no extension.
// Complexity: O(1).
func (g *Graph) TwinTerm(t int) int {
	if g.Term2Edge == nil || g.Term2Edge[t] == UnknownEdge {
		return UnknownNode
	}

	return g.Head[g.Term2Edge[t]]
}

// RootEdge returns the arc running root→dummy(t) — the arc whose cost is
// the price of forfeiting t — or UnknownEdge when t has no extension.
// Complexity: O(1): the dummy's degree is always two.
func (g *Graph) RootEdge(t int) int {
	d := g.TwinTerm(t)
	if d == UnknownNode {
		return UnknownEdge
	}
	for e := g.Inpbeg[d]; e != EatLast; e = g.Ieat[e] {
		if g.Tail[e] == g.Source {
			return e
		}
	}

	return UnknownEdge
}

// IsFixedTerm reports whether node t is a permanently required terminal of a
// PC/MW graph: terminal class set, no dummy extension.
func (g *Graph) IsFixedTerm(t int) bool {
	return g.Term2Edge != nil && g.IsTerm(t) && g.Term2Edge[t] == UnknownEdge
}

// stripTermExtension removes node t's dummy and every edge of the extension
// (the dummy's two edges, plus the root→t choice edge in unrooted variants).
// With history enabled, the stripped arcs' ancestors are recorded in t's
// node provenance first, so a solution through t can still be mapped back to
// the original extension edges. The caller decides t's terminal class
// afterwards.
func (g *Graph) stripTermExtension(t int) {
	d := g.TwinTerm(t)
	if d == UnknownNode {
		panic("core: stripTermExtension without an extension")
	}

	if g.PCAncestors != nil && g.Ancestors != nil {
		g.PCAncestors[t] = g.PCAncestors[t].Append(g.Ancestors[g.Term2Edge[t]])
		if re := g.RootEdge(t); re != UnknownEdge {
			g.PCAncestors[t] = g.PCAncestors[t].Append(g.Ancestors[re])
		}
		if !g.IsRootedPcMw() {
			if e := g.EdgeBetween(g.Source, t); e != UnknownEdge {
				g.PCAncestors[t] = g.PCAncestors[t].Append(g.Ancestors[e])
			}
		}
		g.PCAncestors[d] = nil
	}

	g.Term2Edge[t] = UnknownEdge
	g.Term2Edge[d] = UnknownEdge
	g.ChangeTerm(d, TermNone)
	g.DelNode(d)
	if !g.IsRootedPcMw() {
		if e := g.EdgeBetween(g.Source, t); e != UnknownEdge {
			g.DelEdge(e)
		}
	}
}
