// File: sap.go
// Role: Deriving a plain Steiner-arborescence instance from an extended
//       PC/MW graph, and the best-effort promotion of an unrooted instance
//       to a rooted one.

package core

// GetSap derives a plain directed Steiner-arborescence instance from an
// extended PC/MW graph, together with the offset relating the two optimal
// values: for maximum-weight variants the optimum equals offset minus the
// arborescence optimum, for prize-collecting variants the costs already
// coincide (offset 0).
//
// The root of the extended representation already aggregates the fan-out to
// every dummy terminal, so structurally the result is a deep copy retagged
// as Sap; g is left untouched.
// Complexity: O(KSize + ESize).
func (g *Graph) GetSap() (*Graph, float64) {
	if !g.IsPcMw() {
		panic("core: GetSap on a non-PC/MW graph")
	}
	if !g.Extended {
		panic("core: GetSap requires the extended view")
	}

	sap := g.Copy()
	sap.Type = Sap

	return sap, g.prizeOffset()
}

// GetSapShift derives the arborescence instance like GetSap, but first
// shrinks the terminal set: a profitable node whose prize is dominated by
// its cheapest real incoming arc (prize <= cost within tolerance) never pays
// for its own connection, so its prize is shifted onto those incoming arcs
// and into the offset and the node becomes plain. Dummy and root arcs do not
// count as real connections.
// Complexity: O(KSize + ESize).
func (g *Graph) GetSapShift() (*Graph, float64) {
	sap, offset := g.GetSap()

	for t := 0; t < sap.Knots; t++ {
		if !sap.IsPseudoTerm(t) || sap.Term2Edge[t] == UnknownEdge {
			continue
		}
		prize := sap.Prize[t]

		// Cheapest real incoming arc: skip the extension (dummy and root).
		minIn := Faraway
		found := false
		for e := sap.Inpbeg[t]; e != EatLast; e = sap.Ieat[e] {
			tail := sap.Tail[e]
			if tail == sap.Source || sap.IsTerm(tail) {
				continue
			}
			if sap.Cost[e] < minIn {
				minIn = sap.Cost[e]
				found = true
			}
		}
		if !found || !sap.tol.LE(prize, minIn) {
			continue
		}

		// Shift the prize onto the real incoming arcs and drop the terminal.
		for e := sap.Inpbeg[t]; e != EatLast; e = sap.Ieat[e] {
			tail := sap.Tail[e]
			if tail == sap.Source || sap.IsTerm(tail) {
				continue
			}
			sap.Cost[e] -= prize
			if !sap.tol.Positive(sap.Cost[e]) {
				sap.Cost[e] = 0
			}
		}
		offset += prize
		sap.stripTermExtension(t)
		sap.ChangeTerm(t, TermNone)
		sap.Prize[t] = 0
	}

	return sap, offset
}

// prizeOffset sums the positive prizes of the optional profitable nodes; the
// value an all-collecting solution of an MW instance would reach.
func (g *Graph) prizeOffset() float64 {
	if g.Type != Mwcsp && g.Type != Rmwcsp {
		return 0
	}
	offset := 0.0
	for k := 0; k < g.Knots; k++ {
		if g.IsPseudoTerm(k) && g.Term2Edge[k] != UnknownEdge && g.tol.Positive(g.Prize[k]) {
			offset += g.Prize[k]
		}
	}

	return offset
}

// ToRooted promotes an unrooted extended PC/MW instance to the rooted
// variant when possible: every terminal whose forfeit cost (the root→dummy
// arc, i.e. its prize) meets or exceeds the sum of all positive prizes can
// never be profitably excluded and is permanently fixed. Among the newly
// fixed terminals the one with the highest residual degree becomes the
// explicit root, and the artificial root is contracted into it.
//
// Best effort: when no terminal qualifies the graph is left untouched and
// (false, UnknownNode) is returned — that is a data-dependent outcome, not
// an error.
// Complexity: O(Knots + Edges).
func (g *Graph) ToRooted() (bool, int) {
	if !g.IsPcMw() || g.IsRootedPcMw() {
		panic("core: ToRooted requires an unrooted PC/MW graph")
	}
	if !g.Extended {
		panic("core: ToRooted requires the extended view")
	}

	prizeSum := 0.0
	for k := 0; k < g.Knots; k++ {
		if g.IsPseudoTerm(k) && g.Term2Edge[k] != UnknownEdge && g.tol.Positive(g.Prize[k]) {
			prizeSum += g.Prize[k]
		}
	}

	fixed := make([]int, 0, 4)
	for k := 0; k < g.Knots; k++ {
		if g.IsPseudoTerm(k) && g.Term2Edge[k] != UnknownEdge && g.tol.GE(g.Prize[k], prizeSum) {
			fixed = append(fixed, k)
		}
	}
	if len(fixed) == 0 {
		return false, UnknownNode
	}

	// Fix the qualifying terminals: strip the extension (dummy plus the
	// root→terminal choice edge) and pin the prize.
	for _, t := range fixed {
		g.stripTermExtension(t)
		g.ChangeTerm(t, 0)
		g.Prize[t] = Faraway
	}

	newRoot := fixed[0]
	for _, t := range fixed[1:] {
		if g.Grad[t] > g.Grad[newRoot] {
			newRoot = t
		}
	}

	// The artificial root's remaining choice edges to non-fixed terminals
	// are a license the rooted variant no longer grants; only the dummy
	// arcs survive, moved onto the new root by contraction.
	oldRoot := g.Source
	drop := make([]int, 0, g.Grad[oldRoot])
	for e := g.Outbeg[oldRoot]; e != EatLast; e = g.Oeat[e] {
		if h := g.Head[e]; !(g.IsTerm(h) && g.Term2Edge[h] != UnknownEdge) {
			drop = append(drop, e)
		}
	}
	for _, e := range drop {
		g.DelEdge(e)
	}

	// Splice the surviving dummy arcs onto the new root in place. Dummies
	// connect only to their twin and the root, so no parallel edges can
	// arise and the full contraction machinery is not needed.
	for g.Outbeg[oldRoot] != EatLast {
		es := g.Outbeg[oldRoot]
		ea := Anti(es)
		g.unlinkOut(es)
		g.unlinkIn(ea)
		g.Tail[es] = newRoot
		g.Head[ea] = newRoot
		g.linkOut(es)
		g.linkIn(ea)
		g.Grad[newRoot]++
		g.Grad[oldRoot]--
	}
	g.ChangeTerm(oldRoot, TermNone)
	g.Mark[oldRoot] = false
	g.Source = newRoot

	if g.Type == Pcspg {
		g.Type = Rpcspg
	} else {
		g.Type = Rmwcsp
	}

	return true, newRoot
}
