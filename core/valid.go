// File: valid.go
// Role: Structural invariant checker and worklist reachability. Intended for
//       assertion-guarded use after mutation passes, not for hot paths.

package core

import (
	"errors"
	"fmt"
)

// Valid checks the structural invariants and returns nil when they all hold.
//
// Checked, in order: arc-pair symmetry and joint liveness, degree counters
// against the live arcs, terminal counter and the root's terminal class,
// reachability of every positive-degree node from the root (skipped for
// PC/MW graphs in original view, whose parked dummies are deliberately
// detached from the marked subgraph), and the terminal/dummy extension
// consistency of PC/MW graphs. Every violated category contributes a wrapped
// sentinel carrying the offending index; the findings are joined so a debug
// build surfaces all of them at once.
// Complexity: O(Knots + Edges).
func (g *Graph) Valid() error {
	var errs []error

	// Invariant 1: the two arcs of a pair mirror each other and share state.
	for e := 0; e < g.Edges; e += 2 {
		free0 := g.Oeat[e] == EatFree
		free1 := g.Oeat[e+1] == EatFree
		hide0 := g.Oeat[e] == EatHide
		hide1 := g.Oeat[e+1] == EatHide
		if free0 != free1 || hide0 != hide1 {
			errs = append(errs, fmt.Errorf("%w: pair %d/%d liveness differs", ErrArcSymmetry, e, e+1))

			continue
		}
		if free0 {
			continue
		}
		if g.Head[e] != g.Tail[e+1] || g.Tail[e] != g.Head[e+1] {
			errs = append(errs, fmt.Errorf("%w: pair %d/%d endpoints differ", ErrArcSymmetry, e, e+1))
		}
	}

	// Invariant 2: Grad equals the number of live arcs leaving each node.
	deg := make([]int, g.Knots)
	for e := 0; e < g.Edges; e++ {
		if g.Oeat[e] == EatFree || g.Oeat[e] == EatHide {
			continue
		}
		deg[g.Tail[e]]++
	}
	for k := 0; k < g.Knots; k++ {
		if deg[k] != g.Grad[k] {
			errs = append(errs, fmt.Errorf("%w: node %d has Grad %d, %d live arcs", ErrDegreeMismatch, k, g.Grad[k], deg[k]))
		}
	}

	// Invariant 3: terminal counter and root class.
	terms := 0
	for k := 0; k < g.Knots; k++ {
		if g.IsTerm(k) {
			terms++
		}
	}
	if terms != g.Terms {
		errs = append(errs, fmt.Errorf("%w: counter %d, %d terminals found", ErrTermCount, g.Terms, terms))
	}
	if g.Source >= 0 && g.Terms > 0 && g.Term[g.Source] != 0 {
		errs = append(errs, fmt.Errorf("%w: root %d has class %d", ErrTermCount, g.Source, g.Term[g.Source]))
	}

	// Invariant 4: every positive-degree node hangs off the root. The
	// original PC/MW view keeps parked dummies off the marked graph, so the
	// check only applies to the extended (or plain) representation.
	if g.Source >= 0 && !(g.IsPcMw() && !g.Extended) {
		reached := make([]bool, g.Knots)
		g.Trail(g.Source, reached)
		for k := 0; k < g.Knots; k++ {
			if g.Grad[k] > 0 && !reached[k] {
				errs = append(errs, fmt.Errorf("%w: node %d (degree %d)", ErrUnreachable, k, g.Grad[k]))
			}
		}
	}

	// Invariant 5: the extension bookkeeping of PC/MW graphs.
	if g.Term2Edge != nil {
		errs = append(errs, g.validExtensions()...)
	}

	return errors.Join(errs...)
}

// validExtensions checks that Term2Edge is a consistent involution and, in
// extended view, that every dummy has degree two with a root arc priced at
// the twin's prize.
func (g *Graph) validExtensions() []error {
	var errs []error
	for k := 0; k < g.Knots; k++ {
		e := g.Term2Edge[k]
		if e == UnknownEdge {
			continue
		}
		if g.Tail[e] != k {
			errs = append(errs, fmt.Errorf("%w: node %d pairing arc %d starts elsewhere", ErrTermExtension, k, e))

			continue
		}
		twin := g.Head[e]
		if g.Term2Edge[twin] != Anti(e) {
			errs = append(errs, fmt.Errorf("%w: nodes %d/%d pairing is not an involution", ErrTermExtension, k, twin))

			continue
		}
		if !g.Extended || !g.IsPseudoTerm(k) {
			continue
		}
		// k is the profitable node, twin its dummy terminal.
		if g.Grad[twin] != 2 {
			errs = append(errs, fmt.Errorf("%w: dummy %d has degree %d", ErrTermExtension, twin, g.Grad[twin]))

			continue
		}
		re := g.RootEdge(k)
		if re == UnknownEdge {
			errs = append(errs, fmt.Errorf("%w: dummy %d lacks a root arc", ErrTermExtension, twin))

			continue
		}
		if !g.tol.EQ(g.Cost[re], g.Prize[k]) {
			errs = append(errs, fmt.Errorf("%w: root arc of %d costs %g, prize %g", ErrTermExtension, k, g.Cost[re], g.Prize[k]))
		}
	}

	return errs
}

// Trail marks every node reachable from start via live outgoing arcs in the
// caller-supplied scratch buffer, using an explicit worklist so recursion
// depth never depends on the graph size.
// Complexity: O(Knots + Edges).
func (g *Graph) Trail(start int, reached []bool) {
	if start < 0 || start >= g.Knots {
		panic("core: Trail start out of range")
	}
	if len(reached) < g.Knots {
		panic("core: Trail scratch buffer too small")
	}

	stack := make([]int, 0, g.Knots)
	reached[start] = true
	stack = append(stack, start)
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for e := g.Outbeg[k]; e != EatLast; e = g.Oeat[e] {
			if h := g.Head[e]; !reached[h] {
				reached[h] = true
				stack = append(stack, h)
			}
		}
	}
}
