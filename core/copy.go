// File: copy.go
// Role: Deep copy, preserving slot layout (gaps included) and provenance.

package core

import "github.com/katalvlaran/stpcore/ilist"

// Copy returns an independent deep copy of g: same capacities, same slot
// layout including freed and hidden slots, cloned ancestor lists. Unlike
// Pack it leaves g untouched and does not renumber anything.
// Complexity: O(KSize + ESize + total ancestor length).
func (g *Graph) Copy() *Graph {
	q := New(g.KSize, g.ESize, g.Layers, WithTolerance(g.tol), WithType(g.Type))
	q.Knots = g.Knots
	q.Edges = g.Edges
	q.Terms = g.Terms
	q.Source = g.Source
	q.Extended = g.Extended
	q.Packed = g.Packed

	copy(q.Term, g.Term)
	copy(q.Mark, g.Mark)
	copy(q.Grad, g.Grad)
	copy(q.Inpbeg, g.Inpbeg)
	copy(q.Outbeg, g.Outbeg)
	copy(q.Cost, g.Cost)
	copy(q.Tail, g.Tail)
	copy(q.Head, g.Head)
	copy(q.Ieat, g.Ieat)
	copy(q.Oeat, g.Oeat)

	if g.Prize != nil {
		q.Prize = make([]float64, g.KSize)
		copy(q.Prize, g.Prize)
	}
	if g.Term2Edge != nil {
		q.Term2Edge = make([]int, g.KSize)
		copy(q.Term2Edge, g.Term2Edge)
	}
	if g.PCAncestors != nil {
		q.PCAncestors = make([]ilist.List, g.KSize)
		for k := range g.PCAncestors {
			q.PCAncestors[k] = g.PCAncestors[k].Clone()
		}
	}
	if g.Ancestors != nil {
		q.Ancestors = make([]ilist.List, g.ESize)
		for e := range g.Ancestors {
			q.Ancestors[e] = g.Ancestors[e].Clone()
		}
		q.OrgTail = make([]int, g.ESize)
		q.OrgHead = make([]int, g.ESize)
		copy(q.OrgTail, g.OrgTail)
		copy(q.OrgHead, g.OrgHead)
	}
	q.FixedEdges = g.FixedEdges.Clone()

	return q
}
