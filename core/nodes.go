// File: nodes.go
// Role: Node lifecycle: AddNode / ChangeTerm / DelNode. Node slots are only
//       reclaimed by Pack; DelNode merely strips every incident edge.

package core

// AddNode appends a node with the given terminal class (TermNone for a plain
// node) and returns its id.
//
// The node starts with zero degree, empty adjacency lists and Mark set.
// Capacity exhaustion is a caller bug: grow with Resize first.
// Complexity: O(1).
func (g *Graph) AddNode(termClass int) int {
	if g.Knots >= g.KSize {
		panic("core: node capacity exhausted, Resize before AddNode")
	}

	k := g.Knots
	g.Term[k] = termClass
	g.Mark[k] = true
	g.Grad[k] = 0
	g.Inpbeg[k] = EatLast
	g.Outbeg[k] = EatLast
	if g.Prize != nil {
		g.Prize[k] = 0
	}
	if g.Term2Edge != nil {
		g.Term2Edge[k] = UnknownEdge
	}
	if termClass >= 0 {
		g.Terms++
	}
	g.Knots++

	return k
}

// ChangeTerm sets node k's terminal class, updating the terminal counter
// only when the class actually flips between terminal and non-terminal.
// Complexity: O(1).
func (g *Graph) ChangeTerm(k, termClass int) {
	if g.Term[k] == termClass {
		return
	}
	if g.Term[k] >= 0 && termClass < 0 {
		g.Terms--
	} else if g.Term[k] < 0 && termClass >= 0 {
		g.Terms++
	}
	g.Term[k] = termClass
}

// DelNode removes every edge incident to node k. The node slot itself stays
// allocated (with degree zero) until the next Pack.
// Complexity: O(sum of neighbor degrees).
func (g *Graph) DelNode(k int) {
	for g.Outbeg[k] != EatLast {
		g.DelEdge(g.Outbeg[k])
	}
	if g.Grad[k] != 0 {
		panic("core: DelNode left a nonzero degree")
	}
}
