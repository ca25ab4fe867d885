// File: types.go
// Role: Graph aggregate, sentinels, problem-type tags, options, constructor
//       and capacity growth (New / Resize), basic index queries.

package core

import (
	"errors"

	"github.com/katalvlaran/stpcore/eps"
	"github.com/katalvlaran/stpcore/ilist"
)

// Sentinel values in the Ieat/Oeat next-index arrays.
const (
	// EatLast terminates an adjacency list.
	EatLast = -1
	// EatFree marks a freed arc slot.
	EatFree = -2
	// EatHide marks a hidden arc slot (see HideEdge / Uncover).
	EatHide = -3
)

// Terminal classes stored in Graph.Term. Values >= 0 denote a terminal of
// that layer class (layer 0 in the common single-layer case).
const (
	// TermNone marks a non-terminal node.
	TermNone = -1
	// TermPseudo marks a pseudo-terminal: in the extended PC/MW view the
	// profitable original node, in the original view the dummy node.
	TermPseudo = -2
)

const (
	// UnknownEdge is returned by arc lookups that found nothing and stored in
	// Term2Edge for nodes without a dummy extension.
	UnknownEdge = -1
	// UnknownNode is returned by node lookups that found nothing.
	UnknownNode = -1

	// Faraway is the cost/prize used for connections that must never be
	// taken and for prizes of permanently fixed terminals.
	Faraway = 1e15

	// PseudoDegMax bounds the degree DelPseudo accepts; C(PseudoDegMax,2)
	// replacement edges at most.
	PseudoDegMax = 5
)

// StpType tags the problem variant a Graph represents.
type StpType int

const (
	// Spg is the plain Steiner tree problem in graphs.
	Spg StpType = iota
	// Sap is the directed Steiner arborescence problem.
	Sap
	// Pcspg is the (unrooted) prize-collecting Steiner tree problem.
	Pcspg
	// Rpcspg is the rooted prize-collecting Steiner tree problem.
	Rpcspg
	// Mwcsp is the maximum-weight connected subgraph problem.
	Mwcsp
	// Rmwcsp is the rooted maximum-weight connected subgraph problem.
	Rmwcsp
)

// Sentinel errors reported by the structural invariant checker (Valid).
var (
	// ErrArcSymmetry indicates a live arc pair whose two directions disagree
	// on endpoints or liveness.
	ErrArcSymmetry = errors.New("core: arc pair symmetry violated")

	// ErrDegreeMismatch indicates Grad differs from the live arc count.
	ErrDegreeMismatch = errors.New("core: node degree inconsistent with arcs")

	// ErrTermCount indicates the terminal counter or the root's terminal
	// class is inconsistent.
	ErrTermCount = errors.New("core: terminal bookkeeping inconsistent")

	// ErrUnreachable indicates a positive-degree node unreachable from the
	// root.
	ErrUnreachable = errors.New("core: node not reachable from the root")

	// ErrTermExtension indicates an inconsistent terminal/dummy pairing in a
	// PC/MW graph.
	ErrTermExtension = errors.New("core: terminal extension inconsistent")
)

// Graph is the slot-based Steiner graph arena.
//
// All arrays are exported so that collaborators (file readers/writers, the
// solver layer) can walk the structure directly; mutation must go through the
// methods, which maintain degrees, terminal counters, adjacency lists and
// provenance together. Arc 2k and 2k+1 are the two directions of logical
// edge k and are always inserted, hidden and freed together.
type Graph struct {
	Knots  int // current node count (node slots [0, Knots) are in use)
	KSize  int // node slot capacity
	Edges  int // current arc count, always even
	ESize  int // arc slot capacity
	Terms  int // current terminal count
	Source int // root node index
	Layers int // terminal class count, almost always 1

	Type     StpType
	Extended bool // PC/MW view flag: true = extended (SAP-like) view
	Packed   bool // set by Pack; a packed graph must not be packed again

	// Per-node arrays, indexed by node id.
	Term   []int  // terminal class, TermNone or TermPseudo
	Mark   []bool // scratch flag for traversal and view bookkeeping
	Grad   []int  // current degree
	Inpbeg []int  // head of the incoming arc list
	Outbeg []int  // head of the outgoing arc list

	// Per-arc arrays, indexed by arc id.
	Cost []float64
	Tail []int
	Head []int
	Ieat []int // next arc in the incoming list of Head[e], or a sentinel
	Oeat []int // next arc in the outgoing list of Tail[e], or a sentinel

	// PC/MW attachments, nil unless a transform allocated them.
	Prize       []float64    // per-node prize (MW: raw node weight)
	Term2Edge   []int        // arc pairing a terminal with its dummy, or UnknownEdge
	PCAncestors []ilist.List // per-node provenance

	// History attachments, nil until InitHistory.
	Ancestors  []ilist.List // per-arc original-edge provenance
	OrgTail    []int        // original arc endpoints, frozen at InitHistory
	OrgHead    []int
	FixedEdges ilist.List // provenance of components fixed into any solution

	rootEdgePrevs []int // predecessor cache for root-incident deletions
	tol           eps.Tol
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithTolerance sets the numeric comparison tolerance. Non-positive values
// fall back to eps.Default.
func WithTolerance(t eps.Tol) Option {
	return func(g *Graph) { g.tol = t.Normalize() }
}

// WithType presets the problem-variant tag.
func WithType(t StpType) Option {
	return func(g *Graph) { g.Type = t }
}

// New creates an empty Graph with the given slot capacities.
//
// nodeCap and arcCap reserve slots for nodes and arcs (arcCap must be even:
// two arcs per edge); layers is the terminal class count, 1 in the common
// case. Slots are consumed by AddNode/AddEdge and never reused until Pack.
// Complexity: O(nodeCap + arcCap).
func New(nodeCap, arcCap, layers int, opts ...Option) *Graph {
	if nodeCap < 1 || arcCap < 2 || arcCap%2 != 0 {
		panic("core: New requires nodeCap >= 1 and a positive even arcCap")
	}
	if layers < 1 {
		panic("core: New requires at least one terminal layer")
	}

	g := &Graph{
		KSize:  nodeCap,
		ESize:  arcCap,
		Source: UnknownNode,
		Layers: layers,
		Type:   Spg,
		tol:    eps.DefaultTol,

		Term:   make([]int, nodeCap),
		Mark:   make([]bool, nodeCap),
		Grad:   make([]int, nodeCap),
		Inpbeg: make([]int, nodeCap),
		Outbeg: make([]int, nodeCap),

		Cost: make([]float64, arcCap),
		Tail: make([]int, arcCap),
		Head: make([]int, arcCap),
		Ieat: make([]int, arcCap),
		Oeat: make([]int, arcCap),
	}
	for e := 0; e < arcCap; e++ {
		g.Ieat[e] = EatFree
		g.Oeat[e] = EatFree
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Resize grows the slot capacities in place. Capacities never shrink;
// passing a value below the current capacity keeps the current one. A
// non-positive layers keeps the current layer count.
// Complexity: O(new capacities).
func (g *Graph) Resize(nodeCap, arcCap, layers int) {
	if layers > 0 {
		g.Layers = layers
	}
	if nodeCap > g.KSize {
		g.Term = growInts(g.Term, nodeCap, TermNone)
		g.Mark = append(g.Mark, make([]bool, nodeCap-g.KSize)...)
		g.Grad = growInts(g.Grad, nodeCap, 0)
		g.Inpbeg = growInts(g.Inpbeg, nodeCap, EatLast)
		g.Outbeg = growInts(g.Outbeg, nodeCap, EatLast)
		if g.Prize != nil {
			g.Prize = append(g.Prize, make([]float64, nodeCap-g.KSize)...)
		}
		if g.Term2Edge != nil {
			g.Term2Edge = growInts(g.Term2Edge, nodeCap, UnknownEdge)
		}
		if g.PCAncestors != nil {
			g.PCAncestors = append(g.PCAncestors, make([]ilist.List, nodeCap-g.KSize)...)
		}
		g.KSize = nodeCap
	}
	if arcCap > g.ESize {
		if arcCap%2 != 0 {
			panic("core: Resize requires an even arc capacity")
		}
		g.Cost = append(g.Cost, make([]float64, arcCap-g.ESize)...)
		g.Tail = growInts(g.Tail, arcCap, 0)
		g.Head = growInts(g.Head, arcCap, 0)
		g.Ieat = growInts(g.Ieat, arcCap, EatFree)
		g.Oeat = growInts(g.Oeat, arcCap, EatFree)
		if g.Ancestors != nil {
			g.Ancestors = append(g.Ancestors, make([]ilist.List, arcCap-g.ESize)...)
			g.OrgTail = growInts(g.OrgTail, arcCap, UnknownNode)
			g.OrgHead = growInts(g.OrgHead, arcCap, UnknownNode)
		}
		if g.rootEdgePrevs != nil {
			g.rootEdgePrevs = growInts(g.rootEdgePrevs, arcCap, EatLast)
		}
		g.ESize = arcCap
	}
}

// growInts extends s to length n, filling new entries with fill.
func growInts(s []int, n, fill int) []int {
	old := len(s)
	s = append(s, make([]int, n-old)...)
	for i := old; i < n; i++ {
		s[i] = fill
	}

	return s
}

// Tol returns the graph's numeric comparison tolerance.
func (g *Graph) Tol() eps.Tol { return g.tol }

// Anti returns the opposite direction of arc e.
func Anti(e int) int { return e ^ 1 }

// IsTerm reports whether node k is a terminal.
func (g *Graph) IsTerm(k int) bool { return g.Term[k] >= 0 }

// IsPseudoTerm reports whether node k carries the pseudo-terminal class.
func (g *Graph) IsPseudoTerm(k int) bool { return g.Term[k] == TermPseudo }

// IsPcMw reports whether the graph is a prize-collecting or maximum-weight
// variant.
func (g *Graph) IsPcMw() bool {
	return g.Type == Pcspg || g.Type == Rpcspg || g.Type == Mwcsp || g.Type == Rmwcsp
}

// IsRootedPcMw reports whether the graph is a rooted PC/MW variant.
func (g *Graph) IsRootedPcMw() bool {
	return g.Type == Rpcspg || g.Type == Rmwcsp
}

// TermCount returns the current number of terminals.
func (g *Graph) TermCount() int { return g.Terms }

// EdgeCount returns the number of live logical edges (arc pairs that are
// neither freed nor hidden).
// Complexity: O(Edges).
func (g *Graph) EdgeCount() int {
	n := 0
	for e := 0; e < g.Edges; e += 2 {
		if g.Oeat[e] != EatFree && g.Oeat[e] != EatHide {
			n++
		}
	}

	return n
}

// NodeCount returns the number of nodes with positive degree.
// Complexity: O(Knots).
func (g *Graph) NodeCount() int {
	n := 0
	for k := 0; k < g.Knots; k++ {
		if g.Grad[k] > 0 {
			n++
		}
	}

	return n
}
