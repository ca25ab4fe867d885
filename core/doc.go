// Package core implements the in-memory graph underlying Steiner tree
// reductions: a fixed-capacity, slot-based arc arena with full provenance
// tracking and the structural operators that presolving algorithms rely on.
//
// The Graph G = (V,A) stores every undirected edge as two directed arcs in
// parallel integer/float arrays; arcs 2k and 2k+1 are the two directions of
// logical edge k. Adjacency is kept as intrusive doubly linked lists threaded
// through the Ieat/Oeat next-index arrays, which buys:
//
//   - O(1) edge insertion at the adjacency-list heads
//   - O(degree) edge deletion by predecessor-search splice
//     (O(1) at the root while the root-edge cache is enabled)
//   - O(1) reversible soft deletion (HideEdge / Uncover)
//   - slot-preserving node contraction: arcs are rewired in place,
//     never reallocated
//
// Beyond plain mutation the package carries:
//
//   - History: per-arc ancestor lists mapping every derived arc back to the
//     original edges that justify it (InitHistory, FixEdge), so reductions on
//     a transformed graph can be mapped back to solutions on the input.
//   - Contraction and bounded-degree pseudo-elimination (Contract, DelPseudo)
//     with all-or-nothing commit semantics.
//   - Packing (Pack): compaction into a fresh, densely renumbered graph that
//     discards all freed slots and consumes the old graph.
//   - The prize-collecting / maximum-weight transform layer (ToPcspg,
//     ToRpcspg, ToMwcsp, ToRmwcsp, ToExtended/ToOriginal, GetSap,
//     GetSapShift, ToRooted) converting PCSTP/MWCSP instances into
//     Steiner-arborescence form and back.
//   - An O(V+A) structural invariant checker (Valid) for assertion-guarded
//     use.
//
// Sentinels in the next-index arrays:
//
//	EatLast — end of an adjacency list
//	EatFree — freed arc slot (reusable via redirect, reclaimed by Pack)
//	EatHide — hidden arc slot (restored by Uncover)
//
// Error model: caller bugs (capacity exhaustion, out-of-range indices,
// contracting a node into itself) panic; data-dependent failures (DelPseudo
// without spare slots, ToRooted without a qualifying terminal) return an
// explicit status and leave the graph untouched; invariant violations are
// reported by Valid as wrapped sentinel errors.
//
// Concurrency: none. A Graph is a single-threaded, mutate-in-place structure;
// callers need exclusive access.
package core
