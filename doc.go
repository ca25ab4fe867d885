// Package stpcore is the structural heart of a Steiner tree solver: an
// in-memory, slot-based graph arena with the mutation operators that
// presolving and reduction algorithms are built from.
//
// 🚀 What is stpcore?
//
//	A pure-Go library providing:
//		• Arc-pair arena: two directed arcs per edge in parallel arrays,
//		  intrusive doubly linked adjacency, O(1) insertion
//		• Incremental mutation: edge delete/hide/uncover, node contraction,
//		  bounded-degree pseudo-elimination — all slot-preserving
//		• Provenance: per-arc ancestor lists mapping every derived edge back
//		  to the original instance, surviving contraction and packing
//		• Packing: compaction into a dense, renumbered graph
//		• Prize-collecting / maximum-weight transforms: PCSTP and MWCSP
//		  instances reshaped into Steiner arborescence form and back
//		• Structural invariant checking for assertion-guarded builds
//
// ✨ Why stpcore?
//
//   - Deterministic, index-based – nodes and arcs are plain ints, replayable
//   - Slot-preserving mutation – contraction rewires arcs in place
//   - Pure Go – no cgo, no hidden deps
//   - Honest failure modes – caller bugs panic, data-dependent failures
//     return a status and leave the graph untouched
//
// Everything is organized under three subpackages:
//
//	core/  — the Graph arena, mutation operators, PC/MW layer, validity
//	eps/   — tolerant floating-point comparisons used for all cost decisions
//	ilist/ — append-by-copy integer lists carrying provenance
//
// Quick ASCII example:
//
//	0───1───2        DelPseudo(1) replaces the interior node by a direct
//	root     term    0───2 edge costing the sum of the two it stands in
//	                 for, with provenance preserved; Pack then renumbers
//	                 the survivors densely.
//
// Solvers, file formats and heuristics live elsewhere; this module is the
// data-structure contract they build on.
package stpcore
