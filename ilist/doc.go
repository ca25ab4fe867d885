// Package ilist provides small append-by-copy integer lists.
//
// Graph reductions keep, per derived arc and per derived node, the set of
// original edge indices that justify it ("ancestors"). Those records are
// merged constantly — every contraction and every replacement edge combines
// two of them — and the one contract that keeps provenance sound is that a
// merge never shares storage with its sources: once list A has been appended
// to list B, mutating A must not be observable through B.
//
// ilist.List enforces that contract structurally. Append and Clone always
// copy element storage; no operation ever aliases another list's backing
// array. Lists are ordinary slices underneath, so iteration, len() and
// indexing work as usual.
package ilist
