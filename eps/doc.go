// Package eps provides tolerant floating-point comparisons.
//
// Every cost and prize comparison in the graph core must be robust to
// solver-level numerical slack: two edge costs produced by different
// reduction chains may differ in the last bits yet denote the same value.
// Raw == / < on float64 would make reductions depend on rounding noise, so
// all such decisions route through a Tol comparer instead.
//
// Tol is a plain float64 tolerance with comparison methods:
//
//	tol := eps.DefaultTol        // or eps.Tol(1e-7)
//	if tol.LT(costA, costB) { … } // costA < costB beyond tolerance
//	if tol.Zero(cost) { … }
//
// Values within the tolerance of each other compare equal; LT/GT hold only
// for differences that exceed it.
package eps
