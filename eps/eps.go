package eps

import "math"

// Default is the tolerance used when callers do not supply their own.
const Default = 1e-9

// DefaultTol is Default as a ready-to-use comparer.
const DefaultTol = Tol(Default)

// Tol is a comparison tolerance. The zero value compares exactly; normalize
// callers that accept a Tol from outside should substitute DefaultTol for
// non-positive values (see Normalize).
type Tol float64

// Normalize returns t, or DefaultTol when t is not positive.
func (t Tol) Normalize() Tol {
	if t <= 0 {
		return DefaultTol
	}

	return t
}

// EQ reports a == b within tolerance.
func (t Tol) EQ(a, b float64) bool {
	return math.Abs(a-b) <= float64(t)
}

// LT reports a < b beyond tolerance.
func (t Tol) LT(a, b float64) bool {
	return a < b-float64(t)
}

// LE reports a <= b within tolerance.
func (t Tol) LE(a, b float64) bool {
	return a <= b+float64(t)
}

// GT reports a > b beyond tolerance.
func (t Tol) GT(a, b float64) bool {
	return a > b+float64(t)
}

// GE reports a >= b within tolerance.
func (t Tol) GE(a, b float64) bool {
	return a >= b-float64(t)
}

// Zero reports |a| <= tolerance.
func (t Tol) Zero(a float64) bool {
	return math.Abs(a) <= float64(t)
}

// Positive reports a > tolerance.
func (t Tol) Positive(a float64) bool {
	return a > float64(t)
}
