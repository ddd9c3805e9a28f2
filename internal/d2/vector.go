package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// EqualWithin returns true if the components of a and b differ by at most tol.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Finite returns false if any component is NaN or infinite.
func Finite(a r2.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

// Set is an ordered sequence of points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Reverse returns a copy of the set in reverse order.
func (a Set) Reverse() Set {
	n := len(a)
	v := make(Set, n)
	for i, p := range a {
		v[n-1-i] = p
	}
	return v
}

// Closed returns true if the first and last points are within tol.
func (a Set) Closed(tol float64) bool {
	n := len(a)
	return n > 1 && EqualWithin(a[0], a[n-1], tol)
}

// Pol is a polar coordinate. Theta is measured clockwise from
// the +Y axis so that (R, Theta) maps to (R*sin(Theta), R*cos(Theta)).
type Pol struct {
	R, Theta float64
}

// Cartesian converts a polar to a cartesian coordinate.
func (a Pol) Cartesian() r2.Vec {
	s, c := math.Sincos(a.Theta)
	return r2.Vec{X: a.R * s, Y: a.R * c}
}
