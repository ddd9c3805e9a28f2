package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D spatial transformation
// including translation and rotation.
type Transform struct {
	data [3 * 3]float64
}

// Rotate returns a transform that rotates counter-clockwise by theta radians.
func Rotate(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{data: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// Translate returns a transform that translates by v.
func Translate(v r2.Vec) Transform {
	return Transform{data: [9]float64{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}}
}

// At returns the matrix element at row i, column j.
func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

// ApplyPos transforms a position.
func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet transforms every point of a set in place.
func (t Transform) ApplySet(s Set) {
	for i := range s {
		s[i] = t.ApplyPos(s[i])
	}
}
