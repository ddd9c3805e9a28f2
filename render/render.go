// Package render turns gear paths into drawings and solid models.
package render

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams the triangles of a model.
type Renderer interface {
	// ReadTriangles fills t with up to len(t) triangles and returns the number read.
	// It returns io.EOF once the model is exhausted.
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle2 is a 2D triangle.
type Triangle2 [3]r2.Vec

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle following
// the right hand rule over its vertex order.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}
