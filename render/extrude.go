package render

import (
	"errors"
	"io"

	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// vertices closer than this are merged before triangulating.
const mergeTol = 1e-9

// outline returns the path vertices as an open loop with
// coincident consecutive vertices removed.
func outline(p gear.Path) []r2.Vec {
	v := p.Vertices()
	if len(v) == 0 {
		return nil
	}
	loop := make([]r2.Vec, 0, len(v))
	for _, pt := range v {
		if len(loop) > 0 && d2.EqualWithin(loop[len(loop)-1], pt, mergeTol) {
			continue
		}
		loop = append(loop, pt)
	}
	if len(loop) > 1 && d2.EqualWithin(loop[0], loop[len(loop)-1], mergeTol) {
		loop = loop[:len(loop)-1]
	}
	return loop
}

// Fan triangulates a gear outline around the gear center. Every triangle
// has p.Center as its first vertex followed by two consecutive outline
// vertices, including the edge that closes the outline. Gear outlines are
// star shaped about their center so the fan covers the profile exactly.
func Fan(p gear.Path) []Triangle2 {
	loop := outline(p)
	n := len(loop)
	if n < 3 {
		return nil
	}
	tris := make([]Triangle2, 0, n)
	for i := range loop {
		tris = append(tris, Triangle2{p.Center, loop[i], loop[(i+1)%n]})
	}
	return tris
}

// Extrude returns the triangles of the gear profile extruded from z=0 to
// z=height: a fan triangulated top and bottom and one quad per outline edge.
func Extrude(p gear.Path, height float64) ([]Triangle3, error) {
	if height <= 0 {
		return nil, errors.New("extrusion height must be positive")
	}
	fan := Fan(p)
	if len(fan) == 0 {
		return nil, errors.New("gear path has too few vertices to extrude")
	}
	at := func(v r2.Vec, z float64) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: z} }
	tris := make([]Triangle3, 0, 4*len(fan))
	for _, f := range fan {
		// Outline runs counter-clockwise so the fan faces +Z.
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{at(f[0], height), at(f[1], height), at(f[2], height)}},
			Triangle3{V: [3]r3.Vec{at(f[0], 0), at(f[2], 0), at(f[1], 0)}},
		)
		b0, b1 := at(f[1], 0), at(f[2], 0)
		t0, t1 := at(f[1], height), at(f[2], height)
		tris = append(tris,
			Triangle3{V: [3]r3.Vec{b0, b1, t1}},
			Triangle3{V: [3]r3.Vec{b0, t1, t0}},
		)
	}
	return tris, nil
}

// extrusion serves the triangles of an extruded gear as a Renderer.
type extrusion struct {
	buf triangle3Buffer
}

// NewExtrusion returns a Renderer of the gear profile extruded to height.
func NewExtrusion(p gear.Path, height float64) (Renderer, error) {
	tris, err := Extrude(p, height)
	if err != nil {
		return nil, err
	}
	e := &extrusion{}
	e.buf.Write(tris)
	return e, nil
}

// ReadTriangles implements Renderer.
func (e *extrusion) ReadTriangles(t []Triangle3) (int, error) {
	if e.buf.Len() == 0 {
		return 0, io.EOF
	}
	return e.buf.Read(t), nil
}
