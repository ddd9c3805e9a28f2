package must2

import (
	"math"

	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Gear returns the profile of the gear described by s.
// It panics if the gear cannot be built.
func Gear(s gear.Spec) *Polygon {
	path, err := gear.Build(s)
	if err != nil {
		panic(err)
	}
	return NewPolygon(path.Vertices())
}

// GearOpts is Gear with explicit generation options.
func GearOpts(s gear.Spec, opts gear.Options) *Polygon {
	path, err := gear.BuildOpts(s, opts)
	if err != nil {
		panic(err)
	}
	return NewPolygon(path.Vertices())
}

// Nagon return the vertices of a N sided regular polygon
// with a vertex on the +Y axis.
func Nagon(n int, radius float64) []r2.Vec {
	if n < 3 {
		return nil
	}
	m := d2.Rotate(-2 * math.Pi / float64(n))
	v := make([]r2.Vec, n)
	p := r2.Vec{Y: radius}
	for i := 0; i < n; i++ {
		v[i] = p
		p = m.ApplyPos(p)
	}
	return v
}
