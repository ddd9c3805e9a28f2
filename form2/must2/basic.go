package must2

import (
	"fmt"

	"github.com/soypat/gear"
	"gonum.org/v1/gonum/spatial/r2"
)

// circle is the 2d signed distance object for a circle.
type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 for a 2d circle centered at the origin.
func Circle(radius float64) *circle {
	if radius < 0 {
		panic("radius < 0")
	}
	d := r2.Vec{X: radius, Y: radius}
	return &circle{
		radius: radius,
		bb:     r2.Box{Min: r2.Scale(-1, d), Max: d},
	}
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(p) - s.radius
}

// Bounds returns the bounding box of a 2d circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}

// Bore returns the gear profile of s with a centered hole of the given radius.
// The hole must fit inside the root circle.
func Bore(s gear.Spec, radius float64) gear.SDF2 {
	if radius <= 0 || radius >= s.RootRadius {
		panic(fmt.Sprintf("bore radius %g must be in (0, %g)", radius, s.RootRadius))
	}
	return gear.Difference(Gear(s), Circle(radius))
}
