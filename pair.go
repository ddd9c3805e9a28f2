package gear

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r2"
)

// Pair returns the paths of two meshing gears. The driver is centered on the
// origin and turned so that one of its teeth is centered on the +Y axis.
// The driven gear is centered on the +Y axis at the sum of both pitch radii
// and turned so that one of its gaps faces the driver's tooth.
//
// A tooth built at angle a spans a+Step/2-Offset to a+Step+Offset and is
// centered on a+3*Step/4. Gaps are centered on a+Step/4.
func Pair(driver, driven Spec) (a, b Path, err error) {
	a, err = Build(driver)
	if err != nil {
		return Path{}, Path{}, err
	}
	b, err = Build(driven)
	if err != nil {
		return Path{}, Path{}, err
	}
	a = a.Rotate(-3 * driver.Step() / 4)
	center := r2.Vec{Y: driver.PitchRadius + driven.PitchRadius}
	b = b.Rotate(180 - driven.Step()/4).Translate(center)
	return a, b, nil
}

// Clearance returns the smallest distance between a vertex of a and a
// vertex of b. It returns +Inf if either path has no vertices.
func Clearance(a, b Path) float64 {
	va, vb := a.Vertices(), b.Vertices()
	if len(va) == 0 || len(vb) == 0 {
		return math.Inf(1)
	}
	pts := make(kdtree.Points, len(va))
	for i, v := range va {
		pts[i] = kdtree.Point{v.X, v.Y}
	}
	tree := kdtree.New(pts, false)
	best := math.Inf(1)
	for _, v := range vb {
		_, d2 := tree.Nearest(kdtree.Point{v.X, v.Y})
		best = math.Min(best, d2)
	}
	return math.Sqrt(best)
}
