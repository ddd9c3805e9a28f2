package gear

import (
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ToothParams defines a single tooth of a gear.
type ToothParams struct {
	Angle         float64 // tooth angle [degrees]
	Radius        float64 // radius the flanks unwind from, normally the root radius
	Offset        float64 // involute offset [degrees], see Geometry.Offset
	Step          float64 // tooth step [degrees]
	RootRadius    float64
	OutsideRadius float64
	Resolution    float64 // see Flank.Resolution
	MaxIterations int     // see Flank.MaxIterations
}

// Tooth is the contour of a single tooth.
type Tooth struct {
	Angle  float64  // tooth angle [degrees]
	Points []r2.Vec // back flank followed by the reversed front flank
}

// AssembleTooth builds the contour of one tooth: the back flank in the order
// it was traced followed by the front flank traversed from the outside circle
// down to the root circle. The flanks are joined without connecting arcs.
func AssembleTooth(k ToothParams) (Tooth, error) {
	flank := Flank{
		Radius:        k.Radius,
		Step:          k.Step,
		RootRadius:    k.RootRadius,
		OutsideRadius: k.OutsideRadius,
		Resolution:    k.Resolution,
		MaxIterations: k.MaxIterations,
	}
	back := flank
	back.Face = Back
	back.Start = k.Angle + k.Offset
	a, err := Involute(back)
	if err != nil {
		return Tooth{}, err
	}

	front := flank
	front.Face = Front
	front.Start = k.Angle + k.Step/2 - k.Offset
	b, err := Involute(front)
	if err != nil {
		return Tooth{}, err
	}

	points := make([]r2.Vec, 0, len(a)+len(b))
	points = append(points, a...)
	points = append(points, d2.Set(b).Reverse()...)
	return Tooth{Angle: k.Angle, Points: points}, nil
}
