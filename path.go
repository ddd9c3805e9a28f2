package gear

import (
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// closeTol is the distance under which the first and last vertices of a
// path are considered coincident.
const closeTol = 1e-9

// Options tunes path generation. The zero value uses package defaults.
type Options struct {
	Resolution    float64 // see Flank.Resolution
	MaxIterations int     // see Flank.MaxIterations
}

// Path is the outline of a gear, one tooth contour per tooth in build order.
type Path struct {
	// Center of the gear. Build places it at the origin;
	// Rotate and Translate move it with the teeth.
	Center r2.Vec
	Teeth  []Tooth
	// OutsideRadius of the gear, the length of its spokes.
	OutsideRadius float64
}

// Build returns the outline of the gear described by s.
func Build(s Spec) (Path, error) {
	return BuildOpts(s, Options{})
}

// BuildOpts is Build with explicit generation options.
// Teeth are built from index s.Teeth down to 1 at angle index*Step.
func BuildOpts(s Spec, opts Options) (Path, error) {
	if err := s.Validate(); err != nil {
		return Path{}, err
	}
	offset, err := Offset(s)
	if err != nil {
		return Path{}, err
	}
	step := s.Step()
	path := Path{Teeth: make([]Tooth, 0, s.Teeth), OutsideRadius: s.OutsideRadius}
	for i := s.Teeth; i > 0; i-- {
		tooth, err := AssembleTooth(ToothParams{
			Angle:         float64(i) * step,
			Radius:        s.RootRadius,
			Offset:        offset,
			Step:          step,
			RootRadius:    s.RootRadius,
			OutsideRadius: s.OutsideRadius,
			Resolution:    opts.Resolution,
			MaxIterations: opts.MaxIterations,
		})
		if err != nil {
			return Path{}, err
		}
		path.Teeth = append(path.Teeth, tooth)
	}
	return path, nil
}

// Vertices returns the points of every tooth concatenated in build order.
// The sequence is closed: the first point is repeated at the end.
func (p Path) Vertices() []r2.Vec {
	n := 0
	for _, t := range p.Teeth {
		n += len(t.Points)
	}
	if n == 0 {
		return nil
	}
	v := make([]r2.Vec, 0, n+1)
	for _, t := range p.Teeth {
		v = append(v, t.Points...)
	}
	if !d2.Set(v).Closed(closeTol) {
		v = append(v, v[0])
	}
	return v
}

// Len returns the number of points over all teeth, not counting the closing point.
func (p Path) Len() int {
	n := 0
	for _, t := range p.Teeth {
		n += len(t.Points)
	}
	return n
}

// Bounds returns the bounding box of the path.
func (p Path) Bounds() r2.Box {
	return r2.Box(d2.Set(p.Vertices()).Bounds())
}

// Rotate returns a copy of the path turned by degrees about the origin
// in the gear angle convention (clockwise from +Y).
func (p Path) Rotate(degrees float64) Path {
	q := p.transform(d2.Rotate(-d2r(degrees)))
	for i := range q.Teeth {
		q.Teeth[i].Angle += degrees
	}
	return q
}

// Translate returns a copy of the path displaced by v.
func (p Path) Translate(v r2.Vec) Path {
	return p.transform(d2.Translate(v))
}

func (p Path) transform(t d2.Transform) Path {
	q := Path{
		Center:        t.ApplyPos(p.Center),
		Teeth:         make([]Tooth, len(p.Teeth)),
		OutsideRadius: p.OutsideRadius,
	}
	for i, tooth := range p.Teeth {
		pts := make(d2.Set, len(tooth.Points))
		copy(pts, tooth.Points)
		t.ApplySet(pts)
		q.Teeth[i] = Tooth{Angle: tooth.Angle, Points: pts}
	}
	return q
}

// Spokes returns one segment per tooth from the gear center to the outside
// circle at the tooth angle, in the same order as the teeth.
func (p Path) Spokes() [][2]r2.Vec {
	spokes := make([][2]r2.Vec, 0, len(p.Teeth))
	for _, tooth := range p.Teeth {
		tip := d2.Pol{R: p.OutsideRadius, Theta: d2r(tooth.Angle)}.Cartesian()
		spokes = append(spokes, [2]r2.Vec{p.Center, r2.Add(p.Center, tip)})
	}
	return spokes
}

// Spokes returns the spokes of the gear described by s as built by Build,
// without tracing its involutes.
func Spokes(s Spec) ([][2]r2.Vec, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	step := s.Step()
	p := Path{Teeth: make([]Tooth, 0, s.Teeth), OutsideRadius: s.OutsideRadius}
	for i := s.Teeth; i > 0; i-- {
		p.Teeth = append(p.Teeth, Tooth{Angle: float64(i) * step})
	}
	return p.Spokes(), nil
}
