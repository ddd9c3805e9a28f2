package render

import (
	"io"
	"math"
	"testing"

	"github.com/soypat/gear"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestFan(t *testing.T) {
	s := gear.DefaultSpec()
	p, err := gear.Build(s)
	if err != nil {
		t.Fatal(err)
	}
	fan := Fan(p)
	if len(fan) != p.Len() {
		t.Fatalf("got %d triangles, want one per outline point (%d)", len(fan), p.Len())
	}
	var area float64
	for i, tri := range fan {
		a := signedArea(tri)
		if a <= 0 {
			t.Fatalf("triangle %d is not counter-clockwise, area %g", i, a)
		}
		area += a
	}
	lo, hi := math.Pi*s.RootRadius*s.RootRadius, math.Pi*s.OutsideRadius*s.OutsideRadius
	if area <= lo || area >= hi {
		t.Errorf("profile area %g not between root and outside circle areas", area)
	}
	// Translated profiles fan around their own center.
	moved := p.Translate(r2.Vec{X: 500})
	if got := Fan(moved)[0][0]; got != (r2.Vec{X: 500}) {
		t.Errorf("fan apex got %v, want moved center", got)
	}
}

func TestOutline(t *testing.T) {
	p := gear.Path{Teeth: []gear.Tooth{{Points: []r2.Vec{{}, {X: 1}, {X: 1}, {X: 1, Y: 1}, {}}}}}
	loop := outline(p)
	if len(loop) != 3 {
		t.Errorf("got %d vertices, want duplicates and closing point removed: %v", len(loop), loop)
	}
}

func TestSTLReaderShortBuffer(t *testing.T) {
	r, err := NewExtrusion(gear.Path{Teeth: []gear.Tooth{{Points: []r2.Vec{{Y: 1}, {X: 1}, {X: -1}}}}}, 1)
	if err != nil {
		t.Fatal(err)
	}
	rd := &stlReader{r: r}
	if _, err := rd.Read(make([]byte, stlTriangleSize-1)); err == nil {
		t.Error("expected error for buffer smaller than one triangle")
	}
	n, err := rd.Read(make([]byte, 2*stlTriangleSize))
	if n != 2*stlTriangleSize || err != nil {
		t.Errorf("got %d bytes, err %v", n, err)
	}
	var total int
	for err == nil {
		n, err = rd.Read(make([]byte, 100*stlTriangleSize))
		total += n
	}
	if err != io.EOF || total != 10*stlTriangleSize {
		t.Errorf("got %d remaining bytes, err %v", total, err)
	}
}

func signedArea(t Triangle2) float64 {
	a, b, c := t[0], t[1], t[2]
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}
