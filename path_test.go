package gear

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestBuildDefault(t *testing.T) {
	s := DefaultSpec()
	path, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(path.Teeth) != s.Teeth {
		t.Fatalf("got %d teeth, want %d", len(path.Teeth), s.Teeth)
	}
	for i, tooth := range path.Teeth {
		wantAngle := float64(s.Teeth-i) * s.Step()
		if tooth.Angle != wantAngle {
			t.Errorf("tooth %d angle got %g, want %g", i, tooth.Angle, wantAngle)
		}
		if len(tooth.Points) != 20 {
			t.Errorf("tooth %d got %d points, want 20", i, len(tooth.Points))
		}
		for j, p := range tooth.Points {
			r := math.Hypot(p.X, p.Y)
			if r < s.RootRadius-1e-9 || r > s.OutsideRadius {
				t.Errorf("tooth %d point %d radius %g out of bounds", i, j, r)
			}
		}
	}
	v := path.Vertices()
	if len(v) != path.Len()+1 {
		t.Errorf("vertices got %d, want %d points plus closing point", len(v), path.Len())
	}
	if v[0] != v[len(v)-1] {
		t.Errorf("path not closed: first %v last %v", v[0], v[len(v)-1])
	}
	bb := path.Bounds()
	if bb.Max.X > s.OutsideRadius || bb.Min.X < -s.OutsideRadius {
		t.Errorf("bounds %v exceed outside circle", bb)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(DefaultSpec())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(DefaultSpec())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("builds differ:\n%s", d)
	}
}

func TestBuildConcurrent(t *testing.T) {
	s := DefaultSpec()
	want, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		t.Run(fmt.Sprintf("build%d", i), func(t *testing.T) {
			t.Parallel()
			got, err := Build(s)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("concurrent build differs:\n%s", d)
			}
			if d := cmp.Diff(want.Rotate(30), got.Rotate(30)); d != "" {
				t.Errorf("concurrent rotate differs:\n%s", d)
			}
		})
	}
}

func TestBuildInvalid(t *testing.T) {
	s := DefaultSpec()
	s.RootRadius = 250
	_, err := Build(s)
	if !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("got %v, want ErrInvalidSpec", err)
	}
	_, err = BuildOpts(DefaultSpec(), Options{MaxIterations: 3})
	if !errors.Is(err, ErrIterationLimit) {
		t.Errorf("got %v, want ErrIterationLimit", err)
	}
}

func TestAssembleTooth(t *testing.T) {
	const tol = 1e-9
	s := DefaultSpec()
	off, err := Offset(s)
	if err != nil {
		t.Fatal(err)
	}
	k := ToothParams{
		Angle:         60,
		Radius:        s.RootRadius,
		Offset:        off,
		Step:          s.Step(),
		RootRadius:    s.RootRadius,
		OutsideRadius: s.OutsideRadius,
	}
	tooth, err := AssembleTooth(k)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Involute(Flank{Start: 60 + off, Radius: s.RootRadius, Face: Back, Step: s.Step(), RootRadius: s.RootRadius, OutsideRadius: s.OutsideRadius})
	if err != nil {
		t.Fatal(err)
	}
	front, err := Involute(Flank{Start: 60 + s.Step()/2 - off, Radius: s.RootRadius, Face: Front, Step: s.Step(), RootRadius: s.RootRadius, OutsideRadius: s.OutsideRadius})
	if err != nil {
		t.Fatal(err)
	}
	want := append([]r2.Vec{}, back...)
	for i := len(front) - 1; i >= 0; i-- {
		want = append(want, front[i])
	}
	if d := cmp.Diff(want, tooth.Points); d != "" {
		t.Errorf("tooth is not back flank followed by reversed front flank:\n%s", d)
	}
	// The contour starts and ends on the root circle.
	first, last := tooth.Points[0], tooth.Points[len(tooth.Points)-1]
	if r := r2.Norm(first); math.Abs(r-s.RootRadius) > tol {
		t.Errorf("first point radius %g, want root radius", r)
	}
	if r := r2.Norm(last); math.Abs(r-s.RootRadius) > tol {
		t.Errorf("last point radius %g, want root radius", r)
	}
}

func TestPathRotate(t *testing.T) {
	s := DefaultSpec()
	path, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	// Rotating by one step moves each tooth onto the one built before it.
	rotated := path.Rotate(s.Step())
	for i := 1; i < len(path.Teeth); i++ {
		got := rotated.Teeth[i].Points
		want := path.Teeth[i-1].Points
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("rotated tooth %d does not match tooth %d:\n%s", i, i-1, d)
		}
	}
	// The original is untouched.
	again, _ := Build(s)
	if d := cmp.Diff(again, path); d != "" {
		t.Error("Rotate modified its receiver")
	}
}

func TestPathTranslate(t *testing.T) {
	path, err := Build(DefaultSpec())
	if err != nil {
		t.Fatal(err)
	}
	v := r2.Vec{X: 300, Y: -50}
	moved := path.Translate(v)
	if moved.Center != v {
		t.Errorf("center got %v, want %v", moved.Center, v)
	}
	a, b := path.Vertices(), moved.Vertices()
	for i := range a {
		if d := r2.Norm(r2.Sub(r2.Add(a[i], v), b[i])); d > 1e-9 {
			t.Fatalf("vertex %d moved by wrong amount", i)
		}
	}
}

func TestSpokes(t *testing.T) {
	s := DefaultSpec()
	spokes, err := Spokes(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(spokes) != s.Teeth {
		t.Fatalf("got %d spokes, want %d", len(spokes), s.Teeth)
	}
	for i, sp := range spokes {
		if sp[0] != (r2.Vec{}) {
			t.Errorf("spoke %d does not start at the center", i)
		}
		if r := r2.Norm(sp[1]); math.Abs(r-s.OutsideRadius) > 1e-9 {
			t.Errorf("spoke %d length %g, want %g", i, r, s.OutsideRadius)
		}
	}
	// First spoke is at 360 degrees, straight up.
	if d := r2.Norm(r2.Sub(spokes[0][1], r2.Vec{Y: s.OutsideRadius})); d > 1e-9 {
		t.Errorf("first spoke tip got %v", spokes[0][1])
	}

	path, err := Build(s)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(spokes, path.Spokes()); d != "" {
		t.Errorf("path spokes differ from spec spokes:\n%s", d)
	}
	// Spokes follow the path through transforms.
	v := r2.Vec{X: 40, Y: 7}
	moved := path.Rotate(s.Step() / 2).Translate(v)
	for i, sp := range moved.Spokes() {
		if sp[0] != moved.Center {
			t.Errorf("moved spoke %d starts at %v, want %v", i, sp[0], moved.Center)
		}
		want := r2.Add(v, d2.Pol{R: s.OutsideRadius, Theta: d2r(float64(s.Teeth-i)*s.Step() + s.Step()/2)}.Cartesian())
		if d := r2.Norm(r2.Sub(sp[1], want)); d > 1e-9 {
			t.Errorf("moved spoke %d tip got %v, want %v", i, sp[1], want)
		}
	}
}

func TestPair(t *testing.T) {
	driver := DefaultSpec()
	driven := DefaultSpec()
	driven.Teeth = 8
	a, b, err := Pair(driver, driven)
	if err != nil {
		t.Fatal(err)
	}
	want := r2.Vec{Y: driver.PitchRadius + driven.PitchRadius}
	if d := r2.Norm(r2.Sub(b.Center, want)); d > 1e-9 {
		t.Errorf("driven center got %v, want %v", b.Center, want)
	}
	if len(a.Teeth) != driver.Teeth || len(b.Teeth) != driven.Teeth {
		t.Errorf("got %d and %d teeth", len(a.Teeth), len(b.Teeth))
	}
	// The first driver tooth is centered on the line between the centers,
	// so its ends mirror each other about the +Y axis.
	pts := a.Teeth[0].Points
	first, last := pts[0], pts[len(pts)-1]
	if d := r2.Norm(r2.Sub(first, r2.Vec{X: -last.X, Y: last.Y})); d > 1e-9 {
		t.Errorf("driver tooth not centered on +Y: first %v last %v", first, last)
	}
	// Tips reach past the pitch circles so the gears come close.
	c := Clearance(a, b)
	if c <= 0 || c > 2*(driver.OutsideRadius-driver.PitchRadius) {
		t.Errorf("unexpected pair clearance %g", c)
	}
	bad := driven
	bad.Teeth = 0
	if _, _, err := Pair(driver, bad); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("got %v, want ErrInvalidSpec", err)
	}
}

func TestClearance(t *testing.T) {
	path, err := Build(DefaultSpec())
	if err != nil {
		t.Fatal(err)
	}
	if c := Clearance(path, path); c != 0 {
		t.Errorf("self clearance got %g, want 0", c)
	}
	far := path.Translate(r2.Vec{X: 1000})
	c := Clearance(path, far)
	if c < 1000-2*230 || c > 1000 {
		t.Errorf("clearance got %g, want within [540, 1000]", c)
	}
	if c := Clearance(Path{}, path); !math.IsInf(c, 1) {
		t.Errorf("empty path clearance got %g, want +Inf", c)
	}
}
