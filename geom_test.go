// geom_test.go
package spacevectors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func wantVec(t *testing.T, got, want Vector) {
	t.Helper()
	if !got.X.Equal(want.X) || !got.Y.Equal(want.Y) || !got.Z.Equal(want.Z) {
		t.Fatalf("vector = %v, want %v", got, want)
	}
}

// samePlane checks geometric equivalence: the four coefficients of one
// normal form must be a common multiple of the other's.
func samePlane(t *testing.T, got, want Plane) {
	t.Helper()
	g := []Number{got.Normal.X, got.Normal.Y, got.Normal.Z, got.Offset}
	w := []Number{want.Normal.X, want.Normal.Y, want.Normal.Z, want.Offset}
	pivot := -1
	for i := range w {
		if !w[i].IsZero() {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		t.Fatalf("degenerate reference plane %v", want)
	}
	for i := range w {
		// cross-multiplication avoids dividing by zero coefficients
		if !g[i].Mul(w[pivot]).Equal(w[i].Mul(g[pivot])) {
			t.Fatalf("plane %v not equivalent to %v", got, want)
		}
	}
}

func Test_Geom_ExactVectorAlgebra(t *testing.T) {
	a := Vec(RatNum(1, 2), IntNum(0), IntNum(1))
	b := Vec(RatNum(1, 3), IntNum(2), IntNum(0))

	if d := a.Dot(b); !d.Equal(RatNum(1, 6)) {
		t.Fatalf("dot = %v, want 1/6", d)
	}
	wantVec(t, a.Cross(b), Vec(IntNum(-2), RatNum(1, 3), IntNum(1)))
	wantVec(t, a.Add(b), Vec(RatNum(5, 6), IntNum(2), IntNum(1)))
	wantVec(t, a.Scale(IntNum(2)), Vec(IntNum(1), IntNum(0), IntNum(2)))
}

func Test_Geom_LengthAndNormalize(t *testing.T) {
	if l := VecInts(3, 4, 0).Length(); l != 5 {
		t.Fatalf("length = %v, want 5", l)
	}
	wantVec(t, VecInts(0, 0, 3).Normalize(),
		Vec(FloatNum(0), FloatNum(0), FloatNum(1)))

	z := VecInts(0, 0, 0).Normalize()
	if !math.IsNaN(z.X.Float()) {
		t.Fatalf("zero-vector normalize = %v, want NaN components", z)
	}
}

func Test_Geom_AreaAndBetween(t *testing.T) {
	if a := Area(VecInts(1, 0, 0), VecInts(0, 2, 0)); a != 2 {
		t.Fatalf("area = %v, want 2", a)
	}
	wantVec(t, Between(VecInts(1, 1, 1), VecInts(2, 3, 4)), VecInts(1, 2, 3))
}

func Test_Geom_LineSampling(t *testing.T) {
	l := LineThrough(VecInts(1, 0, 0), VecInts(3, 0, 0))
	wantVec(t, l.Dir, VecInts(2, 0, 0))
	wantVec(t, l.At(RatNum(1, 2)), VecInts(2, 0, 0))
}

func Test_Geom_PlaneIntercepts(t *testing.T) {
	p := Plane{Normal: VecInts(1, 2, 4), Offset: IntNum(-4)}
	pts := p.Intercepts()
	wantVec(t, pts[0], VecInts(4, 0, 0))
	wantVec(t, pts[1], VecInts(0, 2, 0))
	wantVec(t, pts[2], VecInts(0, 0, 1))

	flat := Plane{Normal: VecInts(1, 0, 0), Offset: IntNum(-4)}
	if !flat.Intercepts()[1].Y.IsNaN() {
		t.Fatalf("missing intercept should be NaN")
	}
}

func Test_Geom_PlaneParametricRoundTrip(t *testing.T) {
	cases := []Plane{
		{Normal: VecInts(1, 1, 1), Offset: IntNum(-1)},
		{Normal: VecInts(1, 2, 4), Offset: IntNum(-4)},
		// zero normal components force the in-plane basis fallback
		{Normal: VecInts(2, 0, 0), Offset: IntNum(-4)},
		{Normal: VecInts(0, 3, 0), Offset: IntNum(6)},
		{Normal: VecInts(0, 0, 1), Offset: IntNum(0)},
	}
	for _, p := range cases {
		samePlane(t, p.Parametric().NormalForm(), p)
	}
}

func Test_Geom_PPlaneSamplingAndNormalForm(t *testing.T) {
	pp := PPlaneThrough(VecInts(0, 0, 1), VecInts(1, 0, 1), VecInts(0, 1, 1))
	wantVec(t, pp.At(IntNum(2), IntNum(3)), VecInts(2, 3, 1))
	samePlane(t, pp.NormalForm(), Plane{Normal: VecInts(0, 0, 1), Offset: IntNum(-1)})
}

func Test_Geom_PlanePointOn(t *testing.T) {
	p := Plane{Normal: VecInts(0, 3, 0), Offset: IntNum(6)}
	pt := p.PointOn()
	wantVec(t, pt, VecInts(0, -2, 0))
	if d := planePointDist(p, pt); !scalar.EqualWithinAbs(d, 0, 1e-15) {
		t.Fatalf("PointOn sample off plane by %v", d)
	}
}
