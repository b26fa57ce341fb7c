// geom.go: geometric primitives and representation conversions.
//
// The four variants are plain value types: Vector, Line (base + direction),
// Plane (normal form: normal·p + offset = 0) and PPlane (parametric form:
// base + s·dir1 + t·dir2). Nothing here is cached or shared; every entity
// is built fresh during evaluation and discarded with the result.
//
// Arithmetic is split along the exact/float boundary:
//   - Combinations that stay in the rationals (Add, Sub, Scale, Dot, Cross,
//     the parametric point samplers, the plane conversions) run on Number,
//     so rational inputs give exact results. This is what makes "exactly
//     zero" a meaningful test for coplanarity and incidence.
//   - Anything passing through a square root or arc cosine (Length,
//     Normalize, Distance) runs on float64 via github.com/golang/geo/r3.
//
// Degenerate inputs never panic. A zero-length vector normalizes to NaN
// components, a zero normal component turns the corresponding axis
// intercept into NaN, and so on; callers treat NaN as a valid outcome.
package spacevectors

import "github.com/golang/geo/r3"

// Vector is a free vector or point position with three scalar components.
type Vector struct {
	X, Y, Z Number
}

// Vec builds a vector from three scalars.
func Vec(x, y, z Number) Vector { return Vector{X: x, Y: y, Z: z} }

// VecInts builds a vector from exact integers (test and constructor sugar).
func VecInts(x, y, z int64) Vector {
	return Vector{X: IntNum(x), Y: IntNum(y), Z: IntNum(z)}
}

// R3 converts to a float vector for norm/angle computations.
func (v Vector) R3() r3.Vector {
	return r3.Vector{X: v.X.Float(), Y: v.Y.Float(), Z: v.Z.Float()}
}

func fromR3(v r3.Vector) Vector {
	return Vector{X: FloatNum(v.X), Y: FloatNum(v.Y), Z: FloatNum(v.Z)}
}

func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X.Add(w.X), Y: v.Y.Add(w.Y), Z: v.Z.Add(w.Z)}
}

func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y), Z: v.Z.Sub(w.Z)}
}

func (v Vector) Scale(n Number) Vector {
	return Vector{X: v.X.Mul(n), Y: v.Y.Mul(n), Z: v.Z.Mul(n)}
}

// Dot is the exact dot product.
func (v Vector) Dot(w Vector) Number {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y)).Add(v.Z.Mul(w.Z))
}

// Cross is the exact cross product.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: v.Y.Mul(w.Z).Sub(v.Z.Mul(w.Y)),
		Y: v.Z.Mul(w.X).Sub(v.X.Mul(w.Z)),
		Z: v.X.Mul(w.Y).Sub(v.Y.Mul(w.X)),
	}
}

// Length is the Euclidean norm (always floating).
func (v Vector) Length() float64 { return v.R3().Norm() }

// Normalize scales v to unit length. A zero vector yields NaN components
// (0 * +Inf), deliberately: degenerate input must not fault.
func (v Vector) Normalize() Vector {
	return fromR3(v.R3().Mul(1 / v.Length()))
}

// IsZero reports whether all components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero() && v.Z.IsZero()
}

// Between returns the vector from point a to point b.
func Between(a, b Vector) Vector { return b.Sub(a) }

// Area returns the parallelogram area spanned by a and b.
func Area(a, b Vector) float64 { return a.Cross(b).Length() }

// Line is a point plus a direction, parametric in one variable.
type Line struct {
	Base, Dir Vector
}

// At returns the point base + t*direction.
func (l Line) At(t Number) Vector { return l.Base.Add(l.Dir.Scale(t)) }

// LineThrough builds the line through two points.
func LineThrough(a, b Vector) Line {
	return Line{Base: a, Dir: Between(a, b)}
}

// Plane is the normal form: all points p with Normal·p + Offset = 0.
type Plane struct {
	Normal Vector
	Offset Number
}

// PlaneAt builds the normal-form plane with the given normal through the
// given point.
func PlaneAt(normal, point Vector) Plane {
	return Plane{Normal: normal, Offset: normal.Dot(point).Neg()}
}

// Intercepts returns the three axis-intercept points (-offset/normal[i] on
// axis i). A zero normal component makes that intercept NaN.
func (p Plane) Intercepts() []Vector {
	negOff := p.Offset.Neg()
	zero := IntNum(0)
	return []Vector{
		{X: negOff.Div(p.Normal.X), Y: zero, Z: zero},
		{X: zero, Y: negOff.Div(p.Normal.Y), Z: zero},
		{X: zero, Y: zero, Z: negOff.Div(p.Normal.Z)},
	}
}

// PointOn samples a point on the plane: the intercept on the axis with the
// largest normal component. For a zero normal the result is NaN.
func (p Plane) PointOn() Vector {
	i := p.dominantAxis()
	t := p.Offset.Neg().Div(p.normalComp(i))
	pt := VecInts(0, 0, 0)
	switch i {
	case 0:
		pt.X = t
	case 1:
		pt.Y = t
	default:
		pt.Z = t
	}
	return pt
}

func (p Plane) normalComp(i int) Number {
	switch i {
	case 0:
		return p.Normal.X
	case 1:
		return p.Normal.Y
	default:
		return p.Normal.Z
	}
}

func (p Plane) dominantAxis() int {
	best, bestAbs := 0, p.Normal.X.Abs().Float()
	if a := p.Normal.Y.Abs().Float(); a > bestAbs {
		best, bestAbs = 1, a
	}
	if a := p.Normal.Z.Abs().Float(); a > bestAbs {
		best = 2
	}
	return best
}

// axis returns the unit vector of axis i.
func axis(i int) Vector {
	switch i {
	case 0:
		return VecInts(1, 0, 0)
	case 1:
		return VecInts(0, 1, 0)
	default:
		return VecInts(0, 0, 1)
	}
}

// Parametric converts to parametric form with identical geometric meaning.
//
// When all normal components are non-zero the intercept triangle is used
// directly: base = x-intercept, directions toward the y- and z-intercepts.
// Zero components would turn intercepts into NaN, so for those planes the
// conversion falls back to an in-plane basis anchored at the dominant-axis
// intercept: for each remaining axis i, e_i - (n_i/n_j)·e_j lies in the
// plane and the two are independent. Both branches are exact for rational
// input, and normal-form round-trips recover an equivalent plane.
func (p Plane) Parametric() PPlane {
	if !p.Normal.X.IsZero() && !p.Normal.Y.IsZero() && !p.Normal.Z.IsZero() {
		pts := p.Intercepts()
		return PPlane{
			Base: pts[0],
			Dir1: Between(pts[0], pts[1]),
			Dir2: Between(pts[0], pts[2]),
		}
	}

	j := p.dominantAxis()
	nj := p.normalComp(j)
	dirs := make([]Vector, 0, 2)
	for i := 0; i < 3; i++ {
		if i == j {
			continue
		}
		d := axis(i).Sub(axis(j).Scale(p.normalComp(i).Div(nj)))
		dirs = append(dirs, d)
	}
	return PPlane{Base: p.PointOn(), Dir1: dirs[0], Dir2: dirs[1]}
}

// PPlane is the parametric form: base + s·dir1 + t·dir2.
type PPlane struct {
	Base, Dir1, Dir2 Vector
}

// At returns the point base + s*dir1 + t*dir2.
func (p PPlane) At(s, t Number) Vector {
	return p.Base.Add(p.Dir1.Scale(s)).Add(p.Dir2.Scale(t))
}

// NormalForm converts to normal form: n = dir1 × dir2, offset = -base·n.
func (p PPlane) NormalForm() Plane {
	n := p.Dir1.Cross(p.Dir2)
	return Plane{Normal: n, Offset: p.Base.Dot(n).Neg()}
}

// PPlaneThrough builds the parametric plane through three points.
func PPlaneThrough(a, b, c Vector) PPlane {
	return PPlane{Base: a, Dir1: Between(a, b), Dir2: Between(a, c)}
}
