// engine.go: the generic operation engine.
//
// Every function here receives a canonicalized operand pair (see eval.go):
// kinds ordered line < plane < vector, parametric planes already converted
// to normal form. That leaves six kind pairs, and each operation handles
// the subset that is geometrically meaningful; everything else produces a
// descriptive "no method" error naming the offending kinds — a recoverable
// result, never a fault.
//
// Angles are degrees as float64. The boolean predicates compare against
// exact float constants (0.0, 90.0, 180.0, 270.0): the cardinal angles come
// out of acos exactly, and distances computed with exact rational
// numerators are exactly 0 for incident elements, so the equalities are
// meaningful. Degenerate arithmetic (parallel-line distance, zero
// denominators) propagates NaN, which fails every equality — by the
// leniency policy that is the intended reading (NaN is "degenerate", the
// dedicated none value is "no such result").
package spacevectors

import (
	"fmt"
	"math"
)

func noMethod(op string, a, b Value) error {
	return fmt.Errorf("no method for %s on kinds %s and %s", op, a.KindName(), b.KindName())
}

// vecAngleDeg is the base angle: acos(a·b / (|a||b|)) in degrees, with NaN
// (zero-length operand) collapsed to 0.0.
func vecAngleDeg(a, b Vector) float64 {
	ar, br := a.R3(), b.R3()
	deg := math.Acos(ar.Dot(br)/(ar.Norm()*br.Norm())) * 180 / math.Pi
	if math.IsNaN(deg) {
		return 0
	}
	return deg
}

// planeVectorAngleDeg is the complement of the normal-vector angle:
// whichever of 90-v and v-90 is non-negative.
func planeVectorAngleDeg(p Plane, v Vector) float64 {
	a := vecAngleDeg(p.Normal, v)
	if 90-a >= 0 {
		return 90 - a
	}
	return a - 90
}

// planePlaneAngleDeg is the smaller of the normal angle and its complement.
func planePlaneAngleDeg(a, b Plane) float64 {
	v := vecAngleDeg(a.Normal, b.Normal)
	if 180-v < v {
		return 180 - v
	}
	return v
}

func angleDeg(a, b Value) (float64, error) {
	switch {
	case a.Tag == VTVector && b.Tag == VTVector:
		return vecAngleDeg(a.Data.(Vector), b.Data.(Vector)), nil
	case a.Tag == VTLine && b.Tag == VTVector:
		return vecAngleDeg(a.Data.(Line).Dir, b.Data.(Vector)), nil
	case a.Tag == VTLine && b.Tag == VTLine:
		return vecAngleDeg(a.Data.(Line).Dir, b.Data.(Line).Dir), nil
	case a.Tag == VTPlane && b.Tag == VTVector:
		return planeVectorAngleDeg(a.Data.(Plane), b.Data.(Vector)), nil
	case a.Tag == VTPlane && b.Tag == VTPlane:
		return planePlaneAngleDeg(a.Data.(Plane), b.Data.(Plane)), nil
	case a.Tag == VTLine && b.Tag == VTPlane:
		// delegate with roles swapped: the angle between a line and a
		// plane is the plane/vector case on the line's direction
		return planeVectorAngleDeg(b.Data.(Plane), a.Data.(Line).Dir), nil
	default:
		return 0, noMethod("angle", a, b)
	}
}

func genericAngle(a, b Value) (Value, error) {
	deg, err := angleDeg(a, b)
	if err != nil {
		return None, err
	}
	return NumVal(FloatNum(deg)), nil
}

func genericParallel(a, b Value) (Value, error) {
	deg, err := angleDeg(a, b)
	if err != nil {
		return None, err
	}
	return BoolVal(deg == 0.0 || deg == 180.0), nil
}

func genericPerpendicular(a, b Value) (Value, error) {
	deg, err := angleDeg(a, b)
	if err != nil {
		return None, err
	}
	return BoolVal(deg == 90.0 || deg == 270.0), nil
}

// planePointDist is |n·p + offset| / |n|; the numerator is exact for
// rational input, so incident points give exactly 0.
func planePointDist(p Plane, pt Vector) float64 {
	num := p.Normal.Dot(pt).Add(p.Offset).Abs()
	return num.Float() / p.Normal.Length()
}

func dist(a, b Value) (float64, error) {
	switch {
	case a.Tag == VTVector && b.Tag == VTVector:
		return a.Data.(Vector).R3().Distance(b.Data.(Vector).R3()), nil

	case a.Tag == VTLine && b.Tag == VTVector:
		l, p := a.Data.(Line), b.Data.(Vector)
		return l.Dir.Cross(Between(l.Base, p)).Length() / l.Dir.Length(), nil

	case a.Tag == VTLine && b.Tag == VTLine:
		// skew-line distance: |(d1×d2)·(b2-b1)| / |d1×d2|. Parallel lines
		// degenerate to 0/0 = NaN, which the predicates treat as non-zero.
		l1, l2 := a.Data.(Line), b.Data.(Line)
		n := l1.Dir.Cross(l2.Dir)
		trip := n.Dot(Between(l1.Base, l2.Base))
		return math.Abs(trip.Float()) / n.Length(), nil

	case a.Tag == VTPlane && b.Tag == VTVector:
		return planePointDist(a.Data.(Plane), b.Data.(Vector)), nil

	case a.Tag == VTLine && b.Tag == VTPlane:
		l, p := a.Data.(Line), b.Data.(Plane)
		if planeVectorAngleDeg(p, l.Dir) != 0.0 {
			return 0, nil
		}
		return planePointDist(p, l.Base), nil

	case a.Tag == VTPlane && b.Tag == VTPlane:
		p1, p2 := a.Data.(Plane), b.Data.(Plane)
		if planePlaneAngleDeg(p1, p2) != 0.0 {
			return 0, nil
		}
		return planePointDist(p2, p1.PointOn()), nil

	default:
		return 0, noMethod("distance", a, b)
	}
}

func genericDistance(a, b Value) (Value, error) {
	d, err := dist(a, b)
	if err != nil {
		return None, err
	}
	return NumVal(FloatNum(d)), nil
}

func genericOn(a, b Value) (Value, error) {
	d, err := dist(a, b)
	if err != nil {
		return None, err
	}
	return BoolVal(d == 0.0), nil
}

// genericSkewed classifies two lines as skew: neither parallel nor
// incident. Parallel lines are not skew even though their distance
// degenerates to NaN.
func genericSkewed(a, b Value) (Value, error) {
	if a.Tag != VTLine || b.Tag != VTLine {
		return None, noMethod("skewed?", a, b)
	}
	deg, _ := angleDeg(a, b)
	if deg == 0.0 || deg == 180.0 {
		return BoolVal(false), nil
	}
	d, _ := dist(a, b)
	return BoolVal(d != 0.0), nil
}

// linePlaneIntersection solves n·(base + t·dir) + offset = 0 for t. A line
// parallel to the plane has a zero denominator and yields a NaN point.
func linePlaneIntersection(l Line, p Plane) Vector {
	t := p.Normal.Dot(l.Base).Add(p.Offset).Neg().Div(p.Normal.Dot(l.Dir))
	return l.At(t)
}

func genericIntersection(a, b Value) (Value, error) {
	switch {
	case a.Tag == VTLine && b.Tag == VTLine:
		l1, l2 := a.Data.(Line), b.Data.(Line)
		n := l1.Dir.Cross(l2.Dir)
		w := Between(l1.Base, l2.Base)
		// coplanarity: the scalar triple product must be exactly zero,
		// otherwise the lines pass by each other and there is no result
		if !n.Dot(w).IsZero() {
			return None, nil
		}
		t := w.Cross(l2.Dir).Dot(n).Div(n.Dot(n))
		return VecVal(l1.At(t)), nil

	case a.Tag == VTLine && b.Tag == VTPlane:
		return VecVal(linePlaneIntersection(a.Data.(Line), b.Data.(Plane))), nil

	case a.Tag == VTPlane && b.Tag == VTPlane:
		p1, p2 := a.Data.(Plane), b.Data.(Plane)
		dir := p1.Normal.Cross(p2.Normal)
		// solve the two plane equations with z fixed at 0; the denominator
		// n1.x*n2.y - n1.y*n2.x is assumed non-zero (NaN point otherwise)
		den := p1.Normal.X.Mul(p2.Normal.Y).Sub(p1.Normal.Y.Mul(p2.Normal.X))
		x := p2.Offset.Mul(p1.Normal.Y).Sub(p1.Offset.Mul(p2.Normal.Y)).Div(den)
		y := p1.Offset.Mul(p2.Normal.X).Sub(p2.Offset.Mul(p1.Normal.X)).Div(den)
		base := Vec(x, y, IntNum(0))
		return LineVal(Line{Base: base, Dir: dir}), nil

	default:
		return None, noMethod("intersection", a, b)
	}
}

func genericProjection(a, b Value) (Value, error) {
	switch {
	case a.Tag == VTVector && b.Tag == VTVector:
		// project the first operand onto the second
		u, v := a.Data.(Vector), b.Data.(Vector)
		return VecVal(v.Scale(u.Dot(v).Div(v.Dot(v)))), nil

	case a.Tag == VTLine && b.Tag == VTPlane:
		// anchor where the line meets the plane, then drop the
		// plane-normal component of the direction
		l, p := a.Data.(Line), b.Data.(Plane)
		anchor := linePlaneIntersection(l, p)
		n := p.Normal
		dir := l.Dir.Sub(n.Scale(l.Dir.Dot(n).Div(n.Dot(n))))
		return LineVal(Line{Base: anchor, Dir: dir}), nil

	default:
		return None, noMethod("projection", a, b)
	}
}
