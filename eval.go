// eval.go: bottom-up evaluation of parsed trees.
//
// The evaluator walks the tagged tree from parser.go, turns literal nodes
// into geometric entities and applies operation calls innermost-first, so a
// nested call's result is already a Value by the time the outer call
// consumes it. Evaluation is a pure function of the tree: no environment,
// no state between expressions.
//
// Two normalization steps run before any of the generic binary operations
// (angle, parallel?, perpendicular?, distance, on?, intersection,
// projection, skewed?) reach the engine:
//
//  1. Operands are reordered by the canonical kind order
//     line < plane < pplane < vector, so a single (line, plane) case in the
//     engine covers both call orders. Callers must tolerate the swap.
//  2. Any parametric-plane operand is converted to normal form, so the
//     engine never needs a pplane case at all.
//
// Operations outside the generic path (param, three-points, normal, pwith,
// and the line/plane constructors) keep their operands as written.
package spacevectors

import "fmt"

// opSpec describes one operation of the fixed vocabulary: the accepted
// operand counts (largest first, the order the parser tries them in) and
// whether the operation goes through generic kind-pair dispatch.
type opSpec struct {
	arities []int
	generic bool
}

// operations is the whole vocabulary. The parser only accepts these names,
// so name resolution cannot fail at evaluation time.
var operations = map[string]opSpec{
	// unary vector functions
	"length":    {arities: []int{1}},
	"normalize": {arities: []int{1}},

	// binary vector functions
	"dotp":    {arities: []int{2}},
	"cross":   {arities: []int{2}},
	"area":    {arities: []int{2}},
	"between": {arities: []int{2}},

	// parametric sampling
	"lwith": {arities: []int{2}},
	"pwith": {arities: []int{3}},

	// representation conversions
	"param":        {arities: []int{1}},
	"three-points": {arities: []int{1}},
	"normal":       {arities: []int{1}},

	// constructors
	"line":  {arities: []int{2}},
	"plane": {arities: []int{3, 2}},

	// generic binary functions
	"angle":          {arities: []int{2}, generic: true},
	"parallel?":      {arities: []int{2}, generic: true},
	"perpendicular?": {arities: []int{2}, generic: true},
	"distance":       {arities: []int{2}, generic: true},
	"on?":            {arities: []int{2}, generic: true},
	"intersection":   {arities: []int{2}, generic: true},
	"projection":     {arities: []int{2}, generic: true},
	"skewed?":        {arities: []int{2}, generic: true},
}

// EvalString parses and evaluates one expression.
func EvalString(src string) (Value, error) {
	node, err := Parse(src)
	if err != nil {
		return None, err
	}
	return Eval(node)
}

// Eval evaluates a parsed tree to a Value.
func Eval(node S) (Value, error) {
	switch tag := node[0].(string); tag {
	case "num":
		return NumVal(node[1].(Number)), nil

	case "vector":
		return VecVal(vecOf(node)), nil

	case "line":
		return LineVal(Line{
			Base: vecOf(node[1].(S)),
			Dir:  vecOf(node[2].(S)),
		}), nil

	case "plane":
		return PlaneVal(Plane{
			Normal: Vec(numOf(node[1]), numOf(node[2]), numOf(node[3])),
			Offset: numOf(node[4]),
		}), nil

	case "pplane":
		return PPlaneVal(PPlane{
			Base: vecOf(node[1].(S)),
			Dir1: vecOf(node[2].(S)),
			Dir2: vecOf(node[3].(S)),
		}), nil

	case "call":
		name := node[1].(string)
		args := make([]Value, 0, len(node)-2)
		for _, child := range node[2:] {
			v, err := Eval(child.(S))
			if err != nil {
				return None, err
			}
			args = append(args, v)
		}
		return apply(name, args)

	default:
		return None, fmt.Errorf("internal: unknown node tag %q", tag)
	}
}

func numOf(n any) Number { return n.(S)[1].(Number) }

func vecOf(n S) Vector {
	return Vec(numOf(n[1]), numOf(n[2]), numOf(n[3]))
}

// apply dispatches a resolved operation over evaluated operands.
func apply(name string, args []Value) (Value, error) {
	if operations[name].generic {
		return applyGeneric(name, args[0], args[1])
	}

	switch name {
	case "length":
		v, err := argVector(name, args[0])
		if err != nil {
			return None, err
		}
		return NumVal(FloatNum(v.Length())), nil

	case "normalize":
		v, err := argVector(name, args[0])
		if err != nil {
			return None, err
		}
		return VecVal(v.Normalize()), nil

	case "dotp", "cross", "area", "between":
		a, err := argVector(name, args[0])
		if err != nil {
			return None, err
		}
		b, err := argVector(name, args[1])
		if err != nil {
			return None, err
		}
		switch name {
		case "dotp":
			return NumVal(a.Dot(b)), nil
		case "cross":
			return VecVal(a.Cross(b)), nil
		case "area":
			return NumVal(FloatNum(Area(a, b))), nil
		default:
			return VecVal(Between(a, b)), nil
		}

	case "lwith":
		// one line and one parameter value, in either order
		l, rest, err := pickLine(name, args)
		if err != nil {
			return None, err
		}
		t, err := argNumber(name, rest[0])
		if err != nil {
			return None, err
		}
		return VecVal(l.At(t)), nil

	case "pwith":
		// one pplane and two parameter values; scalars keep written order
		p, rest, err := pickPPlane(name, args)
		if err != nil {
			return None, err
		}
		s, err := argNumber(name, rest[0])
		if err != nil {
			return None, err
		}
		t, err := argNumber(name, rest[1])
		if err != nil {
			return None, err
		}
		return VecVal(p.At(s, t)), nil

	case "param":
		switch args[0].Tag {
		case VTPlane:
			return PPlaneVal(args[0].Data.(Plane).Parametric()), nil
		case VTPPlane:
			return args[0], nil // already parametric
		default:
			return None, kindError(name, args[0])
		}

	case "normal":
		switch args[0].Tag {
		case VTPlane:
			return args[0], nil // already normal form
		case VTPPlane:
			return PlaneVal(args[0].Data.(PPlane).NormalForm()), nil
		default:
			return None, kindError(name, args[0])
		}

	case "three-points":
		switch args[0].Tag {
		case VTPlane:
			return PointsVal(args[0].Data.(Plane).Intercepts()), nil
		case VTPPlane:
			return PointsVal(args[0].Data.(PPlane).NormalForm().Intercepts()), nil
		default:
			return None, kindError(name, args[0])
		}

	case "line":
		a, err := argVector(name, args[0])
		if err != nil {
			return None, err
		}
		b, err := argVector(name, args[1])
		if err != nil {
			return None, err
		}
		return LineVal(LineThrough(a, b)), nil

	case "plane":
		vecs := make([]Vector, len(args))
		for i, a := range args {
			v, err := argVector(name, a)
			if err != nil {
				return None, err
			}
			vecs[i] = v
		}
		if len(vecs) == 2 {
			return PlaneVal(PlaneAt(vecs[0], vecs[1])), nil
		}
		return PPlaneVal(PPlaneThrough(vecs[0], vecs[1], vecs[2])), nil

	default:
		return None, fmt.Errorf("internal: unresolved operation %q", name)
	}
}

// applyGeneric canonicalizes the operand pair and hands it to the engine.
func applyGeneric(name string, a, b Value) (Value, error) {
	x, y, _, err := canonicalPair(name, a, b)
	if err != nil {
		return None, err
	}
	switch name {
	case "angle":
		return genericAngle(x, y)
	case "distance":
		return genericDistance(x, y)
	case "intersection":
		return genericIntersection(x, y)
	case "projection":
		return genericProjection(x, y)
	case "parallel?":
		return genericParallel(x, y)
	case "perpendicular?":
		return genericPerpendicular(x, y)
	case "on?":
		return genericOn(x, y)
	default: // skewed?
		return genericSkewed(x, y)
	}
}

// canonicalPair orders two geometric operands by kind (line < plane <
// pplane < vector) and then replaces parametric planes with their normal
// form, so the engine only ever sees line, plane, and vector. The returned
// flag reports whether the operands were swapped.
func canonicalPair(name string, a, b Value) (Value, Value, bool, error) {
	ka, ok := a.GeomKind()
	if !ok {
		return None, None, false, kindError(name, a)
	}
	kb, ok := b.GeomKind()
	if !ok {
		return None, None, false, kindError(name, b)
	}

	swapped := ka > kb
	if swapped {
		a, b = b, a
	}
	return normalizePPlane(a), normalizePPlane(b), swapped, nil
}

func normalizePPlane(v Value) Value {
	if v.Tag == VTPPlane {
		return PlaneVal(v.Data.(PPlane).NormalForm())
	}
	return v
}

// ----- operand accessors -----

func kindError(op string, v Value) error {
	return fmt.Errorf("%s: no method for kind %s", op, v.KindName())
}

func argVector(op string, v Value) (Vector, error) {
	if v.Tag != VTVector {
		return Vector{}, fmt.Errorf("%s expects a vector, got %s", op, v.KindName())
	}
	return v.Data.(Vector), nil
}

func argNumber(op string, v Value) (Number, error) {
	if v.Tag != VTNum {
		return Number{}, fmt.Errorf("%s expects a number, got %s", op, v.KindName())
	}
	return v.Data.(Number), nil
}

// pickLine extracts the single line operand, returning the remaining
// operands in written order.
func pickLine(op string, args []Value) (Line, []Value, error) {
	var line Line
	found := false
	rest := make([]Value, 0, len(args)-1)
	for _, a := range args {
		if a.Tag == VTLine && !found {
			line = a.Data.(Line)
			found = true
			continue
		}
		rest = append(rest, a)
	}
	if !found {
		return Line{}, nil, fmt.Errorf("%s expects a line operand", op)
	}
	return line, rest, nil
}

// pickPPlane extracts the single parametric-plane operand, returning the
// remaining operands in written order.
func pickPPlane(op string, args []Value) (PPlane, []Value, error) {
	var pp PPlane
	found := false
	rest := make([]Value, 0, len(args)-1)
	for _, a := range args {
		if a.Tag == VTPPlane && !found {
			pp = a.Data.(PPlane)
			found = true
			continue
		}
		rest = append(rest, a)
	}
	if !found {
		return PPlane{}, nil, fmt.Errorf("%s expects a parametric plane operand", op)
	}
	return pp, rest, nil
}
