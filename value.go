// value.go: the runtime value model.
//
// Value is a tagged sum over everything an expression can evaluate to: a
// scalar, a boolean, one of the four geometric variants, the point triple
// produced by three-points, or the explicit "none" result of an
// intersection that does not exist. The tag determines which Go type sits
// in Data (see ValueTag).
//
// The geometric variants additionally carry a Kind with a fixed total
// order, line < plane < pplane < vector (lexicographic on the kind name).
// The evaluator sorts the operands of the generic binary operations by this
// order before dispatch, which halves the number of kind-pair cases the
// engine has to implement.
package spacevectors

// Kind identifies a geometric variant. The declaration order is the
// canonical operand order used for generic dispatch.
type Kind int

const (
	KindLine Kind = iota
	KindPlane
	KindPPlane
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPlane:
		return "plane"
	case KindPPlane:
		return "pplane"
	case KindVector:
		return "vector"
	default:
		return "unknown"
	}
}

// ValueTag enumerates all runtime kinds a Value may hold.
type ValueTag int

const (
	VTNum    ValueTag = iota // Number
	VTBool                   // bool
	VTVector                 // Vector
	VTLine                   // Line
	VTPlane                  // Plane
	VTPPlane                 // PPlane
	VTPoints                 // []Vector (three-points result)
	VTNone                   // no payload: absence of a result
)

// Value is the universal carrier returned by evaluation.
//
// Invariants:
//   - When Tag==VTNone, Data is nil.
//   - Otherwise Data holds the Go value matching the tag.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// None is the singleton absence value (e.g. non-intersecting lines).
var None = Value{Tag: VTNone}

// Constructors.
func NumVal(n Number) Value       { return Value{Tag: VTNum, Data: n} }
func BoolVal(b bool) Value        { return Value{Tag: VTBool, Data: b} }
func VecVal(v Vector) Value       { return Value{Tag: VTVector, Data: v} }
func LineVal(l Line) Value        { return Value{Tag: VTLine, Data: l} }
func PlaneVal(p Plane) Value      { return Value{Tag: VTPlane, Data: p} }
func PPlaneVal(p PPlane) Value    { return Value{Tag: VTPPlane, Data: p} }
func PointsVal(ps []Vector) Value { return Value{Tag: VTPoints, Data: ps} }

// GeomKind returns the geometric kind of v, or false for non-geometric
// values (numbers, booleans, point triples, none).
func (v Value) GeomKind() (Kind, bool) {
	switch v.Tag {
	case VTVector:
		return KindVector, true
	case VTLine:
		return KindLine, true
	case VTPlane:
		return KindPlane, true
	case VTPPlane:
		return KindPPlane, true
	default:
		return 0, false
	}
}

// KindName names the payload for diagnostics: geometric kinds by their
// canonical name, everything else descriptively.
func (v Value) KindName() string {
	if k, ok := v.GeomKind(); ok {
		return k.String()
	}
	switch v.Tag {
	case VTNum:
		return "number"
	case VTBool:
		return "boolean"
	case VTPoints:
		return "points"
	case VTNone:
		return "none"
	default:
		return "unknown"
	}
}

// String renders a human-friendly representation (the printer's format).
func (v Value) String() string { return FormatValue(v) }
