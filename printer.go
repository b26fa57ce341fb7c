// printer.go: renders runtime values back into the surface notation.
//
// Rendering conventions:
//
//	vector          (x, y, z)
//	line            (point) + t * (direction)
//	pplane          (point) + s * (dir1) + t * (dir2)
//	plane           2x+0y+0z-4=0  (explicit sign on every term after the first)
//	points          (p1), (p2), (p3)
//	number          exact integers bare, rationals as a/b, floats in 'g' form
//	boolean         true / false
//	absence         none
//
// Exact numbers are printed exactly; floats use Go's shortest round-trip
// form, so NaN from degenerate arithmetic prints as "NaN" and is visible to
// the user rather than hidden.
package spacevectors

import (
	"strconv"
	"strings"
)

// FormatValue renders a value for display.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTNum:
		return formatNumber(v.Data.(Number))
	case VTBool:
		return strconv.FormatBool(v.Data.(bool))
	case VTVector:
		return formatVector(v.Data.(Vector))
	case VTLine:
		l := v.Data.(Line)
		return formatVector(l.Base) + " + t * " + formatVector(l.Dir)
	case VTPlane:
		return formatPlane(v.Data.(Plane))
	case VTPPlane:
		p := v.Data.(PPlane)
		return formatVector(p.Base) + " + s * " + formatVector(p.Dir1) +
			" + t * " + formatVector(p.Dir2)
	case VTPoints:
		pts := v.Data.([]Vector)
		parts := make([]string, len(pts))
		for i, p := range pts {
			parts[i] = formatVector(p)
		}
		return strings.Join(parts, ", ")
	case VTNone:
		return "none"
	default:
		return "<unknown>"
	}
}

func formatNumber(n Number) string {
	if n.exact {
		return n.rat.RatString()
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func formatVector(v Vector) string {
	return "(" + formatNumber(v.X) + ", " + formatNumber(v.Y) + ", " + formatNumber(v.Z) + ")"
}

// formatPlane renders the normal form as an equation: each coefficient
// carries its unit marker, and every term after the first gets an explicit
// sign token ("2x+0y+0z-4=0").
func formatPlane(p Plane) string {
	var b strings.Builder
	terms := []struct {
		n      Number
		marker string
	}{
		{p.Normal.X, "x"},
		{p.Normal.Y, "y"},
		{p.Normal.Z, "z"},
		{p.Offset, ""},
	}
	for i, t := range terms {
		s := formatNumber(t.n)
		if i > 0 && !strings.HasPrefix(s, "-") {
			b.WriteByte('+')
		}
		b.WriteString(s)
		b.WriteString(t.marker)
	}
	b.WriteString("=0")
	return b.String()
}
