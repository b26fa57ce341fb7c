// parser_test.go
package spacevectors

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) S {
	t.Helper()
	node, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return node
}

func wantParseErr(t *testing.T, src, substr string) error {
	t.Helper()
	_, err := Parse(src)
	if err == nil {
		t.Fatalf("Parse(%q): want error containing %q, got none", src, substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("Parse(%q): error %q does not contain %q", src, err, substr)
	}
	return err
}

// sameTree compares tagged trees with Number-aware equality (big.Rat values
// with different internal representations still compare equal).
func sameTree(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av.Equal(bv)
	case S:
		bv, ok := b.(S)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !sameTree(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func wantTree(t *testing.T, src string, want S) {
	t.Helper()
	got := mustParse(t, src)
	if !sameTree(got, want) {
		t.Fatalf("\nsource:\n%s\nwant tree:\n%v\ngot tree:\n%v\n", src, want, got)
	}
}

func numNode(n int64) S       { return S{"num", IntNum(n)} }
func vecNode(x, y, z int64) S { return S{"vector", numNode(x), numNode(y), numNode(z)} }

func Test_Parser_VectorBracketRobustness(t *testing.T) {
	want := vecNode(1, 2, 3)
	for _, src := range []string{
		"1, 2, 3",
		"1 2 3",
		"(1,2,3)",
		"[1 2 3]",
		"<1, 2, 3>",
		"(1, 2, 3", // opener without closer
		"[1, 2, 3>", // styles need not match
	} {
		wantTree(t, src, want)
	}
}

func Test_Parser_ElementsByShape(t *testing.T) {
	// 6 numbers: a line, 9 numbers: a parametric plane, 4 numbers: a plane
	wantTree(t, "(0,0,0) + t (1,0,0)",
		S{"line", vecNode(0, 0, 0), vecNode(1, 0, 0)})
	wantTree(t, "1 2 3 4 5 6",
		S{"line", vecNode(1, 2, 3), vecNode(4, 5, 6)})
	wantTree(t, "(0,0,0) (1,0,0) (0,1,0)",
		S{"pplane", vecNode(0, 0, 0), vecNode(1, 0, 0), vecNode(0, 1, 0)})
	wantTree(t, "1 1 1 -1",
		S{"plane", numNode(1), numNode(1), numNode(1), numNode(-1)})
}

func Test_Parser_PlaneNotationVariants(t *testing.T) {
	want := S{"plane", numNode(2), numNode(0), numNode(0), numNode(-4)}
	for _, src := range []string{
		"2x+0y+0z-4=0",
		"2x 0y 0z -4",
		"2, 0, 0, -4",
		"2x, 0y, 0z, -4 = 0",
	} {
		wantTree(t, src, want)
	}

	// the equation form must end in zero
	wantParseErr(t, "2x+0y+0z-4=5", "= 0")
}

func Test_Parser_CallOperandBacktracking(t *testing.T) {
	// two bare vectors, not one line: the second operand claims its share
	wantTree(t, "angle (1,0,0) (0,1,0)",
		S{"call", "angle", vecNode(1, 0, 0), vecNode(0, 1, 0)})

	// a line and a plane: the greedy pplane try fails on the unit marker
	wantTree(t, "intersection (0,0,0) + t (0,0,1), 0x+0y+1z-2=0",
		S{"call", "intersection",
			S{"line", vecNode(0, 0, 0), vecNode(0, 0, 1)},
			S{"plane", numNode(0), numNode(0), numNode(1), numNode(-2)}})

	// two lines: the '+ t' joins anchor the backtracking
	wantTree(t, "parallel? (0,0,0) + t (1,0,0), (0,1,0) + t (1,0,0)",
		S{"call", "parallel?",
			S{"line", vecNode(0, 0, 0), vecNode(1, 0, 0)},
			S{"line", vecNode(0, 1, 0), vecNode(1, 0, 0)}})
}

func Test_Parser_NestedCalls(t *testing.T) {
	wantTree(t, "length (cross (1,0,0), (0,1,0))",
		S{"call", "length",
			S{"call", "cross", vecNode(1, 0, 0), vecNode(0, 1, 0)}})

	wantTree(t, "normal (param 2x+0y+0z-4=0)",
		S{"call", "normal",
			S{"call", "param",
				S{"plane", numNode(2), numNode(0), numNode(0), numNode(-4)}}})

	wantParseErr(t, "length (cross (1,0,0), (0,1,0)", "number expected")
}

func Test_Parser_PlaneConstructorArities(t *testing.T) {
	// three points win over normal+point when both could match
	wantTree(t, "plane (0,0,0) (1,0,0) (0,1,0)",
		S{"call", "plane", vecNode(0, 0, 0), vecNode(1, 0, 0), vecNode(0, 1, 0)})
	wantTree(t, "plane (0,0,1), (0,0,2)",
		S{"call", "plane", vecNode(0, 0, 1), vecNode(0, 0, 2)})
}

func Test_Parser_ScalarOperands(t *testing.T) {
	wantTree(t, "lwith (0,0,0) + t (1,0,0), 2",
		S{"call", "lwith",
			S{"line", vecNode(0, 0, 0), vecNode(1, 0, 0)}, numNode(2)})
	wantTree(t, "lwith 2, (0,0,0) + t (1,0,0)",
		S{"call", "lwith",
			numNode(2), S{"line", vecNode(0, 0, 0), vecNode(1, 0, 0)}})
	wantTree(t, "pwith 1, 2, (0,0,0) (1,0,0) (0,1,0)",
		S{"call", "pwith", numNode(1), numNode(2),
			S{"pplane", vecNode(0, 0, 0), vecNode(1, 0, 0), vecNode(0, 1, 0)}})
}

func Test_Parser_Errors(t *testing.T) {
	err := wantParseErr(t, "foo 1", "unknown operation")
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("want *ParseError, got %T", err)
	}

	// missing operand: the deepest failure is at end of input
	wantParseErr(t, "angle (1,0,0)", "number expected")

	// dangling tails must not be swallowed
	wantParseErr(t, "1 2", "number expected")
	if _, err := Parse("angle (1,0,0), (0,1,0) 7 8"); err == nil {
		t.Fatalf("want error for extra operands")
	}
}
