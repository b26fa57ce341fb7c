// errors.go: user-facing error wrapping with caret snippets.
//
// Turns lexer/parser diagnostics into readable snippets with a caret under
// the offending column:
//
//	PARSE ERROR at 1:10: number expected (near ")")
//
//	   1 | angle (1,)
//	     |          ^
//
// The entry point is WrapErrorWithSource: it recognizes *LexError (from
// lexer.go) and *ParseError (from parser.go), both carrying 1-based Line
// and 0-based Col, and returns a new error whose message is the formatted
// snippet. Any other error — evaluation errors are plain, position-less
// errors — is returned unchanged. Coordinates are clamped, so short or
// empty sources never break rendering.
package spacevectors

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns err augmented with a caret-annotated snippet
// of src when err is a lex or parse error; other errors pass through.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		// Col is 0-based; render as 1-based.
		return fmt.Errorf("%s", prettyErrorString(src, "LEXICAL ERROR", e.Line, e.Col+1, e.Msg))
	case *ParseError:
		return fmt.Errorf("%s", prettyErrorString(src, "PARSE ERROR", e.Line, e.Col+1, e.Msg))
	default:
		return err
	}
}

// prettyErrorString builds the snippet: header, up to one line of context
// on each side, and a caret under the 1-based column.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
