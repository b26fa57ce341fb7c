// parser.go: grammar for the geometry notation, producing tagged trees.
//
// OVERVIEW
// --------
// The parser consumes the token stream from lexer.go and builds a compact
// tagged tree (the S shape, a []any whose first element is a string tag):
//
//	("num", Number)
//	("vector", num, num, num)
//	("line", vector, vector)              // base + direction
//	("plane", num, num, num, num)         // normal components + offset
//	("pplane", vector, vector, vector)    // base + two directions
//	("call", name, operand...)            // fixed operation vocabulary
//
// The notation is deliberately loose: whitespace and commas are
// interchangeable separators, a vector may be bracketed by '(', '[' or '<'
// (closer consumed only when an opener was, styles need not match), lines
// and parametric planes chain vectors with optional '+' joins and optional
// parameter words, and normal-form planes carry optional x/y/z unit markers
// and an optional "= 0" suffix.
//
// That looseness makes the grammar ambiguous under a single lookahead: two
// bare vectors and one line tokenize identically. The parser therefore works
// as an ordered-choice backtracking descent (PEG style): operand
// alternatives are tried longest-first — nested call, pplane, line, plane,
// vector, bare number — and an alternative only sticks if the *rest* of the
// call (remaining operands plus the call terminator) also parses. Failures
// record the deepest token reached so the reported error points at the real
// offender rather than the first backtrack.
package spacevectors

import "fmt"

// S is a tagged parse-tree node: a []any whose first element is a string tag.
type S = []any

// ParseError is a grammar failure at a 1-based line and 0-based column.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Parse tokenizes and parses one expression: an operation call or a bare
// geometric/numeric literal, covering the whole input.
func Parse(src string) (S, error) {
	toks, err := NewLexer(src).Scan()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	for _, alt := range []func() (S, bool){p.topCall, p.element, p.signedNumber} {
		save := p.pos
		node, ok := alt()
		if ok && p.at(EOF) {
			return node, nil
		}
		if ok {
			p.fail("unexpected trailing input")
		}
		p.pos = save
	}
	return nil, p.deepestError()
}

type parser struct {
	toks []Token
	pos  int

	// deepest failure, for error reporting across backtracking
	maxPos int
	maxMsg string
}

func (p *parser) cur() Token           { return p.toks[p.pos] }
func (p *parser) at(tt TokenType) bool { return p.cur().Type == tt }

func (p *parser) advance() Token {
	t := p.cur()
	if !p.at(EOF) {
		p.pos++
	}
	return t
}

// fail records a backtrackable failure. The first message at the deepest
// position wins: alternatives are ordered most-specific-first, so the first
// failure there tends to be the most useful one.
func (p *parser) fail(msg string) {
	if p.pos > p.maxPos || p.maxMsg == "" {
		p.maxPos = p.pos
		p.maxMsg = msg
	}
}

func (p *parser) deepestError() error {
	tok := p.toks[p.maxPos]
	msg := p.maxMsg
	if msg == "" {
		msg = "cannot parse expression"
	}
	if tok.Type != EOF {
		msg = fmt.Sprintf("%s (near %q)", msg, tok.Lexeme)
	}
	return &ParseError{Line: tok.Line, Col: tok.Col, Msg: msg}
}

// sep skips one optional comma; commas and whitespace are interchangeable.
func (p *parser) sep() {
	if p.at(COMMA) {
		p.advance()
	}
}

// join skips the optional glue between chained vectors: a comma or '+',
// then an optional parameter word (which is ignored semantically).
func (p *parser) join() {
	if p.at(COMMA) || p.at(PLUS) {
		p.advance()
	}
	if p.at(WORD) {
		p.advance()
	}
}

// signedNumber parses [+|-] NUMBER, folding a standalone sign token into
// the literal.
func (p *parser) signedNumber() (S, bool) {
	neg := false
	save := p.pos
	if p.at(PLUS) || p.at(MINUS) {
		neg = p.at(MINUS)
		p.advance()
	}
	if !p.at(NUMBER) {
		p.fail("number expected")
		p.pos = save
		return nil, false
	}
	n := p.advance().Literal.(Number)
	if neg {
		n = n.Neg()
	}
	return S{"num", n}, true
}

// vector parses 3 numbers with optional brackets. Any opening bracket style
// is accepted; a closing bracket (any style) is consumed only when an
// opener was, so an unbracketed vector never swallows an enclosing call's
// ')'. Opener without closer is fine: both are independently optional.
func (p *parser) vector() (S, bool) {
	save := p.pos
	opened := false
	if p.at(LROUND) || p.at(LSQUARE) || p.at(LANGLE) {
		p.advance()
		opened = true
	}

	nums := make([]any, 0, 3)
	for i := 0; i < 3; i++ {
		if i > 0 {
			p.sep()
		}
		n, ok := p.signedNumber()
		if !ok {
			p.pos = save
			return nil, false
		}
		// unit markers belong to the plane form, not vectors
		if p.at(WORD) && isUnitMarker(p.cur().Lexeme) {
			p.fail("unexpected unit marker in vector")
			p.pos = save
			return nil, false
		}
		nums = append(nums, n)
	}

	if opened && (p.at(RROUND) || p.at(RSQUARE) || p.at(RANGLE)) {
		p.advance()
	}
	return append(S{"vector"}, nums...), true
}

// line parses vector [join] vector.
func (p *parser) line() (S, bool) {
	save := p.pos
	v1, ok := p.vector()
	if !ok {
		return nil, false
	}
	p.join()
	v2, ok := p.vector()
	if !ok {
		p.pos = save
		return nil, false
	}
	return S{"line", v1, v2}, true
}

// pplane parses vector [join] vector [join] vector.
func (p *parser) pplane() (S, bool) {
	save := p.pos
	v1, ok := p.vector()
	if !ok {
		return nil, false
	}
	p.join()
	v2, ok := p.vector()
	if !ok {
		p.pos = save
		return nil, false
	}
	p.join()
	v3, ok := p.vector()
	if !ok {
		p.pos = save
		return nil, false
	}
	return S{"pplane", v1, v2, v3}, true
}

func isUnitMarker(w string) bool { return w == "x" || w == "y" || w == "z" }

// plane parses the normal form: four signed numbers, the first three with
// optional x/y/z unit markers, and an optional "= 0" suffix.
func (p *parser) plane() (S, bool) {
	save := p.pos
	nums := make([]any, 0, 4)
	for i := 0; i < 4; i++ {
		if i > 0 {
			p.sep()
		}
		n, ok := p.signedNumber()
		if !ok {
			p.pos = save
			return nil, false
		}
		if i < 3 && p.at(WORD) && isUnitMarker(p.cur().Lexeme) {
			p.advance()
		}
		nums = append(nums, n)
	}

	if p.at(EQUALS) {
		p.advance()
		z, ok := p.signedNumber()
		if !ok || !z[1].(Number).IsZero() {
			p.fail("'= 0' expected after plane equation")
			p.pos = save
			return nil, false
		}
	}
	return append(S{"plane"}, nums...), true
}

// element parses a geometric literal, longest form first.
func (p *parser) element() (S, bool) {
	for _, alt := range []func() (S, bool){p.pplane, p.line, p.plane, p.vector} {
		save := p.pos
		if node, ok := alt(); ok {
			return node, true
		}
		p.pos = save
	}
	return nil, false
}

// topCall parses an unparenthesized call covering the rest of the input.
func (p *parser) topCall() (S, bool) {
	return p.call(EOF)
}

// call parses WORD operand... up to (but not consuming) the stop token.
// Operation arities are fixed; where several are allowed (the plane
// constructor), the larger is tried first.
func (p *parser) call(stop TokenType) (S, bool) {
	if !p.at(WORD) {
		p.fail("operation name expected")
		return nil, false
	}
	name := p.cur().Lexeme
	op, known := operations[name]
	if !known {
		p.fail(fmt.Sprintf("unknown operation %q", name))
		return nil, false
	}
	p.advance()

	for _, arity := range op.arities {
		save := p.pos
		if args, ok := p.operandSeq(arity, stop); ok {
			return append(S{"call", name}, args...), true
		}
		p.pos = save
	}
	return nil, false
}

// operandSeq parses exactly n operands followed by the stop token (left
// unconsumed). Alternatives for each operand are tried in order and undone
// whenever the remainder cannot be completed.
func (p *parser) operandSeq(n int, stop TokenType) ([]any, bool) {
	if n == 0 {
		if p.at(stop) {
			return nil, true
		}
		p.fail("unexpected trailing input")
		return nil, false
	}

	alts := []func() (S, bool){
		p.nestedCall,
		p.pplane,
		p.line,
		p.plane,
		p.vector,
		p.signedNumber,
	}
	for _, alt := range alts {
		save := p.pos
		node, ok := alt()
		if !ok {
			p.pos = save
			continue
		}
		p.sep()
		rest, ok := p.operandSeq(n-1, stop)
		if !ok {
			p.pos = save
			continue
		}
		return append([]any{node}, rest...), true
	}
	return nil, false
}

// nestedCall parses "(" call ")".
func (p *parser) nestedCall() (S, bool) {
	save := p.pos
	if !p.at(LROUND) {
		return nil, false
	}
	p.advance()
	node, ok := p.call(RROUND)
	if !ok {
		p.pos = save
		return nil, false
	}
	if !p.at(RROUND) {
		p.fail("')' expected after nested call")
		p.pos = save
		return nil, false
	}
	p.advance()
	return node, true
}
