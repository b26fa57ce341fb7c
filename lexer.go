// lexer.go: tokenizer for the geometry notation.
//
// The surface language is a single-line notation for vectors, lines, planes
// (normal and parametric form) and operation calls. The lexer is remarkably
// small because the notation has no strings, keywords or nesting of its own:
// it emits numbers, lowercase words, brackets and a handful of joiners, and
// leaves all shape decisions to the parser.
//
// Two details carry most of the weight:
//   - '+' and '-' immediately followed by a digit or '.' belong to the
//     number ("2x+0y+0z-4=0" lexes as NUM(2) WORD(x) NUM(+0) ...); with
//     whitespace in between they become PLUS/MINUS tokens that the parser
//     folds back into the following number where the grammar allows a sign.
//   - a number literal may carry a '.' fraction (floating) or a '/' fraction
//     (exact rational); a bare integer is exact. The grammar guarantees the
//     second integer, so the literal reader has no error path of its own
//     beyond the usual "digit expected".
package spacevectors

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LROUND  // "("
	RROUND  // ")"
	LSQUARE // "["
	RSQUARE // "]"
	LANGLE  // "<"
	RANGLE  // ">"
	COMMA   // ","
	EQUALS  // "="
	PLUS    // "+" not attached to a number
	MINUS   // "-" not attached to a number

	// Literals & words
	NUMBER // payload: Number (exact int, exact rational, or float)
	WORD   // lowercase word: operation name, parameter name, or unit marker
)

var tokenNames = map[TokenType]string{
	EOF:     "end of input",
	ILLEGAL: "illegal token",
	LROUND:  "'('",
	RROUND:  "')'",
	LSQUARE: "'['",
	RSQUARE: "']'",
	LANGLE:  "'<'",
	RANGLE:  "'>'",
	COMMA:   "','",
	EQUALS:  "'='",
	PLUS:    "'+'",
	MINUS:   "'-'",
	NUMBER:  "number",
	WORD:    "word",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // Number for NUMBER tokens
	Line    int
	Col     int
}

// Lexer scans a source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	line   int // 1-based
	col    int // 0-based column within line
	tokens []Token

	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) peekN(n int) (byte, bool) {
	idx := l.cur + n
	if idx >= len(l.src) {
		return 0, false
	}
	return l.src[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) addToken(tt TokenType, lit interface{}) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	})
	l.start = l.cur
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\r', '\n', '\t':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// ----- errors -----

// LexError is a tokenizer failure at a 1-based line and 0-based column.
type LexError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (l *Lexer) err(msg string) error {
	return &LexError{Line: l.line, Col: l.col, Msg: msg}
}

// ----- scanners -----

// scanNumber parses digits [('.'|'/') digits]. The optional sign has already
// been consumed by the caller when present.
func (l *Lexer) scanNumber(neg bool) (Number, error) {
	digits := func() (string, bool) {
		s := l.cur
		for {
			b, ok := l.peek()
			if !ok || !isDigit(b) {
				break
			}
			l.advance()
		}
		return l.src[s:l.cur], l.cur > s
	}

	intPart, ok := digits()
	if !ok {
		return Number{}, l.err("digit expected in number")
	}

	if sep, ok := l.peek(); ok && (sep == '.' || sep == '/') {
		// Only consume the separator when a second integer follows; a
		// trailing '.' or '/' belongs to whatever comes next.
		if b, ok2 := l.peekN(1); ok2 && isDigit(b) {
			l.advance()
			frac, _ := digits()
			return makeNumber(intPart, sep, frac, neg), nil
		}
	}
	return makeNumber(intPart, 0, "", neg), nil
}

// scanWord parses a lowercase word. Words may contain '-' between letters
// (three-points) and may end in '?' (parallel?).
func (l *Lexer) scanWord() string {
	for {
		b, ok := l.peek()
		if !ok {
			break
		}
		if isLower(b) {
			l.advance()
			continue
		}
		if b == '-' {
			// part of the word only when a letter follows ("z-4" is not)
			if b2, ok2 := l.peekN(1); ok2 && isLower(b2) {
				l.advance()
				continue
			}
		}
		if b == '?' {
			l.advance()
		}
		break
	}
	return l.src[l.start:l.cur]
}

// Scan tokenizes the whole source, ending with an EOF token.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipWhitespace()
		l.tokStartLine, l.tokStartCol = l.line, l.col
		if l.isAtEnd() {
			l.addToken(EOF, nil)
			return l.tokens, nil
		}

		ch, _ := l.advance()
		switch ch {
		case '(':
			l.addToken(LROUND, nil)
		case ')':
			l.addToken(RROUND, nil)
		case '[':
			l.addToken(LSQUARE, nil)
		case ']':
			l.addToken(RSQUARE, nil)
		case '<':
			l.addToken(LANGLE, nil)
		case '>':
			l.addToken(RANGLE, nil)
		case ',':
			l.addToken(COMMA, nil)
		case '=':
			l.addToken(EQUALS, nil)
		case '+', '-':
			if b, ok := l.peek(); ok && (isDigit(b) || b == '.') {
				n, err := l.scanNumber(ch == '-')
				if err != nil {
					return nil, err
				}
				l.addToken(NUMBER, n)
				continue
			}
			if ch == '+' {
				l.addToken(PLUS, nil)
			} else {
				l.addToken(MINUS, nil)
			}
		default:
			switch {
			case isDigit(ch):
				// step back so scanNumber sees the whole digit run
				l.cur--
				l.col--
				n, err := l.scanNumber(false)
				if err != nil {
					return nil, err
				}
				l.addToken(NUMBER, n)
			case isLower(ch):
				l.scanWord()
				l.addToken(WORD, nil)
			default:
				return nil, l.err(fmt.Sprintf("unexpected character %q", ch))
			}
		}
	}
}

// makeNumber assembles a Number from its literal pieces. sep is '.', '/' or
// 0 for a bare integer. The pieces are all-digit strings, so the strconv
// calls cannot fail.
func makeNumber(intPart string, sep byte, frac string, neg bool) Number {
	switch sep {
	case '.':
		v, _ := strconv.ParseFloat(intPart+"."+frac, 64)
		if neg {
			v = -v
		}
		return FloatNum(v)
	case '/':
		num, _ := strconv.ParseInt(intPart, 10, 64)
		den, _ := strconv.ParseInt(frac, 10, 64)
		if neg {
			num = -num
		}
		return RatNum(num, den)
	default:
		v, _ := strconv.ParseInt(intPart, 10, 64)
		if neg {
			v = -v
		}
		return IntNum(v)
	}
}
