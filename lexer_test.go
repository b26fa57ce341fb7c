// lexer_test.go
package spacevectors

import (
	"reflect"
	"testing"
)

func toks(t *testing.T, src string) []Token {
	t.Helper()
	ts, err := NewLexer(src).Scan()
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	return ts
}

func typesWithoutEOF(tokens []Token) []TokenType {
	if len(tokens) == 0 {
		return nil
	}
	end := len(tokens)
	if tokens[end-1].Type == EOF {
		end--
	}
	out := make([]TokenType, 0, end)
	for i := 0; i < end; i++ {
		out = append(out, tokens[i].Type)
	}
	return out
}

func wantTypes(t *testing.T, src string, want []TokenType) []Token {
	t.Helper()
	got := toks(t, src)
	gotTypes := typesWithoutEOF(got)
	if !reflect.DeepEqual(gotTypes, want) {
		t.Fatalf("\nsource:\n%s\nwant types:\n%v\ngot types:\n%v\n", src, want, gotTypes)
	}
	return got
}

func wantNum(t *testing.T, tok Token, f float64, exact bool) {
	t.Helper()
	if tok.Type != NUMBER {
		t.Fatalf("want NUMBER token, got %v (%q)", tok.Type, tok.Lexeme)
	}
	n := tok.Literal.(Number)
	if n.Exact() != exact {
		t.Fatalf("%q: exact = %v, want %v", tok.Lexeme, n.Exact(), exact)
	}
	if n.Float() != f {
		t.Fatalf("%q: value = %v, want %v", tok.Lexeme, n.Float(), f)
	}
}

func Test_Lexer_PlaneEquation(t *testing.T) {
	got := wantTypes(t, "2x+0y+0z-4=0", []TokenType{
		NUMBER, WORD, NUMBER, WORD, NUMBER, WORD, NUMBER, EQUALS, NUMBER,
	})
	wantNum(t, got[0], 2, true)
	wantNum(t, got[2], 0, true)
	wantNum(t, got[4], 0, true)
	wantNum(t, got[6], -4, true)
	wantNum(t, got[8], 0, true)
	for i, marker := range map[int]string{1: "x", 3: "y", 5: "z"} {
		if got[i].Lexeme != marker {
			t.Fatalf("token %d: lexeme %q, want %q", i, got[i].Lexeme, marker)
		}
	}
}

func Test_Lexer_BracketStyles(t *testing.T) {
	wantTypes(t, "(1, -2, 3] <4 5>", []TokenType{
		LROUND, NUMBER, COMMA, NUMBER, COMMA, NUMBER, RSQUARE,
		LANGLE, NUMBER, NUMBER, RANGLE,
	})
}

func Test_Lexer_NumberForms(t *testing.T) {
	got := wantTypes(t, "1/2 1.5 -3 +4 0.25", []TokenType{
		NUMBER, NUMBER, NUMBER, NUMBER, NUMBER,
	})
	wantNum(t, got[0], 0.5, true) // exact rational
	wantNum(t, got[1], 1.5, false)
	wantNum(t, got[2], -3, true)
	wantNum(t, got[3], 4, true)
	wantNum(t, got[4], 0.25, false)
}

func Test_Lexer_Words(t *testing.T) {
	got := wantTypes(t, "three-points parallel? z-4", []TokenType{
		WORD, WORD, WORD, NUMBER,
	})
	if got[0].Lexeme != "three-points" {
		t.Fatalf("lexeme %q, want %q", got[0].Lexeme, "three-points")
	}
	if got[1].Lexeme != "parallel?" {
		t.Fatalf("lexeme %q, want %q", got[1].Lexeme, "parallel?")
	}
	// '-' glues letters only; before a digit it starts a signed number
	if got[2].Lexeme != "z" {
		t.Fatalf("lexeme %q, want %q", got[2].Lexeme, "z")
	}
	wantNum(t, got[3], -4, true)
}

func Test_Lexer_SignAttachment(t *testing.T) {
	// attached sign is part of the literal, detached sign is its own token
	got := wantTypes(t, "1 -2", []TokenType{NUMBER, NUMBER})
	wantNum(t, got[1], -2, true)
	wantTypes(t, "1 - 2", []TokenType{NUMBER, MINUS, NUMBER})
	wantTypes(t, "+ 2", []TokenType{PLUS, NUMBER})
}

func Test_Lexer_Errors(t *testing.T) {
	_, err := NewLexer("angle @").Scan()
	if err == nil {
		t.Fatalf("want lex error for %q", "angle @")
	}
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %T: %v", err, err)
	}
	if le.Line != 1 {
		t.Fatalf("LexError line = %d, want 1", le.Line)
	}

	if _, err := NewLexer("2.").Scan(); err == nil {
		t.Fatalf("want lex error for trailing '.'")
	}
}
