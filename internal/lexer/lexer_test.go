package lexer_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/lexer"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func tokenize(t *testing.T, src string) ([]lexer.Token, *errors.Sink) {
	t.Helper()
	sink := errors.New()
	l := lexer.New(src, sink)
	return l.Tokenize(), sink
}

func TestTokenStreamSnapshot(t *testing.T) {
	toks, sink := tokenize(t, `int a = 0x2A;
float pi = 3.14;
if (a < 10 && !false) { print("hi"); }
`)
	if sink.HasErrors() {
		t.Fatalf("unexpected lexical errors: %v", sink.Diagnostics())
	}

	var lines []string
	for _, tok := range toks {
		lines = append(lines, fmt.Sprintf("%s %q @%s", tok.Type, tok.Literal, tok.Pos.String()))
	}
	snaps.MatchSnapshot(t, lines)
}

func TestIntegerLiteralBases(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"0x2A", 42},
		{"0b101010", 42},
		{"052", 42},
		{"42", 42},
		{"0", 0},
	}

	for _, c := range cases {
		toks, sink := tokenize(t, c.src)
		if sink.HasErrors() {
			t.Errorf("%s: unexpected errors: %v", c.src, sink.Diagnostics())
			continue
		}
		if toks[0].Type != lexer.INT_LIT || toks[0].IntValue != c.want {
			t.Errorf("%s: got %v, want INT_LIT %d", c.src, toks[0], c.want)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks, sink := tokenize(t, `"a\nb"`)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	if toks[0].Literal != "a\nb" {
		t.Errorf("got %q, want %q", toks[0].Literal, "a\nb")
	}
}

func TestForbiddenStringEscape(t *testing.T) {
	_, sink := tokenize(t, `"a\rb"`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for a disallowed \\r escape")
	}
}

func TestUnterminatedString(t *testing.T) {
	_, sink := tokenize(t, `"abc`)
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for an unterminated string")
	}
}

func TestLineComment(t *testing.T) {
	toks, sink := tokenize(t, "int a; // a trailing comment\nint b;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	// int a ; int b ; EOF
	if len(toks) != 7 {
		t.Fatalf("got %d tokens, want 7: %v", len(toks), toks)
	}
	if toks[3].Pos.Line != 2 {
		t.Errorf("second int keyword should be on line 2, got %d", toks[3].Pos.Line)
	}
}

func TestBlockComment(t *testing.T) {
	toks, sink := tokenize(t, "int /* skip\nme */ a;")
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Diagnostics())
	}
	if toks[1].Type != lexer.IDENT || toks[1].Literal != "a" {
		t.Errorf("got %v, want IDENT a", toks[1])
	}
}

func TestIllegalCharacterReported(t *testing.T) {
	_, sink := tokenize(t, "int a = 1 $ 2;")
	if !sink.HasErrors() {
		t.Fatal("expected a diagnostic for the illegal '$' character")
	}
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks, _ := tokenize(t, "while whiles")
	if toks[0].Type != lexer.WHILE {
		t.Errorf("got %v, want WHILE", toks[0])
	}
	if toks[1].Type != lexer.IDENT {
		t.Errorf("got %v, want IDENT (whiles is not a keyword)", toks[1])
	}
}
