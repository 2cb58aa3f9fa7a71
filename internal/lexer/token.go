package lexer

import "github.com/minic-lang/minic/internal/errors"

// Position is an alias of errors.Position so lexer, parser, and the
// diagnostic sink share one coordinate type.
type Position = errors.Position

// TokenType identifies the lexical category of a Token.
type TokenType int

// Token kinds, closed per spec.md §4.2.
const (
	ILLEGAL TokenType = iota
	EOF

	// Identifiers and literals.
	IDENT
	INT_LIT
	FLOAT_LIT
	CHAR_LIT
	STRING_LIT
	BOOL_LIT

	// Keywords.
	IF
	ELSE
	WHILE
	FOR
	BREAK
	RETURN
	PRINT
	NEW
	SIZE
	VOID
	BOOL
	INT
	FLOAT
	CHAR
	TRUE
	FALSE

	// Compound operators.
	INC        // ++
	DEC        // --
	PLUS_EQ    // +=
	MINUS_EQ   // -=
	STAR_EQ    // *=
	SLASH_EQ   // /=
	PERCENT_EQ // %=
	LE         // <=
	GE         // >=
	EQ         // ==
	NE         // !=
	OR_OR      // ||
	AND_AND    // &&

	// Single-character tokens.
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	SEMI     // ;
	COMMA    // ,
	DOT      // .
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	LT       // <
	GT       // >
	ASSIGN   // =
	NOT      // !
)

var keywords = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"break":  BREAK,
	"return": RETURN,
	"print":  PRINT,
	"new":    NEW,
	"size":   SIZE,
	"void":   VOID,
	"bool":   BOOL,
	"int":    INT,
	"float":  FLOAT,
	"char":   CHAR,
	"true":   TRUE,
	"false":  FALSE,
}

var names = map[TokenType]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	IDENT:      "IDENT",
	INT_LIT:    "INT_LIT",
	FLOAT_LIT:  "FLOAT_LIT",
	CHAR_LIT:   "CHAR_LIT",
	STRING_LIT: "STRING_LIT",
	BOOL_LIT:   "BOOL_LIT",
	IF:         "if", ELSE: "else", WHILE: "while", FOR: "for",
	BREAK: "break", RETURN: "return", PRINT: "print", NEW: "new",
	SIZE: "size", VOID: "void", BOOL: "bool", INT: "int",
	FLOAT: "float", CHAR: "char", TRUE: "true", FALSE: "false",
	INC: "++", DEC: "--", PLUS_EQ: "+=", MINUS_EQ: "-=",
	STAR_EQ: "*=", SLASH_EQ: "/=", PERCENT_EQ: "%=",
	LE: "<=", GE: ">=", EQ: "==", NE: "!=", OR_OR: "||", AND_AND: "&&",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", SEMI: ";", COMMA: ",", DOT: ".",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	LT: "<", GT: ">", ASSIGN: "=", NOT: "!",
}

// String renders the token type's canonical name, used by the parser to
// spell operators in AST nodes and by the `lex --show-type` CLI flag.
func (t TokenType) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "UNKNOWN"
}

// Token is one lexical unit: its kind, literal text, and source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position

	// IntValue, FloatValue, CharValue hold the decoded literal value for
	// the corresponding literal kinds; BoolValue is true for the `true`
	// keyword token (the lexer emits TRUE/FALSE, never BOOL_LIT).
	IntValue   int64
	FloatValue float64
	CharValue  byte
	BoolValue  bool
}

// lookupIdent remaps an identifier's token type to a keyword if its text
// matches one, per spec.md's "keyword remapping happens after identifier
// match" ordering rule.
func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
