// Package parser implements MiniC's grammar as a Pratt
// (precedence-climbing) recursive-descent parser built on
// curToken/peekToken cursors, expectPeek assertions, and
// prefixParseFn/infixParseFn maps keyed by token type. Errors are
// reported to the shared diagnostic sink rather than thrown; on error
// the parser synchronizes to the next statement boundary and keeps
// going so a single run surfaces every independent syntax error.
package parser

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/errors"
	"github.com/minic-lang/minic/internal/lexer"
)

// Precedence levels, lowest to highest, per spec.md §4.3's table.
const (
	_ int = iota
	LOWEST
	COMMA       // ,
	ASSIGN      // = += -= *= /= %=
	OR          // ||
	AND         // &&
	EQUALS      // == !=
	RELATIONAL  // < <= > >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // ! unary +/- prefix ++/--
	CALL        // ( [ . postfix ++/--
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:     ASSIGN,
	lexer.PLUS_EQ:    ASSIGN,
	lexer.MINUS_EQ:   ASSIGN,
	lexer.STAR_EQ:    ASSIGN,
	lexer.SLASH_EQ:   ASSIGN,
	lexer.PERCENT_EQ: ASSIGN,
	lexer.OR_OR:      OR,
	lexer.AND_AND:    AND,
	lexer.EQ:         EQUALS,
	lexer.NE:         EQUALS,
	lexer.LT:         RELATIONAL,
	lexer.LE:         RELATIONAL,
	lexer.GT:         RELATIONAL,
	lexer.GE:         RELATIONAL,
	lexer.PLUS:       SUM,
	lexer.MINUS:      SUM,
	lexer.STAR:       PRODUCT,
	lexer.SLASH:      PRODUCT,
	lexer.PERCENT:    PRODUCT,
	lexer.LPAREN:     CALL,
	lexer.LBRACKET:   CALL,
	lexer.DOT:        CALL,
	lexer.INC:        CALL,
	lexer.DEC:        CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser is a single-use recursive-descent parser over one token stream.
type Parser struct {
	l    *lexer.Lexer
	sink *errors.Sink

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// New creates a Parser over l, reporting syntax errors to sink.
func New(l *lexer.Lexer, sink *errors.Sink) *Parser {
	p := &Parser{l: l, sink: sink}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:      p.parseIdentifierOrCall,
		lexer.INT_LIT:    p.parseIntLit,
		lexer.FLOAT_LIT:  p.parseFloatLit,
		lexer.CHAR_LIT:   p.parseCharLit,
		lexer.STRING_LIT: p.parseStringLit,
		lexer.TRUE:       p.parseBoolLit,
		lexer.FALSE:      p.parseBoolLit,
		lexer.NOT:        p.parseUnary,
		lexer.MINUS:      p.parseUnary,
		lexer.PLUS:       p.parseUnary,
		lexer.INC:        p.parsePrefixIncDec,
		lexer.DEC:        p.parsePrefixIncDec,
		lexer.LPAREN:     p.parseGroupedExpr,
		lexer.NEW:        p.parseNewArray,
	}

	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS: p.parseBinary, lexer.MINUS: p.parseBinary,
		lexer.STAR: p.parseBinary, lexer.SLASH: p.parseBinary, lexer.PERCENT: p.parseBinary,
		lexer.LT: p.parseBinary, lexer.LE: p.parseBinary,
		lexer.GT: p.parseBinary, lexer.GE: p.parseBinary,
		lexer.EQ: p.parseBinary, lexer.NE: p.parseBinary,
		lexer.AND_AND: p.parseBinary, lexer.OR_OR: p.parseBinary,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// expectPeek advances past peekToken if it matches t, else reports a
// syntax error and leaves the cursor unmoved.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekIs(t) {
		p.nextToken()
		return true
	}
	p.errorAtPeek()
	return false
}

func (p *Parser) errorAtPeek() {
	if p.peekToken.Type == lexer.EOF {
		p.sink.Report(errors.EOF, "Error de sintaxis. No mas entrada.")
		return
	}
	p.sink.Report(p.peekToken.Pos, "Error de sintaxis en la entrada en el token '%s'", p.peekToken.Literal)
}

func (p *Parser) errorAtCur() {
	if p.curToken.Type == lexer.EOF {
		p.sink.Report(errors.EOF, "Error de sintaxis. No mas entrada.")
		return
	}
	p.sink.Report(p.curToken.Pos, "Error de sintaxis en la entrada en el token '%s'", p.curToken.Literal)
}

// synchronize recovers from a syntax error by skipping tokens up to and
// including the next statement-ending ';' or a block boundary, so a
// single parse run can report every independent error (spec.md §7).
func (p *Parser) synchronize() {
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMI) {
			p.nextToken()
			return
		}
		if p.curIs(lexer.RBRACE) {
			return
		}
		p.nextToken()
	}
}

// ParseProgram parses the whole token stream into a Program node. A
// partial tree is still returned on error so that the driver can observe
// the sink's HasErrors() flag and halt, per spec.md §4.3/§5.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}

	for !p.curIs(lexer.EOF) {
		before := p.curToken
		decl := p.parseTopLevelDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
		if p.curToken == before {
			// No progress was made; force advancement to avoid an
			// infinite loop on an unrecognized token at top level.
			p.errorAtCur()
			p.nextToken()
		}
	}

	return prog
}
