package parser

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/lexer"
)

// parseExpression is the Pratt entry point: parse one prefix term, then
// fold in infix operators whose precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.errorAtCur()
		return nil
	}
	left := prefix()

	for !p.peekIs(lexer.SEMI) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIntLit() ast.Expression {
	tok := p.curToken
	return &ast.IntLit{P: tok.Pos, Value: tok.IntValue}
}

func (p *Parser) parseFloatLit() ast.Expression {
	tok := p.curToken
	return &ast.FloatLit{P: tok.Pos, Value: tok.FloatValue}
}

func (p *Parser) parseCharLit() ast.Expression {
	tok := p.curToken
	return &ast.CharLit{P: tok.Pos, Value: tok.CharValue}
}

func (p *Parser) parseStringLit() ast.Expression {
	tok := p.curToken
	return &ast.StringLit{P: tok.Pos, Value: tok.Literal}
}

func (p *Parser) parseBoolLit() ast.Expression {
	tok := p.curToken
	return &ast.BoolLit{P: tok.Pos, Value: tok.BoolValue}
}

// parseGroupedExpr parses "(" expr ")".
func (p *Parser) parseGroupedExpr() ast.Expression {
	p.nextToken() // consume '('
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		return exp
	}
	return exp
}

// parseUnary parses a prefix !, -, or + operator.
func (p *Parser) parseUnary() ast.Expression {
	tok := p.curToken
	op := tok.Type.String()
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	return &ast.UnaryOp{P: tok.Pos, Op: op, Expr: operand}
}

// parsePrefixIncDec parses ++x or --x. The operand must be a bare
// identifier, per spec.md: increment/decrement only ever apply to a
// declared variable, never an arbitrary expression.
func (p *Parser) parsePrefixIncDec() ast.Expression {
	tok := p.curToken
	op := tok.Type.String()
	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	return &ast.IncDec{P: tok.Pos, Op: op, Name: p.curToken.Literal, Kind: ast.Prefix}
}

// parseNewArray parses `new <type>[<size>]`.
func (p *Parser) parseNewArray() ast.Expression {
	tok := p.curToken // 'new'
	dt := p.parseDataType()
	if dt == nil {
		return nil
	}
	if !p.expectPeek(lexer.LBRACKET) {
		return nil
	}
	p.nextToken()
	size := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.NewArray{P: tok.Pos, DataType: dt, Size: size}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Type.String()
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	return &ast.BinaryOp{P: tok.Pos, Op: op, Left: left, Right: right}
}

func isAssignOp(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PERCENT_EQ:
		return true
	default:
		return false
	}
}

// parseIdentifierOrCall is the prefix parse fn for IDENT. An identifier
// alone is never the whole story in MiniC's grammar: it may be a bare
// variable read, a function call, an array index (optionally followed
// by an assignment), a `.size` query, a compound/simple assignment, or
// a postfix ++/--. All of those forms attach directly to the name
// token, so they are resolved here rather than through the generic
// infix table (spec.md's grammar never allows e.g. `(a+b)[i]`).
func (p *Parser) parseIdentifierOrCall() ast.Expression {
	tok := p.curToken
	name := tok.Literal

	switch {
	case p.peekIs(lexer.LPAREN):
		p.nextToken()
		args := p.parseCallArgs()
		return &ast.FuncCall{P: tok.Pos, Name: name, Args: args}

	case p.peekIs(lexer.LBRACKET):
		p.nextToken()
		p.nextToken()
		index := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RBRACKET) {
			return nil
		}
		if isAssignOp(p.peekToken.Type) {
			opTok := p.peekToken
			p.nextToken()
			p.nextToken()
			value := p.parseExpression(LOWEST)
			return &ast.ArrayAssign{P: tok.Pos, Op: opTok.Type.String(), Name: name, Index: index, Value: value}
		}
		return &ast.ArrayLookup{P: tok.Pos, Name: name, Index: index}

	case p.peekIs(lexer.DOT):
		p.nextToken()
		if !p.expectPeek(lexer.SIZE) {
			return nil
		}
		return &ast.ArraySize{P: tok.Pos, Name: name}

	case isAssignOp(p.peekToken.Type):
		opTok := p.peekToken
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(LOWEST)
		return &ast.VarAssign{P: tok.Pos, Op: opTok.Type.String(), Name: name, Value: value}

	case p.peekIs(lexer.INC) || p.peekIs(lexer.DEC):
		opTok := p.peekToken
		p.nextToken()
		return &ast.IncDec{P: tok.Pos, Op: opTok.Type.String(), Name: name, Kind: ast.Postfix}

	default:
		return &ast.Var{P: tok.Pos, Name: name}
	}
}

// parseCallArgs parses a parenthesized, comma-separated argument list.
// Precondition: curToken is '('.
func (p *Parser) parseCallArgs() []ast.Expression {
	var args []ast.Expression

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	p.expectPeek(lexer.RPAREN)
	return args
}

// isTypeToken reports whether t begins a primitive type name.
func isTypeToken(t lexer.TokenType) bool {
	switch t {
	case lexer.VOID, lexer.BOOL, lexer.INT, lexer.FLOAT, lexer.CHAR:
		return true
	default:
		return false
	}
}

// parseDataType consumes a primitive type keyword from peekToken and
// wraps it as a DataType node. Reports a syntax error and returns nil
// if peekToken is not a type keyword.
func (p *Parser) parseDataType() *ast.DataType {
	if !isTypeToken(p.peekToken.Type) {
		p.errorAtPeek()
		return nil
	}
	p.nextToken()
	return &ast.DataType{P: p.curToken.Pos, Name: p.curToken.Literal}
}
