package parser

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/lexer"
)

// parseTopLevelDecl parses one `type name ...` declaration: a function
// definition, a static array, or a static scalar variable, distinguished
// by what follows the name (spec.md §4.3's top-level grammar).
func (p *Parser) parseTopLevelDecl() ast.Statement {
	if !isTypeToken(p.curToken.Type) {
		p.errorAtCur()
		p.synchronize()
		return nil
	}

	typeTok := p.curToken
	dt := &ast.DataType{P: typeTok.Pos, Name: typeTok.Literal}

	if !p.expectPeek(lexer.IDENT) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Literal

	switch {
	case p.peekIs(lexer.LPAREN):
		return p.parseFuncDecl(typeTok, dt, name)
	case p.peekIs(lexer.LBRACKET):
		return p.parseStaticArrayDecl(typeTok, dt, name)
	default:
		return p.parseStaticVarDecl(typeTok, dt, name)
	}
}

func (p *Parser) parseStaticVarDecl(typeTok lexer.Token, dt *ast.DataType, name string) ast.Statement {
	var init ast.Expression
	if p.peekIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		init = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.StaticVarDecl{P: typeTok.Pos, DataType: dt, Name: name, Init: init}
	}
	p.nextToken()
	return &ast.StaticVarDecl{P: typeTok.Pos, DataType: dt, Name: name, Init: init}
}

func (p *Parser) parseStaticArrayDecl(typeTok lexer.Token, dt *ast.DataType, name string) ast.Statement {
	p.nextToken() // consume '['
	p.nextToken() // move to size expr
	size := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RBRACKET) {
		p.synchronize()
		return nil
	}
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.StaticArrayDecl{P: typeTok.Pos, DataType: dt, Name: name, Size: size}
	}
	p.nextToken()
	return &ast.StaticArrayDecl{P: typeTok.Pos, DataType: dt, Name: name, Size: size}
}

func (p *Parser) parseFuncDecl(typeTok lexer.Token, dt *ast.DataType, name string) ast.Statement {
	p.nextToken() // consume '('
	params := p.parseParams()

	if !p.expectPeek(lexer.LBRACE) {
		p.synchronize()
		return &ast.FuncDecl{P: typeTok.Pos, ReturnType: dt, Name: name, Params: params}
	}

	body := p.parseCompound()
	return &ast.FuncDecl{P: typeTok.Pos, ReturnType: dt, Name: name, Params: params, Body: body}
}

// parseParams parses a parenthesized parameter list. Precondition:
// curToken is '('. A lone `void` means zero parameters; spec.md treats
// it as a marker, not a real parameter type (void is never storable).
func (p *Parser) parseParams() []*ast.Parameter {
	var params []*ast.Parameter

	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
		return params
	}

	if p.peekIs(lexer.VOID) {
		p.nextToken() // cur = 'void'
		if p.peekIs(lexer.RPAREN) {
			p.nextToken()
			return params
		}
		params = append(params, p.parseParamFrom(p.curToken))
		for p.peekIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			params = append(params, p.parseParamFrom(p.curToken))
		}
		p.expectPeek(lexer.RPAREN)
		return params
	}

	p.nextToken()
	params = append(params, p.parseParamFrom(p.curToken))
	for p.peekIs(lexer.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseParamFrom(p.curToken))
	}
	p.expectPeek(lexer.RPAREN)
	return params
}

// parseParamFrom parses one `type name` or `type name[]` entry.
// Precondition: curToken is the parameter's type keyword.
func (p *Parser) parseParamFrom(typeTok lexer.Token) *ast.Parameter {
	dt := &ast.DataType{P: typeTok.Pos, Name: typeTok.Literal}

	if !p.expectPeek(lexer.IDENT) {
		return &ast.Parameter{P: typeTok.Pos, DataType: dt}
	}
	name := p.curToken.Literal

	if p.peekIs(lexer.LBRACKET) {
		p.nextToken()
		if !p.expectPeek(lexer.RBRACKET) {
			return &ast.Parameter{P: typeTok.Pos, DataType: dt, Name: name}
		}
		return &ast.Parameter{P: typeTok.Pos, DataType: dt, Name: name, IsArray: true}
	}

	return &ast.Parameter{P: typeTok.Pos, DataType: dt, Name: name}
}
