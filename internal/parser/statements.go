package parser

import (
	"github.com/minic-lang/minic/internal/ast"
	"github.com/minic-lang/minic/internal/lexer"
)

// parseStatement dispatches on the leading token of a statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.LBRACE:
		return p.parseCompound()
	case lexer.SEMI:
		stmt := &ast.NullStmt{P: p.curToken.Pos}
		p.nextToken()
		return stmt
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseExprStatement() ast.Statement {
	pos := p.curToken.Pos
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		p.synchronize()
		return nil
	}
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.ExprStmt{P: pos, Expr: expr}
	}
	p.nextToken()
	return &ast.ExprStmt{P: pos, Expr: expr}
}

// parsePrint parses `print(expr);`, MiniC's sole built-in I/O form
// (spec.md §4.6's PRINT opcode family).
func (p *Parser) parsePrint() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return nil
	}
	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return nil
	}
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.Print{P: tok.Pos, Expr: arg}
	}
	p.nextToken()
	return &ast.Print{P: tok.Pos, Expr: arg}
}

// parseIf parses `if (cond) then [else else-stmt]`. Dangling else binds
// to the nearest enclosing unmatched if by construction: the recursive
// call to parseStatement for Then consumes its own optional else first,
// so an else encountered here always belongs to this if.
func (p *Parser) parseIf() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return nil
	}
	p.nextToken()
	then := p.parseStatement()

	var elseStmt ast.Statement
	if p.curIs(lexer.ELSE) {
		p.nextToken()
		elseStmt = p.parseStatement()
	}

	return &ast.If{P: tok.Pos, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.RPAREN) {
		p.synchronize()
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	return &ast.While{P: tok.Pos, Cond: cond, Body: body}
}

func (p *Parser) parseFor() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.LPAREN) {
		p.synchronize()
		return nil
	}

	var initStmt ast.Statement
	declInit := false
	if p.peekIs(lexer.SEMI) {
		p.nextToken()
	} else {
		p.nextToken()
		if p.isLocalDeclStart() {
			// parseLocalDecl consumes through the ';', leaving curToken on
			// the condition's first token (or on its ';' if empty).
			initStmt = p.parseLocalDecl()
			declInit = true
		} else {
			pos := p.curToken.Pos
			expr := p.parseExpression(LOWEST)
			if !p.expectPeek(lexer.SEMI) {
				p.synchronize()
				return nil
			}
			initStmt = &ast.ExprStmt{P: pos, Expr: expr}
		}
	}

	var cond ast.Expression
	if !declInit {
		p.nextToken() // onto the condition's first token or its ';'
	}
	if !p.curIs(lexer.SEMI) {
		cond = p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.SEMI) {
			p.synchronize()
			return nil
		}
	}

	var step ast.Expression
	if p.peekIs(lexer.RPAREN) {
		p.nextToken()
	} else {
		p.nextToken()
		step = p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RPAREN) {
			p.synchronize()
			return nil
		}
	}

	p.nextToken()
	body := p.parseStatement()

	return &ast.For{P: tok.Pos, Init: initStmt, Cond: cond, Step: step, Body: body}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken
	if p.peekIs(lexer.SEMI) {
		p.nextToken()
		p.nextToken()
		return &ast.Return{P: tok.Pos}
	}
	p.nextToken()
	val := p.parseExpression(LOWEST)
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.Return{P: tok.Pos, Value: val}
	}
	p.nextToken()
	return &ast.Return{P: tok.Pos, Value: val}
}

func (p *Parser) parseBreak() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.Break{P: tok.Pos}
	}
	p.nextToken()
	return &ast.Break{P: tok.Pos}
}

// isLocalDeclStart reports whether curToken opens a local variable or
// array declaration. void is excluded: it is never a storable type,
// only a return-type / empty-parameter-list marker.
func (p *Parser) isLocalDeclStart() bool {
	switch p.curToken.Type {
	case lexer.BOOL, lexer.INT, lexer.FLOAT, lexer.CHAR:
		return true
	default:
		return false
	}
}

// parseLocalDecl parses a local `type name;`, `type name = expr;`, or
// `type name[size];` declaration. Precondition: curToken is the type
// keyword. Consumes through the trailing ';'.
func (p *Parser) parseLocalDecl() ast.Statement {
	typeTok := p.curToken
	dt := &ast.DataType{P: typeTok.Pos, Name: typeTok.Literal}

	if !p.expectPeek(lexer.IDENT) {
		p.synchronize()
		return nil
	}
	name := p.curToken.Literal

	if p.peekIs(lexer.LBRACKET) {
		p.nextToken()
		p.nextToken()
		size := p.parseExpression(LOWEST)
		if !p.expectPeek(lexer.RBRACKET) {
			p.synchronize()
			return nil
		}
		if !p.expectPeek(lexer.SEMI) {
			p.synchronize()
			return &ast.LocalArrayDecl{P: typeTok.Pos, DataType: dt, Name: name, Size: size}
		}
		p.nextToken()
		return &ast.LocalArrayDecl{P: typeTok.Pos, DataType: dt, Name: name, Size: size}
	}

	var init ast.Expression
	if p.peekIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		init = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(lexer.SEMI) {
		p.synchronize()
		return &ast.LocalVarDecl{P: typeTok.Pos, DataType: dt, Name: name, Init: init}
	}
	p.nextToken()
	return &ast.LocalVarDecl{P: typeTok.Pos, DataType: dt, Name: name, Init: init}
}

// parseCompound parses a `{ decls* stmts* }` block. Precondition:
// curToken is '{'.
func (p *Parser) parseCompound() *ast.Compound {
	comp := &ast.Compound{P: p.curToken.Pos}
	p.nextToken()

	for p.isLocalDeclStart() {
		decl := p.parseLocalDecl()
		if decl != nil {
			comp.Decls = append(comp.Decls, decl)
		}
	}

	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		before := p.curToken
		stmt := p.parseStatement()
		if stmt != nil {
			comp.Stmts = append(comp.Stmts, stmt)
		}
		if p.curToken == before {
			p.errorAtCur()
			p.nextToken()
		}
	}

	if p.curIs(lexer.EOF) {
		p.errorAtCur()
	} else {
		p.nextToken()
	}

	return comp
}
