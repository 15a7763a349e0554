package parser

import (
	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/token"
)

// parseStatement выбирает распознаватель по первому токену.
func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		b, ok := p.parseBlock()
		return b, ok
	case token.KwLet:
		return p.parseVariableDeclaration()
	case token.KwFunction:
		return p.parseFunctionDefinition()
	case token.KwSwitch:
		return p.parseSwitch()
	case token.KwFor:
		return p.parseForLoop()
	case token.EqColon:
		return p.parseStackAssignment()
	case token.Ident:
		return p.parseIdentStatement()
	default:
		return p.parseExpression()
	}
}

// parseBlock parses "{ stmt* }". On a missing '}' the block is still returned.
func (p *Parser) parseBlock() (*ast.Block, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{', got "+describe(p.lx.Peek()))
	if !ok {
		return nil, false
	}
	block := &ast.Block{Span: open.Span}
	for !p.atOr(token.RBrace, token.EOF) {
		if stmt, ok := p.parseStatementOrResync(); ok {
			block.Statements = append(block.Statements, stmt)
		}
	}
	closing, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	if ok {
		block.Span = open.Span.Cover(closing.Span)
	} else {
		block.Span = open.Span.Cover(p.lastSpan)
	}
	return block, true
}

// let a, b:u256 := expr
func (p *Parser) parseVariableDeclaration() (ast.Statement, bool) {
	kw := p.advance()
	names, ok := p.parseTypedNameList()
	if !ok {
		return nil, false
	}
	decl := &ast.VariableDeclaration{Span: kw.Span.Cover(p.lastSpan), Variables: names}
	if p.at(token.ColonAssign) {
		p.advance()
		value, ok := p.parseExpression()
		if !ok {
			return nil, false
		}
		decl.Value = value
		decl.Span = decl.Span.Cover(value.Pos())
	}
	return decl, true
}

// function name(a, b) -> r, s { ... }
func (p *Parser) parseFunctionDefinition() (ast.Statement, bool) {
	kw := p.advance()
	name, ok := p.parseDeclName()
	if !ok {
		return nil, false
	}
	fn := &ast.FunctionDefinition{Span: kw.Span, Name: name.Text}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}
	if !p.at(token.RParen) {
		if fn.Parameters, ok = p.parseTypedNameList(); !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	if p.at(token.Arrow) {
		p.advance()
		if fn.Returns, ok = p.parseTypedNameList(); !ok {
			return nil, false
		}
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	fn.Body = body
	fn.Span = kw.Span.Cover(body.Span)
	return fn, true
}

// switch expr case lit { } ... default { }
func (p *Parser) parseSwitch() (ast.Statement, bool) {
	kw := p.advance()
	expr, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	sw := &ast.Switch{Span: kw.Span, Expression: expr}
	seenDefault := false
	for p.atOr(token.KwCase, token.KwDefault) {
		caseKw := p.advance()
		c := ast.Case{Span: caseKw.Span}
		if caseKw.Kind == token.KwCase {
			if seenDefault {
				p.report(diag.SynCaseAfterDefault, diag.SevError, caseKw.Span, "case after default")
			}
			lit, ok := p.parseLiteral()
			if !ok {
				return nil, false
			}
			c.Value = lit
		} else {
			if seenDefault {
				p.report(diag.SynDuplicateDefault, diag.SevError, caseKw.Span, "duplicate default case")
			}
			seenDefault = true
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		c.Body = body
		c.Span = caseKw.Span.Cover(body.Span)
		sw.Cases = append(sw.Cases, c)
	}
	sw.Span = kw.Span.Cover(p.lastSpan)
	return sw, true
}

// for { pre } cond { post } { body }
func (p *Parser) parseForLoop() (ast.Statement, bool) {
	kw := p.advance()
	pre, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	cond, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	post, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.ForLoop{
		Span:      kw.Span.Cover(body.Span),
		Pre:       pre,
		Condition: cond,
		Post:      post,
		Body:      body,
	}, true
}

// =: x
func (p *Parser) parseStackAssignment() (ast.Statement, bool) {
	op := p.advance()
	name, ok := p.parseDeclName()
	if !ok {
		return nil, false
	}
	return &ast.StackAssignment{
		Span:         op.Span.Cover(name.Span),
		VariableName: ast.Identifier{Span: name.Span, Name: name.Text},
	}, true
}

// parseIdentStatement различает метку "l:", присваивание "a, b := e" и выражение.
func (p *Parser) parseIdentStatement() (ast.Statement, bool) {
	first := p.advance()
	switch p.lx.Peek().Kind {
	case token.Colon:
		colon := p.advance()
		if !p.checkDeclName(first) {
			return nil, false
		}
		return &ast.Label{Span: first.Span.Cover(colon.Span), Name: first.Text}, true
	case token.Comma, token.ColonAssign:
		return p.parseAssignment(first)
	default:
		return p.parseExpressionFrom(first)
	}
}

func (p *Parser) parseAssignment(first token.Token) (ast.Statement, bool) {
	if !p.checkDeclName(first) {
		return nil, false
	}
	names := []ast.Identifier{{Span: first.Span, Name: first.Text}}
	for p.at(token.Comma) {
		p.advance()
		name, ok := p.parseDeclName()
		if !ok {
			return nil, false
		}
		names = append(names, ast.Identifier{Span: name.Span, Name: name.Text})
	}
	if _, ok := p.expect(token.ColonAssign, diag.SynExpectAssign, "expected ':=' in assignment"); !ok {
		return nil, false
	}
	value, ok := p.parseExpression()
	if !ok {
		return nil, false
	}
	return &ast.Assignment{
		Span:          first.Span.Cover(value.Pos()),
		VariableNames: names,
		Value:         value,
	}, true
}
