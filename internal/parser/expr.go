package parser

import (
	"asmopt/internal/ast"
	"asmopt/internal/builtins"
	"asmopt/internal/diag"
	"asmopt/internal/source"
	"asmopt/internal/token"
)

// parseExpression: literal, instruction, identifier, add(...) or f(...).
func (p *Parser) parseExpression() (ast.Statement, bool) {
	switch tok := p.lx.Peek(); tok.Kind {
	case token.NumberLit, token.StringLit, token.KwTrue, token.KwFalse:
		lit, ok := p.parseLiteral()
		return lit, ok
	case token.Ident:
		return p.parseExpressionFrom(p.advance())
	default:
		p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
		return nil, false
	}
}

// parseExpressionFrom continues an expression whose leading identifier is already consumed.
func (p *Parser) parseExpressionFrom(name token.Token) (ast.Statement, bool) {
	if builtins.IsInstruction(name.Text) {
		instr := ast.Instruction{Span: name.Span, Name: name.Text}
		if !p.at(token.LParen) {
			return &instr, true
		}
		args, end, ok := p.parseArguments()
		if !ok {
			return nil, false
		}
		return &ast.FunctionalInstruction{
			Span:        name.Span.Cover(end),
			Instruction: instr,
			Arguments:   args,
		}, true
	}

	id := ast.Identifier{Span: name.Span, Name: name.Text}
	if !p.at(token.LParen) {
		return &id, true
	}
	args, end, ok := p.parseArguments()
	if !ok {
		return nil, false
	}
	return &ast.FunctionCall{
		Span:         name.Span.Cover(end),
		FunctionName: id,
		Arguments:    args,
	}, true
}

func (p *Parser) parseArguments() ([]ast.Statement, source.Span, bool) {
	p.advance() // '('
	var args []ast.Statement
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpression()
			if !ok {
				return nil, source.Span{}, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closing, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close argument list")
	if !ok {
		return nil, source.Span{}, false
	}
	return args, closing.Span, true
}

func (p *Parser) parseLiteral() (*ast.Literal, bool) {
	tok := p.lx.Peek()
	var kind ast.LiteralKind
	switch tok.Kind {
	case token.NumberLit:
		kind = ast.LiteralNumber
	case token.StringLit:
		kind = ast.LiteralString
	case token.KwTrue, token.KwFalse:
		kind = ast.LiteralBool
	default:
		p.err(diag.SynExpectLiteral, "expected literal, got "+describe(tok))
		return nil, false
	}
	p.advance()
	lit := &ast.Literal{Span: tok.Span, Kind: kind, Value: tok.Text}
	if typ, ok, present := p.parseTypeSuffix(); present {
		if !ok {
			return nil, false
		}
		lit.Type = typ.Text
		lit.Span = lit.Span.Cover(typ.Span)
	}
	return lit, true
}
