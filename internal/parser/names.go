package parser

import (
	"asmopt/internal/ast"
	"asmopt/internal/builtins"
	"asmopt/internal/diag"
	"asmopt/internal/token"
)

// parseDeclName ожидает Ident, который можно объявить (не имя инструкции).
func (p *Parser) parseDeclName() (token.Token, bool) {
	if !p.at(token.Ident) {
		p.err(diag.SynExpectIdentifier, "expected identifier, got "+describe(p.lx.Peek()))
		return token.Token{}, false
	}
	tok := p.advance()
	return tok, p.checkDeclName(tok)
}

func (p *Parser) checkDeclName(tok token.Token) bool {
	if builtins.IsInstruction(tok.Text) {
		p.report(diag.SynExpectIdentifier, diag.SevError, tok.Span,
			"cannot use instruction name \""+tok.Text+"\" as identifier")
		return false
	}
	return true
}

// parseTypedName: name или name:type
func (p *Parser) parseTypedName() (ast.TypedName, bool) {
	name, ok := p.parseDeclName()
	if !ok {
		return ast.TypedName{}, false
	}
	tn := ast.TypedName{Span: name.Span, Name: name.Text}
	if typ, ok, present := p.parseTypeSuffix(); present {
		if !ok {
			return ast.TypedName{}, false
		}
		tn.Type = typ.Text
		tn.Span = tn.Span.Cover(typ.Span)
	}
	return tn, true
}

// parseTypeSuffix reads an optional ":type" annotation.
func (p *Parser) parseTypeSuffix() (typ token.Token, ok, present bool) {
	if !p.at(token.Colon) {
		return token.Token{}, true, false
	}
	p.advance()
	if !p.at(token.Ident) {
		p.err(diag.SynExpectType, "expected type name after ':'")
		return token.Token{}, false, true
	}
	return p.advance(), true, true
}

func (p *Parser) parseTypedNameList() ([]ast.TypedName, bool) {
	first, ok := p.parseTypedName()
	if !ok {
		return nil, false
	}
	names := []ast.TypedName{first}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseTypedName()
		if !ok {
			return nil, false
		}
		names = append(names, next)
	}
	return names, true
}
