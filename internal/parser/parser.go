package parser

import (
	"slices"

	"asmopt/internal/ast"
	"asmopt/internal/diag"
	"asmopt/internal/lexer"
	"asmopt/internal/source"
	"asmopt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Block *ast.Block
	Bag   *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile parses the whole file as one block. The source may either be a
// single braced block or a bare statement list; both yield the same tree.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	root := p.parseTop()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Block: root, Bag: bag}
}

// Errors returns how many errors were reported so far.
func (p *Parser) Errors() uint {
	return p.opts.CurrentErrors
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) parseTop() *ast.Block {
	start := p.lx.Peek().Span
	root := &ast.Block{Span: start}
	for !p.at(token.EOF) {
		if p.at(token.RBrace) {
			p.err(diag.SynUnexpectedToken, "unexpected '}'")
			p.advance()
			continue
		}
		if stmt, ok := p.parseStatementOrResync(); ok {
			root.Statements = append(root.Statements, stmt)
		}
	}
	root.Span = start.Cover(p.lastSpan)

	// "{ ... }" на верхнем уровне — это и есть корневой блок
	if len(root.Statements) == 1 {
		if b, ok := root.Statements[0].(*ast.Block); ok {
			return b
		}
	}
	return root
}

// parseStatementOrResync parses one statement and guarantees progress on failure.
func (p *Parser) parseStatementOrResync() (ast.Statement, bool) {
	before := p.lx.Peek().Span.Start
	stmt, ok := p.parseStatement()
	if ok {
		return stmt, true
	}
	if p.lx.Peek().Span.Start == before && !p.at(token.EOF) {
		p.advance()
	}
	p.resyncStatement()
	return nil, false
}
