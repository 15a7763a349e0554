package lexer

import (
	"asmopt/internal/diag"
	"asmopt/internal/token"
)

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Invalid
	switch b {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
		if lx.cursor.Eat('=') {
			kind = token.ColonAssign
		}
	case '=':
		if lx.cursor.Eat(':') {
			kind = token.EqColon
		}
	case '-':
		if lx.cursor.Eat('>') {
			kind = token.Arrow
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+quoteByte(b))
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func quoteByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return "'" + string(rune(b)) + "'"
	}
	const digits = "0123456789abcdef"
	return "0x" + string([]byte{digits[b>>4], digits[b&0xf]})
}
