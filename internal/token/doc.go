// Package token defines the lexical vocabulary of the assembly dialect:
// token kinds, keywords and the Token value produced by internal/lexer.
package token
