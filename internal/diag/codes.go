package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Синтаксические
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedBrace    Code = 2002
	SynUnclosedParen    Code = 2003
	SynExpectIdentifier Code = 2004
	SynExpectExpression Code = 2005
	SynExpectAssign     Code = 2006
	SynExpectBlock      Code = 2007
	SynExpectLiteral    Code = 2008
	SynDuplicateDefault Code = 2009
	SynCaseAfterDefault Code = 2010
	SynExpectType       Code = 2011

	// Семантические (scope filler)
	SemaInfo             Code = 3000
	SemaDuplicateSymbol  Code = 3001
	SemaUnresolvedSymbol Code = 3002
	SemaArityMismatch    Code = 3003

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectExpression:         "Expect expression",
	SynExpectAssign:             "Expect ':='",
	SynExpectBlock:              "Expect block",
	SynExpectLiteral:            "Expect literal",
	SynDuplicateDefault:         "Duplicate default case",
	SynCaseAfterDefault:         "Case after default",
	SynExpectType:               "Expect type name",
	SemaInfo:                    "Semantic information",
	SemaDuplicateSymbol:         "Duplicate symbol",
	SemaUnresolvedSymbol:        "Unresolved symbol",
	SemaArityMismatch:           "Assignment arity mismatch",
	IOLoadFileError:             "Failed to load file",
}

// ID returns the stable code label, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
