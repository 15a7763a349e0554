package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident     // foo, a.b
	NumberLit // 42, 0xff
	StringLit // "abc"

	KwLet      // let
	KwFunction // function
	KwSwitch   // switch
	KwCase     // case
	KwDefault  // default
	KwFor      // for
	KwTrue     // true
	KwFalse    // false

	LBrace      // {
	RBrace      // }
	LParen      // (
	RParen      // )
	Comma       // ,
	Colon       // :
	ColonAssign // :=
	EqColon     // =:
	Arrow       // ->
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	KwLet:       "let",
	KwFunction:  "function",
	KwSwitch:    "switch",
	KwCase:      "case",
	KwDefault:   "default",
	KwFor:       "for",
	KwTrue:      "true",
	KwFalse:     "false",
	LBrace:      "{",
	RBrace:      "}",
	LParen:      "(",
	RParen:      ")",
	Comma:       ",",
	Colon:       ":",
	ColonAssign: ":=",
	EqColon:     "=:",
	Arrow:       "->",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
