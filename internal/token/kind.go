package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwUndefined represents the 'undefined' keyword.
	KwUndefined // undefined

	// NumberLit represents a numeric literal token.
	NumberLit
	// StringLit represents a string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the exponentiation operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the loose equality operator token.
	EqEq // ==
	// EqEqEq represents the strict equality operator token.
	EqEqEq // ===
	// Bang represents the logical not operator token.
	Bang // !
	// BangEq represents the loose inequality operator token.
	BangEq // !=
	// BangEqEq represents the strict inequality operator token.
	BangEqEq // !==
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Shl represents the left shift operator token.
	Shl // <<
	// Shr represents the sign-propagating right shift operator token.
	Shr // >>
	// UShr represents the zero-fill right shift operator token.
	UShr // >>>
	// Amp represents the bitwise and operator token.
	Amp // &
	// Pipe represents the bitwise or operator token.
	Pipe // |
	// Caret represents the bitwise xor operator token.
	Caret // ^
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// OrOr represents the logical or operator token.
	OrOr // ||
	// QuestionQuestion represents the nullish coalescing operator token.
	QuestionQuestion // ??
	// Question represents the question operator token.
	Question // ?
	// OptionalDot represents the optional chaining operator token.
	OptionalDot // ?.
	// Colon represents the colon operator token.
	Colon // :
	// ColonColon represents the bind-this operator token.
	ColonColon // ::
	// CallOp represents the call operator token.
	CallOp // ::(
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the member access token.
	Dot // .
	// DotDotDot represents the spread token.
	DotDotDot // ...
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwLet:            "KwLet",
	KwConst:          "KwConst",
	KwTypeof:         "KwTypeof",
	KwIn:             "KwIn",
	KwInstanceof:     "KwInstanceof",
	KwTrue:           "KwTrue",
	KwFalse:          "KwFalse",
	KwNull:           "KwNull",
	KwUndefined:      "KwUndefined",
	NumberLit:        "NumberLit",
	StringLit:        "StringLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	Percent:          "Percent",
	Assign:           "Assign",
	EqEq:             "EqEq",
	EqEqEq:           "EqEqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	BangEqEq:         "BangEqEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Shl:              "Shl",
	Shr:              "Shr",
	UShr:             "UShr",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	QuestionQuestion: "QuestionQuestion",
	Question:         "Question",
	OptionalDot:      "OptionalDot",
	Colon:            "Colon",
	ColonColon:       "ColonColon",
	CallOp:           "CallOp",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	DotDotDot:        "DotDotDot",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
