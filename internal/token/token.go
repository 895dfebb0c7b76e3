package token

import (
	"callop/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, boolean,
// null, or undefined literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, Percent, Assign,
		EqEq, EqEqEq, Bang, BangEq, BangEqEq, Lt, LtEq, Gt, GtEq,
		Shl, Shr, UShr, Amp, Pipe, Caret, Tilde, AndAnd, OrOr,
		QuestionQuestion, Question, OptionalDot, Colon, ColonColon, CallOp,
		Semicolon, Comma, Dot, DotDotDot,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwConst, KwTypeof, KwIn, KwInstanceof,
		KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsCallSuffix reports whether the token can begin a call-suffix in
// postfix position ('(', '[', '.', '?.', '::(').
func (t Token) IsCallSuffix() bool {
	switch t.Kind {
	case LParen, LBracket, Dot, OptionalDot, CallOp:
		return true
	default:
		return false
	}
}
