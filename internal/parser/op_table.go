package parser

import (
	"callop/internal/ast"
	"callop/internal/token"
)

// Binary precedence tiers, higher binds tighter. Follows the host
// language's table; ?? sits between || and the comparison tiers and the
// parser does not police the no-mixing rule with && and ||.
const (
	precTernary        = 1  // ?:
	precNullish        = 2  // ??
	precLogicalOr      = 3  // ||
	precLogicalAnd     = 4  // &&
	precBitwiseOr      = 5  // |
	precBitwiseXor     = 6  // ^
	precBitwiseAnd     = 7  // &
	precEquality       = 8  // == != === !==
	precComparison     = 9  // < <= > >= in instanceof
	precShift          = 10 // << >> >>>
	precAdditive       = 11 // + -
	precMultiplicative = 12 // * / %
	precExponent       = 13 // ** (right-associative)
)

// getBinaryOperatorPrec returns (precedence, rightAssociative) for kind,
// or (-1, false) when kind is not a binary operator.
func (p *Parser) getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.QuestionQuestion:
		return precNullish, false
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, false
	case token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwIn, token.KwInstanceof:
		return precComparison, false
	case token.Shl, token.Shr, token.UShr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.StarStar:
		return precExponent, true
	default:
		return -1, false
	}
}

// tokenKindToBinaryOp maps an operator token to its AST operator.
func (p *Parser) tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Plus:
		return ast.ExprBinaryAdd
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	case token.Percent:
		return ast.ExprBinaryMod
	case token.StarStar:
		return ast.ExprBinaryPow
	case token.Amp:
		return ast.ExprBinaryBitAnd
	case token.Pipe:
		return ast.ExprBinaryBitOr
	case token.Caret:
		return ast.ExprBinaryBitXor
	case token.Shl:
		return ast.ExprBinaryShiftLeft
	case token.Shr:
		return ast.ExprBinaryShiftRight
	case token.UShr:
		return ast.ExprBinaryUShiftRight
	case token.AndAnd:
		return ast.ExprBinaryLogicalAnd
	case token.OrOr:
		return ast.ExprBinaryLogicalOr
	case token.QuestionQuestion:
		return ast.ExprBinaryNullish
	case token.EqEq:
		return ast.ExprBinaryEq
	case token.BangEq:
		return ast.ExprBinaryNotEq
	case token.EqEqEq:
		return ast.ExprBinaryStrictEq
	case token.BangEqEq:
		return ast.ExprBinaryStrictNeq
	case token.Lt:
		return ast.ExprBinaryLess
	case token.LtEq:
		return ast.ExprBinaryLessEq
	case token.Gt:
		return ast.ExprBinaryGreater
	case token.GtEq:
		return ast.ExprBinaryGreaterEq
	case token.KwIn:
		return ast.ExprBinaryIn
	case token.KwInstanceof:
		return ast.ExprBinaryInstanceof
	default:
		// Unreachable when the precedence table is in sync.
		return ast.ExprBinaryAdd
	}
}

// getUnaryOperator returns the prefix operator for kind, if any.
func (p *Parser) getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Bang:
		return ast.ExprUnaryNot, true
	case token.Minus:
		return ast.ExprUnaryNeg, true
	case token.Plus:
		return ast.ExprUnaryPos, true
	case token.Tilde:
		return ast.ExprUnaryBitNot, true
	case token.KwTypeof:
		return ast.ExprUnaryTypeof, true
	default:
		return ast.ExprUnaryNot, false
	}
}
