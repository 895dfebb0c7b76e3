package ast

import (
	"callop/internal/source"
)

// ExprKind enumerates the expression node kinds.
type ExprKind uint8

const (
	// ExprIdent is an identifier reference.
	ExprIdent ExprKind = iota
	// ExprLit is a literal (number, string, bool, null, undefined).
	ExprLit
	// ExprUnary is a prefix unary expression.
	ExprUnary
	// ExprBinary is a binary expression.
	ExprBinary
	// ExprTernary is `cond ? then : else`.
	ExprTernary
	// ExprGroup is a parenthesized expression.
	ExprGroup
	// ExprArray is an array literal.
	ExprArray
	// ExprSpread is `...expr` inside an argument or array position.
	ExprSpread
	// ExprMember is `target.name` or `target?.name`.
	ExprMember
	// ExprIndex is `target[index]`.
	ExprIndex
	// ExprCall is `target(args)` or `target?.(args)`.
	ExprCall
	// ExprCallOp is `target::(receiver, args)`. Desugaring rewrites these
	// into ExprCall over an ExprMember; no ExprCallOp survives a desugared tree.
	ExprCallOp
	// ExprBind is `receiver::name`, only when the bind-this grammar is
	// enabled in the project manifest.
	ExprBind
)

var exprKindNames = [...]string{
	ExprIdent:   "Ident",
	ExprLit:     "Lit",
	ExprUnary:   "Unary",
	ExprBinary:  "Binary",
	ExprTernary: "Ternary",
	ExprGroup:   "Group",
	ExprArray:   "Array",
	ExprSpread:  "Spread",
	ExprMember:  "Member",
	ExprIndex:   "Index",
	ExprCall:    "Call",
	ExprCallOp:  "CallOp",
	ExprBind:    "Bind",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr is an expression node. Per-kind details live in the payload arenas.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	ExprLitNumber ExprLitKind = iota
	ExprLitString
	ExprLitBool
	ExprLitNull
	ExprLitUndefined
)

var exprLitKindNames = [...]string{
	ExprLitNumber:    "Number",
	ExprLitString:    "String",
	ExprLitBool:      "Bool",
	ExprLitNull:      "Null",
	ExprLitUndefined: "Undefined",
}

func (k ExprLitKind) String() string {
	if int(k) < len(exprLitKindNames) {
		return exprLitKindNames[k]
	}
	return "Unknown"
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	ExprUnaryNot    ExprUnaryOp = iota // !
	ExprUnaryNeg                       // -
	ExprUnaryPos                       // +
	ExprUnaryBitNot                    // ~
	ExprUnaryTypeof                    // typeof
)

var exprUnaryOpNames = [...]string{
	ExprUnaryNot:    "!",
	ExprUnaryNeg:    "-",
	ExprUnaryPos:    "+",
	ExprUnaryBitNot: "~",
	ExprUnaryTypeof: "typeof",
}

func (op ExprUnaryOp) String() string {
	if int(op) < len(exprUnaryOpNames) {
		return exprUnaryOpNames[op]
	}
	return "?"
}

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota // +
	ExprBinarySub                     // -
	ExprBinaryMul                     // *
	ExprBinaryDiv                     // /
	ExprBinaryMod                     // %
	ExprBinaryPow                     // **

	ExprBinaryBitAnd      // &
	ExprBinaryBitOr       // |
	ExprBinaryBitXor      // ^
	ExprBinaryShiftLeft   // <<
	ExprBinaryShiftRight  // >>
	ExprBinaryUShiftRight // >>>

	ExprBinaryLogicalAnd // &&
	ExprBinaryLogicalOr  // ||
	ExprBinaryNullish    // ??

	ExprBinaryEq        // ==
	ExprBinaryNotEq     // !=
	ExprBinaryStrictEq  // ===
	ExprBinaryStrictNeq // !==
	ExprBinaryLess      // <
	ExprBinaryLessEq    // <=
	ExprBinaryGreater   // >
	ExprBinaryGreaterEq // >=

	ExprBinaryIn         // in
	ExprBinaryInstanceof // instanceof
)

var exprBinaryOpNames = [...]string{
	ExprBinaryAdd:         "+",
	ExprBinarySub:         "-",
	ExprBinaryMul:         "*",
	ExprBinaryDiv:         "/",
	ExprBinaryMod:         "%",
	ExprBinaryPow:         "**",
	ExprBinaryBitAnd:      "&",
	ExprBinaryBitOr:       "|",
	ExprBinaryBitXor:      "^",
	ExprBinaryShiftLeft:   "<<",
	ExprBinaryShiftRight:  ">>",
	ExprBinaryUShiftRight: ">>>",
	ExprBinaryLogicalAnd:  "&&",
	ExprBinaryLogicalOr:   "||",
	ExprBinaryNullish:     "??",
	ExprBinaryEq:          "==",
	ExprBinaryNotEq:       "!=",
	ExprBinaryStrictEq:    "===",
	ExprBinaryStrictNeq:   "!==",
	ExprBinaryLess:        "<",
	ExprBinaryLessEq:      "<=",
	ExprBinaryGreater:     ">",
	ExprBinaryGreaterEq:   ">=",
	ExprBinaryIn:          "in",
	ExprBinaryInstanceof:  "instanceof",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(exprBinaryOpNames) {
		return exprBinaryOpNames[op]
	}
	return "?"
}

// ExprIdentData holds identifier details.
type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData holds literal details. Value is the raw source text.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

// ExprUnaryData holds prefix expression details.
type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

// ExprBinaryData holds binary expression details.
type ExprBinaryData struct {
	Op     ExprBinaryOp
	Left   ExprID
	Right  ExprID
	OpSpan source.Span
}

// ExprTernaryData holds `cond ? then : else` details.
type ExprTernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// ExprGroupData holds parenthesized expression details.
type ExprGroupData struct {
	Inner ExprID
}

// ExprArrayData holds array literal details.
type ExprArrayData struct {
	Elems            []ExprID
	HasTrailingComma bool
}

// ExprSpreadData holds `...expr` details.
type ExprSpreadData struct {
	Operand ExprID
}

// ExprMemberData holds member access details. Synthetic is set on members
// manufactured by desugaring rather than written in source.
type ExprMemberData struct {
	Target    ExprID
	Name      source.StringID
	NameSpan  source.Span
	Optional  bool
	Synthetic bool
}

// ExprIndexData holds computed member access details.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprCallData holds call details.
type ExprCallData struct {
	Target           ExprID
	Args             []ExprID
	Optional         bool
	HasTrailingComma bool
}

// ExprBindData holds bind-this details: Receiver::name. OpSpan covers "::".
type ExprBindData struct {
	Receiver ExprID
	Name     source.StringID
	NameSpan source.Span
	OpSpan   source.Span
}

// ExprCallOpData holds call-operator details: Target::(Receiver, Args...).
// OpSpan covers the "::(" token for diagnostics.
type ExprCallOpData struct {
	Target           ExprID
	Receiver         ExprID
	Args             []ExprID
	OpSpan           source.Span
	HasTrailingComma bool
}
