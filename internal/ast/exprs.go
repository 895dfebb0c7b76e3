package ast

import (
	"callop/internal/source"
)

// Exprs manages allocation of expression nodes and their payloads.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Literals  *Arena[ExprLiteralData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Ternaries *Arena[ExprTernaryData]
	Groups    *Arena[ExprGroupData]
	Arrays    *Arena[ExprArrayData]
	Spreads   *Arena[ExprSpreadData]
	Members   *Arena[ExprMemberData]
	Indices   *Arena[ExprIndexData]
	Calls     *Arena[ExprCallData]
	CallOps   *Arena[ExprCallOpData]
	Binds     *Arena[ExprBindData]
}

// NewExprs creates per-kind arenas preallocated with capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint),
		Literals:  NewArena[ExprLiteralData](capHint),
		Unaries:   NewArena[ExprUnaryData](capHint),
		Binaries:  NewArena[ExprBinaryData](capHint),
		Ternaries: NewArena[ExprTernaryData](capHint),
		Groups:    NewArena[ExprGroupData](capHint),
		Arrays:    NewArena[ExprArrayData](capHint),
		Spreads:   NewArena[ExprSpreadData](capHint),
		Members:   NewArena[ExprMemberData](capHint),
		Indices:   NewArena[ExprIndexData](capHint),
		Calls:     NewArena[ExprCallData](capHint),
		CallOps:   NewArena[ExprCallOpData](capHint),
		Binds:     NewArena[ExprBindData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression node with the given ID, or nil.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Len returns the number of allocated expression nodes.
func (e *Exprs) Len() uint32 {
	return e.Arena.Len()
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier payload.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal payload.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewUnary creates a prefix expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the prefix payload.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID, opSpan source.Span) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right, OpSpan: opSpan})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary payload.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewTernary creates a conditional expression.
func (e *Exprs) NewTernary(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ternaries.Allocate(ExprTernaryData{Cond: cond, Then: then, Else: els})
	return e.new(ExprTernary, span, PayloadID(payload))
}

// Ternary returns the conditional payload.
func (e *Exprs) Ternary(id ExprID) (*ExprTernaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(expr.Payload)), true
}

// NewGroup creates a parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the group payload.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewArray creates an array literal expression.
func (e *Exprs) NewArray(span source.Span, elems []ExprID, trailing bool) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{
		Elems:            append([]ExprID(nil), elems...),
		HasTrailingComma: trailing,
	})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array payload.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewSpread creates a spread expression.
func (e *Exprs) NewSpread(span source.Span, operand ExprID) ExprID {
	payload := e.Spreads.Allocate(ExprSpreadData{Operand: operand})
	return e.new(ExprSpread, span, PayloadID(payload))
}

// Spread returns the spread payload.
func (e *Exprs) Spread(id ExprID) (*ExprSpreadData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSpread {
		return nil, false
	}
	return e.Spreads.Get(uint32(expr.Payload)), true
}

// NewMember creates a member access expression.
func (e *Exprs) NewMember(span source.Span, target ExprID, name source.StringID, nameSpan source.Span, optional bool) ExprID {
	payload := e.Members.Allocate(ExprMemberData{
		Target:   target,
		Name:     name,
		NameSpan: nameSpan,
		Optional: optional,
	})
	return e.new(ExprMember, span, PayloadID(payload))
}

// NewSyntheticMember creates a member access not present in source text.
func (e *Exprs) NewSyntheticMember(span source.Span, target ExprID, name source.StringID, nameSpan source.Span) ExprID {
	payload := e.Members.Allocate(ExprMemberData{
		Target:    target,
		Name:      name,
		NameSpan:  nameSpan,
		Synthetic: true,
	})
	return e.new(ExprMember, span, PayloadID(payload))
}

// Member returns the member payload.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewIndex creates a computed member access expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the computed member payload.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewCall creates a call expression.
func (e *Exprs) NewCall(span source.Span, target ExprID, args []ExprID, optional, trailing bool) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Target:           target,
		Args:             append([]ExprID(nil), args...),
		Optional:         optional,
		HasTrailingComma: trailing,
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call payload.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewCallOp creates a call-operator expression.
func (e *Exprs) NewCallOp(span source.Span, target, receiver ExprID, args []ExprID, opSpan source.Span, trailing bool) ExprID {
	payload := e.CallOps.Allocate(ExprCallOpData{
		Target:           target,
		Receiver:         receiver,
		Args:             append([]ExprID(nil), args...),
		OpSpan:           opSpan,
		HasTrailingComma: trailing,
	})
	return e.new(ExprCallOp, span, PayloadID(payload))
}

// NewBind creates a bind-this expression.
func (e *Exprs) NewBind(span source.Span, receiver ExprID, name source.StringID, nameSpan, opSpan source.Span) ExprID {
	payload := e.Binds.Allocate(ExprBindData{
		Receiver: receiver,
		Name:     name,
		NameSpan: nameSpan,
		OpSpan:   opSpan,
	})
	return e.new(ExprBind, span, PayloadID(payload))
}

// Bind returns the bind-this payload.
func (e *Exprs) Bind(id ExprID) (*ExprBindData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBind {
		return nil, false
	}
	return e.Binds.Get(uint32(expr.Payload)), true
}

// CallOp returns the call-operator payload.
func (e *Exprs) CallOp(id ExprID) (*ExprCallOpData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCallOp {
		return nil, false
	}
	return e.CallOps.Get(uint32(expr.Payload)), true
}
