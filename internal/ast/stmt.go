package ast

import (
	"callop/internal/source"
)

// StmtKind enumerates statement node kinds.
type StmtKind uint8

const (
	// StmtExpr is an expression statement.
	StmtExpr StmtKind = iota
	// StmtLet is a `let` or `const` declaration.
	StmtLet
)

var stmtKindNames = [...]string{
	StmtExpr: "Expr",
	StmtLet:  "Let",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Unknown"
}

// Stmt is a statement node.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtExprData holds an expression statement.
type StmtExprData struct {
	Expr ExprID
}

// StmtLetData holds a declaration. Value is NoExprID for a bare `let x;`.
type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
	IsConst  bool
}

// Stmts manages allocation of statement nodes and their payloads.
type Stmts struct {
	Arena *Arena[Stmt]
	Exprs *Arena[StmtExprData]
	Lets  *Arena[StmtLetData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Stmts{
		Arena: NewArena[Stmt](capHint),
		Exprs: NewArena[StmtExprData](capHint),
		Lets:  NewArena[StmtLetData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement node with the given ID, or nil.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement payload.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewLet creates a declaration statement.
func (s *Stmts) NewLet(span source.Span, name source.StringID, nameSpan source.Span, value ExprID, isConst bool) StmtID {
	payload := s.Lets.Allocate(StmtLetData{
		Name:     name,
		NameSpan: nameSpan,
		Value:    value,
		IsConst:  isConst,
	})
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the declaration payload.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}
