// Package testkit holds structural invariant checks shared by tests and
// the fuzz harness.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"callop/internal/ast"
	"callop/internal/source"
)

// CheckSpanInvariants verifies the basic span discipline of a parsed file:
// 1) file.Span stays within the file content bounds
// 2) every statement span is non-empty and contained in file.Span
// 3) file.Span covers the union of statement spans
// An empty file may carry an empty span; a file with statements may not.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points at wrong file: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}
	if len(f.Stmts) > 0 && f.Span.End <= f.Span.Start {
		return fmt.Errorf("file with statements has empty span: %v", f.Span)
	}

	var union source.Span
	haveStmt := false
	for _, stmtID := range f.Stmts {
		stmt := b.Stmts.Get(stmtID)
		if stmt == nil {
			return fmt.Errorf("nil statement for id=%d", stmtID)
		}
		sp := stmt.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("empty statement span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement span file mismatch: got=%d want=%d", sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("statement span %v outside file span %v", sp, f.Span)
		}
		if !haveStmt {
			union = sp
			haveStmt = true
		} else {
			union = union.Cover(sp)
		}
	}
	if haveStmt && (union.Start < f.Span.Start || union.End > f.Span.End) {
		return fmt.Errorf("file span %v does not cover statements %v", f.Span, union)
	}
	return nil
}

// CheckExprInvariants walks every allocated expression and verifies that
// its payload matches its kind, its span stays in bounds, and every
// child reference points at an allocated node.
func CheckExprInvariants(b *ast.Builder, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	total := b.Exprs.Len()

	for raw := uint32(1); raw <= total; raw++ {
		id := ast.ExprID(raw)
		expr := b.Exprs.Get(id)
		if expr == nil {
			return fmt.Errorf("nil expression for id=%d", id)
		}
		if expr.Span.End > lenContent {
			return fmt.Errorf("expr %s span %v beyond content", expr.Kind, expr.Span)
		}
		children, err := exprChildren(b, id, expr)
		if err != nil {
			return err
		}
		for _, child := range children {
			if !child.IsValid() || uint32(child) > total {
				return fmt.Errorf("expr %s references unallocated child %d", expr.Kind, child)
			}
		}
	}
	return nil
}

func exprChildren(b *ast.Builder, id ast.ExprID, expr *ast.Expr) ([]ast.ExprID, error) {
	bad := func() error {
		return fmt.Errorf("expr %s has mismatched payload", expr.Kind)
	}
	switch expr.Kind {
	case ast.ExprIdent:
		if _, ok := b.Exprs.Ident(id); !ok {
			return nil, bad()
		}
		return nil, nil
	case ast.ExprLit:
		if _, ok := b.Exprs.Literal(id); !ok {
			return nil, bad()
		}
		return nil, nil
	case ast.ExprUnary:
		data, ok := b.Exprs.Unary(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Operand}, nil
	case ast.ExprBinary:
		data, ok := b.Exprs.Binary(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Left, data.Right}, nil
	case ast.ExprTernary:
		data, ok := b.Exprs.Ternary(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Cond, data.Then, data.Else}, nil
	case ast.ExprGroup:
		data, ok := b.Exprs.Group(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Inner}, nil
	case ast.ExprArray:
		data, ok := b.Exprs.Array(id)
		if !ok {
			return nil, bad()
		}
		return data.Elems, nil
	case ast.ExprSpread:
		data, ok := b.Exprs.Spread(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Operand}, nil
	case ast.ExprMember:
		data, ok := b.Exprs.Member(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Target}, nil
	case ast.ExprIndex:
		data, ok := b.Exprs.Index(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Target, data.Index}, nil
	case ast.ExprCall:
		data, ok := b.Exprs.Call(id)
		if !ok {
			return nil, bad()
		}
		return append([]ast.ExprID{data.Target}, data.Args...), nil
	case ast.ExprCallOp:
		data, ok := b.Exprs.CallOp(id)
		if !ok {
			return nil, bad()
		}
		return append([]ast.ExprID{data.Target, data.Receiver}, data.Args...), nil
	case ast.ExprBind:
		data, ok := b.Exprs.Bind(id)
		if !ok {
			return nil, bad()
		}
		return []ast.ExprID{data.Receiver}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %d", expr.Kind)
	}
}
