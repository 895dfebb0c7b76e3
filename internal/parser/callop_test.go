package parser

import (
	"testing"

	"callop/internal/ast"
	"callop/internal/diag"
)

func TestCallOperatorBasic(t *testing.T) {
	expr, arenas := parseOneExpr(t, "f::(recv);")
	data, ok := arenas.Exprs.CallOp(expr)
	if !ok {
		t.Fatalf("want CallOp node, got %v", arenas.Exprs.Get(expr).Kind)
	}

	target, ok := arenas.Exprs.Ident(data.Target)
	if !ok || arenas.Name(target.Name) != "f" {
		t.Errorf("target is not ident f")
	}
	recv, ok := arenas.Exprs.Ident(data.Receiver)
	if !ok || arenas.Name(recv.Name) != "recv" {
		t.Errorf("receiver is not ident recv")
	}
	if len(data.Args) != 0 {
		t.Errorf("args = %v, want none", data.Args)
	}
}

func TestCallOperatorWithArgs(t *testing.T) {
	expr, arenas := parseOneExpr(t, "f::(recv, 1, \"two\", ...rest);")
	data, ok := arenas.Exprs.CallOp(expr)
	if !ok {
		t.Fatal("want CallOp node")
	}
	if len(data.Args) != 3 {
		t.Fatalf("args = %d, want 3", len(data.Args))
	}
	if arenas.Exprs.Get(data.Args[2]).Kind != ast.ExprSpread {
		t.Errorf("last arg kind = %v, want Spread", arenas.Exprs.Get(data.Args[2]).Kind)
	}
}

func TestCallOperatorTrailingComma(t *testing.T) {
	expr, arenas := parseOneExpr(t, "f::(recv, a,);")
	data, ok := arenas.Exprs.CallOp(expr)
	if !ok {
		t.Fatal("want CallOp node")
	}
	if !data.HasTrailingComma {
		t.Error("trailing comma not recorded")
	}
	if len(data.Args) != 1 {
		t.Errorf("args = %d, want 1", len(data.Args))
	}
}

func TestCallOperatorChainsLeft(t *testing.T) {
	// f::(a)::(b) must parse as (f::(a))::(b).
	expr, arenas := parseOneExpr(t, "f::(a)::(b);")
	outer, ok := arenas.Exprs.CallOp(expr)
	if !ok {
		t.Fatal("outer node is not CallOp")
	}
	recv, ok := arenas.Exprs.Ident(outer.Receiver)
	if !ok || arenas.Name(recv.Name) != "b" {
		t.Error("outer receiver is not b")
	}
	inner, ok := arenas.Exprs.CallOp(outer.Target)
	if !ok {
		t.Fatal("outer target is not CallOp")
	}
	innerRecv, ok := arenas.Exprs.Ident(inner.Receiver)
	if !ok || arenas.Name(innerRecv.Name) != "a" {
		t.Error("inner receiver is not a")
	}
}

func TestCallOperatorMixesWithCallSuffixes(t *testing.T) {
	// obj.method::(recv)(x) chains member, call operator, then plain call.
	expr, arenas := parseOneExpr(t, "obj.method::(recv)(x);")
	call, ok := arenas.Exprs.Call(expr)
	if !ok {
		t.Fatal("outermost node is not Call")
	}
	op, ok := arenas.Exprs.CallOp(call.Target)
	if !ok {
		t.Fatal("call target is not CallOp")
	}
	if _, ok := arenas.Exprs.Member(op.Target); !ok {
		t.Error("call-operator target is not a member access")
	}
}

func TestCallOperatorBindsTighterThanBinary(t *testing.T) {
	expr, arenas := parseOneExpr(t, "a + f::(r);")
	bin, ok := arenas.Exprs.Binary(expr)
	if !ok || bin.Op != ast.ExprBinaryAdd {
		t.Fatal("want binary + at the root")
	}
	if _, ok := arenas.Exprs.CallOp(bin.Right); !ok {
		t.Error("right operand is not CallOp")
	}
}

func TestCallOperatorMissingReceiver(t *testing.T) {
	wantError(t, "f::();", diag.SynMissingReceiver)
	// An ordinary empty call still parses.
	expr, arenas := parseOneExpr(t, "f();")
	call, ok := arenas.Exprs.Call(expr)
	if !ok || len(call.Args) != 0 {
		t.Error("f() did not parse as an empty call")
	}
}

func TestCallOperatorUnterminated(t *testing.T) {
	wantError(t, "f::(recv, a;", diag.SynUnterminatedCallOperator)
	wantError(t, "f::(recv", diag.SynUnterminatedCallOperator)
}

func TestCallOperatorSpaced(t *testing.T) {
	bag := wantError(t, "f:: (a);", diag.SynCallOperatorSpace)
	// The diagnostic suggests deleting the gap.
	var sawFix bool
	for _, d := range bag.Items() {
		if d.Code == diag.SynCallOperatorSpace && len(d.Fixes) > 0 {
			sawFix = true
			edits := d.Fixes[0].Edits
			if len(edits) != 1 || edits[0].NewText != "" {
				t.Errorf("fix edits = %+v, want a single deletion", edits)
			}
		}
	}
	if !sawFix {
		t.Error("SynCallOperatorSpace carried no fix")
	}
}

func TestCallOperatorSpanCoversWholeForm(t *testing.T) {
	input := "f::(r, a);"
	expr, arenas := parseOneExpr(t, input)
	node := arenas.Exprs.Get(expr)
	if node.Span.Start != 0 || node.Span.End != 9 {
		t.Errorf("span = [%d,%d), want [0,9)", node.Span.Start, node.Span.End)
	}
	data, _ := arenas.Exprs.CallOp(expr)
	if data.OpSpan.Start != 1 || data.OpSpan.End != 4 {
		t.Errorf("OpSpan = [%d,%d), want [1,4)", data.OpSpan.Start, data.OpSpan.End)
	}
}

func TestCallOperatorReceiverMayBeSpread(t *testing.T) {
	// `f::(...xs)` is grammatically a spread in receiver position; the
	// parser accepts it and leaves the semantics to later stages.
	expr, arenas := parseOneExpr(t, "f::(...xs);")
	data, ok := arenas.Exprs.CallOp(expr)
	if !ok {
		t.Fatal("want CallOp node")
	}
	if arenas.Exprs.Get(data.Receiver).Kind != ast.ExprSpread {
		t.Error("receiver is not the spread expression")
	}
}

func TestBindThisDisabledByDefault(t *testing.T) {
	wantError(t, "f::x;", diag.SynBindThisDisabled)
}

func TestBindThisEnabled(t *testing.T) {
	res, arenas := parseSourceOpts(t, "recv::method;", Options{MaxErrors: 100, BindThis: true})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(res.Bag))
	}
	stmts := arenas.Files.Get(res.File).Stmts
	data, ok := arenas.Stmts.Expr(stmts[0])
	if !ok {
		t.Fatal("not an expression statement")
	}
	bind, ok := arenas.Exprs.Bind(data.Expr)
	if !ok {
		t.Fatalf("want Bind node, got %v", arenas.Exprs.Get(data.Expr).Kind)
	}
	if arenas.Name(bind.Name) != "method" {
		t.Errorf("bind name = %q, want method", arenas.Name(bind.Name))
	}
}

func TestBindThisEnabledStillRejectsSpacedOperator(t *testing.T) {
	res, _ := parseSourceOpts(t, "f:: (a);", Options{MaxErrors: 100, BindThis: true})
	var found bool
	for _, d := range res.Bag.Items() {
		if d.Code == diag.SynCallOperatorSpace {
			found = true
		}
	}
	if !found {
		t.Fatalf("want SynCallOperatorSpace, got: %s", diagnosticsSummary(res.Bag))
	}
}
