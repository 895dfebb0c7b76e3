package parser

import (
	"testing"

	"callop/internal/ast"
	"callop/internal/diag"
)

func TestBasicLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ast.ExprLitKind
	}{
		{"number", "42;", ast.ExprLitNumber},
		{"float", "3.14;", ast.ExprLitNumber},
		{"string", "\"hello\";", ast.ExprLitString},
		{"true", "true;", ast.ExprLitBool},
		{"false", "false;", ast.ExprLitBool},
		{"null", "null;", ast.ExprLitNull},
		{"undefined", "undefined;", ast.ExprLitUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, arenas := parseOneExpr(t, tt.input)
			lit, ok := arenas.Exprs.Literal(expr)
			if !ok {
				t.Fatalf("want literal, got %v", arenas.Exprs.Get(expr).Kind)
			}
			if lit.Kind != tt.kind {
				t.Errorf("literal kind = %v, want %v", lit.Kind, tt.kind)
			}
		})
	}
}

func TestBinaryOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		op    ast.ExprBinaryOp
	}{
		{"addition", "a + b;", ast.ExprBinaryAdd},
		{"subtraction", "a - b;", ast.ExprBinarySub},
		{"multiplication", "a * b;", ast.ExprBinaryMul},
		{"division", "a / b;", ast.ExprBinaryDiv},
		{"modulo", "a % b;", ast.ExprBinaryMod},
		{"exponent", "a ** b;", ast.ExprBinaryPow},
		{"equality", "a == b;", ast.ExprBinaryEq},
		{"inequality", "a != b;", ast.ExprBinaryNotEq},
		{"strict_equality", "a === b;", ast.ExprBinaryStrictEq},
		{"strict_inequality", "a !== b;", ast.ExprBinaryStrictNeq},
		{"less_than", "a < b;", ast.ExprBinaryLess},
		{"greater_equal", "a >= b;", ast.ExprBinaryGreaterEq},
		{"shift", "a << b;", ast.ExprBinaryShiftLeft},
		{"unsigned_shift", "a >>> b;", ast.ExprBinaryUShiftRight},
		{"logical_and", "a && b;", ast.ExprBinaryLogicalAnd},
		{"logical_or", "a || b;", ast.ExprBinaryLogicalOr},
		{"nullish", "a ?? b;", ast.ExprBinaryNullish},
		{"in", "a in b;", ast.ExprBinaryIn},
		{"instanceof", "a instanceof b;", ast.ExprBinaryInstanceof},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, arenas := parseOneExpr(t, tt.input)
			bin, ok := arenas.Exprs.Binary(expr)
			if !ok {
				t.Fatalf("want binary, got %v", arenas.Exprs.Get(expr).Kind)
			}
			if bin.Op != tt.op {
				t.Errorf("op = %v, want %v", bin.Op, tt.op)
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	// a + b * c parses as a + (b * c).
	expr, arenas := parseOneExpr(t, "a + b * c;")
	root, ok := arenas.Exprs.Binary(expr)
	if !ok || root.Op != ast.ExprBinaryAdd {
		t.Fatal("root is not +")
	}
	right, ok := arenas.Exprs.Binary(root.Right)
	if !ok || right.Op != ast.ExprBinaryMul {
		t.Fatal("right operand is not *")
	}
}

func TestExponentRightAssociative(t *testing.T) {
	// a ** b ** c parses as a ** (b ** c).
	expr, arenas := parseOneExpr(t, "a ** b ** c;")
	root, _ := arenas.Exprs.Binary(expr)
	if root == nil || root.Op != ast.ExprBinaryPow {
		t.Fatal("root is not **")
	}
	if right, ok := arenas.Exprs.Binary(root.Right); !ok || right.Op != ast.ExprBinaryPow {
		t.Fatal("** is not right-associative")
	}
}

func TestAdditionLeftAssociative(t *testing.T) {
	// a - b - c parses as (a - b) - c.
	expr, arenas := parseOneExpr(t, "a - b - c;")
	root, _ := arenas.Exprs.Binary(expr)
	if root == nil || root.Op != ast.ExprBinarySub {
		t.Fatal("root is not -")
	}
	if left, ok := arenas.Exprs.Binary(root.Left); !ok || left.Op != ast.ExprBinarySub {
		t.Fatal("- is not left-associative")
	}
}

func TestUnaryOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		op    ast.ExprUnaryOp
	}{
		{"not", "!a;", ast.ExprUnaryNot},
		{"minus", "-a;", ast.ExprUnaryNeg},
		{"plus", "+a;", ast.ExprUnaryPos},
		{"bitnot", "~a;", ast.ExprUnaryBitNot},
		{"typeof", "typeof a;", ast.ExprUnaryTypeof},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, arenas := parseOneExpr(t, tt.input)
			un, ok := arenas.Exprs.Unary(expr)
			if !ok {
				t.Fatalf("want unary, got %v", arenas.Exprs.Get(expr).Kind)
			}
			if un.Op != tt.op {
				t.Errorf("op = %v, want %v", un.Op, tt.op)
			}
		})
	}
}

func TestTernary(t *testing.T) {
	expr, arenas := parseOneExpr(t, "a ? b : c;")
	tern, ok := arenas.Exprs.Ternary(expr)
	if !ok {
		t.Fatal("want ternary")
	}
	for _, branch := range []ast.ExprID{tern.Cond, tern.Then, tern.Else} {
		if _, ok := arenas.Exprs.Ident(branch); !ok {
			t.Error("ternary branch is not an identifier")
		}
	}

	// Condition with a number after ?. stays a ternary (lexer digit guard).
	expr, arenas = parseOneExpr(t, "a?.5:b;")
	if _, ok := arenas.Exprs.Ternary(expr); !ok {
		t.Fatal("a?.5:b did not parse as ternary")
	}
}

func TestMemberAndIndexChains(t *testing.T) {
	expr, arenas := parseOneExpr(t, "a.b[c].d;")
	outer, ok := arenas.Exprs.Member(expr)
	if !ok || arenas.Name(outer.Name) != "d" {
		t.Fatal("outermost is not .d")
	}
	idx, ok := arenas.Exprs.Index(outer.Target)
	if !ok {
		t.Fatal("middle is not an index")
	}
	inner, ok := arenas.Exprs.Member(idx.Target)
	if !ok || arenas.Name(inner.Name) != "b" {
		t.Fatal("innermost is not .b")
	}
}

func TestOptionalChaining(t *testing.T) {
	expr, arenas := parseOneExpr(t, "a?.b;")
	mem, ok := arenas.Exprs.Member(expr)
	if !ok || !mem.Optional {
		t.Fatal("a?.b is not an optional member")
	}

	expr, arenas = parseOneExpr(t, "f?.(x);")
	call, ok := arenas.Exprs.Call(expr)
	if !ok || !call.Optional {
		t.Fatal("f?.(x) is not an optional call")
	}
	if len(call.Args) != 1 {
		t.Errorf("args = %d, want 1", len(call.Args))
	}
}

func TestKeywordPropertyNames(t *testing.T) {
	expr, arenas := parseOneExpr(t, "a.in;")
	mem, ok := arenas.Exprs.Member(expr)
	if !ok || arenas.Name(mem.Name) != "in" {
		t.Fatal("keyword property name rejected")
	}
}

func TestGroupAndArray(t *testing.T) {
	expr, arenas := parseOneExpr(t, "(a + b) * c;")
	root, _ := arenas.Exprs.Binary(expr)
	if root == nil || root.Op != ast.ExprBinaryMul {
		t.Fatal("root is not *")
	}
	if _, ok := arenas.Exprs.Group(root.Left); !ok {
		t.Fatal("left operand is not a group")
	}

	expr, arenas = parseOneExpr(t, "[1, 2, ...rest,];")
	arr, ok := arenas.Exprs.Array(expr)
	if !ok {
		t.Fatal("want array literal")
	}
	if len(arr.Elems) != 3 || !arr.HasTrailingComma {
		t.Fatalf("elems = %d trailing = %v", len(arr.Elems), arr.HasTrailingComma)
	}
}

func TestCallWithSpread(t *testing.T) {
	expr, arenas := parseOneExpr(t, "f(a, ...xs, b,);")
	call, ok := arenas.Exprs.Call(expr)
	if !ok {
		t.Fatal("want call")
	}
	if len(call.Args) != 3 || !call.HasTrailingComma {
		t.Fatalf("args = %d trailing = %v", len(call.Args), call.HasTrailingComma)
	}
	if arenas.Exprs.Get(call.Args[1]).Kind != ast.ExprSpread {
		t.Error("middle arg is not a spread")
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unclosed_paren", "(a;", diag.SynUnclosedParen},
		{"unclosed_bracket", "[a;", diag.SynUnclosedBracket},
		{"unclosed_index", "a[b;", diag.SynUnclosedBracket},
		{"missing_member_name", "a.;", diag.SynExpectMemberName},
		{"missing_operand", "a + ;", diag.SynExpectExpression},
		{"missing_semicolon", "a b;", diag.SynExpectSemicolon},
		{"bare_question", "a ? b;", diag.SynExpectColon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantError(t, tt.input, tt.code)
		})
	}
}

func TestErrorRecoveryAcrossStatements(t *testing.T) {
	// An error in the first statement must not hide the second.
	res, arenas := parseSource(t, "(a;\nf::(r);")
	if !res.Bag.HasErrors() {
		t.Fatal("expected an error in the first statement")
	}
	stmts := arenas.Files.Get(res.File).Stmts
	if len(stmts) != 1 {
		t.Fatalf("recovered statements = %d, want 1", len(stmts))
	}
	data, ok := arenas.Stmts.Expr(stmts[0])
	if !ok {
		t.Fatal("recovered statement is not an expression statement")
	}
	if _, ok := arenas.Exprs.CallOp(data.Expr); !ok {
		t.Error("recovered statement is not the call operator")
	}
}

func TestMaxErrorsCap(t *testing.T) {
	res, _ := parseSourceOpts(t, "(;(;(;(;(;(;", Options{MaxErrors: 2})
	var errs int
	for _, d := range res.Bag.Items() {
		if d.Severity == diag.SevError {
			errs++
		}
	}
	if errs > 2 {
		t.Fatalf("reported %d errors, cap is 2", errs)
	}
}
