package parser

import (
	"fmt"
	"strings"
	"testing"

	"callop/internal/ast"
	"callop/internal/diag"
	"callop/internal/lexer"
	"callop/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (Result, *ast.Builder) {
	t.Helper()
	return parseSourceOpts(t, input, Options{MaxErrors: 100})
}

func parseSourceOpts(t *testing.T, input string, opts Options) (Result, *ast.Builder) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	opts.Reporter = reporter

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseFile(fs, lx, arenas, opts)
	return res, arenas
}

// parseOneExpr parses a single expression statement and returns its expression.
func parseOneExpr(t *testing.T, input string) (ast.ExprID, *ast.Builder) {
	t.Helper()
	res, arenas := parseSource(t, input)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %s", input, diagnosticsSummary(res.Bag))
	}
	stmts := arenas.Files.Get(res.File).Stmts
	if len(stmts) != 1 {
		t.Fatalf("statement count for %q: got %d, want 1", input, len(stmts))
	}
	data, ok := arenas.Stmts.Expr(stmts[0])
	if !ok {
		t.Fatalf("first statement of %q is not an expression statement", input)
	}
	return data.Expr, arenas
}

// wantError asserts that parsing input reports the given code.
func wantError(t *testing.T, input string, code diag.Code) *diag.Bag {
	t.Helper()
	res, _ := parseSource(t, input)
	if !res.Bag.HasErrors() {
		t.Fatalf("expected %s for %q, got no errors", code.ID(), input)
	}
	for _, d := range res.Bag.Items() {
		if d.Code == code {
			return res.Bag
		}
	}
	t.Fatalf("expected %s for %q, got: %s", code.ID(), input, diagnosticsSummary(res.Bag))
	return nil
}
