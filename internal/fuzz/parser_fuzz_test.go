package fuzztests

import (
	"testing"
	"time"

	"callop/internal/ast"
	"callop/internal/desugar"
	"callop/internal/diag"
	"callop/internal/lexer"
	"callop/internal/parser"
	"callop/internal/source"
	"callop/internal/testkit"
)

// parseTimeout flags inputs that send the parser into a loop.
const parseTimeout = 5 * time.Second

func fuzzParse(input []byte, bindThis bool) (*ast.Builder, ast.FileID, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.js", input)
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: 128,
		BindThis:  bindThis,
	})
	return builder, res.File, file
}

func checkInvariants(t *testing.T, builder *ast.Builder, fileID ast.FileID, file *source.File, input []byte) {
	t.Helper()
	if err := testkit.CheckSpanInvariants(builder, fileID, file); err != nil {
		t.Fatalf("span invariant violated on %q: %v", truncateForLog(input, 200), err)
	}
	if err := testkit.CheckExprInvariants(builder, file); err != nil {
		t.Fatalf("expression invariant violated on %q: %v", truncateForLog(input, 200), err)
	}
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		builder, fileID, file := fuzzParse(input, false)
		checkInvariants(t, builder, fileID, file, input)
		builder, fileID, file = fuzzParse(input, true)
		checkInvariants(t, builder, fileID, file, input)
	})
}

// FuzzParseDesugar checks that desugaring any parse output never panics,
// that a second pass is always a no-op, and that the rewritten tree still
// satisfies the structural invariants.
func FuzzParseDesugar(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)
		builder, fileID, file := fuzzParse(input, false)
		desugar.File(builder)
		if n := desugar.File(builder); n != 0 {
			t.Fatalf("second desugar pass rewrote %d nodes", n)
		}
		checkInvariants(t, builder, fileID, file, input)
	})
}

func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("let x = 1\nlet y = 2;"))
	f.Add([]byte("x + y\nlet z = 3;"))
	f.Add([]byte("((((((((((a))))))))));"))
	f.Add([]byte("f::(f::(f::(f::(r))));"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _, _ = fuzzParse(input, false)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected on input (%d bytes): %q",
				len(input), truncateForLog(input, 200))
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
