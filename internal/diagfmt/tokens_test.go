package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"callop/internal/lexer"
	"callop/internal/source"
	"callop/internal/token"
)

func lexForDump(t *testing.T, input string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, fs
		}
	}
}

func TestFormatTokensPretty(t *testing.T) {
	tokens, fs := lexForDump(t, "f::(a); // done\n")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Ident",
		`"f"`,
		"CallOp",
		"at 1:2-1:5",
		"RParen",
		"Semicolon",
		"EOF",
		"leading: Space, LineComment, Newline",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	// f, ::(, a, ), ;, EOF
	if len(lines) != 6 {
		t.Errorf("line count: got %d, want 6\n%s", len(lines), output)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	tokens, _ := lexForDump(t, "f::(a);")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatalf("FormatTokensJSON failed: %v", err)
	}

	var output []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if len(output) != 6 {
		t.Fatalf("token count: got %d, want 6", len(output))
	}
	if output[0].Kind != "Ident" || output[0].Text != "f" {
		t.Errorf("first token: got %s %q", output[0].Kind, output[0].Text)
	}
	if output[1].Kind != "CallOp" {
		t.Errorf("second token: got %s, want CallOp", output[1].Kind)
	}
	if output[1].Span.Start != 1 || output[1].Span.End != 4 {
		t.Errorf("call-op span: got %d..%d, want 1..4", output[1].Span.Start, output[1].Span.End)
	}
	if output[len(output)-1].Kind != "EOF" {
		t.Errorf("last token: got %s, want EOF", output[len(output)-1].Kind)
	}
}
