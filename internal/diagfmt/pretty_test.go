package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"callop/internal/diag"
	"callop/internal/source"
)

func singleDiagBag(fileID source.FileID, start, end uint32) *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynCallOperatorSpace,
		Message:  "whitespace between '::' and '('",
		Primary:  source.Span{File: fileID, Start: start, End: end},
	})
	return bag
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte("f:: (a);\n"))
	bag := singleDiagBag(fileID, 1, 5)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	output := buf.String()

	for _, want := range []string{
		"test.js:1:2:",
		"ERROR",
		"SYN2102",
		"whitespace between '::' and '('",
		"f:: (a);",
		" ^~~~",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPrettyPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/dev/project")
	fileID := fs.AddVirtual("/home/dev/project/src/test.js", []byte("x;\n"))
	bag := singleDiagBag(fileID, 0, 1)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/dev/project/src/test.js"},
		{"relative", PathModeRelative, "src/test.js"},
		{"basename", PathModeBasename, "test.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("expected %q in output:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte("f:: (a);\n"))

	gap := source.Span{File: fileID, Start: 3, End: 4}
	bag := diag.NewBag(10)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynCallOperatorSpace,
		Message:  "whitespace between '::' and '('",
		Primary:  source.Span{File: fileID, Start: 1, End: 5},
		Notes:    []diag.Note{{Span: gap, Msg: "remove this gap"}},
	}
	d = d.WithFix("remove the whitespace between '::' and '('",
		diag.FixEdit{Span: gap, NewText: ""})
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true})
	output := buf.String()

	if !strings.Contains(output, "note: remove this gap (1:4)") {
		t.Errorf("note missing from output:\n%s", output)
	}
	if !strings.Contains(output, "fix: remove the whitespace") {
		t.Errorf("fix missing from output:\n%s", output)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	output = buf.String()
	if strings.Contains(output, "note:") || strings.Contains(output, "fix:") {
		t.Errorf("notes/fixes printed without opt-in:\n%s", output)
	}
}

func TestPrettySeverityLabels(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte("x;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynInfo,
		Message:  "just a warning",
		Primary:  source.Span{File: fileID, Start: 0, End: 1},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.SynInfo,
		Message:  "just info",
		Primary:  source.Span{File: fileID, Start: 0, End: 1},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	output := buf.String()

	if !strings.Contains(output, "WARNING") {
		t.Errorf("WARNING label missing:\n%s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("INFO label missing:\n%s", output)
	}
}

func TestPrettySecondLineSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte("let a = 1;\nlet b = ;\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynExpectExpression,
		Message:  "expected expression",
		Primary:  source.Span{File: fileID, Start: 19, End: 20},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	output := buf.String()

	if !strings.Contains(output, "test.js:2:9:") {
		t.Errorf("expected position 2:9 in output:\n%s", output)
	}
	if !strings.Contains(output, "let b = ;") {
		t.Errorf("source line missing from output:\n%s", output)
	}
}

func TestPrettyDetachedDiagnostic(t *testing.T) {
	fs := source.NewFileSet() // deliberately empty: nothing loaded
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load broken.js: no such file",
		Primary:  source.Span{File: source.NoFile},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true})

	got := buf.String()
	want := "ERROR IO4000: failed to load broken.js: no such file\n"
	if got != want {
		t.Errorf("detached diagnostic rendering:\ngot  %q\nwant %q", got, want)
	}
}
