package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"callop/internal/diag"
	"callop/internal/source"
)

var (
	errColor   = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
	noteColor  = color.New(color.FgBlue)
	caretColor = color.New(color.FgGreen, color.Bold)
)

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// Pretty renders diagnostics for humans, one block per item:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  <caret underline>
//
// followed by notes and fix suggestions when enabled. Callers are
// expected to Sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	// Detached diagnostics (load failures) have no file to show context
	// from; the message already names the path.
	if d.Primary.Detached() {
		fmt.Fprintf(w, "%s %s: %s\n",
			severityLabel(d.Severity, opts.Color),
			d.Code.ID(),
			d.Message)
		return
	}

	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatFilePath(f, fs, opts.PathMode),
		start.Line, start.Col,
		severityLabel(d.Severity, opts.Color),
		d.Code.ID(),
		d.Message)

	writeSourceContext(w, f, fs, d.Primary, opts.Color)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s (%d:%d)\n", label, note.Msg, noteStart.Line, noteStart.Col)
		}
	}

	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			label := "fix"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s\n", label, fix.Title)
		}
	}
}

// writeSourceContext prints the first line covered by span with a caret
// underline aligned under the spanned text. Widths are computed with
// runewidth so wide runes do not skew the caret.
func writeSourceContext(w io.Writer, f *source.File, fs *source.FileSet, span source.Span, colored bool) {
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" && span.Len() == 0 && start.Col == 1 {
		return
	}

	fmt.Fprintf(w, "  %s\n", expandTabs(line))

	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	pad := runewidth.StringWidth(expandTabs(line[:startCol]))

	underlineEnd := len(line)
	if start.Line == end.Line {
		if c := int(end.Col) - 1; c < underlineEnd {
			underlineEnd = c
		}
	}
	width := runewidth.StringWidth(expandTabs(line[startCol:underlineEnd]))
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
