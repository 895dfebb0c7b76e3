package diag

import (
	"callop/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement suggested by a fix.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested source edit attached to a diagnostic.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one reported problem with location and optional context.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// WithFix returns a copy of d with an additional fix suggestion.
func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
