package lexer

import (
	"callop/internal/diag"
	"callop/internal/source"
)

// Options configure a single Lexer instance.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; lexing continues
	// either way, emitting Invalid tokens for unrecoverable input.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
