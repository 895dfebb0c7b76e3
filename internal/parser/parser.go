package parser

import (
	"slices"

	"callop/internal/ast"
	"callop/internal/diag"
	"callop/internal/lexer"
	"callop/internal/source"
	"callop/internal/token"
)

// Options configure a single parse.
type Options struct {
	// MaxErrors caps reported errors; 0 means unlimited.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	// BindThis enables the receiver::name grammar. Off by default;
	// the project manifest decides.
	BindThis bool
}

// Enough reports whether the error cap has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result of parsing one file.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
}

// ParseFile parses one file into the builder's arenas. The lexer must be
// constructed over a file from fs.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(lx.EmptySpan(0)),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(0),
	}

	p.parseStmts()

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = br.Bag
	case diag.BagReporter:
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseStmts is the top-level loop: statements until EOF.
func (p *Parser) parseStmts() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		stmtID, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
		} else {
			p.arenas.PushStmt(p.file, stmtID)
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// resyncStmt recovers after a statement-level error: skip to ';' or the
// next statement starter, eating the semicolon if that is what stopped us.
func (p *Parser) resyncStmt() {
	p.resyncUntil(token.Semicolon, token.KwLet, token.KwConst)
	if p.at(token.Semicolon) {
		p.advance()
	}
}
