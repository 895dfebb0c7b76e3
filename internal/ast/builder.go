package ast

import (
	"callop/internal/source"
)

// Hints sizes the builder's arenas.
type Hints struct{ Files, Stmts, Exprs uint }

// Builder owns all AST arenas for one parse, plus the string interner
// shared with the lexer so names stay comparable by ID.
type Builder struct {
	Files    *Files
	Stmts    *Stmts
	Exprs    *Exprs
	Interner *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Files:    NewFiles(hints.Files),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Interner: source.NewInterner(),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

// PushStmt appends a statement to a file's statement list.
func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}

// Intern is a convenience wrapper over the builder's interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.Interner.Intern(s)
}

// Name resolves an interned name, returning "" for NoStringID.
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.Interner.Lookup(id)
	return s
}
