package lexer

import (
	"callop/internal/source"
	"callop/internal/token"
)

// Lexer produces tokens for a single source file. Tokens are scanned on
// demand; Peek buffers at most one token ahead.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	look *token.Token
	hold []token.Trivia
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.scan()
		lx.look = &t
	}
	return *lx.look
}

// Next consumes and returns the next token. After EOF is returned every
// subsequent call returns EOF again.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	return lx.scan()
}

func (lx *Lexer) scan() token.Token {
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		t := token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(lx.cursor.Off),
		}
		lx.attachTrivia(&t)
		return t
	}

	var t token.Token
	b := lx.cursor.Peek()
	switch {
	case isIdentStartByte(b) || b >= 0x80:
		t = lx.scanIdentOrKeyword()
	case isDec(b):
		t = lx.scanNumber()
	case b == '.' && lx.isNumberAfterDot():
		t = lx.scanNumber()
	case b == '"' || b == '\'':
		t = lx.scanString()
	default:
		t = lx.scanOperatorOrPunct()
	}
	lx.attachTrivia(&t)
	return t
}

func (lx *Lexer) attachTrivia(t *token.Token) {
	if len(lx.hold) == 0 {
		return
	}
	t.Leading = lx.hold
	lx.hold = nil
}

// EmptySpan returns a zero-length span at the given offset in this file.
func (lx *Lexer) EmptySpan(off uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: off, End: off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
