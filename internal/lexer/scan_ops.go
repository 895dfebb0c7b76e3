package lexer

import (
	"callop/internal/diag"
	"callop/internal/token"
)

// Greedy matching: 3-byte sequences first, then 2-byte, then single bytes.
// The call operator "::(" must be tried before "::" so the contiguous
// three-byte form wins; "::" with anything else after it stays ColonColon.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: lx.text(sp),
		}
	}

	switch {
	case lx.try3(':', ':', '('):
		return emit(token.CallOp)
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try3('=', '=', '='):
		return emit(token.EqEqEq)
	case lx.try3('!', '=', '='):
		return emit(token.BangEqEq)
	case lx.try3('>', '>', '>'):
		return emit(token.UShr)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.tryOptionalDot():
		return emit(token.OptionalDot)
	case lx.try2('?', '?'):
		return emit(token.QuestionQuestion)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	}

	ch := lx.cursor.Peek()
	switch ch {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>', '&', '|', '^', '~',
		'?', ':', ';', ',', '.', '(', ')', '{', '}', '[', ']':
		lx.cursor.Bump()
	default:
		// Unknown rune; consume it whole so UTF-8 is never split.
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '~':
		return emit(token.Tilde)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	default: // ']'
		return emit(token.RBracket)
	}
}

// tryOptionalDot matches "?." unless a digit follows, so "a?.5:b" keeps
// lexing as Question Dot-number, matching the host language.
func (lx *Lexer) tryOptionalDot() bool {
	b0, b1, b2, ok3 := lx.cursor.Peek3()
	if ok3 {
		if b0 != '?' || b1 != '.' {
			return false
		}
		if isDec(b2) {
			return false
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		return true
	}
	return lx.try2('?', '.')
}
