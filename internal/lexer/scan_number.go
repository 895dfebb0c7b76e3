package lexer

import (
	"callop/internal/diag"
	"callop/internal/token"
)

// scanNumber scans numeric literals: 0, 123, 0b..., 0o..., 0x..., 1.5,
// .5, 1e-3, 1.0e+10, with '_' separators allowed between digits.
// All numbers lex as NumberLit; the host language has one number type.
// Malformed forms report to the Reporter and yield Invalid.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// Leading dot: ".digits" (caller checked isNumberAfterDot).
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		return lx.scanExponent(start)
	}

	// Leading 0 with a base prefix?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.scanDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				return lx.badNumber(start, "expected binary digits after '0b'")
			}
			return lx.emitNumber(start)
		case 'o', 'O':
			lx.cursor.Bump()
			if !lx.scanDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
				return lx.badNumber(start, "expected octal digits after '0o'")
			}
			return lx.emitNumber(start)
		case 'x', 'X':
			lx.cursor.Bump()
			if !lx.scanDigits(isHex) {
				return lx.badNumber(start, "expected hex digits after '0x'")
			}
			return lx.emitNumber(start)
		default:
			// plain "0", possibly with fraction/exponent below
		}
	}

	// Decimal integer part.
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// Fraction. A bare trailing dot is a valid literal ("1.").
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	return lx.scanExponent(start)
}

// scanDigits consumes at least one digit accepted by ok, allowing '_'
// separators. Returns false when no digit was consumed.
func (lx *Lexer) scanDigits(ok func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		if ok(b) {
			seen = true
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	return seen
}

func (lx *Lexer) scanExponent(start Mark) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after exponent")
		}
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}
	return lx.emitNumber(start)
}

func (lx *Lexer) emitNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
