package parser

import (
	"callop/internal/ast"
	"callop/internal/diag"
	"callop/internal/source"
	"callop/internal/token"
)

// parseExpr is the expression entry point.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr is the Pratt loop over binary operators and the ternary.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		tok := p.lx.Peek()

		if tok.Kind == token.Question && precTernary >= minPrec {
			left, ok = p.parseTernaryExpr(left)
			if !ok {
				return ast.NoExprID, false
			}
			continue
		}

		prec, rightAssoc := p.getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break
		}

		opTok := p.advance()

		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}

		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return ast.NoExprID, false
		}

		op := p.tokenKindToBinaryOp(opTok.Kind)
		finalSpan := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(finalSpan, op, left, right, opTok.Span)
	}

	return left, true
}

// parseTernaryExpr parses `cond ? then : else`; the condition is already in.
// Both branches are right-associative at the ternary tier.
func (p *Parser) parseTernaryExpr(cond ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '?'

	thenExpr, ok := p.parseBinaryExpr(precTernary)
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression after '?'")
		return ast.NoExprID, false
	}

	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in conditional expression"); !ok {
		return ast.NoExprID, false
	}

	elseExpr, ok := p.parseBinaryExpr(precTernary)
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression after ':'")
		return ast.NoExprID, false
	}

	finalSpan := p.exprSpan(cond).Cover(p.exprSpan(elseExpr))
	return p.arenas.Exprs.NewTernary(finalSpan, cond, thenExpr, elseExpr), true
}

// parseUnaryExpr collects prefixes, parses a postfix expression, then
// applies the prefixes right to left.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp
	for {
		op, ok := p.getUnaryOperator(p.lx.Peek().Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		finalSpan := prefixes[i].span.Cover(p.exprSpan(expr))
		expr = p.arenas.Exprs.NewUnary(finalSpan, prefixes[i].op, expr)
	}

	return expr, true
}

// parsePrimaryExpr parses atomic expressions.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		tok := p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.arenas.Intern(tok.Text)), true

	case token.NumberLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitNumber, p.arenas.Intern(tok.Text)), true

	case token.StringLit:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitString, p.arenas.Intern(tok.Text)), true

	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitBool, p.arenas.Intern(tok.Text)), true

	case token.KwNull:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitNull, p.arenas.Intern(tok.Text)), true

	case token.KwUndefined:
		tok := p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.ExprLitUndefined, p.arenas.Intern(tok.Text)), true

	case token.LParen:
		return p.parseParenExpr()

	case token.LBracket:
		return p.parseArrayExpr()

	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+p.lx.Peek().Text+"\"")
		return ast.NoExprID, false
	}
}

// parseParenExpr parses `( expr )`.
func (p *Parser) parseParenExpr() (ast.ExprID, bool) {
	openTok := p.advance() // '('

	inner, ok := p.parseExpr()
	if !ok {
		p.resyncUntil(token.RParen, token.Semicolon)
		if p.at(token.RParen) {
			p.advance()
		}
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return ast.NoExprID, false
	}

	return p.arenas.Exprs.NewGroup(openTok.Span.Cover(closeTok.Span), inner), true
}

// parseArrayExpr parses `[ elem, ... ]` with spread and trailing comma.
func (p *Parser) parseArrayExpr() (ast.ExprID, bool) {
	openTok := p.advance() // '['

	var elems []ast.ExprID
	var trailing bool
	if !p.at(token.RBracket) {
		for {
			elem, ok := p.parseArgExpr()
			if !ok {
				p.resyncUntil(token.RBracket, token.Comma, token.Semicolon)
				if p.at(token.RBracket) {
					p.advance()
				}
				return ast.NoExprID, false
			}
			elems = append(elems, elem)

			if !p.at(token.Comma) {
				break
			}
			p.advance() // ','
			if p.at(token.RBracket) {
				trailing = true
				break
			}
		}
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array elements")
	if !ok {
		return ast.NoExprID, false
	}

	return p.arenas.Exprs.NewArray(openTok.Span.Cover(closeTok.Span), elems, trailing), true
}

// parseArgExpr parses one argument or array element position, which may
// be a spread `...expr`.
func (p *Parser) parseArgExpr() (ast.ExprID, bool) {
	if p.at(token.DotDotDot) {
		spreadTok := p.advance()
		operand, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '...'")
			return ast.NoExprID, false
		}
		finalSpan := spreadTok.Span.Cover(p.exprSpan(operand))
		return p.arenas.Exprs.NewSpread(finalSpan, operand), true
	}
	return p.parseExpr()
}
