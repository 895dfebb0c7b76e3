package parser

import (
	"callop/internal/ast"
	"callop/internal/diag"
	"callop/internal/source"
	"callop/internal/token"
)

// parsePostfixExpr parses a primary expression followed by any chain of
// call suffixes. All suffixes share one tier and associate left, so
// f::(a)::(b) is (f::(a))::(b).
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			expr, ok = p.parseCallExpr(expr, false)

		case token.LBracket:
			expr, ok = p.parseIndexExpr(expr)

		case token.Dot:
			expr, ok = p.parseMemberExpr(expr)

		case token.OptionalDot:
			expr, ok = p.parseOptionalSuffix(expr)

		case token.CallOp:
			expr, ok = p.parseCallOpExpr(expr)

		case token.ColonColon:
			expr, ok = p.parseColonColonSuffix(expr)

		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

// parseCallExpr parses `expr(args...)`. The opening paren is next.
func (p *Parser) parseCallExpr(target ast.ExprID, optional bool) (ast.ExprID, bool) {
	p.advance() // '('

	args, trailing, closeTok, ok := p.parseArgList()
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := p.exprSpan(target).Cover(closeTok.Span)
	return p.arenas.Exprs.NewCall(finalSpan, target, args, optional, trailing), true
}

// parseArgList parses `arg, ... )` after the opening paren has been eaten.
// Returns the arguments, trailing-comma flag and the closing paren token.
func (p *Parser) parseArgList() ([]ast.ExprID, bool, token.Token, bool) {
	var args []ast.ExprID
	var trailing bool

	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseArgExpr()
			if !ok {
				p.resyncUntil(token.RParen, token.Comma, token.Semicolon)
				if p.at(token.RParen) {
					p.advance()
				}
				return nil, false, token.Token{}, false
			}
			args = append(args, arg)

			if !p.at(token.Comma) {
				break
			}
			p.advance() // ','
			if p.at(token.RParen) {
				trailing = true
				break
			}
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
	if !ok {
		p.resyncUntil(token.Semicolon, token.RBrace)
		return nil, false, token.Token{}, false
	}
	return args, trailing, closeTok, true
}

// parseIndexExpr parses `expr[index]`.
func (p *Parser) parseIndexExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['

	index, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected index expression")
		return ast.NoExprID, false
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := p.exprSpan(target).Cover(closeTok.Span)
	return p.arenas.Exprs.NewIndex(finalSpan, target, index), true
}

// parseMemberExpr parses `expr.name`. Keywords are valid property names.
func (p *Parser) parseMemberExpr(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '.'

	nameTok := p.lx.Peek()
	if nameTok.Kind != token.Ident && !nameTok.IsKeyword() {
		p.err(diag.SynExpectMemberName, "expected property name after '.'")
		return ast.NoExprID, false
	}
	p.advance()
	nameID := p.arenas.Intern(nameTok.Text)

	finalSpan := p.exprSpan(target).Cover(nameTok.Span)
	return p.arenas.Exprs.NewMember(finalSpan, target, nameID, nameTok.Span, false), true
}

// parseOptionalSuffix parses `?.name` or `?.(args)`.
func (p *Parser) parseOptionalSuffix(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '?.'

	if p.at(token.LParen) {
		p.advance() // '('
		args, trailing, closeTok, ok := p.parseArgList()
		if !ok {
			return ast.NoExprID, false
		}
		finalSpan := p.exprSpan(target).Cover(closeTok.Span)
		return p.arenas.Exprs.NewCall(finalSpan, target, args, true, trailing), true
	}

	nameTok := p.lx.Peek()
	if nameTok.Kind != token.Ident && !nameTok.IsKeyword() {
		p.err(diag.SynExpectMemberName, "expected property name or '(' after '?.'")
		return ast.NoExprID, false
	}
	p.advance()
	nameID := p.arenas.Intern(nameTok.Text)

	finalSpan := p.exprSpan(target).Cover(nameTok.Span)
	return p.arenas.Exprs.NewMember(finalSpan, target, nameID, nameTok.Span, true), true
}

// parseCallOpExpr parses `expr::(receiver, args...)`. The CallOp token is
// next. The receiver is mandatory.
func (p *Parser) parseCallOpExpr(target ast.ExprID) (ast.ExprID, bool) {
	opTok := p.advance() // '::('

	if p.at(token.RParen) {
		closeTok := p.advance()
		p.reportWith(diag.SynMissingReceiver, diag.SevError,
			opTok.Span.Cover(closeTok.Span),
			"call operator requires a receiver argument",
			[]diag.Note{{
				Span: opTok.Span,
				Msg:  "the first argument of '::(' is the value bound to 'this'",
			}},
			nil)
		return ast.NoExprID, false
	}

	receiver, ok := p.parseArgExpr()
	if !ok {
		p.resyncUntil(token.RParen, token.Semicolon)
		if p.at(token.RParen) {
			p.advance()
		}
		return ast.NoExprID, false
	}

	var args []ast.ExprID
	var trailing bool
	for p.at(token.Comma) {
		p.advance() // ','
		if p.at(token.RParen) {
			trailing = true
			break
		}
		arg, ok := p.parseArgExpr()
		if !ok {
			p.resyncUntil(token.RParen, token.Comma, token.Semicolon)
			if p.at(token.RParen) {
				p.advance()
			}
			return ast.NoExprID, false
		}
		args = append(args, arg)
	}

	if !p.at(token.RParen) {
		p.report(diag.SynUnterminatedCallOperator, diag.SevError,
			p.getDiagnosticSpan(),
			"expected ')' to close call operator")
		p.resyncUntil(token.Semicolon, token.RBrace)
		return ast.NoExprID, false
	}
	closeTok := p.advance()

	finalSpan := p.exprSpan(target).Cover(closeTok.Span)
	return p.arenas.Exprs.NewCallOp(finalSpan, target, receiver, args, opTok.Span, trailing), true
}

// parseColonColonSuffix handles a bare '::' in postfix position. With a
// following '(' this is almost certainly a spaced call operator, which
// the lexer never joins; report it with a fix and parse the arguments for
// recovery. Otherwise it is the bind-this form, accepted only when the
// manifest enables it.
func (p *Parser) parseColonColonSuffix(target ast.ExprID) (ast.ExprID, bool) {
	opTok := p.advance() // '::'

	if p.at(token.LParen) {
		openTok := p.lx.Peek()
		gap := source.Span{
			File:  opTok.Span.File,
			Start: opTok.Span.End,
			End:   openTok.Span.Start,
		}
		p.reportWith(diag.SynCallOperatorSpace, diag.SevError,
			opTok.Span.Cover(openTok.Span),
			"call operator '::(' cannot contain whitespace",
			[]diag.Note{{
				Span: opTok.Span,
				Msg:  "'::' followed by '(' only forms the call operator when written as one contiguous '::('",
			}},
			[]diag.Fix{{
				Title: "remove the whitespace between '::' and '('",
				Edits: []diag.FixEdit{{Span: gap, NewText: ""}},
			}})

		// Recover by parsing the argument list as if it were a call
		// operator, so one stray space does not cascade.
		p.advance() // '('
		if p.at(token.RParen) {
			p.advance()
			return ast.NoExprID, false
		}
		receiver, ok := p.parseArgExpr()
		if !ok {
			p.resyncUntil(token.RParen, token.Semicolon)
			if p.at(token.RParen) {
				p.advance()
			}
			return ast.NoExprID, false
		}
		var args []ast.ExprID
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.RParen) {
				break
			}
			arg, ok := p.parseArgExpr()
			if !ok {
				break
			}
			args = append(args, arg)
		}
		p.resyncUntil(token.RParen, token.Semicolon)
		var endSpan source.Span
		if p.at(token.RParen) {
			endSpan = p.advance().Span
		} else {
			endSpan = p.getDiagnosticSpan()
		}
		finalSpan := p.exprSpan(target).Cover(endSpan)
		return p.arenas.Exprs.NewCallOp(finalSpan, target, receiver, args, opTok.Span, false), false
	}

	if !p.opts.BindThis {
		p.reportWith(diag.SynBindThisDisabled, diag.SevError,
			opTok.Span,
			"bind-this '::' syntax is disabled",
			[]diag.Note{{
				Span: opTok.Span,
				Msg:  "set bind_this = true under [syntax] in callop.toml to enable it",
			}},
			nil)
		return ast.NoExprID, false
	}

	nameID, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoExprID, false
	}

	finalSpan := p.exprSpan(target).Cover(nameSpan)
	return p.arenas.Exprs.NewBind(finalSpan, target, nameID, nameSpan, opTok.Span), true
}
