package parser

import (
	"callop/internal/ast"
	"callop/internal/diag"
	"callop/internal/token"
)

// parseStmt dispatches on the first token of a statement.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet, token.KwConst:
		return p.parseLetStmt()
	case token.Semicolon:
		// Empty statement; eat and report nothing.
		p.advance()
		return ast.NoStmtID, false
	default:
		return p.parseExprStmt()
	}
}

// parseLetStmt parses `let name = expr;` / `const name = expr;`.
// The initializer is optional for let, mandatory for const.
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	kwTok := p.advance() // 'let' or 'const'
	isConst := kwTok.Kind == token.KwConst

	nameID, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance() // '='
		value, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	} else if isConst {
		p.err(diag.SynExpectExpression, "const declaration requires an initializer")
		return ast.NoStmtID, false
	}

	endSpan := nameSpan
	if value != ast.NoExprID {
		endSpan = p.exprSpan(value)
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
	if ok {
		endSpan = semiTok.Span
	}

	finalSpan := kwTok.Span.Cover(endSpan)
	return p.arenas.Stmts.NewLet(finalSpan, nameID, nameSpan, value, isConst), true
}

// parseExprStmt parses `expr;`.
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	finalSpan := p.exprSpan(expr)
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression")
	if ok {
		finalSpan = finalSpan.Cover(semiTok.Span)
	}

	return p.arenas.Stmts.NewExpr(finalSpan, expr), true
}
