package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"callop/internal/ast"
	"callop/internal/source"
)

// ASTNodeOutput is a JSON-friendly view of one AST node.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTPretty writes an ASCII tree of the file rooted at fileID.
// Synthetic member nodes produced by the call-operator rewrite are
// marked so pre- and post-rewrite dumps can be told apart.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}

	fmt.Fprintf(w, "File (span: %s)\n", formatSpan(file.Span, fs))

	for i, stmtID := range file.Stmts {
		isLast := i == len(file.Stmts)-1
		var prefix string
		if isLast {
			fmt.Fprintf(w, "└─ Stmt[%d]: ", i)
			prefix = "   "
		} else {
			fmt.Fprintf(w, "├─ Stmt[%d]: ", i)
			prefix = "│  "
		}
		formatStmtPretty(w, builder, stmtID, fs, prefix)
	}

	return nil
}

func formatStmtPretty(w io.Writer, builder *ast.Builder, stmtID ast.StmtID, fs *source.FileSet, prefix string) {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		fmt.Fprintln(w, "<nil>")
		return
	}

	fmt.Fprintf(w, "%s (span: %s)\n", stmt.Kind.String(), formatSpan(stmt.Span, fs))

	switch stmt.Kind {
	case ast.StmtExpr:
		if data, ok := builder.Stmts.Expr(stmtID); ok {
			writeChild(w, prefix, true, "Expr: ")
			formatExprPretty(w, builder, data.Expr, fs, childPrefix(prefix, true))
		}
	case ast.StmtLet:
		if data, ok := builder.Stmts.Let(stmtID); ok {
			keyword := "let"
			if data.IsConst {
				keyword = "const"
			}
			hasValue := data.Value.IsValid()
			writeChild(w, prefix, !hasValue, "")
			fmt.Fprintf(w, "Name: %s (%s)\n", builder.Name(data.Name), keyword)
			if hasValue {
				writeChild(w, prefix, true, "Value: ")
				formatExprPretty(w, builder, data.Value, fs, childPrefix(prefix, true))
			}
		}
	}
}

func formatExprPretty(w io.Writer, builder *ast.Builder, exprID ast.ExprID, fs *source.FileSet, prefix string) {
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		fmt.Fprintln(w, "<nil>")
		return
	}

	label := exprLabel(builder, exprID, expr)
	fmt.Fprintf(w, "%s (span: %s)\n", label, formatSpan(expr.Span, fs))

	children := exprChildren(builder, exprID, expr)
	for i, child := range children {
		isLast := i == len(children)-1
		writeChild(w, prefix, isLast, child.label)
		if child.expr.IsValid() {
			formatExprPretty(w, builder, child.expr, fs, childPrefix(prefix, isLast))
		} else {
			fmt.Fprintln(w, "<none>")
		}
	}
}

type exprChild struct {
	label string
	expr  ast.ExprID
}

// exprLabel renders the one-line head of an expression node, including
// inline details: names, literal text, operators.
func exprLabel(builder *ast.Builder, exprID ast.ExprID, expr *ast.Expr) string {
	switch expr.Kind {
	case ast.ExprIdent:
		if data, ok := builder.Exprs.Ident(exprID); ok {
			return fmt.Sprintf("Ident(%s)", builder.Name(data.Name))
		}
	case ast.ExprLit:
		if data, ok := builder.Exprs.Literal(exprID); ok {
			return fmt.Sprintf("Lit[%s](%s)", data.Kind.String(), builder.Name(data.Value))
		}
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(exprID); ok {
			return fmt.Sprintf("Unary(%s)", data.Op.String())
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(exprID); ok {
			return fmt.Sprintf("Binary(%s)", data.Op.String())
		}
	case ast.ExprMember:
		if data, ok := builder.Exprs.Member(exprID); ok {
			name := builder.Name(data.Name)
			switch {
			case data.Synthetic:
				return fmt.Sprintf("Member(.%s, synthetic)", name)
			case data.Optional:
				return fmt.Sprintf("Member(?.%s)", name)
			default:
				return fmt.Sprintf("Member(.%s)", name)
			}
		}
	case ast.ExprCall:
		if data, ok := builder.Exprs.Call(exprID); ok && data.Optional {
			return "Call(?.)"
		}
		return "Call"
	case ast.ExprBind:
		if data, ok := builder.Exprs.Bind(exprID); ok {
			return fmt.Sprintf("Bind(::%s)", builder.Name(data.Name))
		}
	}
	return expr.Kind.String()
}

func exprChildren(builder *ast.Builder, exprID ast.ExprID, expr *ast.Expr) []exprChild {
	var children []exprChild
	switch expr.Kind {
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(exprID); ok {
			children = append(children, exprChild{"Operand: ", data.Operand})
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(exprID); ok {
			children = append(children,
				exprChild{"Left: ", data.Left},
				exprChild{"Right: ", data.Right})
		}
	case ast.ExprTernary:
		if data, ok := builder.Exprs.Ternary(exprID); ok {
			children = append(children,
				exprChild{"Cond: ", data.Cond},
				exprChild{"Then: ", data.Then},
				exprChild{"Else: ", data.Else})
		}
	case ast.ExprGroup:
		if data, ok := builder.Exprs.Group(exprID); ok {
			children = append(children, exprChild{"Inner: ", data.Inner})
		}
	case ast.ExprArray:
		if data, ok := builder.Exprs.Array(exprID); ok {
			for i, elem := range data.Elems {
				children = append(children, exprChild{fmt.Sprintf("Elem[%d]: ", i), elem})
			}
		}
	case ast.ExprSpread:
		if data, ok := builder.Exprs.Spread(exprID); ok {
			children = append(children, exprChild{"Operand: ", data.Operand})
		}
	case ast.ExprMember:
		if data, ok := builder.Exprs.Member(exprID); ok {
			children = append(children, exprChild{"Target: ", data.Target})
		}
	case ast.ExprIndex:
		if data, ok := builder.Exprs.Index(exprID); ok {
			children = append(children,
				exprChild{"Target: ", data.Target},
				exprChild{"Index: ", data.Index})
		}
	case ast.ExprCall:
		if data, ok := builder.Exprs.Call(exprID); ok {
			children = append(children, exprChild{"Target: ", data.Target})
			for i, arg := range data.Args {
				children = append(children, exprChild{fmt.Sprintf("Arg[%d]: ", i), arg})
			}
		}
	case ast.ExprCallOp:
		if data, ok := builder.Exprs.CallOp(exprID); ok {
			children = append(children,
				exprChild{"Target: ", data.Target},
				exprChild{"Receiver: ", data.Receiver})
			for i, arg := range data.Args {
				children = append(children, exprChild{fmt.Sprintf("Arg[%d]: ", i), arg})
			}
		}
	case ast.ExprBind:
		if data, ok := builder.Exprs.Bind(exprID); ok {
			children = append(children, exprChild{"Receiver: ", data.Receiver})
		}
	}
	return children
}

func writeChild(w io.Writer, prefix string, isLast bool, label string) {
	if isLast {
		fmt.Fprintf(w, "%s└─ %s", prefix, label)
	} else {
		fmt.Fprintf(w, "%s├─ %s", prefix, label)
	}
}

func childPrefix(prefix string, isLast bool) string {
	if isLast {
		return prefix + "   "
	}
	return prefix + "│  "
}

// FormatASTJSON writes the file rooted at fileID as an indented JSON tree.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file %d not found", fileID)
	}

	var children []ASTNodeOutput
	for _, stmtID := range file.Stmts {
		children = append(children, formatStmtJSON(builder, stmtID))
	}

	output := ASTNodeOutput{
		Type:     "File",
		Span:     file.Span,
		Children: children,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func formatStmtJSON(builder *ast.Builder, stmtID ast.StmtID) ASTNodeOutput {
	stmt := builder.Stmts.Get(stmtID)
	if stmt == nil {
		return ASTNodeOutput{Type: "Stmt", Kind: "nil"}
	}

	node := ASTNodeOutput{
		Type: "Stmt",
		Kind: stmt.Kind.String(),
		Span: stmt.Span,
	}

	switch stmt.Kind {
	case ast.StmtExpr:
		if data, ok := builder.Stmts.Expr(stmtID); ok {
			node.Children = append(node.Children, formatExprJSON(builder, data.Expr))
		}
	case ast.StmtLet:
		if data, ok := builder.Stmts.Let(stmtID); ok {
			node.Text = builder.Name(data.Name)
			if data.IsConst {
				node.Kind = "Const"
			}
			if data.Value.IsValid() {
				node.Children = append(node.Children, formatExprJSON(builder, data.Value))
			}
		}
	}

	return node
}

func formatExprJSON(builder *ast.Builder, exprID ast.ExprID) ASTNodeOutput {
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return ASTNodeOutput{Type: "Expr", Kind: "nil"}
	}

	node := ASTNodeOutput{
		Type: "Expr",
		Kind: expr.Kind.String(),
		Span: expr.Span,
	}

	switch expr.Kind {
	case ast.ExprIdent:
		if data, ok := builder.Exprs.Ident(exprID); ok {
			node.Text = builder.Name(data.Name)
		}
	case ast.ExprLit:
		if data, ok := builder.Exprs.Literal(exprID); ok {
			node.Kind = fmt.Sprintf("Lit.%s", data.Kind.String())
			node.Text = builder.Name(data.Value)
		}
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(exprID); ok {
			node.Text = data.Op.String()
			node.Children = append(node.Children, formatExprJSON(builder, data.Operand))
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(exprID); ok {
			node.Text = data.Op.String()
			node.Children = append(node.Children,
				formatExprJSON(builder, data.Left),
				formatExprJSON(builder, data.Right))
		}
	case ast.ExprTernary:
		if data, ok := builder.Exprs.Ternary(exprID); ok {
			node.Children = append(node.Children,
				formatExprJSON(builder, data.Cond),
				formatExprJSON(builder, data.Then),
				formatExprJSON(builder, data.Else))
		}
	case ast.ExprGroup:
		if data, ok := builder.Exprs.Group(exprID); ok {
			node.Children = append(node.Children, formatExprJSON(builder, data.Inner))
		}
	case ast.ExprArray:
		if data, ok := builder.Exprs.Array(exprID); ok {
			for _, elem := range data.Elems {
				node.Children = append(node.Children, formatExprJSON(builder, elem))
			}
		}
	case ast.ExprSpread:
		if data, ok := builder.Exprs.Spread(exprID); ok {
			node.Children = append(node.Children, formatExprJSON(builder, data.Operand))
		}
	case ast.ExprMember:
		if data, ok := builder.Exprs.Member(exprID); ok {
			node.Text = builder.Name(data.Name)
			if data.Synthetic {
				node.Kind = "Member.Synthetic"
			} else if data.Optional {
				node.Kind = "Member.Optional"
			}
			node.Children = append(node.Children, formatExprJSON(builder, data.Target))
		}
	case ast.ExprIndex:
		if data, ok := builder.Exprs.Index(exprID); ok {
			node.Children = append(node.Children,
				formatExprJSON(builder, data.Target),
				formatExprJSON(builder, data.Index))
		}
	case ast.ExprCall:
		if data, ok := builder.Exprs.Call(exprID); ok {
			if data.Optional {
				node.Kind = "Call.Optional"
			}
			node.Children = append(node.Children, formatExprJSON(builder, data.Target))
			for _, arg := range data.Args {
				node.Children = append(node.Children, formatExprJSON(builder, arg))
			}
		}
	case ast.ExprCallOp:
		if data, ok := builder.Exprs.CallOp(exprID); ok {
			node.Children = append(node.Children,
				formatExprJSON(builder, data.Target),
				formatExprJSON(builder, data.Receiver))
			for _, arg := range data.Args {
				node.Children = append(node.Children, formatExprJSON(builder, arg))
			}
		}
	case ast.ExprBind:
		if data, ok := builder.Exprs.Bind(exprID); ok {
			node.Text = builder.Name(data.Name)
			node.Children = append(node.Children, formatExprJSON(builder, data.Receiver))
		}
	}

	return node
}
