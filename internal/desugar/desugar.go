// Package desugar lowers call-operator expressions into plain calls:
//
//	E::(R, A1..An)  =>  E.call(R, A1..An)
//
// The rewrite is structural and happens in place on the AST arenas. The
// rewritten call keeps the span of the original expression; the synthetic
// `call` member carries the callee's span so diagnostics still point at
// the function being invoked. A tree without call-operator nodes passes
// through untouched, so the transform is idempotent.
package desugar

import (
	"callop/internal/ast"
)

// File rewrites every call-operator expression in the builder's arenas
// and returns the number of rewritten nodes. A builder holds the arenas
// of a single parsed file, so the sweep covers exactly that file.
//
// Nodes are visited in allocation order. The parser allocates children
// before parents, so nested operators in receiver or argument position
// are themselves rewritten by the same sweep. Only member nodes are
// allocated during the sweep, never new call-operator nodes, so a single
// pass over the initial node count is complete.
func File(b *ast.Builder) int {
	return sweep(b)
}

func sweep(b *ast.Builder) int {
	callName := b.Intern("call")
	exprs := b.Exprs

	rewrites := 0
	total := exprs.Len()
	for raw := uint32(1); raw <= total; raw++ {
		id := ast.ExprID(raw)
		if exprs.Get(id).Kind != ast.ExprCallOp {
			continue
		}
		data, ok := exprs.CallOp(id)
		if !ok {
			continue
		}

		calleeSpan := exprs.Get(data.Target).Span
		member := exprs.NewSyntheticMember(calleeSpan, data.Target, callName, data.OpSpan)

		args := make([]ast.ExprID, 0, len(data.Args)+1)
		args = append(args, data.Receiver)
		args = append(args, data.Args...)

		payload := exprs.Calls.Allocate(ast.ExprCallData{
			Target:           member,
			Args:             args,
			HasTrailingComma: data.HasTrailingComma,
		})

		// Fetch the node only after allocating: appends above may grow
		// the arena and move earlier pointers.
		node := exprs.Get(id)
		node.Kind = ast.ExprCall
		node.Payload = ast.PayloadID(payload)
		rewrites++
	}
	return rewrites
}
