package driver

import (
	"callop/internal/desugar"
)

// DesugarResult is a parse result after the call-operator rewrite.
type DesugarResult struct {
	ParseResult
	// Rewrites counts call-operator nodes turned into .call invocations.
	Rewrites int
}

// Desugar parses one file from disk and rewrites call-operator nodes.
// The rewrite runs even when the bag holds errors: recovered subtrees
// still desugar, so downstream dumps never show a surviving operator node.
func Desugar(path string, opts Options) (*DesugarResult, error) {
	parsed, err := Parse(path, opts)
	if err != nil {
		return nil, err
	}
	return desugarParsed(parsed), nil
}

// DesugarBytes parses and rewrites in-memory content.
func DesugarBytes(name string, content []byte, opts Options) *DesugarResult {
	return desugarParsed(ParseBytes(name, content, opts))
}

func desugarParsed(parsed *ParseResult) *DesugarResult {
	rewrites := desugar.File(parsed.Builder)
	return &DesugarResult{
		ParseResult: *parsed,
		Rewrites:    rewrites,
	}
}
