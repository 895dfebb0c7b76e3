package driver

import (
	"callop/internal/ast"
	"callop/internal/diag"
	"callop/internal/lexer"
	"callop/internal/parser"
	"callop/internal/source"
)

// ParseResult bundles the parsed file with its arenas and diagnostics.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse lexes and parses one file from disk.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, opts), nil
}

// ParseBytes parses in-memory content, for stdin and tests.
func ParseBytes(name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, opts)
}

func parseFile(fs *source.FileSet, fileID source.FileID, opts Options) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})

	result := parser.ParseFile(fs, lx, builder, opts.parserOptions(bag))

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}
}
