package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"callop/internal/ast"
	"callop/internal/desugar"
	"callop/internal/diag"
	"callop/internal/lexer"
	"callop/internal/parser"
	"callop/internal/source"
	"callop/internal/token"
)

// TokenizeDirResult is the per-file outcome of TokenizeDir.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// DesugarDirResult is the per-file outcome of DesugarDir.
type DesugarDirResult struct {
	Path     string
	FileID   ast.FileID
	Builder  *ast.Builder
	Bag      *diag.Bag
	Rewrites int
}

// ListSourceFiles returns all *.js files under dir in sorted order, so
// directory runs are deterministic regardless of goroutine scheduling.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// loadAll preloads every file into one FileSet up front; the FileSet is
// not safe for concurrent mutation. Load failures are recorded per path
// and surface later as IO diagnostics rather than aborting the run.
func loadAll(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadErrors
}

func jobLimit(jobs, work int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, work)
}

// loadErrorBag records a load failure. The diagnostic has no source to
// point into, so its span is detached and renders without context.
func loadErrorBag(bag *diag.Bag, path string, err error) {
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load " + path + ": " + err.Error(),
		Primary:  source.Span{File: source.NoFile},
	})
}

// TokenizeDir lexes every *.js file under dir in parallel. Results come
// back in the same order as ListSourceFiles.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrors := loadAll(fileSet, files)
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			if loadErr, failed := loadErrors[path]; failed {
				loadErrorBag(bag, path, loadErr)
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

			var tokens []token.Token
			for {
				tok := lx.Next()
				tokens = append(tokens, tok)
				if tok.Kind == token.EOF {
					break
				}
			}

			// Slot i is owned by this goroutine; no locking needed.
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// DesugarDir parses and rewrites every *.js file under dir in parallel.
// Each file gets its own arena builder; the shared FileSet is read-only
// once loaded.
func DesugarDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []DesugarDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrors := loadAll(fileSet, files)
	results := make([]DesugarDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.maxDiagnostics())
			if loadErr, failed := loadErrors[path]; failed {
				loadErrorBag(bag, path, loadErr)
				results[i] = DesugarDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
			builder := ast.NewBuilder(ast.Hints{})

			parsed := parser.ParseFile(fileSet, lx, builder, opts.parserOptions(bag))
			rewrites := desugar.File(builder)

			results[i] = DesugarDirResult{
				Path:     path,
				FileID:   parsed.File,
				Builder:  builder,
				Bag:      bag,
				Rewrites: rewrites,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
