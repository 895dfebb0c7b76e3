package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"callop/internal/ast"
	"callop/internal/desugar"
	"callop/internal/diag"
	"callop/internal/lexer"
	"callop/internal/parser"
	"callop/internal/source"
)

// FileCheck is the per-file outcome of CheckDir. Bag is nil when the
// result came from the disk cache.
type FileCheck struct {
	Path      string
	Rewrites  int
	DiagCount int
	HadErrors bool
	FromCache bool
	Bag       *diag.Bag
}

// CheckDir parses and rewrites every *.js file under dir, consulting
// cache when given. Only clean results are served from cache: files
// that previously had errors are re-run so their diagnostics can be
// rendered again. cache may be nil.
func CheckDir(ctx context.Context, dir string, opts Options, cache *DiskCache) (*source.FileSet, []FileCheck, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrors := loadAll(fileSet, files)
	results := make([]FileCheck, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.maxDiagnostics())
				loadErrorBag(bag, path, loadErr)
				results[i] = FileCheck{
					Path:      path,
					DiagCount: bag.Len(),
					HadErrors: true,
					Bag:       bag,
				}
				return nil
			}

			file := fileSet.Get(fileIDs[path])

			var cached CachePayload
			if hit, _ := cache.Get(file.Hash, &cached); hit && !cached.HadErrors {
				results[i] = FileCheck{
					Path:      path,
					Rewrites:  cached.RewriteCount,
					DiagCount: cached.DiagCount,
					FromCache: true,
				}
				return nil
			}

			results[i] = checkFile(fileSet, file, path, opts, cache)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func checkFile(fileSet *source.FileSet, file *source.File, path string, opts Options, cache *DiskCache) FileCheck {
	bag := diag.NewBag(opts.maxDiagnostics())
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})

	parser.ParseFile(fileSet, lx, builder, opts.parserOptions(bag))
	rewrites := desugar.File(builder)

	result := FileCheck{
		Path:      path,
		Rewrites:  rewrites,
		DiagCount: bag.Len(),
		HadErrors: bag.HasErrors(),
		Bag:       bag,
	}

	// Best effort; a failed write just means a re-check next run.
	_ = cache.Put(file.Hash, &CachePayload{
		Schema:       diskCacheSchemaVersion,
		Path:         path,
		ContentHash:  file.Hash,
		RewriteCount: rewrites,
		DiagCount:    bag.Len(),
		HadErrors:    bag.HasErrors(),
	})

	return result
}
