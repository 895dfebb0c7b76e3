// Package fix applies the suggested edits attached to diagnostics back
// to the source files, e.g. deleting the stray gap in `f:: (a)`.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"callop/internal/diag"
	"callop/internal/source"
)

// ErrNoFixes is returned when nothing was applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode selects how many fixes one run applies.
type ApplyMode uint8

const (
	// ApplyModeOnce applies only the first fix in deterministic order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every non-conflicting fix.
	ApplyModeAll
)

// ApplyOptions configures an Apply run.
type ApplyOptions struct {
	Mode ApplyMode
	// DryRun computes changes without touching the filesystem.
	DryRun bool
	// Backup writes <file>.bak before overwriting.
	Backup bool
}

// AppliedFix records one successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Path      string
	EditCount int
}

// SkippedFix records a fix that could not be applied and why.
type SkippedFix struct {
	Title  string
	Reason string
}

// FileChange summarises modifications to one file.
type FileChange struct {
	Path      string
	EditCount int
	// NewContent carries the rewritten bytes on DryRun.
	NewContent []byte
}

// ApplyResult aggregates one Apply run.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, orders them by file and span,
// and applies the selected subset. All edit spans refer to the original
// file content; edits land in one back-to-front pass per file, so fixes
// whose edits overlap an already selected fix are skipped. A second run
// after re-diagnosis picks those up.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gather(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	if opts.Mode == ApplyModeOnce && len(candidates) > 1 {
		candidates = candidates[:1]
	}

	// Phase one: select fixes, rejecting conflicts against already
	// selected edits.
	fileEdits := make(map[source.FileID][]diag.FixEdit)
	for _, cand := range candidates {
		fileID, reason := vet(fs, cand, fileEdits)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Reason: reason})
			continue
		}
		fileEdits[fileID] = append(fileEdits[fileID], cand.fix.Edits...)
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.diag.Code,
			Path:      fs.Get(fileID).Path,
			EditCount: len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	// Phase two: rewrite each file once, highest offset first, so every
	// original-content offset stays valid while editing.
	for fileID, edits := range fileEdits {
		file := fs.Get(fileID)
		buf := append([]byte(nil), file.Content...)

		sort.SliceStable(edits, func(i, j int) bool {
			return edits[i].Span.Start > edits[j].Span.Start
		})
		for _, edit := range edits {
			start, end := int(edit.Span.Start), int(edit.Span.End)
			buf = append(buf[:start], append([]byte(edit.NewText), buf[end:]...)...)
		}

		change := FileChange{Path: file.Path, EditCount: len(edits)}
		if opts.DryRun {
			change.NewContent = buf
			result.FileChanges = append(result.FileChanges, change)
			continue
		}
		if opts.Backup {
			if err := os.WriteFile(file.Path+".bak", file.Content, 0o600); err != nil {
				return result, fmt.Errorf("fix: failed to write backup for %s: %w", file.Path, err)
			}
		}
		if err := os.WriteFile(file.Path, buf, 0o600); err != nil {
			return result, fmt.Errorf("fix: failed to write %s: %w", file.Path, err)
		}
		result.FileChanges = append(result.FileChanges, change)
	}

	sort.Slice(result.FileChanges, func(i, j int) bool {
		return result.FileChanges[i].Path < result.FileChanges[j].Path
	})
	return result, nil
}

func gather(diagnostics []diag.Diagnostic) []candidate {
	var cands []candidate
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates yields a deterministic application order: by file, by
// span, then by discovery order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

// vet validates one fix: edits must stay in a single real file, inside
// the file's bounds, without overlapping each other or already selected
// edits.
func vet(fs *source.FileSet, cand candidate, selected map[source.FileID][]diag.FixEdit) (source.FileID, string) {
	fileID := cand.fix.Edits[0].Span.File
	for _, edit := range cand.fix.Edits {
		if edit.Span.File != fileID {
			return 0, "fix spans multiple files"
		}
	}

	file := fs.Get(fileID)
	if file.Flags&source.FileVirtual != 0 {
		return 0, "target file is virtual"
	}
	for _, edit := range cand.fix.Edits {
		if edit.Span.End < edit.Span.Start || int(edit.Span.End) > len(file.Content) {
			return 0, "edit span out of range"
		}
	}

	all := append(append([]diag.FixEdit(nil), selected[fileID]...), cand.fix.Edits...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Span.Start < all[j].Span.Start
	})
	for i := 1; i < len(all); i++ {
		if all[i].Span.Start < all[i-1].Span.End {
			return 0, "conflicts with a previously applied edit"
		}
	}
	return fileID, ""
}
