package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"callop/internal/diag"
	"callop/internal/driver"
	"callop/internal/fix"
	"callop/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.js|directory>",
	Short: "Apply suggested fixes to source files",
	Long: `Fix re-diagnoses sources and applies the suggested edits attached to
diagnostics, such as removing the stray gap in 'f:: (a)'.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every applicable fix, not just the first")
	fixCmd.Flags().Bool("dry-run", false, "show changes without writing files")
	fixCmd.Flags().Bool("backup", false, "write <file>.bak before overwriting")
}

func runFix(cmd *cobra.Command, args []string) error {
	path := args[0]

	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	backup, err := cmd.Flags().GetBool("backup")
	if err != nil {
		return err
	}

	opts, manifest, err := resolveOptions(cmd, path)
	if err != nil {
		return err
	}
	useColor(cmd, manifest)
	quiet := quietFlag(cmd)

	fileSet, diagnostics, err := collectDiagnostics(cmd, path, opts)
	if err != nil {
		return err
	}

	applyOpts := fix.ApplyOptions{
		Mode:   fix.ApplyModeOnce,
		DryRun: dryRun,
		Backup: backup,
	}
	if all {
		applyOpts.Mode = fix.ApplyModeAll
	}

	result, err := fix.Apply(fileSet, diagnostics, applyOpts)
	if errors.Is(err, fix.ErrNoFixes) {
		if !quiet {
			fmt.Fprintln(os.Stdout, "nothing to fix")
		}
		return nil
	}
	if err != nil {
		return err
	}

	if !quiet {
		for _, applied := range result.Applied {
			fmt.Fprintf(os.Stdout, "fixed %s: %s\n", applied.Path, applied.Title)
		}
		for _, skipped := range result.Skipped {
			fmt.Fprintf(os.Stdout, "skipped %s: %s\n", skipped.Title, skipped.Reason)
		}
		if dryRun {
			fmt.Fprintf(os.Stdout, "dry run: %d file(s) would change\n", len(result.FileChanges))
		}
	}
	return nil
}

func collectDiagnostics(cmd *cobra.Command, path string, opts driver.Options) (*source.FileSet, []diag.Diagnostic, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(path, opts)
		if err != nil {
			return nil, nil, err
		}
		return result.FileSet, result.Bag.Items(), nil
	}

	fileSet, results, err := driver.DesugarDir(cmd.Context(), path, opts)
	if err != nil {
		return nil, nil, err
	}
	var diagnostics []diag.Diagnostic
	for _, res := range results {
		if res.Bag != nil {
			diagnostics = append(diagnostics, res.Bag.Items()...)
		}
	}
	return fileSet, diagnostics, nil
}
