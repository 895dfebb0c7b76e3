package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"callop/internal/diagfmt"
	"callop/internal/driver"
	"callop/internal/observ"
)

var desugarCmd = &cobra.Command{
	Use:   "desugar [flags] <file.js|directory>",
	Short: "Rewrite call-operator expressions and dump the result",
	Long: `Desugar parses sources and rewrites every f::(recv, args) into
f.call(recv, args), then dumps the rewritten tree. Given a directory it
processes all *.js files in parallel and reports per-file rewrite counts.`,
	Args: cobra.ExactArgs(1),
	RunE: runDesugar,
}

func init() {
	desugarCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	desugarCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
}

func runDesugar(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	opts, manifest, err := resolveOptions(cmd, path)
	if err != nil {
		return err
	}
	opts.Jobs = jobs
	colored := useColor(cmd, manifest)
	quiet := quietFlag(cmd)
	timer := observ.NewTimer()

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return runDesugarDir(cmd, path, opts, colored, quiet, timer)
	}

	phase := timer.Begin("desugar")
	result, err := driver.Desugar(path, opts)
	if err != nil {
		return fmt.Errorf("desugaring failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d rewrites", result.Rewrites))

	printDiagnostics(result.Bag, result.FileSet, colored)
	if !quiet {
		fmt.Fprintf(os.Stderr, "%s: %d rewrites\n", path, result.Rewrites)
	}
	if timingsFlag(cmd) {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.FileID, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.FileID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runDesugarDir(cmd *cobra.Command, dir string, opts driver.Options, colored, quiet bool, timer *observ.Timer) error {
	phase := timer.Begin("desugar-dir")
	fileSet, results, err := driver.DesugarDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("desugaring failed: %w", err)
	}

	total := 0
	hadErrors := false
	for _, res := range results {
		total += res.Rewrites
		if printDiagnostics(res.Bag, fileSet, colored) {
			hadErrors = true
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s: %d rewrites\n", res.Path, res.Rewrites)
		}
	}
	timer.End(phase, fmt.Sprintf("%d files, %d rewrites", len(results), total))

	if timingsFlag(cmd) {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if hadErrors {
		return fmt.Errorf("desugaring finished with errors")
	}
	return nil
}
