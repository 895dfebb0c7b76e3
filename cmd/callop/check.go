package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"callop/internal/driver"
	"callop/internal/observ"
)

const cacheAppName = "callop"

var checkCmd = &cobra.Command{
	Use:   "check [flags] directory",
	Short: "Parse and rewrite all sources, reporting problems",
	Long: `Check runs the full pipeline over every *.js file under a directory
without writing output. Clean results are cached by content hash, so
unchanged files are skipped on later runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the check result cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openCache(cmd)
		if err != nil {
			return err
		}
		return cache.DropAll()
	},
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "disable the result cache")
	checkCmd.Flags().String("cache-dir", "", "cache location (default: XDG cache dir)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cleanCmd.Flags().String("cache-dir", "", "cache location (default: XDG cache dir)")
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if cacheDir != "" {
		return driver.OpenDiskCacheAt(cacheDir)
	}
	return driver.OpenDiskCache(cacheAppName)
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	opts, manifest, err := resolveOptions(cmd, dir)
	if err != nil {
		return err
	}
	opts.Jobs = jobs
	colored := useColor(cmd, manifest)
	quiet := quietFlag(cmd)

	var cache *driver.DiskCache
	if !noCache {
		cache, err = openCache(cmd)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	timer := observ.NewTimer()
	phase := timer.Begin("check")

	fileSet, results, err := driver.CheckDir(cmd.Context(), dir, opts, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	hadErrors := false
	cached, rewrites := 0, 0
	for _, res := range results {
		rewrites += res.Rewrites
		if res.FromCache {
			cached++
		}
		if printDiagnostics(res.Bag, fileSet, colored) {
			hadErrors = true
		}
		if !quiet {
			status := "ok"
			if res.HadErrors {
				status = fmt.Sprintf("%d problems", res.DiagCount)
			}
			if res.FromCache {
				status += " (cached)"
			}
			fmt.Fprintf(os.Stdout, "%s: %s\n", res.Path, status)
		}
	}
	timer.End(phase, fmt.Sprintf("%d files, %d cached, %d rewrites", len(results), cached, rewrites))

	if timingsFlag(cmd) {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if hadErrors {
		return fmt.Errorf("check finished with errors")
	}
	return nil
}
