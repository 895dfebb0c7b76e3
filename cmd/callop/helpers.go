package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"callop/internal/diag"
	"callop/internal/diagfmt"
	"callop/internal/driver"
	"callop/internal/project"
	"callop/internal/source"
)

// resolveOptions merges the nearest manifest with root flags. Flags win
// over manifest values; the manifest wins over built-in defaults.
func resolveOptions(cmd *cobra.Command, target string) (driver.Options, *project.Manifest, error) {
	startDir := target
	if st, err := os.Stat(target); err != nil || !st.IsDir() {
		startDir = filepath.Dir(target)
	}

	manifest, _, err := project.LoadNearest(startDir)
	if err != nil {
		return driver.Options{}, nil, err
	}
	opts := driver.FromManifest(manifest)

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics > 0 {
		opts.MaxDiagnostics = maxDiagnostics
	}
	return opts, manifest, nil
}

// useColor decides terminal coloring from the --color flag, the manifest,
// and whether stderr is a TTY. It also sets the fatih/color global so
// every Sprint call downstream obeys the decision.
func useColor(cmd *cobra.Command, manifest *project.Manifest) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	if mode == "auto" && manifest != nil && manifest.Config.Diagnostics.Color != "" {
		mode = manifest.Config.Diagnostics.Color
	}

	var enabled bool
	switch mode {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		enabled = isTerminal(os.Stderr)
	}
	color.NoColor = !enabled
	return enabled
}

func quietFlag(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && quiet
}

func timingsFlag(cmd *cobra.Command) bool {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	return err == nil && timings
}

// printDiagnostics renders the bag to stderr sorted, with notes and
// fixes. Returns true when the bag held errors.
func printDiagnostics(bag *diag.Bag, fs *source.FileSet, colored bool) bool {
	if bag == nil {
		return false
	}
	if bag.HasErrors() || bag.HasWarnings() {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     colored,
			ShowNotes: true,
			ShowFixes: true,
		})
	}
	return bag.HasErrors()
}
