package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"callop/internal/diagfmt"
	"callop/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Parse a source file and dump its syntax tree",
	Long: `Parse prints the syntax tree as written: call-operator expressions stay
CallOp nodes. Use 'callop desugar' to see the rewritten tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts, manifest, err := resolveOptions(cmd, path)
	if err != nil {
		return err
	}
	colored := useColor(cmd, manifest)

	result, err := driver.Parse(path, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	printDiagnostics(result.Bag, result.FileSet, colored)

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.FileID, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.FileID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
