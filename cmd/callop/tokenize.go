package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"callop/internal/diagfmt"
	"callop/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize a source file",
	Long:  `Tokenize prints the token stream of one source file, including the ::( call-operator token and leading trivia.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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

	result, err := driver.Tokenize(path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(result.Bag, result.FileSet, colored)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
