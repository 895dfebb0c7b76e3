package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"callop/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "callop",
		Short: "Reference front-end for the fn::(receiver, ...) call operator",
		Long: `callop tokenizes, parses, and rewrites JavaScript-subset sources that
use the proposed call operator: f::(recv, a) means f.call(recv, a).`,
		Version: version.Version,
	}

	root.AddCommand(tokenizeCmd)
	root.AddCommand(parseCmd)
	root.AddCommand(desugarCmd)
	root.AddCommand(checkCmd)
	root.AddCommand(fixCmd)
	root.AddCommand(cleanCmd)
	root.AddCommand(initCmd)
	root.AddCommand(versionCmd)

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show phase timings")
	root.PersistentFlags().Int("max-diagnostics", 0, "cap reported diagnostics (0=manifest or default)")

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
