// Command gramtree is a small CLI wrapping the example grammars in
// examples/: it parses an input file or -c string and prints the resulting
// parse tree, or validates it and reports missing-element diagnostics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	rootCmd = &cobra.Command{
		Use:          "gramtree",
		Short:        "gramtree",
		SilenceUsage: true,
		Long:         `CLI for driving the example grammars in examples/ against an input string or file.`,
	}

	codeFlag    string
	grammarFlag string
	noColorFlag bool
	verboseFlag bool
	reprFlag    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&codeFlag, "code", "c", "", "input text to parse, instead of a file argument")
	rootCmd.PersistentFlags().StringVarP(&grammarFlag, "grammar", "g", "expr", "example grammar to parse with: expr or chain")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "trace every shape position the driver visits")
	rootCmd.PersistentFlags().BoolVar(&reprFlag, "repr", false, "dump the raw parse tree via alecthomas/repr instead of the colorized view")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
}
