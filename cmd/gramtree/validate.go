package main

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/gramtree/diagnostics"
	"github.com/cloudcmds/gramtree/internal/tracelog"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse input and report missing-element diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColorFlag {
			color.NoColor = true
		}
		tracelog.Enable(verboseFlag)

		input, err := readInput(args)
		if err != nil {
			return err
		}

		n, ok, err := parseWithSelectedGrammar(input)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no match")
		}

		diags := diagnostics.FromNode(n)
		if len(diags) == 0 {
			fmt.Println("ok: no diagnostics")
			return nil
		}

		report := diagnostics.NewReport(diags)
		f := diagnostics.NewFormatter(!noColorFlag)
		fmt.Print(f.FormatAll(report, strings.Split(input, "\n")))
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	},
}
