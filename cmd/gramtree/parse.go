package main

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/cloudcmds/gramtree/internal/tracelog"
	"github.com/cloudcmds/gramtree/node"
	"github.com/cloudcmds/gramtree/token"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse input and print the resulting tree",
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

		if reprFlag {
			repr.Println(n)
			return nil
		}
		printTree(n, "", true)
		return nil
	},
}

var (
	kindStyle  = color.New(color.FgCyan, color.Bold)
	valueStyle = color.New(color.FgGreen)
	mutedStyle = color.New(color.FgHiBlack)
)

func printTree(e any, indent string, isLast bool) {
	connector := "├─ "
	childIndent := indent + "│  "
	if isLast {
		connector = "└─ "
		childIndent = indent + "   "
	}

	switch v := e.(type) {
	case token.Token:
		if v.IsWhitespace() {
			return
		}
		fmt.Print(mutedStyle.Sprint(indent + connector))
		fmt.Printf("%s\n", valueStyle.Sprintf("%q", v.Value))
	case *node.Node:
		fmt.Print(mutedStyle.Sprint(indent + connector))
		fmt.Println(kindStyle.Sprint(v.Kind()))
		content := v.ContentExps()
		for i, c := range content {
			printTree(c, childIndent, i == len(content)-1)
		}
	}
}
