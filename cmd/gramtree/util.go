package main

import (
	"fmt"
	"os"

	"github.com/cloudcmds/gramtree/examples/arithmetic"
	"github.com/cloudcmds/gramtree/node"
)

// readInput returns codeFlag if set, else the contents of args[0], else an
// error. Mirrors the teacher CLI's "code can only come from one source" rule.
func readInput(args []string) (string, error) {
	if codeFlag != "" && len(args) > 0 {
		return "", fmt.Errorf("cannot provide both a file argument and -c input")
	}
	if codeFlag != "" {
		return codeFlag, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no input provided: pass a file argument or -c")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseWithSelectedGrammar parses input with the grammar named by
// grammarFlag ("expr" or "chain").
func parseWithSelectedGrammar(input string) (*node.Node, bool, error) {
	switch grammarFlag {
	case "expr":
		n, ok := arithmetic.ParseExpr(input)
		return n, ok, nil
	case "chain":
		n, ok := arithmetic.ParseChain(input)
		return n, ok, nil
	default:
		return nil, false, fmt.Errorf("unknown grammar %q: want expr or chain", grammarFlag)
	}
}
