package main

import (
	"fmt"
	"os"

	"bank-analyzer/cmd/analyze"
	"bank-analyzer/cmd/categorize"
	"bank-analyzer/cmd/export"
	"bank-analyzer/cmd/root"
	"bank-analyzer/cmd/rules"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
