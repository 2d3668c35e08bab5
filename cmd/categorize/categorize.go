// Package categorize handles the transaction categorization command
package categorize

import (
	"fmt"
	"io"

	"bank-analyzer/cmd/root"
	"bank-analyzer/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize [files or directories...]",
	Short: "Categorize transactions and print them",
	Long:  `Categorize parses bank CSV exports and prints every transaction with the category assigned by the keyword rules.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		return Run(c, args, cmd.OutOrStdout())
	},
}

// Run prints one line per categorized transaction to out.
func Run(c *container.Container, files []string, out io.Writer) error {
	files, err := root.ResolveInputs(c, files)
	if err != nil {
		return err
	}
	transactions, err := c.GetParser().ParseFiles(files)
	if err != nil {
		return err
	}
	c.GetCategorizer().Categorize(transactions)

	for _, tx := range transactions {
		if _, err := fmt.Fprintln(out, tx.String()); err != nil {
			return err
		}
	}
	return nil
}
