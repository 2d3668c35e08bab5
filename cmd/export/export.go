// Package export implements the export command, writing categorized transactions as CSV.
package export

import (
	"fmt"
	"unicode/utf8"

	"bank-analyzer/cmd/root"
	"bank-analyzer/internal/common"
	"bank-analyzer/internal/container"
	"bank-analyzer/internal/models"

	"github.com/spf13/cobra"
)

var (
	// Output is the --output flag value.
	Output string
	// Delimiter is the --delimiter flag value.
	Delimiter string
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export [files or directories...]",
	Short: "Export categorized transactions to CSV",
	Long: `Export parses bank CSV exports, categorizes every transaction and writes one CSV
with ISO dates, dot-decimal amounts, and the category identifier and display name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		return Run(c, args, Output, delimiterRune(Delimiter))
	},
}

func init() {
	Cmd.Flags().StringVarP(&Output, "output", "o", "transactions.csv", "Output CSV file")
	Cmd.Flags().StringVarP(&Delimiter, "delimiter", "d", ",", "Field delimiter of the output CSV")
}

// Run parses and categorizes files and writes the result to output.
func Run(c *container.Container, files []string, output string, delimiter rune) error {
	files, err := root.ResolveInputs(c, files)
	if err != nil {
		return err
	}
	transactions, err := c.GetParser().ParseFiles(files)
	if err != nil {
		return err
	}
	c.GetCategorizer().Categorize(transactions)

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if err := common.WriteTransactionsToCSV(transactions, output, delimiter, c.GetLogger()); err != nil {
		return fmt.Errorf("error exporting transactions: %w", err)
	}
	return nil
}

func delimiterRune(s string) rune {
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		return r
	}
	return ','
}
