// Package analyze implements the analyze command: parse, categorize and report.
package analyze

import (
	"fmt"
	"io"

	"bank-analyzer/cmd/root"
	"bank-analyzer/internal/container"
	"bank-analyzer/internal/logging"

	"github.com/spf13/cobra"
)

// Output is the --output flag value; empty uses report.output from the configuration.
var Output string

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze [files or directories...]",
	Short: "Analyze bank exports and write a spending report",
	Long: `Analyze parses one or more bank CSV exports, categorizes every transaction, prints
income, expenses and net balance, and writes the full report to a text file.
A directory argument contributes every *.csv file inside it, in name order.`,
	Example: "  bank-analyzer analyze january.csv february.csv --output report.txt",
	RunE:    analyzeFunc,
}

func init() {
	Cmd.Annotations = map[string]string{root.AnnotationUsageWithoutArgs: "true"}
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Report file (default from config, bank_analysis_report.txt)")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Usage()
	}

	c, err := root.RequireContainer()
	if err != nil {
		return err
	}

	output := Output
	if output == "" {
		output = c.GetConfig().Report.Output
	}
	return Run(c, args, output, cmd.OutOrStdout())
}

// Run parses files, categorizes the transactions, prints the summary to out and writes
// the report to output. No report is written when parsing fails.
func Run(c *container.Container, files []string, output string, out io.Writer) error {
	files, err := root.ResolveInputs(c, files)
	if err != nil {
		return fmt.Errorf("error during analysis: %w", err)
	}

	logger := c.GetLogger().WithFields(
		logging.F(logging.FieldOperation, "analyze"),
		logging.F(logging.FieldFiles, len(files)))

	_, _ = fmt.Fprintf(out, "Files to process: %d\n\n", len(files))

	transactions, err := c.GetParser().ParseFiles(files)
	if err != nil {
		logger.WithError(err).Debug("Analysis failed")
		return fmt.Errorf("error during analysis: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Loaded transactions: %d\n", len(transactions))

	stats := c.GetCategorizer().Categorize(transactions)
	_, _ = fmt.Fprintln(out, "Categorization complete.")

	reporter := c.GetReportGenerator()
	if err := reporter.PrintSummary(out, transactions); err != nil {
		return err
	}

	if err := reporter.GenerateReport(transactions, output); err != nil {
		logger.WithError(err).Debug("Analysis failed")
		return fmt.Errorf("error during analysis: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Full report saved to: %s\n", output)
	_, _ = fmt.Fprintln(out, "\nAnalysis complete")

	logger.Info("Analysis complete",
		logging.F(logging.FieldCount, stats.Total),
		logging.F(logging.FieldOutputFile, output))
	return nil
}
