// Package report renders categorized transactions as the plain-text analysis report
// and the short console summary.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"bank-analyzer/internal/currencyutils"
	"bank-analyzer/internal/dateutils"
	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

const sectionRule = "----------------------------------------"

// Options control the literals and limits of the report.
type Options struct {
	Currency             string // appended to every amount; never taken from transactions
	TopN                 int
	TitleMaxLength       int // in characters
	Ellipsis             string
	DateRangeUnavailable string
}

// DefaultOptions returns the settings for a PLN account.
func DefaultOptions() Options {
	return Options{
		Currency:             "PLN",
		TopN:                 10,
		TitleMaxLength:       50,
		Ellipsis:             "...",
		DateRangeUnavailable: "N/A",
	}
}

// Generator writes reports.
type Generator struct {
	opts   Options
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil logger falls back to an info-level logrus logger.
func NewGenerator(opts Options, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{opts: opts, logger: logger.WithField(logging.FieldComponent, "report")}
}

// Options returns the generator's settings.
func (g *Generator) Options() Options {
	return g.opts
}

// GenerateReport writes the full report to path, replacing any existing file.
// The report is rendered into a temporary file beside path and renamed into place,
// so a failed run leaves any previous report untouched.
func (g *Generator) GenerateReport(transactions []models.Transaction, path string) error {
	err := writeFileAtomically(path, func(w io.Writer) error {
		return g.WriteReport(w, transactions)
	})
	if err != nil {
		return err
	}

	g.logger.Info("Report written",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(transactions)))
	return nil
}

func writeFileAtomically(path string, render func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buffered := bufio.NewWriter(tmp)
	if err := render(buffered); err != nil {
		return err
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	if err := tmp.Chmod(models.PermissionReportFile); err != nil {
		return fmt.Errorf("error setting report file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing report file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing report file: %w", err)
	}
	return nil
}

// WriteReport renders the four report sections to w.
func (g *Generator) WriteReport(w io.Writer, transactions []models.Transaction) error {
	rw := &reportWriter{w: w}

	g.writeHeader(rw, transactions)
	g.writeCategorySummary(rw, transactions)
	g.writeMonthlyBreakdown(rw, transactions)
	g.writeTopExpenses(rw, transactions)

	if rw.err != nil {
		return fmt.Errorf("error writing report: %w", rw.err)
	}
	return nil
}

// PrintSummary writes total income, total expenses and net balance to w.
func (g *Generator) PrintSummary(w io.Writer, transactions []models.Transaction) error {
	summary := Totals(transactions)
	rw := &reportWriter{w: w}
	rw.printf("Total income: %s\n", g.amount(summary.Income))
	rw.printf("Total expenses: %s\n", g.amount(summary.Expenses))
	rw.printf("Net balance: %s\n", g.amount(summary.Net()))
	if rw.err != nil {
		return fmt.Errorf("error writing summary: %w", rw.err)
	}
	return nil
}

func (g *Generator) writeHeader(rw *reportWriter, transactions []models.Transaction) {
	dateRange := g.opts.DateRangeUnavailable
	if from, to, ok := DateRange(transactions); ok {
		dateRange = dateutils.ToISODate(from) + " to " + dateutils.ToISODate(to)
	}
	rw.printf("Total transactions: %d\n", len(transactions))
	rw.printf("Date range: %s\n", dateRange)
	rw.printf("\n")
}

func (g *Generator) writeCategorySummary(rw *reportWriter, transactions []models.Transaction) {
	totals := CategoryTotals(transactions)
	for _, t := range totals {
		rw.printf("%-20s: %s %s\n", t.Category.DisplayName(), currencyutils.FormatFixed(t.Total, 10), g.opts.Currency)
	}
	rw.printf("%s\n", sectionRule)
	rw.printf("TOTAL EXPENSES: %s\n", g.amount(TotalExpenses(totals)))
	rw.printf("\n")
}

func (g *Generator) writeMonthlyBreakdown(rw *reportWriter, transactions []models.Transaction) {
	for _, m := range MonthlyBreakdown(transactions) {
		rw.printf("%s | Income: %s | Expenses: %s | Balance: %s %s\n",
			m.Month,
			currencyutils.FormatFixed(m.Income, 8),
			currencyutils.FormatFixed(m.Expenses, 8),
			currencyutils.FormatFixed(m.Balance(), 8),
			g.opts.Currency)
	}
	rw.printf("\n")
}

func (g *Generator) writeTopExpenses(rw *reportWriter, transactions []models.Transaction) {
	for _, tx := range TopExpenses(transactions, g.opts.TopN) {
		rw.printf("%s | %s | %s | %s\n",
			dateutils.ToISODate(tx.OperationDate),
			g.amount(tx.AbsAmount()),
			tx.Category.DisplayName(),
			g.truncate(tx.Title))
	}
	rw.printf("\n")
}

func (g *Generator) amount(value decimal.Decimal) string {
	return currencyutils.FormatAmount(value, g.opts.Currency)
}

// truncate shortens title to TitleMaxLength characters plus the ellipsis.
func (g *Generator) truncate(title string) string {
	if g.opts.TitleMaxLength <= 0 || utf8.RuneCountInString(title) <= g.opts.TitleMaxLength {
		return title
	}
	runes := []rune(title)
	return string(runes[:g.opts.TitleMaxLength]) + g.opts.Ellipsis
}

// reportWriter remembers the first write error so rendering code stays linear.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}
