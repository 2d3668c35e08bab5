// Package common provides the CSV export shared by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bank-analyzer/internal/dateutils"
	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/models"

	"github.com/gocarina/gocsv"
)

// CSVRecord is one exported transaction row.
type CSVRecord struct {
	BookingDate   string `csv:"BookingDate"`
	OperationDate string `csv:"OperationDate"`
	OperationType string `csv:"OperationType"`
	Amount        string `csv:"Amount"`
	Currency      string `csv:"Currency"`
	Counterparty  string `csv:"Counterparty"`
	Title         string `csv:"Title"`
	BalanceAfter  string `csv:"BalanceAfter"`
	Category      string `csv:"Category"`
	CategoryName  string `csv:"CategoryName"`
}

// NewCSVRecord flattens a transaction. Dates are ISO, amounts have two decimals.
func NewCSVRecord(tx models.Transaction) CSVRecord {
	return CSVRecord{
		BookingDate:   dateutils.ToISODate(tx.BookingDate),
		OperationDate: dateutils.ToISODate(tx.OperationDate),
		OperationType: tx.OperationType,
		Amount:        tx.Amount.StringFixed(2),
		Currency:      tx.Currency,
		Counterparty:  tx.Counterparty,
		Title:         tx.Title,
		BalanceAfter:  tx.BalanceAfter.StringFixed(2),
		Category:      tx.Category.String(),
		CategoryName:  tx.Category.DisplayName(),
	}
}

// WriteTransactions writes a header and one row per transaction to w.
func WriteTransactions(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	records := make([]CSVRecord, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, NewCSVRecord(tx))
	}

	csvWriter := csv.NewWriter(w)
	if delimiter != 0 {
		csvWriter.Comma = delimiter
	}

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteTransactionsToCSV writes transactions to csvFile, creating parent directories.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := os.MkdirAll(filepath.Dir(csvFile), models.PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- user-chosen output path
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	if err := writeAndClose(file, transactions, delimiter); err != nil {
		logger.WithError(err).Error("Failed to write CSV file")
		return err
	}

	logger.Info("Successfully wrote transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)))
	return nil
}

// writeAndClose writes the CSV to wc and closes it, returning the close error.
func writeAndClose(wc io.WriteCloser, transactions []models.Transaction, delimiter rune) error {
	if err := WriteTransactions(wc, transactions, delimiter); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("error closing CSV file: %w", err)
	}
	return nil
}
