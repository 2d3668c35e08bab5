// Package exportparser reads the bank's account-history export: a delimited text file
// with a fixed preamble followed by one transaction per row.
package exportparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"bank-analyzer/internal/currencyutils"
	"bank-analyzer/internal/dateutils"
	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/models"
	"bank-analyzer/internal/parser"
	"bank-analyzer/internal/parsererror"

	"golang.org/x/text/encoding"
)

// streamSource names the input in errors when Parse is given a bare reader.
const streamSource = "<stream>"

// Parser implements parser.FileParser for the export format.
type Parser struct {
	parser.BaseParser
	opts     Options
	decoding encoding.Encoding
}

var _ parser.FileParser = (*Parser)(nil)

// New creates a Parser. Zero-valued options fall back to DefaultOptions.
func New(opts Options, logger logging.Logger) (*Parser, error) {
	normalized, err := opts.normalize()
	if err != nil {
		return nil, fmt.Errorf("invalid parser options: %w", err)
	}
	enc, err := LookupEncoding(normalized.Encoding)
	if err != nil {
		return nil, err
	}
	return &Parser{
		BaseParser: parser.NewBaseParser(logger),
		opts:       normalized,
		decoding:   enc,
	}, nil
}

// Options returns the effective options.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse reads transactions from r.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	return p.parse(r, streamSource)
}

// ParseFile reads transactions from one file. A file that cannot be opened is
// reported as *parsererror.FileError.
func (p *Parser) ParseFile(path string) ([]models.Transaction, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, path)
	logger.Info("Loading file")

	file, err := os.Open(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return nil, &parsererror.FileError{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	transactions, err := p.parse(file, path)
	if err != nil {
		return nil, &parsererror.FileError{Path: path, Op: "read", Err: err}
	}
	return transactions, nil
}

// ParseFiles parses paths in order and concatenates the results. The first file
// error aborts the whole call; no partial result is returned.
func (p *Parser) ParseFiles(paths []string) ([]models.Transaction, error) {
	var all []models.Transaction
	for _, path := range paths {
		transactions, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, transactions...)
	}

	p.GetLogger().Info("Loaded transactions",
		logging.F(logging.FieldFiles, len(paths)),
		logging.F(logging.FieldCount, len(all)))
	return all, nil
}

// ValidateFormat reports whether path looks like an export: more rows than the
// preamble and at least one data row wide enough to hold a transaction.
func (p *Parser) ValidateFormat(path string) (bool, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, path)

	file, err := os.Open(path) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return false, &parsererror.FileError{Path: path, Op: "open", Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader, err := p.newReader(file)
	if err != nil {
		return false, &parsererror.FileError{Path: path, Op: "read", Err: err}
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			logger.Debug("No transaction row found")
			return false, nil
		}
		if err != nil {
			return false, &parsererror.FileError{Path: path, Op: "read", Err: err}
		}
		if len(record) >= p.opts.MinFields {
			return true, nil
		}
	}
}

// newReader decodes r and skips the preamble. The preamble is counted in physical
// lines, blank ones included; a stream shorter than the preamble yields no records.
func (p *Parser) newReader(r io.Reader) (*csv.Reader, error) {
	buffered := bufio.NewReader(p.decoding.NewDecoder().Reader(r))
	for line := 0; line < p.opts.HeaderRows; line++ {
		if _, err := buffered.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading header rows: %w", err)
		}
	}

	reader := csv.NewReader(buffered)
	reader.Comma = p.opts.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader, nil
}

// rowIndex is the 0-based physical row of the record last returned by reader.
func (p *Parser) rowIndex(reader *csv.Reader) int {
	line, _ := reader.FieldPos(0)
	return p.opts.HeaderRows + line - 1
}

func (p *Parser) parse(r io.Reader, source string) ([]models.Transaction, error) {
	logger := p.GetLogger().WithField(logging.FieldFile, source)
	reader, err := p.newReader(r)
	if err != nil {
		return nil, err
	}

	var (
		transactions []models.Transaction
		skipped      int
		failed       int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading rows: %w", err)
		}
		index := p.rowIndex(reader)
		if len(record) < p.opts.MinFields {
			skipped++
			logger.Debug("Skipping short row",
				logging.F(logging.FieldRow, index),
				logging.F(logging.FieldCount, len(record)))
			continue
		}

		tx, err := p.convertRow(record, index, source)
		if err != nil {
			failed++
			logger.WithError(err).Warn("Error parsing row, skipping",
				logging.F(logging.FieldRow, index))
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.Debug("Parsed rows",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldSkipped, skipped+failed))
	return transactions, nil
}

// convertRow maps one data row onto a Transaction. The category stays unset.
func (p *Parser) convertRow(record []string, index int, source string) (models.Transaction, error) {
	fail := func(field, value string, err error) error {
		return &parsererror.ParseError{File: source, Row: index, Field: field, Value: value, Err: err}
	}

	bookingDate, err := dateutils.ParseExportDate(record[colBookingDate], p.opts.DateLayout)
	if err != nil {
		return models.Transaction{}, fail("booking_date", record[colBookingDate], err)
	}
	operationDate, err := dateutils.ParseExportDate(record[colOperationDate], p.opts.DateLayout)
	if err != nil {
		return models.Transaction{}, fail("operation_date", record[colOperationDate], err)
	}
	amount, err := currencyutils.ParseAmount(record[colAmount])
	if err != nil {
		return models.Transaction{}, fail("amount", record[colAmount], err)
	}
	balance, err := currencyutils.ParseAmount(record[colBalanceAfter])
	if err != nil {
		return models.Transaction{}, fail("balance_after", record[colBalanceAfter], err)
	}

	return models.Transaction{
		BookingDate:   bookingDate,
		OperationDate: operationDate,
		OperationType: record[colOperationType],
		Amount:        amount,
		Currency:      record[colCurrency],
		Counterparty:  record[colCounterparty],
		Title:         record[colTitle],
		BalanceAfter:  balance,
	}, nil
}
