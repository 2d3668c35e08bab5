package export_test

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"bank-analyzer/cmd/export"
	"bank-analyzer/internal/common"
	"bank-analyzer/internal/config"
	"bank-analyzer/internal/container"
	"bank-analyzer/internal/logging"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = `Account history
Account number,12 3456 7890
Owner,JAN KOWALSKI
Period,01-01-2024,31-01-2024
Currency,PLN
Statement,January
Booking date,Operation date,Operation type,Amount,Currency,Counterparty,Account,Title,Balance
02-01-2024,01-01-2024,Płatność kartą,"-25,50",PLN,ZABKA,,ZABKA KRAKOW,"1974,50"
03-01-2024,03-01-2024,Płatność kartą,"-12,00",PLN,BOLT,,BOLT.EU RIDE,"1962,50"
`

func readRecords(r io.Reader, delimiter rune) ([]common.CSVRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	var records []common.CSVRecord
	err := gocsv.UnmarshalCSV(reader, &records)
	return records, err
}

func newTestContainer(t *testing.T) (*container.Container, *logging.MockLogger) {
	t.Helper()
	cfg := config.Default()
	cfg.Rules.File = filepath.Join(t.TempDir(), "none.yaml")
	logger := &logging.MockLogger{}
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	return c, logger
}

func TestExportCommand_Flags(t *testing.T) {
	assert.Equal(t, "export [files or directories...]", export.Cmd.Use)

	outputFlag := export.Cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "transactions.csv", outputFlag.DefValue)

	delimiterFlag := export.Cmd.Flags().Lookup("delimiter")
	require.NotNil(t, delimiterFlag)
	assert.Equal(t, ",", delimiterFlag.DefValue)
}

func TestRun_WritesCategorizedCSV(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
	}{
		{name: "comma", delimiter: ','},
		{name: "semicolon", delimiter: ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "january.csv")
			require.NoError(t, os.WriteFile(input, []byte(statement), 0600))
			output := filepath.Join(dir, "out", "transactions.csv")
			c, logger := newTestContainer(t)

			require.NoError(t, export.Run(c, []string{input}, output, tt.delimiter))

			file, err := os.Open(output)
			require.NoError(t, err)
			defer func() { _ = file.Close() }()

			records, err := readRecords(file, tt.delimiter)
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, "Food", records[0].Category)
			assert.Equal(t, "Jedzenie", records[0].CategoryName)
			assert.Equal(t, "-25.50", records[0].Amount)
			assert.Equal(t, "Transport", records[1].Category)
			assert.Equal(t, "2024-01-03", records[1].OperationDate)

			assert.True(t, logger.HasEntry("INFO", "Successfully wrote transactions to CSV file"))
		})
	}
}

func TestRun_ParseErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "transactions.csv")
	c, _ := newTestContainer(t)

	err := export.Run(c, []string{filepath.Join(dir, "missing.csv")}, output, ',')
	require.Error(t, err)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}
