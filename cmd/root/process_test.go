package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"bank-analyzer/cmd/root"
	"bank-analyzer/internal/config"
	"bank-analyzer/internal/container"
	"bank-analyzer/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportPreamble = `Account history
Account number,12 3456 7890
Owner,JAN KOWALSKI
Period,01-01-2024,31-01-2024
Currency,PLN
Statement,January
Booking date,Operation date,Operation type,Amount,Currency,Counterparty,Account,Title,Balance
`

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.csv")
	require.NoError(t, os.WriteFile(valid, []byte(exportPreamble+
		`02-01-2024,01-01-2024,Płatność kartą,"-25,50",PLN,ZABKA,,ZABKA KRAKOW,"1974,50"`+"\n"), 0600))
	headerOnly := filepath.Join(dir, "header.csv")
	require.NoError(t, os.WriteFile(headerOnly, []byte(exportPreamble), 0600))
	missing := filepath.Join(dir, "missing.csv")

	cfg := config.Default()
	cfg.Rules.File = filepath.Join(dir, "none.yaml")
	logger := &logging.MockLogger{}
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)

	files, err := root.ResolveInputs(c, []string{valid, headerOnly, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{valid, headerOnly, missing}, files)

	warnings := logger.GetEntriesByLevel("WARN")
	require.Len(t, warnings, 1)
	file, ok := warnings[0].FieldValue(logging.FieldFile)
	require.True(t, ok)
	assert.Equal(t, headerOnly, file)

	assert.True(t, logger.HasEntry("DEBUG", "Format check skipped"))
}

func TestResolveInputs_EmptyDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.File = filepath.Join(t.TempDir(), "none.yaml")
	c, err := container.NewContainerWithLogger(cfg, &logging.MockLogger{})
	require.NoError(t, err)

	_, err = root.ResolveInputs(c, []string{t.TempDir()})
	assert.Error(t, err)
}
