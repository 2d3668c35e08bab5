package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "rules.yaml")
	writeFile(t, testFile, "keywords: {}\n")

	store := NewRuleStore("", &logging.MockLogger{})

	file, err := store.FindConfigFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadKeywords_MissingFileUsesDefaults(t *testing.T) {
	logger := &logging.MockLogger{}
	store := NewRuleStore(filepath.Join(t.TempDir(), "missing.yaml"), logger)

	kw, err := store.LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKeywords(), kw)
	assert.True(t, logger.HasEntry("DEBUG", "Rules file not found, using built-in keywords"))
}

func TestLoadKeywords_ReplacesListedCategories(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rules.yaml")
	writeFile(t, file, `keywords:
  food: [LIDL, ALDI]
  health: []
`)

	kw, err := NewRuleStore(file, &logging.MockLogger{}).LoadKeywords()
	require.NoError(t, err)

	defaults := models.DefaultKeywords()
	assert.Equal(t, []string{"LIDL", "ALDI"}, kw.Food)
	assert.Empty(t, kw.Health, "an explicit empty list disables the rule")
	assert.Equal(t, defaults.Transport, kw.Transport)
	assert.Equal(t, defaults.TransferOperationTypes, kw.TransferOperationTypes)
}

func TestLoadKeywords_Extend(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rules.yaml")
	writeFile(t, file, `extend: true
keywords:
  transport: [FREENOW]
`)

	kw, err := NewRuleStore(file, &logging.MockLogger{}).LoadKeywords()
	require.NoError(t, err)

	defaults := models.DefaultKeywords()
	assert.Len(t, kw.Transport, len(defaults.Transport)+1)
	assert.Equal(t, "FREENOW", kw.Transport[len(kw.Transport)-1])
	assert.Equal(t, defaults.Food, kw.Food)
}

func TestLoadKeywords_EmptyFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rules.yaml")
	writeFile(t, file, "")

	kw, err := NewRuleStore(file, &logging.MockLogger{}).LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKeywords(), kw)
}

func TestLoadKeywords_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "keywords: [unclosed\n"},
		{"unknown category key", "keywords:\n  groceries: [LIDL]\n"},
		{"wrong type", "keywords:\n  food: LIDL\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "rules.yaml")
			writeFile(t, file, tt.content)

			_, err := NewRuleStore(file, &logging.MockLogger{}).LoadKeywords()
			assert.Error(t, err)
		})
	}
}

func TestSaveKeywords_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rules.yaml")
	store := NewRuleStore(path, &logging.MockLogger{})

	require.NoError(t, store.SaveKeywords(path, models.DefaultKeywords()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(models.PermissionConfigFile), info.Mode().Perm())

	kw, err := store.LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKeywords(), kw)
}

func TestMockRuleStore(t *testing.T) {
	mock := &MockRuleStore{}
	kw, err := mock.LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultKeywords(), kw)

	custom := models.Keywords{Food: []string{"X"}}
	mock.Keywords = &custom
	kw, err = mock.LoadKeywords()
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, kw.Food)

	mock.LoadKeywordsError = errors.New("boom")
	_, err = mock.LoadKeywords()
	assert.Error(t, err)
	assert.Equal(t, 3, mock.LoadCalls)
}
