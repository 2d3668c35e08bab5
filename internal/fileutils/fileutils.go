// Package fileutils resolves the input paths given on the command line.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bank-analyzer/internal/logging"
)

// ExportExtension is the extension collected from directory arguments.
const ExportExtension = ".csv"

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListFilesWithExtension returns the files directly inside dirPath whose extension
// matches extension case-insensitively, sorted by name.
func ListFilesWithExtension(dirPath, extension string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), extension) {
			continue
		}
		files = append(files, filepath.Join(dirPath, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ExpandInputs replaces every directory in paths with the export files it contains.
// Plain paths are kept as given, even when they do not exist, so the parser reports them.
// Order is preserved.
func ExpandInputs(paths []string, logger logging.Logger) ([]string, error) {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		if !DirectoryExists(path) {
			expanded = append(expanded, path)
			continue
		}

		files, err := ListFilesWithExtension(path, ExportExtension)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("directory %s contains no %s files", path, ExportExtension)
		}
		if logger != nil {
			logger.Debug("Expanded input directory",
				logging.F(logging.FieldFile, path),
				logging.F(logging.FieldCount, len(files)))
		}
		expanded = append(expanded, files...)
	}
	return expanded, nil
}
