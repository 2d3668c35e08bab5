package parser

import (
	"io"

	"bank-analyzer/internal/models"
)

// Parser turns an export stream into transactions.
//
// Row-level problems are logged and the row is dropped; an error is returned
// only when the stream itself cannot be read.
type Parser interface {
	Parse(r io.Reader) ([]models.Transaction, error)
}

// FileParser is a Parser that also reads files from disk.
type FileParser interface {
	Parser
	ParseFile(path string) ([]models.Transaction, error)
	ParseFiles(paths []string) ([]models.Transaction, error)
	ValidateFormat(path string) (bool, error)
}
