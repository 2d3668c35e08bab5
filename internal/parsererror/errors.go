// Package parsererror defines the typed errors raised while reading exports and configuration.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrRowTooShort marks a row with fewer fields than the export format requires.
var ErrRowTooShort = errors.New("row has too few fields")

// ParseError is a row-level failure. The row is dropped and processing continues.
type ParseError struct {
	File  string
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: row %d: %v", e.File, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
		e.File, e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FileError is a file-level failure. It aborts the run.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s file '%s': %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}
