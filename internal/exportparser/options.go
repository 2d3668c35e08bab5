package exportparser

import (
	"fmt"
	"sort"
	"strings"

	"bank-analyzer/internal/dateutils"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Column positions in a data row. Column 6 carries nothing the analyzer uses.
const (
	colBookingDate = iota
	colOperationDate
	colOperationType
	colAmount
	colCurrency
	colCounterparty
	_
	colTitle
	colBalanceAfter

	requiredFields
)

// Options describes the layout of an export file.
type Options struct {
	HeaderRows int    // leading rows to skip
	MinFields  int    // shorter rows are ignored; never less than the mapped columns
	DateLayout string // Go time layout of both date columns
	Delimiter  rune
	Encoding   string // utf-8, windows-1250 or iso-8859-2
}

// DefaultOptions returns the layout of the bank's standard export.
func DefaultOptions() Options {
	return Options{
		HeaderRows: 7,
		MinFields:  9,
		DateLayout: dateutils.DateLayoutExport,
		Delimiter:  ',',
		Encoding:   "utf-8",
	}
}

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf8":         unicode.UTF8BOM,
	"windows-1250": charmap.Windows1250,
	"cp1250":       charmap.Windows1250,
	"iso-8859-2":   charmap.ISO8859_2,
	"latin2":       charmap.ISO8859_2,
}

// LookupEncoding resolves an encoding name, case-insensitively.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)",
			name, strings.Join(SupportedEncodings(), ", "))
	}
	return enc, nil
}

// SupportedEncodings lists the accepted encoding names.
func SupportedEncodings() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalize fills zero values with defaults and checks the rest.
func (o Options) normalize() (Options, error) {
	def := DefaultOptions()
	if o.Delimiter == 0 {
		o.Delimiter = def.Delimiter
	}
	if o.DateLayout == "" {
		o.DateLayout = def.DateLayout
	}
	if o.Encoding == "" {
		o.Encoding = def.Encoding
	}
	if o.MinFields < requiredFields {
		o.MinFields = requiredFields
	}
	if o.HeaderRows < 0 {
		return o, fmt.Errorf("header rows must not be negative, got %d", o.HeaderRows)
	}
	if o.Delimiter == '"' || o.Delimiter == '\r' || o.Delimiter == '\n' {
		return o, fmt.Errorf("invalid delimiter %q", o.Delimiter)
	}
	if _, err := LookupEncoding(o.Encoding); err != nil {
		return o, err
	}
	if err := dateutils.ValidateLayout(o.DateLayout); err != nil {
		return o, err
	}
	return o, nil
}
