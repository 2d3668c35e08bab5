// Package dateutils provides the date layouts and conversions shared by the parser and the reports.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used by the export and by the reports.
const (
	DateLayoutExport = "02-01-2006" // dd-MM-yyyy as written by the bank
	DateLayoutISO    = "2006-01-02"
	MonthLayout      = "2006-01"
)

// ParseExportDate parses a date cell with layout. An empty layout means DateLayoutExport.
func ParseExportDate(value, layout string) (time.Time, error) {
	if layout == "" {
		layout = DateLayoutExport
	}
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' for layout %s: %w", value, layout, err)
	}
	return t, nil
}

// ToISODate formats a date as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the YYYY-MM bucket a date belongs to.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// ValidateLayout checks that layout round-trips a reference date, so a typo in
// configuration is caught before any file is read.
func ValidateLayout(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return fmt.Errorf("empty date layout")
	}
	ref := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	parsed, err := time.Parse(layout, ref.Format(layout))
	if err != nil {
		return fmt.Errorf("date layout %q does not parse its own output: %w", layout, err)
	}
	if !parsed.Equal(ref) {
		return fmt.Errorf("date layout %q must contain day, month and year", layout)
	}
	return nil
}
