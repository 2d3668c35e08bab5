// Package currencyutils provides the amount parsing and formatting used by the parser and the reports.
package currencyutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned when an amount field is blank.
var ErrEmptyAmount = errors.New("empty amount")

var spaceRemover = strings.NewReplacer(" ", "", "\u00a0", "", "\t", "")

// ParseAmount parses an export amount that uses a decimal comma, e.g. "-1234,56".
// A decimal point is accepted as well. Grouping with dots ("1.234,56") is rejected,
// as the export never groups digits.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	normalized := spaceRemover.Replace(strings.TrimSpace(amountStr))
	if normalized == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	normalized = strings.ReplaceAll(normalized, ",", ".")

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatAmount renders an amount with two decimal places followed by the currency code,
// e.g. "1234.56 PLN". An empty currency yields the bare number.
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

// FormatFixed renders the amount right-aligned in width characters with two decimals,
// the decimal equivalent of fmt's "%<width>.2f".
func FormatFixed(amount decimal.Decimal, width int) string {
	return fmt.Sprintf("%*s", width, amount.StringFixed(2))
}

