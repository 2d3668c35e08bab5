// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one row of a bank account export.
type Transaction struct {
	BookingDate   time.Time
	OperationDate time.Time
	OperationType string
	Amount        decimal.Decimal // signed: positive inflow, negative outflow
	Currency      string
	Counterparty  string
	Title         string
	BalanceAfter  decimal.Decimal
	Category      Category
}

// IsInflow returns true for a strictly positive amount.
func (t *Transaction) IsInflow() bool {
	return t.Amount.IsPositive()
}

// IsOutflow returns true for a strictly negative amount.
func (t *Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// AbsAmount returns the magnitude of the amount.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// IsInternalTransfer reports whether money only moved between the user's own accounts.
func (t *Transaction) IsInternalTransfer() bool {
	return t.Category == CategoryInternalTransfer
}

// String renders "<date> | <amount> <currency> | <category> | <title>".
func (t *Transaction) String() string {
	return fmt.Sprintf("%s | %s %s | %s | %s",
		t.OperationDate.Format("2006-01-02"),
		t.Amount.StringFixed(2),
		t.Currency,
		t.Category.DisplayName(),
		t.Title,
	)
}
