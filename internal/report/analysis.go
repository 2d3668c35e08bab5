package report

import (
	"sort"
	"time"

	"bank-analyzer/internal/dateutils"
	"bank-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed outflow of one category.
type CategoryTotal struct {
	Category models.Category
	Total    decimal.Decimal
}

// MonthSummary is the income and expenses booked in one YYYY-MM month.
type MonthSummary struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Balance returns income minus expenses.
func (m MonthSummary) Balance() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// Summary holds the console totals. Internal transfers are excluded.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns income minus expenses.
func (s Summary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expenses)
}

// DateRange returns the earliest and latest operation date. ok is false for no transactions.
func DateRange(transactions []models.Transaction) (from, to time.Time, ok bool) {
	for i, tx := range transactions {
		if i == 0 || tx.OperationDate.Before(from) {
			from = tx.OperationDate
		}
		if i == 0 || tx.OperationDate.After(to) {
			to = tx.OperationDate
		}
	}
	return from, to, len(transactions) > 0
}

// CategoryTotals sums the absolute outflow per category, skipping internal transfers.
// Larger totals come first; equal totals keep category declaration order.
func CategoryTotals(transactions []models.Transaction) []CategoryTotal {
	sums := make(map[models.Category]decimal.Decimal)
	for i := range transactions {
		tx := &transactions[i]
		if !tx.IsOutflow() || tx.IsInternalTransfer() {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.AbsAmount())
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if cmp := totals[i].Total.Cmp(totals[j].Total); cmp != 0 {
			return cmp > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// TotalExpenses adds up category totals.
func TotalExpenses(totals []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	return sum
}

// MonthlyBreakdown groups every transaction, internal transfers included, by the
// month of its operation date. Negative amounts are expenses; everything else,
// zero included, is income. Months are returned in ascending order.
func MonthlyBreakdown(transactions []models.Transaction) []MonthSummary {
	months := make(map[string]*MonthSummary)
	for i := range transactions {
		tx := &transactions[i]
		key := dateutils.MonthKey(tx.OperationDate)
		summary, ok := months[key]
		if !ok {
			summary = &MonthSummary{Month: key, Income: decimal.Zero, Expenses: decimal.Zero}
			months[key] = summary
		}
		if tx.IsOutflow() {
			summary.Expenses = summary.Expenses.Add(tx.AbsAmount())
		} else {
			summary.Income = summary.Income.Add(tx.Amount)
		}
	}

	result := make([]MonthSummary, 0, len(months))
	for _, summary := range months {
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}

// TopExpenses returns at most n outflows, most negative first.
func TopExpenses(transactions []models.Transaction, n int) []models.Transaction {
	var outflows []models.Transaction
	for _, tx := range transactions {
		if tx.IsOutflow() {
			outflows = append(outflows, tx)
		}
	}
	sort.SliceStable(outflows, func(i, j int) bool {
		return outflows[i].Amount.LessThan(outflows[j].Amount)
	})
	if n >= 0 && len(outflows) > n {
		outflows = outflows[:n]
	}
	return outflows
}

// Totals returns income and expenses over all transactions except internal transfers.
func Totals(transactions []models.Transaction) Summary {
	summary := Summary{Income: decimal.Zero, Expenses: decimal.Zero}
	for i := range transactions {
		tx := &transactions[i]
		if tx.IsInternalTransfer() {
			continue
		}
		switch {
		case tx.IsInflow():
			summary.Income = summary.Income.Add(tx.Amount)
		case tx.IsOutflow():
			summary.Expenses = summary.Expenses.Add(tx.AbsAmount())
		}
	}
	return summary
}
