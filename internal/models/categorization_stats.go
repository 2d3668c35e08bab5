package models

import (
	"bank-analyzer/internal/logging"
)

// CategorizationStats tracks how many transactions landed in each category
type CategorizationStats struct {
	Total      int
	ByCategory map[Category]int
}

// NewCategorizationStats creates an empty CategorizationStats
func NewCategorizationStats() CategorizationStats {
	return CategorizationStats{ByCategory: make(map[Category]int)}
}

// Record counts one transaction assigned to c
func (cs *CategorizationStats) Record(c Category) {
	if cs.ByCategory == nil {
		cs.ByCategory = make(map[Category]int)
	}
	cs.Total++
	cs.ByCategory[c]++
}

// Count returns the number of transactions assigned to c
func (cs CategorizationStats) Count(c Category) int {
	return cs.ByCategory[c]
}

// Fallback returns how many transactions matched no rule
func (cs CategorizationStats) Fallback() int {
	return cs.ByCategory[CategoryOther]
}

// MatchRate returns the share of transactions matched by a rule, as a percentage
func (cs CategorizationStats) MatchRate() float64 {
	if cs.Total == 0 {
		return 0.0
	}
	return float64(cs.Total-cs.Fallback()) / float64(cs.Total) * 100.0
}

// LogSummary logs a summary of categorization statistics
func (cs CategorizationStats) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}

	fields := []logging.Field{
		logging.F(logging.FieldCount, cs.Total),
		logging.F("match_rate", cs.MatchRate()),
	}
	for _, c := range AllCategories() {
		if n := cs.ByCategory[c]; n > 0 {
			fields = append(fields, logging.F("category_"+c.String(), n))
		}
	}
	logger.Info("Categorization summary", fields...)
}
