// Package categorizer assigns each transaction exactly one category by evaluating an
// ordered list of rules. The first matching rule wins; transactions no rule accepts
// fall back to Other.
package categorizer

import (
	"fmt"

	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/models"
)

// KeywordStore supplies keyword tables, e.g. from a user rules file.
type KeywordStore interface {
	LoadKeywords() (models.Keywords, error)
}

// Categorizer evaluates rules in order.
type Categorizer struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Categorizer from an explicit rule list.
func New(rules []Rule, logger logging.Logger) (*Categorizer, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		switch {
		case rule.Name == "":
			return nil, fmt.Errorf("rule %d has no name", i)
		case seen[rule.Name]:
			return nil, fmt.Errorf("duplicate rule name %q", rule.Name)
		case rule.Match == nil:
			return nil, fmt.Errorf("rule %q has no matcher", rule.Name)
		case !rule.Category.IsValid():
			return nil, fmt.Errorf("rule %q has invalid category %v", rule.Name, rule.Category)
		}
		seen[rule.Name] = true
	}

	return &Categorizer{
		rules:  append([]Rule(nil), rules...),
		logger: logger,
	}, nil
}

// NewWithKeywords creates a Categorizer running DefaultRules over kw.
func NewWithKeywords(kw models.Keywords, logger logging.Logger) (*Categorizer, error) {
	return New(DefaultRules(kw), logger)
}

// NewFromStore loads keyword tables from store and builds the default rules over them.
func NewFromStore(store KeywordStore, logger logging.Logger) (*Categorizer, error) {
	kw, err := store.LoadKeywords()
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords: %w", err)
	}
	return NewWithKeywords(kw, logger)
}

// Rules returns a copy of the ordered rule list.
func (c *Categorizer) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// CategorizeTransaction returns the category of the first rule matching tx.
// tx is not modified.
func (c *Categorizer) CategorizeTransaction(tx *models.Transaction) models.Category {
	category, _ := c.match(tx)
	return category
}

// Categorize sets the category of every transaction in place and returns counts.
// Running it again over the same slice gives the same result.
func (c *Categorizer) Categorize(transactions []models.Transaction) models.CategorizationStats {
	stats := models.NewCategorizationStats()
	for i := range transactions {
		tx := &transactions[i]
		category, rule := c.match(tx)
		tx.Category = category
		stats.Record(category)

		c.logger.Debug("Transaction categorized",
			logging.F(logging.FieldRule, rule),
			logging.F(logging.FieldCategory, category.String()),
			logging.F("title", tx.Title))
	}

	stats.LogSummary(c.logger)
	return stats
}

func (c *Categorizer) match(tx *models.Transaction) (models.Category, string) {
	for _, rule := range c.rules {
		if rule.Match(tx) {
			return rule.Category, rule.Name
		}
	}
	return FallbackCategory, "fallback"
}
