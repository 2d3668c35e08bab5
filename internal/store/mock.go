package store

import (
	"bank-analyzer/internal/models"
)

// MockRuleStore is a mock implementation of RuleStore for testing.
type MockRuleStore struct {
	Keywords *models.Keywords

	LoadKeywordsError error
	LoadCalls         int
}

// LoadKeywords returns the mock keywords, or the built-in ones when none are set.
func (m *MockRuleStore) LoadKeywords() (models.Keywords, error) {
	m.LoadCalls++
	if m.LoadKeywordsError != nil {
		return models.Keywords{}, m.LoadKeywordsError
	}
	if m.Keywords == nil {
		return models.DefaultKeywords(), nil
	}
	return *m.Keywords, nil
}
