package categorizer

import (
	"strings"

	"bank-analyzer/internal/models"
)

// Rule assigns Category to every transaction Match accepts.
type Rule struct {
	Name     string
	Category models.Category
	Match    func(tx *models.Transaction) bool

	// Keywords lists what Match looks for; informational only.
	Keywords []string
}

// Rule names, in evaluation order.
const (
	RuleSalary           = "salary"
	RuleSalaryBonus      = "salary-bonus"
	RuleFood             = "food"
	RuleTransport        = "transport"
	RuleEntertainment    = "entertainment"
	RuleBills            = "bills"
	RuleHealth           = "health"
	RuleShopping         = "shopping"
	RuleInternalTransfer = "internal-transfer"
	RuleTransfer         = "transfer"
)

// FallbackCategory is assigned when no rule matches.
const FallbackCategory = models.CategoryOther

// DefaultRules builds the ordered rule list from keyword tables.
// Earlier rules win, so salary beats a title that also names a restaurant,
// and every merchant rule beats the generic transfer rules.
func DefaultRules(kw models.Keywords) []Rule {
	kw = kw.Normalized()

	return []Rule{
		{
			Name:     RuleSalary,
			Category: models.CategorySalary,
			Keywords: kw.Salary,
			Match: func(tx *models.Transaction) bool {
				return tx.IsInflow() && containsAny(upper(tx.Title), kw.Salary)
			},
		},
		{
			Name:     RuleSalaryBonus,
			Category: models.CategorySalary,
			Keywords: kw.SalaryBonus,
			Match: func(tx *models.Transaction) bool {
				return tx.IsInflow() && containsAny(upper(tx.Title), kw.SalaryBonus)
			},
		},
		titleRule(RuleFood, models.CategoryFood, kw.Food),
		titleRule(RuleTransport, models.CategoryTransport, kw.Transport),
		titleRule(RuleEntertainment, models.CategoryEntertainment, kw.Entertainment),
		{
			Name:     RuleBills,
			Category: models.CategoryBills,
			Keywords: kw.Bills,
			Match: func(tx *models.Transaction) bool {
				return containsAny(upper(tx.Counterparty), kw.Bills) ||
					containsAny(upper(tx.Title), kw.Bills)
			},
		},
		titleRule(RuleHealth, models.CategoryHealth, kw.Health),
		titleRule(RuleShopping, models.CategoryShopping, kw.Shopping),
		{
			Name:     RuleInternalTransfer,
			Category: models.CategoryInternalTransfer,
			Keywords: kw.InternalTransfer,
			Match: func(tx *models.Transaction) bool {
				if !containsAny(tx.OperationType, kw.TransferOperationTypes) {
					return false
				}
				return containsAny(upper(tx.Counterparty), kw.InternalTransfer) ||
					containsAny(upper(tx.Title), kw.InternalTransfer)
			},
		},
		{
			Name:     RuleTransfer,
			Category: models.CategoryTransfers,
			Keywords: kw.TransferOperationTypes,
			Match: func(tx *models.Transaction) bool {
				return containsAny(tx.OperationType, kw.TransferOperationTypes)
			},
		},
	}
}

func titleRule(name string, category models.Category, keywords []string) Rule {
	return Rule{
		Name:     name,
		Category: category,
		Keywords: keywords,
		Match: func(tx *models.Transaction) bool {
			return containsAny(upper(tx.Title), keywords)
		},
	}
}

func upper(s string) string {
	return strings.ToUpper(s)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
