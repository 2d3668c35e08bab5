package models

import (
	"fmt"
	"strings"
)

// Category is the closed set of spending and income categories.
type Category int

// The zero value CategoryUnset marks a transaction the categorizer has not seen yet.
const (
	CategoryUnset Category = iota
	CategoryFood
	CategoryTransport
	CategoryBills
	CategoryEntertainment
	CategoryShopping
	CategoryHealth
	CategorySalary
	CategoryOtherIncome
	CategoryTransfers
	CategoryInternalTransfer
	CategoryOther
)

var categoryNames = [...]string{
	CategoryUnset:            "Unset",
	CategoryFood:             "Food",
	CategoryTransport:        "Transport",
	CategoryBills:            "Bills",
	CategoryEntertainment:    "Entertainment",
	CategoryShopping:         "Shopping",
	CategoryHealth:           "Health",
	CategorySalary:           "Salary",
	CategoryOtherIncome:      "OtherIncome",
	CategoryTransfers:        "Transfers",
	CategoryInternalTransfer: "InternalTransfer",
	CategoryOther:            "Other",
}

var categoryDisplayNames = [...]string{
	CategoryUnset:            "",
	CategoryFood:             "Jedzenie",
	CategoryTransport:        "Transport",
	CategoryBills:            "Rachunki",
	CategoryEntertainment:    "Rozrywka",
	CategoryShopping:         "Zakupy",
	CategoryHealth:           "Zdrowie",
	CategorySalary:           "Wynagrodzenie",
	CategoryOtherIncome:      "Inne przychody",
	CategoryTransfers:        "Przelewy",
	CategoryInternalTransfer: "Transfer wewnetrzny",
	CategoryOther:            "Inne",
}

// AllCategories returns every assignable category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryBills,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategorySalary,
		CategoryOtherIncome,
		CategoryTransfers,
		CategoryInternalTransfer,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the assignable categories.
func (c Category) IsValid() bool {
	return c > CategoryUnset && c <= CategoryOther
}

// String returns the identifier, e.g. "InternalTransfer".
func (c Category) String() string {
	if c < CategoryUnset || c > CategoryOther {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// DisplayName returns the label used in reports.
func (c Category) DisplayName() string {
	if c < CategoryUnset || c > CategoryOther {
		return c.String()
	}
	return categoryDisplayNames[c]
}

// ParseCategory accepts either the identifier or the display name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range AllCategories() {
		if strings.EqualFold(s, c.String()) || strings.EqualFold(s, c.DisplayName()) {
			return c, nil
		}
	}
	return CategoryUnset, fmt.Errorf("unknown category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if c == CategoryUnset {
		return []byte{}, nil
	}
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields CategoryUnset.
func (c *Category) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*c = CategoryUnset
		return nil
	}
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
