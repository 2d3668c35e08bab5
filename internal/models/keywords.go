package models

import "strings"

// Keywords are the substring tables the categorization rules match against.
// Title and counterparty lists are compared upper-cased; TransferOperationTypes
// is compared as-is against the operation type.
type Keywords struct {
	Salary                 []string `yaml:"salary"`
	SalaryBonus            []string `yaml:"salary_bonus"`
	Food                   []string `yaml:"food"`
	Transport              []string `yaml:"transport"`
	Entertainment          []string `yaml:"entertainment"`
	Bills                  []string `yaml:"bills"`
	Health                 []string `yaml:"health"`
	Shopping               []string `yaml:"shopping"`
	InternalTransfer       []string `yaml:"internal_transfer"`
	TransferOperationTypes []string `yaml:"transfer_operation_types"`
}

// DefaultKeywords returns the built-in tables for Polish bank exports.
func DefaultKeywords() Keywords {
	return Keywords{
		Salary:      []string{"WYNAGRODZENIE"},
		SalaryBonus: []string{"GODZINY", "DODATKI"},
		Food: []string{
			"MCDONALDS", "KFC", "BURGER", "PIZZA", "KEBAB", "KABAB",
			"RESTAUR", "BAR", "CAFE", "PIJALNIA", "THAI", "ASIAN",
			"PYSZNE.PL", "ZABKA", "STOKROTKA", "BIEDRONKA",
		},
		Transport: []string{
			"BOLT", "UBER", "MPK", "PKP", "ORLEN", "PARKING",
			"JAKDOJADE", "METROPOLIA GZM",
		},
		Entertainment: []string{"CINEMA", "KINO", "THEATER", "TEATR", "NETFLIX", "SPOTIFY"},
		Bills: []string{
			"PGE", "PGNIG", "MPWIK", "NETIA", "ORANGE", "PLAY",
			"T-MOBILE", "PLUS", "FUNDUSZ REMONTOWY", "CZYNSZ",
		},
		Health:                 []string{"APTEKA", "PHARMACY", "LEKARZ", "PRZYCHODNIA", "SZPITAL"},
		Shopping:               []string{"ALLEGRO", "AMAZON", "MEDIA MARKT", "DECATHLON", "H&M", "ZARA", "RESERVED"},
		InternalTransfer:       []string{"WLASNE", "OSZCZEDNOSCIOWE", "PRZELEW WEWNETRZNY"},
		TransferOperationTypes: []string{"Przelew", "przelew", "Transfer", "transfer"},
	}
}

// Normalized returns a copy with blank entries removed and every list except
// TransferOperationTypes upper-cased.
func (k Keywords) Normalized() Keywords {
	return Keywords{
		Salary:                 normalizeList(k.Salary, true),
		SalaryBonus:            normalizeList(k.SalaryBonus, true),
		Food:                   normalizeList(k.Food, true),
		Transport:              normalizeList(k.Transport, true),
		Entertainment:          normalizeList(k.Entertainment, true),
		Bills:                  normalizeList(k.Bills, true),
		Health:                 normalizeList(k.Health, true),
		Shopping:               normalizeList(k.Shopping, true),
		InternalTransfer:       normalizeList(k.InternalTransfer, true),
		TransferOperationTypes: normalizeList(k.TransferOperationTypes, false),
	}
}

func normalizeList(list []string, upper bool) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if upper {
			item = strings.ToUpper(item)
		}
		out = append(out, item)
	}
	return out
}
