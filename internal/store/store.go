// Package store loads and saves the user's keyword rules file.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultRulesFile is looked up when no rules file is configured.
const DefaultRulesFile = "rules.yaml"

// RulesDocument is the on-disk layout of a rules file.
//
//	extend: true          # append to the built-in lists instead of replacing them
//	keywords:
//	  food: [LIDL, ALDI]
//	  transfer_operation_types: [Przelew]
//
// Lists that are absent keep their built-in values.
type RulesDocument struct {
	Extend   bool           `yaml:"extend,omitempty"`
	Keywords models.Keywords `yaml:"keywords"`
}

// RuleStore reads keyword overrides from a YAML file.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// NewRuleStore creates a store for rulesFile. An empty name means DefaultRulesFile.
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{RulesFile: rulesFile, logger: logger}
}

// FindConfigFile looks for filename in the working directory, ./config and
// ~/.config/bank-analyzer, in that order.
func (s *RuleStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "bank-analyzer", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadKeywords returns the built-in keyword tables with the rules file applied.
// A missing file is not an error; a malformed one is.
func (s *RuleStore) LoadKeywords() (models.Keywords, error) {
	defaults := models.DefaultKeywords()

	filename := s.RulesFile
	if filename == "" {
		filename = DefaultRulesFile
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Rules file not found, using built-in keywords",
				logging.F(logging.FieldFile, filename))
			return defaults, nil
		}
		return models.Keywords{}, fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return models.Keywords{}, fmt.Errorf("error reading rules file %s: %w", path, err)
	}

	doc, err := decodeRules(data)
	if err != nil {
		return models.Keywords{}, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	merged := merge(defaults, doc.Keywords, doc.Extend)
	s.logger.Info("Loaded rules file",
		logging.F(logging.FieldFile, path),
		logging.F("extend", doc.Extend))
	return merged, nil
}

// SaveKeywords writes kw as a complete rules file to path.
func (s *RuleStore) SaveKeywords(path string, kw models.Keywords) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating directory %s: %w", dir, err)
		}
	}

	data, err := yaml.Marshal(RulesDocument{Keywords: kw})
	if err != nil {
		return fmt.Errorf("error encoding rules: %w", err)
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing rules file %s: %w", path, err)
	}

	s.logger.Info("Rules file written", logging.F(logging.FieldOutputFile, path))
	return nil
}

func decodeRules(data []byte) (RulesDocument, error) {
	var doc RulesDocument
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return RulesDocument{}, err
	}
	return doc, nil
}

// merge overlays the lists present in override onto base.
func merge(base, override models.Keywords, extend bool) models.Keywords {
	pick := func(b, o []string) []string {
		switch {
		case o == nil:
			return b
		case extend:
			return append(append([]string(nil), b...), o...)
		default:
			return o
		}
	}

	return models.Keywords{
		Salary:                 pick(base.Salary, override.Salary),
		SalaryBonus:            pick(base.SalaryBonus, override.SalaryBonus),
		Food:                   pick(base.Food, override.Food),
		Transport:              pick(base.Transport, override.Transport),
		Entertainment:          pick(base.Entertainment, override.Entertainment),
		Bills:                  pick(base.Bills, override.Bills),
		Health:                 pick(base.Health, override.Health),
		Shopping:               pick(base.Shopping, override.Shopping),
		InternalTransfer:       pick(base.InternalTransfer, override.InternalTransfer),
		TransferOperationTypes: pick(base.TransferOperationTypes, override.TransferOperationTypes),
	}
}
