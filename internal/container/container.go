// Package container provides dependency injection for the bank-analyzer application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"bank-analyzer/internal/categorizer"
	"bank-analyzer/internal/config"
	"bank-analyzer/internal/exportparser"
	"bank-analyzer/internal/logging"
	"bank-analyzer/internal/parser"
	"bank-analyzer/internal/report"
	"bank-analyzer/internal/store"

	"github.com/google/uuid"
)

// Container holds all application dependencies. It is immutable after creation.
type Container struct {
	runID       string
	logger      logging.Logger
	config      *config.Config
	store       *store.RuleStore
	categorizer *categorizer.Categorizer
	parser      *exportparser.Parser
	reporter    *report.Generator
}

// NewContainer creates and wires all application dependencies, logging through logrus.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an injected logger.
// Every entry logged through the container is tagged with the run's id.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	runID := uuid.NewString()
	logger = logger.WithField(logging.FieldRunID, runID)

	ruleStore := store.NewRuleStore(cfg.Rules.File, logger)

	cat, err := categorizer.NewFromStore(ruleStore, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating categorizer: %w", err)
	}

	exportParser, err := exportparser.New(ParserOptions(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating parser: %w", err)
	}

	reporter := report.NewGenerator(ReportOptions(cfg), logger)

	logger.Debug("Container initialized",
		logging.F("config_file", cfg.ConfigFileUsed),
		logging.F(logging.FieldEncoding, cfg.Parser.Encoding))

	return &Container{
		runID:       runID,
		logger:      logger,
		config:      cfg,
		store:       ruleStore,
		categorizer: cat,
		parser:      exportParser,
		reporter:    reporter,
	}, nil
}

// ParserOptions maps the parser section of cfg onto exportparser options.
func ParserOptions(cfg *config.Config) exportparser.Options {
	return exportparser.Options{
		HeaderRows: cfg.Parser.HeaderRows,
		MinFields:  cfg.Parser.MinFields,
		DateLayout: cfg.Parser.DateFormat,
		Delimiter:  cfg.DelimiterRune(),
		Encoding:   cfg.Parser.Encoding,
	}
}

// ReportOptions maps the report section of cfg onto report options.
func ReportOptions(cfg *config.Config) report.Options {
	opts := report.DefaultOptions()
	opts.Currency = cfg.Report.Currency
	opts.TopN = cfg.Report.TopN
	opts.TitleMaxLength = cfg.Report.TitleMaxLength
	return opts
}

// GetRunID returns the id tagging this run's log entries.
func (c *Container) GetRunID() string {
	return c.runID
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the rules file store.
func (c *Container) GetStore() *store.RuleStore {
	return c.store
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetParser returns the export parser.
func (c *Container) GetParser() parser.FileParser {
	return c.parser
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reporter
}
