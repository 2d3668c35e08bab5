// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"bank-analyzer/internal/dateutils"
	"bank-analyzer/internal/exportparser"
	"bank-analyzer/internal/parsererror"

	"github.com/Rhymond/go-money"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BANK_REPORT_CURRENCY.
const EnvPrefix = "BANK"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parser struct {
		HeaderRows int    `mapstructure:"header_rows" yaml:"header_rows"`
		MinFields  int    `mapstructure:"min_fields" yaml:"min_fields"`
		DateFormat string `mapstructure:"date_format" yaml:"date_format"`
		Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
		Encoding   string `mapstructure:"encoding" yaml:"encoding"`
	} `mapstructure:"parser" yaml:"parser"`

	Report struct {
		Currency       string `mapstructure:"currency" yaml:"currency"`
		TopN           int    `mapstructure:"top_n" yaml:"top_n"`
		TitleMaxLength int    `mapstructure:"title_max_length" yaml:"title_max_length"`
		Output         string `mapstructure:"output" yaml:"output"`
	} `mapstructure:"report" yaml:"report"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	// ConfigFileUsed is the file the values were read from, empty when none was found.
	ConfigFileUsed string `mapstructure:"-" yaml:"-"`
}

// DelimiterRune returns the parser delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Parser.Delimiter)
	return r
}

// InitializeConfig loads defaults, then the config file, then BANK_* environment
// variables. configFile overrides the search path; it must exist when given.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.bank-analyzer")
		v.AddConfigPath(".bank-analyzer")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicitly requested)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ConfigFileUsed = v.ConfigFileUsed()

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("config: defaults do not decode: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	parserDefaults := exportparser.DefaultOptions()
	v.SetDefault("parser.header_rows", parserDefaults.HeaderRows)
	v.SetDefault("parser.min_fields", parserDefaults.MinFields)
	v.SetDefault("parser.date_format", parserDefaults.DateLayout)
	v.SetDefault("parser.delimiter", string(parserDefaults.Delimiter))
	v.SetDefault("parser.encoding", parserDefaults.Encoding)

	v.SetDefault("report.currency", "PLN")
	v.SetDefault("report.top_n", 10)
	v.SetDefault("report.title_max_length", 50)
	v.SetDefault("report.output", "bank_analysis_report.txt")

	v.SetDefault("rules.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &parsererror.ConfigError{Key: "log.level", Reason: fmt.Sprintf("unknown level %q", config.Log.Level)}
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return &parsererror.ConfigError{Key: "log.format", Reason: fmt.Sprintf("%q must be 'text' or 'json'", config.Log.Format)}
	}

	if utf8.RuneCountInString(config.Parser.Delimiter) != 1 {
		return &parsererror.ConfigError{Key: "parser.delimiter", Reason: fmt.Sprintf("must be a single character, got %q", config.Parser.Delimiter)}
	}

	if config.Parser.HeaderRows < 0 {
		return &parsererror.ConfigError{Key: "parser.header_rows", Reason: "must not be negative"}
	}

	if config.Parser.MinFields < 0 {
		return &parsererror.ConfigError{Key: "parser.min_fields", Reason: "must not be negative"}
	}

	if err := dateutils.ValidateLayout(config.Parser.DateFormat); err != nil {
		return &parsererror.ConfigError{Key: "parser.date_format", Reason: err.Error()}
	}

	if _, err := exportparser.LookupEncoding(config.Parser.Encoding); err != nil {
		return &parsererror.ConfigError{Key: "parser.encoding", Reason: err.Error()}
	}

	if money.GetCurrency(strings.ToUpper(config.Report.Currency)) == nil {
		return &parsererror.ConfigError{Key: "report.currency", Reason: fmt.Sprintf("unknown ISO 4217 code %q", config.Report.Currency)}
	}

	if config.Report.TopN < 0 {
		return &parsererror.ConfigError{Key: "report.top_n", Reason: "must not be negative"}
	}

	if config.Report.TitleMaxLength < 0 {
		return &parsererror.ConfigError{Key: "report.title_max_length", Reason: "must not be negative"}
	}

	if strings.TrimSpace(config.Report.Output) == "" {
		return &parsererror.ConfigError{Key: "report.output", Reason: "must not be empty"}
	}

	return nil
}
