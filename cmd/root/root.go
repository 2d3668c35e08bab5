// Package root contains the root command for the application
package root

import (
	"fmt"

	"bank-analyzer/internal/config"
	"bank-analyzer/internal/container"
	"bank-analyzer/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// AnnotationUsageWithoutArgs marks a command that only prints its usage when called
// without arguments. Configuration is not loaded for such a call.
const AnnotationUsageWithoutArgs = "usage_without_args"

var (
	// ConfigFile is the --config flag value.
	ConfigFile string
	// LogLevel is the --log-level flag value; empty keeps the configured level.
	LogLevel string

	// AppConfig is the configuration loaded for the current run.
	AppConfig *config.Config
	// AppContainer holds the wired dependencies for the current run.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-analyzer",
		Short: "Analyze and categorize bank account exports.",
		Long: `bank-analyzer reads bank account CSV exports, assigns each transaction to a
spending or income category with keyword rules, and writes a plain text report.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
	}
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	flags := Cmd.PersistentFlags()
	if flags.Lookup("config") == nil {
		flags.StringVarP(&ConfigFile, "config", "c", "", "Config file (default: config.yaml in ., .bank-analyzer/ or $HOME/.bank-analyzer/)")
	}
	if flags.Lookup("log-level") == nil {
		flags.StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	}
}

func initialize(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && cmd.Annotations[AnnotationUsageWithoutArgs] == "true" {
		return nil
	}

	if err := config.LoadEnv(nil); err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	cfg, err := config.InitializeConfig(ConfigFile)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		if _, err := logrus.ParseLevel(LogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", LogLevel, err)
		}
		cfg.Log.Level = LogLevel
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	c.GetLogger().Debug("Configuration loaded",
		logging.F("config_file", cfg.ConfigFileUsed),
		logging.F(logging.FieldOperation, cmd.Name()))
	return nil
}

// GetContainer returns the container built for the current run, or nil before initialization.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration for the current run, falling back to defaults.
func GetConfig() *config.Config {
	if AppConfig == nil {
		return config.Default()
	}
	return AppConfig
}

// RequireContainer returns the run's container or an error when initialization did not happen.
func RequireContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return AppContainer, nil
}
