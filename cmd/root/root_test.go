package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"bank-analyzer/cmd/root"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
	t.Setenv("HOME", dir)
	for _, key := range []string{"BANK_LOG_LEVEL", "BANK_REPORT_CURRENCY", "BANK_PARSER_ENCODING", "BANK_RULES_FILE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	savedConfig, savedContainer := root.AppConfig, root.AppContainer
	savedFile, savedLevel := root.ConfigFile, root.LogLevel
	t.Cleanup(func() {
		root.AppConfig, root.AppContainer = savedConfig, savedContainer
		root.ConfigFile, root.LogLevel = savedFile, savedLevel
	})
	return dir
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "bank-analyzer", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "bank account exports")
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.True(t, root.Cmd.SilenceUsage)
	assert.True(t, root.Cmd.SilenceErrors)
}

func TestInit_Flags(t *testing.T) {
	root.Init()
	root.Init()

	configFlag := root.Cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "", configFlag.DefValue)

	logLevelFlag := root.Cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)

	root.Cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		assert.NotEmpty(t, f.Usage, "flag %s has no usage text", f.Name)
	})
}

func TestPersistentPreRunE_BuildsContainer(t *testing.T) {
	isolate(t)
	root.ConfigFile = ""
	root.LogLevel = "debug"

	require.NoError(t, root.Cmd.PersistentPreRunE(&cobra.Command{Use: "test"}, nil))

	c := root.GetContainer()
	require.NotNil(t, c)
	assert.NotEmpty(t, c.GetRunID())
	assert.Equal(t, "debug", root.GetConfig().Log.Level)

	got, err := root.RequireContainer()
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestPersistentPreRunE_Errors(t *testing.T) {
	tests := []struct {
		name       string
		configFile string
		logLevel   string
		content    string
	}{
		{name: "missing explicit config file", configFile: "missing.yaml"},
		{name: "invalid log level flag", logLevel: "loud"},
		{name: "invalid config value", configFile: "bad.yaml", content: "report:\n  top_n: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			root.AppContainer = nil
			root.ConfigFile = ""
			if tt.configFile != "" {
				root.ConfigFile = filepath.Join(dir, tt.configFile)
			}
			if tt.content != "" {
				require.NoError(t, os.WriteFile(root.ConfigFile, []byte(tt.content), 0600))
			}
			root.LogLevel = tt.logLevel

			err := root.Cmd.PersistentPreRunE(&cobra.Command{Use: "test"}, nil)
			assert.Error(t, err)
			assert.Nil(t, root.GetContainer())
		})
	}
}

func TestGetConfig_DefaultsBeforeInitialization(t *testing.T) {
	isolate(t)
	root.AppConfig = nil
	root.AppContainer = nil

	cfg := root.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "PLN", cfg.Report.Currency)

	_, err := root.RequireContainer()
	assert.Error(t, err)
}
