// Package rules implements the rules command, listing the effective categorization rules.
package rules

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"bank-analyzer/cmd/root"
	"bank-analyzer/internal/categorizer"
	"bank-analyzer/internal/container"

	"github.com/spf13/cobra"
)

// InitPath is the --init flag value.
var InitPath string

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "List the categorization rules in evaluation order",
	Long: `Rules prints the effective keyword rules, built-in tables merged with the rules file,
in the order they are tried. With --init it writes those tables to a new rules file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.RequireContainer()
		if err != nil {
			return err
		}
		if InitPath != "" {
			if err := WriteRulesFile(c, InitPath); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Rules written to: %s\n", InitPath)
			return nil
		}
		return List(c, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVar(&InitPath, "init", "", "Write the effective keyword tables to this file")
}

// List prints one line per rule: position, name, category and keyword count.
func List(c *container.Container, out io.Writer) error {
	for i, rule := range c.GetCategorizer().Rules() {
		_, err := fmt.Fprintf(out, "%2d. %-18s %-20s %d keywords\n",
			i+1, rule.Name, rule.Category.DisplayName(), len(rule.Keywords))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(out, "    %-18s %s\n", "fallback", categorizer.FallbackCategory.DisplayName())
	return err
}

// WriteRulesFile saves the effective keyword tables to path. An existing file is left alone.
func WriteRulesFile(c *container.Container, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("rules file %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	s := c.GetStore()
	kw, err := s.LoadKeywords()
	if err != nil {
		return err
	}
	return s.SaveKeywords(path, kw)
}
