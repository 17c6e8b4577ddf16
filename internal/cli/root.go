// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cmdlint/internal/config"
	"github.com/aidanlsb/cmdlint/internal/rules"
	"github.com/aidanlsb/cmdlint/internal/ui"
)

var (
	// Global flags
	configPath string

	// Resolved values
	cfg      *config.Config
	ruleOpts *rules.Options
)

// defaultCommandsDir is where check and fix look when no directory is given.
const defaultCommandsDir = "./commands"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cmdlint",
	Short: "Validate and auto-fix slash command files",
	Long: `cmdlint validates slash command files: markdown documents with an
optional YAML frontmatter block carrying fields like description,
allowed-tools, and argument-hint.

It checks frontmatter structure, field types and values, and the command
body, and can repair common authoring mistakes in place.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't consult it.
		switch cmd.Name() {
		case "version", "completion", "help", "docs", "hook":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "docs" || cmd.Parent().Name() == "hook") {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		ruleOpts, err = cfg.RuleOptions()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getRuleOptions returns the resolved rule options, falling back to the
// defaults when no config was loaded.
func getRuleOptions() *rules.Options {
	if ruleOpts == nil {
		return rules.DefaultOptions()
	}
	return ruleOpts
}

func loadGlobalConfig() (*config.Config, error) {
	var loadedCfg *config.Config
	var err error
	if configPath != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, nil
}
