package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/pagebar/internal/config"
	"github.com/rshade/pagebar/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the pagebar CLI.
// It wires up configuration, logging and the range, browse, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:           "pagebar",
		Short:         "Compute pagination bars",
		Long:          "pagebar: compute the page numbers and ellipsis markers a paginated view should display",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $PAGEBAR_CONFIG or ~/.pagebar/config.yaml)")
	cmd.AddCommand(NewRangeCmd(), NewBrowseCmd(), newConfigCmd(), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Page bar for page 4 of 10
  pagebar range --total 10 --page 4

  # Page bar for 523 items, 25 per page, as JSON
  pagebar range --items 523 --page-size 25 --page 7 --output json

  # Apply navigation steps before printing
  pagebar range --total 1000 --nav next,next,last,prev

  # Browse 500 rows interactively
  pagebar browse --items 500 --page-size 15

  # Write a default configuration file
  pagebar config init`

// loadConfig loads .env, the config file and environment overrides into the global config.
func loadConfig(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(""); err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		// The config commands report a broken file themselves.
		if isConfigCommand(cmd) {
			config.SetGlobalConfig(config.New())
			return nil
		}
		return fmt.Errorf("loading configuration: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

// isConfigCommand reports whether cmd belongs to the config command group.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
