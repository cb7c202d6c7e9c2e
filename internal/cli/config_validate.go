package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/pagebar/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax
- Output and log format names
- Non-negative siblings and boundaries
- PAGEBAR_* environment overrides`,
		Example: `  # Validate current configuration
  pagebar config validate

  # Validate and show detailed information
  pagebar config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := targetConfigPath(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		cmd.Printf("No configuration file at %s, defaults apply\n", path)
	}
	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, path, cfg)
	}

	return nil
}

// printVerboseDetails prints the effective configuration.
func printVerboseDetails(cmd *cobra.Command, path string, cfg *config.Config) {
	cmd.Println()
	cmd.Printf("Configuration file: %s\n", path)
	cmd.Println()
	cmd.Println("Output:")
	cmd.Printf("  Default format: %s\n", cfg.Output.DefaultFormat)
	cmd.Println()
	cmd.Println("Logging:")
	cmd.Printf("  Level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  File: %s\n", cfg.Logging.File)
	}
	cmd.Println()
	cmd.Println("Pagination:")
	cmd.Printf("  Siblings: %d\n", cfg.Pagination.Siblings)
	cmd.Printf("  Boundaries: %d\n", cfg.Pagination.Boundaries)
	cmd.Printf("  Page size: %d\n", cfg.Pagination.PageSize)
}
