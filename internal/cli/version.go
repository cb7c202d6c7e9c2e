package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/pagebar/pkg/version"
)

// versionInfo is the JSON form of the version command output.
type versionInfo struct {
	Version    string `json:"version"`
	Major      uint64 `json:"major"`
	Minor      uint64 `json:"minor"`
	Patch      uint64 `json:"patch"`
	Prerelease string `json:"prerelease,omitempty"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the pagebar version",
		Example: `  pagebar version
  pagebar version --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch output {
			case "", "text":
				cmd.Printf("pagebar %s\n", ver)
				return nil
			case "json":
				return renderVersionJSON(cmd, ver)
			default:
				return usageError(fmt.Errorf("unsupported output format: %s", output))
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "text", "Output format: text, json")

	return cmd
}

func renderVersionJSON(cmd *cobra.Command, ver string) error {
	parsed, err := version.ParseVersion(ver)
	if err != nil {
		return err
	}

	info := versionInfo{
		Version:    parsed.String(),
		Major:      parsed.Major(),
		Minor:      parsed.Minor(),
		Patch:      parsed.Patch(),
		Prerelease: parsed.Prerelease(),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(info)
}
