package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagebar/internal/config"
	"github.com/rshade/pagebar/internal/pagination"
	"github.com/rshade/pagebar/internal/tui"
)

// Browse command errors.
var (
	ErrNotTerminal        = errors.New("browse requires an interactive terminal")
	ErrTooManyBrowseItems = errors.New("too many items to browse")
)

// Synthetic row limits for browse. Rows are materialized up front.
const (
	defaultBrowseItems = 100
	maxBrowseItems     = 1_000_000
)

// browseFlags holds the flag values of the browse command.
type browseFlags struct {
	items      int
	pageSize   int
	page       int
	siblings   int
	boundaries int
}

// NewBrowseCmd creates the browse command, an interactive pager over synthetic rows.
func NewBrowseCmd() *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse rows one page at a time",
		Long: `Opens an interactive pager over a list of numbered rows.

Keys:
  right, l, n, pgdown   next page
  left, h, p, pgup      previous page
  home, g               first page
  end, G                last page
  :                     jump to a page
  q, ctrl+c             quit`,
		Example: `  # Browse 500 rows, 15 per page
  pagebar browse --items 500 --page-size 15

  # Start on page 10 with a wider window
  pagebar browse --items 1000 --page 10 --siblings 2 --boundaries 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBrowse(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.items, "items", defaultBrowseItems, "number of rows to browse (at most 1000000)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", pagination.DefaultPageSize, "rows per page")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "starting page")
	cmd.Flags().IntVar(&flags.siblings, "siblings", pagination.DefaultSiblings, "pages shown on each side of the active page")
	cmd.Flags().IntVar(&flags.boundaries, "boundaries", pagination.DefaultBoundaries, "pages pinned at each end")

	return cmd
}

// executeBrowse validates the parameters and runs the pager program.
func executeBrowse(cmd *cobra.Command, flags browseFlags) error {
	params := browseParams(cmd, flags)
	if err := params.Validate(); err != nil {
		return usageError(err)
	}
	if params.Items > maxBrowseItems {
		return usageError(fmt.Errorf("%w: got %d, maximum is %d", ErrTooManyBrowseItems, params.Items, maxBrowseItems))
	}

	if !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	rows := make([]string, params.Items)
	for i := range rows {
		rows[i] = fmt.Sprintf("Item %d", i+1)
	}

	logger.Debug().
		Ctx(cmd.Context()).
		Int("items", params.Items).
		Int("page_size", params.PageSize).
		Int("total_pages", params.TotalPages()).
		Msg("starting pager")

	p := tea.NewProgram(tui.NewPagerModel(cmd.Context(), rows, params), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// browseParams merges flags with configuration defaults.
func browseParams(cmd *cobra.Command, flags browseFlags) pagination.Params {
	cfg := config.GetGlobalConfig()
	params := pagination.Params{
		Items:      flags.items,
		PageSize:   flags.pageSize,
		Page:       flags.page,
		Siblings:   cfg.Pagination.Siblings,
		Boundaries: cfg.Pagination.Boundaries,
	}
	if !cmd.Flags().Changed("page-size") && cfg.Pagination.PageSize > 0 {
		params.PageSize = cfg.Pagination.PageSize
	}
	if cmd.Flags().Changed("siblings") {
		params.Siblings = flags.siblings
	}
	if cmd.Flags().Changed("boundaries") {
		params.Boundaries = flags.boundaries
	}
	return params
}
