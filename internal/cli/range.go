package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagebar/internal/config"
	"github.com/rshade/pagebar/internal/logging"
	"github.com/rshade/pagebar/internal/pagination"
	"github.com/rshade/pagebar/internal/tui"
)

// Range command errors.
var (
	ErrMissingTotal      = errors.New("either --total or --items is required")
	ErrTotalAndItems     = errors.New("--total and --items are mutually exclusive")
	ErrPageSizeWithTotal = errors.New("--page-size requires --items")
)

// yamlIndent is the indentation used for YAML output.
const yamlIndent = 2

// rangeFlags holds the flag values of the range command.
type rangeFlags struct {
	total      int
	items      int
	pageSize   int
	page       int
	siblings   int
	boundaries int
	nav        string
	output     string
}

// ndjsonItem is one line of NDJSON range output.
type ndjsonItem struct {
	Index  int             `json:"index"`
	Item   pagination.Item `json:"item"`
	Active bool            `json:"active"`
}

// NewRangeCmd creates the range command, which prints the page bar for a
// pagination state.
func NewRangeCmd() *cobra.Command {
	var flags rangeFlags

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print the page bar for a page position",
		Long: `Computes the page numbers and ellipsis markers to display for a paginated view.

The page count comes from --total, or from --items and --page-size. The model
is moved to --page (clamped to the valid range), then the optional --nav
script is applied: a comma-separated list of next, prev, first, last or page
numbers.

Siblings and boundaries default to the configuration file values.`,
		Example: `  # Table output
  pagebar range --total 10 --page 4 --boundaries 2

  # Derive the page count from an item count
  pagebar range --items 523 --page-size 25 --page 7

  # Navigate, then print as YAML
  pagebar range --total 1000 --page 13 --siblings 3 --boundaries 3 --nav next,next --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRange(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.total, "total", 0, "total number of pages")
	cmd.Flags().IntVar(&flags.items, "items", 0, "total number of items (derives the page count with --page-size)")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", pagination.DefaultPageSize, "items per page (with --items)")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "active page")
	cmd.Flags().IntVar(&flags.siblings, "siblings", pagination.DefaultSiblings, "pages shown on each side of the active page")
	cmd.Flags().IntVar(&flags.boundaries, "boundaries", pagination.DefaultBoundaries, "pages pinned at each end")
	cmd.Flags().StringVar(&flags.nav, "nav", "", "navigation steps to apply, e.g. next,next,last")
	cmd.Flags().StringVar(&flags.output, "output", "", "Output format: table, json, ndjson, yaml (default from config)")

	return cmd
}

// executeRange handles the range command logic.
func executeRange(cmd *cobra.Command, flags rangeFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	output := config.GetOutputFormat(flags.output)
	if !config.IsValidOutputFormat(output) {
		return usageError(fmt.Errorf("unsupported output format: %s", output))
	}

	params, itemMode, err := resolveRangeParams(cmd, flags)
	if err != nil {
		return usageError(err)
	}

	steps, err := pagination.ParseSteps(flags.nav)
	if err != nil {
		return usageError(err)
	}

	onChange := func(page int) {
		log.Debug().
			Ctx(ctx).
			Str("component", "cli").
			Str("operation", "page_changed").
			Int("page", page).
			Msg("page changed")
	}

	var m *pagination.Model
	if itemMode {
		m = params.Model(onChange)
	} else {
		m = pagination.New(flags.total,
			pagination.WithPage(params.Page),
			pagination.WithSiblings(params.Siblings),
			pagination.WithBoundaries(params.Boundaries),
			pagination.WithOnChange(onChange),
		)
	}

	m.SetPage(params.Page)
	pagination.Apply(m, steps)

	meta := pagination.NewMeta(m)
	if itemMode {
		meta = pagination.NewItemMeta(params, m)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Int("active_page", meta.CurrentPage).
		Int("total_pages", meta.TotalPages).
		Int("items", len(meta.Range)).
		Msg("range computed")

	w := cmd.OutOrStdout()
	switch output {
	case config.OutputJSON:
		return renderRangeJSON(w, meta)
	case config.OutputNDJSON:
		return renderRangeNDJSON(w, meta)
	case config.OutputYAML:
		return renderRangeYAML(w, meta)
	default:
		return renderRangeTable(w, meta)
	}
}

// resolveRangeParams merges flags with configuration defaults. It reports
// whether the page count is derived from an item count.
func resolveRangeParams(cmd *cobra.Command, flags rangeFlags) (pagination.Params, bool, error) {
	cfg := config.GetGlobalConfig()
	totalSet := cmd.Flags().Changed("total")
	itemsSet := cmd.Flags().Changed("items")

	switch {
	case totalSet && itemsSet:
		return pagination.Params{}, false, ErrTotalAndItems
	case !totalSet && !itemsSet:
		return pagination.Params{}, false, ErrMissingTotal
	case totalSet && cmd.Flags().Changed("page-size"):
		return pagination.Params{}, false, ErrPageSizeWithTotal
	}

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

	if itemsSet {
		if err := params.Validate(); err != nil {
			return pagination.Params{}, false, err
		}
		return params, true, nil
	}

	// A page count given directly is normalized by the model; only the
	// display counts are checked.
	if params.Siblings < 0 {
		return pagination.Params{}, false, fmt.Errorf("%w: got %d", pagination.ErrNegativeSiblings, params.Siblings)
	}
	if params.Boundaries < 0 {
		return pagination.Params{}, false, fmt.Errorf("%w: got %d", pagination.ErrNegativeBoundaries, params.Boundaries)
	}
	return params, false, nil
}

// renderRangeTable renders the page bar and a status line.
func renderRangeTable(w io.Writer, meta pagination.Meta) error {
	fmt.Fprintln(w, tui.PlainRange(meta.Range, meta.CurrentPage))

	status := tui.PageStatus(meta.CurrentPage, meta.TotalPages)
	if meta.LastItem > 0 {
		status += fmt.Sprintf(" (items %s-%s of %s)",
			tui.FormatNumber(meta.FirstItem), tui.FormatNumber(meta.LastItem), tui.FormatNumber(meta.TotalItems))
	}
	_, err := fmt.Fprintln(w, status)
	return err
}

// renderRangeJSON renders the pagination snapshot as indented JSON.
func renderRangeJSON(w io.Writer, meta pagination.Meta) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meta); err != nil {
		return fmt.Errorf("encoding range JSON: %w", err)
	}
	return nil
}

// renderRangeNDJSON renders one JSON line per page indicator.
func renderRangeNDJSON(w io.Writer, meta pagination.Meta) error {
	encoder := json.NewEncoder(w)
	for i, item := range meta.Range {
		line := ndjsonItem{
			Index:  i,
			Item:   item,
			Active: !item.IsEllipsis() && item.Page() == meta.CurrentPage,
		}
		if err := encoder.Encode(line); err != nil {
			return fmt.Errorf("encoding range NDJSON: %w", err)
		}
	}
	return nil
}

// renderRangeYAML renders the pagination snapshot as YAML.
func renderRangeYAML(w io.Writer, meta pagination.Meta) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(meta); err != nil {
		return fmt.Errorf("encoding range YAML: %w", err)
	}
	return encoder.Close()
}
