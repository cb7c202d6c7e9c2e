package pagination

import (
	"errors"
	"fmt"
)

// Page size limits for item-count driven pagination.
const (
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 1000
)

// Validation errors for Params.
var (
	ErrNegativeItems      = errors.New("items cannot be negative")
	ErrInvalidPageSize    = errors.New("page-size must be between 1 and 1000")
	ErrNegativeSiblings   = errors.New("siblings cannot be negative")
	ErrNegativeBoundaries = errors.New("boundaries cannot be negative")
	ErrInvalidItem        = errors.New("invalid page item")
)

// Params describes a paginated view by its item count rather than its page count.
// Callers that list things (rows, log lines, search hits) know how many items
// they have and how many fit on a page; Params turns that into a Model.
type Params struct {
	// Items is the total number of items being paginated.
	Items int

	// PageSize is the number of items per page.
	PageSize int

	// Page is the 1-based page number to start on.
	Page int

	// Siblings is the number of pages shown on each side of the active page.
	Siblings int

	// Boundaries is the number of pages pinned at each end.
	Boundaries int
}

// NewParams creates Params with default values and no items.
func NewParams() *Params {
	return &Params{
		Items:      0,
		PageSize:   DefaultPageSize,
		Page:       DefaultPage,
		Siblings:   DefaultSiblings,
		Boundaries: DefaultBoundaries,
	}
}

// Validate checks the parameters a user typed. The Model itself accepts any
// numbers; Validate exists so a CLI can reject obvious input mistakes early.
func (p Params) Validate() error {
	if p.Items < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeItems, p.Items)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Siblings < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSiblings, p.Siblings)
	}
	if p.Boundaries < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeBoundaries, p.Boundaries)
	}
	return nil
}

// TotalPages returns the number of pages needed to show every item.
// Returns 0 when there are no items or the page size is not positive.
func (p Params) TotalPages() int {
	if p.Items <= 0 || p.PageSize <= 0 {
		return 0
	}
	pages := p.Items / p.PageSize
	if p.Items%p.PageSize > 0 {
		pages++
	}
	return pages
}

// Model builds a Model for these parameters. onChange may be nil.
func (p Params) Model(onChange ChangeFunc) *Model {
	return New(p.TotalPages(),
		WithPage(p.Page),
		WithSiblings(p.Siblings),
		WithBoundaries(p.Boundaries),
		WithOnChange(onChange),
	)
}

// Offset returns the zero-based index of the first item on page.
// Pages are clamped to the valid range first.
func (p Params) Offset(page int) int {
	start, _ := p.Window(page)
	return start
}

// Window returns the zero-based half-open item range [start, end) shown on page.
// The page is clamped to [1, TotalPages()]; with no items the window is empty.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p Params) Window(page int) (start, end int) {
	total := p.TotalPages()
	if total == 0 {
		return 0, 0
	}

	page = min(max(page, MinPage), total)
	start = (page - 1) * p.PageSize
	end = start + min(p.PageSize, p.Items-start)

	return start, end
}
