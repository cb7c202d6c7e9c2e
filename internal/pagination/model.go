package pagination

import "math"

// Display defaults.
const (
	DefaultPage       = 1
	DefaultSiblings   = 1
	DefaultBoundaries = 1
	MinPage           = 1
)

// slackSlots is the number of extra slots in the window beyond the active page,
// its siblings and the boundaries. Without them a single hidden page could be
// replaced by an ellipsis, which saves nothing.
const slackSlots = 2

// ChangeFunc is called with the new active page after every mutation.
type ChangeFunc func(page int)

// Option configures a Model at construction.
type Option func(*Model)

// WithPage sets the initial active page. It is not clamped until the first mutation.
func WithPage(page int) Option {
	return func(m *Model) {
		m.page = page
	}
}

// WithSiblings sets how many pages are shown on each side of the active page.
func WithSiblings(siblings int) Option {
	return func(m *Model) {
		m.siblings = siblings
	}
}

// WithBoundaries sets how many pages are pinned at each end of the range.
func WithBoundaries(boundaries int) Option {
	return func(m *Model) {
		m.boundaries = boundaries
	}
}

// WithOnChange sets the callback fired after each mutation.
func WithOnChange(fn ChangeFunc) Option {
	return func(m *Model) {
		m.onChange = fn
	}
}

// Model holds the configuration and active page of one paginated view.
// The total page count is fixed at construction. A Model is not safe for
// concurrent mutation.
type Model struct {
	total      int
	page       int
	siblings   int
	boundaries int
	onChange   ChangeFunc

	// pages is total floored at zero; all range and clamp math uses it.
	pages int

	activePage int
}

// New creates a Model for total pages. Without options the active page is 1
// and one sibling and one boundary page are shown.
func New(total int, opts ...Option) *Model {
	m := &Model{
		total:      total,
		page:       DefaultPage,
		siblings:   DefaultSiblings,
		boundaries: DefaultBoundaries,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	m.pages = max(m.total, 0)
	m.activePage = m.page

	return m
}

// Total returns the total page count as given to New.
func (m *Model) Total() int {
	return m.total
}

// Pages returns the normalized page count used by Range and the mutators.
func (m *Model) Pages() int {
	return m.pages
}

// Page returns the initial page requested at construction.
func (m *Model) Page() int {
	return m.page
}

// Siblings returns the sibling count.
func (m *Model) Siblings() int {
	return m.siblings
}

// Boundaries returns the boundary count.
func (m *Model) Boundaries() int {
	return m.boundaries
}

// ActivePage returns the current page.
func (m *Model) ActivePage() int {
	return m.activePage
}

// OnChange returns the change callback, or nil.
func (m *Model) OnChange() ChangeFunc {
	return m.onChange
}

// Range returns the page indicators to display for the current state.
// The result has at most one Ellipsis on each side of the active page.
// It is recomputed on every call.
func (m *Model) Range() []Item {
	siblingSpan := addSat(m.siblings, m.siblings)
	windowSize := addSat(addSat(siblingSpan, 1+slackSlots), addSat(m.boundaries, m.boundaries))
	if windowSize >= m.pages {
		return pageRun(1, m.pages)
	}

	leftSiblingIndex := max(subSat(m.activePage, m.siblings), m.boundaries)
	rightSiblingIndex := min(addSat(m.activePage, m.siblings), subSat(m.pages, m.boundaries))

	showLeftDots := leftSiblingIndex > addSat(m.boundaries, slackSlots)
	showRightDots := rightSiblingIndex < subSat(m.pages, addSat(m.boundaries, 1))

	switch {
	case !showLeftDots && showRightDots:
		leftItemCount := addSat(addSat(siblingSpan, m.boundaries), slackSlots)
		return join(
			pageRun(1, leftItemCount),
			[]Item{Ellipsis},
			pageRun(subSat(m.pages, subSat(m.boundaries, 1)), m.pages),
		)

	case showLeftDots && !showRightDots:
		rightItemCount := addSat(addSat(m.boundaries, 1), siblingSpan)
		return join(
			pageRun(1, m.boundaries),
			[]Item{Ellipsis},
			pageRun(subSat(m.pages, rightItemCount), m.pages),
		)

	default:
		return join(
			pageRun(1, m.boundaries),
			[]Item{Ellipsis},
			pageRun(leftSiblingIndex, rightSiblingIndex),
			[]Item{Ellipsis},
			pageRun(addSat(subSat(m.pages, m.boundaries), 1), m.pages),
		)
	}
}

// SetPage moves to page, clamped to [1, Pages()], and fires the change callback.
// With zero pages the active page becomes 0.
func (m *Model) SetPage(page int) {
	switch {
	case m.pages == 0:
		m.setActivePage(0)
	case page < MinPage:
		m.setActivePage(MinPage)
	case page > m.pages:
		m.setActivePage(m.pages)
	default:
		m.setActivePage(page)
	}
}

// Next moves one page forward.
func (m *Model) Next() {
	m.SetPage(addSat(m.activePage, 1))
}

// Prev moves one page back.
func (m *Model) Prev() {
	m.SetPage(subSat(m.activePage, 1))
}

// First moves to the first page.
func (m *Model) First() {
	m.SetPage(MinPage)
}

// Last moves to the last page.
func (m *Model) Last() {
	m.SetPage(m.pages)
}

func (m *Model) setActivePage(page int) {
	m.activePage = page
	if m.onChange != nil {
		m.onChange(page)
	}
}

// pageRun returns the page items start..end inclusive. It is empty when end < start.
// The loop stops on end itself so a run ending at math.MaxInt terminates.
func pageRun(start, end int) []Item {
	if end < start {
		return []Item{}
	}
	var items []Item
	if span := end - start; span >= 0 && span < math.MaxInt {
		items = make([]Item, 0, span+1)
	}
	for p := start; ; p++ {
		items = append(items, PageItem(p))
		if p == end {
			break
		}
	}
	return items
}

// addSat returns a+b, saturating at the int limits.
func addSat(a, b int) int {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt
	case b < 0 && sum > a:
		return math.MinInt
	default:
		return sum
	}
}

// subSat returns a-b, saturating at the int limits.
func subSat(a, b int) int {
	diff := a - b
	switch {
	case b < 0 && diff < a:
		return math.MaxInt
	case b > 0 && diff > a:
		return math.MinInt
	default:
		return diff
	}
}

func join(parts ...[]Item) []Item {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Item, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
