package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pagebar/internal/logging"
	"github.com/rshade/pagebar/internal/pagination"
)

// ViewState is the current mode of the pager.
type ViewState int

// View states.
const (
	ViewStateList ViewState = iota
	ViewStateJump
	ViewStateQuitting
)

// Key names handled by the pager.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keyColon  = ":"
	keyRight  = "right"
	keyLeft   = "left"
	keyHome   = "home"
	keyEnd    = "end"
	keyPgDown = "pgdown"
	keyPgUp   = "pgup"
)

// Layout defaults.
const (
	defaultWidth    = 80
	defaultHeight   = 24
	minTableHeight  = 3
	chromeHeight    = 6 // title, range bar, status, help and spacing
	rowColumnWidth  = 60
	indexColumnWide = 8
	jumpCharLimit   = 12
)

// PagerModel is the Bubble Tea model for browsing rows one page at a time.
// It owns a pagination.Model; every page change rebuilds the table through
// the model's change callback.
type PagerModel struct {
	ctx    context.Context
	state  ViewState
	rows   []string
	params pagination.Params
	pager  *pagination.Model

	table     table.Model
	jumpInput textinput.Model

	width  int
	height int

	// changes counts change callback invocations.
	changes int
}

// NewPagerModel creates a pager over rows. params.Items is replaced by len(rows);
// the starting page is clamped into range.
func NewPagerModel(ctx context.Context, rows []string, params pagination.Params) *PagerModel {
	if ctx == nil {
		ctx = context.Background()
	}
	params.Items = len(rows)
	if params.PageSize < pagination.MinPageSize {
		params.PageSize = pagination.DefaultPageSize
	}

	m := &PagerModel{
		ctx:       ctx,
		state:     ViewStateList,
		rows:      rows,
		params:    params,
		jumpInput: newJumpInput(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.pager = params.Model(m.onPageChange)
	m.pager.SetPage(m.pager.ActivePage())

	return m
}

func newJumpInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "page number"
	ti.Prompt = "Go to page: "
	ti.CharLimit = jumpCharLimit
	return ti
}

// onPageChange is the pagination change callback.
func (m *PagerModel) onPageChange(page int) {
	m.changes++
	m.table = m.buildTable()

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Int("page", page).
		Int("total_pages", m.pager.Pages()).
		Msg("page changed")
}

// Init initializes the model (Bubble Tea interface).
func (m *PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m *PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table = m.buildTable()
		return m, nil
	}

	switch m.state {
	case ViewStateJump:
		return m.handleJumpInput(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *PagerModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyRight, keyPgDown, "l", "n":
		m.pager.Next()
	case keyLeft, keyPgUp, "h", "p":
		m.pager.Prev()
	case keyHome, "g":
		m.pager.First()
	case keyEnd, "G":
		m.pager.Last()
	case keyColon:
		m.state = ViewStateJump
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}

	return m, nil
}

func (m *PagerModel) handleJumpInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.closeJump()
			return m, nil
		case keyEnter:
			if page, err := strconv.Atoi(strings.TrimSpace(m.jumpInput.Value())); err == nil {
				m.pager.SetPage(page)
			}
			m.closeJump()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *PagerModel) closeJump() {
	m.state = ViewStateList
	m.jumpInput.Blur()
	m.jumpInput.SetValue("")
}

// buildTable creates a table of the active page's rows.
func (m *PagerModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: indexColumnWide},
		{Title: "Item", Width: rowColumnWidth},
	}

	visible := m.VisibleRows()
	start, _ := m.params.Window(m.pager.ActivePage())
	rows := make([]table.Row, len(visible))
	for i, row := range visible {
		rows[i] = table.Row{strconv.Itoa(start + i + 1), row}
	}

	availableHeight := m.height - chromeHeight
	if availableHeight < minTableHeight {
		availableHeight = minTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// VisibleRows returns the rows on the active page.
func (m *PagerModel) VisibleRows() []string {
	start, end := m.params.Window(m.pager.ActivePage())
	return m.rows[start:end]
}

// Pager returns the underlying pagination model.
func (m *PagerModel) Pager() *pagination.Model {
	return m.pager
}

// State returns the current view state.
func (m *PagerModel) State() ViewState {
	return m.state
}

// Changes returns how many page changes have been applied, including the
// initial clamp at construction.
func (m *PagerModel) Changes() int {
	return m.changes
}
