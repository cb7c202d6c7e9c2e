package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
const (
	ColorHeader = lipgloss.Color("39")
	ColorActive = lipgloss.Color("212")
	ColorLabel  = lipgloss.Color("245")
	ColorValue  = lipgloss.Color("252")
	ColorMuted  = lipgloss.Color("240")
	ColorBorder = lipgloss.Color("238")
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are immutable values shared by all views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	PageStyle       = lipgloss.NewStyle().Foreground(ColorValue)
	ActivePageStyle = lipgloss.NewStyle().Foreground(ColorActive).Bold(true).Underline(true)
	EllipsisStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorActive).Bold(true)
)
