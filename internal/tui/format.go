package tui

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/pagebar/internal/pagination"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// PageStatus returns "Page X of Y" with thousand separators.
func PageStatus(active, total int) string {
	return "Page " + FormatNumber(active) + " of " + FormatNumber(total)
}

// PlainRange renders items as space-separated text with the active page in
// brackets, e.g. "1 2 [3] 4 5 … 10".
func PlainRange(items []pagination.Item, active int) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.IsEllipsis():
			parts = append(parts, item.String())
		case item.Page() == active:
			parts = append(parts, "["+item.String()+"]")
		default:
			parts = append(parts, item.String())
		}
	}
	return strings.Join(parts, " ")
}

// RenderRange renders items with Lip Gloss styles: the active page highlighted
// and bracketed, the ellipsis muted.
func RenderRange(items []pagination.Item, active int) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.IsEllipsis():
			parts = append(parts, EllipsisStyle.Render(item.String()))
		case item.Page() == active:
			parts = append(parts, ActivePageStyle.Render("["+item.String()+"]"))
		default:
			parts = append(parts, PageStyle.Render(item.String()))
		}
	}
	return strings.Join(parts, " ")
}
