package pagination

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EllipsisToken is the reserved token the Ellipsis marker encodes to in JSON and YAML.
const EllipsisToken = "dots"

// ellipsisGlyph is how the Ellipsis marker prints.
const ellipsisGlyph = "…"

// Item is one indicator in a page bar: either a page number or the Ellipsis marker.
// Items are comparable with ==.
type Item struct {
	page     int
	ellipsis bool
}

// Ellipsis marks an elided run of page numbers. It never equals a page item,
// whatever the page number.
//
//nolint:gochecknoglobals // Sentinel value callers compare against when rendering.
var Ellipsis = Item{ellipsis: true}

// PageItem returns the item for page n.
func PageItem(n int) Item {
	return Item{page: n}
}

// IsEllipsis reports whether the item is the Ellipsis marker.
func (i Item) IsEllipsis() bool {
	return i.ellipsis
}

// Page returns the page number, or 0 for the Ellipsis marker.
func (i Item) Page() int {
	if i.ellipsis {
		return 0
	}
	return i.page
}

// String renders the page number, or "…" for the Ellipsis marker.
func (i Item) String() string {
	if i.ellipsis {
		return ellipsisGlyph
	}
	return strconv.Itoa(i.page)
}

// MarshalJSON encodes a page as a number and the marker as EllipsisToken.
func (i Item) MarshalJSON() ([]byte, error) {
	if i.ellipsis {
		return json.Marshal(EllipsisToken)
	}
	return json.Marshal(i.page)
}

// UnmarshalJSON accepts a number or EllipsisToken.
func (i *Item) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		if token != EllipsisToken {
			return fmt.Errorf("%w: %q", ErrInvalidItem, token)
		}
		*i = Ellipsis
		return nil
	}

	var page int
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidItem, data)
	}
	*i = PageItem(page)
	return nil
}

// MarshalYAML encodes a page as an integer node and the marker as EllipsisToken.
func (i Item) MarshalYAML() (interface{}, error) {
	if i.ellipsis {
		return EllipsisToken, nil
	}
	return i.page, nil
}

// UnmarshalYAML accepts an integer or EllipsisToken.
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == EllipsisToken {
		*i = Ellipsis
		return nil
	}

	var page int
	if err := node.Decode(&page); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidItem, node.Value)
	}
	*i = PageItem(page)
	return nil
}
