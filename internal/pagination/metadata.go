package pagination

// Meta is a serializable snapshot of a Model for structured output.
type Meta struct {
	CurrentPage int    `json:"current_page"          yaml:"current_page"`
	TotalPages  int    `json:"total_pages"           yaml:"total_pages"`
	Siblings    int    `json:"siblings"              yaml:"siblings"`
	Boundaries  int    `json:"boundaries"            yaml:"boundaries"`
	HasPrevious bool   `json:"has_previous"          yaml:"has_previous"`
	HasNext     bool   `json:"has_next"              yaml:"has_next"`
	Range       []Item `json:"range"                 yaml:"range"`
	PageSize    int    `json:"page_size,omitempty"   yaml:"page_size,omitempty"`
	TotalItems  int    `json:"total_items,omitempty" yaml:"total_items,omitempty"`
	FirstItem   int    `json:"first_item,omitempty"  yaml:"first_item,omitempty"`
	LastItem    int    `json:"last_item,omitempty"   yaml:"last_item,omitempty"`
}

// NewMeta captures the current state of m.
func NewMeta(m *Model) Meta {
	active := m.ActivePage()
	return Meta{
		CurrentPage: active,
		TotalPages:  m.Pages(),
		Siblings:    m.Siblings(),
		Boundaries:  m.Boundaries(),
		HasPrevious: active > MinPage && m.Pages() > 0,
		HasNext:     active < m.Pages(),
		Range:       m.Range(),
	}
}

// NewItemMeta captures the state of m, which was built from params, including
// the 1-based inclusive item span of the active page.
func NewItemMeta(params Params, m *Model) Meta {
	meta := NewMeta(m)
	meta.PageSize = params.PageSize
	meta.TotalItems = params.Items

	start, end := params.Window(m.ActivePage())
	if end > start {
		meta.FirstItem = start + 1
		meta.LastItem = end
	}

	return meta
}
