package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pages builds an expected range; 0 stands for the Ellipsis marker.
func pages(values ...int) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		if v == 0 {
			items = append(items, Ellipsis)
			continue
		}
		items = append(items, PageItem(v))
	}
	return items
}

// recorder collects change callback invocations.
type recorder struct {
	calls []int
}

func (r *recorder) onChange(page int) {
	r.calls = append(r.calls, page)
}

func TestNew(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithPage(1), WithSiblings(1), WithBoundaries(1), WithOnChange(rec.onChange))

	assert.Equal(t, 10, m.Total())
	assert.Equal(t, 10, m.Pages())
	assert.Equal(t, 1, m.Page())
	assert.Equal(t, 1, m.Siblings())
	assert.Equal(t, 1, m.Boundaries())
	assert.Equal(t, 1, m.ActivePage())
	assert.NotNil(t, m.OnChange())
	assert.Empty(t, rec.calls, "construction must not fire the callback")
}

func TestNew_Defaults(t *testing.T) {
	m := New(42)

	assert.Equal(t, DefaultPage, m.Page())
	assert.Equal(t, DefaultSiblings, m.Siblings())
	assert.Equal(t, DefaultBoundaries, m.Boundaries())
	assert.Equal(t, DefaultPage, m.ActivePage())
	assert.Nil(t, m.OnChange())
}

func TestNew_NilOptionIgnored(t *testing.T) {
	m := New(5, nil, WithPage(3))
	assert.Equal(t, 3, m.ActivePage())
}

func TestNew_NegativeTotalNormalized(t *testing.T) {
	m := New(-7)

	assert.Equal(t, -7, m.Total(), "raw total is kept as given")
	assert.Equal(t, 0, m.Pages())
	assert.Empty(t, m.Range())
}

func TestNew_PageNotClampedUntilMutation(t *testing.T) {
	m := New(10, WithPage(25))
	assert.Equal(t, 25, m.ActivePage())

	m.Next()
	assert.Equal(t, 10, m.ActivePage())
}

func TestModel_Range(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		siblings   int
		boundaries int
		want       []Item
	}{
		{
			name:  "right dots only on first page",
			total: 10, page: 1, siblings: 1, boundaries: 1,
			want: pages(1, 2, 3, 4, 5, 0, 10),
		},
		{
			name:  "right dots with two boundaries",
			total: 10, page: 4, siblings: 1, boundaries: 2,
			want: pages(1, 2, 3, 4, 5, 6, 0, 9, 10),
		},
		{
			name:  "right dots at page five",
			total: 10, page: 5, siblings: 1, boundaries: 2,
			want: pages(1, 2, 3, 4, 5, 6, 0, 9, 10),
		},
		{
			name:  "window covers every page",
			total: 10, page: 4, siblings: 2, boundaries: 2,
			want: pages(1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
		},
		{
			name:  "left dots only",
			total: 10, page: 7, siblings: 1, boundaries: 2,
			want: pages(1, 2, 0, 5, 6, 7, 8, 9, 10),
		},
		{
			name:  "both dots",
			total: 1000, page: 13, siblings: 3, boundaries: 3,
			want: pages(1, 2, 3, 0, 10, 11, 12, 13, 14, 15, 16, 0, 998, 999, 1000),
		},
		{
			name:  "both dots with defaults",
			total: 20, page: 10, siblings: 1, boundaries: 1,
			want: pages(1, 0, 9, 10, 11, 0, 20),
		},
		{
			name:  "last page",
			total: 20, page: 20, siblings: 1, boundaries: 1,
			want: pages(1, 0, 16, 17, 18, 19, 20),
		},
		{
			name:  "zero boundaries",
			total: 20, page: 10, siblings: 1, boundaries: 0,
			want: pages(0, 9, 10, 11, 0),
		},
		{
			name:  "single page",
			total: 1, page: 1, siblings: 1, boundaries: 1,
			want: pages(1),
		},
		{
			name:  "no pages",
			total: 0, page: 1, siblings: 1, boundaries: 1,
			want: []Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.total, WithPage(tt.page), WithSiblings(tt.siblings), WithBoundaries(tt.boundaries))
			assert.Equal(t, tt.want, m.Range())
		})
	}
}

func TestModel_Range_FitsWithoutEllipsis(t *testing.T) {
	for siblings := 0; siblings <= 3; siblings++ {
		for boundaries := 0; boundaries <= 3; boundaries++ {
			window := siblings*2 + 3 + boundaries*2
			for total := 0; total <= window; total++ {
				m := New(total, WithSiblings(siblings), WithBoundaries(boundaries))
				got := m.Range()

				require.Len(t, got, total)
				for i, item := range got {
					assert.False(t, item.IsEllipsis())
					assert.Equal(t, i+1, item.Page())
				}
			}
		}
	}
}

func TestModel_Range_BoundaryPreservation(t *testing.T) {
	const total = 50
	for siblings := 0; siblings <= 2; siblings++ {
		for boundaries := 1; boundaries <= 3; boundaries++ {
			for page := 1; page <= total; page++ {
				m := New(total, WithPage(page), WithSiblings(siblings), WithBoundaries(boundaries))
				got := m.Range()

				require.GreaterOrEqual(t, len(got), 2*boundaries)
				for b := 0; b < boundaries; b++ {
					assert.Equal(t, PageItem(b+1), got[b], "page %d s=%d b=%d", page, siblings, boundaries)
					assert.Equal(t, PageItem(total-b), got[len(got)-1-b], "page %d s=%d b=%d", page, siblings, boundaries)
				}

				ellipses := 0
				for _, item := range got {
					if item == Ellipsis {
						ellipses++
					}
				}
				assert.LessOrEqual(t, ellipses, 2)
			}
		}
	}
}

func TestModel_Range_ActivePageVisible(t *testing.T) {
	const total = 30
	for page := 1; page <= total; page++ {
		m := New(total, WithPage(page))
		assert.Contains(t, m.Range(), PageItem(page), "page %d", page)
	}
}

func TestModel_Range_NeverPanics(t *testing.T) {
	values := []int{-5, -1, 0, 1, 2, 9}
	for _, total := range []int{-3, 0, 1, 7, 40, math.MaxInt - 1, math.MaxInt} {
		for _, page := range values {
			for _, siblings := range values {
				for _, boundaries := range values {
					m := New(total, WithPage(page), WithSiblings(siblings), WithBoundaries(boundaries))
					assert.NotPanics(t, func() { _ = m.Range() })
				}
			}
		}
	}
}

func TestModel_Range_HugeTotals(t *testing.T) {
	for _, total := range []int{math.MaxInt - 1, math.MaxInt} {
		t.Run("first page", func(t *testing.T) {
			m := New(total)
			assert.Equal(t, pages(1, 2, 3, 4, 5, 0, total), m.Range())
		})

		t.Run("middle page", func(t *testing.T) {
			m := New(total)
			m.SetPage(total / 2)
			mid := total / 2
			assert.Equal(t, pages(1, 0, mid-1, mid, mid+1, 0, total), m.Range())
		})

		t.Run("last page", func(t *testing.T) {
			m := New(total)
			m.Last()
			assert.Equal(t, pages(1, 0, total-4, total-3, total-2, total-1, total), m.Range())
		})
	}
}

func TestModel_Range_HugeUnclampedPage(t *testing.T) {
	m := New(100, WithPage(math.MaxInt))
	assert.Equal(t, pages(1, 0, 96, 97, 98, 99, 100), m.Range())

	m = New(100, WithPage(math.MinInt))
	assert.Equal(t, pages(1, 2, 3, 4, 5, 0, 100), m.Range())
}

func TestModel_Range_RecomputedAfterMutation(t *testing.T) {
	m := New(10, WithBoundaries(2))
	assert.Equal(t, pages(1, 2, 3, 4, 5, 6, 0, 9, 10), m.Range())

	m.SetPage(7)
	assert.Equal(t, pages(1, 2, 0, 5, 6, 7, 8, 9, 10), m.Range())
}

func TestModel_SetPage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{name: "in range", page: 3, want: 3},
		{name: "negative clamps to first", page: -1, want: 1},
		{name: "zero clamps to first", page: 0, want: 1},
		{name: "beyond total clamps to last", page: 15, want: 10},
		{name: "exactly total", page: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			m := New(10, WithOnChange(rec.onChange))

			m.SetPage(tt.page)

			assert.Equal(t, tt.want, m.ActivePage())
			assert.Equal(t, []int{tt.want}, rec.calls)
		})
	}
}

func TestModel_SetPage_ZeroPages(t *testing.T) {
	rec := &recorder{}
	m := New(0, WithOnChange(rec.onChange))

	m.SetPage(-1)
	m.SetPage(5)
	m.First()
	m.Next()

	assert.Equal(t, 0, m.ActivePage())
	assert.Equal(t, []int{0, 0, 0, 0}, rec.calls)
}

func TestModel_SetPage_RepeatFiresEveryTime(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithOnChange(rec.onChange))

	m.SetPage(1)
	m.SetPage(1)

	assert.Equal(t, []int{1, 1}, rec.calls)
}

func TestModel_SetPage_WithoutCallback(t *testing.T) {
	m := New(10)
	assert.NotPanics(t, func() { m.SetPage(4) })
	assert.Equal(t, 4, m.ActivePage())
}

func TestModel_SetPage_ClampProperty(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for page := -20; page <= 20; page++ {
			m := New(total)
			m.SetPage(page)
			assert.GreaterOrEqual(t, m.ActivePage(), 1)
			assert.LessOrEqual(t, m.ActivePage(), total)
		}
	}
}

func TestModel_Next(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithOnChange(rec.onChange))

	m.Next()

	assert.Equal(t, 2, m.ActivePage())
	assert.Equal(t, []int{2}, rec.calls)
}

func TestModel_Next_AtLastPage(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithPage(10), WithOnChange(rec.onChange))

	m.Next()

	assert.Equal(t, 10, m.ActivePage())
	assert.Equal(t, []int{10}, rec.calls)
}

func TestModel_NextPrev_AtIntLimits(t *testing.T) {
	m := New(math.MaxInt)
	m.Last()
	m.Next()
	assert.Equal(t, math.MaxInt, m.ActivePage())

	m = New(10, WithPage(math.MinInt))
	m.Prev()
	assert.Equal(t, 1, m.ActivePage())

	m = New(10, WithPage(math.MaxInt))
	m.Next()
	assert.Equal(t, 10, m.ActivePage())
}

func TestModel_Prev(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithPage(3), WithOnChange(rec.onChange))

	m.Prev()

	assert.Equal(t, 2, m.ActivePage())
	assert.Equal(t, []int{2}, rec.calls)
}

func TestModel_Prev_AtFirstPage(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithOnChange(rec.onChange))

	m.Prev()

	assert.Equal(t, 1, m.ActivePage())
	assert.Equal(t, []int{1}, rec.calls)
}

func TestModel_First(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithPage(3), WithOnChange(rec.onChange))

	m.First()

	assert.Equal(t, 1, m.ActivePage())
	assert.Equal(t, []int{1}, rec.calls)
}

func TestModel_Last(t *testing.T) {
	rec := &recorder{}
	m := New(10, WithPage(3), WithOnChange(rec.onChange))

	m.Last()

	assert.Equal(t, 10, m.ActivePage())
	assert.Equal(t, []int{10}, rec.calls)
}

func TestModel_CallbackSeesUpdatedState(t *testing.T) {
	var m *Model
	var seen int
	m = New(10, WithOnChange(func(page int) {
		seen = m.ActivePage()
		assert.Equal(t, page, seen)
	}))

	m.SetPage(6)
	assert.Equal(t, 6, seen)
}
