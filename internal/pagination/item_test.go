package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Ellipsis(t *testing.T) {
	assert.True(t, Ellipsis.IsEllipsis())
	assert.Equal(t, 0, Ellipsis.Page())
	assert.Equal(t, "…", Ellipsis.String())

	for _, n := range []int{-1, 0, 1, 1000} {
		assert.NotEqual(t, Ellipsis, PageItem(n), "page %d", n)
		assert.False(t, PageItem(n).IsEllipsis())
	}
}

func TestItem_Page(t *testing.T) {
	item := PageItem(42)
	assert.Equal(t, 42, item.Page())
	assert.Equal(t, "42", item.String())
	assert.Equal(t, PageItem(42), item)
}

func TestItem_JSON(t *testing.T) {
	items := []Item{PageItem(1), Ellipsis, PageItem(10)}

	data, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "dots", 10]`, string(data))

	var decoded []Item
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, items, decoded)
}

func TestItem_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []string{`"nope"`, `2.5`, `true`}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var item Item
			err := json.Unmarshal([]byte(input), &item)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}
