package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSinglePage(t *testing.T) {
	p := New(1, 10, 10)

	require.Equal(t, 1, p.Page)
	require.Equal(t, 1, p.Pages)
	require.False(t, p.HasNext)
	require.False(t, p.HasPrev)
	require.Equal(t, 0, p.Offset)
}

func TestNewSpillsToSecondPage(t *testing.T) {
	p := New(1, 10, 11)
	require.Equal(t, 2, p.Pages)
	require.True(t, p.HasNext)

	p = New(2, 10, 11)
	require.Equal(t, 2, p.Pages)
	require.False(t, p.HasNext)
	require.True(t, p.HasPrev)
	require.Equal(t, 10, p.Offset)
}

func TestNewPageBeyondRange(t *testing.T) {
	// Requesting past the end is not an error; the offset just lands
	// beyond the data and yields an empty page.
	p := New(5, 10, 11)

	require.Equal(t, 5, p.Page)
	require.Equal(t, 2, p.Pages)
	require.Equal(t, 40, p.Offset)
	require.False(t, p.HasNext)
}

func TestNewClampsInputs(t *testing.T) {
	p := New(0, 0, 0)
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.Limit)
	require.Equal(t, 1, p.Pages)

	p = New(1, 1000, 50)
	require.Equal(t, MaxLimit, p.Limit)
}

func TestParseQuery(t *testing.T) {
	page, limit := ParseQuery("3", "25")
	require.Equal(t, 3, page)
	require.Equal(t, 25, limit)

	page, limit = ParseQuery("", "")
	require.Equal(t, 1, page)
	require.Equal(t, DefaultLimit, limit)

	page, limit = ParseQuery("-1", "9999")
	require.Equal(t, 1, page)
	require.Equal(t, MaxLimit, limit)
}
