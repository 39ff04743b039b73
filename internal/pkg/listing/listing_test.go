package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
	Tag  string
}

var itemFields = []Field[item]{
	func(i item) string { return fmt.Sprintf("%d", i.ID) },
	func(i item) string { return i.Name },
	func(i item) string { return i.Tag },
}

func TestFilterEmptyTermMatchesEverything(t *testing.T) {
	items := []item{{1, "Alpha", "x"}, {2, "Beta", "y"}}

	got := Filter(items, "", itemFields...)
	assert.Equal(t, items, got)

	got = Filter(items, "   ", itemFields...)
	assert.Equal(t, items, got)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	items := []item{
		{1, "Plombier Dakar", "btp"},
		{2, "Electricien", "btp"},
		{3, "Photographe", "services"},
	}

	got := Filter(items, "DAKAR", itemFields...)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// Any-field semantics: "btp" matches via the tag field
	got = Filter(items, "btp", itemFields...)
	assert.Len(t, got, 2)

	// Numeric IDs match on their decimal string
	got = Filter(items, "3", itemFields...)
	require.Len(t, got, 1)
	assert.Equal(t, "Photographe", got[0].Name)

	got = Filter(items, "nothing matches this", itemFields...)
	assert.Empty(t, got)
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	items := []item{{1, "Alpha", ""}, {2, "Beta", ""}}
	got := Filter(items, "", itemFields...)
	got[0].Name = "mutated"
	assert.Equal(t, "Alpha", items[0].Name)
}

func TestPaginatePartition(t *testing.T) {
	// Concatenating every page must reproduce the collection exactly once.
	items := make([]item, 25)
	for i := range items {
		items[i] = item{ID: i + 1}
	}

	page1 := Paginate(items, 1, 20)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, 25, page1.TotalItems)
	require.Len(t, page1.Items, 20)

	page2 := Paginate(items, 2, 20)
	require.Len(t, page2.Items, 5)

	seen := append([]item{}, page1.Items...)
	seen = append(seen, page2.Items...)
	assert.Equal(t, items, seen)
}

func TestPaginateBounds(t *testing.T) {
	items := []item{{1, "a", ""}, {2, "b", ""}, {3, "c", ""}}

	// Page beyond the last clamps to the last page
	p := Paginate(items, 9, 2)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	assert.Len(t, p.Items, 1)

	// Invalid page and size fall back to defaults
	p = Paginate(items, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Len(t, p.Items, 3)
}

func TestPaginateEmptyCollection(t *testing.T) {
	p := Paginate([]item{}, 1, 10)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalItems)
}

func TestSearchThenPaginateScenario(t *testing.T) {
	// 25 users, page size 20, empty term: page 1 shows 20, totalPages 2.
	// A term matching 3 users collapses to a single page of 3.
	users := make([]item, 25)
	for i := range users {
		name := fmt.Sprintf("user%02d", i+1)
		if i%8 == 0 {
			name = fmt.Sprintf("special%02d", i+1)
		}
		users[i] = item{ID: i + 1, Name: name}
	}

	all := Filter(users, "", itemFields...)
	p := Paginate(all, 1, 20)
	assert.Equal(t, 2, p.TotalPages)
	assert.Len(t, p.Items, 20)

	matched := Filter(users, "special", itemFields...)
	require.Len(t, matched, 4)

	p = Paginate(matched, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.Len(t, p.Items, 4)
}
