package services

import (
	"sync"

	"github.com/jobhubs/backoffice/internal/pkg/listing"
)

// snapshot holds the last successfully fetched collection for one
// resource. Reads always see a complete collection; a failed refetch
// leaves the previous items in place.
type snapshot[T any] struct {
	mu    sync.RWMutex
	items []T
}

// replace swaps in a freshly fetched collection.
func (s *snapshot[T]) replace(items []T) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// current returns a copy of the stored collection.
func (s *snapshot[T]) current() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// ListResult is one page of a resource collection plus the metadata the
// console renders around it: the unfiltered collection size (to tell an
// empty collection apart from a search with no matches) and the refetch
// error when the page was served from a stale snapshot.
type ListResult[T any] struct {
	Page           listing.Page[T]
	CollectionSize int
	StaleError     string
}

// NoSearchMatch reports whether a non-empty collection produced zero
// matches for the search term.
func (r ListResult[T]) NoSearchMatch() bool {
	return r.CollectionSize > 0 && r.Page.TotalItems == 0
}
