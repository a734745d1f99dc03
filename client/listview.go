package client

import "time"

const (
	recencyWindow   = 30 * 24 * time.Hour
	pageStep        = 10
	initialPageSize = 10
)

// ListView is the admin console's view over an already-fetched record
// set: a recency filter over the last 30 days and an incrementally grown
// visible window. Both are pure slices over the list in memory; the
// server is never asked to page.
type ListView[T any] struct {
	items      []T
	createdAt  func(T) time.Time
	recentOnly bool
	viewCount  int
	now        func() time.Time
}

// NewListView starts with the recency filter on and ten visible rows,
// the admin console's defaults.
func NewListView[T any](items []T, createdAt func(T) time.Time) *ListView[T] {
	return &ListView[T]{
		items:      items,
		createdAt:  createdAt,
		recentOnly: true,
		viewCount:  initialPageSize,
		now:        time.Now,
	}
}

// SetItems replaces the backing list after a refetch, keeping the current
// filter and window.
func (v *ListView[T]) SetItems(items []T) {
	v.items = items
}

// ToggleRecent switches the recency filter. Off means the full,
// unwindowed set.
func (v *ListView[T]) ToggleRecent(on bool) {
	v.recentOnly = on
}

// LoadMore grows the window by ten. It never grows past the filtered set.
func (v *ListView[T]) LoadMore() {
	filtered := len(v.filtered())
	v.viewCount += pageStep
	if v.viewCount > filtered {
		v.viewCount = filtered
	}
	if v.viewCount < initialPageSize {
		v.viewCount = initialPageSize
	}
}

// Visible returns the records the console should render right now.
func (v *ListView[T]) Visible() []T {
	filtered := v.filtered()
	if !v.recentOnly {
		return filtered
	}
	if v.viewCount < len(filtered) {
		return filtered[:v.viewCount]
	}
	return filtered
}

// HasMore reports whether a further LoadMore would reveal anything.
func (v *ListView[T]) HasMore() bool {
	return v.recentOnly && v.viewCount < len(v.filtered())
}

func (v *ListView[T]) filtered() []T {
	if !v.recentOnly {
		return v.items
	}
	cutoff := v.now().Add(-recencyWindow)
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if v.createdAt(item).After(cutoff) {
			out = append(out, item)
		}
	}
	return out
}
