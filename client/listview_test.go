package client

import (
	"testing"
	"time"
)

type stampedRow struct {
	ID      int
	Created time.Time
}

func stampedRows(base time.Time, daysAgo ...int) []stampedRow {
	out := make([]stampedRow, 0, len(daysAgo))
	for i, d := range daysAgo {
		out = append(out, stampedRow{ID: i + 1, Created: base.AddDate(0, 0, -d)})
	}
	return out
}

func newTestView(base time.Time, daysAgo ...int) *ListView[stampedRow] {
	v := NewListView(stampedRows(base, daysAgo...), func(r stampedRow) time.Time { return r.Created })
	v.now = func() time.Time { return base }
	return v
}

func TestRecencyFilterKeepsLastThirtyDays(t *testing.T) {
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	v := newTestView(base, 0, 29, 31, 60)

	visible := v.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 recent rows, got %d", len(visible))
	}
	if visible[0].ID != 1 || visible[1].ID != 2 {
		t.Fatalf("wrong rows survived the filter: %+v", visible)
	}

	v.ToggleRecent(false)
	if got := len(v.Visible()); got != 4 {
		t.Fatalf("filter off should show everything, got %d rows", got)
	}
}

func TestLoadMoreGrowsByTenUpToFilteredSize(t *testing.T) {
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	days := make([]int, 25)
	v := newTestView(base, days...) // 25 rows, all today

	if got := len(v.Visible()); got != 10 {
		t.Fatalf("initial window should be 10, got %d", got)
	}
	if !v.HasMore() {
		t.Fatal("expected more rows behind the window")
	}

	v.LoadMore()
	if got := len(v.Visible()); got != 20 {
		t.Fatalf("after one LoadMore want 20, got %d", got)
	}

	v.LoadMore()
	if got := len(v.Visible()); got != 25 {
		t.Fatalf("window must cap at the filtered size, got %d", got)
	}
	if v.HasMore() {
		t.Fatal("window is full, HasMore should be false")
	}
}

func TestLoadMoreNeverShrinksBelowInitialWindow(t *testing.T) {
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	v := newTestView(base, 0, 0, 0) // 3 rows

	v.LoadMore()
	if v.viewCount != 10 {
		t.Fatalf("window floor is 10, got %d", v.viewCount)
	}
	if got := len(v.Visible()); got != 3 {
		t.Fatalf("only 3 rows exist, got %d visible", got)
	}
}
