package layout_test

import (
	"testing"

	"github.com/loog-project/sidebyside/internal/feed"
	"github.com/loog-project/sidebyside/internal/layout"
)

func TestLinear(t *testing.T) {
	seq := feed.NewSequence(100)
	l := layout.Linear(seq, feed.FixedHeight(2))

	if l.Columns != 1 {
		t.Fatalf("expected 1 column, got %d", l.Columns)
	}
	if l.ContentHeight() != 200 {
		t.Fatalf("expected content height 200, got %d", l.ContentHeight())
	}
	col := l.Column(0)
	if len(col) != 100 || col[10].Top != 20 {
		t.Fatalf("unexpected placements: len=%d top[10]=%d", len(col), col[10].Top)
	}
}

func TestStaggeredShortestColumn(t *testing.T) {
	seq := feed.NewSequence(4)
	heights := []int{3, 1, 1, 1}
	l := layout.Staggered(seq, func(i int) int { return heights[i] }, 2)

	// 0 -> col 0 (0..3), 1 -> col 1 (0..1), 2 -> col 1 (1..2), 3 -> col 1 (2..3)
	if got := len(l.Column(0)); got != 1 {
		t.Fatalf("expected 1 item in column 0, got %d", got)
	}
	col1 := l.Column(1)
	if len(col1) != 3 {
		t.Fatalf("expected 3 items in column 1, got %d", len(col1))
	}
	if col1[2].Index != 3 || col1[2].Top != 2 {
		t.Fatalf("unexpected placement %+v", col1[2])
	}
	if l.ContentHeight() != 3 {
		t.Fatalf("expected content height 3, got %d", l.ContentHeight())
	}
}

func TestStaggeredIsShorterThanLinear(t *testing.T) {
	seq := feed.NewSequence(feed.DefaultItemCount)
	linear := layout.Linear(seq, feed.FixedHeight(1))
	grid := layout.Staggered(seq, feed.FixedHeight(1), 4)

	if grid.ContentHeight() != 2500 {
		t.Fatalf("expected grid height 2500, got %d", grid.ContentHeight())
	}
	if linear.ContentHeight() <= grid.ContentHeight() {
		t.Fatal("grid should be shorter than the linear list")
	}
}

func TestVisible(t *testing.T) {
	seq := feed.NewSequence(50)
	l := layout.Linear(seq, feed.FixedHeight(2))

	vis := l.Visible(0, 5, 4)
	// rows 5..8 touch items 2 (4..5), 3 (6..7), 4 (8..9)
	if len(vis) != 3 || vis[0].Index != 2 || vis[2].Index != 4 {
		t.Fatalf("unexpected visible items: %+v", vis)
	}
	if len(l.Visible(0, 1000, 10)) != 0 {
		t.Fatal("nothing should be visible past the content")
	}
	if l.Visible(3, 0, 10) != nil {
		t.Fatal("unknown column should yield nil")
	}
}

func BenchmarkStaggered(b *testing.B) {
	seq := feed.NewSequence(feed.DefaultItemCount)
	for i := 0; i < b.N; i++ {
		layout.Staggered(seq, feed.FixedHeight(1), 12)
	}
}
