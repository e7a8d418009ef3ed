// Package feed is the item data source shared by both lists.
package feed

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DefaultItemCount is the number of sequential values the screen shows.
const DefaultItemCount = 10_000

// DisplayItem is an opaque, render-only value.
type DisplayItem int

// Source is an ordered, index-addressable sequence of items.
type Source interface {
	Len() int
	At(i int) DisplayItem
}

// Sequence holds the values 0..n-1.
type Sequence []DisplayItem

var _ Source = Sequence(nil)

func NewSequence(n int) Sequence {
	seq := make(Sequence, max(n, 0))
	for i := range seq {
		seq[i] = DisplayItem(i)
	}
	return seq
}

func (s Sequence) Len() int {
	return len(s)
}

func (s Sequence) At(i int) DisplayItem {
	return s[i]
}

// Binder renders items for one list, identified by its tag (1 or 2).
// Both lists use the same Binder type, they only differ by tag.
type Binder struct {
	Tag    int
	Source Source
}

func NewBinder(tag int, source Source) Binder {
	return Binder{Tag: tag, Source: source}
}

// Label is the header shown above every row.
func (b Binder) Label() string {
	return fmt.Sprintf("list:%d", b.Tag)
}

// Content formats the value at index i.
func (b Binder) Content(i int) string {
	return humanize.Comma(int64(b.Source.At(i)))
}
