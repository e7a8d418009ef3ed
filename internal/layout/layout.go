// Package layout places items of a feed.Source into one or more columns.
package layout

import (
	"sort"

	"github.com/loog-project/sidebyside/internal/feed"
)

// Placement is the position of one item, in lines from the top of the content.
type Placement struct {
	Index  int
	Column int
	Top    int
	Height int
}

// Bottom is the first line below the item.
func (p Placement) Bottom() int {
	return p.Top + p.Height
}

// Layout is the result of placing all items of a source.
type Layout struct {
	Columns int

	// placements per column, ordered by Top
	columns [][]Placement
	height  int
}

// Linear stacks all items in a single column.
func Linear(src feed.Source, heights feed.HeightFunc) *Layout {
	return Staggered(src, heights, 1)
}

// Staggered distributes items over the given number of columns, every item goes
// into the currently shortest column. Ties go to the leftmost column.
func Staggered(src feed.Source, heights feed.HeightFunc, columns int) *Layout {
	columns = max(columns, 1)
	l := &Layout{
		Columns: columns,
		columns: make([][]Placement, columns),
	}
	bottoms := make([]int, columns)

	for i := 0; i < src.Len(); i++ {
		col := 0
		for c := 1; c < columns; c++ {
			if bottoms[c] < bottoms[col] {
				col = c
			}
		}
		p := Placement{
			Index:  i,
			Column: col,
			Top:    bottoms[col],
			Height: heights(i),
		}
		l.columns[col] = append(l.columns[col], p)
		bottoms[col] = p.Bottom()
	}

	for _, b := range bottoms {
		l.height = max(l.height, b)
	}
	return l
}

// ContentHeight is the height of the tallest column.
func (l *Layout) ContentHeight() int {
	return l.height
}

// Column returns the placements of column c.
func (l *Layout) Column(c int) []Placement {
	if c < 0 || c >= len(l.columns) {
		return nil
	}
	return l.columns[c]
}

// Visible returns the placements of column c that intersect [top, top+height).
func (l *Layout) Visible(c, top, height int) []Placement {
	col := l.Column(c)
	if len(col) == 0 || height <= 0 {
		return nil
	}
	bottom := top + height

	// first item whose bottom lies below top
	from := sort.Search(len(col), func(i int) bool {
		return col[i].Bottom() > top
	})
	to := from
	for to < len(col) && col[to].Top < bottom {
		to++
	}
	return col[from:to]
}
