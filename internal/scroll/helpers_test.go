package scroll_test

import (
	"github.com/loog-project/sidebyside/internal/scroll"
)

// fakeSurface records every call the arbiter makes.
type fakeSurface struct {
	state    scroll.State
	bounds   scroll.Rect
	measured bool

	stops    int
	scrolled [][2]int
}

var _ scroll.Surface = (*fakeSurface)(nil)

func (f *fakeSurface) ScrollState() scroll.State { return f.state }

func (f *fakeSurface) StopScroll() {
	f.stops++
	f.state = scroll.StateIdle
}

func (f *fakeSurface) ScrollBy(dx, dy int) {
	f.scrolled = append(f.scrolled, [2]int{dx, dy})
}

func (f *fakeSurface) Bounds() (scroll.Rect, bool) {
	return f.bounds, f.measured
}

// newPair returns two measured lists sitting next to each other, 40x20 each,
// with the given content heights, connected by a mirror.
func newPair(heightA, heightB int) (a, b *scroll.List, m *scroll.Mirror) {
	a, b = scroll.NewList("a"), scroll.NewList("b")
	a.SetBounds(scroll.Rect{Left: 0, Top: 0, Width: 40, Height: 20})
	b.SetBounds(scroll.Rect{Left: 41, Top: 0, Width: 40, Height: 20})
	a.SetViewport(40, 20)
	b.SetViewport(40, 20)
	a.SetContentSize(40, heightA)
	b.SetContentSize(40, heightB)
	return a, b, scroll.Pair(a, b)
}
