package scroll

import (
	"github.com/rs/zerolog/log"
)

// ForwardListener is told about every delta the mirror passed on, after the
// sibling applied it.
type ForwardListener func(src, dst Surface, dx, dy int)

// Mirror replays the scroll deltas of one list onto the other one.
type Mirror struct {
	a, b Scrollable

	onForward ForwardListener

	// Forwarded counts the deltas passed on to a sibling.
	Forwarded int
}

// Pair subscribes to both lists and returns the mirror connecting them.
func Pair(a, b Scrollable) *Mirror {
	m := &Mirror{a: a, b: b}
	a.OnScrolled(m.forwardTo(b))
	b.OnScrolled(m.forwardTo(a))
	return m
}

// OnForward replaces the listener for forwarded deltas.
func (m *Mirror) OnForward(fn ForwardListener) {
	m.onForward = fn
}

func (m *Mirror) forwardTo(sibling Surface) ScrollListener {
	return func(src Surface, dx, dy int) {
		// the sibling's own programmatic scroll notifies while it is idle,
		// forwarding that would bounce the delta back forever
		if src.ScrollState() == StateIdle {
			return
		}
		if dx == 0 && dy == 0 {
			return
		}
		log.Debug().
			Int("dx", dx).
			Int("dy", dy).
			Msg("Mirroring scroll delta")
		m.Forwarded++
		sibling.ScrollBy(dx, dy)
		if m.onForward != nil {
			m.onForward(src, sibling, dx, dy)
		}
	}
}
