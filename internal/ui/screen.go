package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/loog-project/sidebyside/internal/scroll"
)

const (
	// velocityStaleAfter drops the drag velocity if the pointer rested before release
	velocityStaleAfter = 100 * time.Millisecond

	// velocitySmoothing weights the newest sample against the running estimate
	velocitySmoothing = 0.6
)

// Screen wires two lists to the arbiter and the mirror and turns pass-through
// pointer events into drags on the list under the pointer.
// It keeps its own logical clock, advanced by Step.
type Screen struct {
	Primary, Secondary *scroll.List

	Arbiter *scroll.Arbiter
	Mirror  *scroll.Mirror

	// Consumed counts the events the arbiter swallowed.
	Consumed int

	// Journal records every swallowed event and forwarded delta, if set.
	Journal *Journal

	dragging     *scroll.List
	lastX, lastY float64
	lastMove     time.Duration
	vx, vy       float64

	elapsed time.Duration
}

func NewScreen(primary, secondary *scroll.List) *Screen {
	s := &Screen{
		Primary:   primary,
		Secondary: secondary,
		Arbiter:   scroll.NewArbiter(primary, secondary),
		Mirror:    scroll.Pair(primary, secondary),
	}
	s.Mirror.OnForward(func(src, _ scroll.Surface, dx, dy int) {
		name := ""
		if l, ok := src.(*scroll.List); ok {
			name = l.Name
		}
		s.record(Entry{Kind: EntryMirror, List: name, DX: dx, DY: dy})
	})
	return s
}

// record stamps e with the clock and the state of both lists and adds it to the journal.
func (s *Screen) record(e Entry) {
	if s.Journal == nil {
		return
	}
	e.At = s.elapsed
	e.Primary = snapshot(s.Primary)
	e.Secondary = snapshot(s.Secondary)
	s.Journal.add(e)
}

// Note adds a script entry to the journal.
func (s *Screen) Note(failed bool, format string, args ...any) {
	s.record(Entry{Kind: EntryScript, Text: fmt.Sprintf(format, args...), Failed: failed})
}

// arbitrate runs ev through the arbiter and journals a swallowed event.
func (s *Screen) arbitrate(ev scroll.PointerEvent) bool {
	verdict := s.Arbiter.Decide(ev)
	if !verdict.Consumed() {
		return false
	}
	s.Consumed++
	s.record(Entry{Kind: EntryArbiter, Pointer: ev, Verdict: verdict})
	return true
}

// List returns a list by name: "primary"/"1" or "secondary"/"2".
func (s *Screen) List(name string) (*scroll.List, bool) {
	switch name {
	case "primary", "1", s.Primary.Name:
		return s.Primary, true
	case "secondary", "2", s.Secondary.Name:
		return s.Secondary, true
	}
	return nil, false
}

// ListAt returns the list under (x, y), or nil.
func (s *Screen) ListAt(x, y float64) *scroll.List {
	for _, l := range []*scroll.List{s.Primary, s.Secondary} {
		if r, ok := l.Bounds(); ok && r.Contains(x, y) {
			return l
		}
	}
	return nil
}

// Dragging reports whether a pointer currently drives one of the lists.
func (s *Screen) Dragging() bool {
	return s.dragging != nil
}

// Active reports whether anything still needs animation frames.
func (s *Screen) Active() bool {
	return s.dragging != nil ||
		s.Primary.ScrollState() == scroll.StateSettling ||
		s.Secondary.ScrollState() == scroll.StateSettling
}

// HandlePointer is the single entry point for pointer events.
// It returns true if the arbiter consumed the event.
func (s *Screen) HandlePointer(ev scroll.PointerEvent) bool {
	if s.arbitrate(ev) {
		s.dropStoppedDrag(ev.Phase)
		return true
	}

	switch ev.Phase {
	case scroll.PhaseDown:
		target := s.ListAt(ev.X, ev.Y)
		if target == nil {
			return false
		}
		s.dragging = target
		s.lastX, s.lastY = ev.X, ev.Y
		s.lastMove = s.elapsed
		s.vx, s.vy = 0, 0
		target.BeginDrag()

	case scroll.PhaseMove:
		if s.dragging == nil {
			return false
		}
		// content follows the pointer
		dx := int(math.Round(s.lastX - ev.X))
		dy := int(math.Round(s.lastY - ev.Y))
		if dx == 0 && dy == 0 {
			return false
		}
		s.sampleVelocity(dx, dy)
		s.lastX, s.lastY = ev.X, ev.Y
		s.dragging.DragBy(dx, dy)

	case scroll.PhaseUp:
		if s.dragging == nil {
			return false
		}
		vx, vy := s.vx, s.vy
		if s.elapsed-s.lastMove > velocityStaleAfter {
			vx, vy = 0, 0
		}
		log.Debug().
			Str("list", s.dragging.Name).
			Float64("vx", vx).
			Float64("vy", vy).
			Msg("Releasing drag")
		s.dragging.EndDrag(vx, vy)
		s.record(Entry{Kind: EntryRelease, List: s.dragging.Name, VX: vx, VY: vy})
		s.dragging = nil

	case scroll.PhaseCancel:
		if s.dragging != nil {
			s.dragging.StopScroll()
			s.dragging = nil
		}
	}
	return false
}

// dropStoppedDrag forgets the drag once its gesture ended or the arbiter
// stopped the dragged list, so a swallowed release cannot leave it behind.
func (s *Screen) dropStoppedDrag(phase scroll.Phase) {
	if s.dragging == nil {
		return
	}
	if phase == scroll.PhaseUp || phase == scroll.PhaseCancel ||
		s.dragging.ScrollState() == scroll.StateIdle {
		log.Debug().
			Str("list", s.dragging.Name).
			Stringer("phase", phase).
			Msg("Dropping drag after swallowed event")
		s.dragging = nil
	}
}

func (s *Screen) sampleVelocity(dx, dy int) {
	dt := (s.elapsed - s.lastMove).Seconds()
	s.lastMove = s.elapsed
	if dt <= 0 {
		// several moves within one frame, count them towards the same sample
		dt = frameDuration.Seconds()
	}
	s.vx = velocitySmoothing*(float64(dx)/dt) + (1-velocitySmoothing)*s.vx
	s.vy = velocitySmoothing*(float64(dy)/dt) + (1-velocitySmoothing)*s.vy
}

// Wheel scrolls the list under (x, y) by the given number of lines, as a
// short drag. Wheel events pass the arbiter like any other pointer event.
func (s *Screen) Wheel(x, y float64, lines int) bool {
	if s.arbitrate(scroll.PointerEvent{Pointers: 1, X: x, Y: y, Phase: scroll.PhaseDown}) {
		return true
	}
	target := s.ListAt(x, y)
	if target == nil || s.dragging != nil {
		return false
	}
	target.BeginDrag()
	target.DragBy(0, lines)
	target.EndDrag(0, 0)
	return false
}

// Throw flings target as if it was released with the given velocity. Like a
// touch, it has to pass the arbiter first.
func (s *Screen) Throw(target *scroll.List, vx, vy float64) bool {
	r, ok := target.Bounds()
	if !ok {
		return false
	}
	x, y := float64(r.Left)+float64(r.Width)/2, float64(r.Top)+float64(r.Height)/2
	if s.arbitrate(scroll.PointerEvent{Pointers: 1, X: x, Y: y, Phase: scroll.PhaseDown}) {
		return true
	}
	target.BeginDrag()
	target.EndDrag(vx, vy)
	return false
}

// Stop halts both lists and drops any drag in progress.
func (s *Screen) Stop() {
	s.dragging = nil
	s.Primary.StopScroll()
	s.Secondary.StopScroll()
}

// Reset scrolls both lists back to the top.
func (s *Screen) Reset() {
	s.Stop()
	s.Primary.ScrollTo(0, 0)
	s.Secondary.ScrollTo(0, 0)
}

// Step advances the clock and any fling by dt. It reports whether another
// frame is needed.
func (s *Screen) Step(dt time.Duration) bool {
	s.elapsed += dt
	s.Primary.Step(dt)
	s.Secondary.Step(dt)
	return s.Active()
}
