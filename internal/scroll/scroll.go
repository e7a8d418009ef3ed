// Package scroll keeps two scrollable lists in lockstep.
//
// The Arbiter decides which pointer events may reach the lists at all, the
// Mirror replays every scroll delta of one list onto its sibling. Everything in
// here runs on the UI goroutine, nothing is safe for concurrent use.
package scroll

import "fmt"

// State is the scroll status of a single list.
type State uint8

const (
	StateIdle State = iota
	StateDragging
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Phase is the phase of a pointer interaction.
type Phase uint8

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// PointerEvent describes a single touch (or mouse) interaction in screen coordinates.
type PointerEvent struct {
	Pointers int
	X, Y     float64
	Phase    Phase
}

// Rect is an on-screen rectangle.
type Rect struct {
	Left, Top     int
	Width, Height int
}

// Contains reports whether (x, y) lies within r. All four edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	left, top := float64(r.Left), float64(r.Top)
	right, bottom := left+float64(r.Width), top+float64(r.Height)
	return y >= top && y <= bottom && x >= left && x <= right
}

// Surface is the part of a scrollable list the arbiter and the mirror talk to.
type Surface interface {
	ScrollState() State
	StopScroll()
	ScrollBy(dx, dy int)
	// Bounds returns the on-screen rectangle, ok is false if the surface
	// has not been measured yet.
	Bounds() (r Rect, ok bool)
}

// ScrollListener is notified with the delta that was actually applied to src.
type ScrollListener func(src Surface, dx, dy int)

// Scrollable is a Surface that reports scroll updates.
type Scrollable interface {
	Surface
	OnScrolled(l ScrollListener)
}

// contains is the nil-safe hit test used by the arbiter.
func contains(s Surface, x, y float64) bool {
	if s == nil {
		return false
	}
	r, ok := s.Bounds()
	if !ok {
		return false
	}
	return r.Contains(x, y)
}
