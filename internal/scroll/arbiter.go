package scroll

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Verdict is the arbiter's decision about a single pointer event.
type Verdict uint8

const (
	// VerdictPass lets the event through to the lists.
	VerdictPass Verdict = iota
	// VerdictMultiTouch swallows an event with two or more contact points.
	VerdictMultiTouch
	// VerdictCancelPrimary swallows a touch on the secondary while the primary
	// was still moving. Both lists are stopped.
	VerdictCancelPrimary
	// VerdictCancelSecondary is the same with the roles swapped.
	VerdictCancelSecondary
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictMultiTouch:
		return "multi-touch"
	case VerdictCancelPrimary:
		return "cancel primary"
	case VerdictCancelSecondary:
		return "cancel secondary"
	default:
		return fmt.Sprintf("Verdict(%d)", uint8(v))
	}
}

// Consumed reports whether the event must not reach the lists.
func (v Verdict) Consumed() bool {
	return v != VerdictPass
}

// Arbiter sees every pointer event before the lists do.
type Arbiter struct {
	primary, secondary Surface
}

func NewArbiter(primary, secondary Surface) *Arbiter {
	return &Arbiter{
		primary:   primary,
		secondary: secondary,
	}
}

// Intercept returns true if ev must be consumed and not passed on to the lists.
func (a *Arbiter) Intercept(ev PointerEvent) bool {
	return a.Decide(ev).Consumed()
}

// Decide applies the arbitration rules to ev, in order, and tells which one
// fired. Stopping the lists is part of the decision.
func (a *Arbiter) Decide(ev PointerEvent) Verdict {
	// no multi-touch at all, two fingers would drive both lists at once
	if ev.Pointers >= 2 {
		log.Debug().
			Int("pointers", ev.Pointers).
			Stringer("phase", ev.Phase).
			Msg("Swallowing multi-touch event")
		return VerdictMultiTouch
	}

	// a touch on the passive list cancels the momentum of the active one,
	// the user has to start a fresh gesture
	if a.cancelsMomentum(a.primary, a.secondary, ev) {
		return VerdictCancelPrimary
	}
	if a.cancelsMomentum(a.secondary, a.primary, ev) {
		return VerdictCancelSecondary
	}

	return VerdictPass
}

func (a *Arbiter) cancelsMomentum(active, passive Surface, ev PointerEvent) bool {
	if active == nil || active.ScrollState() == StateIdle {
		return false
	}
	if !contains(passive, ev.X, ev.Y) {
		return false
	}

	log.Debug().
		Str("state", active.ScrollState().String()).
		Float64("x", ev.X).
		Float64("y", ev.Y).
		Msg("Touch on sibling while scrolling, stopping both lists")

	active.StopScroll()
	passive.StopScroll()
	return true
}
