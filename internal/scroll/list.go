package scroll

import (
	"math"
	"time"

	"github.com/loog-project/sidebyside/internal/util"
)

const (
	// DefaultFriction is the exponential decay rate of a fling, per second.
	DefaultFriction = 4.0

	// minFlingVelocity is the speed (cells per second) under which a fling settles.
	minFlingVelocity = 2.0
)

var _ Scrollable = (*List)(nil)

// List is a scroll surface with a viewport over some content.
// The offset is always within [0, extent] on both axes.
type List struct {
	Name string

	offsetX, offsetY int
	extentX, extentY int

	viewWidth, viewHeight       int
	contentWidth, contentHeight int

	bounds   Rect
	measured bool

	state State

	// fling velocity in cells per second and the sub-cell remainder
	velocityX, velocityY float64
	fracX, fracY         float64
	friction             float64

	listeners []ScrollListener
}

func NewList(name string) *List {
	return &List{
		Name:     name,
		friction: DefaultFriction,
	}
}

// SetFriction sets the fling decay rate. Non-positive values keep the current one.
func (l *List) SetFriction(friction float64) {
	if friction > 0 {
		l.friction = friction
	}
}

func (l *List) OnScrolled(listener ScrollListener) {
	l.listeners = append(l.listeners, listener)
}

func (l *List) ScrollState() State {
	if l == nil {
		return StateIdle
	}
	return l.state
}

func (l *List) Bounds() (Rect, bool) {
	if l == nil || !l.measured {
		return Rect{}, false
	}
	return l.bounds, true
}

// SetBounds sets the absolute on-screen rectangle of the list.
func (l *List) SetBounds(r Rect) {
	l.bounds = r
	l.measured = r.Width > 0 && r.Height > 0
}

func (l *List) SetViewport(width, height int) {
	l.viewWidth, l.viewHeight = max(width, 0), max(height, 0)
	l.recalculateExtent()
}

func (l *List) SetContentSize(width, height int) {
	l.contentWidth, l.contentHeight = max(width, 0), max(height, 0)
	l.recalculateExtent()
}

// recalculateExtent re-clamps the offset silently, a resize is not a scroll.
func (l *List) recalculateExtent() {
	l.extentX = max(l.contentWidth-l.viewWidth, 0)
	l.extentY = max(l.contentHeight-l.viewHeight, 0)
	l.offsetX = util.Clamp(l.offsetX, 0, l.extentX)
	l.offsetY = util.Clamp(l.offsetY, 0, l.extentY)
}

func (l *List) Offset() (x, y int) {
	return l.offsetX, l.offsetY
}

func (l *List) Extent() (x, y int) {
	return l.extentX, l.extentY
}

func (l *List) ViewportSize() (width, height int) {
	return l.viewWidth, l.viewHeight
}

func (l *List) Velocity() (vx, vy float64) {
	return l.velocityX, l.velocityY
}

// ScrollBy moves the viewport by (dx, dy), clamped at the content extent.
// Listeners receive the applied delta, nothing is reported if nothing moved.
func (l *List) ScrollBy(dx, dy int) {
	nextX := util.Clamp(l.offsetX+dx, 0, l.extentX)
	nextY := util.Clamp(l.offsetY+dy, 0, l.extentY)

	appliedX, appliedY := nextX-l.offsetX, nextY-l.offsetY
	if appliedX == 0 && appliedY == 0 {
		return
	}
	l.offsetX, l.offsetY = nextX, nextY

	for _, listener := range l.listeners {
		listener(l, appliedX, appliedY)
	}
}

// ScrollTo jumps to an absolute offset. The list is idle afterwards.
func (l *List) ScrollTo(x, y int) {
	l.StopScroll()
	l.ScrollBy(x-l.offsetX, y-l.offsetY)
}

// StopScroll ends any drag or fling. The list is idle when it returns.
func (l *List) StopScroll() {
	l.state = StateIdle
	l.velocityX, l.velocityY = 0, 0
	l.fracX, l.fracY = 0, 0
}

func (l *List) BeginDrag() {
	l.StopScroll()
	l.state = StateDragging
}

// DragBy scrolls by a user-driven delta.
func (l *List) DragBy(dx, dy int) {
	if l.state != StateDragging {
		l.BeginDrag()
	}
	l.ScrollBy(dx, dy)
}

// EndDrag releases the list, it keeps settling if it was thrown with some velocity.
func (l *List) EndDrag(vx, vy float64) {
	if l.state != StateDragging {
		return
	}
	l.Fling(vx, vy)
}

// Fling starts a momentum scroll with the given velocity in cells per second.
func (l *List) Fling(vx, vy float64) {
	if math.Abs(vx) < minFlingVelocity && math.Abs(vy) < minFlingVelocity {
		l.StopScroll()
		return
	}
	l.state = StateSettling
	l.velocityX, l.velocityY = vx, vy
	l.fracX, l.fracY = 0, 0
}

// Step advances a fling by dt and reports whether the list is still settling.
func (l *List) Step(dt time.Duration) bool {
	if l.state != StateSettling {
		return false
	}
	seconds := dt.Seconds()

	moveX := l.velocityX*seconds + l.fracX
	moveY := l.velocityY*seconds + l.fracY
	dx, dy := int(moveX), int(moveY)
	l.fracX, l.fracY = moveX-float64(dx), moveY-float64(dy)

	beforeX, beforeY := l.offsetX, l.offsetY
	l.ScrollBy(dx, dy)

	// a listener may have stopped us
	if l.state != StateSettling {
		return false
	}

	// an axis that ran into its extent loses its momentum
	if l.offsetX-beforeX != dx {
		l.velocityX, l.fracX = 0, 0
	}
	if l.offsetY-beforeY != dy {
		l.velocityY, l.fracY = 0, 0
	}

	decay := math.Exp(-l.friction * seconds)
	l.velocityX *= decay
	l.velocityY *= decay

	if math.Abs(l.velocityX) < minFlingVelocity && math.Abs(l.velocityY) < minFlingVelocity {
		l.StopScroll()
		return false
	}
	return true
}
