package gesture

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/loog-project/sidebyside/internal/scroll"
)

// ExpectationError is returned when an expect step does not match.
type ExpectationError struct {
	Step  int
	List  string
	Field string
	Want  string
	Got   string
}

func (e ExpectationError) Error() string {
	return fmt.Sprintf("step %d: expected %s of %s to be %s, got %s",
		e.Step, e.Field, e.List, e.Want, e.Got)
}

// Record is the state of both lists after a step.
type Record struct {
	Step      int
	Kind      string
	Consumed  bool
	Primary   int
	Secondary int
}

// Player executes a script one step at a time.
type Player struct {
	driver Driver
	script *Script
	frame  time.Duration

	pos          int
	lastConsumed bool

	Records []Record
}

func NewPlayer(driver Driver, script *Script, frame time.Duration) *Player {
	return &Player{
		driver: driver,
		script: script,
		frame:  frame,
	}
}

// Done reports whether all steps were executed.
func (p *Player) Done() bool {
	return p.pos >= len(p.script.Steps)
}

// Next executes the next step.
func (p *Player) Next() error {
	if p.Done() {
		return nil
	}
	i, step := p.pos, p.script.Steps[p.pos]
	p.pos++

	kind := ""
	switch {
	case step.Touch != nil:
		kind = "touch"
		p.lastConsumed = p.driver.HandlePointer(scroll.PointerEvent{
			Pointers: step.Touch.Pointers,
			X:        step.Touch.X,
			Y:        step.Touch.Y,
			Phase:    scroll.Phase(step.Touch.Phase),
		})

	case step.Wheel != nil:
		kind = "wheel"
		p.lastConsumed = p.driver.Wheel(step.Wheel.X, step.Wheel.Y, step.Wheel.Lines)

	case step.Fling != nil:
		kind = "fling"
		l, err := p.list(i, step.Fling.List)
		if err != nil {
			return err
		}
		l.Fling(step.Fling.VX, step.Fling.VY)

	case step.Frames > 0:
		kind = "frames"
		for n := 0; n < step.Frames; n++ {
			p.driver.Step(p.frame)
		}

	case step.Stop:
		kind = "stop"
		for _, name := range []string{"primary", "secondary"} {
			if l, ok := p.driver.List(name); ok {
				l.StopScroll()
			}
		}

	case step.Expect != nil:
		kind = "expect"
		if err := p.check(i, step.Expect); err != nil {
			return err
		}
	}

	p.record(i, kind)
	return nil
}

func (p *Player) list(step int, name string) (*scroll.List, error) {
	l, ok := p.driver.List(name)
	if !ok {
		return nil, fmt.Errorf("step %d: unknown list %q", step, name)
	}
	return l, nil
}

func (p *Player) check(step int, e *Expect) error {
	l, err := p.list(step, e.List)
	if err != nil {
		return err
	}
	if _, y := l.Offset(); y != e.Y {
		return ExpectationError{Step: step, List: e.List, Field: "offset",
			Want: fmt.Sprint(e.Y), Got: fmt.Sprint(y)}
	}
	if e.State != "" && l.ScrollState().String() != e.State {
		return ExpectationError{Step: step, List: e.List, Field: "state",
			Want: e.State, Got: l.ScrollState().String()}
	}
	if e.Consumed != nil && *e.Consumed != p.lastConsumed {
		return ExpectationError{Step: step, List: e.List, Field: "consumed",
			Want: fmt.Sprint(*e.Consumed), Got: fmt.Sprint(p.lastConsumed)}
	}
	return nil
}

func (p *Player) record(step int, kind string) {
	r := Record{Step: step, Kind: kind, Consumed: p.lastConsumed}
	if l, ok := p.driver.List("primary"); ok {
		_, r.Primary = l.Offset()
	}
	if l, ok := p.driver.List("secondary"); ok {
		_, r.Secondary = l.Offset()
	}
	p.Records = append(p.Records, r)

	log.Debug().
		Int("step", step).
		Str("kind", kind).
		Bool("consumed", r.Consumed).
		Int("primary", r.Primary).
		Int("secondary", r.Secondary).
		Msg("Replayed step")
}

// Run plays the whole script and returns the records of every step.
func Run(driver Driver, script *Script, frame time.Duration) ([]Record, error) {
	p := NewPlayer(driver, script, frame)
	for !p.Done() {
		if err := p.Next(); err != nil {
			return p.Records, err
		}
	}
	return p.Records, nil
}
