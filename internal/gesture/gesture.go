// Package gesture replays scripted pointer input against a pair of synchronized lists.
//
// A script is a YAML document:
//
//	steps:
//	  - touch: {x: 10, y: 5, phase: down}
//	  - touch: {x: 10, y: 2, phase: move}
//	  - touch: {x: 10, y: 2, phase: up}
//	  - frames: 30
//	  - expect: {list: secondary, y: 3}
package gesture

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/loog-project/sidebyside/internal/scroll"
)

// Driver is what a script is played against.
type Driver interface {
	HandlePointer(ev scroll.PointerEvent) bool
	Wheel(x, y float64, lines int) bool
	List(name string) (*scroll.List, bool)
	Step(dt time.Duration) bool
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is a single script instruction, exactly one field must be set.
type Step struct {
	Touch  *Touch  `yaml:"touch,omitempty"`
	Wheel  *Wheel  `yaml:"wheel,omitempty"`
	Fling  *Fling  `yaml:"fling,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Stop   bool    `yaml:"stop,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`
}

type Touch struct {
	Pointers int     `yaml:"pointers"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Phase    Phase   `yaml:"phase"`
}

type Wheel struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Lines int     `yaml:"lines"`
}

type Fling struct {
	List string  `yaml:"list"`
	VX   float64 `yaml:"vx"`
	VY   float64 `yaml:"vy"`
}

// Expect checks the vertical offset, and optionally the scroll state, of a list.
type Expect struct {
	List     string `yaml:"list"`
	Y        int    `yaml:"y"`
	State    string `yaml:"state,omitempty"`
	Consumed *bool  `yaml:"consumed,omitempty"`
}

// Phase wraps scroll.Phase to read it from its name.
type Phase scroll.Phase

func (p *Phase) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch strings.ToLower(name) {
	case "", "down":
		*p = Phase(scroll.PhaseDown)
	case "move":
		*p = Phase(scroll.PhaseMove)
	case "up":
		*p = Phase(scroll.PhaseUp)
	case "cancel":
		*p = Phase(scroll.PhaseCancel)
	default:
		return fmt.Errorf("line %d: unknown phase %q", value.Line, name)
	}
	return nil
}

func (s Step) validate() error {
	set := 0
	for _, b := range []bool{s.Touch != nil, s.Wheel != nil, s.Fling != nil, s.Frames > 0, s.Stop, s.Expect != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one instruction, got %d", set)
	}
	return nil
}

// Decode reads and validates a script.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding gesture script: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if step.Touch != nil && step.Touch.Pointers == 0 {
			s.Steps[i].Touch.Pointers = 1
		}
	}
	return &s, nil
}

// Load reads a script from a file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}
