package gesture_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/loog-project/sidebyside/internal/gesture"
	"github.com/loog-project/sidebyside/internal/scroll"
	"github.com/loog-project/sidebyside/internal/ui"
)

const frame = 16 * time.Millisecond

// newScreen returns two 40x20 lists, the primary at x 0..40, the secondary at x 41..81.
func newScreen(heightA, heightB int) *ui.Screen {
	a, b := scroll.NewList("primary"), scroll.NewList("secondary")
	for _, l := range []*scroll.List{a, b} {
		l.SetViewport(40, 20)
	}
	a.SetBounds(scroll.Rect{Left: 0, Top: 0, Width: 40, Height: 20})
	b.SetBounds(scroll.Rect{Left: 41, Top: 0, Width: 40, Height: 20})
	a.SetContentSize(40, heightA)
	b.SetContentSize(40, heightB)
	return ui.NewScreen(a, b)
}

func decode(t *testing.T, src string) *gesture.Script {
	t.Helper()
	s, err := gesture.Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return s
}

func TestDragIsMirrored(t *testing.T) {
	script := decode(t, `
steps:
  - touch: {x: 10, y: 15, phase: down}
  - touch: {x: 10, y: 5, phase: move}
  - frames: 20
  - touch: {x: 10, y: 5, phase: up}
  - expect: {list: primary, y: 10, state: idle}
  - expect: {list: secondary, y: 10}
`)
	records, err := gesture.Run(newScreen(1000, 1000), script, frame)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("expected 6 records, got %d", len(records))
	}
}

func TestMultiTouchIsConsumed(t *testing.T) {
	script := decode(t, `
steps:
  - touch: {pointers: 2, x: 10, y: 15, phase: down}
  - expect: {list: primary, y: 0, state: idle, consumed: true}
  - touch: {pointers: 2, x: 10, y: 5, phase: move}
  - expect: {list: primary, y: 0, state: idle, consumed: true}
`)
	if _, err := gesture.Run(newScreen(1000, 1000), script, frame); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestTouchOnSiblingStopsFling(t *testing.T) {
	screen := newScreen(10000, 10000)
	script := decode(t, `
steps:
  - fling: {list: primary, vy: 400}
  - frames: 3
  - touch: {x: 60, y: 10, phase: down}
  - frames: 10
`)
	records, err := gesture.Run(screen, script, frame)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	touch, after := records[2], records[3]
	if !touch.Consumed {
		t.Fatal("the touch should be consumed")
	}
	if touch.Primary == 0 || touch.Primary != touch.Secondary {
		t.Fatalf("lists should have moved together, got %+v", touch)
	}
	if after.Primary != touch.Primary || after.Secondary != touch.Secondary {
		t.Fatalf("no list may move after the stop, got %+v -> %+v", touch, after)
	}
}

func TestExpectationError(t *testing.T) {
	script := decode(t, `
steps:
  - expect: {list: secondary, y: 3}
`)
	_, err := gesture.Run(newScreen(100, 100), script, frame)

	var expErr gesture.ExpectationError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected ExpectationError, got %v", err)
	}
	if expErr.Want != "3" || expErr.Got != "0" || expErr.List != "secondary" {
		t.Fatalf("unexpected error %+v", expErr)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown phase":     "steps:\n  - touch: {x: 1, y: 1, phase: hover}\n",
		"two instructions":  "steps:\n  - frames: 2\n    stop: true\n",
		"no instruction":    "steps:\n  - {}\n",
		"unknown field":     "steps:\n  - jump: 1\n",
		"not a mapping doc": "- 1\n- 2\n",
	}
	for name, src := range cases {
		if _, err := gesture.Decode(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestUnknownList(t *testing.T) {
	script := decode(t, "steps:\n  - fling: {list: third, vy: 10}\n")
	if _, err := gesture.Run(newScreen(100, 100), script, frame); err == nil {
		t.Fatal("expected error for unknown list")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - touch: {x: 1, y: 1}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := gesture.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Steps[0].Touch.Pointers != 1 {
		t.Fatalf("pointers should default to 1, got %d", s.Steps[0].Touch.Pointers)
	}
	if _, err := gesture.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTestdataScript(t *testing.T) {
	script, err := gesture.Load(filepath.Join("testdata", "drag_and_multitouch.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := gesture.Run(newScreen(1000, 1000), script, frame); err != nil {
		t.Fatalf("run: %v", err)
	}
}
