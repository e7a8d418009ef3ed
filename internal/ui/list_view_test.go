package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loog-project/sidebyside/internal/gesture"
	"github.com/loog-project/sidebyside/internal/scroll"
)

func newTestListView(t *testing.T, cfg Config) *ListView {
	t.Helper()
	lv, err := NewListView(cfg, NewJournal(DefaultJournalSize))
	if err != nil {
		t.Fatalf("new list view: %v", err)
	}
	lv.SetTheme(DarkTheme)
	// primary covers x 0..39, secondary x 40..80, both y 1..20
	lv.SetSize(81, 21)
	return lv
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func offsets(lv *ListView) (int, int) {
	_, a := lv.Screen().Primary.Offset()
	_, b := lv.Screen().Secondary.Offset()
	return a, b
}

func TestListViewBounds(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())

	a, ok := lv.Screen().Primary.Bounds()
	if !ok || a != (scroll.Rect{Left: 0, Top: 1, Width: 39, Height: 19}) {
		t.Fatalf("unexpected primary bounds %+v", a)
	}
	b, ok := lv.Screen().Secondary.Bounds()
	if !ok || b != (scroll.Rect{Left: 40, Top: 1, Width: 40, Height: 19}) {
		t.Fatalf("unexpected secondary bounds %+v", b)
	}
	if w, h := lv.Screen().Primary.ViewportSize(); w != 38 || h != 18 {
		t.Fatalf("unexpected primary viewport %dx%d", w, h)
	}
}

func TestListViewUnsized(t *testing.T) {
	lv, err := NewListView(DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := lv.Screen().Primary.Bounds(); ok {
		t.Fatal("an unsized view must not report bounds")
	}
	if lv.View() != "" {
		t.Fatal("an unsized view renders nothing")
	}
	lv.Update(press(10, 10)) // must not panic
}

func TestListViewMouseDrag(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())

	if _, cmd := lv.Update(press(10, 15)); cmd == nil {
		t.Fatal("pressing on a list should schedule animation frames")
	}
	lv.Update(motion(10, 8))
	if !lv.animating {
		t.Fatal("frames should keep running while dragging")
	}
	lv.Update(release(10, 8))

	a, b := offsets(lv)
	if a != 7 || b != 7 {
		t.Fatalf("expected both lists at 7, got %d and %d", a, b)
	}
}

func TestListViewCtrlClickIsConsumed(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())

	m := press(10, 15)
	m.Ctrl = true
	lv.Update(m)
	lv.Update(motion(10, 5))

	if a, b := offsets(lv); a != 0 || b != 0 {
		t.Fatalf("nothing should move, got %d and %d", a, b)
	}
	if lv.Screen().Consumed != 1 {
		t.Fatalf("expected one consumed event, got %d", lv.Screen().Consumed)
	}
}

func TestListViewWheel(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())

	lv.Update(tea.MouseMsg{X: 60, Y: 10, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	lv.Update(tea.MouseMsg{X: 60, Y: 10, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	lv.Update(tea.MouseMsg{X: 60, Y: 10, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})

	if a, b := offsets(lv); a != wheelLines || b != wheelLines {
		t.Fatalf("expected both at %d, got %d and %d", wheelLines, a, b)
	}
}

func TestListViewKeyboard(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())

	lv.Update(keyPress("j"))
	lv.Update(keyPress("tab"))
	lv.Update(keyPress("pgdown"))
	if a, b := offsets(lv); a != 19 || b != 19 {
		t.Fatalf("expected both at 19, got %d and %d", a, b)
	}

	lv.Update(keyPress("r"))
	if a, b := offsets(lv); a != 0 || b != 0 {
		t.Fatalf("expected reset, got %d and %d", a, b)
	}
}

func TestListViewFlingAnimation(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())

	_, cmd := lv.Update(keyPress("J"))
	if cmd == nil {
		t.Fatal("a fling should schedule a frame")
	}
	for i := 0; i < 1000 && lv.Screen().Active(); i++ {
		lv.Update(frameMsg{})
	}
	if lv.Screen().Active() {
		t.Fatal("the fling should settle")
	}
	a, b := offsets(lv)
	if a == 0 || a != b {
		t.Fatalf("expected equal non-zero offsets, got %d and %d", a, b)
	}
}

func TestListViewStopKey(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())
	lv.Update(keyPress("J"))
	lv.Update(frameMsg{})
	lv.Update(keyPress("s"))
	if lv.Screen().Active() {
		t.Fatal("stop should halt both lists")
	}
}

func TestListViewGridClampsFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Items = 60
	cfg.GridHeightExpr = "1"
	lv := newTestListView(t, cfg)

	// 60 rows vs 20 rows of content, extents 42 and 2
	if _, e := lv.Screen().Secondary.Extent(); e != 2 {
		t.Fatalf("expected grid extent 2, got %d", e)
	}

	lv.Update(press(10, 15))
	lv.Update(motion(10, 5))
	a, b := offsets(lv)
	if a != 10 || b != 2 {
		t.Fatalf("expected primary 10 and clamped grid 2, got %d and %d", a, b)
	}
}

func TestListViewTwelveColumns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Items = 60
	cfg.Columns = maxGridColumns
	cfg.GridHeightExpr = "1"
	lv := newTestListView(t, cfg)

	// 60 items over 12 columns are 5 rows, fewer than the 18 visible ones
	if _, e := lv.Screen().Secondary.Extent(); e != 0 {
		t.Fatalf("expected grid extent 0, got %d", e)
	}
	lv.Update(keyPress("j"))
	if a, b := offsets(lv); a != 1 || b != 0 {
		t.Fatalf("expected primary 1 and grid 0, got %d and %d", a, b)
	}
	if lines := strings.Count(lv.View(), "\n") + 1; lines != 21 {
		t.Fatalf("expected 21 lines, got %d", lines)
	}
}

func TestListViewRender(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())
	for i := 0; i < 400; i++ {
		lv.Update(keyPress("j"))
	}

	out := lv.View()
	for _, want := range []string{"list:1", "list:2", "400"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 21 {
		t.Fatalf("expected 21 lines, got %d", lines)
	}
}

func TestListViewResize(t *testing.T) {
	lv := newTestListView(t, DefaultConfig())
	lv.Update(keyPress("+"))
	lv.Update(keyPress("+"))

	a, _ := lv.Screen().Primary.Bounds()
	b, _ := lv.Screen().Secondary.Bounds()
	if a.Width != 43 || b.Left != 44 {
		t.Fatalf("unexpected bounds after resize %+v %+v", a, b)
	}
}

func TestListViewInvalidExpression(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridHeightExpr = "Value +"
	if _, err := NewListView(cfg, nil); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestListViewPlaysScript(t *testing.T) {
	script, err := gesture.Decode(strings.NewReader(`
steps:
  - touch: {x: 10, y: 15, phase: down}
  - touch: {x: 10, y: 5, phase: move}
  - frames: 10
  - touch: {x: 10, y: 5, phase: up}
  - expect: {list: secondary, y: 10, state: idle}
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Script = script
	lv := newTestListView(t, cfg)

	if lv.Init() == nil {
		t.Fatal("a script should start the animation")
	}
	for i := 0; i < 10; i++ {
		lv.Update(frameMsg{})
		if lv.player == nil {
			t.Fatal("script failed")
		}
	}
	if !lv.player.Done() {
		t.Fatal("script should be done")
	}

	entries := lv.Screen().Journal.Entries()
	last := entries[len(entries)-1]
	if last.Kind != EntryScript || last.Failed || !strings.Contains(last.Text, "finished") {
		t.Fatalf("expected the journal to end with the finished script, got %+v", last)
	}
}

func TestListViewFailingScriptIsJournaled(t *testing.T) {
	script, err := gesture.Decode(strings.NewReader(`
steps:
  - expect: {list: primary, y: 99}
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Script = script
	lv := newTestListView(t, cfg)

	if _, cmd := lv.Update(frameMsg{}); cmd == nil {
		t.Fatal("a failing script should raise an alert")
	}
	if lv.player != nil {
		t.Fatal("the failed script should be dropped")
	}
	entries := lv.Screen().Journal.Entries()
	if len(entries) != 1 || !entries[0].Failed {
		t.Fatalf("expected one failed script entry, got %+v", entries)
	}
}
